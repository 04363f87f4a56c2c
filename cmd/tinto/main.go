// Tinto is a terminal dashboard for Philips Hue lights.
//
// It shows the rooms, zones, scenes and lights of one Hue bridge and lets
// you switch groups and lights, recall scenes and dim lights from the
// keyboard.
//
// Usage:
//
//	tinto [command] [flags]
//
// Running without arguments launches the dashboard.
// See 'tinto --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rektdeckard/tinto/internal/version"
)

func main() {
	// A .env file in the working directory may supply HUE_BRIDGE_ADDR and HUE_APP_KEY
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinto",
	Short: "Terminal dashboard for Philips Hue lights",
	Long: `A keyboard-driven terminal dashboard for a Philips Hue bridge.

Browse rooms, zones, scenes and lights, toggle them, recall scenes and
dim individual lights. The bridge address and application key come from
flags, HUE_BRIDGE_ADDR / HUE_APP_KEY, or the config file.

If no command is specified, the dashboard launches.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "tinto %s\n", version.Full())
	},
}
