package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/rektdeckard/tinto/internal/bridge"
	"github.com/rektdeckard/tinto/internal/config"
	"github.com/rektdeckard/tinto/internal/dispatch"
	"github.com/rektdeckard/tinto/internal/inventory"
	"github.com/rektdeckard/tinto/internal/logging"
	"github.com/rektdeckard/tinto/internal/nav"
	"github.com/rektdeckard/tinto/internal/tui"
)

// Global flags
var (
	configPath string
	bridgeAddr string
	appKey     string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default $XDG_CONFIG_HOME/tinto/tinto.toml)")
	rootCmd.PersistentFlags().StringVarP(&bridgeAddr, "addr", "a", "", "Bridge address (env "+config.EnvBridgeAddr+")")
	rootCmd.PersistentFlags().StringVarP(&appKey, "key", "k", "", "Bridge application key (env "+config.EnvAppKey+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (env "+logging.LogLevelEnvVar+")")

	rootCmd.AddCommand(configCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(config.Options{
		Path: configPath,
		Addr: bridgeAddr,
		Key:  appKey,
	})
}

// configCmd prints the resolved configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print where the configuration was loaded from and the values in effect
after applying environment variables and flags. The application key is
redacted.`,
	Example: `  # Show configuration from the default location
  tinto config

  # Check what a different file resolves to
  tinto config --config ./tinto.yaml`,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path := cfg.Path(); path != "" {
		fmt.Fprintf(out, "# Loaded from %s\n", path)
	} else {
		fmt.Fprintf(out, "# No config file found (default location: %s)\n", config.DefaultPath())
	}

	data, err := toml.Marshal(cfg.Redacted())
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the dashboard needs an interactive terminal")
	}

	logPath, err := logging.DefaultLogPath()
	if err != nil {
		return err
	}
	if err := logging.Initialize(logLevel, logPath); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	client := bridge.NewClient(cfg.Device.BridgeAddr, cfg.Device.AppKey)
	client.Timeout = cfg.CommandTimeout()

	store := &inventory.Store{}
	refresher := inventory.NewRefresher(client, store, cfg.RefreshInterval())

	// A rejected key will not fix itself; anything else is retried in the background
	if err := refresher.RefreshNow(ctx); err != nil {
		if bridge.IsAuthError(err) {
			return fmt.Errorf("bridge at %s rejected the application key: %w", cfg.Device.BridgeAddr, err)
		}
		logging.Warn("Initial refresh failed, retrying in background",
			zap.String("addr", cfg.Device.BridgeAddr),
			zap.Error(err))
	}
	go refresher.Run(ctx)

	dispatcher := dispatch.New(client, dispatch.Options{
		QueueSize: cfg.Dispatch.QueueSize,
		Timeout:   cfg.CommandTimeout(),
		OnResult: func(dispatch.Command, error) {
			refresher.Poke()
		},
	})
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	model := tui.NewModel(tui.Options{
		Registry:   nav.NewRegistry(),
		Store:      store,
		Planner:    dispatch.NewPlanner(cfg.UI.DimStep),
		Submitter:  dispatcher,
		Tick:       cfg.Tick(),
		Addr:       cfg.Device.BridgeAddr,
		RefreshErr: refresher.Err,
	})

	logging.Info("Dashboard started",
		zap.String("addr", cfg.Device.BridgeAddr),
		zap.String("config", cfg.Path()))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	stats := dispatcher.Stats()
	logging.Info("Dashboard stopped",
		zap.Int64("submitted", stats.Submitted),
		zap.Int64("dropped", stats.Dropped),
		zap.Int64("failed", stats.Failed))

	return nil
}
