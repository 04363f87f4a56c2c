package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rektdeckard/tinto/internal/dispatch"
	"github.com/rektdeckard/tinto/internal/inventory"
)

// Environment variables that override the config file
const (
	EnvBridgeAddr = "HUE_BRIDGE_ADDR"
	EnvAppKey     = "HUE_APP_KEY"
)

// Defaults for the [ui] and [dispatch] sections
const (
	DefaultTickMS    = 250
	DefaultRefreshMS = int(inventory.DefaultRefreshInterval / time.Millisecond)
	DefaultTimeoutMS = int(dispatch.DefaultTimeout / time.Millisecond)
)

// ErrMissingConfig is returned when no bridge address or application key
// could be found in flags, environment or the config file.
var ErrMissingConfig = errors.New("missing bridge configuration")

// Config is the resolved application configuration.
type Config struct {
	Device   DeviceConfig   `toml:"device" yaml:"device"`
	UI       UIConfig       `toml:"ui" yaml:"ui"`
	Dispatch DispatchConfig `toml:"dispatch" yaml:"dispatch"`

	// path is the file the config was read from, empty if none
	path string
}

// DeviceConfig identifies the bridge.
type DeviceConfig struct {
	BridgeAddr string `toml:"bridge_addr" yaml:"bridge_addr"` // Host or host:port
	AppKey     string `toml:"app_key" yaml:"app_key"`         // Application key issued at pairing
}

// UIConfig controls the dashboard.
type UIConfig struct {
	TickMS    int `toml:"tick_ms" yaml:"tick_ms"`       // Render cadence
	RefreshMS int `toml:"refresh_ms" yaml:"refresh_ms"` // Inventory poll interval
	DimStep   int `toml:"dim_step" yaml:"dim_step"`     // Brightness change per key press, percent
}

// DispatchConfig controls the command worker.
type DispatchConfig struct {
	QueueSize int `toml:"queue_size" yaml:"queue_size"`
	TimeoutMS int `toml:"timeout_ms" yaml:"timeout_ms"`
}

// Default returns a configuration with defaults and no bridge.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			TickMS:    DefaultTickMS,
			RefreshMS: DefaultRefreshMS,
			DimStep:   dispatch.DefaultDimStep,
		},
		Dispatch: DispatchConfig{
			QueueSize: dispatch.DefaultQueueSize,
			TimeoutMS: DefaultTimeoutMS,
		},
	}
}

// Path returns the file the configuration was read from, or an empty string.
func (c *Config) Path() string {
	return c.path
}

// Tick returns the render cadence.
func (c *Config) Tick() time.Duration {
	return time.Duration(c.UI.TickMS) * time.Millisecond
}

// RefreshInterval returns the inventory poll interval.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.UI.RefreshMS) * time.Millisecond
}

// CommandTimeout returns the timeout for a single device command.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.Dispatch.TimeoutMS) * time.Millisecond
}

// applyEnv overrides the device section from the environment
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvBridgeAddr); v != "" {
		c.Device.BridgeAddr = v
	}
	if v := os.Getenv(EnvAppKey); v != "" {
		c.Device.AppKey = v
	}
}

// applyDefaults fills unset numeric fields
func (c *Config) applyDefaults() {
	d := Default()
	if c.UI.TickMS <= 0 {
		c.UI.TickMS = d.UI.TickMS
	}
	if c.UI.RefreshMS <= 0 {
		c.UI.RefreshMS = d.UI.RefreshMS
	}
	if c.UI.DimStep <= 0 {
		c.UI.DimStep = d.UI.DimStep
	}
	if c.Dispatch.QueueSize <= 0 {
		c.Dispatch.QueueSize = d.Dispatch.QueueSize
	}
	if c.Dispatch.TimeoutMS <= 0 {
		c.Dispatch.TimeoutMS = d.Dispatch.TimeoutMS
	}
}

// Validate checks that the configuration can be used to start the dashboard.
func (c *Config) Validate() error {
	if c.Device.BridgeAddr == "" || c.Device.AppKey == "" {
		var missing []string
		if c.Device.BridgeAddr == "" {
			missing = append(missing, "bridge address ("+EnvBridgeAddr+")")
		}
		if c.Device.AppKey == "" {
			missing = append(missing, "application key ("+EnvAppKey+")")
		}
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if err := validateAddr(c.Device.BridgeAddr); err != nil {
		return err
	}

	if c.UI.DimStep > 100 {
		return fmt.Errorf("invalid dim_step %d: must be between 1 and 100", c.UI.DimStep)
	}

	return nil
}

// validateAddr accepts a host, host:port or http(s) URL without a path
func validateAddr(addr string) error {
	raw := addr
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid bridge address %q: %w", addr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid bridge address %q: unsupported scheme %q", addr, u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("invalid bridge address %q: missing host", addr)
	}
	if u.Path != "" && u.Path != "/" {
		return fmt.Errorf("invalid bridge address %q: unexpected path %q", addr, u.Path)
	}
	return nil
}

// Redacted returns a copy safe to print, with the application key masked.
func (c *Config) Redacted() *Config {
	cp := *c
	cp.Device.AppKey = redact(c.Device.AppKey)
	return &cp
}

func redact(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
