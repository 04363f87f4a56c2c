// Package config loads the tinto configuration.
//
// The configuration file is looked up under the XDG config directories:
//
//	$XDG_CONFIG_HOME/tinto/tinto.toml   (also tinto.yaml, tinto.yml)
//
// TOML files are parsed with go-toml, YAML files with yaml.v3:
//
//	[device]
//	bridge_addr = "192.168.1.20"
//	app_key = "..."
//
//	[ui]
//	tick_ms = 250
//	refresh_ms = 2000
//	dim_step = 10
//
//	[dispatch]
//	queue_size = 32
//	timeout_ms = 5000
//
// HUE_BRIDGE_ADDR and HUE_APP_KEY override the [device] section, and
// command-line flags override both. When address and key come from the
// environment the file may be absent.
//
// # Security
//
// The application key gives full control over the bridge. The file is only
// ever read; Redacted masks the key for display.
package config
