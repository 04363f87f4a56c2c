package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "tinto"
	configFile = "tinto.toml"
)

// Config file names searched under the XDG config directories, in order
var searchNames = []string{"tinto.toml", "tinto.yaml", "tinto.yml"}

// Options are the command-line inputs to Load. Empty fields are ignored.
type Options struct {
	// Path is an explicit config file. When set it must exist.
	Path string

	Addr string
	Key  string
}

// DefaultPath returns $XDG_CONFIG_HOME/tinto/tinto.toml without creating it.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, configFile)
}

// FindPath returns the first existing config file under the XDG config
// directories, or an empty string if there is none.
func FindPath() string {
	for _, name := range searchNames {
		if path, err := xdg.SearchConfigFile(filepath.Join(appName, name)); err == nil {
			return path
		}
	}
	return ""
}

// Load resolves the configuration. Later sources win:
//
//	defaults < config file < environment < opts
//
// A missing default config file is not an error, but the result must still
// pass Validate.
func Load(opts Options) (*Config, error) {
	cfg := Default()

	path := opts.Path
	if path == "" {
		path = FindPath()
	}

	if path != "" {
		if err := readFile(path, cfg); err != nil {
			if opts.Path == "" && errors.Is(err, fs.ErrNotExist) {
				path = ""
			} else {
				return nil, err
			}
		}
	}
	cfg.path = path

	cfg.applyEnv()
	if opts.Addr != "" {
		cfg.Device.BridgeAddr = opts.Addr
	}
	if opts.Key != "" {
		cfg.Device.AppKey = opts.Key
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config file extension %q", ext)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}
