package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG at a temp dir and clears credential env vars.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	t.Setenv(EnvBridgeAddr, "")
	t.Setenv(EnvAppKey, "")
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 250*time.Millisecond, cfg.Tick())
	assert.Equal(t, 2*time.Second, cfg.RefreshInterval())
	assert.Equal(t, 5*time.Second, cfg.CommandTimeout())
	assert.Equal(t, 10, cfg.UI.DimStep)
	assert.Equal(t, 32, cfg.Dispatch.QueueSize)
}

func TestLoad_TOML(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tinto", "tinto.toml"), `
[device]
bridge_addr = "192.168.1.20"
app_key = "abcdefghijkl"

[ui]
tick_ms = 100
dim_step = 20
`)

	cfg, err := Load(Options{})
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.20", cfg.Device.BridgeAddr)
	assert.Equal(t, "abcdefghijkl", cfg.Device.AppKey)
	assert.Equal(t, 100*time.Millisecond, cfg.Tick())
	assert.Equal(t, 20, cfg.UI.DimStep)
	assert.Equal(t, 2*time.Second, cfg.RefreshInterval(), "unset fields keep defaults")
	assert.Equal(t, filepath.Join(dir, "tinto", "tinto.toml"), cfg.Path())
}

func TestLoad_YAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, `
device:
  bridge_addr: hue.local
  app_key: secret
dispatch:
  queue_size: 4
`)

	cfg, err := Load(Options{Path: path})
	require.NoError(t, err)

	assert.Equal(t, "hue.local", cfg.Device.BridgeAddr)
	assert.Equal(t, 4, cfg.Dispatch.QueueSize)
	assert.Equal(t, path, cfg.Path())
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "tinto", "tinto.toml"), `
[device]
bridge_addr = "10.0.0.1"
app_key = "from-file"
`)

	t.Setenv(EnvBridgeAddr, "10.0.0.2")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", cfg.Device.BridgeAddr, "env beats file")
	assert.Equal(t, "from-file", cfg.Device.AppKey)

	cfg, err = Load(Options{Addr: "10.0.0.3", Key: "from-flag"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.3", cfg.Device.BridgeAddr, "flag beats env")
	assert.Equal(t, "from-flag", cfg.Device.AppKey)
}

func TestLoad_EnvOnly(t *testing.T) {
	isolate(t)
	t.Setenv(EnvBridgeAddr, "192.168.1.20")
	t.Setenv(EnvAppKey, "key")

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())
	assert.Equal(t, "192.168.1.20", cfg.Device.BridgeAddr)
}

func TestLoad_Missing(t *testing.T) {
	isolate(t)

	_, err := Load(Options{})
	require.ErrorIs(t, err, ErrMissingConfig)
	assert.Contains(t, err.Error(), EnvBridgeAddr)
	assert.Contains(t, err.Error(), EnvAppKey)

	_, err = Load(Options{Addr: "192.168.1.20"})
	require.ErrorIs(t, err, ErrMissingConfig)
	assert.NotContains(t, err.Error(), EnvBridgeAddr)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	dir := isolate(t)

	_, err := Load(Options{Path: filepath.Join(dir, "nope.toml"), Addr: "h", Key: "k"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingConfig)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad toml", "bad.toml", "[device\nbridge_addr ="},
		{"bad yaml", "bad.yaml", "device: [unclosed"},
		{"unknown extension", "tinto.ini", "bridge_addr=1"},
		{"dim step too large", "step.toml", "[device]\nbridge_addr = \"h\"\napp_key = \"k\"\n[ui]\ndim_step = 150\n"},
		{"bad address", "addr.toml", "[device]\nbridge_addr = \"ftp://hue\"\napp_key = \"k\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			writeFile(t, path, tt.content)

			_, err := Load(Options{Path: path})
			assert.Error(t, err)
		})
	}
}

func TestValidateAddr(t *testing.T) {
	valid := []string{"192.168.1.20", "192.168.1.20:8080", "hue.local", "http://192.168.1.20", "https://hue.local/"}
	for _, addr := range valid {
		assert.NoError(t, validateAddr(addr), addr)
	}

	invalid := []string{"ftp://hue", "http://", "192.168.1.20/api/xyz", "http://[::1"}
	for _, addr := range invalid {
		assert.Error(t, validateAddr(addr), addr)
	}
}

func TestRedacted(t *testing.T) {
	cfg := Default()
	cfg.Device.AppKey = "abcdefghijklmnop"

	red := cfg.Redacted()
	assert.Equal(t, "abcd************", red.Device.AppKey)
	assert.Equal(t, "abcdefghijklmnop", cfg.Device.AppKey, "original untouched")

	assert.Equal(t, "*****", redact("short"))
	assert.Empty(t, redact(""))
}
