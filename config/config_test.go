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

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	k, err := Load("")
	require.NoError(t, err)
	cfg, err := Decode(k)
	require.NoError(t, err)

	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, SourceExec, cfg.Source)
	assert.Equal(t, 0, cfg.Gap)
	assert.Empty(t, cfg.Hide)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "/etc/hostname", cfg.HostnameFile)
	assert.Equal(t, Theme{Accent: "2", Trunk: "3", Bullet: "▪", Rule: "━", KeyWidth: 7}, cfg.Theme)
}

func TestLoadDefaultPathFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "treefetch"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "treefetch", "config.toml"), []byte("gap = 2\n"), 0o644))

	assert.Equal(t, filepath.Join(dir, "treefetch", "config.toml"), DefaultPath())

	k, err := Load("")
	require.NoError(t, err)
	cfg, err := Decode(k)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Gap)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
color = "never"
source = "native"
hide = ["memory", "identity"]
timeout = "2s"

[theme]
accent = "4"
bullet = "*"
key_width = 9
`)

	k, err := Load(path)
	require.NoError(t, err)
	cfg, err := Decode(k)
	require.NoError(t, err)

	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, SourceNative, cfg.Source)
	assert.Equal(t, []string{"memory", "identity"}, cfg.Hide)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, "4", cfg.Theme.Accent)
	assert.Equal(t, "3", cfg.Theme.Trunk)
	assert.Equal(t, "*", cfg.Theme.Bullet)
	assert.Equal(t, 9, cfg.Theme.KeyWidth)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "gap = 1\n[theme]\naccent = \"4\"\n")
	t.Setenv("TREEFETCH_GAP", "5")
	t.Setenv("TREEFETCH_THEME__ACCENT", "6")
	t.Setenv("TREEFETCH_HOSTNAME_FILE", "/tmp/hostname")

	k, err := Load(path)
	require.NoError(t, err)
	cfg, err := Decode(k)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Gap)
	assert.Equal(t, "6", cfg.Theme.Accent)
	assert.Equal(t, "/tmp/hostname", cfg.HostnameFile)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "gap = = 3\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Color: ColorAuto, Format: "text", Source: SourceExec, Theme: Theme{KeyWidth: 7}}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad color", func(c *Config) { c.Color = "sometimes" }},
		{"bad format", func(c *Config) { c.Format = "xml" }},
		{"bad source", func(c *Config) { c.Source = "magic" }},
		{"negative gap", func(c *Config) { c.Gap = -1 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"negative key width", func(c *Config) { c.Theme.KeyWidth = -2 }},
		{"unknown fact", func(c *Config) { c.Hide = []string{"gpu"} }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "gap", envKey("TREEFETCH_GAP"))
	assert.Equal(t, "theme.key_width", envKey("TREEFETCH_THEME__KEY_WIDTH"))
	assert.Equal(t, "hostname_file", envKey("TREEFETCH_HOSTNAME_FILE"))
}
