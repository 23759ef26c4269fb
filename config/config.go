// Package config loads treefetch settings from defaults, an optional TOML
// file and TREEFETCH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"treefetch/display"
	"treefetch/sysinfo"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix is the prefix of environment overrides. A double underscore
// separates nested keys: TREEFETCH_THEME__ACCENT sets theme.accent.
const EnvPrefix = "TREEFETCH_"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Fact sources.
const (
	SourceExec   = "exec"
	SourceNative = "native"
)

// Config is the full set of settings.
type Config struct {
	Color        string        `koanf:"color"`
	Format       string        `koanf:"format"`
	Source       string        `koanf:"source"`
	Gap          int           `koanf:"gap"`
	Hide         []string      `koanf:"hide"`
	Timeout      time.Duration `koanf:"timeout"`
	HostnameFile string        `koanf:"hostname_file"`
	Theme        Theme         `koanf:"theme"`
}

// Theme configures colors and glyphs.
type Theme struct {
	Accent   string `koanf:"accent"`
	Trunk    string `koanf:"trunk"`
	Bullet   string `koanf:"bullet"`
	Rule     string `koanf:"rule"`
	KeyWidth int    `koanf:"key_width"`
}

// Palette converts the theme settings for the display package.
func (t Theme) Palette() display.Palette {
	return display.Palette{
		Accent:   t.Accent,
		Trunk:    t.Trunk,
		Bullet:   t.Bullet,
		Rule:     t.Rule,
		KeyWidth: t.KeyWidth,
	}
}

func defaults() map[string]interface{} {
	p := display.DefaultPalette()
	return map[string]interface{}{
		"color":           ColorAuto,
		"format":          display.FormatText,
		"source":          SourceExec,
		"gap":             0,
		"hide":            []string{},
		"timeout":         "0s",
		"hostname_file":   "/etc/hostname",
		"theme.accent":    p.Accent,
		"theme.trunk":     p.Trunk,
		"theme.bullet":    p.Bullet,
		"theme.rule":      p.Rule,
		"theme.key_width": p.KeyWidth,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/treefetch/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "treefetch", "config.toml")
}

// Load reads the configuration. An explicit path must exist; the default
// path is used only when present.
func Load(path string) (*koanf.Koanf, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	return k, nil
}

// Decode unmarshals k into a Config and validates it.
func Decode(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum values and ranges.
func (c *Config) Validate() error {
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	if !slices.Contains([]string{display.FormatText, display.FormatJSON, display.FormatYAML}, c.Format) {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if !slices.Contains([]string{SourceExec, SourceNative}, c.Source) {
		return fmt.Errorf("%w: source %q", ErrInvalid, c.Source)
	}
	if c.Gap < 0 {
		return fmt.Errorf("%w: gap must not be negative", ErrInvalid)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalid)
	}
	if c.Theme.KeyWidth < 0 {
		return fmt.Errorf("%w: theme.key_width must not be negative", ErrInvalid)
	}
	for _, h := range c.Hide {
		if !slices.Contains(sysinfo.FactKeys, h) {
			return fmt.Errorf("%w: unknown fact %q in hide", ErrInvalid, h)
		}
	}
	return nil
}

// envKey maps TREEFETCH_THEME__KEY_WIDTH to theme.key_width.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}
