// Package config loads matome's optional settings file.
//
// Settings are cosmetic: a missing file means defaults, and a broken file
// means defaults plus an error the caller may log. Nothing here is fatal.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/terassyi/matome/internal/errors"
)

// Default path constants
const (
	DefaultConfigDir = "~/.config/matome"
	ConfigFileName   = "config.yaml"
)

// Color modes accepted by the settings file.
const (
	ColorAuto   = "auto"   // colorize when stdout is a color-capable terminal
	ColorAlways = "always" // always emit ANSI colors
	ColorNever  = "never"  // plain output
)

// Report names accepted by the settings file.
const (
	ReportStatistics = "statistics"
	ReportResources  = "resources"
)

// Config represents matome settings.
type Config struct {
	Color   string   `yaml:"color"`
	Reports []string `yaml:"reports"`
}

// DefaultConfig returns the default settings: plain output, both reports.
func DefaultConfig() *Config {
	return &Config{
		Color:   ColorNever,
		Reports: []string{ReportStatistics, ReportResources},
	}
}

// Load reads the settings file at path. A missing or empty file yields the
// defaults with no error; an unreadable or invalid file yields the defaults
// plus a ConfigError the caller may log.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return DefaultConfig(), errors.NewConfigError(path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return DefaultConfig(), nil
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), errors.NewConfigError(path, err)
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), errors.NewConfigError(path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always, or never)", c.Color)
	}
	for _, r := range c.Reports {
		if r != ReportStatistics && r != ReportResources {
			return fmt.Errorf("unknown report %q (want statistics or resources)", r)
		}
	}
	return nil
}

// ShowStatistics reports whether the statistics report is selected.
func (c *Config) ShowStatistics() bool {
	return slices.Contains(c.Reports, ReportStatistics)
}

// ShowResources reports whether the resource changes report is selected.
func (c *Config) ShowResources() bool {
	return slices.Contains(c.Reports, ReportResources)
}

// Colorize reports whether report output should carry ANSI color. The
// --color flag forces it on; otherwise the configured mode decides, with
// auto requiring a terminal on out and a color-capable environment.
func (c *Config) Colorize(force bool, out *os.File) bool {
	if force {
		return true
	}
	switch c.Color {
	case ColorAlways:
		return true
	case ColorAuto:
		terminal := isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
		return terminal && termenv.EnvColorProfile() != termenv.Ascii
	default:
		return false
	}
}

// DefaultPath returns the expanded path of the standard settings file,
// ~/.config/matome/config.yaml.
func DefaultPath() (string, error) {
	dir, err := expandHome(DefaultConfigDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(p string) (string, error) {
	if strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, p[2:]), nil
	}
	if p == "~" {
		return os.UserHomeDir()
	}
	return p, nil
}
