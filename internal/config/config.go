// Package config provides configuration management for swatch.
//
// Configuration is loaded and merged in the following order, later sources
// overriding earlier ones:
//
//  1. Defaults compiled into the binary.
//  2. User configuration (~/.config/swatch/config.yaml).
//  3. Project configuration (./.swatch/config.yaml).
//  4. A file named with --config, which must exist.
//  5. Environment variables (SWATCH_BASE, SWATCH_NAMES, SWATCH_PREVIEW,
//     SWATCH_LOG_LEVEL).
//
// Command-line flags are applied last by the CLI itself. A configuration
// file looks like:
//
//	base: integer
//	names: x11
//	preview: auto
//	logLevel: warn
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/names"
)

// Preview modes.
const (
	PreviewAuto   = "auto"
	PreviewAlways = "always"
	PreviewNever  = "never"
)

// Config holds the user-adjustable settings.
type Config struct {
	// Base is the component range used to read and print colours.
	Base string `yaml:"base"`
	// Names selects the name table: x11 or css.
	Names string `yaml:"names"`
	// Preview controls ANSI colour swatches: auto, always or never.
	Preview string `yaml:"preview"`
	// LogLevel is any level accepted by hclog.
	LogLevel string `yaml:"logLevel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Base:     colour.Normal.String(),
		Names:    "x11",
		Preview:  PreviewAuto,
		LogLevel: "warn",
	}
}

// ValidPreviews returns the accepted preview modes.
func ValidPreviews() []string {
	return []string{PreviewAuto, PreviewAlways, PreviewNever}
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := colour.ParseBase(c.Base); err != nil {
		return fmt.Errorf("invalid base: %w", err)
	}
	if _, err := names.ByName(c.Names); err != nil {
		return fmt.Errorf("invalid names: %w", err)
	}
	if !slices.Contains(ValidPreviews(), c.Preview) {
		return fmt.Errorf("invalid preview: %s (valid modes: %s)", c.Preview, strings.Join(ValidPreviews(), ", "))
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// ColourBase returns the parsed base.
func (c Config) ColourBase() (colour.Base, error) {
	return colour.ParseBase(c.Base)
}

// Table returns the selected name table.
func (c Config) Table() (*names.Table, error) {
	return names.ByName(c.Names)
}

// Level returns the parsed log level, or Warn when it is not recognised.
func (c Config) Level() hclog.Level {
	if level := hclog.LevelFromString(c.LogLevel); level != hclog.NoLevel {
		return level
	}
	return hclog.Warn
}

// merge returns base with every non-empty field of overlay applied.
func merge(base, overlay Config) Config {
	merged := base
	if overlay.Base != "" {
		merged.Base = overlay.Base
	}
	if overlay.Names != "" {
		merged.Names = overlay.Names
	}
	if overlay.Preview != "" {
		merged.Preview = overlay.Preview
	}
	if overlay.LogLevel != "" {
		merged.LogLevel = overlay.LogLevel
	}
	return merged
}
