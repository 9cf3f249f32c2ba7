// Package config loads the editor settings from defaults, a YAML file, the
// environment and command-line flags.
package config

import (
	"fmt"
	"log/slog"
	"slices"
)

// Defaults for configuration values.
const (
	DefaultColor     = ColorAuto
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// Color modes for styled error output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings of one editor session.
type Config struct {
	Prompt      string `koanf:"prompt"`
	Verbose     bool   `koanf:"verbose"`
	Silent      bool   `koanf:"silent"`
	Color       string `koanf:"color"`
	HistoryFile string `koanf:"history_file"`
	LogLevel    string `koanf:"log_level"`
	LogFormat   string `koanf:"log_format"`

	// File is the config file that was read, empty when none was found.
	File string `koanf:"-"`
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if !slices.Contains([]string{"text", "json"}, c.LogFormat) {
		return fmt.Errorf("invalid log_format %q: must be text or json", c.LogFormat)
	}
	if !slices.Contains([]string{ColorAuto, ColorAlways, ColorNever}, c.Color) {
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
