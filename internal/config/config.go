// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Export
	Input   string   `json:"input,omitempty"`   // Path to resume JSON
	Formats []string `json:"formats,omitempty"` // Export formats ("pdf", "doc")
	OutDir  string   `json:"out,omitempty"`     // Directory for exported files
	Variant string   `json:"variant,omitempty"` // Variant for new or variant-less resumes

	// PDF rendering
	Engine        string `json:"engine,omitempty"`         // "auto", "drawn" or "raster"
	ChromePath    string `json:"chrome_path,omitempty"`    // Chromium binary for raster export
	ExportTimeout string `json:"export_timeout,omitempty"` // Duration, e.g. "30s"

	// Server
	Port       int    `json:"port,omitempty"`
	StaticDir  string `json:"static_dir,omitempty"`  // Built client bundle to serve
	SessionTTL string `json:"session_ttl,omitempty"` // Idle draft lifetime, e.g. "2h"

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Formats:       []string{"pdf"},
		OutDir:        ".",
		Variant:       "detailed",
		Engine:        "auto",
		ExportTimeout: "30s",
		Port:          3000,
		StaticDir:     "client/dist",
		SessionTTL:    "2h",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	for _, f := range c.Formats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "pdf", "doc":
		default:
			return fmt.Errorf("config error: unknown format %q (want pdf or doc)", f)
		}
	}

	switch c.Variant {
	case "", "detailed", "classic":
	default:
		return fmt.Errorf("config error: unknown variant %q", c.Variant)
	}

	switch c.Engine {
	case "", "auto", "drawn", "raster":
	default:
		return fmt.Errorf("config error: unknown engine %q", c.Engine)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if _, err := parseDuration("export_timeout", c.ExportTimeout); err != nil {
		return err
	}
	if _, err := parseDuration("session_ttl", c.SessionTTL); err != nil {
		return err
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.Variant == "" {
		result.Variant = defaults.Variant
	}
	if result.Engine == "" {
		result.Engine = defaults.Engine
	}
	if result.ChromePath == "" {
		result.ChromePath = defaults.ChromePath
	}
	if result.ExportTimeout == "" {
		result.ExportTimeout = defaults.ExportTimeout
	}
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.SessionTTL == "" {
		result.SessionTTL = defaults.SessionTTL
	}

	// Slice and int fields: use default if empty or zero
	if len(result.Formats) == 0 {
		result.Formats = defaults.Formats
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ExportTimeoutDuration returns ExportTimeout as a duration, or 0 when unset.
func (c *Config) ExportTimeoutDuration() time.Duration {
	d, _ := parseDuration("export_timeout", c.ExportTimeout)
	return d
}

// SessionTTLDuration returns SessionTTL as a duration, or 0 when unset.
func (c *Config) SessionTTLDuration() time.Duration {
	d, _ := parseDuration("session_ttl", c.SessionTTL)
	return d
}

func parseDuration(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config error: invalid '%s': %w", field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("config error: '%s' must be non-negative", field)
	}
	return d, nil
}
