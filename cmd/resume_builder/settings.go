package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// loadSettings resolves configuration in increasing priority: built-in
// defaults, the JSON file at path (if any), then environment variables.
// Command flags are applied by the caller.
func loadSettings(path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg, err := cfg.FromEnv()
	if err != nil {
		return cfg, err
	}
	return cfg.MergeWithDefaults(config.Defaults()), nil
}

// loadResume reads a resume document, checks it against the resume schema
// and fills in defaults. A document without a variant gets fallback.
func loadResume(path string, fallback types.Variant) (types.Resume, error) {
	if path == "" {
		return types.Resume{}, fmt.Errorf("--input is required (via flag or config)")
	}
	if err := schemas.ValidateResumeFile(path); err != nil {
		return types.Resume{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return types.Resume{}, fmt.Errorf("failed to read resume file: %w", err)
	}

	var r types.Resume
	if err := json.Unmarshal(data, &r); err != nil {
		return types.Resume{}, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
	}
	if r.Variant == "" {
		r.Variant = fallback
	}
	return r.Normalize(), nil
}
