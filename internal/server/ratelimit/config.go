package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig limits one route. Path is matched exactly, or as a prefix
// when it ends in "/". A "*" segment stands for any single non-empty segment,
// so "/api/drafts/*/export/" covers every draft and format. All requests that
// match one EndpointConfig share a bucket per client.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // bucket capacity; Limit when 0
}

// Environment keys read by LoadConfig.
const (
	envEnabled         = "RATE_LIMIT_ENABLED"
	envDefaultLimit    = "RATE_LIMIT_DEFAULT_LIMIT"
	envDefaultWindow   = "RATE_LIMIT_DEFAULT_WINDOW"
	envCleanupInterval = "RATE_LIMIT_CLEANUP_INTERVAL"
	envIdleTimeout     = "RATE_LIMIT_IDLE_TIMEOUT"
	envWhitelist       = "RATE_LIMIT_WHITELIST"
	envBlacklist       = "RATE_LIMIT_BLACKLIST"
)

// LoadConfig builds a Config from RATE_LIMIT_* environment variables.
//
// The sweeper runs every RATE_LIMIT_CLEANUP_INTERVAL (5m) and drops buckets
// untouched for RATE_LIMIT_IDLE_TIMEOUT (1h). A client returning after that
// starts with a full bucket. Blank or malformed values fall back to defaults.
func LoadConfig() *Config {
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) *Config {
	if !envValue(getenv, envEnabled, true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envValue(getenv, envDefaultLimit, 1000, strconv.Atoi),
		DefaultWindow:   envValue(getenv, envDefaultWindow, time.Minute, time.ParseDuration),
		CleanupInterval: envValue(getenv, envCleanupInterval, 5*time.Minute, time.ParseDuration),
		IdleTimeout:     envValue(getenv, envIdleTimeout, time.Hour, time.ParseDuration),
		Whitelist:       clientSet(getenv(envWhitelist)),
		Blacklist:       clientSet(getenv(envBlacklist)),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the per-route tiers. Routes not listed here
// (draft reads, static assets) use DefaultLimit, and /health is never limited.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Exports start a renderer. PDF and DOC share the tier.
		{Path: "/api/export/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/api/drafts/*/export/", Method: "GET", Limit: 30, Window: time.Minute, Burst: 5},

		// One edit per keystroke while typing.
		{Path: "/api/drafts/*/edits", Method: "POST", Limit: 1200, Window: time.Minute, Burst: 60},
		{Path: "/api/preview", Method: "POST", Limit: 600, Window: time.Minute, Burst: 30},

		{Path: "/api/drafts", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/drafts/", Method: "PUT", Limit: 300, Window: time.Minute, Burst: 20},
		{Path: "/api/drafts/", Method: "DELETE", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// envValue parses the variable key, returning fallback when it is unset or
// does not parse.
func envValue[T any](getenv func(string) string, key string, fallback T, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}

// clientSet turns "a, b,,c" into a lookup of client IDs.
func clientSet(list string) map[string]bool {
	set := make(map[string]bool)
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}
