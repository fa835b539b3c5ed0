package ratelimit

import (
	"testing"
)

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		name      string
		path      string
		method    string
		wantPath  string
		wantLimit int
		wantNil   bool
	}{
		{"health is unlimited", "/health", "GET", "", 0, false},
		{"stateless export prefix", "/api/export/pdf", "POST", "/api/export/", 30, false},
		{"draft export wildcard", "/api/drafts/123/export/doc", "GET", "/api/drafts/*/export/", 30, false},
		{"edits wildcard exact", "/api/drafts/123/edits", "POST", "/api/drafts/*/edits", 1200, false},
		{"create draft exact", "/api/drafts", "POST", "/api/drafts", 60, false},
		{"replace draft prefix", "/api/drafts/123", "PUT", "/api/drafts/", 300, false},
		{"draft read uses default", "/api/drafts/123", "GET", "", 0, true},
		{"wildcard needs a segment", "/api/drafts//edits", "POST", "", 0, true},
		{"wildcard prefix needs a tail", "/api/drafts/123/export", "POST", "", 0, true},
		{"static file uses default", "/assets/app.js", "GET", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Expected no match, got %+v", *got)
				}
				return
			}
			if got == nil {
				t.Fatal("Expected a match, got nil")
			}
			if got.Path != tt.wantPath {
				t.Errorf("Expected path %q, got %q", tt.wantPath, got.Path)
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("Expected limit %d, got %d", tt.wantLimit, got.Limit)
			}
		})
	}
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "50")
	t.Setenv("RATE_LIMIT_WHITELIST", "127.0.0.1, 10.0.0.1")
	t.Setenv("RATE_LIMIT_IDLE_TIMEOUT", "10m")

	config := LoadConfig()

	if !config.Enabled {
		t.Error("Expected rate limiting to be enabled by default")
	}
	if config.DefaultLimit != 50 {
		t.Errorf("Expected default limit 50, got %d", config.DefaultLimit)
	}
	if !config.Whitelist["10.0.0.1"] || len(config.Whitelist) != 2 {
		t.Errorf("Unexpected whitelist %v", config.Whitelist)
	}
	if config.IdleTimeout.Minutes() != 10 {
		t.Errorf("Expected idle timeout 10m, got %v", config.IdleTimeout)
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	if LoadConfig().Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}

func TestLoadConfig_MalformedFallsBack(t *testing.T) {
	env := map[string]string{
		"RATE_LIMIT_ENABLED":       "maybe",
		"RATE_LIMIT_DEFAULT_LIMIT": "lots",
		"RATE_LIMIT_IDLE_TIMEOUT":  "90",
		"RATE_LIMIT_BLACKLIST":     " , 10.0.0.9,,",
	}

	config := loadConfig(func(key string) string { return env[key] })

	if !config.Enabled {
		t.Error("Expected an unparsable flag to keep rate limiting on")
	}
	if config.DefaultLimit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", config.DefaultLimit)
	}
	if config.IdleTimeout.Hours() != 1 {
		t.Errorf("Expected a unitless idle timeout to fall back to 1h, got %v", config.IdleTimeout)
	}
	if len(config.Blacklist) != 1 || !config.Blacklist["10.0.0.9"] {
		t.Errorf("Unexpected blacklist %v", config.Blacklist)
	}
	if len(config.EndpointConfigs) != len(DefaultEndpointConfigs()) {
		t.Errorf("Expected the default endpoint tiers, got %d", len(config.EndpointConfigs))
	}
}
