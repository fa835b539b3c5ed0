package ratelimit

import (
	"strings"
)

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns the matching EndpointConfig or nil if no match is found.
// Paths ending in "/" match as prefixes (e.g., "/api/export/" matches
// "/api/export/pdf"), and a "*" segment matches any single path segment.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	// Special case: health check endpoint is unlimited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{
			Limit:  0, // Unlimited
			Window: 0,
			Burst:  0,
		}
	}

	// Try exact match first
	for i := range configs {
		config := &configs[i]
		if config.Method == method && matchPath(config.Path, path, false) {
			return config
		}
	}

	// Try prefix match (for paths ending with "/")
	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") && matchPath(config.Path, path, true) {
			return config
		}
	}

	// No match found
	return nil
}

// matchPath compares pattern to path segment by segment. With prefix set,
// path may continue past the end of the pattern.
func matchPath(pattern, path string, prefix bool) bool {
	if !strings.Contains(pattern, "*") {
		if prefix {
			return strings.HasPrefix(path, pattern)
		}
		return pattern == path
	}

	want := strings.Split(strings.TrimSuffix(pattern, "/"), "/")
	got := strings.Split(path, "/")
	if prefix {
		if len(got) <= len(want) {
			return false
		}
	} else if len(got) != len(want) {
		return false
	}

	for i, seg := range want {
		if seg == "*" {
			if got[i] == "" {
				return false
			}
			continue
		}
		if seg != got[i] {
			return false
		}
	}
	return true
}
