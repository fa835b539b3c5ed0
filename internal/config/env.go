package config

import (
	"fmt"
	"os"
	"strconv"
)

// FromEnv returns c with fields overridden by any of the environment
// variables PORT, STATIC_DIR, SESSION_TTL, EXPORT_TIMEOUT, CHROME_PATH and
// PDF_ENGINE that are set. The .env file, if any, is loaded by the caller.
func (c Config) FromEnv() (Config, error) {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return c, fmt.Errorf("invalid PORT: %v", err)
		}
		c.Port = p
	}

	overrides := []struct {
		key   string
		field *string
	}{
		{"STATIC_DIR", &c.StaticDir},
		{"SESSION_TTL", &c.SessionTTL},
		{"EXPORT_TIMEOUT", &c.ExportTimeout},
		{"CHROME_PATH", &c.ChromePath},
		{"PDF_ENGINE", &c.Engine},
	}
	for _, o := range overrides {
		if value := os.Getenv(o.key); value != "" {
			*o.field = value
		}
	}

	return c, c.Validate()
}
