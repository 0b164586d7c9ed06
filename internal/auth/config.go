// Package auth provides nickname sessions for visitors of the About page.
package auth

import (
	"os"
	"strings"
)

// Config holds server configuration read from the environment.
type Config struct {
	DevMode   bool
	BaseURL   string   // e.g. http://localhost:8080
	Greetings []string // empty means the built-in list
}

// ConfigFromEnv creates a Config from environment variables.
func ConfigFromEnv() Config {
	cfg := Config{
		DevMode: os.Getenv("PF_DEV_MODE") == "true",
		BaseURL: envOrDefault("PF_BASE_URL", "http://localhost:8080"),
	}
	if v := os.Getenv("PF_GREETINGS"); v != "" {
		for _, g := range strings.Split(v, "|") {
			if g = strings.TrimSpace(g); g != "" {
				cfg.Greetings = append(cfg.Greetings, g)
			}
		}
	}
	return cfg
}

// SecureCookies reports whether session cookies should carry the Secure flag.
func (c Config) SecureCookies() bool {
	return strings.HasPrefix(c.BaseURL, "https://")
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
