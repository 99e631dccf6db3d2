package server

import (
	"fmt"
	"strings"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"0.0.0.0"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"5000"`
	// CORSOrigins is a comma separated list of allowed origins ("*" allows any).
	CORSOrigins string `mapstructure:"cors_origins" default:"*"`
	// RateLimit is the number of requests allowed per client IP per minute. Zero disables it.
	RateLimit int `mapstructure:"rate_limit" default:"0"`
	// BodyLimitKB caps request bodies in kilobytes.
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"64"`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// AllowedOrigins returns the CORS origins normalised for the cors middleware.
func (c Config) AllowedOrigins() string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return "*"
	}
	return strings.Join(out, ",")
}

// Validate checks the server settings.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("server rate_limit must not be negative, got %d", c.RateLimit)
	}
	if c.BodyLimitKB < 0 {
		return fmt.Errorf("server body_limit_kb must not be negative, got %d", c.BodyLimitKB)
	}
	return nil
}
