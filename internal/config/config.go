// Package config reads server configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the serve command needs.
type Config struct {
	Port         string
	JWTSecret    string
	TokenTTL     time.Duration
	AllowOrigins []string
	GinMode      string
}

// ErrMissingSecret is returned when CONMIGO_JWT_SECRET is unset.
var ErrMissingSecret = errors.New("config: CONMIGO_JWT_SECRET is required")

// Load reads configuration from environment variables with defaults.
// The JWT secret has no default; serving without one is refused.
func Load() (*Config, error) {
	secret := os.Getenv("CONMIGO_JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingSecret
	}

	ttl := 24 * time.Hour
	if v := os.Getenv("CONMIGO_TOKEN_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	origins := []string{"*"}
	if v := os.Getenv("CONMIGO_ALLOW_ORIGINS"); v != "" {
		origins = origins[:0]
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &Config{
		Port:         getEnv("PORT", "8080"),
		JWTSecret:    secret,
		TokenTTL:     ttl,
		AllowOrigins: origins,
		GinMode:      getEnv("GIN_MODE", "release"),
	}, nil
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
