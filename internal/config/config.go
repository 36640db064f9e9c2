package config

import (
	"fmt"
	"os"
	"time"
)

// Config captures the runtime configuration for the service.
type Config struct {
	HTTPAddress    string
	DatabaseURL    string
	JWTSecret      string
	AccessTokenTTL time.Duration
	UploadBaseURL  string
	CDNBaseURL     string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		HTTPAddress:   valueOrDefault(os.Getenv("HTTP_ADDRESS"), ":8080"),
		DatabaseURL:   valueOrDefault(os.Getenv("DATABASE_URL"), ""),
		JWTSecret:     valueOrDefault(os.Getenv("JWT_SECRET"), ""),
		UploadBaseURL: valueOrDefault(os.Getenv("UPLOAD_BASE_URL"), "https://upload.local"),
		CDNBaseURL:    valueOrDefault(os.Getenv("CDN_BASE_URL"), "https://cdn.local"),
	}

	ttl := valueOrDefault(os.Getenv("ACCESS_TOKEN_TTL"), "24h")
	parsed, err := time.ParseDuration(ttl)
	if err != nil {
		return cfg, fmt.Errorf("invalid ACCESS_TOKEN_TTL %q: %w", ttl, err)
	}
	cfg.AccessTokenTTL = parsed

	if cfg.DatabaseURL == "" {
		return cfg, fmt.Errorf("DATABASE_URL must be provided")
	}
	if cfg.JWTSecret == "" {
		return cfg, fmt.Errorf("JWT_SECRET must be provided")
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
