package server

import (
	"time"

	protovalidate "buf.build/go/protovalidate"

	"github.com/kursuslab/kursus/internal/adapter/auth"
	"github.com/kursuslab/kursus/internal/adapter/storage/fake"
	"github.com/kursuslab/kursus/internal/config"
)

// NewConfig loads the runtime configuration for dependency injection.
func NewConfig() (config.Config, error) {
	return config.Load()
}

// NewThumbnailProvider returns the thumbnail store implementation.
func NewThumbnailProvider(cfg config.Config) *fake.Provider {
	return fake.NewProvider(cfg.UploadBaseURL, cfg.CDNBaseURL, 15*time.Minute)
}

// NewTokenManager constructs the JWT signer and verifier.
func NewTokenManager(cfg config.Config) *auth.TokenManager {
	return auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
}

// NewProtoValidator constructs a protovalidate Validator for request validation.
func NewProtoValidator() (protovalidate.Validator, error) {
	return protovalidate.New()
}
