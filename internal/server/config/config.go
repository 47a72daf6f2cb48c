// Package config handles configuration for the server component:
// defaults, JSON overlay, environment variables, and command-line flags,
// applied in that order.
package config

import (
	"errors"
	"time"

	"github.com/dalesbridge/chronicle/internal/server/blob"
)

// Config holds runtime settings for the chronicle server.
type Config struct {
	// EndpointAddr is the bind address of the HTTP API.
	EndpointAddr string
	// DatabaseDSN is the PostgreSQL DSN (pgx).
	DatabaseDSN string
	// SecretKey signs session JWTs (HS256). Must be set outside development.
	SecretKey string
	// SessionValidityDuration is the lifetime of issued session tokens.
	SessionValidityDuration time.Duration
	// Blob settings for the S3-compatible archive bucket.
	BlobAccessKey    string
	BlobSecretKey    string
	BlobBucket       string
	BlobRegion       string
	BlobBaseEndpoint string
}

// LoadDefaults populates Config with development defaults.
// NOTE: insecure for production; override via JSON/env/flags.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.SessionValidityDuration = 12 * time.Hour
	c.BlobAccessKey = "admin"
	c.BlobSecretKey = "secretpassword"
	c.BlobBucket = "archive"
	c.BlobRegion = "us-east-1"
	c.BlobBaseEndpoint = "http://127.0.0.1:9000/"
}

// BlobConfig projects the blob-storage settings.
func (c *Config) BlobConfig() blob.Config {
	return blob.Config{
		AccessKey:    c.BlobAccessKey,
		SecretKey:    c.BlobSecretKey,
		Bucket:       c.BlobBucket,
		Region:       c.BlobRegion,
		BaseEndpoint: c.BlobBaseEndpoint,
	}
}

// Validate enforces the startup contract: a server cannot run without its
// store credentials and a signing secret.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("config: database DSN is required")
	}
	if c.SecretKey == "" {
		return errors.New("config: secret key is required")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
