package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dalesbridge/chronicle/internal/flagx"
	"github.com/dalesbridge/chronicle/internal/timex"
)

// jsonConfig is the file-facing shape of Config. Durations accept both
// strings ("12h") and integer nanoseconds via timex.Duration.
type jsonConfig struct {
	EndpointAddr            *string         `json:"endpoint_addr"`
	DatabaseDSN             *string         `json:"database_dsn"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	BlobAccessKey           *string         `json:"blob_access_key"`
	BlobSecretKey           *string         `json:"blob_secret_key"`
	BlobBucket              *string         `json:"blob_bucket"`
	BlobRegion              *string         `json:"blob_region"`
	BlobBaseEndpoint        *string         `json:"blob_base_endpoint"`
}

// parseJSON overlays values from the JSON file named by -c/-config, if any.
// Absent fields keep their current values.
func parseJSON(config *Config) error {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", jsonConfigFile, err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", jsonConfigFile, err)
	}

	setIfPresent(&config.EndpointAddr, c.EndpointAddr)
	setIfPresent(&config.DatabaseDSN, c.DatabaseDSN)
	setIfPresent(&config.SecretKey, c.SecretKey)
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	}
	setIfPresent(&config.BlobAccessKey, c.BlobAccessKey)
	setIfPresent(&config.BlobSecretKey, c.BlobSecretKey)
	setIfPresent(&config.BlobBucket, c.BlobBucket)
	setIfPresent(&config.BlobRegion, c.BlobRegion)
	setIfPresent(&config.BlobBaseEndpoint, c.BlobBaseEndpoint)

	return nil
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
