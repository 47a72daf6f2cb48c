package config

import "github.com/caarlos0/env/v6"

// envConfig mirrors Config for environment parsing. Store credentials are
// normally supplied this way in deployment.
type envConfig struct {
	EndpointAddr            string `env:"CHRONICLE_ADDR"`
	DatabaseDSN             string `env:"CHRONICLE_DATABASE_DSN"`
	SecretKey               string `env:"CHRONICLE_SECRET_KEY"`
	SessionValidityDuration string `env:"CHRONICLE_SESSION_VALIDITY"`
	BlobAccessKey           string `env:"CHRONICLE_BLOB_ACCESS_KEY"`
	BlobSecretKey           string `env:"CHRONICLE_BLOB_SECRET_KEY"`
	BlobBucket              string `env:"CHRONICLE_BLOB_BUCKET"`
	BlobRegion              string `env:"CHRONICLE_BLOB_REGION"`
	BlobBaseEndpoint        string `env:"CHRONICLE_BLOB_ENDPOINT"`
}

// parseEnv overlays values from the environment. Unset variables keep the
// current values.
func parseEnv(config *Config) error {
	e := envConfig{}
	if err := env.Parse(&e); err != nil {
		return err
	}

	if e.EndpointAddr != "" {
		config.EndpointAddr = e.EndpointAddr
	}
	if e.DatabaseDSN != "" {
		config.DatabaseDSN = e.DatabaseDSN
	}
	if e.SecretKey != "" {
		config.SecretKey = e.SecretKey
	}
	if e.SessionValidityDuration != "" {
		d, err := parseDuration(e.SessionValidityDuration)
		if err != nil {
			return err
		}
		config.SessionValidityDuration = d
	}
	if e.BlobAccessKey != "" {
		config.BlobAccessKey = e.BlobAccessKey
	}
	if e.BlobSecretKey != "" {
		config.BlobSecretKey = e.BlobSecretKey
	}
	if e.BlobBucket != "" {
		config.BlobBucket = e.BlobBucket
	}
	if e.BlobRegion != "" {
		config.BlobRegion = e.BlobRegion
	}
	if e.BlobBaseEndpoint != "" {
		config.BlobBaseEndpoint = e.BlobBaseEndpoint
	}

	return nil
}
