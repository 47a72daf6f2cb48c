// Package config handles configuration for the curator CLI: defaults, an
// optional JSON overlay, and command-line flags, applied in that order.
package config

// Config holds runtime settings for the chronicle CLI.
type Config struct {
	// ServerEndpointAddr is the base URL of the content server, e.g.
	// "http://127.0.0.1:8080".
	ServerEndpointAddr string
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
