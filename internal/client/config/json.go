package config

import (
	"encoding/json"
	"os"

	"github.com/dalesbridge/chronicle/internal/flagx"
)

type jsonConfig struct {
	ServerEndpointAddr *string `json:"server_endpoint_addr"`
}

// parseJSON overlays cfg with values from the JSON file named by -c/-config,
// when one is given. Missing keys leave the current value in place.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != nil {
		cfg.ServerEndpointAddr = *jc.ServerEndpointAddr
	}
}
