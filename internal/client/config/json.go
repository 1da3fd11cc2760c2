package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pubcrawl/internal/flagx"
)

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags); if neither is present nothing is loaded. Only keys
// present in the file override the current values. Read or unmarshal errors
// panic, matching the other loaders.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	// Unmarshal into a map first so absent keys keep their current values.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		panic(err)
	}

	overlay := func(key string, dst *string) {
		if v, ok := raw[key]; ok {
			if err := json.Unmarshal(v, dst); err != nil {
				panic(err)
			}
		}
	}
	overlay("storage_path", &cfg.StoragePath)
	overlay("catalog_path", &cfg.CatalogPath)
	overlay("log_level", &cfg.LogLevel)
}
