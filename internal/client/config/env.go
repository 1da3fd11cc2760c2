package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with values from PUBCRAWL_* environment
// variables. Unset variables leave the current values untouched.
//
// Panics on a malformed environment (caller may recover if desired),
// matching the other loaders in this package.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
