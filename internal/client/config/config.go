// Package config assembles the runtime settings for the pubcrawl CLI from,
// in order of increasing precedence: built-in defaults, environment
// variables, an optional JSON file (-c/-config), and command-line flags.
package config

// Config holds runtime settings for the pubcrawl CLI.
//
// Fields:
//   - StoragePath: location of the BoltDB snapshot file. Empty means
//     in-memory only (state is lost on exit).
//   - CatalogPath: JSON file with the event catalog. Empty means the
//     embedded demo catalog.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	StoragePath string `env:"PUBCRAWL_STORAGE_PATH" json:"storage_path"`
	CatalogPath string `env:"PUBCRAWL_CATALOG_PATH" json:"catalog_path"`
	LogLevel    string `env:"PUBCRAWL_LOG_LEVEL" json:"log_level"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoragePath = "pubcrawl.db"
	c.CatalogPath = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
