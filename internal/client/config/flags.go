package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/pubcrawl/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path of the snapshot database file
//	-e string   path of the event catalog JSON file
//	-l string   log level (debug, info, warn, error)
//
// Only these flags are parsed; the arguments are filtered first so flags
// owned elsewhere (like -c/-config) do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path of the snapshot database file")
	fs.StringVar(&cfg.CatalogPath, "e", cfg.CatalogPath, "path of the event catalog JSON file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
