package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/recco/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API (default from Config)
//	-d int      autocomplete debounce interval in milliseconds
//	-v          verbose client logging
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, so the JSON config flag can coexist.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	debounceMs := fs.Int("d", int(cfg.DebounceInterval.Milliseconds()), "debounce interval (in milliseconds)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.DebounceInterval = time.Duration(*debounceMs) * time.Millisecond
}
