package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variable names.
const (
	EnvAPIBaseURL = "RECCO_API_URL"
	EnvDebounce   = "RECCO_DEBOUNCE"
	EnvVerbose    = "RECCO_VERBOSE"
)

// parseEnv overlays cfg with values from the environment. Unparseable values
// are ignored, keeping the previous layer's setting.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDebounce); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.DebounceInterval = d
		}
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
}
