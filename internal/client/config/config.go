package config

import "time"

// Config holds runtime settings for the recco terminal client.
//
// Fields:
//   - APIBaseURL: base URL of the REST backend, including the /api prefix.
//   - DebounceInterval: quiet period before autocomplete work runs.
//   - Verbose: enables debug-level client logging.
type Config struct {
	APIBaseURL       string
	DebounceInterval time.Duration
	Verbose          bool
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.DebounceInterval = 300 * time.Millisecond
	c.Verbose = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a config file was given), environment variables, and finally
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
