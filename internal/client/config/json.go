package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/recco/internal/flagx"
	"github.com/dmitrijs2005/recco/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so intervals may be given as strings like "300ms" or as
// integer nanoseconds.
type JsonConfig struct {
	APIBaseURL       string         `json:"api_base_url"`
	DebounceInterval timex.Duration `json:"debounce_interval"`
	Verbose          *bool          `json:"verbose"`
}

// parseJson overlays cfg with values from the file named by the -c/-config
// flag. Absent flag means no JSON layer. Read or unmarshal errors panic;
// a broken config file should stop startup loudly.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DebounceInterval.Duration != 0 {
		cfg.DebounceInterval = time.Duration(jc.DebounceInterval.Duration)
	}
	if jc.Verbose != nil {
		cfg.Verbose = *jc.Verbose
	}
}
