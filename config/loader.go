package config

import (
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration. With no
// arguments it tries config.yml in the working directory; explicit paths
// override the search list.
func LoadAppConfig(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{"config.yml", "./configs/config.yml"}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyDefaults(&Config)
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Provider == "" {
		cfg.Provider = "mta"
	}
	if cfg.Pipeline.MinUsefulMinutes == 0 {
		cfg.Pipeline.MinUsefulMinutes = 1
	}
	if cfg.Pipeline.MergeDistanceMinutes == 0 {
		cfg.Pipeline.MergeDistanceMinutes = 2
	}
	if cfg.Pipeline.MaxArrivals == 0 {
		cfg.Pipeline.MaxArrivals = 3
	}
	if cfg.MTA.TimeoutMS == 0 {
		cfg.MTA.TimeoutMS = 10000
	}
	if cfg.MTA.LookaheadMinutes == 0 {
		cfg.MTA.LookaheadMinutes = 60
	}
	if cfg.MTA.MaxCount == 0 {
		cfg.MTA.MaxCount = 1000
	}
	if cfg.NYCT.TimeoutMS == 0 {
		cfg.NYCT.TimeoutMS = 10000
	}
	// The API key lives in the environment in deployments; the yaml field
	// exists for local development.
	if cfg.MTA.APIKey == "" {
		cfg.MTA.APIKey = os.Getenv("MTA_API_KEY")
	}
}

// SupportedLines returns the line codes the active provider has platform
// stops for, sorted for stable error messages.
func (c AppConfig) SupportedLines() []string {
	stops := c.MTA.Stops
	if c.Provider == "nyct" {
		stops = c.NYCT.Stops
	}
	lines := make([]string, 0, len(stops))
	for l := range stops {
		lines = append(lines, l)
	}
	sort.Strings(lines)
	return lines
}

// IsSupportedLine reports whether the active provider can serve a line.
func (c AppConfig) IsSupportedLine(line string) bool {
	stops := c.MTA.Stops
	if c.Provider == "nyct" {
		stops = c.NYCT.Stops
	}
	_, ok := stops[line]
	return ok
}
