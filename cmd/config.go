package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared across subcommands. Commands that need
// it read adupulse.yaml from the working directory, or the path given by
// their -config flag.
type Config struct {
	// PermitAPIURL is the base URL of the hosted permit table.
	PermitAPIURL string `yaml:"permit_api_url"`

	// PermitAPIKey authenticates against the permit table. The
	// ADU_PULSE_API_KEY environment variable overrides it.
	PermitAPIKey string `yaml:"permit_api_key"`

	// PermitTable is the table name (default "adu_permits").
	PermitTable string `yaml:"permit_table"`

	// LeadsEndpoint receives contact-form submissions.
	LeadsEndpoint string `yaml:"leads_endpoint"`

	// WebAddr is the dashboard listen address (default ":8080").
	WebAddr string `yaml:"web_addr"`
}

// DefaultConfigPath is where commands look for settings when no -config
// flag is given.
const DefaultConfigPath = "adupulse.yaml"

func (c *Config) applyDefaults() {
	if c.PermitTable == "" {
		c.PermitTable = "adu_permits"
	}
	if c.WebAddr == "" {
		c.WebAddr = ":8080"
	}
}

// LoadConfig reads a YAML config file. A missing file at the default path
// is not an error; commands fall back to defaults and the environment.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultConfigPath {
			cfg.applyEnv()
			cfg.applyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv("ADU_PULSE_API_KEY"); key != "" {
		c.PermitAPIKey = key
	}
}
