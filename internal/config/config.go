package config

import (
	"fmt"
	"os"
	"time"

	"StockLens/internal/scheduler"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when neither -config nor CONFIG_PATH is given.
const DefaultPath = "configs/config.yaml"

// Periods accepted by the Yahoo chart API for daily bars.
var validPeriods = map[string]bool{
	"1mo": true, "3mo": true, "6mo": true, "1y": true, "2y": true,
	"5y": true, "10y": true, "ytd": true, "max": true,
}

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		BaseURL string        `yaml:"base_url" env:"YAHOO_BASE_URL"`
		Period  string        `yaml:"period" env:"STOCKLENS_PERIOD"`
		Timeout time.Duration `yaml:"timeout" env:"STOCKLENS_TIMEOUT"`
	} `yaml:"data_source"`
	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL"`
	} `yaml:"log"`
	Watch struct {
		Cron string `yaml:"cron" env:"STOCKLENS_WATCH_CRON"`
	} `yaml:"watch"`
	Proxy string `yaml:"proxy" env:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error. Variables from a .env file in the working
// directory are loaded first when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	// Defaults
	if cfg.DataSource.BaseURL == "" {
		cfg.DataSource.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.DataSource.Period == "" {
		cfg.DataSource.Period = "1y"
	}
	if cfg.DataSource.Timeout == 0 {
		cfg.DataSource.Timeout = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if !validPeriods[c.DataSource.Period] {
		return fmt.Errorf("data_source.period %q is not a supported range", c.DataSource.Period)
	}
	if c.DataSource.Timeout <= 0 {
		return fmt.Errorf("data_source.timeout must be positive")
	}
	if c.Watch.Cron != "" {
		if err := scheduler.ParseSpec(c.Watch.Cron); err != nil {
			return fmt.Errorf("watch.cron: %w", err)
		}
	}
	return nil
}
