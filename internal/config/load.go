// Package config defines environment configuration structs and loaders.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type AppConfig struct {
	RuntimeEnvConfig
	NormalizeEnvConfig
}

// LoadConfig reads an optional .env file into the process environment, then
// parses the configuration from it.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RuntimeEnvConfig holds process-level settings.
type RuntimeEnvConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
}

// NormalizeEnvConfig selects the normalization applied by the entrypoint.
type NormalizeEnvConfig struct {
	Method           string   `env:"NORMALIZE_METHOD" envDefault:"zero_one"`
	DegeneratePolicy string   `env:"NORMALIZE_DEGENERATE_POLICY" envDefault:"zero"`
	QuantileLow      float64  `env:"NORMALIZE_QUANTILE_LOW" envDefault:"25"`
	QuantileHigh     float64  `env:"NORMALIZE_QUANTILE_HIGH" envDefault:"75"`
	Excluded         []string `env:"NORMALIZE_EXCLUDED" envSeparator:","`
}
