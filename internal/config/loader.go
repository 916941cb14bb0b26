package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load builds the hyspell configuration. Variables from ./.env are added to
// the environment unless already set, then the YAML file named by CONFIG_PATH
// (./config.yaml when unset, optional in that case) is read and environment
// variables are applied over it. Corrector thresholds start from
// DefaultCorrectorConfig, so an explicit 0 in YAML or env is kept.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: read .env: %w", err)
	}

	cfg := Config{Corrector: DefaultCorrectorConfig()}

	path, explicit := os.LookupEnv("CONFIG_PATH")
	if path == "" {
		path, explicit = "./config.yaml", false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}
