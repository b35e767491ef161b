package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	pathEnv     = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads configuration with priority ENV > YAML > env-default tags and
// validates it.
//
// The YAML file is CONFIG_PATH, or ./config.yaml when CONFIG_PATH is unset.
// A missing default file is fine and leaves ENV and defaults only; a missing
// explicit file is an error.
func Load() (*Config, error) {
	if path := os.Getenv(pathEnv); path != "" {
		return loadFile(path, true)
	}
	return loadFile(defaultPath, false)
}

func loadFile(path string, required bool) (*Config, error) {
	var cfg Config

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case required || !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, err)
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
