package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors config.toml. Pointers distinguish unset keys from zero values.
type fileConfig struct {
	Store  *string `toml:"store"`
	Color  *bool   `toml:"color"`
	Debug  *bool   `toml:"debug"`
	GTasks struct {
		List *string `toml:"list"`
	} `toml:"gtasks"`
}

// Load builds the configuration from multiple sources in priority order:
// 1. Defaults
// 2. Settings file (config.toml in the config directory), if present
// 3. Environment variables
func Load() (*Config, error) {
	cfg := New("")

	if err := loadConfigFile(cfg, cfg.FilePath()); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", cfg.FilePath(), err)
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	if err := finalizeConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfigFile merges the TOML file at path into cfg.
// A missing file is not an error.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return err
	}

	if fc.Store != nil {
		cfg.StorePath = *fc.Store
	}
	if fc.Color != nil {
		cfg.Color = *fc.Color
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.GTasks.List != nil {
		cfg.GTasksList = *fc.GTasks.List
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_FILE"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("TODO_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TODO_DEBUG value %q: %w", v, err)
		}
		cfg.Debug = b
	}
	if v := os.Getenv("TODO_GTASKS_LIST"); v != "" {
		cfg.GTasksList = v
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	return nil
}

// finalizeConfig resolves the store path.
func finalizeConfig(cfg *Config) error {
	if cfg.StorePath == "" {
		path, err := DefaultStorePath()
		if err != nil {
			return err
		}
		cfg.StorePath = path
		return nil
	}
	cfg.StorePath = expandPath(cfg.StorePath)
	return nil
}
