// Package config loads search-node settings from a YAML file
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddress         = ":7070"
	DefaultShutdownTimeout = 5 * time.Second
	PathEnv                = "CONFIG_PATH"
)

type Config struct {
	Env             string        `yaml:"env"`
	Address         string        `yaml:"address"`
	LogFile         string        `yaml:"log_file"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func Default() *Config {
	return &Config{
		Env:             "local",
		Address:         DefaultAddress,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load читает YAML поверх значений по умолчанию, пустой path - только значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("empty search-node address")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("incorrect shutdown_timeout %s", c.ShutdownTimeout)
	}
	return nil
}
