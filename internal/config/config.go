package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chainhash/internal/hashtable"
	"chainhash/pkg/errors"
	"chainhash/pkg/logger"
)

const FileName = "config.yaml"

type Config struct {
	// Number of buckets, fixed for the lifetime of the table
	Capacity int `yaml:"capacity"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

func Default() *Config {
	return &Config{
		Capacity: hashtable.DefaultCapacity,
		LogLevel: logger.InfoLevel,
	}
}

// NewConfig loads dir/config.yaml, or returns defaults when the file does not exist.
func NewConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return FromFile(path)
}

// FromFile reads a YAML config. Keys missing from the file keep their defaults.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	conf := Default()
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: %d", errors.ErrInvalidCapacity, c.Capacity)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
