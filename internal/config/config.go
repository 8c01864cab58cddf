// Package config handles the optional YAML configuration file.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the command line options that may be preset in a file.
// Empty fields mean "not set" and leave flag defaults in place.
type Config struct {
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`
	Format string `yaml:"format,omitempty"`
	Minify bool   `yaml:"minify,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOptional behaves like Load but returns an empty config when path is
// empty or the file does not exist.
func LoadOptional(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}

	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{}, nil
	}

	return cfg, err
}
