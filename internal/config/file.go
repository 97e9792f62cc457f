package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside Dir().
const FileName = "config.yaml"

// Config holds user preferences read from config.yaml.
// Command-line flags take precedence over every field.
type Config struct {
	// DefaultCow is rendered when no name is given. Empty means random.
	DefaultCow string `yaml:"default_cow"`
	// Color is "auto", "always" or "never".
	Color string `yaml:"color"`
	// CowPath lists extra directories searched for .cow files.
	CowPath []string `yaml:"cow_path"`
	// Strict rejects art blocks that are never closed.
	Strict bool `yaml:"strict"`

	// Path is the file the config was read from, empty if none was found.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Color: "auto"}
}

// Load reads config.yaml from Dir(). A missing file yields Default().
func Load() (*Config, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile reads the config at path. A missing file yields Default().
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
	cfg.Path = path
	return cfg, nil
}
