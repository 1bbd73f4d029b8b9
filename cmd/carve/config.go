package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contentaware/carve"
)

// Config holds the default resize settings loaded from an optional YAML
// file. Explicitly provided command line flags take precedence over it.
type Config struct {
	// Strategy is the seam search strategy: optimal, greedy or graph-shortest-path.
	Strategy string `yaml:"strategy"`

	// Width is the target width, in pixels or in percents when Percentage is set.
	Width int `yaml:"width"`

	// Height is the target height, in pixels or in percents when Percentage is set.
	Height int `yaml:"height"`

	// Percentage interprets Width and Height as percents of the source size.
	Percentage bool `yaml:"percentage"`

	// SeamColor is the hex color of the debug seam overlay.
	SeamColor string `yaml:"seamColor"`

	// Workers limits the number of images processed concurrently in directory mode.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() *Config {
	return &Config{
		Strategy:  carve.Optimal.String(),
		SeamColor: carve.DefaultSeamColor,
	}
}

// LoadConfig reads the YAML configuration file and merges it over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse the config file: %w", err)
	}
	return cfg, nil
}
