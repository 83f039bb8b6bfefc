// Package config loads deckparse configuration from an optional YAML file.
// Everything has a sensible zero-config default; a missing file means
// defaults only.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PatternConfig is one user-supplied candidate pattern, appended after the
// built-in ones.
type PatternConfig struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
}

// Config holds runtime settings for the CLI and the HTTP server.
type Config struct {
	Port             string `yaml:"port"`
	MaxDocumentBytes int64  `yaml:"max_document_bytes"`

	ExtraTocPatterns     []PatternConfig `yaml:"extra_toc_patterns"`
	ExtraSectionPatterns []PatternConfig `yaml:"extra_section_patterns"`
}

func (c *Config) defaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.MaxDocumentBytes <= 0 {
		c.MaxDocumentBytes = 10 * 1024 * 1024
	}
}

// Load reads the config file at path. An empty path returns defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		cfg.defaults()
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg.defaults()
	return cfg, nil
}
