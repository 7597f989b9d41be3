package models

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional file-based defaults for the CLI. Flags override
// anything set here.
type Config struct {
	// Sender is the bot account name kept when reading JSON exports.
	Sender string `yaml:"sender"`
	// Format selects the result output encoding: json or yaml.
	Format string `yaml:"format"`
	// DBPath overrides the default history database location.
	DBPath string `yaml:"db_path"`
}

// LoadConfig reads CLI defaults from a YAML file. A missing file is not an
// error; built-in defaults apply.
func LoadConfig(path string) (*Config, error) {
	config := &Config{Format: "json"}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}
