/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional defaults loaded from a stackscout.yaml file.
// Explicit command-line flags always win over file values.
type Config struct {
	Region    string   `yaml:"region"`
	Profiles  []string `yaml:"profiles"`
	Target    string   `yaml:"target"`
	ReportDir string   `yaml:"report-dir"`
}

// Load reads defaults from filename. A missing file is not an error and
// yields an empty config.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	return &cfg, nil
}
