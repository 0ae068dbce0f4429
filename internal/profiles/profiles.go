/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package profiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// SharedConfigFile returns the AWS shared config file location, honouring
// the AWS_CONFIG_FILE environment variable.
func SharedConfigFile() (string, error) {
	if path := os.Getenv("AWS_CONFIG_FILE"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".aws", "config"), nil
}

// List returns the profile names declared in the shared config file, in file
// order. Section names like "profile staging" are reduced to "staging"; the
// "default" profile keeps its name.
func List(path string) ([]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load shared config %s: %w", path, err)
	}

	var names []string
	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		names = append(names, strings.TrimPrefix(name, "profile "))
	}

	return names, nil
}
