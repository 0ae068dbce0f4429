/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesCommand_Structure(t *testing.T) {
	cmd := findCommand(rootCmd, "profiles")

	require.NotNil(t, cmd)
	assert.Equal(t, "profiles", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("file"))
}

func TestProfilesCommand_ListsProfiles(t *testing.T) {
	configContent := `[default]
region = eu-west-1

[profile staging]
region = eu-west-2
`
	configFile := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0644))

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"profiles", "--file", configFile})

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Equal(t, "default\nstaging\n", buf.String())
}

func TestProfilesCommand_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"profiles", "--file", filepath.Join(t.TempDir(), "absent")})

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestProfilesCommand_RejectsPositionalArgs(t *testing.T) {
	cmd := findCommand(rootCmd, "profiles")
	require.NotNil(t, cmd)

	err := cmd.Args(cmd, []string{"extra"})
	assert.Error(t, err)
}
