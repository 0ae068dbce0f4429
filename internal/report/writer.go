/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	reportSubdir = "stackset"
	reportFile   = "stack_outputs.json"
)

// Writer persists reports beneath a root directory. The report file lives at
// <root>/stackset/stack_outputs.json and is overwritten on every run.
type Writer struct {
	root string
}

// NewWriter creates a writer rooted at the given directory
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Path returns the location the report is written to
func (w *Writer) Path() string {
	return filepath.Join(w.root, reportSubdir, reportFile)
}

// Write serializes the report with sorted keys and 4-space indentation so
// consecutive runs can be diffed, then writes it out. A serialization error
// aborts before anything is written; a partial report is worse than none.
func (w *Writer) Write(r Report) error {
	data, err := json.MarshalIndent(r, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	dir := filepath.Join(w.root, reportSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, reportFile)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}

	return nil
}

// Clean removes any previously collected report data. A missing directory is
// not an error.
func (w *Writer) Clean() error {
	if err := os.RemoveAll(filepath.Join(w.root, reportSubdir)); err != nil {
		return fmt.Errorf("failed to clean report directory: %w", err)
	}
	return nil
}
