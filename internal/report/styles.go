/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package report

import (
	"os"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles for rendering the run summary
type Styles struct {
	Separator lipgloss.Style
	Summary   lipgloss.Style
	Failure   lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles builds summary styles. Colours are optimised based on terminal
// background (dark vs light).
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if useColour {
		hasDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

		var (
			separatorText string
			errorText     string
		)

		if hasDark {
			separatorText = "243" // Medium Grey
			errorText = "9"       // Red
		} else {
			separatorText = "242" // Medium Grey
			errorText = "1"       // Red
		}

		s.Separator = lipgloss.NewStyle().
			Foreground(lipgloss.Color(separatorText))

		s.Summary = lipgloss.NewStyle().Bold(true)

		s.Failure = lipgloss.NewStyle().
			Foreground(lipgloss.Color(errorText))

		return s
	}

	// Plain mode - empty styles pass text through unchanged
	plainStyle := lipgloss.NewStyle()
	s.Separator = plainStyle
	s.Summary = plainStyle
	s.Failure = plainStyle

	return s
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check TERM environment variable
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	// Check if stdout is a terminal
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
