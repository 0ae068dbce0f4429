/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package report

import (
	"fmt"
	"io"
	"strings"
)

// RenderSummary writes the post-run summary: a separator, one line counting
// profiles queried and errors captured, then each failure message. This is
// the human-readable counterpart to the exit-code contract.
func RenderSummary(w io.Writer, r Report, styles *Styles) {
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("-", 68)))

	failures := r.Failures()
	fmt.Fprintln(w, styles.Summary.Render(fmt.Sprintf("Summary: %d APIs called. %d errors", len(r), len(failures))))

	if len(failures) > 0 {
		fmt.Fprintln(w, "Failures:")
		for _, failure := range failures {
			fmt.Fprintln(w, styles.Failure.Render(failure))
		}
	}
}
