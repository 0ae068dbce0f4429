/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package report

import (
	"sort"

	"github.com/stackscout/stackscout/internal/collect"
)

// Report maps profile name to the result collected for that account. It
// holds exactly one entry per distinct profile; a repeated profile string
// overwrites the earlier entry.
type Report map[string]collect.Result

// Failures returns the failure messages in profile-name order, matching the
// deterministic key order of the serialized report
func (r Report) Failures() []string {
	profiles := make([]string, 0, len(r))
	for profile := range r {
		profiles = append(profiles, profile)
	}
	sort.Strings(profiles)

	var failures []string
	for _, profile := range profiles {
		if result := r[profile]; result.Failed() {
			failures = append(failures, result.Exception)
		}
	}
	return failures
}
