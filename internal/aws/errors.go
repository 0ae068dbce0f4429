/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// FailureMessage renders a remote-call error as the message recorded in the
// report. Service errors keep their API error code so report diffs stay
// stable across SDK upgrades.
func FailureMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return err.Error()
}
