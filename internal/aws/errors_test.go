/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

func TestFailureMessage_APIError(t *testing.T) {
	err := &smithy.GenericAPIError{
		Code:    "AccessDenied",
		Message: "User is not authorized to perform cloudformation:DescribeStacks",
	}

	assert.Equal(t, "AccessDenied: User is not authorized to perform cloudformation:DescribeStacks", FailureMessage(err))
}

func TestFailureMessage_WrappedAPIError(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "Throttling", Message: "Rate exceeded"}
	err := fmt.Errorf("operation error CloudFormation: DescribeStacks: %w", apiErr)

	assert.Equal(t, "Throttling: Rate exceeded", FailureMessage(err))
}

func TestFailureMessage_PlainError(t *testing.T) {
	err := errors.New("dial tcp: lookup cloudformation.eu-west-1.amazonaws.com: no such host")

	assert.Equal(t, err.Error(), FailureMessage(err))
}
