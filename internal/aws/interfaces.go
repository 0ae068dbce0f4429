/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
)

// CloudFormationClient defines the subset of the CloudFormation API that
// stackscout invokes. This allows for easier testing with mock implementations
type CloudFormationClient interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
}

// Ensure that the actual CloudFormation client implements our interface
var _ CloudFormationClient = (*cloudformation.Client)(nil)

// Ensure that DefaultStackOperations implements StackOperations
var _ StackOperations = (*DefaultStackOperations)(nil)

// Ensure that DefaultClientFactory implements ClientFactory
var _ ClientFactory = (*DefaultClientFactory)(nil)

// StackOperations defines the CloudFormation operations stackscout performs
// against one account
type StackOperations interface {
	// DescribeAllStacks describes every stack visible to the account,
	// following pagination and merging pages in order.
	DescribeAllStacks(ctx context.Context) (*cloudformation.DescribeStacksOutput, error)
}
