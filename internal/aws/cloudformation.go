/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/stackscout/stackscout/internal/call"
)

// DefaultStackOperations provides CloudFormation-specific operations
type DefaultStackOperations struct {
	client   CloudFormationClient
	attempts int
	progress io.Writer
}

// NewStackOperationsWithClient creates operations with a custom client (for testing).
// attempts bounds the replay loop of each call; progress receives pagination notices.
func NewStackOperationsWithClient(client CloudFormationClient, attempts int, progress io.Writer) *DefaultStackOperations {
	return &DefaultStackOperations{
		client:   client,
		attempts: attempts,
		progress: progress,
	}
}

// DescribeAllStacks returns the merged DescribeStacks response across all
// pages. The first page's scalar fields are kept; Stacks are concatenated in
// page order.
func (ops *DefaultStackOperations) DescribeAllStacks(ctx context.Context) (*cloudformation.DescribeStacksOutput, error) {
	op := call.Operation[*cloudformation.DescribeStacksOutput]{
		Name: "DescribeStacks",
		Paginate: func() call.Pager[*cloudformation.DescribeStacksOutput] {
			return &describeStacksPager{
				paginator: cloudformation.NewDescribeStacksPaginator(ops.client, &cloudformation.DescribeStacksInput{}),
			}
		},
		Merge: mergeDescribeStacks,
	}

	return call.Do(ctx, op, ops.attempts, ops.progress)
}

// describeStacksPager adapts the SDK's typed paginator to call.Pager
type describeStacksPager struct {
	paginator *cloudformation.DescribeStacksPaginator
}

func (p *describeStacksPager) HasMorePages() bool {
	return p.paginator.HasMorePages()
}

func (p *describeStacksPager) NextPage(ctx context.Context) (*cloudformation.DescribeStacksOutput, error) {
	return p.paginator.NextPage(ctx)
}

// mergeDescribeStacks folds a later page into the accumulated response
func mergeDescribeStacks(acc, page *cloudformation.DescribeStacksOutput) *cloudformation.DescribeStacksOutput {
	acc.Stacks = append(acc.Stacks, page.Stacks...)
	return acc
}
