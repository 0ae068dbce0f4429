/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package collect

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"

	"github.com/stackscout/stackscout/internal/aws"
)

// Collector produces a Result for one credential profile
type Collector interface {
	Collect(ctx context.Context, profile, region, targetPrefix string) Result
}

// StackCollector implements Collector using AWS CloudFormation
type StackCollector struct {
	clientFactory aws.ClientFactory
}

// NewStackCollector creates a collector backed by the given client factory
func NewStackCollector(clientFactory aws.ClientFactory) *StackCollector {
	return &StackCollector{
		clientFactory: clientFactory,
	}
}

// Collect describes the stacks visible to one profile and extracts the
// outputs of the first stack whose name starts with targetPrefix. Every
// error, whether from session construction or from the remote call, is
// captured as a Failure rather than propagated; a run over many profiles
// must not be aborted by one account.
func (c *StackCollector) Collect(ctx context.Context, profile, region, targetPrefix string) Result {
	ops, err := c.clientFactory.GetStackOperations(ctx, profile, region)
	if err != nil {
		return Failure(aws.FailureMessage(err))
	}

	response, err := ops.DescribeAllStacks(ctx)
	if err != nil {
		return Failure(aws.FailureMessage(err))
	}

	targets := FilterByPrefix(response.Stacks, targetPrefix)
	if len(targets) == 0 {
		// No stack matches the prefix: an explicit empty result, not an
		// absent one.
		return Success(nil)
	}

	return Success(convertOutputs(targets[0].Outputs))
}

// convertOutputs maps CloudFormation outputs into report outputs, keeping
// declaration order
func convertOutputs(outputs []types.Output) []Output {
	converted := make([]Output, 0, len(outputs))
	for _, output := range outputs {
		converted = append(converted, Output{
			Key:   awssdk.ToString(output.OutputKey),
			Value: awssdk.ToString(output.OutputValue),
		})
	}
	return converted
}
