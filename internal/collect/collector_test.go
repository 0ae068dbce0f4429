/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package collect

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stackscout/stackscout/internal/aws"
)

func describeOutput(stacks ...types.Stack) *cloudformation.DescribeStacksOutput {
	return &cloudformation.DescribeStacksOutput{Stacks: stacks}
}

func stackWithOutputs(name string, outputs ...types.Output) types.Stack {
	return types.Stack{
		StackName: awssdk.String(name),
		Outputs:   outputs,
	}
}

func TestCollect_FirstMatchingStackOutputs(t *testing.T) {
	mockOps := &aws.MockStackOperations{}
	mockOps.On("DescribeAllStacks", mock.Anything).Return(describeOutput(
		stackWithOutputs("other-db"),
		stackWithOutputs("proj-foo", types.Output{
			OutputKey:   awssdk.String("Url"),
			OutputValue: awssdk.String("http://x"),
		}),
		stackWithOutputs("proj-bar", types.Output{
			OutputKey:   awssdk.String("Ignored"),
			OutputValue: awssdk.String("yes"),
		}),
	), nil)

	mockFactory := &aws.MockClientFactory{}
	mockFactory.On("GetStackOperations", mock.Anything, "a", "eu-west-1").Return(mockOps, nil)

	collector := NewStackCollector(mockFactory)
	result := collector.Collect(context.Background(), "a", "eu-west-1", "proj")

	require.False(t, result.Failed())

	// Only the first matching stack's outputs are extracted
	assert.Equal(t, []Output{{Key: "Url", Value: "http://x"}}, result.Outputs)
	mockFactory.AssertExpectations(t)
	mockOps.AssertExpectations(t)
}

func TestCollect_RemoteErrorCaptured(t *testing.T) {
	mockOps := &aws.MockStackOperations{}
	mockOps.On("DescribeAllStacks", mock.Anything).Return(nil, errors.New("AccessDenied"))

	mockFactory := &aws.MockClientFactory{}
	mockFactory.On("GetStackOperations", mock.Anything, "b", "eu-west-1").Return(mockOps, nil)

	collector := NewStackCollector(mockFactory)
	result := collector.Collect(context.Background(), "b", "eu-west-1", "proj")

	require.True(t, result.Failed())
	assert.Equal(t, "AccessDenied", result.Exception)
}

func TestCollect_SessionErrorCaptured(t *testing.T) {
	mockFactory := &aws.MockClientFactory{}
	mockFactory.On("GetStackOperations", mock.Anything, "ghost", "eu-west-1").
		Return(nil, errors.New("failed to create client for profile ghost: profile not found"))

	collector := NewStackCollector(mockFactory)
	result := collector.Collect(context.Background(), "ghost", "eu-west-1", "proj")

	require.True(t, result.Failed())
	assert.Contains(t, result.Exception, "profile not found")
}

func TestCollect_NoMatchIsExplicitEmptySuccess(t *testing.T) {
	mockOps := &aws.MockStackOperations{}
	mockOps.On("DescribeAllStacks", mock.Anything).Return(describeOutput(
		stackWithOutputs("unrelated"),
	), nil)

	mockFactory := &aws.MockClientFactory{}
	mockFactory.On("GetStackOperations", mock.Anything, "a", "eu-west-1").Return(mockOps, nil)

	collector := NewStackCollector(mockFactory)
	result := collector.Collect(context.Background(), "a", "eu-west-1", "proj")

	require.False(t, result.Failed())
	assert.NotNil(t, result.Outputs)
	assert.Empty(t, result.Outputs)
}

func TestCollect_MatchWithoutOutputs(t *testing.T) {
	mockOps := &aws.MockStackOperations{}
	mockOps.On("DescribeAllStacks", mock.Anything).Return(describeOutput(
		stackWithOutputs("proj-empty"),
	), nil)

	mockFactory := &aws.MockClientFactory{}
	mockFactory.On("GetStackOperations", mock.Anything, "a", "eu-west-1").Return(mockOps, nil)

	collector := NewStackCollector(mockFactory)
	result := collector.Collect(context.Background(), "a", "eu-west-1", "proj")

	require.False(t, result.Failed())
	assert.Empty(t, result.Outputs)
}
