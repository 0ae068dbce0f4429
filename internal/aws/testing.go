/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/stretchr/testify/mock"
)

// MockClientFactory implements ClientFactory for testing
type MockClientFactory struct {
	mock.Mock
}

func (m *MockClientFactory) GetStackOperations(ctx context.Context, profile, region string) (StackOperations, error) {
	args := m.Called(ctx, profile, region)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(StackOperations), args.Error(1)
}

// MockStackOperations implements StackOperations for testing
type MockStackOperations struct {
	mock.Mock
}

func (m *MockStackOperations) DescribeAllStacks(ctx context.Context) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}

// MockCloudFormationClient implements the AWS CloudFormation service client
// interface for testing
type MockCloudFormationClient struct {
	mock.Mock
}

func (m *MockCloudFormationClient) DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cloudformation.DescribeStacksOutput), args.Error(1)
}
