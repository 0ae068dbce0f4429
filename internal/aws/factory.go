/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// ClientFactory creates account-scoped CloudFormation operations. Each
// profile resolves its own credentials; sessions are never shared across
// profiles.
type ClientFactory interface {
	// GetStackOperations returns CloudFormation operations for the given
	// shared-config profile and region
	GetStackOperations(ctx context.Context, profile, region string) (StackOperations, error)
}

// DefaultClientFactory implements ClientFactory with per-profile caching
type DefaultClientFactory struct {
	clientCache map[string]StackOperations
	mutex       sync.RWMutex
	progress    io.Writer
}

// NewClientFactory creates a client factory. progress receives pagination
// notices from the operations it hands out.
func NewClientFactory(progress io.Writer) *DefaultClientFactory {
	return &DefaultClientFactory{
		clientCache: make(map[string]StackOperations),
		progress:    progress,
	}
}

// GetStackOperations returns CloudFormation operations for the specified
// profile and region, constructing and caching a client on first use
func (f *DefaultClientFactory) GetStackOperations(ctx context.Context, profile, region string) (StackOperations, error) {
	if region == "" {
		return nil, fmt.Errorf("region cannot be empty")
	}

	key := profile + "/" + region

	// Check cache first (read lock)
	f.mutex.RLock()
	if ops, exists := f.clientCache[key]; exists {
		f.mutex.RUnlock()
		return ops, nil
	}
	f.mutex.RUnlock()

	client, err := NewDefaultClient(ctx, Config{
		Profile: profile,
		Region:  region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client for profile %s: %w", profile, err)
	}

	ops := NewStackOperationsWithClient(client.CloudFormation(), 1, f.progress)

	// Cache for future use (write lock)
	f.mutex.Lock()
	f.clientCache[key] = ops
	f.mutex.Unlock()

	return ops, nil
}
