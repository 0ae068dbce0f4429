/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package collect

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCollector implements Collector for testing
type MockCollector struct {
	mock.Mock
}

func (m *MockCollector) Collect(ctx context.Context, profile, region, targetPrefix string) Result {
	args := m.Called(ctx, profile, region, targetPrefix)
	return args.Get(0).(Result)
}
