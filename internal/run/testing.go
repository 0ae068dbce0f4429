/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package run

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stackscout/stackscout/internal/report"
)

// MockRunner implements Runner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, input Input) (report.Report, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(report.Report), args.Error(1)
}
