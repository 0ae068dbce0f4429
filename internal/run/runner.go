/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package run

import (
	"context"
	"fmt"
	"io"

	"github.com/stackscout/stackscout/internal/collect"
	"github.com/stackscout/stackscout/internal/report"
)

// Runner defines the interface for a multi-account collection run
type Runner interface {
	Run(ctx context.Context, input Input) (report.Report, error)
}

// Input describes one collection run
type Input struct {
	// Profiles are iterated strictly in order, one at a time
	Profiles []string
	Region   string
	Target   string
	// Clean removes any previously collected report data before gathering
	Clean bool
}

// StackRunner implements Runner: it folds the per-profile results into a
// report, persists it, and renders the summary. Per-profile failures are
// recorded as data; only global conditions (cleaning or writing the report)
// surface as errors.
type StackRunner struct {
	collector collect.Collector
	writer    *report.Writer
	out       io.Writer
	styles    *report.Styles
}

// NewStackRunner creates a runner wiring the collector to the report writer
func NewStackRunner(collector collect.Collector, writer *report.Writer, out io.Writer, styles *report.Styles) *StackRunner {
	return &StackRunner{
		collector: collector,
		writer:    writer,
		out:       out,
		styles:    styles,
	}
}

// Run executes the collection loop and returns the report. The caller decides
// how to map failure entries onto an exit code.
func (r *StackRunner) Run(ctx context.Context, input Input) (report.Report, error) {
	if input.Clean {
		if err := r.writer.Clean(); err != nil {
			return nil, err
		}
	}

	outcome := report.Report{}
	for _, profile := range input.Profiles {
		outcome[profile] = r.collector.Collect(ctx, profile, input.Region, input.Target)
	}

	if err := r.writer.Write(outcome); err != nil {
		return outcome, fmt.Errorf("failed to save report: %w", err)
	}

	report.RenderSummary(r.out, outcome, r.styles)

	return outcome, nil
}
