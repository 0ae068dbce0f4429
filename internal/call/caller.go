/*
Copyright © 2025 Stackscout Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package call

import (
	"context"
	"fmt"
	"io"
)

// Pager yields successive pages of a paginated API operation.
// The AWS SDK's typed paginators satisfy this shape via thin adapters.
type Pager[P any] interface {
	HasMorePages() bool
	NextPage(ctx context.Context) (P, error)
}

// Operation describes one remote API call. Paginate returns a fresh pager
// each time it is invoked, or is nil when the operation has no pagination,
// in which case Invoke performs the call once. Merge folds a later page into
// the accumulated result; the first page's non-collection fields are kept
// as-is.
type Operation[P any] struct {
	Name     string
	Paginate func() Pager[P]
	Invoke   func(ctx context.Context) (P, error)
	Merge    func(acc, page P) P
}

// Do invokes op with a bounded number of attempts, transparently following
// pagination and merging pages in order. The attempt loop is an unconditional
// replay: attempts of 1 means a single pass, and each further attempt re-runs
// pagination from scratch with the last pass winning. A remote error aborts
// immediately and is returned to the caller; it is never retried.
//
// A progress notice is written whenever a second or later page is fetched.
func Do[P any](ctx context.Context, op Operation[P], attempts int, progress io.Writer) (P, error) {
	var result P

	if attempts < 1 {
		attempts = 1
	}
	if progress == nil {
		progress = io.Discard
	}

	for attempt := 0; attempt < attempts; attempt++ {
		if op.Paginate != nil {
			pager := op.Paginate()
			first := true
			for pager.HasMorePages() {
				page, err := pager.NextPage(ctx)
				if err != nil {
					var zero P
					return zero, err
				}
				if first {
					result = page
					first = false
					continue
				}
				fmt.Fprintln(progress, "  ...paginating")
				result = op.Merge(result, page)
			}
			continue
		}

		page, err := op.Invoke(ctx)
		if err != nil {
			var zero P
			return zero, err
		}
		result = page
	}

	return result, nil
}
