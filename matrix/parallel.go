// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/sync/errgroup"
)

// ParallelRows splits [0,n) into contiguous row blocks and runs fn(lo, hi)
// for each block on its own goroutine.
// MAIN DESCRIPTION:
//   - Shared fan-out for row-independent kernels (KNN selection, row
//     normalization). Each block writes only its own rows, so results are
//     identical for every worker count.
//
// Implementation:
//   - Stage 1: resolve the effective worker count (ResolveWorkers).
//   - Stage 2: a single worker runs fn(0, n) inline; otherwise blocks of
//     ceil(n/workers) rows go to an errgroup.Group.
//
// Returns:
//   - the first error returned by any block (errgroup semantics).
//
// Complexity:
//   - Time O(cost(fn)/workers) wall-clock, Space O(workers).
func ParallelRows(n, workers int, fn func(lo, hi int) error) error {
	if n <= 0 {
		return nil
	}
	workers = ResolveWorkers(n, workers)
	if workers == 1 {
		return fn(0, n)
	}

	block := (n + workers - 1) / workers
	var g errgroup.Group
	for lo := 0; lo < n; lo += block {
		lo, hi := lo, lo+block
		if hi > n {
			hi = n
		}
		g.Go(func() error { return fn(lo, hi) })
	}

	return g.Wait()
}
