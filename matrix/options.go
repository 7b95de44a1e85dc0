// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults shared by every package of the module.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Single source of truth: sibling packages reference these constants
//     instead of re-declaring tolerances.
package matrix

import (
	"math"
	"runtime"
)

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks
	// (symmetry of distance matrices, row sums in tests).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// Parallelism.
const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for row fan-out.
	DefaultWorkers = 0

	// minRowsPerWorker keeps tiny matrices on a single goroutine.
	minRowsPerWorker = 64
)

// ResolveWorkers maps a requested worker count onto an effective one.
// workers<=0 means "use GOMAXPROCS"; the result never exceeds what n rows can
// keep busy given minRowsPerWorker.
// Complexity: O(1).
func ResolveWorkers(n, workers int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	maxUseful := (n + minRowsPerWorker - 1) / minRowsPerWorker
	if maxUseful < 1 {
		maxUseful = 1
	}
	if workers > maxUseful {
		workers = maxUseful
	}

	return workers
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
