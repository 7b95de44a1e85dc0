// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the module.
// All algorithms MUST return these sentinels (or sentinels wrapping them) and
// tests MUST check them via errors.Is. No algorithm panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// ERROR CATEGORIES
// ----------------
// Every failure surfaced by this module belongs to exactly one category.
// Specific sentinels below (and in sibling packages) wrap their category, so
// errors.Is(err, ErrInvalidInputShape) matches ErrNonSquare, ErrAsymmetry etc.
var (
	// ErrInvalidInputShape groups shape and content violations of input
	// matrices: non-square, mismatched unit counts, negative distances.
	ErrInvalidInputShape = errors.New("invalid input shape")

	// ErrDegenerateGeometry groups zero-area and self-intersecting polygons.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// ErrNumericDomain groups invalid numeric parameters (non-positive
	// exponents, zero distances under an inverse kernel, zero spectral radius).
	ErrNumericDomain = errors.New("numeric domain error")

	// ErrConvergenceFailure groups iterative solvers that exhausted their budget.
	ErrConvergenceFailure = errors.New("convergence failure")
)

// categorize builds a sentinel whose message is prefixed "matrix: ..." and
// which unwraps to the given category.
func categorize(category error, msg string) error {
	return fmt.Errorf("matrix: %s: %w", msg, category)
}

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. If context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers still use errors.Is.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = categorize(ErrInvalidInputShape, "dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = categorize(ErrInvalidInputShape, "index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the matrix order, or a geometry
	// set whose size differs from the distance matrix.
	ErrDimensionMismatch = categorize(ErrInvalidInputShape, "dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = categorize(ErrInvalidInputShape, "matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured numeric policy (epsilon).
	ErrAsymmetry = categorize(ErrInvalidInputShape, "matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal is required to be 0 but a
	// non-zero entry was observed.
	ErrNonZeroDiagonal = categorize(ErrInvalidInputShape, "diagonal not zero")

	// ErrNegativeValue signals a negative entry where non-negative values are
	// required (distances, weights).
	ErrNegativeValue = categorize(ErrInvalidInputShape, "negative entry")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, etc.).
	ErrNaNInf = categorize(ErrInvalidInputShape, "NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = categorize(ErrInvalidInputShape, "nil matrix")

	// ErrUnsortedEntry is returned by the sparse builder when entries are not
	// appended in row-major order with strictly increasing columns.
	ErrUnsortedEntry = categorize(ErrInvalidInputShape, "sparse entries out of order")
)
