// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spweights/matrix"
)

// DefaultSymmetryTol is the relative symmetry tolerance: |d_ij − d_ji| may
// not exceed DefaultSymmetryTol · max(1, max_ij d_ij).
const DefaultSymmetryTol = 1e-9

// Validate checks that d is a usable distance matrix and returns its order.
// Stages:
//   - Stage 1: non-nil and square.
//   - Stage 2: every entry finite and non-negative.
//   - Stage 3: exact zero diagonal.
//   - Stage 4: symmetric within DefaultSymmetryTol, relative to the largest entry.
//
// Nothing is coerced: the first violation is returned.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// matrix.ErrNegativeValue, matrix.ErrNonZeroDiagonal, matrix.ErrAsymmetry.
// All match matrix.ErrInvalidInputShape.
func Validate(d matrix.Reader) (int, error) {
	// Stage 1: shape
	if err := matrix.ValidateSquare(d); err != nil {
		return 0, fmt.Errorf("distance.Validate: %w", err)
	}
	// Stage 2: value domain
	if err := matrix.ValidateNonNegative(d); err != nil {
		return 0, fmt.Errorf("distance.Validate: %w", err)
	}
	// Stage 3: diagonal
	if err := matrix.ValidateZeroDiagonal(d); err != nil {
		return 0, fmt.Errorf("distance.Validate: %w", err)
	}
	// Stage 4: symmetry
	tol := DefaultSymmetryTol * math.Max(1, Max(d))
	if err := matrix.ValidateSymmetric(d, tol); err != nil {
		return 0, fmt.Errorf("distance.Validate: %w", err)
	}

	return d.Rows(), nil
}

// Max returns the largest entry of d (0 for an empty or all-zero matrix).
func Max(d matrix.Reader) float64 {
	if dense, ok := d.(*matrix.Dense); ok {
		return math.Max(0, dense.Max())
	}
	var best float64
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			if v, _ := d.At(i, j); v > best {
				best = v
			}
		}
	}

	return best
}
