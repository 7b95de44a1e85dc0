// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spweights/eigen"
	"github.com/katalvlaran/spweights/matrix"
)

// Rows returns the row-stochastic version of w: every entry is divided by
// its row sum. Rows summing to zero (isolated units) stay empty; this is
// not an error. Rows are processed in parallel blocks.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNegativeValue.
func Rows(w *matrix.Sparse, opts ...Option) (*matrix.Sparse, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateNonNegative(w); err != nil {
		return nil, fmt.Errorf("normalize.Rows: %w", err)
	}

	n := w.Rows()
	rowCols := make([][]int, n)
	rowVals := make([][]float64, n)
	err = matrix.ParallelRows(n, o.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			cols, vals := w.Row(i)
			if sum := floats.Sum(vals); sum > 0 {
				floats.Scale(1/sum, vals)
			}
			rowCols[i], rowVals[i] = cols, vals
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("normalize.Rows: %w", err)
	}

	return matrix.NewSparseFromRows(n, w.Cols(), rowCols, rowVals)
}

// Spectral divides w by its leading eigenvalue λ and returns the scaled
// matrix with λ. For non-negative w, λ is the Perron root: it is real, it has
// the largest real part and the largest magnitude of the spectrum, so the
// result has spectral radius 1.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNegativeValue,
// ErrZeroSpectralRadius, eigen.ErrNotConverged.
func Spectral(w *matrix.Sparse, opts ...Option) (*matrix.Sparse, float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	if err = matrix.ValidateNonNegative(w); err != nil {
		return nil, 0, fmt.Errorf("normalize.Spectral: %w", err)
	}
	lambda, err := eigen.Leading(w, o.Solver, o.Eigen...)
	if err != nil {
		return nil, 0, fmt.Errorf("normalize.Spectral: %w", err)
	}
	if !(lambda > matrix.DefaultEpsilon) {
		return nil, lambda, fmt.Errorf("normalize.Spectral: λ=%g: %w", lambda, ErrZeroSpectralRadius)
	}
	out, err := w.Scale(1 / lambda)
	if err != nil {
		return nil, 0, fmt.Errorf("normalize.Spectral: %w", err)
	}

	return out, lambda, nil
}

// Apply runs the normalization selected by mode. ModeNone returns w itself.
func Apply(w *matrix.Sparse, mode Mode, opts ...Option) (*matrix.Sparse, error) {
	switch mode {
	case ModeNone:
		if err := matrix.ValidateNotNil(w); err != nil {
			return nil, fmt.Errorf("normalize.Apply: %w", err)
		}
		return w, nil
	case ModeRow:
		return Rows(w, opts...)
	case ModeSpectral:
		out, _, err := Spectral(w, opts...)
		return out, err
	default:
		return nil, fmt.Errorf("normalize.Apply: %v: %w", mode, ErrUnknownMode)
	}
}
