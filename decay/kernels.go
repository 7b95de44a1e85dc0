// SPDX-License-Identifier: MIT

package decay

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// Inverse returns w_ij = d_ij^(−α) for i ≠ j and d_ij < cutoff, 0 otherwise.
// The diagonal is never evaluated.
//
// Errors: distance.Validate errors, ErrInvalidParameter, ErrZeroDistance,
// normalization errors.
func Inverse(d matrix.Reader, opts ...Option) (*matrix.Sparse, error) {
	return build(d, KindInverse, opts)
}

// Exponential returns w_ij = exp(−α·d_ij) for i ≠ j and d_ij < cutoff, 0
// otherwise; the diagonal is 0 although exp(0) = 1.
//
// Errors: distance.Validate errors, ErrInvalidParameter, normalization errors.
func Exponential(d matrix.Reader, opts ...Option) (*matrix.Sparse, error) {
	return build(d, KindExponential, opts)
}

// DoublePower returns w_ij = (1 − (d_ij/D)^p)^p for i ≠ j and d_ij < D, 0
// otherwise. D is the cutoff, or the largest distance when no cutoff is set,
// so the farthest pair gets weight 0. An all-zero d yields an empty matrix.
//
// Errors: distance.Validate errors, ErrInvalidParameter, normalization errors.
func DoublePower(d matrix.Reader, opts ...Option) (*matrix.Sparse, error) {
	return build(d, KindDoublePower, opts)
}

// Weights dispatches to the kernel selected by kind with the same options,
// so its result is identical to calling that kernel directly.
//
// Errors: ErrUnknownKind plus those of the kernel.
func Weights(d matrix.Reader, kind Kind, opts ...Option) (*matrix.Sparse, error) {
	switch kind {
	case KindInverse:
		return Inverse(d, opts...)
	case KindExponential:
		return Exponential(d, opts...)
	case KindDoublePower:
		return DoublePower(d, opts...)
	default:
		return nil, fmt.Errorf("decay.Weights: %v: %w", kind, ErrUnknownKind)
	}
}

// build validates d, evaluates the kernel row by row in parallel blocks and
// applies the requested normalization.
func build(d matrix.Reader, kind Kind, opts []Option) (*matrix.Sparse, error) {
	tag := "decay." + kindFunc(kind)
	o, mode, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	n, err := distance.Validate(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	cutoff := o.Cutoff
	if cutoff == 0 {
		cutoff = math.Inf(1)
	}
	if kind == KindDoublePower && o.Cutoff == 0 {
		cutoff = distance.Max(d)
	}
	kernel := kernelFor(kind, o, cutoff)

	rowCols := make([][]int, n)
	rowVals := make([][]float64, n)
	err = matrix.ParallelRows(n, o.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				v, err := d.At(i, j)
				if err != nil {
					return err
				}
				if !(v < cutoff) {
					continue
				}
				if v == 0 && kind == KindInverse {
					return fmt.Errorf("(%d,%d): %w", i, j, ErrZeroDistance)
				}
				w := kernel(v)
				if math.IsInf(w, 0) || math.IsNaN(w) {
					return fmt.Errorf("(%d,%d): weight of d=%g overflows: %w", i, j, v, ErrInvalidParameter)
				}
				if w > 0 {
					rowCols[i] = append(rowCols[i], j)
					rowVals[i] = append(rowVals[i], w)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	w, err := matrix.NewSparseFromRows(n, n, rowCols, rowVals)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return normalize.Apply(w, mode, o.Normalize...)
}

// kernelFor returns the scalar kernel; D is only used by DoublePower.
func kernelFor(kind Kind, o Options, D float64) func(float64) float64 {
	switch kind {
	case KindExponential:
		return func(v float64) float64 { return math.Exp(-o.Alpha * v) }
	case KindDoublePower:
		return func(v float64) float64 { return math.Pow(1-math.Pow(v/D, o.Power), o.Power) }
	default:
		return func(v float64) float64 { return math.Pow(v, -o.Alpha) }
	}
}

func kindFunc(kind Kind) string {
	switch kind {
	case KindExponential:
		return "Exponential"
	case KindDoublePower:
		return "DoublePower"
	default:
		return "Inverse"
	}
}
