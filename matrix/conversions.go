// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies any Reader into a gonum *mat.Dense, the representation most
// Go estimation code (and the dense eigen solver) expects.
// Errors: ErrNilMatrix, At errors of the source.
// Complexity: O(r*c).
func ToGonum(m Reader) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := m.Rows(), m.Cols()
	out := mat.NewDense(r, c, nil)
	if s, ok := m.(*Sparse); ok {
		s.Do(func(i, j int, v float64) bool {
			out.Set(i, j, v)
			return true
		})
		return out, nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("ToGonum: %w", err)
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}

// FromGonum copies a gonum matrix into a Dense, enforcing the finite policy.
// Errors: ErrInvalidDimensions, ErrNaNInf.
func FromGonum(src mat.Matrix) (*Dense, error) {
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, src.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}
