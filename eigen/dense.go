// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/spweights/matrix"
)

// Dense returns the eigenvalue with the largest real part of a square matrix
// using a full (LAPACK-style) eigendecomposition from gonum.
// Complex eigenvalues contribute their real part only; this matches the
// "LR" (largest real) convention of sparse Arnoldi solvers.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrNotConverged when the
// factorization fails.
// Complexity: O(n³) time, O(n²) space. Intended for n up to a few thousand.
func Dense(a matrix.Reader) (float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("eigen.Dense: %w", err)
	}
	g, err := matrix.ToGonum(a)
	if err != nil {
		return 0, fmt.Errorf("eigen.Dense: %w", err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return 0, fmt.Errorf("eigen.Dense: factorization failed: %w", ErrNotConverged)
	}
	best := math.Inf(-1)
	for _, v := range eig.Values(nil) {
		if real(v) > best {
			best = real(v)
		}
	}

	return best, nil
}
