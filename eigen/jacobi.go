// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spweights/matrix"
)

// Jacobi performs Jacobi eigenvalue decomposition on a symmetric matrix m.
// It returns the eigenvalues and a matrix Q whose columns are eigenvectors.
// Implementation:
//   - Stage 1: validate symmetric square input within tol.
//   - Stage 2: copy m into a working Dense A and set Q = I.
//   - Stage 3: run cyclic sweeps; one sweep rotates every pair (p,q), p<q,
//     in row order, zeroing A[p,q]. Stop once max |A[p,q]| < tol.
//
// Errors:
//   - matrix.ErrNonSquare, matrix.ErrAsymmetry (validation),
//     ErrOptionViolation (tol ≤ 0 or maxSweeps ≤ 0),
//     ErrNotConverged (max off-diagonal ≥ tol after maxSweeps sweeps).
//
// Determinism:
//   - Fixed row-cyclic pivot order produces stable results.
//
// Complexity:
//   - Time O(maxSweeps · n³), Space O(n²).
func Jacobi(m matrix.Reader, tol float64, maxSweeps int) ([]float64, *matrix.Dense, error) {
	if !(tol > 0) || maxSweeps <= 0 {
		return nil, nil, fmt.Errorf("eigen.Jacobi: tol=%g maxSweeps=%d: %w", tol, maxSweeps, ErrOptionViolation)
	}
	// Stage 1: Validate input.
	if err := matrix.ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("eigen.Jacobi: %w", err)
	}
	n := m.Rows()

	// Stage 2: Prepare A (work) and Q (eigenvectors).
	A, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("eigen.Jacobi: %w", err)
	}
	Q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("eigen.Jacobi: %w", err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = m.At(i, j) // in range after validation
			_ = A.Set(i, j, v)
		}
		_ = Q.Set(i, i, 1.0) // identity
	}

	// Stage 3: Execute Jacobi sweeps.
	var (
		sweep         int     // sweep counter
		p, q          int     // pivot indices
		maxOff        float64 // largest |A[p][q]|
		app, aqq, apq float64 // pivot block
		aip, aiq      float64 // row/column entries being rotated
		theta, t      float64 // rotation parameters
		c, s          float64 // cosine and sine
		converged     bool
	)
	for sweep = 0; sweep <= maxSweeps; sweep++ {
		maxOff = offDiagonalMax(A, n)
		if maxOff < tol {
			converged = true
			break
		}
		if sweep == maxSweeps {
			break
		}
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq, _ = A.At(p, q)
				if apq == 0 {
					continue
				}
				app, _ = A.At(p, p)
				aqq, _ = A.At(q, q)
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1) // cosine
				s = t * c                  // sine

				// apply rotation to rows/columns p and q
				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, _ = A.At(i, p)
					aiq, _ = A.At(i, q)
					_ = A.Set(i, p, c*aip-s*aiq)
					_ = A.Set(p, i, c*aip-s*aiq)
					_ = A.Set(i, q, s*aip+c*aiq)
					_ = A.Set(q, i, s*aip+c*aiq)
				}
				// update diagonal entries and annihilate the pivot
				_ = A.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
				_ = A.Set(q, q, s*s*app+2*c*s*apq+c*c*aqq)
				_ = A.Set(p, q, 0.0)
				_ = A.Set(q, p, 0.0)

				// accumulate into Q
				for i = 0; i < n; i++ {
					aip, _ = Q.At(i, p)
					aiq, _ = Q.At(i, q)
					_ = Q.Set(i, p, c*aip-s*aiq)
					_ = Q.Set(i, q, s*aip+c*aiq)
				}
			}
		}
	}
	if !converged {
		return nil, nil, fmt.Errorf("eigen.Jacobi: off-diagonal %.3g after %d sweeps: %w", maxOff, maxSweeps, ErrNotConverged)
	}

	// Stage 4: Finalize eigenvalues.
	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i], _ = A.At(i, i) // diagonal elements are eigenvalues
	}

	return eigs, Q, nil
}

// offDiagonalMax returns the largest |A[i][j]| above the diagonal.
func offDiagonalMax(A *matrix.Dense, n int) float64 {
	var best float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, _ := A.At(i, j)
			best = math.Max(best, math.Abs(v))
		}
	}

	return best
}
