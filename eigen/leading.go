// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spweights/matrix"
)

// Leading returns the leading eigenvalue of a square non-negative matrix with
// the selected solver. For non-negative input every solver reports the same
// quantity (the Perron root) up to its tolerance.
//
// SolverPower works on *matrix.Sparse directly; any other Reader is copied
// into CSR first. SolverJacobi validates symmetry with the solver tolerance.
//
// Errors: ErrUnknownSolver plus those of Power, Dense and Jacobi.
func Leading(a matrix.Reader, solver Solver, opts ...Option) (float64, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return 0, err
	}
	if err = matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("eigen.Leading: %w", err)
	}

	switch solver {
	case SolverPower:
		op, ok := a.(*matrix.Sparse)
		if !ok {
			if op, err = matrix.NewSparseFromDense(a); err != nil {
				return 0, fmt.Errorf("eigen.Leading: %w", err)
			}
		}
		res, err := Power(op, opts...)
		if err != nil {
			return 0, err
		}
		return res.Value, nil

	case SolverDense:
		return Dense(a)

	case SolverJacobi:
		vals, _, err := Jacobi(a, o.Tolerance, DefaultJacobiSweeps)
		if err != nil {
			return 0, err
		}
		best := math.Inf(-1)
		for _, v := range vals {
			best = math.Max(best, v)
		}
		return best, nil

	default:
		return 0, fmt.Errorf("eigen.Leading: %v: %w", solver, ErrUnknownSolver)
	}
}
