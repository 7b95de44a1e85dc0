// SPDX-License-Identifier: MIT

package eigen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/spweights/matrix"
)

// Power computes the leading eigenvalue of a non-negative operator by shifted
// power iteration.
// MAIN DESCRIPTION:
//   - For a non-negative matrix the Perron root ρ is a real eigenvalue that is
//     both the largest in magnitude and the largest in real part, so the
//     "largest real part" convention of sparse Arnoldi solvers and the power
//     method agree.
//   - Iterating on A + σI with σ = ρ_bound/2 removes the oscillation that
//     periodic (e.g. bipartite) neighbour graphs cause in plain power
//     iteration: every other eigenvalue λ satisfies |λ+σ| < ρ+σ.
//
// Implementation:
//   - Stage 1: σ from the largest row sum (A·1); a zero operator returns 0.
//   - Stage 2: x₀ = 1/√n. Each step: Ax, λ = xᵀAx, residual ‖Ax − λx‖;
//     stop when residual ≤ tol·max(1,|λ|); else x ← (Ax + σx)/‖·‖.
//   - Stage 3: on budget exhaustion restart from the current x with a
//     doubled budget, up to Retries times, then ErrNotConverged.
//
// Errors:
//   - ErrOptionViolation, matrix.ErrInvalidDimensions, MulVec errors,
//     ErrNotConverged.
//
// Determinism:
//   - Fixed start vector and loop order; identical inputs give identical output.
//
// Complexity:
//   - Time O(iterations · nnz), Space O(n).
//
// AI-Hints:
//   - Nilpotent operators (ρ = 0 with a non-trivial Jordan block) converge
//     slowly; the budget turns that into a deterministic ErrNotConverged.
func Power(op Operator, opts ...Option) (Result, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if op == nil {
		return Result{}, fmt.Errorf("eigen.Power: %w", matrix.ErrNilMatrix)
	}
	n := op.Dim()
	if n <= 0 {
		return Result{}, fmt.Errorf("eigen.Power: %w", matrix.ErrInvalidDimensions)
	}

	var (
		x   = make([]float64, n) // current unit iterate
		ax  = make([]float64, n) // A·x
		tmp = make([]float64, n) // scratch for residual and next iterate
	)
	// Stage 1: shift from the row-sum bound.
	for i := range x {
		x[i] = 1
	}
	if err = op.MulVec(ax, x); err != nil {
		return Result{}, fmt.Errorf("eigen.Power: %w", err)
	}
	bound := 0.0
	for _, v := range ax {
		bound = math.Max(bound, math.Abs(v))
	}
	if bound == 0 {
		// Zero operator: every vector is an eigenvector for 0.
		floats.Scale(1/math.Sqrt(float64(n)), x)
		return Result{Value: 0, Vector: x}, nil
	}
	shift := bound / 2
	floats.Scale(1/math.Sqrt(float64(n)), x)

	// Stage 2 and 3: iterate with warm restarts.
	var (
		res      Result
		budget   = o.MaxIter
		lambda   float64
		residual float64
		norm     float64
		attempt  int
		it       int
	)
	for attempt = 0; attempt <= o.Retries; attempt++ {
		for it = 0; it < budget; it++ {
			if err = op.MulVec(ax, x); err != nil {
				return Result{}, fmt.Errorf("eigen.Power: %w", err)
			}
			res.Iterations++
			lambda = floats.Dot(x, ax)
			floats.AddScaledTo(tmp, ax, -lambda, x) // tmp = Ax − λx
			residual = floats.Norm(tmp, 2)
			if residual <= o.Tolerance*math.Max(1, math.Abs(lambda)) {
				res.Value, res.Vector, res.Residual, res.Restarts = lambda, x, residual, attempt
				return res, nil
			}
			floats.AddScaledTo(tmp, ax, shift, x) // tmp = (A + σI)x
			norm = floats.Norm(tmp, 2)
			floats.ScaleTo(x, 1/norm, tmp) // norm ≥ σ‖x‖ > 0 for non-negative A
		}
		budget *= 2
	}

	return Result{Value: lambda, Vector: x, Residual: residual, Iterations: res.Iterations, Restarts: o.Retries},
		fmt.Errorf("eigen.Power: residual %.3g after %d iterations: %w", residual, res.Iterations, ErrNotConverged)
}
