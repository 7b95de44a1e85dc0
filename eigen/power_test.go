// SPDX-License-Identifier: MIT

package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/eigen"
	"github.com/katalvlaran/spweights/matrix"
)

func sparse(t *testing.T, rows [][]float64) *matrix.Sparse {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	s, err := matrix.NewSparseFromDense(d)
	require.NoError(t, err)

	return s
}

// TestPowerMatchesDense compares the iterative solver with gonum's full
// eigendecomposition on non-negative matrices, symmetric and not.
func TestPowerMatchesDense(t *testing.T) {
	t.Parallel()

	cases := map[string][][]float64{
		"asymmetric": {
			{0, 2, 1},
			{1, 0, 3},
			{2, 1, 0},
		},
		"star": {
			{0, 1, 1, 1},
			{1, 0, 0, 0},
			{1, 0, 0, 0},
			{1, 0, 0, 0},
		},
		"weighted path": {
			{0, 0.5, 0, 0},
			{0.5, 0, 2, 0},
			{0, 2, 0, 1},
			{0, 0, 1, 0},
		},
		"directed cycle": {
			{0, 1, 0},
			{0, 0, 1},
			{1, 0, 0},
		},
	}
	for name, rows := range cases {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a := sparse(t, rows)
			res, err := eigen.Power(a)
			require.NoError(t, err)
			want, err := eigen.Dense(a)
			require.NoError(t, err)
			require.InDelta(t, want, res.Value, 1e-8)
			require.LessOrEqual(t, res.Residual, eigen.DefaultTolerance*math.Max(1, res.Value))
			require.Len(t, res.Vector, len(rows))
		})
	}
}

// TestPowerBipartite: eigenvalues ±ρ make plain power iteration oscillate;
// the shift must still converge to +ρ.
func TestPowerBipartite(t *testing.T) {
	t.Parallel()

	// Path 0–1–2: spectrum {√2, 0, −√2}.
	res, err := eigen.Power(sparse(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}}))
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2, res.Value, 1e-9)
}

func TestPowerNotConverged(t *testing.T) {
	t.Parallel()

	a := sparse(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	_, err := eigen.Power(a, eigen.WithMaxIter(1), eigen.WithRetries(0))
	require.ErrorIs(t, err, eigen.ErrNotConverged)
	require.ErrorIs(t, err, matrix.ErrConvergenceFailure)
}

func TestPowerRestartsDoubleBudget(t *testing.T) {
	t.Parallel()

	a := sparse(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})
	res, err := eigen.Power(a, eigen.WithMaxIter(2), eigen.WithRetries(10))
	require.NoError(t, err)
	require.Positive(t, res.Restarts)
	require.InDelta(t, math.Sqrt2, res.Value, 1e-9)
}

func TestPowerZeroOperator(t *testing.T) {
	t.Parallel()

	z, err := matrix.Zeros(3, 3)
	require.NoError(t, err)
	res, err := eigen.Power(z)
	require.NoError(t, err)
	require.Zero(t, res.Value)
}

func TestPowerOptionViolations(t *testing.T) {
	t.Parallel()

	a := sparse(t, [][]float64{{0, 1}, {1, 0}})
	for _, opt := range []eigen.Option{
		eigen.WithTolerance(0),
		eigen.WithTolerance(math.NaN()),
		eigen.WithTolerance(2),
		eigen.WithMaxIter(0),
		eigen.WithRetries(-1),
	} {
		_, err := eigen.Power(a, opt)
		require.ErrorIs(t, err, eigen.ErrOptionViolation)
		require.ErrorIs(t, err, matrix.ErrNumericDomain)
	}
	_, err := eigen.Power(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
