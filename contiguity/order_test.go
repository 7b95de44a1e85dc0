// SPDX-License-Identifier: MIT

package contiguity_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/contiguity"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

func sparse(t *testing.T, rows [][]float64) *matrix.Sparse {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	s, err := matrix.NewSparseFromDense(d)
	require.NoError(t, err)

	return s
}

func dense(t *testing.T, s *matrix.Sparse) [][]float64 {
	t.Helper()
	out := make([][]float64, s.Rows())
	for i := range out {
		out[i] = make([]float64, s.Cols())
		s.DoRow(i, func(j int, v float64) bool {
			out[i][j] = v
			return true
		})
	}

	return out
}

// ring4 is four units in a square: 0–1, 0–2, 1–3, 2–3.
func ring4(t *testing.T) *matrix.Sparse {
	return sparse(t, [][]float64{
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	})
}

func TestOrderSquare(t *testing.T) {
	t.Parallel()

	first, err := contiguity.Order(ring4(t), 1)
	require.NoError(t, err)
	require.Equal(t, dense(t, ring4(t)), dense(t, first))

	second, err := contiguity.Order(ring4(t), 2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	}, dense(t, second))

	third, err := contiguity.Order(ring4(t), 3)
	require.NoError(t, err)
	require.Zero(t, third.NNZ())
}

func TestOrderIgnoresWeightsAndDiagonal(t *testing.T) {
	t.Parallel()

	adj := sparse(t, [][]float64{
		{5, 0.25, 0},
		{0.25, 0, 7},
		{0, 7, 1},
	})
	first, err := contiguity.Order(adj, 1)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}, dense(t, first))
}

func TestOrdersDisjointCover(t *testing.T) {
	t.Parallel()

	// Path 0–1–2–3–4–5 plus an isolated pair 6–7.
	n := 8
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	link := func(i, j int) { rows[i][j], rows[j][i] = 1, 1 }
	for i := 0; i < 5; i++ {
		link(i, i+1)
	}
	link(6, 7)
	adj := sparse(t, rows)

	const m = 4
	all, err := contiguity.Orders(adj, m, contiguity.WithWorkers(3))
	require.NoError(t, err)
	require.Len(t, all, m)

	seen := make([][]int, n)
	for i := range seen {
		seen[i] = make([]int, n)
	}
	for k, w := range all {
		single, err := contiguity.Order(adj, k+1)
		require.NoError(t, err)
		require.True(t, single.EqualApprox(w, 0), "order %d", k+1)
		require.True(t, w.IsSymmetric(0))
		require.True(t, w.HasZeroDiagonal())
		w.Do(func(i, j int, _ float64) bool {
			seen[i][j]++
			return true
		})
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0
			switch {
			case i == j:
			case i < 6 && j < 6:
				if d := i - j; d <= m && d >= -m {
					want = 1
				}
			case i >= 6 && j >= 6:
				want = 1
			}
			require.Equal(t, want, seen[i][j], "pair (%d,%d)", i, j)
		}
	}
}

func TestOrderBeyondLongestPath(t *testing.T) {
	t.Parallel()

	// Path 0–1–2: no pair is further apart than 2 steps.
	path := sparse(t, [][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
	for _, m := range []int{3, 1 << 20, 1 << 40} {
		w, err := contiguity.Order(path, m)
		require.NoError(t, err, "m=%d", m)
		require.Equal(t, 3, w.Rows())
		require.Zero(t, w.NNZ(), "m=%d", m)
	}

	second, err := contiguity.Order(path, 2)
	require.NoError(t, err)
	require.Equal(t, 2, second.NNZ())

	all, err := contiguity.Orders(path, 1<<40)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.True(t, all[1].EqualApprox(second, 0))

	single := sparse(t, [][]float64{{0}})
	w, err := contiguity.Order(single, 5)
	require.NoError(t, err)
	require.Zero(t, w.NNZ())
	none, err := contiguity.Orders(single, 5)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOrderNormalization(t *testing.T) {
	t.Parallel()

	row, err := contiguity.Order(ring4(t), 1, contiguity.WithRowNormalize())
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1, 1, 1}, row.RowSums(), 1e-15)

	sw, err := contiguity.Order(ring4(t), 1, contiguity.WithSpectralNormalize())
	require.NoError(t, err)
	v, _ := sw.At(0, 1)
	require.InDelta(t, 0.5, v, 1e-9)

	_, err = contiguity.Order(ring4(t), 1, contiguity.WithRowNormalize(), contiguity.WithSpectralNormalize())
	require.ErrorIs(t, err, normalize.ErrConflictingModes)

	// Order 3 of the square is empty: spectral scaling has nothing to divide by.
	_, err = contiguity.Order(ring4(t), 3, contiguity.WithSpectralNormalize())
	require.ErrorIs(t, err, normalize.ErrZeroSpectralRadius)
}

func TestOrderErrors(t *testing.T) {
	t.Parallel()

	_, err := contiguity.Order(ring4(t), 0)
	require.ErrorIs(t, err, contiguity.ErrInvalidOrder)
	require.ErrorIs(t, err, matrix.ErrNumericDomain)

	_, err = contiguity.Orders(ring4(t), -1)
	require.ErrorIs(t, err, contiguity.ErrInvalidOrder)

	rect, err := matrix.NewSparseBuilder(2, 3)
	require.NoError(t, err)
	_, err = contiguity.Order(rect.Build(), 1)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = contiguity.Order(nil, 1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromGeometry(t *testing.T) {
	t.Parallel()

	// 3×1 strip of unit squares: order 2 links the two ends.
	var cells []orb.Geometry
	for x := 0; x < 3; x++ {
		fx := float64(x)
		cells = append(cells, orb.Polygon{orb.Ring{{fx, 0}, {fx + 1, 0}, {fx + 1, 1}, {fx, 1}, {fx, 0}}})
	}
	w, err := contiguity.FromGeometry(cells, 2, contiguity.WithGeometry(geometry.WithRule(geometry.Rook)))
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 0, 1},
		{0, 0, 0},
		{1, 0, 0},
	}, dense(t, w))

	_, err = contiguity.FromGeometry(cells, 0)
	require.ErrorIs(t, err, contiguity.ErrInvalidOrder)

	_, err = contiguity.FromGeometry(nil, 1)
	require.ErrorIs(t, err, geometry.ErrEmptyInput)
}

func TestComponents(t *testing.T) {
	t.Parallel()

	// Directed edges 2→0 and 3→4 still join their endpoints.
	adj := sparse(t, [][]float64{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	comps, err := contiguity.Components(adj)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}, {1}, {3, 4}, {5}}, comps)

	comps, err = contiguity.Components(ring4(t))
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1, 2, 3}}, comps)
}
