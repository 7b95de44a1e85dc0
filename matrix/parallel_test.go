package matrix_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/matrix"
)

func TestParallelRowsCoversEveryRowOnce(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{0, 1, 3, 1000} {
		const n = 1000
		hits := make([]int32, n)
		err := matrix.ParallelRows(n, workers, func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
			return nil
		})
		require.NoError(t, err)
		for i, h := range hits {
			require.EqualValues(t, 1, h, "row %d workers %d", i, workers)
		}
	}
}

func TestParallelRowsError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	err := matrix.ParallelRows(500, 4, func(lo, _ int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.NoError(t, matrix.ParallelRows(0, 4, func(int, int) error { return boom }))
}

func TestResolveWorkers(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, matrix.ResolveWorkers(10, 8)) // tiny input stays inline
	require.Equal(t, 2, matrix.ResolveWorkers(1000, 2))
	require.GreaterOrEqual(t, matrix.ResolveWorkers(1000, 0), 1)
}
