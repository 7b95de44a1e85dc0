// SPDX-License-Identifier: MIT

package knn

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// candidate is a column with its distance from the row unit.
type candidate struct {
	d float64
	j int
}

// worse orders candidates so that the heap root is the one to evict first:
// the largest distance, and among equal distances the largest index.
func worse(a, b interface{}) int {
	ca, cb := a.(candidate), b.(candidate)
	switch {
	case ca.d > cb.d:
		return -1
	case ca.d < cb.d:
		return 1
	case ca.j > cb.j:
		return -1
	case ca.j < cb.j:
		return 1
	default:
		return 0
	}
}

// Select returns the binary k-nearest-neighbour matrix of d: in row i the k
// columns with the smallest strictly positive off-diagonal distances are 1.
// Rows with fewer than k candidates keep all of them. When several columns
// tie at the k-th distance the lowest indices win.
//
// Each row keeps a bounded max-heap of its k best candidates; rows are
// processed in parallel blocks.
//
// Errors: ErrInvalidK, distance.Validate errors,
// normalize.ErrConflictingModes and normalization errors.
func Select(d matrix.Reader, k int, opts ...Option) (*matrix.Sparse, error) {
	o, mode, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("knn.Select: %w", err)
	}
	if k < 1 {
		return nil, fmt.Errorf("knn.Select: k=%d: %w", k, ErrInvalidK)
	}
	n, err := distance.Validate(d)
	if err != nil {
		return nil, fmt.Errorf("knn.Select: %w", err)
	}

	rowCols := make([][]int, n)
	rowVals := make([][]float64, n)
	err = matrix.ParallelRows(n, o.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			cols, err := nearest(d, i, k)
			if err != nil {
				return err
			}
			rowCols[i] = cols
			rowVals[i] = make([]float64, len(cols))
			for c := range cols {
				rowVals[i][c] = 1
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("knn.Select: %w", err)
	}

	w, err := matrix.NewSparseFromRows(n, n, rowCols, rowVals)
	if err != nil {
		return nil, fmt.Errorf("knn.Select: %w", err)
	}

	return normalize.Apply(w, mode, o.Normalize...)
}

// nearest scans row i in ascending column order, so a later column never
// displaces an earlier one at equal distance.
func nearest(d matrix.Reader, i, k int) ([]int, error) {
	heap := binaryheap.NewWith(worse)
	for j := 0; j < d.Cols(); j++ {
		if j == i {
			continue
		}
		v, err := d.At(i, j)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			continue
		}
		c := candidate{d: v, j: j}
		if heap.Size() < k {
			heap.Push(c)
			continue
		}
		if top, _ := heap.Peek(); worse(c, top) > 0 {
			heap.Pop()
			heap.Push(c)
		}
	}

	cols := make([]int, 0, heap.Size())
	for heap.Size() > 0 {
		top, _ := heap.Pop()
		cols = append(cols, top.(candidate).j)
	}
	sort.Ints(cols)

	return cols, nil
}

// FromCoordinates computes pairwise distances of points under metric and
// selects the k nearest neighbours of every point.
//
// Errors: those of distance.FromCoordinates and Select.
func FromCoordinates(points []orb.Point, k int, metric distance.Metric, opts ...Option) (*matrix.Sparse, error) {
	d, err := distance.FromCoordinates(points, metric)
	if err != nil {
		return nil, fmt.Errorf("knn.FromCoordinates: %w", err)
	}

	return Select(d, k, opts...)
}
