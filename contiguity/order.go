// SPDX-License-Identifier: MIT

package contiguity

import (
	"fmt"
	"sort"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/spweights/bfs"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// Order returns the binary matrix of units at exact graph distance m in the
// first-order adjacency graph adj: entry (i, j) is 1 when the shortest path
// from i to j uses exactly m edges. Order(adj, 1) is the pattern of adj
// without its diagonal. Pairs in different components stay 0 at every order.
//
// Every stored entry of adj is an edge regardless of its value. Units are
// expanded in parallel, one depth-limited BFS each.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrInvalidOrder,
// normalize.ErrConflictingModes and normalization errors.
func Order(adj *matrix.Sparse, m int, opts ...Option) (*matrix.Sparse, error) {
	lv, mode, o, err := expand(adj, m, opts)
	if err != nil {
		return nil, fmt.Errorf("contiguity.Order: %w", err)
	}
	w, err := lv.build(m)
	if err != nil {
		return nil, fmt.Errorf("contiguity.Order: %w", err)
	}

	return normalize.Apply(w, mode, o.Normalize...)
}

// Orders returns the exact-order matrices for orders 1..m in one pass; the
// k-th element holds order k+1. The matrices are disjoint and their union is
// the set of pairs reachable within m steps. Normalization options apply to
// each matrix separately. No shortest path is longer than N−1 edges, so the
// result stops at order min(m, N−1).
//
// Errors: as Order.
func Orders(adj *matrix.Sparse, m int, opts ...Option) ([]*matrix.Sparse, error) {
	lv, mode, o, err := expand(adj, m, opts)
	if err != nil {
		return nil, fmt.Errorf("contiguity.Orders: %w", err)
	}
	out := make([]*matrix.Sparse, lv.depth)
	for k := 1; k <= lv.depth; k++ {
		w, err := lv.build(k)
		if err != nil {
			return nil, fmt.Errorf("contiguity.Orders: order %d: %w", k, err)
		}
		if out[k-1], err = normalize.Apply(w, mode, o.Normalize...); err != nil {
			return nil, fmt.Errorf("contiguity.Orders: order %d: %w", k, err)
		}
	}

	return out, nil
}

// FromGeometry extracts first-order contiguity from polygons with
// geometry.Adjacency and expands it to order m.
//
// Errors: those of geometry.Adjacency and Order.
func FromGeometry(geoms []orb.Geometry, m int, opts ...Option) (*matrix.Sparse, error) {
	o, _, err := gatherOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("contiguity.FromGeometry: %w", err)
	}
	if m < 1 {
		return nil, fmt.Errorf("contiguity.FromGeometry: m=%d: %w", m, ErrInvalidOrder)
	}
	adj, err := geometry.Adjacency(geoms, o.Geometry...)
	if err != nil {
		return nil, fmt.Errorf("contiguity.FromGeometry: %w", err)
	}

	return Order(adj, m, opts...)
}

// rows[i][k-1] lists the order-k neighbours of unit i in ascending order,
// for k up to depth.
type levels struct {
	n     int
	depth int
	rows  [][][]int
}

// expand validates input and runs one BFS from every unit, limited to depth
// min(m, N−1).
func expand(adj *matrix.Sparse, m int, opts []Option) (*levels, normalize.Mode, Options, error) {
	o, mode, err := gatherOptions(opts)
	if err != nil {
		return nil, mode, o, err
	}
	if err = matrix.ValidateSquare(adj); err != nil {
		return nil, mode, o, err
	}
	if m < 1 {
		return nil, mode, o, fmt.Errorf("m=%d: %w", m, ErrInvalidOrder)
	}

	n := adj.Rows()
	lv := &levels{n: n, depth: max(min(m, n-1), 0), rows: make([][][]int, n)}
	if lv.depth == 0 {
		return lv, mode, o, nil
	}
	err = matrix.ParallelRows(n, o.Workers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			res, err := bfs.BFS(adj, i, bfs.WithMaxDepth(lv.depth))
			if err != nil {
				return err
			}
			byDepth := make([][]int, lv.depth)
			for _, j := range res.Order[1:] {
				d := res.Depth[j]
				byDepth[d-1] = append(byDepth[d-1], j)
			}
			for _, level := range byDepth {
				sort.Ints(level)
			}
			lv.rows[i] = byDepth
		}
		return nil
	})
	if err != nil {
		return nil, mode, o, err
	}

	return lv, mode, o, nil
}

// build assembles the binary matrix of order k; orders past depth are empty.
func (lv *levels) build(k int) (*matrix.Sparse, error) {
	if k > lv.depth {
		return matrix.Zeros(lv.n, lv.n)
	}
	rowCols := make([][]int, lv.n)
	rowVals := make([][]float64, lv.n)
	for i, byDepth := range lv.rows {
		rowCols[i] = byDepth[k-1]
		rowVals[i] = make([]float64, len(rowCols[i]))
		for c := range rowVals[i] {
			rowVals[i][c] = 1
		}
	}

	return matrix.NewSparseFromRows(lv.n, lv.n, rowCols, rowVals)
}
