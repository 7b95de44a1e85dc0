// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/spweights/matrix"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj   *matrix.Sparse
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on adj starting from start. Every stored
// entry adj(i, j) is an edge i→j regardless of its value; for contiguity
// matrices the pattern is symmetric and edges are effectively undirected.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// matrix.ErrNonSquare for rectangular input, ErrOptionViolation for bad
// options, the context error on cancellation, or any OnVisit error.
func BFS(adj *matrix.Sparse, start int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := adj.Rows()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = Unreached
		w.res.Parent[v] = Unreached
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreached)

	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, and queues it.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor in ascending column order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.adj.DoRow(item.v, func(nbr int, _ float64) bool {
		if nbr != item.v && w.res.Depth[nbr] == Unreached && w.opts.FilterNeighbor(item.v, nbr) {
			w.enqueue(nbr, nextDepth, item.v)
		}
		return true
	})
}
