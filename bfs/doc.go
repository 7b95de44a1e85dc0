// Package bfs provides breadth-first search over a square *matrix.Sparse read
// as a graph, returning hop distances, parent links, and visit order.
//
// What
//
//   - Every stored entry (i, j) is an edge i→j; values are ignored.
//   - Explore vertices in non-decreasing hop distance from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: hop distance per vertex, Unreached (−1) if not reached
//   - Parent: predecessor in the BFS tree
//   - Supports an OnVisit hook (may abort with an error), neighbor
//     filtering via WithFilterNeighbor and a MaxDepth limit.
//
// Why
//
//	Higher-order contiguity is defined by hop distance on the first-order
//	adjacency graph: unit j is an order-m neighbour of i exactly when
//	Depth[j] == m in a BFS from i.
//
// Determinism
//
//	CSR rows keep columns in ascending order and BFS enqueues neighbors in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = rows, E = stored entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the matrix pointer is nil.
//   - ErrStartOutOfRange   if start is not in [0, V).
//   - matrix.ErrNonSquare  for rectangular input.
//   - ErrOptionViolation   for invalid options (e.g. negative MaxDepth).
//   - The context error on cancellation and wrapped OnVisit errors.
package bfs
