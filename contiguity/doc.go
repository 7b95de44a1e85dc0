// Package contiguity builds contiguity weights of order m.
//
// A first-order adjacency matrix (from geometry.Adjacency or supplied by the
// caller) defines a graph on the spatial units. The order-m matrix marks the
// pairs whose shortest path in that graph has exactly m edges, so orders are
// disjoint: order k+1 holds the neighbours of order-k neighbours that are
// not already within k steps, and never the unit itself.
//
// Each unit is expanded by a depth-limited breadth-first search (package
// bfs), and units are processed in parallel row blocks. Units in different
// components are never neighbours at any order; this is not an error.
//
// Row or spectral normalization may be requested as the final step.
package contiguity
