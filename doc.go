// Package spweights builds spatial weights matrices: the N×N non-negative,
// zero-diagonal matrices that tell spatial models which units are
// neighbours and how strongly.
//
// 🚀 What is in the box?
//
//	• Contiguity: queen/rook adjacency from polygons, expanded to any order m
//	• Shared boundary: common border length between polygon pairs
//	• Distance decay: inverse power, exponential and double-power kernels
//	• K nearest neighbours with deterministic tie-breaking
//	• Row and spectral normalization, with a choice of eigen solvers
//
// Everything is organized under these subpackages:
//
//	matrix/     : Dense and CSR Sparse storage, validators, error categories
//	geometry/   : polygon normalization, validation, adjacency, centroids
//	bfs/        : depth-limited breadth-first search over sparse adjacency
//	contiguity/ : exact-order contiguity and connected components
//	distance/   : distance-matrix validation, planar and great-circle metrics
//	decay/      : distance-decay kernels
//	knn/        : k-nearest-neighbour selection
//	eigen/      : leading eigenvalue: power iteration, dense, Jacobi
//	normalize/  : row-stochastic and spectral scaling
//	weights/    : Config, Source implementations and Build
//
// Quick ASCII example (rook contiguity of four squares):
//
//	    ┌───┬───┐
//	    │ 2 │ 3 │        order 1: 0–1, 0–2, 1–3, 2–3
//	    ├───┼───┤        order 2: 0–3, 1–2
//	    │ 0 │ 1 │
//	    └───┴───┘
//
// The spweights command (cmd/spweights) wraps weights.Build for GeoJSON and
// CSV inputs.
//
//	go install github.com/katalvlaran/spweights/cmd/spweights@latest
package spweights
