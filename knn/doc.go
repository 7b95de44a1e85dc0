// Package knn builds k-nearest-neighbour weights from a distance matrix.
//
// Row i marks the k units closest to i. Zero distances (the diagonal and
// coincident units) are never candidates, and ties at the k-th distance go
// to the lower column index. The result is generally asymmetric.
package knn
