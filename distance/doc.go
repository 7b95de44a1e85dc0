// Package distance provides and validates the distance matrices consumed by
// the decay kernels and the nearest-neighbour selector.
//
// A distance matrix is square, finite, non-negative, has an exact zero
// diagonal and is symmetric up to a relative tolerance. Validate enforces
// this and never repairs input. Euclidean and GreatCircle derive such
// matrices from points (centroids of polygons, or plain coordinates).
package distance
