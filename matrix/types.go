// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by dense and sparse storage.
// This file intentionally contains ONLY the public interfaces. Errors and
// options live in dedicated files (errors.go, options.go).
package matrix

// Reader is the read-only view every matrix in this module satisfies.
// Distance matrices are consumed through Reader so callers may pass any
// storage (Dense, Sparse, or their own adapter).
//
// Complexity notes: Rows/Cols are O(1); At is O(1) on Dense and
// O(log nnz(row)) on Sparse.
type Reader interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
