// Package eigen computes the leading eigenvalue of spatial weights matrices,
// the scalar used by spectral normalization.
//
// Three solvers are provided:
//
//   - Power: shifted power iteration on any Operator (a *matrix.Sparse in
//     practice). It only needs matrix-vector products, so it scales with the
//     number of neighbours rather than N². It exposes a tolerance, an
//     iteration budget and a number of warm restarts, and fails with
//     ErrNotConverged instead of looping.
//   - Dense: full eigendecomposition through gonum's mat.Eigen; returns the
//     eigenvalue with the largest real part.
//   - Jacobi: rotation-based decomposition for symmetric matrices (binary
//     contiguity, symmetric decay kernels).
//
// Weights matrices are non-negative, so by Perron–Frobenius their spectral
// radius is itself an eigenvalue and it has the largest real part; the three
// solvers therefore agree on it.
package eigen
