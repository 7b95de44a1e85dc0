// Package decay turns a distance matrix into weights with a decreasing
// kernel of distance.
//
//	Inverse:      w = d^(−α)              α > 0, default 1
//	Exponential:  w = exp(−α·d)           α > 0, default 1
//	DoublePower:  w = (1 − (d/D)^p)^p     p > 0, default 2
//
// The diagonal is always 0 and is never passed to a kernel. With a cutoff D
// a pair is kept only when d < D; at d = D its weight is exactly 0 for every
// kernel. DoublePower always has a cutoff, defaulting to the largest
// distance in the matrix.
//
// Weights selects the kernel by Kind and calls the kernel function itself,
// so both paths return identical matrices. Row or spectral normalization may
// be requested as the final step.
package decay
