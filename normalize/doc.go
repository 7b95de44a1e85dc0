// Package normalize rescales spatial weights matrices.
//
// Rows makes each row sum to one (row-stochastic W); empty rows of isolated
// units stay empty. Spectral divides W by its leading eigenvalue so that the
// spectral radius becomes one. Both are idempotent up to floating-point
// tolerance: a second Rows leaves row sums at 1, and a second Spectral
// reports λ = 1.
//
// Construction packages expose the two as mutually exclusive flags; ModeOf
// maps the flags to a Mode and Apply runs it.
package normalize
