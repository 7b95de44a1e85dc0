// SPDX-License-Identifier: MIT

// Package eigen: options, solver selection and sentinel errors.
package eigen

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spweights/matrix"
)

// Sentinel errors for eigenvalue computation.
var (
	// ErrNotConverged is returned when a solver exhausts its iteration budget
	// (including restarts) without meeting the tolerance.
	ErrNotConverged = fmt.Errorf("eigen: solver did not converge: %w", matrix.ErrConvergenceFailure)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("eigen: invalid option supplied: %w", matrix.ErrNumericDomain)

	// ErrUnknownSolver is returned by ParseSolver and Leading for unknown names.
	ErrUnknownSolver = fmt.Errorf("eigen: unknown solver: %w", matrix.ErrNumericDomain)
)

// Defaults for the iterative solver.
const (
	// DefaultTolerance bounds the relative residual ‖Ax − λx‖ / max(1,|λ|).
	DefaultTolerance = 1e-10

	// DefaultMaxIter is the iteration budget of the first attempt.
	DefaultMaxIter = 1000

	// DefaultRetries is the number of warm restarts, each doubling the budget.
	DefaultRetries = 3

	// DefaultJacobiSweeps caps the cyclic sweeps of the symmetric solver;
	// each sweep rotates all n(n−1)/2 off-diagonal pairs once.
	DefaultJacobiSweeps = 50
)

// Operator is the only capability the iterative solver needs from a matrix:
// its order and a matrix-vector product. *matrix.Sparse satisfies it.
type Operator interface {
	// Dim returns the order n of the square operator.
	Dim() int

	// MulVec computes dst = A·x; len(dst) == len(x) == Dim().
	MulVec(dst, x []float64) error
}

// Solver selects the leading-eigenvalue algorithm.
type Solver int

const (
	// SolverPower is shifted power iteration over a sparse operator. Default.
	SolverPower Solver = iota
	// SolverDense is a full dense eigendecomposition (gonum), largest real part.
	SolverDense
	// SolverJacobi is the symmetric Jacobi method; rejects asymmetric input.
	SolverJacobi
)

var solverNames = map[Solver]string{
	SolverPower:  "power",
	SolverDense:  "dense",
	SolverJacobi: "jacobi",
}

// String returns the configuration name of the solver.
func (s Solver) String() string {
	if name, ok := solverNames[s]; ok {
		return name
	}

	return fmt.Sprintf("Solver(%d)", int(s))
}

// ParseSolver maps "power", "dense" or "jacobi" (case-insensitive) to a Solver.
func ParseSolver(name string) (Solver, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range solverNames {
		if n == name {
			return s, nil
		}
	}

	return SolverPower, fmt.Errorf("%q: %w", name, ErrUnknownSolver)
}

// MarshalText implements encoding.TextMarshaler (used by TOML configs).
func (s Solver) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML configs).
func (s *Solver) UnmarshalText(text []byte) error {
	v, err := ParseSolver(string(text))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Result reports the outcome of an iterative solve.
type Result struct {
	Value      float64   // leading eigenvalue estimate
	Vector     []float64 // unit-norm eigenvector estimate (nil for dense solvers)
	Residual   float64   // ‖Ax − λx‖ at termination
	Iterations int       // total matrix-vector products
	Restarts   int       // warm restarts used
}

// Option configures the solvers via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds solver parameters.
type Options struct {
	Tolerance float64
	MaxIter   int
	Retries   int
	err       error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		MaxIter:   DefaultMaxIter,
		Retries:   DefaultRetries,
	}
}

// WithTolerance sets the relative residual tolerance (finite, > 0).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if !(tol > 0) || tol > 1 {
			o.err = fmt.Errorf("%w: tolerance must be in (0,1], got %g", ErrOptionViolation, tol)
			return
		}
		o.Tolerance = tol
	}
}

// WithMaxIter sets the iteration budget of the first attempt (> 0).
func WithMaxIter(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxIter must be positive, got %d", ErrOptionViolation, n)
			return
		}
		o.MaxIter = n
	}
}

// WithRetries sets the number of warm restarts (>= 0); each doubles the budget.
func WithRetries(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: Retries cannot be negative, got %d", ErrOptionViolation, n)
			return
		}
		o.Retries = n
	}
}

// gatherOptions applies opts over the defaults and returns the first violation.
func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
