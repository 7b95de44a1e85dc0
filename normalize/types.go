// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/spweights/eigen"
	"github.com/katalvlaran/spweights/matrix"
)

// Sentinel errors for normalization.
var (
	// ErrConflictingModes is returned when both row and spectral
	// normalization are requested for the same matrix.
	ErrConflictingModes = fmt.Errorf("normalize: row and spectral normalization are mutually exclusive: %w", matrix.ErrNumericDomain)

	// ErrZeroSpectralRadius is returned when the leading eigenvalue is not
	// positive (empty or nilpotent matrices), so there is nothing to divide by.
	ErrZeroSpectralRadius = fmt.Errorf("normalize: leading eigenvalue is zero: %w", matrix.ErrNumericDomain)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("normalize: invalid option supplied: %w", matrix.ErrNumericDomain)

	// ErrUnknownMode is returned by ParseMode for unknown names.
	ErrUnknownMode = fmt.Errorf("normalize: unknown mode: %w", matrix.ErrNumericDomain)
)

// Mode selects the normalization applied as the last construction step.
type Mode int

const (
	// ModeNone leaves the matrix as constructed.
	ModeNone Mode = iota
	// ModeRow makes every non-empty row sum to 1.
	ModeRow
	// ModeSpectral divides the matrix by its leading eigenvalue.
	ModeSpectral
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeRow:
		return "row"
	case ModeSpectral:
		return "spectral"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "none", "row" or "spectral" (case-insensitive) to a Mode.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return ModeNone, nil
	case "row":
		return ModeRow, nil
	case "spectral":
		return ModeSpectral, nil
	default:
		return ModeNone, fmt.Errorf("%q: %w", name, ErrUnknownMode)
	}
}

// ModeOf translates the two boolean configuration flags into a Mode.
// Both flags set is ErrConflictingModes.
func ModeOf(row, spectral bool) (Mode, error) {
	switch {
	case row && spectral:
		return ModeNone, ErrConflictingModes
	case row:
		return ModeRow, nil
	case spectral:
		return ModeSpectral, nil
	default:
		return ModeNone, nil
	}
}

// Option configures normalization via functional arguments.
type Option func(*Options)

// Options holds normalization parameters.
type Options struct {
	// Workers bounds the row fan-out; <= 0 means GOMAXPROCS.
	Workers int

	// Solver computes the leading eigenvalue for Spectral.
	Solver eigen.Solver

	// Eigen is forwarded to the eigenvalue solver.
	Eigen []eigen.Option

	err error
}

// DefaultOptions returns GOMAXPROCS workers and the power solver.
func DefaultOptions() Options {
	return Options{Workers: matrix.DefaultWorkers, Solver: eigen.SolverPower}
}

// WithWorkers bounds the number of goroutines used by Rows.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithSolver selects the eigenvalue solver used by Spectral.
func WithSolver(s eigen.Solver) Option {
	return func(o *Options) {
		switch s {
		case eigen.SolverPower, eigen.SolverDense, eigen.SolverJacobi:
			o.Solver = s
		default:
			o.err = fmt.Errorf("%w: solver %v", ErrOptionViolation, s)
		}
	}
}

// WithEigenOptions forwards tolerance, budget and restart settings to the
// eigenvalue solver.
func WithEigenOptions(opts ...eigen.Option) Option {
	return func(o *Options) { o.Eigen = append(o.Eigen, opts...) }
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
