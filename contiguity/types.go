// SPDX-License-Identifier: MIT

package contiguity

import (
	"fmt"

	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// Sentinel errors for contiguity expansion.
var (
	// ErrInvalidOrder is returned when the requested order is below 1.
	ErrInvalidOrder = fmt.Errorf("contiguity: order must be >= 1: %w", matrix.ErrNumericDomain)
)

// DefaultOrder is the contiguity order used when none is configured.
const DefaultOrder = 1

// Option configures contiguity construction via functional arguments.
type Option func(*Options)

// Options holds contiguity parameters.
type Options struct {
	// Workers bounds the per-unit BFS fan-out; <= 0 means GOMAXPROCS.
	Workers int

	// Geometry is forwarded to geometry.Adjacency by FromGeometry.
	Geometry []geometry.Option

	// Normalize is forwarded to the final normalization step.
	Normalize []normalize.Option

	rowNormalize      bool
	spectralNormalize bool
}

// DefaultOptions returns unnormalized output and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Workers: matrix.DefaultWorkers}
}

// WithRowNormalize row-normalizes the result as the final step.
func WithRowNormalize() Option {
	return func(o *Options) { o.rowNormalize = true }
}

// WithSpectralNormalize divides the result by its leading eigenvalue as the
// final step. Combined with WithRowNormalize it yields
// normalize.ErrConflictingModes.
func WithSpectralNormalize() Option {
	return func(o *Options) { o.spectralNormalize = true }
}

// WithWorkers bounds the number of goroutines expanding units in parallel.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithGeometry forwards rule and tolerance settings to polygon adjacency.
func WithGeometry(opts ...geometry.Option) Option {
	return func(o *Options) { o.Geometry = append(o.Geometry, opts...) }
}

// WithNormalizeOptions forwards solver settings to the normalization step.
func WithNormalizeOptions(opts ...normalize.Option) Option {
	return func(o *Options) { o.Normalize = append(o.Normalize, opts...) }
}

// gatherOptions applies opts and resolves the normalization mode.
func gatherOptions(opts []Option) (Options, normalize.Mode, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	mode, err := normalize.ModeOf(o.rowNormalize, o.spectralNormalize)

	return o, mode, err
}
