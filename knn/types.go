package knn

import (
	"fmt"

	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// ErrInvalidK is returned when k < 1.
var ErrInvalidK = fmt.Errorf("knn: k must be >= 1: %w", matrix.ErrNumericDomain)

// DefaultK is the neighbour count used when none is configured.
const DefaultK = 5

// Option configures selection via functional arguments.
type Option func(*Options)

// Options holds selection parameters.
type Options struct {
	// Workers bounds the row fan-out; <= 0 means GOMAXPROCS.
	Workers int

	// Normalize is forwarded to the final normalization step.
	Normalize []normalize.Option

	rowNormalize      bool
	spectralNormalize bool
}

// DefaultOptions returns unnormalized output and GOMAXPROCS workers.
func DefaultOptions() Options {
	return Options{Workers: matrix.DefaultWorkers}
}

// WithWorkers bounds the number of goroutines selecting rows.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithRowNormalize row-normalizes the result as the final step, giving each
// unit weight 1/k per neighbour.
func WithRowNormalize() Option {
	return func(o *Options) { o.rowNormalize = true }
}

// WithSpectralNormalize divides the result by its leading eigenvalue as the
// final step.
func WithSpectralNormalize() Option {
	return func(o *Options) { o.spectralNormalize = true }
}

// WithNormalizeOptions forwards solver settings to the normalization step.
func WithNormalizeOptions(opts ...normalize.Option) Option {
	return func(o *Options) { o.Normalize = append(o.Normalize, opts...) }
}

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
