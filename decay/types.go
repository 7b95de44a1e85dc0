// SPDX-License-Identifier: MIT

package decay

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// Sentinel errors for decay kernels.
var (
	// ErrInvalidParameter is returned for a non-positive or non-finite
	// exponent, power or cutoff.
	ErrInvalidParameter = fmt.Errorf("decay: invalid kernel parameter: %w", matrix.ErrNumericDomain)

	// ErrZeroDistance is returned by Inverse when two distinct units are at
	// distance 0, where d^(−α) is undefined.
	ErrZeroDistance = fmt.Errorf("decay: zero distance between distinct units: %w", matrix.ErrNumericDomain)

	// ErrUnknownKind is returned by ParseKind and Weights for unknown kernels.
	ErrUnknownKind = fmt.Errorf("decay: unknown kernel: %w", matrix.ErrNumericDomain)
)

// Kernel defaults.
const (
	// DefaultAlpha is the distance exponent of Inverse and the rate of Exponential.
	DefaultAlpha = 1.0

	// DefaultPower is the exponent p of DoublePower.
	DefaultPower = 2.0
)

// Kind selects a decay kernel.
type Kind int

const (
	// KindInverse is w = d^(−α).
	KindInverse Kind = iota
	// KindExponential is w = exp(−α·d).
	KindExponential
	// KindDoublePower is w = (1 − (d/D)^p)^p.
	KindDoublePower
)

// String returns the configuration name of the kernel.
func (k Kind) String() string {
	switch k {
	case KindInverse:
		return "inverse"
	case KindExponential:
		return "exponential"
	case KindDoublePower:
		return "doubled"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps "inverse", "exponential" or "doubled" (case-insensitive;
// "double-power" is accepted too) to a Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "inverse", "":
		return KindInverse, nil
	case "exponential":
		return KindExponential, nil
	case "doubled", "double-power":
		return KindDoublePower, nil
	default:
		return KindInverse, fmt.Errorf("%q: %w", name, ErrUnknownKind)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v

	return nil
}

// Option configures the decay kernels via functional arguments.
// Invalid values are recorded and surfaced as ErrInvalidParameter.
type Option func(*Options)

// Options holds kernel parameters.
type Options struct {
	// Alpha is the exponent of Inverse and the rate of Exponential.
	Alpha float64

	// Power is the exponent p of DoublePower.
	Power float64

	// Cutoff is the distance D beyond which weights are 0; pairs are kept
	// only when d < D. 0 means no cutoff (DoublePower then uses the
	// largest distance).
	Cutoff float64

	// Workers bounds the row fan-out; <= 0 means GOMAXPROCS.
	Workers int

	// Normalize is forwarded to the final normalization step.
	Normalize []normalize.Option

	rowNormalize      bool
	spectralNormalize bool
	err               error
}

// DefaultOptions returns α = 1, p = 2 and no cutoff.
func DefaultOptions() Options {
	return Options{
		Alpha:   DefaultAlpha,
		Power:   DefaultPower,
		Workers: matrix.DefaultWorkers,
	}
}

func positive(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be positive and finite, got %g", ErrInvalidParameter, name, v)
	}

	return nil
}

// WithAlpha sets the distance exponent (Inverse) or decay rate (Exponential).
func WithAlpha(alpha float64) Option {
	return func(o *Options) {
		if err := positive("alpha", alpha); err != nil {
			o.err = err
			return
		}
		o.Alpha = alpha
	}
}

// WithPower sets the exponent p of DoublePower.
func WithPower(p float64) Option {
	return func(o *Options) {
		if err := positive("power", p); err != nil {
			o.err = err
			return
		}
		o.Power = p
	}
}

// WithCutoff zeroes every pair with d >= D.
func WithCutoff(d float64) Option {
	return func(o *Options) {
		if err := positive("cutoff", d); err != nil {
			o.err = err
			return
		}
		o.Cutoff = d
	}
}

// WithWorkers bounds the number of goroutines evaluating rows.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithRowNormalize row-normalizes the result as the final step.
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
	if o.err != nil {
		return o, normalize.ModeNone, o.err
	}
	mode, err := normalize.ModeOf(o.rowNormalize, o.spectralNormalize)

	return o, mode, err
}
