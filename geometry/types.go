// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spweights/matrix"
)

// Sentinel errors for geometry operations.
var (
	// ErrEmptyInput indicates that no geometries were supplied.
	ErrEmptyInput = fmt.Errorf("geometry: no geometries supplied: %w", matrix.ErrInvalidInputShape)

	// ErrUnsupportedGeometry indicates a geometry that is neither a Polygon
	// nor a MultiPolygon (points, lines, collections, nil).
	ErrUnsupportedGeometry = fmt.Errorf("geometry: unsupported geometry type: %w", matrix.ErrInvalidInputShape)

	// ErrDegenerateGeometry is wrapped by *DegenerateError.
	ErrDegenerateGeometry = fmt.Errorf("geometry: degenerate polygon: %w", matrix.ErrDegenerateGeometry)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = fmt.Errorf("geometry: invalid option supplied: %w", matrix.ErrNumericDomain)

	// ErrUnknownRule is returned by ParseRule for unknown names.
	ErrUnknownRule = fmt.Errorf("geometry: unknown contiguity rule: %w", matrix.ErrNumericDomain)
)

// DefaultTolerance is the relative tolerance of collinearity and touch tests:
// three points are collinear when the sine of their angle is below it.
const DefaultTolerance = 1e-9

// Rule selects which boundary contacts make two units neighbours.
type Rule int

const (
	// Queen: any shared boundary point, including a single corner.
	Queen Rule = iota
	// Rook: a shared boundary segment of positive length.
	Rook
)

// String returns the configuration name of the rule.
func (r Rule) String() string {
	switch r {
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	default:
		return fmt.Sprintf("Rule(%d)", int(r))
	}
}

// ParseRule maps "queen" or "rook" (case-insensitive) to a Rule.
func ParseRule(name string) (Rule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "queen", "":
		return Queen, nil
	case "rook":
		return Rook, nil
	default:
		return Queen, fmt.Errorf("%q: %w", name, ErrUnknownRule)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	v, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// Option configures adjacency extraction.
type Option func(*Options)

// Options holds adjacency parameters.
type Options struct {
	Rule      Rule
	Tolerance float64
	err       error
}

// DefaultOptions returns queen contiguity with DefaultTolerance.
func DefaultOptions() Options {
	return Options{Rule: Queen, Tolerance: DefaultTolerance}
}

// WithRule selects queen or rook contiguity.
func WithRule(r Rule) Option {
	return func(o *Options) {
		if r != Queen && r != Rook {
			o.err = fmt.Errorf("%w: rule %v", ErrOptionViolation, r)
			return
		}
		o.Rule = r
	}
}

// WithTolerance sets the relative collinearity tolerance, in [0, 1e-3].
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || eps < 0 || eps > 1e-3 {
			o.err = fmt.Errorf("%w: tolerance must be in [0, 1e-3], got %g", ErrOptionViolation, eps)
			return
		}
		o.Tolerance = eps
	}
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

// Defect classifies why a unit was rejected.
type Defect int

const (
	// TooFewVertices: an empty polygon or a ring with fewer than 3 distinct vertices.
	TooFewVertices Defect = iota
	// ZeroArea: the unit encloses no area.
	ZeroArea
	// SelfIntersection: a ring crosses or doubles back on itself.
	SelfIntersection
)

// String returns a short description of the defect.
func (d Defect) String() string {
	switch d {
	case TooFewVertices:
		return "too few vertices"
	case ZeroArea:
		return "zero area"
	case SelfIntersection:
		return "self-intersecting ring"
	default:
		return fmt.Sprintf("Defect(%d)", int(d))
	}
}

// Degenerate pairs a unit index with its first detected defect.
type Degenerate struct {
	Unit   int
	Defect Defect
}

// DegenerateError reports every degenerate unit of an input set.
type DegenerateError struct {
	Units []Degenerate
}

// Error lists the offending units.
func (e *DegenerateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "geometry: %d degenerate unit(s):", len(e.Units))
	for _, d := range e.Units {
		fmt.Fprintf(&b, " %d (%s);", d.Unit, d.Defect)
	}

	return strings.TrimSuffix(b.String(), ";")
}

// Unwrap lets errors.Is match ErrDegenerateGeometry and matrix.ErrDegenerateGeometry.
func (e *DegenerateError) Unwrap() error { return ErrDegenerateGeometry }
