// SPDX-License-Identifier: MIT

package distance

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/spweights/matrix"
)

// Sentinel errors for distance providers.
var (
	// ErrNoPoints indicates an empty coordinate list.
	ErrNoPoints = fmt.Errorf("distance: no points supplied: %w", matrix.ErrInvalidInputShape)

	// ErrInvalidCoordinate indicates a non-finite coordinate, or a longitude
	// or latitude outside its range for GreatCircle.
	ErrInvalidCoordinate = fmt.Errorf("distance: invalid coordinate: %w", matrix.ErrInvalidInputShape)

	// ErrUnknownMetric is returned by ParseMetric and FromCoordinates.
	ErrUnknownMetric = fmt.Errorf("distance: unknown metric: %w", matrix.ErrNumericDomain)
)

// Metric selects how coordinates become distances.
type Metric int

const (
	// MetricEuclidean is the planar distance in coordinate units
	// (projected coordinates).
	MetricEuclidean Metric = iota
	// MetricGreatCircle is the haversine distance in metres between
	// (longitude, latitude) points in degrees.
	MetricGreatCircle
)

// String returns the configuration name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "euclidean"
	case MetricGreatCircle:
		return "greatcircle"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric maps "euclidean" or "greatcircle" (also "haversine") to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "euclidean", "planar", "":
		return MetricEuclidean, nil
	case "greatcircle", "great-circle", "haversine":
		return MetricGreatCircle, nil
	default:
		return MetricEuclidean, fmt.Errorf("%q: %w", name, ErrUnknownMetric)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := ParseMetric(string(text))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// Euclidean returns the pairwise planar distance matrix of points.
//
// Errors: ErrNoPoints, ErrInvalidCoordinate.
func Euclidean(points []orb.Point) (*matrix.Dense, error) {
	return pairwise(points, MetricEuclidean)
}

// GreatCircle returns the pairwise haversine distances in metres. Points are
// (longitude, latitude) in degrees, as in GeoJSON.
//
// Errors: ErrNoPoints, ErrInvalidCoordinate.
func GreatCircle(points []orb.Point) (*matrix.Dense, error) {
	return pairwise(points, MetricGreatCircle)
}

// FromCoordinates builds the distance matrix of points under metric.
//
// Errors: ErrUnknownMetric plus those of Euclidean and GreatCircle.
func FromCoordinates(points []orb.Point, metric Metric) (*matrix.Dense, error) {
	switch metric {
	case MetricEuclidean, MetricGreatCircle:
		return pairwise(points, metric)
	default:
		return nil, fmt.Errorf("distance.FromCoordinates: %v: %w", metric, ErrUnknownMetric)
	}
}

// pairwise fills the upper triangle in parallel row blocks and mirrors it, so
// the result is exactly symmetric with a zero diagonal.
func pairwise(points []orb.Point, metric Metric) (*matrix.Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, ErrNoPoints
	}
	dist := planar.Distance
	if metric == MetricGreatCircle {
		dist = geo.DistanceHaversine
	}
	for i, p := range points {
		if err := checkPoint(p, metric); err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	err = matrix.ParallelRows(n, matrix.DefaultWorkers, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			for j := i + 1; j < n; j++ {
				v := dist(points[i], points[j])
				if err := d.Set(i, j, v); err != nil {
					return err
				}
				if err := d.Set(j, i, v); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

func checkPoint(p orb.Point, metric Metric) error {
	x, y := p.X(), p.Y()
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return fmt.Errorf("(%g, %g): %w", x, y, ErrInvalidCoordinate)
	}
	if metric == MetricGreatCircle && (math.Abs(x) > 180 || math.Abs(y) > 90) {
		return fmt.Errorf("lon=%g lat=%g out of range: %w", x, y, ErrInvalidCoordinate)
	}

	return nil
}
