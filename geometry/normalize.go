// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Normalize converts each geometry into a MultiPolygon so that single-part
// and multi-part units are treated identically downstream.
//
// Errors: ErrEmptyInput, ErrUnsupportedGeometry (with the offending index).
func Normalize(geoms []orb.Geometry) ([]orb.MultiPolygon, error) {
	if len(geoms) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]orb.MultiPolygon, len(geoms))
	for i, g := range geoms {
		switch v := g.(type) {
		case orb.Polygon:
			out[i] = orb.MultiPolygon{v}
		case orb.MultiPolygon:
			out[i] = v
		case nil:
			return nil, fmt.Errorf("unit %d: nil geometry: %w", i, ErrUnsupportedGeometry)
		default:
			return nil, fmt.Errorf("unit %d: %s: %w", i, g.GeoJSONType(), ErrUnsupportedGeometry)
		}
	}

	return out, nil
}

// Validate checks every unit and reports all degenerate ones at once in a
// *DegenerateError. A unit is degenerate when it has no polygon, a ring with
// fewer than three distinct vertices, zero area, or a ring that crosses or
// doubles back on itself. Crossings between different rings are not checked.
func Validate(units []orb.MultiPolygon, tol float64) error {
	var bad []Degenerate
	for i, mp := range units {
		if d, ok := defectOf(mp, tol); ok {
			bad = append(bad, Degenerate{Unit: i, Defect: d})
		}
	}
	if len(bad) > 0 {
		return &DegenerateError{Units: bad}
	}

	return nil
}

func defectOf(mp orb.MultiPolygon, tol float64) (Defect, bool) {
	if len(mp) == 0 {
		return TooFewVertices, true
	}
	for _, poly := range mp {
		if len(poly) == 0 {
			return TooFewVertices, true
		}
		for _, ring := range poly {
			segs := ringSegments(ring)
			if len(segs) < 3 {
				return TooFewVertices, true
			}
			if selfIntersects(segs, tol) {
				return SelfIntersection, true
			}
		}
	}
	if planar.Area(mp) <= tol*tol {
		return ZeroArea, true
	}

	return 0, false
}

// selfIntersects tests a closed ring given as consecutive edges. Neighbouring
// edges may only share their common vertex; all other pairs must be disjoint.
func selfIntersects(segs []segment, tol float64) bool {
	n := len(segs)
	for i := 0; i < n; i++ {
		next := segs[(i+1)%n]
		if spike(segs[i], next, tol) {
			return true
		}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if !segs[i].bound.Intersects(segs[j].bound) {
				continue
			}
			if touch(segs[i], segs[j], tol, 0) {
				return true
			}
		}
	}

	return false
}

// spike reports whether t turns straight back along s.
func spike(s, t segment, tol float64) bool {
	if orient(s.a, s.b, t.b, tol) != 0 {
		return false
	}
	dx1, dy1 := s.a[0]-s.b[0], s.a[1]-s.b[1]
	dx2, dy2 := t.b[0]-t.a[0], t.b[1]-t.a[1]

	return dx1*dx2+dy1*dy2 > 0
}
