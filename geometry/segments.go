package geometry

import (
	"math"

	"github.com/paulmach/orb"
)

// segment is one boundary edge with its cached bounding box.
type segment struct {
	a, b  orb.Point
	bound orb.Bound
}

func newSegment(a, b orb.Point) segment {
	return segment{a: a, b: b, bound: orb.Bound{Min: a, Max: a}.Extend(b)}
}

func (s segment) length() float64 { return math.Hypot(s.b[0]-s.a[0], s.b[1]-s.a[1]) }

// ringSegments returns the edges of r, closing it when the last point differs
// from the first and skipping zero-length edges from repeated vertices.
func ringSegments(r orb.Ring) []segment {
	if len(r) < 2 {
		return nil
	}
	segs := make([]segment, 0, len(r))
	for k := 0; k+1 < len(r); k++ {
		if r[k] != r[k+1] {
			segs = append(segs, newSegment(r[k], r[k+1]))
		}
	}
	if first, last := r[0], r[len(r)-1]; first != last {
		segs = append(segs, newSegment(last, first))
	}

	return segs
}

// unitSegments flattens every ring of every polygon of a unit.
func unitSegments(mp orb.MultiPolygon) []segment {
	var segs []segment
	for _, poly := range mp {
		for _, ring := range poly {
			segs = append(segs, ringSegments(ring)...)
		}
	}

	return segs
}

// cross is the z-component of (a−o)×(b−o).
func cross(o, a, b orb.Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}

// orient returns the turn direction of o→a→b: +1 left, −1 right, 0 when the
// sine of the angle at o is within tol.
func orient(o, a, b orb.Point, tol float64) int {
	v := cross(o, a, b)
	scale := math.Hypot(a[0]-o[0], a[1]-o[1]) * math.Hypot(b[0]-o[0], b[1]-o[1])
	switch {
	case math.Abs(v) <= tol*scale:
		return 0
	case v > 0:
		return 1
	default:
		return -1
	}
}

// within reports whether p lies in the bounding box of s padded by pad.
func within(p orb.Point, s segment, pad float64) bool {
	return p[0] >= s.bound.Min[0]-pad && p[0] <= s.bound.Max[0]+pad &&
		p[1] >= s.bound.Min[1]-pad && p[1] <= s.bound.Max[1]+pad
}

// touch reports whether segments s and t share at least one point: a proper
// crossing, an endpoint on the other segment, or a collinear overlap. An
// endpoint within pad of the other segment counts as on it.
func touch(s, t segment, tol, pad float64) bool {
	d1 := orient(s.a, s.b, t.a, tol)
	d2 := orient(s.a, s.b, t.b, tol)
	d3 := orient(t.a, t.b, s.a, tol)
	d4 := orient(t.a, t.b, s.b, tol)
	if d1*d2 < 0 && d3*d4 < 0 {
		return true
	}
	if (d1 == 0 && within(t.a, s, pad)) ||
		(d2 == 0 && within(t.b, s, pad)) ||
		(d3 == 0 && within(s.a, t, pad)) ||
		(d4 == 0 && within(s.b, t, pad)) {
		return true
	}

	return pad > 0 && (pointDist(t.a, s) <= pad || pointDist(t.b, s) <= pad ||
		pointDist(s.a, t) <= pad || pointDist(s.b, t) <= pad)
}

// pointDist returns the distance from p to the closest point of s.
func pointDist(p orb.Point, s segment) float64 {
	dx, dy := s.b[0]-s.a[0], s.b[1]-s.a[1]
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return math.Hypot(p[0]-s.a[0], p[1]-s.a[1])
	}
	u := ((p[0]-s.a[0])*dx + (p[1]-s.a[1])*dy) / l2
	u = math.Max(0, math.Min(1, u))

	return math.Hypot(p[0]-(s.a[0]+u*dx), p[1]-(s.a[1]+u*dy))
}

// overlap returns the length of the collinear overlap of s and t. Both ends
// of t must lie within pad of the line through s, and the overlap must be
// longer than pad; otherwise it is 0.
func overlap(s, t segment, pad float64) float64 {
	l := s.length()
	if l == 0 {
		return 0
	}
	ux, uy := (s.b[0]-s.a[0])/l, (s.b[1]-s.a[1])/l
	// Signed distances of t's ends from the line, and their positions along it.
	na := (t.a[1]-s.a[1])*ux - (t.a[0]-s.a[0])*uy
	nb := (t.b[1]-s.a[1])*ux - (t.b[0]-s.a[0])*uy
	if math.Abs(na) > pad || math.Abs(nb) > pad {
		return 0
	}
	ta := (t.a[0]-s.a[0])*ux + (t.a[1]-s.a[1])*uy
	tb := (t.b[0]-s.a[0])*ux + (t.b[1]-s.a[1])*uy
	lo := math.Max(0, math.Min(ta, tb))
	hi := math.Min(l, math.Max(ta, tb))
	if hi-lo <= pad {
		return 0
	}

	return hi - lo
}
