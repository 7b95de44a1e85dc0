// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/spweights/matrix"
)

// units is the prepared form of an input set: normalized polygons, their
// boundary edges and padded bounding boxes.
type units struct {
	polys  []orb.MultiPolygon
	segs   [][]segment
	bounds []orb.Bound
	tol    float64
	pad    float64
}

// prepare normalizes and validates geoms and caches per-unit boundaries.
func prepare(geoms []orb.Geometry, tol float64) (*units, error) {
	polys, err := Normalize(geoms)
	if err != nil {
		return nil, err
	}
	if err = Validate(polys, tol); err != nil {
		return nil, err
	}

	u := &units{
		polys:  polys,
		segs:   make([][]segment, len(polys)),
		bounds: make([]orb.Bound, len(polys)),
		tol:    tol,
	}
	extent := 1.0
	for i, mp := range polys {
		u.segs[i] = unitSegments(mp)
		u.bounds[i] = mp.Bound()
		for _, c := range [...]float64{u.bounds[i].Min[0], u.bounds[i].Min[1], u.bounds[i].Max[0], u.bounds[i].Max[1]} {
			extent = math.Max(extent, math.Abs(c))
		}
	}
	// Absolute slack for coordinates that are equal up to rounding.
	u.pad = tol * extent
	for i := range u.bounds {
		u.bounds[i] = u.bounds[i].Pad(u.pad)
	}

	return u, nil
}

// touches reports whether the boundaries of units i and j share any point.
func (u *units) touches(i, j int) bool {
	for _, s := range u.segs[i] {
		if !s.bound.Pad(u.pad).Intersects(u.bounds[j]) {
			continue
		}
		for _, t := range u.segs[j] {
			if touch(s, t, u.tol, u.pad) {
				return true
			}
		}
	}

	return false
}

// sharedLength sums the collinear overlaps between the edges of units i and j.
func (u *units) sharedLength(i, j int) float64 {
	var total float64
	for _, s := range u.segs[i] {
		if !s.bound.Pad(u.pad).Intersects(u.bounds[j]) {
			continue
		}
		for _, t := range u.segs[j] {
			total += overlap(s, t, u.pad)
		}
	}

	return total
}

// contains reports whether one unit lies inside the other without their
// boundaries meeting (an enclave).
func (u *units) contains(i, j int) bool {
	return planar.MultiPolygonContains(u.polys[i], u.polys[j][0][0][0]) ||
		planar.MultiPolygonContains(u.polys[j], u.polys[i][0][0][0])
}

// Adjacency extracts the binary contiguity matrix of a set of polygonal units.
// Entry (i, j) is 1 when units i and j are neighbours under the selected Rule
// and 0 otherwise; the matrix is symmetric with a zero diagonal.
//
// Queen units share at least one boundary point. Rook units share boundary
// segments of positive total length. Under both rules a unit lying entirely
// inside another (an enclave) is a neighbour of its host.
//
// Candidate pairs come from a bounding-box sweep, so only units whose boxes
// intersect are compared edge by edge.
//
// Errors: ErrEmptyInput, ErrUnsupportedGeometry, *DegenerateError,
// ErrOptionViolation.
func Adjacency(geoms []orb.Geometry, opts ...Option) (*matrix.Sparse, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	u, err := prepare(geoms, o.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("geometry.Adjacency: %w", err)
	}

	n := len(u.polys)
	rowCols := make([][]int, n)
	for _, p := range candidatePairs(u.bounds) {
		touching := u.touches(p.i, p.j)
		adjacent := touching
		if touching && o.Rule == Rook {
			adjacent = u.sharedLength(p.i, p.j) > 0
		}
		if !touching {
			adjacent = u.contains(p.i, p.j)
		}
		if adjacent {
			rowCols[p.i] = append(rowCols[p.i], p.j)
			rowCols[p.j] = append(rowCols[p.j], p.i)
		}
	}

	return fromLists(n, rowCols, nil)
}

// SharedBoundary returns the matrix of shared boundary lengths: entry (i, j)
// is the total length of boundary common to units i and j, in the units of
// the input coordinates. Pairs that meet only at points, and enclaves, get 0.
//
// Errors: as Adjacency.
func SharedBoundary(geoms []orb.Geometry, opts ...Option) (*matrix.Sparse, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	u, err := prepare(geoms, o.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("geometry.SharedBoundary: %w", err)
	}

	n := len(u.polys)
	rowCols := make([][]int, n)
	rowVals := make([][]float64, n)
	for _, p := range candidatePairs(u.bounds) {
		l := u.sharedLength(p.i, p.j)
		if l <= 0 {
			continue
		}
		rowCols[p.i] = append(rowCols[p.i], p.j)
		rowVals[p.i] = append(rowVals[p.i], l)
		rowCols[p.j] = append(rowCols[p.j], p.i)
		rowVals[p.j] = append(rowVals[p.j], l)
	}

	return fromLists(n, rowCols, rowVals)
}

// fromLists sorts each row's neighbour list and builds an n×n CSR matrix.
// A nil rowVals means every entry is 1.
func fromLists(n int, rowCols [][]int, rowVals [][]float64) (*matrix.Sparse, error) {
	for i := range rowCols {
		if rowVals == nil {
			sort.Ints(rowCols[i])
			continue
		}
		sortPaired(rowCols[i], rowVals[i])
	}
	if rowVals == nil {
		rowVals = make([][]float64, n)
		for i, cols := range rowCols {
			rowVals[i] = make([]float64, len(cols))
			for k := range cols {
				rowVals[i][k] = 1
			}
		}
	}

	return matrix.NewSparseFromRows(n, n, rowCols, rowVals)
}
