package geometry

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Centroids returns the area-weighted centroid of every unit, in input order.
// Multi-part units are weighted by part area, so the result may fall outside
// the unit. The points feed distance-based schemes built from polygons.
//
// Errors: as Adjacency.
func Centroids(geoms []orb.Geometry, opts ...Option) ([]orb.Point, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	polys, err := Normalize(geoms)
	if err != nil {
		return nil, fmt.Errorf("geometry.Centroids: %w", err)
	}
	if err = Validate(polys, o.Tolerance); err != nil {
		return nil, fmt.Errorf("geometry.Centroids: %w", err)
	}

	pts := make([]orb.Point, len(polys))
	for i, mp := range polys {
		pts[i], _ = planar.CentroidArea(mp)
	}

	return pts, nil
}
