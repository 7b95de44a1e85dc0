// Package geometry derives contiguity from polygonal areal units.
//
// Inputs are orb.Polygon or orb.MultiPolygon values (as decoded from GeoJSON
// by github.com/paulmach/orb/geojson). Every unit is normalized to a
// MultiPolygon and validated; all degenerate units are reported together in a
// *DegenerateError.
//
// Adjacency returns the binary first-order contiguity matrix under the Queen
// (shared point) or Rook (shared edge) rule. SharedBoundary returns the length
// of common boundary for each neighbouring pair. Centroids returns one
// representative point per unit for distance-based schemes.
//
// Collinearity and touch tests use a relative tolerance (WithTolerance), so
// projected metres and geographic degrees behave alike. Only units whose
// bounding boxes meet are compared edge by edge.
package geometry
