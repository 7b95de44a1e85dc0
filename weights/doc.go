// Package weights is the single entry point for building spatial weights
// matrices from a Config record.
//
// The caller wraps its data in a Source (FromGeometry, FromAdjacency,
// FromDistanceMatrix or FromCoordinates) and selects a Scheme in the Config:
//
//	contiguity       exact-order polygon contiguity (package contiguity)
//	shared-boundary  common boundary length (package geometry)
//	distance         decay kernel of distance (package decay)
//	knn              k nearest neighbours (package knn)
//
// Config carries toml tags so that a construction can be described in a
// file. Build validates it, dispatches to the source and logs a summary
// with github.com/charmbracelet/log.
package weights
