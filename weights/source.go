// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"

	"github.com/katalvlaran/spweights/contiguity"
	"github.com/katalvlaran/spweights/decay"
	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/knn"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// Source is the input of a construction call. The caller picks the
// implementation matching the data at hand; each one supports the schemes
// its data allows and rejects the rest with ErrUnsupportedScheme.
type Source interface {
	Weights(cfg Config) (*matrix.Sparse, error)
}

var (
	_ Source = FromGeometry{}
	_ Source = FromAdjacency{}
	_ Source = FromDistanceMatrix{}
	_ Source = FromCoordinates{}
)

// FromGeometry supplies polygonal units. Contiguity and shared-boundary
// schemes use the polygons; distance and knn schemes use their centroids.
type FromGeometry struct {
	Geometries []orb.Geometry
}

// Weights builds cfg.Scheme from the polygons.
func (s FromGeometry) Weights(cfg Config) (*matrix.Sparse, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Scheme {
	case SchemeContiguity:
		return contiguity.FromGeometry(s.Geometries, cfg.Order, contiguityOptions(cfg)...)
	case SchemeSharedBoundary:
		w, err := geometry.SharedBoundary(s.Geometries, cfg.geometryOptions()...)
		if err != nil {
			return nil, err
		}
		return normalize.Apply(w, cfg.mode(), cfg.normalizeOptions()...)
	default:
		pts, err := geometry.Centroids(s.Geometries, cfg.geometryOptions()...)
		if err != nil {
			return nil, err
		}
		return FromCoordinates{Points: pts}.Weights(cfg)
	}
}

// FromAdjacency supplies a first-order adjacency matrix; only the
// contiguity scheme applies.
type FromAdjacency struct {
	Adjacency *matrix.Sparse
}

// Weights expands the adjacency to cfg.Order.
func (s FromAdjacency) Weights(cfg Config) (*matrix.Sparse, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Scheme != SchemeContiguity {
		return nil, fmt.Errorf("%s from adjacency: %w", cfg.Scheme, ErrUnsupportedScheme)
	}

	return contiguity.Order(s.Adjacency, cfg.Order, contiguityOptions(cfg)...)
}

// FromDistanceMatrix supplies a precomputed distance matrix; the distance
// and knn schemes apply.
type FromDistanceMatrix struct {
	D matrix.Reader
}

// Weights applies the decay kernel or the KNN selector to D.
func (s FromDistanceMatrix) Weights(cfg Config) (*matrix.Sparse, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Scheme {
	case SchemeDistance:
		return decay.Weights(s.D, cfg.Kernel, cfg.decayOptions()...)
	case SchemeKNN:
		return knn.Select(s.D, cfg.K, cfg.knnOptions()...)
	default:
		return nil, fmt.Errorf("%s from distance matrix: %w", cfg.Scheme, ErrUnsupportedScheme)
	}
}

// FromCoordinates supplies one point per unit; distances follow cfg.Metric.
type FromCoordinates struct {
	Points []orb.Point
}

// Weights computes the distance matrix and delegates to FromDistanceMatrix.
func (s FromCoordinates) Weights(cfg Config) (*matrix.Sparse, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Scheme != SchemeDistance && cfg.Scheme != SchemeKNN {
		return nil, fmt.Errorf("%s from coordinates: %w", cfg.Scheme, ErrUnsupportedScheme)
	}
	d, err := distance.FromCoordinates(s.Points, cfg.Metric)
	if err != nil {
		return nil, err
	}

	return FromDistanceMatrix{D: d}.Weights(cfg)
}

func contiguityOptions(cfg Config) []contiguity.Option {
	opts := []contiguity.Option{
		contiguity.WithWorkers(cfg.Workers),
		contiguity.WithGeometry(cfg.geometryOptions()...),
		contiguity.WithNormalizeOptions(cfg.normalizeOptions()...),
	}
	if cfg.RowNormalize {
		opts = append(opts, contiguity.WithRowNormalize())
	}
	if cfg.SpectralNormalize {
		opts = append(opts, contiguity.WithSpectralNormalize())
	}

	return opts
}

// Build validates cfg, asks src for the weights and logs a summary of the
// result on cfg.Logger.
func Build(src Source, cfg Config) (*matrix.Sparse, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if src == nil {
		return nil, fmt.Errorf("weights.Build: nil source: %w", matrix.ErrInvalidInputShape)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("weights.Build: %w", err)
	}

	logger.Debug("building weights", "scheme", cfg.Scheme, "source", fmt.Sprintf("%T", src))
	start := time.Now()
	w, err := src.Weights(cfg)
	if err != nil {
		return nil, fmt.Errorf("weights.Build: %w", err)
	}

	var isolated int
	for i := 0; i < w.Rows(); i++ {
		if w.RowNNZ(i) == 0 {
			isolated++
		}
	}
	logger.Info("weights built",
		"scheme", cfg.Scheme,
		"units", w.Rows(),
		"nnz", w.NNZ(),
		"isolated", isolated,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	if isolated > 0 {
		logger.Warn("units without neighbours", "count", isolated)
	}

	return w, nil
}
