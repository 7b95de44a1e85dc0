// SPDX-License-Identifier: MIT

package weights_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/contiguity"
	"github.com/katalvlaran/spweights/decay"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/knn"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/weights"
)

// strip returns n unit squares side by side along x.
func strip(n int) []orb.Geometry {
	out := make([]orb.Geometry, n)
	for i := range out {
		x := float64(i)
		out[i] = orb.Polygon{orb.Ring{{x, 0}, {x + 1, 0}, {x + 1, 1}, {x, 1}, {x, 0}}}
	}

	return out
}

func TestFromGeometrySchemes(t *testing.T) {
	t.Parallel()

	src := weights.FromGeometry{Geometries: strip(4)}

	cfg := weights.DefaultConfig()
	cfg.Order = 2
	w, err := src.Weights(cfg)
	require.NoError(t, err)
	want, err := contiguity.FromGeometry(strip(4), 2)
	require.NoError(t, err)
	require.True(t, w.EqualApprox(want, 0))

	cfg = weights.DefaultConfig()
	cfg.Scheme = weights.SchemeSharedBoundary
	cfg.RowNormalize = true
	w, err = src.Weights(cfg)
	require.NoError(t, err)
	v, _ := w.At(1, 0)
	require.InDelta(t, 0.5, v, 1e-15)
	v, _ = w.At(0, 1)
	require.InDelta(t, 1.0, v, 1e-15)

	// Centroids sit at 0.5, 1.5, 2.5, 3.5.
	cfg = weights.DefaultConfig()
	cfg.Scheme = weights.SchemeKNN
	cfg.K = 1
	w, err = src.Weights(cfg)
	require.NoError(t, err)
	c, _ := w.Row(3)
	require.Equal(t, []int{2}, c)

	cfg.Scheme = weights.SchemeDistance
	w, err = src.Weights(cfg)
	require.NoError(t, err)
	v, _ = w.At(0, 2)
	require.InDelta(t, 0.5, v, 1e-12)
}

func TestFromDistanceMatrixSchemes(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDenseFrom([][]float64{
		{0, 1, 4},
		{1, 0, 2},
		{4, 2, 0},
	})
	require.NoError(t, err)
	src := weights.FromDistanceMatrix{D: d}

	cfg := weights.DefaultConfig()
	cfg.Scheme = weights.SchemeDistance
	cfg.Kernel = decay.KindExponential
	cfg.Alpha = 0.5
	cfg.Cutoff = 3
	got, err := src.Weights(cfg)
	require.NoError(t, err)
	want, err := decay.Exponential(d, decay.WithAlpha(0.5), decay.WithCutoff(3))
	require.NoError(t, err)
	require.True(t, got.EqualApprox(want, 0))

	cfg.Scheme = weights.SchemeKNN
	cfg.K = 1
	cfg.RowNormalize = true
	got, err = src.Weights(cfg)
	require.NoError(t, err)
	want, err = knn.Select(d, 1, knn.WithRowNormalize())
	require.NoError(t, err)
	require.True(t, got.EqualApprox(want, 0))

	cfg = weights.DefaultConfig()
	_, err = src.Weights(cfg)
	require.ErrorIs(t, err, weights.ErrUnsupportedScheme)
}

func TestFromAdjacency(t *testing.T) {
	t.Parallel()

	adj, err := geometry.Adjacency(strip(3))
	require.NoError(t, err)
	src := weights.FromAdjacency{Adjacency: adj}

	cfg := weights.DefaultConfig()
	cfg.Order = 2
	w, err := src.Weights(cfg)
	require.NoError(t, err)
	require.Equal(t, 2, w.NNZ())

	cfg.Scheme = weights.SchemeKNN
	_, err = src.Weights(cfg)
	require.ErrorIs(t, err, weights.ErrUnsupportedScheme)
}

func TestFromCoordinatesRejectsContiguity(t *testing.T) {
	t.Parallel()

	_, err := weights.FromCoordinates{Points: []orb.Point{{0, 0}, {1, 1}}}.Weights(weights.DefaultConfig())
	require.ErrorIs(t, err, weights.ErrUnsupportedScheme)
	require.ErrorIs(t, err, matrix.ErrInvalidInputShape)
}

func TestBuildLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cfg := weights.DefaultConfig()
	cfg.Rule = geometry.Rook
	cfg.Logger = log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	// Unit 2 is detached from the strip.
	geoms := append(strip(2), orb.Polygon{orb.Ring{{10, 10}, {11, 10}, {11, 11}, {10, 11}, {10, 10}}})
	w, err := weights.Build(weights.FromGeometry{Geometries: geoms}, cfg)
	require.NoError(t, err)
	require.Equal(t, 2, w.NNZ())

	out := buf.String()
	require.Contains(t, out, "building weights")
	require.Contains(t, out, "weights built")
	require.Contains(t, out, "isolated=1")
	require.Contains(t, out, "units without neighbours")

	_, err = weights.Build(nil, cfg)
	require.ErrorIs(t, err, matrix.ErrInvalidInputShape)

	cfg.Order = 0
	_, err = weights.Build(weights.FromGeometry{Geometries: geoms}, cfg)
	require.ErrorIs(t, err, weights.ErrInvalidConfig)
}
