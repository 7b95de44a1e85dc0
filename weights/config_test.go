package weights_test

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spweights/decay"
	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/eigen"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/normalize"
	"github.com/katalvlaran/spweights/weights"
)

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, weights.DefaultConfig().Validate())

	cases := map[string]struct {
		edit func(*weights.Config)
		want error
	}{
		"unknown scheme": {func(c *weights.Config) { c.Scheme = "voronoi" }, weights.ErrUnknownScheme},
		"both modes": {func(c *weights.Config) {
			c.RowNormalize, c.SpectralNormalize = true, true
		}, normalize.ErrConflictingModes},
		"order zero":       {func(c *weights.Config) { c.Order = 0 }, weights.ErrInvalidConfig},
		"k zero":           {func(c *weights.Config) { c.Scheme, c.K = weights.SchemeKNN, 0 }, weights.ErrInvalidConfig},
		"alpha zero":       {func(c *weights.Config) { c.Scheme, c.Alpha = weights.SchemeDistance, 0 }, weights.ErrInvalidConfig},
		"negative cutoff":  {func(c *weights.Config) { c.Scheme, c.Cutoff = weights.SchemeDistance, -1 }, weights.ErrInvalidConfig},
		"negative maxiter": {func(c *weights.Config) { c.MaxIter = -3 }, weights.ErrInvalidConfig},
	}
	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := weights.DefaultConfig()
			tc.edit(&cfg)
			require.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	// Fields of other schemes are not checked.
	cfg := weights.DefaultConfig()
	cfg.K = 0
	require.NoError(t, cfg.Validate())
}

func TestConfigTOML(t *testing.T) {
	t.Parallel()

	const doc = `
scheme = "distance"
kernel = "double-power"
power = 3.0
cutoff = 2500.0
metric = "haversine"
spectral_normalize = true
solver = "dense"
workers = 2
`
	cfg := weights.DefaultConfig()
	_, err := toml.Decode(doc, &cfg)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, weights.SchemeDistance, cfg.Scheme)
	require.Equal(t, decay.KindDoublePower, cfg.Kernel)
	require.Equal(t, 3.0, cfg.Power)
	require.Equal(t, 2500.0, cfg.Cutoff)
	require.Equal(t, distance.MetricGreatCircle, cfg.Metric)
	require.Equal(t, eigen.SolverDense, cfg.Solver)
	require.True(t, cfg.SpectralNormalize)
	// Untouched keys keep their defaults.
	require.Equal(t, decay.DefaultAlpha, cfg.Alpha)
	require.Equal(t, geometry.Queen, cfg.Rule)

	bad := weights.DefaultConfig()
	_, err = toml.Decode(`rule = "bishop"`, &bad)
	require.Error(t, err)
}

func TestParseScheme(t *testing.T) {
	t.Parallel()

	s, err := weights.ParseScheme(" KNN ")
	require.NoError(t, err)
	require.Equal(t, weights.SchemeKNN, s)

	_, err = weights.ParseScheme("kernel")
	require.ErrorIs(t, err, weights.ErrUnknownScheme)
}
