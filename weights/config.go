// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/spweights/decay"
	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/eigen"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/knn"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/normalize"
)

// Sentinel errors for configuration and dispatch.
var (
	// ErrInvalidConfig is returned by Validate for out-of-domain values.
	ErrInvalidConfig = fmt.Errorf("weights: invalid configuration: %w", matrix.ErrNumericDomain)

	// ErrUnknownScheme is returned for an unrecognized Scheme.
	ErrUnknownScheme = fmt.Errorf("weights: unknown scheme: %w", matrix.ErrNumericDomain)

	// ErrUnsupportedScheme is returned when a source cannot provide the
	// input a scheme needs (e.g. contiguity from a distance matrix).
	ErrUnsupportedScheme = fmt.Errorf("weights: scheme not available for this source: %w", matrix.ErrInvalidInputShape)
)

// Scheme names a construction method.
type Scheme string

// Supported schemes.
const (
	SchemeContiguity     Scheme = "contiguity"
	SchemeSharedBoundary Scheme = "shared-boundary"
	SchemeDistance       Scheme = "distance"
	SchemeKNN            Scheme = "knn"
)

// ParseScheme validates a scheme name (case-insensitive).
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case SchemeContiguity, SchemeSharedBoundary, SchemeDistance, SchemeKNN:
		return s, nil
	default:
		return s, fmt.Errorf("%q: %w", name, ErrUnknownScheme)
	}
}

// Config is the full parameter record of one construction call. Zero values
// of optional numbers mean "use the package default"; DefaultConfig fills
// them explicitly. The toml tags define the configuration file layout.
type Config struct {
	// Scheme selects the construction method.
	Scheme Scheme `toml:"scheme"`

	// Order is the contiguity order m (contiguity only).
	Order int `toml:"order"`

	// Rule is the polygon contiguity rule (contiguity only).
	Rule geometry.Rule `toml:"rule"`

	// GeometryTolerance is the relative collinearity tolerance for polygons.
	GeometryTolerance float64 `toml:"geometry_tolerance"`

	// Kernel selects the decay kernel (distance only).
	Kernel decay.Kind `toml:"kernel"`

	// Alpha is the inverse-power exponent or exponential rate.
	Alpha float64 `toml:"alpha"`

	// Power is the double-power exponent.
	Power float64 `toml:"power"`

	// Cutoff drops pairs with d >= Cutoff; 0 means none.
	Cutoff float64 `toml:"cutoff"`

	// K is the neighbour count (knn only).
	K int `toml:"k"`

	// Metric turns coordinates or centroids into distances.
	Metric distance.Metric `toml:"metric"`

	// RowNormalize and SpectralNormalize select the final normalization;
	// at most one may be set.
	RowNormalize      bool `toml:"row_normalize"`
	SpectralNormalize bool `toml:"spectral_normalize"`

	// Solver, EigenTolerance and MaxIter configure spectral normalization.
	Solver         eigen.Solver `toml:"solver"`
	EigenTolerance float64      `toml:"eigen_tolerance"`
	MaxIter        int          `toml:"max_iter"`

	// Workers bounds row fan-out; <= 0 means GOMAXPROCS.
	Workers int `toml:"workers"`

	// Logger receives stage timings from Build; nil discards them.
	Logger *log.Logger `toml:"-"`
}

// DefaultConfig returns first-order queen contiguity without normalization,
// with every numeric parameter at its documented default.
func DefaultConfig() Config {
	return Config{
		Scheme:            SchemeContiguity,
		Order:             1,
		Rule:              geometry.Queen,
		GeometryTolerance: geometry.DefaultTolerance,
		Kernel:            decay.KindInverse,
		Alpha:             decay.DefaultAlpha,
		Power:             decay.DefaultPower,
		K:                 knn.DefaultK,
		Metric:            distance.MetricEuclidean,
		Solver:            eigen.SolverPower,
		EigenTolerance:    eigen.DefaultTolerance,
		MaxIter:           eigen.DefaultMaxIter,
		Workers:           matrix.DefaultWorkers,
	}
}

// Validate checks every field relevant to cfg.Scheme and the normalization
// flags. It does not touch input data.
func (cfg Config) Validate() error {
	if _, err := ParseScheme(string(cfg.Scheme)); err != nil {
		return err
	}
	if _, err := normalize.ModeOf(cfg.RowNormalize, cfg.SpectralNormalize); err != nil {
		return err
	}
	bad := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}
	switch cfg.Scheme {
	case SchemeContiguity:
		if cfg.Order < 1 {
			return bad("order must be >= 1, got %d", cfg.Order)
		}
	case SchemeDistance:
		if !finitePositive(cfg.Alpha) || !finitePositive(cfg.Power) {
			return bad("alpha and power must be positive, got %g and %g", cfg.Alpha, cfg.Power)
		}
		if cfg.Cutoff < 0 || math.IsNaN(cfg.Cutoff) || math.IsInf(cfg.Cutoff, 0) {
			return bad("cutoff must be >= 0 and finite, got %g", cfg.Cutoff)
		}
	case SchemeKNN:
		if cfg.K < 1 {
			return bad("k must be >= 1, got %d", cfg.K)
		}
	}
	if cfg.GeometryTolerance < 0 || cfg.EigenTolerance < 0 || cfg.MaxIter < 0 {
		return bad("tolerances and max_iter cannot be negative")
	}

	return nil
}

func finitePositive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

// normalizeOptions forwards solver settings; zero values keep defaults.
func (cfg Config) normalizeOptions() []normalize.Option {
	opts := []normalize.Option{normalize.WithWorkers(cfg.Workers), normalize.WithSolver(cfg.Solver)}
	if cfg.EigenTolerance > 0 {
		opts = append(opts, normalize.WithEigenOptions(eigen.WithTolerance(cfg.EigenTolerance)))
	}
	if cfg.MaxIter > 0 {
		opts = append(opts, normalize.WithEigenOptions(eigen.WithMaxIter(cfg.MaxIter)))
	}

	return opts
}

func (cfg Config) mode() normalize.Mode {
	mode, _ := normalize.ModeOf(cfg.RowNormalize, cfg.SpectralNormalize) // checked by Validate

	return mode
}

func (cfg Config) geometryOptions() []geometry.Option {
	opts := []geometry.Option{geometry.WithRule(cfg.Rule)}
	if cfg.GeometryTolerance > 0 {
		opts = append(opts, geometry.WithTolerance(cfg.GeometryTolerance))
	}

	return opts
}

func (cfg Config) decayOptions() []decay.Option {
	opts := []decay.Option{
		decay.WithAlpha(cfg.Alpha),
		decay.WithPower(cfg.Power),
		decay.WithWorkers(cfg.Workers),
		decay.WithNormalizeOptions(cfg.normalizeOptions()...),
	}
	if cfg.Cutoff > 0 {
		opts = append(opts, decay.WithCutoff(cfg.Cutoff))
	}
	if cfg.RowNormalize {
		opts = append(opts, decay.WithRowNormalize())
	}
	if cfg.SpectralNormalize {
		opts = append(opts, decay.WithSpectralNormalize())
	}

	return opts
}

func (cfg Config) knnOptions() []knn.Option {
	opts := []knn.Option{
		knn.WithWorkers(cfg.Workers),
		knn.WithNormalizeOptions(cfg.normalizeOptions()...),
	}
	if cfg.RowNormalize {
		opts = append(opts, knn.WithRowNormalize())
	}
	if cfg.SpectralNormalize {
		opts = append(opts, knn.WithSpectralNormalize())
	}

	return opts
}
