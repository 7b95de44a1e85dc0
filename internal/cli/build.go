// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/spweights/decay"
	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/eigen"
	"github.com/katalvlaran/spweights/geometry"
	"github.com/katalvlaran/spweights/matrix"
	"github.com/katalvlaran/spweights/weights"
)

// inputFlags names the data source of a command; exactly one must be set.
type inputFlags struct {
	geojson   string
	distances string
	coords    string
}

var errInput = errors.New("exactly one of --geojson, --distances or --coords is required")

// source loads the selected input into a weights.Source.
func (in inputFlags) source() (weights.Source, error) {
	set := 0
	for _, p := range []string{in.geojson, in.distances, in.coords} {
		if p != "" {
			set++
		}
	}
	if set != 1 {
		return nil, errInput
	}
	switch {
	case in.geojson != "":
		geoms, err := readGeoJSON(in.geojson)
		if err != nil {
			return nil, err
		}
		return weights.FromGeometry{Geometries: geoms}, nil
	case in.distances != "":
		d, err := readDistances(in.distances)
		if err != nil {
			return nil, err
		}
		return weights.FromDistanceMatrix{D: d}, nil
	default:
		pts, err := readPoints(in.coords)
		if err != nil {
			return nil, err
		}
		return weights.FromCoordinates{Points: pts}, nil
	}
}

// buildFlags mirrors weights.Config for the command line. Enumerations are
// kept as strings and parsed only when the flag was given.
type buildFlags struct {
	config            string
	scheme            string
	order             int
	rule              string
	kernel            string
	alpha             float64
	power             float64
	cutoff            float64
	k                 int
	metric            string
	rowNormalize      bool
	spectralNormalize bool
	solver            string
	maxIter           int
	workers           int
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var (
		in     inputFlags
		bf     buildFlags
		output string
		format string
	)
	def := weights.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a weights matrix",
		Long: `Build a spatial weights matrix from one input source.

Inputs:
  --geojson    FeatureCollection of Polygon/MultiPolygon features
  --distances  square CSV distance matrix
  --coords     CSV of x,y (or lon,lat with --metric greatcircle) rows

Parameters are read from --config (TOML, same keys as the flags with
underscores) and then overridden by any flag given explicitly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bf.resolve(cmd)
			if err != nil {
				return err
			}
			return c.runBuild(cfg, in, output, format)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.geojson, "geojson", "", "GeoJSON FeatureCollection of polygons")
	f.StringVar(&in.distances, "distances", "", "CSV distance matrix")
	f.StringVar(&in.coords, "coords", "", "CSV point coordinates")
	f.StringVarP(&bf.config, "config", "c", "", "TOML configuration file")
	f.StringVarP(&output, "out", "o", "", "output file (default: stdout)")
	f.StringVar(&format, "format", formatDense, "output format: dense, triplets")

	f.StringVarP(&bf.scheme, "scheme", "s", string(def.Scheme), "contiguity, shared-boundary, distance, knn")
	f.IntVar(&bf.order, "order", def.Order, "contiguity order m")
	f.StringVar(&bf.rule, "rule", def.Rule.String(), "contiguity rule: queen, rook")
	f.StringVar(&bf.kernel, "kernel", def.Kernel.String(), "decay kernel: inverse, exponential, doubled")
	f.Float64Var(&bf.alpha, "alpha", def.Alpha, "inverse exponent / exponential rate")
	f.Float64Var(&bf.power, "power", def.Power, "double-power exponent")
	f.Float64Var(&bf.cutoff, "cutoff", def.Cutoff, "drop pairs with d >= cutoff (0: none)")
	f.IntVar(&bf.k, "k", def.K, "nearest neighbours per unit")
	f.StringVar(&bf.metric, "metric", def.Metric.String(), "distance metric: euclidean, greatcircle")
	f.BoolVar(&bf.rowNormalize, "row-normalize", false, "row-normalize the result")
	f.BoolVar(&bf.spectralNormalize, "spectral-normalize", false, "divide the result by its leading eigenvalue")
	f.StringVar(&bf.solver, "solver", def.Solver.String(), "eigen solver: power, dense, jacobi")
	f.IntVar(&bf.maxIter, "max-iter", def.MaxIter, "power iteration budget")
	f.IntVar(&bf.workers, "workers", def.Workers, "row workers (0: GOMAXPROCS)")

	return cmd
}

// resolve layers defaults, the TOML file and explicitly set flags.
func (bf buildFlags) resolve(cmd *cobra.Command) (weights.Config, error) {
	cfg := weights.DefaultConfig()
	if bf.config != "" {
		if _, err := toml.DecodeFile(bf.config, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", bf.config, err)
		}
	}

	f := cmd.Flags()
	var err error
	if f.Changed("scheme") {
		if cfg.Scheme, err = weights.ParseScheme(bf.scheme); err != nil {
			return cfg, err
		}
	}
	if f.Changed("rule") {
		if cfg.Rule, err = geometry.ParseRule(bf.rule); err != nil {
			return cfg, err
		}
	}
	if f.Changed("kernel") {
		if cfg.Kernel, err = decay.ParseKind(bf.kernel); err != nil {
			return cfg, err
		}
	}
	if f.Changed("metric") {
		if cfg.Metric, err = distance.ParseMetric(bf.metric); err != nil {
			return cfg, err
		}
	}
	if f.Changed("solver") {
		if cfg.Solver, err = eigen.ParseSolver(bf.solver); err != nil {
			return cfg, err
		}
	}
	if f.Changed("order") {
		cfg.Order = bf.order
	}
	if f.Changed("alpha") {
		cfg.Alpha = bf.alpha
	}
	if f.Changed("power") {
		cfg.Power = bf.power
	}
	if f.Changed("cutoff") {
		cfg.Cutoff = bf.cutoff
	}
	if f.Changed("k") {
		cfg.K = bf.k
	}
	if f.Changed("row-normalize") {
		cfg.RowNormalize = bf.rowNormalize
	}
	if f.Changed("spectral-normalize") {
		cfg.SpectralNormalize = bf.spectralNormalize
	}
	if f.Changed("max-iter") {
		cfg.MaxIter = bf.maxIter
	}
	if f.Changed("workers") {
		cfg.Workers = bf.workers
	}

	return cfg, cfg.Validate()
}

// runBuild loads the input, builds the matrix and writes it.
func (c *CLI) runBuild(cfg weights.Config, in inputFlags, output, format string) error {
	if format != formatDense && format != formatTriplets {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDense, formatTriplets)
	}
	prog := newProgress(c.Logger)
	src, err := in.source()
	if err != nil {
		return err
	}
	c.Logger.Debug("input loaded", "source", fmt.Sprintf("%T", src))

	cfg.Logger = c.Logger
	w, err := weights.Build(src, cfg)
	if err != nil {
		return err
	}

	if output == "" {
		err = writeWeights(c.out, w, format)
	} else {
		err = writeWeightsFile(output, w, format)
	}
	if err != nil {
		return fmt.Errorf("write weights: %w", err)
	}
	prog.done("done", "out", outputName(output))

	return nil
}

// writeWeightsFile writes w to path; a failed Close is reported like a
// failed write.
func writeWeightsFile(path string, w *matrix.Sparse, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return writeWeights(f, w, format)
}

func outputName(path string) string {
	if path == "" {
		return "stdout"
	}

	return path
}
