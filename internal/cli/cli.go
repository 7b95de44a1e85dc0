// Package cli implements the spweights command-line interface.
//
// The CLI reads polygons (GeoJSON), a distance matrix (CSV) or point
// coordinates (CSV), builds a weights matrix through package weights and
// writes it as a dense CSV matrix or as i,j,w triplets. Parameters come from
// an optional TOML file and from flags, flags taking precedence.
//
// All commands support --verbose (-v) for debug-level logging with
// github.com/charmbracelet/log.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI that logs to logw at level and writes results to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(logw, level), out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "spweights",
		Short: "Build spatial weights matrices",
		Long: `spweights builds spatial weights matrices from polygons, distance matrices
or coordinates: contiguity of order m, shared boundary length, distance-decay
kernels and k nearest neighbours, with optional row or spectral normalization.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.componentsCommand())

	return root
}
