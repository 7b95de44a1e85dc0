package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spweights/contiguity"
	"github.com/katalvlaran/spweights/geometry"
)

// componentsCommand creates the components command, which lists the
// connected components of first-order polygon contiguity.
func (c *CLI) componentsCommand() *cobra.Command {
	var (
		path string
		rule string
	)
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List connected components of polygon contiguity",
		Long: `List the connected components of the first-order contiguity graph, one
component per line as space-separated unit indices. Isolated units appear as
single-unit components; units in different components are never neighbours
at any contiguity order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := geometry.ParseRule(rule)
			if err != nil {
				return err
			}
			return c.runComponents(path, r)
		},
	}
	cmd.Flags().StringVar(&path, "geojson", "", "GeoJSON FeatureCollection of polygons (required)")
	cmd.Flags().StringVar(&rule, "rule", geometry.Queen.String(), "contiguity rule: queen, rook")
	_ = cmd.MarkFlagRequired("geojson")

	return cmd
}

func (c *CLI) runComponents(path string, rule geometry.Rule) error {
	geoms, err := readGeoJSON(path)
	if err != nil {
		return err
	}
	adj, err := geometry.Adjacency(geoms, geometry.WithRule(rule))
	if err != nil {
		return err
	}
	comps, err := contiguity.Components(adj)
	if err != nil {
		return err
	}
	c.Logger.Info("components", "units", adj.Rows(), "count", len(comps))

	for _, comp := range comps {
		ids := make([]string, len(comp))
		for k, v := range comp {
			ids[k] = strconv.Itoa(v)
		}
		if _, err = fmt.Fprintln(c.out, strings.Join(ids, " ")); err != nil {
			return err
		}
	}

	return nil
}
