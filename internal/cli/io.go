// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/katalvlaran/spweights/matrix"
)

// readGeoJSON loads the geometries of a FeatureCollection in feature order.
func readGeoJSON(path string) ([]orb.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	geoms := make([]orb.Geometry, len(fc.Features))
	for i, f := range fc.Features {
		geoms[i] = f.Geometry
	}

	return geoms, nil
}

// readFloatRows parses a CSV file of numbers. Lines starting with '#' are
// comments. A first record with no numeric field is a header and is skipped;
// any other unparsable field is an error.
func readFloatRows(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.Comment = '#'
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]float64
	for first := true; ; first = false {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if first && isHeader(rec) {
			continue
		}
		row, err := parseFloats(rec)
		if err != nil {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%s: line %d: %w", path, line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// isHeader reports whether no field of rec parses as a number.
func isHeader(rec []string) bool {
	for _, field := range rec {
		if _, err := strconv.ParseFloat(strings.TrimSpace(field), 64); err == nil {
			return false
		}
	}

	return true
}

func parseFloats(rec []string) ([]float64, error) {
	row := make([]float64, len(rec))
	for k, field := range rec {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		row[k] = v
	}

	return row, nil
}

// readDistances loads a square CSV distance matrix.
func readDistances(path string) (*matrix.Dense, error) {
	rows, err := readFloatRows(path)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(rows)
}

// readPoints loads "x,y" (or "lon,lat") rows.
func readPoints(path string) ([]orb.Point, error) {
	rows, err := readFloatRows(path)
	if err != nil {
		return nil, err
	}
	pts := make([]orb.Point, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%s: point %d has %d fields, want 2: %w", path, i, len(row), matrix.ErrInvalidInputShape)
		}
		pts[i] = orb.Point{row[0], row[1]}
	}

	return pts, nil
}

// Output formats.
const (
	formatDense    = "dense"
	formatTriplets = "triplets"
)

// writeWeights writes w as a dense CSV matrix or as i,j,w triplets of the
// stored entries.
func writeWeights(w io.Writer, s *matrix.Sparse, format string) error {
	cw := csv.NewWriter(w)
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	switch format {
	case formatTriplets:
		if err := cw.Write([]string{"i", "j", "w"}); err != nil {
			return err
		}
		var err error
		s.Do(func(i, j int, v float64) bool {
			err = cw.Write([]string{strconv.Itoa(i), strconv.Itoa(j), ff(v)})
			return err == nil
		})
		if err != nil {
			return err
		}
	case formatDense:
		rec := make([]string, s.Cols())
		for i := 0; i < s.Rows(); i++ {
			for j := range rec {
				rec[j] = "0"
			}
			s.DoRow(i, func(j int, v float64) bool {
				rec[j] = ff(v)
				return true
			})
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDense, formatTriplets)
	}
	cw.Flush()

	return cw.Error()
}
