// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/spweights/matrix"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadFloatRows(t *testing.T) {
	path := writeFile(t, "d.csv", "a,b,c\n# comment\n0, 1, 2\n1,0,3\n2,3,0\n")
	rows, err := readFloatRows(path)
	if err != nil {
		t.Fatalf("readFloatRows: %v", err)
	}
	if len(rows) != 3 || rows[2][1] != 3 {
		t.Errorf("rows = %v", rows)
	}

	bad := writeFile(t, "bad.csv", "0,1\n1,x\n")
	if _, err := readFloatRows(bad); err == nil {
		t.Error("expected parse error on line 2")
	}
}

func TestReadFloatRowsTypoInFirstRow(t *testing.T) {
	// A mistyped first data row must fail instead of vanishing as a header.
	for _, content := range []string{"1.5,2o\n3,4\n", "# units\n1,x\n3,4\n"} {
		if rows, err := readFloatRows(writeFile(t, "typo.csv", content)); err == nil {
			t.Errorf("%q: want error, got rows %v", content, rows)
		}
	}

	rows, err := readFloatRows(writeFile(t, "hdr.csv", "lon, lat\n1,2\n"))
	if err != nil {
		t.Fatalf("readFloatRows: %v", err)
	}
	if len(rows) != 1 || rows[0][0] != 1 {
		t.Errorf("rows = %v", rows)
	}
}

func TestReadDistancesAndPoints(t *testing.T) {
	d, err := readDistances(writeFile(t, "d.csv", "0,5\n5,0\n"))
	if err != nil {
		t.Fatalf("readDistances: %v", err)
	}
	if v, _ := d.At(0, 1); v != 5 {
		t.Errorf("d[0][1] = %v, want 5", v)
	}

	pts, err := readPoints(writeFile(t, "p.csv", "x,y\n1,2\n3,4\n"))
	if err != nil {
		t.Fatalf("readPoints: %v", err)
	}
	if len(pts) != 2 || pts[1][0] != 3 || pts[1][1] != 4 {
		t.Errorf("points = %v", pts)
	}

	if _, err := readPoints(writeFile(t, "p3.csv", "1,2,3\n")); err == nil {
		t.Error("expected error for three fields")
	}
}

func TestReadGeoJSON(t *testing.T) {
	const fc = `{"type":"FeatureCollection","features":[
{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
{"type":"Feature","properties":{},"geometry":{"type":"MultiPolygon","coordinates":[[[[1,0],[2,0],[2,1],[1,1],[1,0]]]]}}
]}`
	geoms, err := readGeoJSON(writeFile(t, "u.geojson", fc))
	if err != nil {
		t.Fatalf("readGeoJSON: %v", err)
	}
	if len(geoms) != 2 {
		t.Fatalf("got %d geometries, want 2", len(geoms))
	}
	if got := geoms[1].GeoJSONType(); got != "MultiPolygon" {
		t.Errorf("second geometry is %s", got)
	}

	if _, err := readGeoJSON(writeFile(t, "bad.geojson", "{")); err == nil {
		t.Error("expected decode error")
	}
}

func TestWriteWeights(t *testing.T) {
	b, err := matrix.NewSparseBuilder(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = b.Append(0, 1, 0.5)
	_ = b.Append(1, 0, 2)
	w := b.Build()

	tests := []struct {
		format string
		want   string
	}{
		{formatDense, "0,0.5\n2,0\n"},
		{formatTriplets, "i,j,w\n0,1,0.5\n1,0,2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeWeights(&buf, w, tt.format); err != nil {
				t.Fatalf("writeWeights: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}

	if err := writeWeights(&bytes.Buffer{}, w, "json"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteWeightsFile(t *testing.T) {
	b, err := matrix.NewSparseBuilder(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	_ = b.Append(0, 1, 1)
	w := b.Build()

	path := filepath.Join(t.TempDir(), "w.csv")
	if err := writeWeightsFile(path, w, formatTriplets); err != nil {
		t.Fatalf("writeWeightsFile: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "i,j,w\n0,1,1\n" {
		t.Errorf("file = %q", got)
	}

	missing := filepath.Join(t.TempDir(), "no", "such", "dir", "w.csv")
	if err := writeWeightsFile(missing, w, formatDense); err == nil {
		t.Error("expected error for missing directory")
	}
	if err := writeWeightsFile(path, w, "json"); err == nil {
		t.Error("expected error for unknown format")
	}
}
