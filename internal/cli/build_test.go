// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// stripFC is three unit squares in a row plus one detached square.
const stripFC = `{"type":"FeatureCollection","features":[
{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[1,0],[2,0],[2,1],[1,1],[1,0]]]}},
{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[2,0],[3,0],[3,1],[2,1],[2,0]]]}},
{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[9,9],[10,9],[10,10],[9,10],[9,9]]]}}
]}`

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()

	return out.String(), logs.String(), err
}

func TestBuildContiguity(t *testing.T) {
	path := writeFile(t, "strip.geojson", stripFC)

	out, logs, err := execute(t, "build", "--geojson", path, "--order", "2")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "0,0,1,0\n0,0,0,0\n1,0,0,0\n0,0,0,0\n"
	if out != want {
		t.Errorf("order 2 output:\n%s\nwant:\n%s", out, want)
	}
	if !strings.Contains(logs, "weights built") {
		t.Errorf("missing build summary in logs: %q", logs)
	}
}

func TestBuildConfigFileAndOverride(t *testing.T) {
	dist := writeFile(t, "d.csv", "0,1,4\n1,0,2\n4,2,0\n")
	cfg := writeFile(t, "w.toml", "scheme = \"distance\"\nkernel = \"inverse\"\ncutoff = 3.0\n")
	outPath := filepath.Join(t.TempDir(), "w.csv")

	_, _, err := execute(t, "build", "--distances", dist, "-c", cfg, "--format", "triplets", "-o", outPath)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	want := "i,j,w\n0,1,1\n1,0,1\n1,2,0.5\n2,1,0.5\n"
	if string(got) != want {
		t.Errorf("triplets = %q, want %q", got, want)
	}

	// The flag overrides the file.
	out, _, err := execute(t, "build", "--distances", dist, "-c", cfg, "--scheme", "knn", "--k", "1")
	if err != nil {
		t.Fatalf("build knn: %v", err)
	}
	if want := "0,1,0\n1,0,0\n0,1,0\n"; out != want {
		t.Errorf("knn output = %q, want %q", out, want)
	}
}

func TestBuildErrors(t *testing.T) {
	dist := writeFile(t, "d.csv", "0,1\n1,0\n")
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"build"}},
		{"two inputs", []string{"build", "--distances", dist, "--coords", dist}},
		{"conflicting modes", []string{"build", "--distances", dist, "-s", "knn", "--row-normalize", "--spectral-normalize"}},
		{"contiguity from distances", []string{"build", "--distances", dist}},
		{"bad format", []string{"build", "--distances", dist, "-s", "knn", "--format", "xml"}},
		{"bad kernel", []string{"build", "--distances", dist, "--kernel", "gaussian"}},
		{"missing file", []string{"build", "--coords", filepath.Join(t.TempDir(), "none.csv"), "-s", "knn"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := execute(t, tt.args...); err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestComponentsCommand(t *testing.T) {
	path := writeFile(t, "strip.geojson", stripFC)

	out, logs, err := execute(t, "components", "--geojson", path)
	if err != nil {
		t.Fatalf("components: %v", err)
	}
	if want := "0 1 2\n3\n"; out != want {
		t.Errorf("components = %q, want %q", out, want)
	}
	if !strings.Contains(logs, "count=2") {
		t.Errorf("logs = %q", logs)
	}

	if _, _, err := execute(t, "components"); err == nil {
		t.Error("expected error without --geojson")
	}
}
