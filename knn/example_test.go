package knn_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/spweights/distance"
	"github.com/katalvlaran/spweights/knn"
)

// ExampleFromCoordinates selects the two nearest neighbours of points at
// x = 0, 1, 3 and 7.
func ExampleFromCoordinates() {
	pts := []orb.Point{{0, 0}, {1, 0}, {3, 0}, {7, 0}}

	w, err := knn.FromCoordinates(pts, 2, distance.MetricEuclidean)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < w.Rows(); i++ {
		cols, _ := w.Row(i)
		fmt.Println(i, cols)
	}
	// Output:
	// 0 [1 2]
	// 1 [0 2]
	// 2 [0 1]
	// 3 [1 2]
}
