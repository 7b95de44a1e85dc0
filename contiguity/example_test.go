package contiguity_test

import (
	"fmt"

	"github.com/katalvlaran/spweights/contiguity"
	"github.com/katalvlaran/spweights/matrix"
)

// ExampleOrders expands a square of four units (0–1, 0–2, 1–3, 2–3) to its
// second order: each unit reaches the opposite corner in exactly two steps.
func ExampleOrders() {
	b, _ := matrix.NewSparseBuilder(4, 4)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 0}, {1, 3}, {2, 0}, {2, 3}, {3, 1}, {3, 2}} {
		_ = b.Append(e[0], e[1], 1)
	}

	all, err := contiguity.Orders(b.Build(), 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for k, w := range all {
		for i := 0; i < w.Rows(); i++ {
			cols, _ := w.Row(i)
			fmt.Printf("order %d unit %d: %v\n", k+1, i, cols)
		}
	}
	// Output:
	// order 1 unit 0: [1 2]
	// order 1 unit 1: [0 3]
	// order 1 unit 2: [0 3]
	// order 1 unit 3: [1 2]
	// order 2 unit 0: [3]
	// order 2 unit 1: [2]
	// order 2 unit 2: [1]
	// order 2 unit 3: [0]
}
