package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/spweights/bfs"
	"github.com/katalvlaran/spweights/matrix"
)

// ExampleBFS demonstrates BFS layering on a 3×3 rook lattice (9 cells,
// numbered row by row). Cells come out in non-decreasing Manhattan distance.
func ExampleBFS() {
	const side = 3
	b, _ := matrix.NewSparseBuilder(side*side, side*side)
	for i := 0; i < side*side; i++ {
		r, c := i/side, i%side
		// neighbours in ascending index: up, left, right, down
		if r > 0 {
			_ = b.Append(i, i-side, 1)
		}
		if c > 0 {
			_ = b.Append(i, i-1, 1)
		}
		if c+1 < side {
			_ = b.Append(i, i+1, 1)
		}
		if r+1 < side {
			_ = b.Append(i, i+side, 1)
		}
	}

	res, err := bfs.BFS(b.Build(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}
