package contiguity

import (
	"fmt"

	"github.com/katalvlaran/spweights/matrix"
)

// Components finds the connected components of the contiguity graph adj,
// treating every stored entry as an undirected edge. Components are listed
// by their smallest unit; units within a component appear in BFS order.
// Isolated units form singleton components.
//
// Time:   O(N + nnz).
// Memory: O(N + nnz) for the transpose and visited flags.
func Components(adj *matrix.Sparse) ([][]int, error) {
	if err := matrix.ValidateSquare(adj); err != nil {
		return nil, fmt.Errorf("contiguity.Components: %w", err)
	}
	n := adj.Rows()
	back := adj.Transpose()
	seen := make([]bool, n)
	var comps [][]int

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		visit := func(j int, _ float64) bool {
			if !seen[j] {
				seen[j] = true
				queue = append(queue, j)
			}
			return true
		}
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			adj.DoRow(u, visit)
			back.DoRow(u, visit)
		}
		comps = append(comps, queue)
	}

	return comps, nil
}
