package geometry

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/tidwall/rtree"
)

// pair is an unordered unit pair with i < j.
type pair struct{ i, j int }

// candidatePairs returns every pair of units whose bounding boxes intersect
// (touching boxes included), sorted by (i, j). The boxes are loaded into an
// R-tree and each unit queries it with its own box.
func candidatePairs(bounds []orb.Bound) []pair {
	var tr rtree.RTreeG[int]
	for k, b := range bounds {
		tr.Insert([2]float64(b.Min), [2]float64(b.Max), k)
	}

	var pairs []pair
	for i, b := range bounds {
		tr.Search([2]float64(b.Min), [2]float64(b.Max), func(_, _ [2]float64, j int) bool {
			if j > i {
				pairs = append(pairs, pair{i, j})
			}
			return true
		})
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].i != pairs[b].i {
			return pairs[a].i < pairs[b].i
		}
		return pairs[a].j < pairs[b].j
	})

	return pairs
}
