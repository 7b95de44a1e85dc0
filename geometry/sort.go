package geometry

import "sort"

// sortPaired sorts cols ascending and permutes vals alongside.
func sortPaired(cols []int, vals []float64) {
	sort.Sort(pairedSlice{cols, vals})
}

type pairedSlice struct {
	cols []int
	vals []float64
}

func (p pairedSlice) Len() int           { return len(p.cols) }
func (p pairedSlice) Less(a, b int) bool { return p.cols[a] < p.cols[b] }
func (p pairedSlice) Swap(a, b int) {
	p.cols[a], p.cols[b] = p.cols[b], p.cols[a]
	p.vals[a], p.vals[b] = p.vals[b], p.vals[a]
}
