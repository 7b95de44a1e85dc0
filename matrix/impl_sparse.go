// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (compressed sparse row) for weights matrices.
//
// Purpose:
//   - Hold N×N weights matrices whose rows carry a handful of neighbours.
//   - Immutable after Build: every transformation returns a new *Sparse.
//   - Zero entries are never stored, so NNZ is the neighbour count.
//
// Layout:
//   - rowPtr has length r+1; row i occupies colIdx[rowPtr[i]:rowPtr[i+1]].
//   - Columns within a row are strictly increasing (binary-searchable).
//
// Complexity quicksheet:
//   - At: O(log nnz(row)); Row/DoRow: O(nnz(row)); MulVec: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

const (
	ctxSparseAt     = "Sparse.At"
	ctxSparseAppend = "SparseBuilder.Append"
	ctxSparseRows   = "NewSparseFromRows"
	ctxSparseMap    = "Sparse.Map"
	ctxSparseMulVec = "Sparse.MulVec"
)

// Sparse is an immutable CSR matrix of float64 values.
type Sparse struct {
	r, c   int       // dimensions
	rowPtr []int     // len r+1, row offsets into colIdx/vals
	colIdx []int     // column index per stored entry
	vals   []float64 // value per stored entry (never 0)
}

var _ Reader = (*Sparse)(nil)

// SparseBuilder accumulates entries in row-major order and produces a Sparse.
// It is not safe for concurrent use; build rows in parallel with
// NewSparseFromRows instead.
type SparseBuilder struct {
	r, c    int
	rowPtr  []int
	colIdx  []int
	vals    []float64
	curRow  int // row currently being filled
	lastCol int // last column appended to curRow (-1 when none)
	built   bool
}

// NewSparseBuilder starts an rows×cols builder.
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
// Complexity: O(rows).
func NewSparseBuilder(rows, cols int) (*SparseBuilder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &SparseBuilder{
		r:       rows,
		c:       cols,
		rowPtr:  make([]int, rows+1),
		lastCol: -1,
	}, nil
}

// Append adds v at (i, j).
// MAIN DESCRIPTION:
//   - Entries must arrive row-major with strictly increasing columns inside a
//     row; rows may be skipped (they stay empty).
//
// Behavior highlights:
//   - v == 0 is accepted and not stored (keeps the "no stored zeros" invariant).
//
// Errors:
//   - ErrOutOfRange, ErrUnsortedEntry, ErrNaNInf.
//
// Complexity:
//   - Amortized O(1); skipping k rows costs O(k).
func (b *SparseBuilder) Append(i, j int, v float64) error {
	if i < 0 || i >= b.r || j < 0 || j >= b.c {
		return fmt.Errorf("%s(%d,%d): %w", ctxSparseAppend, i, j, ErrOutOfRange)
	}
	if b.built || i < b.curRow || (i == b.curRow && j <= b.lastCol) {
		return fmt.Errorf("%s(%d,%d): %w", ctxSparseAppend, i, j, ErrUnsortedEntry)
	}
	if isNonFinite(v) {
		return fmt.Errorf("%s(%d,%d): %w", ctxSparseAppend, i, j, ErrNaNInf)
	}
	// Close every row between curRow and i.
	for ; b.curRow < i; b.curRow++ {
		b.rowPtr[b.curRow+1] = len(b.colIdx)
		b.lastCol = -1
	}
	b.lastCol = j
	if v == 0 {
		return nil
	}
	b.colIdx = append(b.colIdx, j)
	b.vals = append(b.vals, v)

	return nil
}

// Build seals the builder and returns the matrix. Further Appends fail.
// Complexity: O(rows) to close trailing rows.
func (b *SparseBuilder) Build() *Sparse {
	for ; b.curRow < b.r; b.curRow++ {
		b.rowPtr[b.curRow+1] = len(b.colIdx)
	}
	b.built = true

	return &Sparse{r: b.r, c: b.c, rowPtr: b.rowPtr, colIdx: b.colIdx, vals: b.vals}
}

// NewSparseFromRows assembles a Sparse from per-row column/value slices.
// MAIN DESCRIPTION:
//   - The join point of row-parallel kernels: each worker fills rowCols[i]
//     and rowVals[i]; this constructor validates and concatenates them.
//
// Implementation:
//   - Stage 1: validate len(rowCols)==len(rowVals)==rows.
//   - Stage 2: append each row through a SparseBuilder (ordering and
//     finiteness checks, zero dropping).
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrOutOfRange,
//     ErrUnsortedEntry, ErrNaNInf.
//
// Complexity:
//   - Time O(rows + nnz), Space O(nnz).
func NewSparseFromRows(rows, cols int, rowCols [][]int, rowVals [][]float64) (*Sparse, error) {
	b, err := NewSparseBuilder(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(rowCols) != rows || len(rowVals) != rows {
		return nil, fmt.Errorf("%s: %w", ctxSparseRows, ErrDimensionMismatch)
	}
	var i, k int
	for i = 0; i < rows; i++ {
		if len(rowCols[i]) != len(rowVals[i]) {
			return nil, fmt.Errorf("%s: row %d: %w", ctxSparseRows, i, ErrDimensionMismatch)
		}
		for k = range rowCols[i] {
			if err = b.Append(i, rowCols[i][k], rowVals[i][k]); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}

// NewSparseFromDense copies the non-zero entries of any Reader.
// Errors: ErrNilMatrix, ErrNaNInf, and At errors of the source.
// Complexity: O(r*c).
func NewSparseFromDense(src Reader) (*Sparse, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, err
	}
	b, err := NewSparseBuilder(src.Rows(), src.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return nil, err
			}
			if err = b.Append(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(), nil
}

// Zeros returns an empty rows×cols Sparse.
// Errors: ErrInvalidDimensions.
func Zeros(rows, cols int) (*Sparse, error) {
	b, err := NewSparseBuilder(rows, cols)
	if err != nil {
		return nil, err
	}

	return b.Build(), nil
}

// Rows returns the row count.
func (s *Sparse) Rows() int { return s.r }

// Cols returns the column count.
func (s *Sparse) Cols() int { return s.c }

// Dim returns the order of a square matrix (Rows()); it lets *Sparse serve
// as an eigen.Operator.
func (s *Sparse) Dim() int { return s.r }

// NNZ returns the number of stored (non-zero) entries.
func (s *Sparse) NNZ() int { return len(s.vals) }

// At returns the entry at (i, j), 0 when not stored.
// Errors: ErrOutOfRange.
// Complexity: O(log nnz(row i)).
func (s *Sparse) At(i, j int) (float64, error) {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", ctxSparseAt, i, j, ErrOutOfRange)
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	k := lo + sort.SearchInts(s.colIdx[lo:hi], j)
	if k < hi && s.colIdx[k] == j {
		return s.vals[k], nil
	}

	return 0, nil
}

// RowNNZ returns the number of stored entries in row i (0 when out of range).
func (s *Sparse) RowNNZ(i int) int {
	if i < 0 || i >= s.r {
		return 0
	}

	return s.rowPtr[i+1] - s.rowPtr[i]
}

// Row returns copies of the column indices and values stored in row i.
// An out-of-range i yields two nil slices.
// Complexity: O(nnz(row i)).
func (s *Sparse) Row(i int) ([]int, []float64) {
	if i < 0 || i >= s.r {
		return nil, nil
	}
	lo, hi := s.rowPtr[i], s.rowPtr[i+1]
	cols := make([]int, hi-lo)
	vals := make([]float64, hi-lo)
	copy(cols, s.colIdx[lo:hi])
	copy(vals, s.vals[lo:hi])

	return cols, vals
}

// DoRow visits the stored entries of row i in increasing column order and
// stops when f returns false. No allocations.
func (s *Sparse) DoRow(i int, f func(j int, v float64) bool) {
	if i < 0 || i >= s.r {
		return
	}
	for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
		if !f(s.colIdx[k], s.vals[k]) {
			return
		}
	}
}

// Do visits every stored entry in row-major order; stops when f returns false.
// Complexity: O(nnz).
func (s *Sparse) Do(f func(i, j int, v float64) bool) {
	var i, k int
	for i = 0; i < s.r; i++ {
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			if !f(i, s.colIdx[k], s.vals[k]) {
				return
			}
		}
	}
}

// RowSum returns Σ_j w_ij for row i (0 when out of range or empty).
func (s *Sparse) RowSum(i int) float64 {
	if i < 0 || i >= s.r {
		return 0
	}

	return floats.Sum(s.vals[s.rowPtr[i]:s.rowPtr[i+1]])
}

// RowSums returns every row sum.
// Complexity: O(r + nnz).
func (s *Sparse) RowSums() []float64 {
	out := make([]float64, s.r)
	for i := range out {
		out[i] = s.RowSum(i)
	}

	return out
}

// MaxAbsRowSum returns max_i Σ_j |w_ij| (the infinity norm), an upper bound
// of the spectral radius.
func (s *Sparse) MaxAbsRowSum() float64 {
	var best, sum float64
	var i, k int
	for i = 0; i < s.r; i++ {
		sum = 0
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			sum += math.Abs(s.vals[k])
		}
		if sum > best {
			best = sum
		}
	}

	return best
}

// MulVec computes dst = S·x.
// MAIN DESCRIPTION:
//   - Sparse matrix-vector product, the only primitive iterative eigen
//     solvers need.
//
// Errors:
//   - ErrDimensionMismatch when len(x)!=Cols() or len(dst)!=Rows().
//
// Complexity:
//   - Time O(r + nnz), Space O(1).
//
// AI-Hints:
//   - dst and x must not alias; reuse buffers across iterations to avoid GC churn.
func (s *Sparse) MulVec(dst, x []float64) error {
	if len(x) != s.c || len(dst) != s.r {
		return fmt.Errorf("%s: %w", ctxSparseMulVec, ErrDimensionMismatch)
	}
	var (
		i, k int
		acc  float64
	)
	for i = 0; i < s.r; i++ {
		acc = 0
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			acc += s.vals[k] * x[s.colIdx[k]]
		}
		dst[i] = acc
	}

	return nil
}

// Map returns a new Sparse with every stored entry replaced by f(i,j,v).
// Results equal to 0 are dropped; non-finite results are rejected.
// Errors: ErrNaNInf.
// Complexity: O(r + nnz).
func (s *Sparse) Map(f func(i, j int, v float64) float64) (*Sparse, error) {
	out := &Sparse{
		r:      s.r,
		c:      s.c,
		rowPtr: make([]int, s.r+1),
		colIdx: make([]int, 0, len(s.colIdx)),
		vals:   make([]float64, 0, len(s.vals)),
	}
	var (
		i, k int
		nv   float64
	)
	for i = 0; i < s.r; i++ {
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			nv = f(i, s.colIdx[k], s.vals[k])
			if isNonFinite(nv) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxSparseMap, i, s.colIdx[k], ErrNaNInf)
			}
			if nv == 0 {
				continue
			}
			out.colIdx = append(out.colIdx, s.colIdx[k])
			out.vals = append(out.vals, nv)
		}
		out.rowPtr[i+1] = len(out.colIdx)
	}

	return out, nil
}

// Scale returns alpha·S.
// Errors: ErrNaNInf when alpha is not finite.
func (s *Sparse) Scale(alpha float64) (*Sparse, error) {
	if isNonFinite(alpha) {
		return nil, fmt.Errorf("Sparse.Scale: %w", ErrNaNInf)
	}

	return s.Map(func(_, _ int, v float64) float64 { return alpha * v })
}

// Pattern returns the binary structure of S (every stored entry becomes 1).
func (s *Sparse) Pattern() *Sparse {
	out, _ := s.Map(func(_, _ int, _ float64) float64 { return 1 }) // 1 is finite

	return out
}

// Transpose returns Sᵀ.
// Complexity: O(r + c + nnz).
func (s *Sparse) Transpose() *Sparse {
	out := &Sparse{
		r:      s.c,
		c:      s.r,
		rowPtr: make([]int, s.c+1),
		colIdx: make([]int, len(s.colIdx)),
		vals:   make([]float64, len(s.vals)),
	}
	// Count entries per column.
	for _, j := range s.colIdx {
		out.rowPtr[j+1]++
	}
	for j := 0; j < s.c; j++ {
		out.rowPtr[j+1] += out.rowPtr[j]
	}
	next := make([]int, s.c)
	copy(next, out.rowPtr[:s.c])
	// Rows are visited in increasing order, so columns of Sᵀ stay sorted.
	var i, k, pos int
	for i = 0; i < s.r; i++ {
		for k = s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
			pos = next[s.colIdx[k]]
			out.colIdx[pos] = i
			out.vals[pos] = s.vals[k]
			next[s.colIdx[k]]++
		}
	}

	return out
}

// IsSymmetric reports whether |s_ij - s_ji| <= tol for every pair.
// Complexity: O(nnz log d) where d is the densest row.
func (s *Sparse) IsSymmetric(tol float64) bool {
	if s.r != s.c {
		return false
	}
	symmetric := true
	s.Do(func(i, j int, v float64) bool {
		u, _ := s.At(j, i) // indices come from storage, always in range
		if math.Abs(u-v) > tol {
			symmetric = false
		}
		return symmetric
	})

	return symmetric
}

// HasZeroDiagonal reports whether no diagonal entry is stored.
func (s *Sparse) HasZeroDiagonal() bool {
	n := s.r
	if s.c < n {
		n = s.c
	}
	for i := 0; i < n; i++ {
		if v, _ := s.At(i, i); v != 0 {
			return false
		}
	}

	return true
}

// EqualApprox reports equal shapes and |a_ij - b_ij| <= tol everywhere.
// Complexity: O(nnz(a) + nnz(b)) with logarithmic lookups.
func (s *Sparse) EqualApprox(o *Sparse, tol float64) bool {
	if o == nil || s.r != o.r || s.c != o.c {
		return false
	}
	equal := true
	cmp := func(a, b *Sparse) {
		a.Do(func(i, j int, v float64) bool {
			u, _ := b.At(i, j)
			if math.Abs(u-v) > tol {
				equal = false
			}
			return equal
		})
	}
	cmp(s, o)
	if equal {
		cmp(o, s)
	}

	return equal
}

// ToDense materializes S into a Dense.
// Errors: ErrInvalidDimensions (never for a built Sparse).
// Complexity: O(r*c).
func (s *Sparse) ToDense() (*Dense, error) {
	d, err := NewDense(s.r, s.c)
	if err != nil {
		return nil, err
	}
	s.Do(func(i, j int, v float64) bool {
		d.data[i*d.c+j] = v
		return true
	})

	return d, nil
}

// String renders the stored entries as "(i,j)=v" lines for diagnostics.
func (s *Sparse) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sparse %dx%d nnz=%d\n", s.r, s.c, len(s.vals))
	s.Do(func(i, j int, v float64) bool {
		fmt.Fprintf(&b, "(%d,%d)=%g\n", i, j, v)
		return true
	})

	return b.String()
}
