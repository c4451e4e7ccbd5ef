// SPDX-License-Identifier: MIT
// Package sparsity: the Pattern value type and its combinators.
//
// Invariants maintained by every constructor and combinator:
//   - rows >= 0, cols >= 0;
//   - coords sorted row-major (row asc, then col asc), no duplicates;
//   - every coordinate lies inside [0,rows) x [0,cols).
// Violations of the public contract surface as sentinels from errors.go;
// internal helpers assume the invariants and never re-check them.

package sparsity

import (
	"fmt"
	"sort"
)

// Coord is a single structurally non-zero position.
type Coord struct {
	Row, Col int
}

// Pattern is an immutable structural sparsity pattern of a rows×cols shape.
// The zero value is not usable; construct via New, Dense or Empty.
type Pattern struct {
	rows, cols int
	coords     []Coord // sorted row-major, deduplicated
}

// coordLess orders coordinates row-major: by row, then by column.
func coordLess(a, b Coord) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}

	return a.Col < b.Col
}

// New builds a Pattern of the given shape from an arbitrary coordinate list.
// The input slice is copied, sorted row-major and deduplicated; the caller
// keeps ownership of its slice.
//
// Errors:
//   - ErrBadShape          (rows < 0 or cols < 0).
//   - ErrCoordOutOfRange   (any coordinate outside the shape).
//
// Complexity: O(n log n) for the sort, O(n) memory.
func New(rows, cols int, coords []Coord) (*Pattern, error) {
	// Validate shape extents.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	// Validate every coordinate before copying.
	for _, c := range coords {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, fmt.Errorf("New(%d,%d): coord (%d,%d): %w", rows, cols, c.Row, c.Col, ErrCoordOutOfRange)
		}
	}

	// Copy, sort row-major, deduplicate in place.
	cc := make([]Coord, len(coords))
	copy(cc, coords)
	sort.Slice(cc, func(i, j int) bool { return coordLess(cc[i], cc[j]) })
	cc = dedupe(cc)

	return &Pattern{rows: rows, cols: cols, coords: cc}, nil
}

// dedupe removes adjacent duplicates from a sorted coordinate slice.
func dedupe(cc []Coord) []Coord {
	if len(cc) < 2 {
		return cc
	}
	out := cc[:1]
	for _, c := range cc[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}

	return out
}

// Dense returns the fully populated pattern of the given shape.
// Complexity: O(rows*cols).
func Dense(rows, cols int) (*Pattern, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Dense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	cc := make([]Coord, 0, rows*cols)
	var i, j int // loop iterators (deterministic row-major order)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			cc = append(cc, Coord{Row: i, Col: j})
		}
	}

	return &Pattern{rows: rows, cols: cols, coords: cc}, nil
}

// Empty returns the all-zero pattern of the given shape.
func Empty(rows, cols int) (*Pattern, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Empty(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Pattern{rows: rows, cols: cols}, nil
}

// Rows returns the number of rows of the pattern's shape. Complexity: O(1).
func (p *Pattern) Rows() int { return p.rows }

// Cols returns the number of columns of the pattern's shape. Complexity: O(1).
func (p *Pattern) Cols() int { return p.cols }

// NNZ returns the number of structurally non-zero coordinates. Complexity: O(1).
func (p *Pattern) NNZ() int { return len(p.coords) }

// Has reports whether (row, col) is structurally non-zero.
// Coordinates outside the shape are simply absent (no error).
// Complexity: O(log nnz) via binary search over the sorted coords.
func (p *Pattern) Has(row, col int) bool {
	want := Coord{Row: row, Col: col}
	idx := sort.Search(len(p.coords), func(i int) bool {
		return !coordLess(p.coords[i], want)
	})

	return idx < len(p.coords) && p.coords[idx] == want
}

// Coords returns a copy of the coordinate list in row-major order.
// The pattern itself stays immutable; callers may mutate the copy freely.
// Complexity: O(nnz).
func (p *Pattern) Coords() []Coord {
	out := make([]Coord, len(p.coords))
	copy(out, p.coords)

	return out
}

// Equal reports whether both patterns have the same shape and the same
// coordinate set. Complexity: O(nnz).
func (p *Pattern) Equal(q *Pattern) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.rows != q.rows || p.cols != q.cols || len(p.coords) != len(q.coords) {
		return false
	}
	for i := range p.coords {
		if p.coords[i] != q.coords[i] {
			return false
		}
	}

	return true
}

// Transpose returns the pattern with shape and every coordinate flipped:
// (r,c) becomes (c,r). Complexity: O(nnz log nnz) for the re-sort.
func (p *Pattern) Transpose() *Pattern {
	cc := make([]Coord, len(p.coords))
	for i, c := range p.coords {
		cc[i] = Coord{Row: c.Col, Col: c.Row}
	}
	// Flipping breaks row-major order; restore the invariant.
	sort.Slice(cc, func(i, j int) bool { return coordLess(cc[i], cc[j]) })

	return &Pattern{rows: p.cols, cols: p.rows, coords: cc}
}

// ColRange returns the sub-pattern of columns [lo, hi), re-indexed from zero.
// The row extent is retained in full.
//
// Errors:
//   - ErrRangeInvalid (lo < 0, hi > Cols(), or lo > hi).
//
// Complexity: O(nnz).
func (p *Pattern) ColRange(lo, hi int) (*Pattern, error) {
	if lo < 0 || hi > p.cols || lo > hi {
		return nil, fmt.Errorf("ColRange(%d,%d) of %dx%d: %w", lo, hi, p.rows, p.cols, ErrRangeInvalid)
	}
	var cc []Coord
	for _, c := range p.coords {
		if c.Col >= lo && c.Col < hi {
			cc = append(cc, Coord{Row: c.Row, Col: c.Col - lo})
		}
	}
	// Row-major order is preserved under a uniform column shift.
	return &Pattern{rows: p.rows, cols: hi - lo, coords: cc}, nil
}

// RowRange returns the sub-pattern of rows [lo, hi), re-indexed from zero.
// The column extent is retained in full.
//
// Errors:
//   - ErrRangeInvalid (lo < 0, hi > Rows(), or lo > hi).
//
// Complexity: O(log nnz + k) where k is the size of the extracted band.
func (p *Pattern) RowRange(lo, hi int) (*Pattern, error) {
	if lo < 0 || hi > p.rows || lo > hi {
		return nil, fmt.Errorf("RowRange(%d,%d) of %dx%d: %w", lo, hi, p.rows, p.cols, ErrRangeInvalid)
	}
	// Row-major sorting makes the band a contiguous slice segment.
	start := sort.Search(len(p.coords), func(i int) bool { return p.coords[i].Row >= lo })
	end := sort.Search(len(p.coords), func(i int) bool { return p.coords[i].Row >= hi })

	cc := make([]Coord, 0, end-start)
	for _, c := range p.coords[start:end] {
		cc = append(cc, Coord{Row: c.Row - lo, Col: c.Col})
	}

	return &Pattern{rows: hi - lo, cols: p.cols, coords: cc}, nil
}

// ConcatCols places the patterns side by side, left to right. All inputs
// must share the row extent; the result's column extent is the sum of the
// inputs' and each input's coordinates are shifted by its cumulative column
// offset. ConcatCols() of no patterns is the 0x0 empty pattern.
//
// Errors:
//   - ErrNilPattern   (any nil input).
//   - ErrShapeMismatch (row extents differ).
//
// Complexity: O(total nnz log total nnz).
func ConcatCols(ps ...*Pattern) (*Pattern, error) {
	if len(ps) == 0 {
		return &Pattern{}, nil
	}
	if err := validateAligned(ps, true); err != nil {
		return nil, fmt.Errorf("ConcatCols: %w", err)
	}

	var (
		offset int     // cumulative column offset of the current block
		total  int     // total coordinate count, for one allocation
		cc     []Coord // merged coordinate list
	)
	for _, p := range ps {
		total += len(p.coords)
	}
	cc = make([]Coord, 0, total)
	cols := 0
	for _, p := range ps {
		for _, c := range p.coords {
			cc = append(cc, Coord{Row: c.Row, Col: c.Col + offset})
		}
		offset += p.cols
		cols += p.cols
	}
	// Blocks interleave by rows; restore row-major order.
	sort.Slice(cc, func(i, j int) bool { return coordLess(cc[i], cc[j]) })

	return &Pattern{rows: ps[0].rows, cols: cols, coords: cc}, nil
}

// ConcatRows stacks the patterns top to bottom. All inputs must share the
// column extent; each input's coordinates are shifted by its cumulative row
// offset. ConcatRows() of no patterns is the 0x0 empty pattern.
//
// Errors:
//   - ErrNilPattern    (any nil input).
//   - ErrShapeMismatch (column extents differ).
//
// Complexity: O(total nnz); stacked blocks are already row-major.
func ConcatRows(ps ...*Pattern) (*Pattern, error) {
	if len(ps) == 0 {
		return &Pattern{}, nil
	}
	if err := validateAligned(ps, false); err != nil {
		return nil, fmt.Errorf("ConcatRows: %w", err)
	}

	var total int
	for _, p := range ps {
		total += len(p.coords)
	}
	cc := make([]Coord, 0, total)
	var offset, rows int
	for _, p := range ps {
		for _, c := range p.coords {
			cc = append(cc, Coord{Row: c.Row + offset, Col: c.Col})
		}
		offset += p.rows
		rows += p.rows
	}

	return &Pattern{rows: rows, cols: ps[0].cols, coords: cc}, nil
}

// BlockDiag places the patterns along the diagonal of a larger shape; every
// off-block coordinate is structurally absent. BlockDiag() of no patterns is
// the 0x0 empty pattern.
//
// Errors:
//   - ErrNilPattern (any nil input).
//
// Complexity: O(total nnz); diagonal blocks are already row-major.
func BlockDiag(ps ...*Pattern) (*Pattern, error) {
	var total, rows, cols int
	for i, p := range ps {
		if p == nil {
			return nil, fmt.Errorf("BlockDiag: arg %d: %w", i, ErrNilPattern)
		}
		total += len(p.coords)
		rows += p.rows
		cols += p.cols
	}

	cc := make([]Coord, 0, total)
	var rOff, cOff int // cumulative block offsets
	for _, p := range ps {
		for _, c := range p.coords {
			cc = append(cc, Coord{Row: c.Row + rOff, Col: c.Col + cOff})
		}
		rOff += p.rows
		cOff += p.cols
	}

	return &Pattern{rows: rows, cols: cols, coords: cc}, nil
}

// MulPattern returns the structural pattern of the product a*b: coordinate
// (i,j) is present iff some k has (i,k) in a and (k,j) in b. This is exact
// in the boolean sense and therefore a conservative superset of the numeric
// product's pattern (numeric cancellation can only remove entries).
//
// Errors:
//   - ErrNilPattern    (either input nil).
//   - ErrShapeMismatch (a.Cols() != b.Rows()).
//
// Complexity: O(nnz(a) * avg row nnz of b) plus a final sort.
func MulPattern(a, b *Pattern) (*Pattern, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("MulPattern: %w", ErrNilPattern)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("MulPattern: %dx%d * %dx%d: %w", a.rows, a.cols, b.rows, b.cols, ErrShapeMismatch)
	}

	// Index b's coordinates by row: row k -> its column list (sorted).
	bRows := make([][]int, b.rows)
	for _, c := range b.coords {
		bRows[c.Row] = append(bRows[c.Row], c.Col)
	}

	// Mark every (i,j) reachable through some inner index k.
	seen := make(map[Coord]struct{})
	for _, c := range a.coords {
		for _, j := range bRows[c.Col] {
			seen[Coord{Row: c.Row, Col: j}] = struct{}{}
		}
	}

	cc := make([]Coord, 0, len(seen))
	for c := range seen {
		cc = append(cc, c)
	}
	// Map iteration is unordered; sort restores determinism.
	sort.Slice(cc, func(i, j int) bool { return coordLess(cc[i], cc[j]) })

	return &Pattern{rows: a.rows, cols: b.cols, coords: cc}, nil
}

// validateAligned checks all patterns non-nil and aligned on the shared axis:
// rows when byRows is true (horizontal concat), cols otherwise.
func validateAligned(ps []*Pattern, byRows bool) error {
	for i, p := range ps {
		if p == nil {
			return fmt.Errorf("arg %d: %w", i, ErrNilPattern)
		}
		if byRows && p.rows != ps[0].rows {
			return fmt.Errorf("arg %d: %d rows vs %d: %w", i, p.rows, ps[0].rows, ErrShapeMismatch)
		}
		if !byRows && p.cols != ps[0].cols {
			return fmt.Errorf("arg %d: %d cols vs %d: %w", i, p.cols, ps[0].cols, ErrShapeMismatch)
		}
	}

	return nil
}
