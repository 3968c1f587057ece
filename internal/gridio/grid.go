// Package gridio presents a flat elevation array as a rectangular,
// 8-connected grid. It owns no algorithm: it only answers bounds and
// neighbor questions for the cells above it.
package gridio

// offsets8 lists the eight neighbor deltas in a fixed, deterministic
// order: N, NE, E, SE, S, SW, W, NW.
var offsets8 = [8][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Grid is a read-only view over a row-major elevation array of length
// Rows*Cols. It never mutates Elevations and is safe to share across
// consumers.
type Grid struct {
	Rows, Cols int
	Elevations []int32
}

// New builds a Grid over the given dimensions and flat elevations.
// Panics if len(elevations) != rows*cols: a shape mismatch here is a
// programming error in the caller, not a runtime condition this package
// recovers from.
func New(rows, cols int, elevations []int32) *Grid {
	if rows < 0 || cols < 0 {
		panic("gridio: negative dimension")
	}
	if len(elevations) != rows*cols {
		panic("gridio: elevations length does not match rows*cols")
	}

	return &Grid{Rows: rows, Cols: cols, Elevations: elevations}
}

// N returns the total cell count, Rows*Cols.
func (g *Grid) N() int {
	return g.Rows * g.Cols
}

// RowCol converts a flat index back to (row, col). Complexity: O(1).
func (g *Grid) RowCol(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// Index converts (row, col) to a flat index. Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// InBounds reports whether (row, col) lies within the grid. Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Elev returns the elevation at flat index i. Out-of-range i is a
// programming error, not a runtime condition: callers are expected to
// only ever pass indices in [0, N()).
func (g *Grid) Elev(i int) int32 {
	return g.Elevations[i]
}

// Neighbors appends the in-bounds 8-neighbor flat indices of i to dst and
// returns the extended slice. Passing a reusable dst with spare capacity
// avoids per-cell allocation in the hot sweep loop.
// Complexity: O(1), at most 8 appends.
func (g *Grid) Neighbors(i int, dst []int) []int {
	row, col := g.RowCol(i)
	for _, d := range offsets8 {
		nr, nc := row+d[0], col+d[1]
		if g.InBounds(nr, nc) {
			dst = append(dst, g.Index(nr, nc))
		}
	}

	return dst
}
