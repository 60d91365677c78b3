package core

import "strings"

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// BitGrid stores a 2D grid of boolean cell values in row-major order.
type BitGrid struct {
	W, H int
	data []bool
}

// NewBitGrid allocates a grid with the given dimensions.
func NewBitGrid(w, h int) *BitGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BitGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice. Callers must treat it as read-only once
// the grid has been published.
func (g *BitGrid) Cells() []bool { return g.data }

// Size returns the grid dimensions.
func (g *BitGrid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for coordinates (x, y).
func (g *BitGrid) Index(x, y int) int { return y*g.W + x }

// At reports the cell value at (x, y).
func (g *BitGrid) At(x, y int) bool { return g.data[y*g.W+x] }

// Set writes the cell value at (x, y).
func (g *BitGrid) Set(x, y int, v bool) { g.data[y*g.W+x] = v }

// Row returns the backing sub-slice for row y.
func (g *BitGrid) Row(y int) []bool {
	return g.data[y*g.W : (y+1)*g.W]
}

// Rows returns the grid as ordered row slices sharing the backing storage.
func (g *BitGrid) Rows() [][]bool {
	rows := make([][]bool, g.H)
	for y := 0; y < g.H; y++ {
		rows[y] = g.Row(y)
	}
	return rows
}

// Bools returns a fresh row-major copy of the cell values.
func (g *BitGrid) Bools() []bool {
	out := make([]bool, len(g.data))
	copy(out, g.data)
	return out
}

// Render formats the grid as text, one row per line, mapping false to zero
// and true to one.
func (g *BitGrid) Render(zero, one rune) string {
	var sb strings.Builder
	sb.Grow(g.H * (g.W + 1))
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range g.Row(y) {
			if cell {
				sb.WriteRune(one)
			} else {
				sb.WriteRune(zero)
			}
		}
	}
	return sb.String()
}
