package automaton

import (
	"fmt"

	"eca/internal/core"
	"eca/internal/rule"
)

// Automaton holds the complete bounded evolution history of an elementary
// cellular automaton started from a single active cell on an empty row.
type Automaton struct {
	rows  int
	cols  int
	code  int
	table rule.Table
	grid  *core.BitGrid
}

// New computes the full history for the given generation count and Wolfram
// code. The grid spans rows generations by 2*rows-1 columns, generation 0
// being a single active cell at the centre column. The grid is immutable
// once New returns.
func New(rows, code int) (*Automaton, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("rows %d must be positive: %w", rows, core.ErrInvalidArgument)
	}
	t, err := rule.New(code)
	if err != nil {
		return nil, err
	}
	cols := 2*rows - 1
	a := &Automaton{
		rows:  rows,
		cols:  cols,
		code:  code,
		table: t,
		grid:  core.NewBitGrid(cols, rows),
	}
	if t.Quiescent() {
		a.evolveQuiescent()
	} else {
		a.evolveWide()
	}
	return a, nil
}

// evolveQuiescent generates the history of a rule whose empty background is
// stable. After i generations only columns within distance i of the seed
// can be active, so a buffer of the final width suffices and cells outside
// the window keep their zeroed value.
func (a *Automaton) evolveQuiescent() {
	cur := a.grid.Row(0)
	cur[a.rows-1] = true
	for i := 1; i < a.rows; i++ {
		next := a.grid.Row(i)
		lo := a.rows - i - 1
		if lo < 1 {
			lo = 1
		}
		hi := a.rows + i
		if hi > a.cols-1 {
			hi = a.cols - 1
		}
		for j := lo; j < hi; j++ {
			next[j] = a.table.Next(cur[j-1], cur[j], cur[j+1])
		}
		if i == a.rows-1 {
			// The outer neighbour of each extreme column lies beyond the
			// buffer and is still false at this depth, so the packed code
			// gets a zero on the missing side.
			next[0] = a.table.Next(false, cur[0], cur[1])
			next[a.cols-1] = a.table.Next(cur[a.cols-2], cur[a.cols-1], false)
		}
		cur = next
	}
}

// evolveWide generates the history of a rule that flips an empty
// background, where no column is ever guaranteed quiescent. A cell at
// generation i depends only on generation-0 cells within distance i of its
// column, so a buffer wide enough to cover every output cell's dependency
// cone is stepped in full. Each step loses one cell of certain validity
// from each end (the outermost cells lacked a known outer neighbour) and
// the centred output window is cut from what remains.
func (a *Automaton) evolveWide() {
	width := 4*a.rows - 3
	buf := make([]bool, width)
	buf[2*a.rows-2] = true
	copy(a.grid.Row(0), buf[a.rows-1:a.rows-1+a.cols])
	for i := 1; i < a.rows; i++ {
		next := make([]bool, width-2*i)
		for j := range next {
			next[j] = a.table.Next(buf[j], buf[j+1], buf[j+2])
		}
		offset := a.rows - 1 - i
		copy(a.grid.Row(i), next[offset:offset+a.cols])
		buf = next
	}
}

// Generations returns the number of rows in the history grid.
func (a *Automaton) Generations() int { return a.rows }

// Columns returns the width of the history grid.
func (a *Automaton) Columns() int { return a.cols }

// Rule returns the Wolfram code the automaton was built from.
func (a *Automaton) Rule() int { return a.code }

// Grid exposes the history grid. Callers must not modify it.
func (a *Automaton) Grid() *core.BitGrid { return a.grid }

// Render formats the history with the default '0' and '1' cell symbols.
func (a *Automaton) Render() string { return a.grid.Render('0', '1') }

// RenderWith formats the history using the provided cell symbols.
func (a *Automaton) RenderWith(zero, one rune) string { return a.grid.Render(zero, one) }

// Bools returns a dense row-major copy of the history.
func (a *Automaton) Bools() []bool { return a.grid.Bools() }
