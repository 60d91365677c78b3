package rule

import (
	"fmt"

	"eca/internal/core"
)

// Neighbourhood bit weights. The left neighbour is the least significant
// bit, so the packed code reads right-to-left relative to the row.
const (
	WeightLeft   = 1
	WeightCenter = 2
	WeightRight  = 4
)

// Table maps a packed 3-bit neighbourhood code to the next cell state.
type Table [8]bool

// New decodes a Wolfram code into a transition table. Output bit i of the
// code governs the neighbourhood whose canonical (left-to-right) reading is
// i, which lands at packed code reverse3(i).
func New(code int) (Table, error) {
	var t Table
	if code < 0 || code > 255 {
		return t, fmt.Errorf("rule %d outside [0, 255]: %w", code, core.ErrInvalidArgument)
	}
	for i := 0; i < 8; i++ {
		t[reverse3(i)] = (code>>i)&1 == 1
	}
	return t, nil
}

// Next returns the successor state for the (left, center, right) triplet.
func (t Table) Next(left, center, right bool) bool {
	code := 0
	if left {
		code |= WeightLeft
	}
	if center {
		code |= WeightCenter
	}
	if right {
		code |= WeightRight
	}
	return t[code]
}

// Quiescent reports whether an all-zero neighbourhood stays zero, so an
// infinite empty background is stable under the rule.
func (t Table) Quiescent() bool { return !t[0] }

// reverse3 reverses a 3-bit pattern: bits 0 and 2 swap, bit 1 is fixed.
func reverse3(i int) int {
	return (i & 2) | ((i >> 2) & 1) | ((i & 1) << 2)
}
