package lsystem

import (
	"fmt"
	"strings"

	"lterrain/internal/core"
)

// Dims is the side length of every rule replacement; each expansion step
// multiplies the grid side by Dims.
const Dims = 5

// Grid is a square array of symbol codes at one level of detail. Grids are
// immutable once built: expansion always produces a new Grid.
type Grid struct {
	cells *core.ByteGrid
}

// NewGrid returns a side×side grid filled with fill.
func NewGrid(side int, fill Code) *Grid {
	cells := core.NewByteGrid(side, side)
	cells.Fill(uint8(fill))
	return &Grid{cells: cells}
}

// GridFromCodes builds a grid from row-major codes.
func GridFromCodes(side int, codes []Code) (*Grid, error) {
	if side <= 0 || len(codes) != side*side {
		return nil, fmt.Errorf("grid from %d codes with side %d: %w", len(codes), side, ErrGridSize)
	}
	cells := core.NewByteGrid(side, side)
	raw := cells.Cells()
	for i, c := range codes {
		raw[i] = uint8(c)
	}
	return &Grid{cells: cells}, nil
}

// ParseGrid builds a grid from textual rows, one byte per cell. '*' stands
// for the wildcard. All rows must have the same length as the row count.
func ParseGrid(rows ...string) (*Grid, error) {
	side := len(rows)
	if side == 0 {
		return nil, fmt.Errorf("parse grid: %w", ErrGridSize)
	}
	codes := make([]Code, 0, side*side)
	for y, row := range rows {
		if len(row) != side {
			return nil, fmt.Errorf("parse grid row %d has %d cells, want %d: %w", y, len(row), side, ErrGridSize)
		}
		for i := 0; i < len(row); i++ {
			c := Code(row[i])
			if row[i] == wildcardChar {
				c = MatchAny
			}
			codes = append(codes, c)
		}
	}
	return GridFromCodes(side, codes)
}

// MustParseGrid is ParseGrid for literals known to be valid.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// Side returns the grid side length.
func (g *Grid) Side() int { return g.cells.W }

// At returns the code at (x, y). Callers must stay in bounds.
func (g *Grid) At(x, y int) Code { return Code(g.cells.At(x, y)) }

// InBounds reports whether (x, y) addresses a cell.
func (g *Grid) InBounds(x, y int) bool { return g.cells.InBounds(x, y) }

// Clamp pins (x, y) to the nearest cell.
func (g *Grid) Clamp(x, y int) (int, int) { return g.cells.Clamp(x, y) }

// Codes returns a row-major copy of the cells.
func (g *Grid) Codes() []Code {
	raw := g.cells.Cells()
	out := make([]Code, len(raw))
	for i, v := range raw {
		out[i] = Code(v)
	}
	return out
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Code) int {
	n := 0
	for _, v := range g.cells.Cells() {
		if Code(v) == c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same side and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.Side() != o.Side() {
		return false
	}
	a, b := g.cells.Cells(), o.cells.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	side := g.Side()
	for y := 0; y < side; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < side; x++ {
			b.WriteString(g.At(x, y).String())
		}
	}
	return b.String()
}
