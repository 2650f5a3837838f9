package lsystem

import "math"

// CellAt maps a normalized terrain coordinate to a cell of g. Coordinates
// are scaled by the side length and floored; anything outside [0, 1),
// including the u = 1 and v = 1 edges, is clamped onto the border cells.
func CellAt(g *Grid, u, v float64) (x, y int) {
	side := float64(g.Side())
	return g.Clamp(floorIndex(u*side), floorIndex(v*side))
}

// SymbolAt returns the code of the cell under (u, v).
func SymbolAt(g *Grid, u, v float64) Code {
	x, y := CellAt(g, u, v)
	return g.At(x, y)
}

func floorIndex(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Floor(f))
}
