package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *ByteGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// Clamp pins the provided coordinates to the nearest valid cell.
func (g *ByteGrid) Clamp(x, y int) (int, int) {
	return clampInt(x, 0, g.W-1), clampInt(y, 0, g.H-1)
}

// At returns the value stored at (x, y). Callers must check bounds.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y). Callers must check bounds.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// FillRect sets the w×h block whose top-left corner is (x, y) to v.
func (g *ByteGrid) FillRect(x, y, w, h int, v uint8) {
	for yy := y; yy < y+h; yy++ {
		row := g.data[yy*g.W : yy*g.W+g.W]
		for xx := x; xx < x+w; xx++ {
			row[xx] = v
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *ByteGrid) Clone() *ByteGrid {
	out := &ByteGrid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(out.data, g.data)
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
