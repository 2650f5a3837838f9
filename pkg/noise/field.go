package noise

import (
	"math"

	"lterrain/pkg/core"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinN      = 3
	pinkOctaves  = 6
	saltSpread   = 4096.0
	latticeNudge = 0.3183098861837907 // keeps gradient noise off integer lattice zeros
)

// Field evaluates every noise variant for one seed. It holds no mutable
// state after construction, so a single Field may be shared by any number
// of goroutines.
type Field struct {
	seed    int64
	perlin  *perlin.Perlin
	simplex opensimplex.Noise
}

// NewField builds the generators for the given seed.
func NewField(seed int64) *Field {
	return &Field{
		seed:    seed,
		perlin:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed),
		simplex: opensimplex.New(seed),
	}
}

// Seed returns the seed the field was built with.
func (f *Field) Seed() int64 { return f.seed }

// Sample returns the noise value of the given kind at (x, y) sampled at
// freq, in [-1, 1]. salt decorrelates layers that share a kind: every
// distinct salt sees a different region of the field.
func (f *Field) Sample(kind Kind, x, y, freq float64, salt int64) float64 {
	ox, oy := f.offset(salt)
	x = x*freq + ox
	y = y*freq + oy
	var v float64
	switch kind {
	case White:
		v = f.white(x, y, salt)
	case Pink:
		v = f.pink(x, y)
	case Blue:
		v = f.blue(x, y, salt)
	case Perlin:
		v = f.perlin.Noise2D(x+latticeNudge, y+latticeNudge)
	}
	return clampUnit(v)
}

func (f *Field) offset(salt int64) (float64, float64) {
	if salt == 0 {
		return 0, 0
	}
	h := core.Hash2(salt, 0x5A17, f.seed)
	return core.Unit(h) * saltSpread, core.Unit(core.Hash2(salt, 0x5A18, f.seed)) * saltSpread
}

func (f *Field) lattice(ix, iy int64, salt int64) float64 {
	return core.Signed(core.Hash3(ix, iy, salt, f.seed))
}

func (f *Field) white(x, y float64, salt int64) float64 {
	return f.lattice(int64(math.Floor(x)), int64(math.Floor(y)), salt)
}

// blue is a 3x3 high-pass over the white lattice: the cell value minus the
// mean of its Moore neighbours, rescaled back into [-1, 1].
func (f *Field) blue(x, y float64, salt int64) float64 {
	ix := int64(math.Floor(x))
	iy := int64(math.Floor(y))
	sum := 0.0
	for dy := int64(-1); dy <= 1; dy++ {
		for dx := int64(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			sum += f.lattice(ix+dx, iy+dy, salt)
		}
	}
	return (f.lattice(ix, iy, salt) - sum/8) / 2
}

// pink layers simplex octaves whose amplitude falls by 1/sqrt(2) per
// doubling of frequency, i.e. power proportional to 1/f.
func (f *Field) pink(x, y float64) float64 {
	amplitude := 1.0
	frequency := 1.0
	sum := 0.0
	norm := 0.0
	for range pinkOctaves {
		sum += f.simplex.Eval2(x*frequency, y*frequency) * amplitude
		norm += amplitude
		amplitude *= math.Sqrt2 / 2
		frequency *= 2
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
