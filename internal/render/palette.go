package render

import (
	"image/color"
	"math"

	"lterrain/pkg/lsystem"
)

// symbolColors is assigned to palette symbols in palette order.
var symbolColors = []color.RGBA{
	{R: 70, G: 160, B: 80, A: 255},
	{R: 180, G: 180, B: 200, A: 255},
	{R: 64, G: 120, B: 200, A: 255},
	{R: 214, G: 196, B: 140, A: 255},
	{R: 40, G: 100, B: 55, A: 255},
	{R: 130, G: 130, B: 130, A: 255},
	{R: 70, G: 52, B: 32, A: 255},
	{R: 240, G: 235, B: 215, A: 255},
	{R: 255, G: 90, B: 40, A: 255},
	{R: 60, G: 125, B: 60, A: 255},
}

// unknownColor marks codes that are not in the palette.
var unknownColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// SymbolPalette returns a 256-entry lookup indexed by symbol code.
func SymbolPalette(p *lsystem.Palette) []color.RGBA {
	out := make([]color.RGBA, 256)
	for i := range out {
		out[i] = unknownColor
	}
	out[lsystem.MatchAny] = color.RGBA{A: 255}
	for i, s := range p.Symbols() {
		out[s.Code] = symbolColors[i%len(symbolColors)]
	}
	return out
}

// HeightColor maps a normalized height to a colour ramp running from deep
// water through lowland green to snow.
func HeightColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 255}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 255}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 255}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 255}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			local := (t - prev.t) / (curr.t - prev.t)
			return lerpRGBA(prev.col, curr.col, local)
		}
	}
	return stops[len(stops)-1].col
}

// Normalize maps v from [lo, hi] into [0, 1]. A flat range maps to 0.5.
func Normalize(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0.5
	}
	return clamp01((v - lo) / (hi - lo))
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
