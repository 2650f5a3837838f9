package render

import "image/color"

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillHeightRGBA shades heights with HeightColor after normalizing them to
// [lo, hi]. alpha scales the ramp's opacity for overlay use.
func FillHeightRGBA(buf []byte, heights []float64, lo, hi float64, alpha uint8) {
	for i, h := range heights {
		col := HeightColor(Normalize(h, lo, hi))
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = alpha
	}
}

// FillWeightRGBA tints a weight buffer: weight 0 is transparent, weight 1
// is the tint at the given alpha.
func FillWeightRGBA(buf []byte, weights []float64, tint color.RGBA, alpha uint8) {
	for i, w := range weights {
		w = clamp01(w)
		base := i * 4
		buf[base+0] = tint.R
		buf[base+1] = tint.G
		buf[base+2] = tint.B
		buf[base+3] = uint8(float64(alpha)*w + 0.5)
	}
}
