//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns one w×h image that is refilled from cell or field data
// each frame and drawn scaled onto the screen.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads symbol cells through palette and draws them.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, scale float64) {
	if len(cells) != gp.w*gp.h {
		return
	}
	FillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale)
}

// BlitHeights uploads a height field shaded between lo and hi.
func (gp *GridPainter) BlitHeights(dst *ebiten.Image, heights []float64, lo, hi float64, alpha uint8, scale float64) {
	if len(heights) != gp.w*gp.h {
		return
	}
	FillHeightRGBA(gp.buf, heights, lo, hi, alpha)
	gp.draw(dst, scale)
}

// BlitWeights uploads one texture weight layer as a tinted overlay.
func (gp *GridPainter) BlitWeights(dst *ebiten.Image, weights []float64, tint color.RGBA, alpha uint8, scale float64) {
	if len(weights) != gp.w*gp.h {
		return
	}
	FillWeightRGBA(gp.buf, weights, tint, alpha)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale float64) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
