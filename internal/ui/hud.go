//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"lterrain/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor   = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor      = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	disabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

// HUD renders the parameter panel to the right of the terrain view.
type HUD struct {
	gen      core.Generator
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	controls []controlState
	set      setters
	offsetX  int
	view     int
	changed  bool
}

// NewHUD constructs a HUD for gen with a panel of the given width.
func NewHUD(gen core.Generator, width int) *HUD {
	h := &HUD{gen: gen, width: max(width, 0)}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = newControlStates(gen)
	h.set = settersFor(gen)
	layoutControls(h.controls, h.width)
	return h
}

// Update refreshes control values and handles clicks. view is the level of
// detail currently on screen.
func (h *HUD) Update(panelOffsetX, view int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	h.view = view
	if p, ok := h.gen.(core.ParameterProvider); ok {
		snap := p.Parameters()
		for i := range h.controls {
			h.controls[i].refresh(snap)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	if i, dir, ok := hit(h.controls, mx-h.offsetX, my); ok {
		if h.controls[i].adjust(h.set, dir) {
			h.changed = true
		}
	}
}

// Changed reports, and clears, whether a HUD edit regenerated the terrain
// since the last call.
func (h *HUD) Changed() bool {
	if h == nil {
		return false
	}
	c := h.changed
	h.changed = false
	return c
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, title(h.gen), face, panelPadding, y, headerColor)
	if len(h.controls) == 0 {
		y += infoSpacing
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y, dimColor)
	}
	for i := range h.controls {
		s := &h.controls[i]
		text.Draw(h.panel, s.control.Label, face, panelPadding, s.top+labelBaseline, labelColor)
		valueColor := labelColor
		if !s.hasValue {
			valueColor = dimColor
		}
		w := text.BoundString(face, s.value).Dx()
		text.Draw(h.panel, s.value, face, s.minusRect.Min.X-buttonGap-w, s.top+labelBaseline, valueColor)
		h.drawButton(s.minusRect, "-", s.canAdjust(h.set, -1))
		h.drawButton(s.plusRect, "+", s.canAdjust(h.set, 1))
		y = s.top + lineHeight
	}
	y += infoSpacing
	for _, line := range statusLines(h.gen, h.view) {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += infoSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = disabledColor, color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
