//go:build ebiten

package ui

import (
	"image/color"
	"log/slog"
	"math"

	"lterrain/internal/render"
	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws synthesized attributes over the symbol view: the
// heightmap (1), object placements (2) and one ground texture weight
// layer at a time (3 cycles through them).
type Overlay struct {
	src      *synth.Synthesizer
	textures []*lsystem.GroundTexture
	side     int
	data     *fields
	painter  *render.GridPainter
	pixel    *ebiten.Image

	showHeight  bool
	showObjects bool
	layer       int
}

// NewOverlay constructs an overlay with every layer hidden.
func NewOverlay() *Overlay {
	o := &Overlay{layer: -1}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetSource replaces the synthesizer behind the overlay. Fields are
// resampled lazily the next time a layer is shown.
func (o *Overlay) SetSource(s *synth.Synthesizer, textures []*lsystem.GroundTexture, side int) {
	o.src = s
	o.textures = textures
	o.side = side
	o.data = nil
	if o.layer >= len(textures) {
		o.layer = -1
	}
}

// Update toggles layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showHeight = !o.showHeight
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showObjects = !o.showObjects
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.layer++
		if o.layer >= len(o.textures) {
			o.layer = -1
		}
	}
}

// Draw renders the enabled layers; scale is the on-screen size of one
// finest-grid cell.
func (o *Overlay) Draw(screen *ebiten.Image, scale float64) {
	if !o.showHeight && !o.showObjects && o.layer < 0 {
		return
	}
	if !o.ensureFields() {
		return
	}
	if o.showHeight {
		o.painter.BlitHeights(screen, o.data.heights.Data, o.data.lo, o.data.hi, 190, scale)
	}
	if o.layer >= 0 && o.layer < len(o.textures) {
		o.painter.BlitWeights(screen, o.data.weights.Data[o.layer], layerTint(o.layer), 200, scale)
	}
	if o.showObjects {
		o.drawPlacements(screen, scale)
	}
}

func (o *Overlay) ensureFields() bool {
	if o.data != nil {
		return true
	}
	if o.src == nil || o.side <= 0 {
		return false
	}
	data, err := synthesizeFields(o.src, o.textures, o.side)
	if err != nil {
		slog.Warn("overlay synthesis failed", "err", err)
		return false
	}
	o.data = data
	if o.painter == nil {
		o.painter = render.NewGridPainter(o.side, o.side)
	} else if w, _ := o.painter.Size(); w != o.side {
		o.painter = render.NewGridPainter(o.side, o.side)
	}
	return true
}

func (o *Overlay) drawPlacements(screen *ebiten.Image, scale float64) {
	extent := o.src.Config().Extent
	size := math.Max(scale*0.8, 2)
	meshes := map[*lsystem.MeshAsset]int{}
	for _, p := range o.data.placements {
		idx, ok := meshes[p.Mesh]
		if !ok {
			idx = len(meshes)
			meshes[p.Mesh] = idx
		}
		col := meshTint(idx)
		x, y := project(p, extent, o.side, scale)
		o.drawPoint(screen, x, y, size, col)
		yaw := float64(p.Yaw)
		o.drawLine(screen, x, y, x+math.Cos(yaw)*size*1.5, y+math.Sin(yaw)*size*1.5, 1, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
