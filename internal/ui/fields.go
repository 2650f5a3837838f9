package ui

import (
	"image/color"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"
)

// fields holds the synthesized attributes behind the overlay, sampled
// once per cell of the finest grid.
type fields struct {
	side       int
	heights    *synth.Heightmap
	weights    *synth.Weightmaps
	placements []synth.Placement
	lo, hi     float64
}

func synthesizeFields(s *synth.Synthesizer, textures []*lsystem.GroundTexture, side int) (*fields, error) {
	hm := synth.NewHeightmap(side, side)
	wm := synth.NewWeightmaps(side, side, textures)
	placements, err := s.SynthesizeGrid(hm, wm)
	if err != nil {
		return nil, err
	}
	lo, hi := hm.Range()
	return &fields{side: side, heights: hm, weights: wm, placements: placements, lo: lo, hi: hi}, nil
}

// project maps a world-space placement onto view pixels for a view that
// draws each of the side samples scale pixels wide.
func project(p synth.Placement, extent float64, side int, scale float64) (float64, float64) {
	if extent <= 0 {
		return 0, 0
	}
	k := float64(side) * scale / extent
	return float64(p.Position.X()) * k, float64(p.Position.Z()) * k
}

var layerTints = []color.RGBA{
	{R: 120, G: 220, B: 90, A: 255},
	{R: 170, G: 160, B: 150, A: 255},
	{R: 240, G: 220, B: 140, A: 255},
	{R: 90, G: 170, B: 240, A: 255},
}

func layerTint(i int) color.RGBA { return layerTints[i%len(layerTints)] }

var meshTints = []color.RGBA{
	{R: 30, G: 110, B: 40, A: 230},
	{R: 110, G: 100, B: 95, A: 230},
	{R: 200, G: 80, B: 60, A: 230},
}

func meshTint(i int) color.RGBA { return meshTints[i%len(meshTints)] }
