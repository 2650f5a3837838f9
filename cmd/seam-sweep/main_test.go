package main

import (
	"testing"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"
)

func TestMeasureSeamsSplitsBoundaryPairs(t *testing.T) {
	low := lsystem.NewPatch("low", 'L')
	low.SetHeightRange(0, 0)
	high := lsystem.NewPatch("high", 'H')
	high.SetHeightRange(10, 10)
	for _, p := range []*lsystem.Patch{low, high} {
		p.SetHeightSmoothing(false)
	}
	cfg := synth.DefaultConfig()
	cfg.Workers = 1
	s := synth.NewFromGrid(lsystem.MustParseGrid("LH", "LH"), []*lsystem.Patch{low, high}, cfg)

	hm := synth.NewHeightmap(4, 4)
	if _, err := s.SynthesizeGrid(hm, nil); err != nil {
		t.Fatalf("SynthesizeGrid: %v", err)
	}
	r := measureSeams(scenario{}, s, hm)
	if r.boundaryPairs != 4 || r.boundaryMean != 10 || r.boundaryMax != 10 {
		t.Fatalf("boundary %d pairs mean %v max %v", r.boundaryPairs, r.boundaryMean, r.boundaryMax)
	}
	if r.interiorMean != 0 {
		t.Fatalf("interior mean %v", r.interiorMean)
	}
}
