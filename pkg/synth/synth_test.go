package synth

import (
	"math"
	"math/rand/v2"
	"testing"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/noise"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 99
	cfg.Extent = 100
	cfg.Resolution = 65
	cfg.Workers = 4
	return cfg
}

func TestMidpointHeightEndToEnd(t *testing.T) {
	sys := lsystem.New()
	_ = sys.AddSymbol(lsystem.NewSymbol('A', "Plain"))
	r, _ := lsystem.NewPropagateRule('A', 'A')
	sys.AddRule(r)
	if err := sys.SetSeed(lsystem.MustParseGrid("A")); err != nil {
		t.Fatalf("SetSeed: %v", err)
	}
	p := sys.AddPatch(lsystem.NewPatch("plain", 'A'))
	p.SetHeightRange(1, 10)
	p.SetHeightSmoothing(false)
	sys.Regenerate(2)

	s := New(sys, testConfig())
	rng := rand.New(rand.NewPCG(4, 4))
	for range 200 {
		u, v := rng.Float64(), rng.Float64()
		if h := s.HeightAt(u, v); math.Abs(h-5.5) > 1e-9 {
			t.Fatalf("height at (%.3f,%.3f) = %v, want 5.5", u, v, h)
		}
	}
	if h := s.Synthesize(1, 1).Height; math.Abs(h-5.5) > 1e-9 {
		t.Fatalf("corner height %v, want 5.5", h)
	}
}

func TestNoiseHeightStaysInBand(t *testing.T) {
	p := lsystem.NewPatch("hills", 'A')
	p.SetHeightRange(-3, 12)
	for _, k := range noise.Kinds() {
		n := p.AddNoise(lsystem.NewNoise(k))
		n.SetFrequency(3)
	}
	s := NewFromGrid(lsystem.MustParseGrid("A"), []*lsystem.Patch{p}, testConfig())
	rng := rand.New(rand.NewPCG(8, 1))
	varied := false
	first := s.HeightAt(0, 0)
	for range 500 {
		h := s.HeightAt(rng.Float64(), rng.Float64())
		if h < -3 || h > 12 {
			t.Fatalf("height %v outside [-3, 12]", h)
		}
		if h != first {
			varied = true
		}
	}
	if !varied {
		t.Fatalf("noise layers produced a flat patch")
	}
}

func TestAmplitudeScalesHeightSwing(t *testing.T) {
	heights := func(amp float64) []float64 {
		p := lsystem.NewPatch("hills", 'A')
		p.SetHeightRange(0, 20)
		p.AddNoise(lsystem.NewNoise(noise.Perlin)).SetAmplitude(amp)
		s := NewFromGrid(lsystem.MustParseGrid("A"), []*lsystem.Patch{p}, testConfig())
		out := make([]float64, 0, 50)
		for i := range 50 {
			out = append(out, s.HeightAt(float64(i)/49, 0.37))
		}
		return out
	}
	quiet, loud := heights(1), heights(10)
	moved := false
	for i := range quiet {
		dq, dl := quiet[i]-10, loud[i]-10
		if math.Abs(dl-10*dq) > 1e-9 {
			t.Fatalf("sample %d: swing %v at amplitude 10, %v at amplitude 1", i, dl, dq)
		}
		if dq != 0 {
			moved = true
		}
	}
	if !moved {
		t.Fatalf("noise layer left the patch flat")
	}
}

func TestSmoothingMovesTowardNeighbourMean(t *testing.T) {
	grid := lsystem.MustParseGrid(
		"BBB",
		"BAB",
		"BBB",
	)
	a := lsystem.NewPatch("low", 'A')
	a.SetHeightRange(0, 10)
	b := lsystem.NewPatch("high", 'B')
	b.SetHeightRange(20, 40)

	prev := math.Inf(-1)
	for i := 0; i <= 10; i++ {
		a.SetSmoothFactor(float64(i) / 10)
		s := NewFromGrid(grid, []*lsystem.Patch{a, b}, testConfig())
		h := s.HeightAt(0.5, 0.5)
		if h < prev {
			t.Fatalf("factor %.1f: height %v dropped below %v", a.SmoothFactor(), h, prev)
		}
		prev = h
	}
	if math.Abs(prev-30) > 1e-9 {
		t.Fatalf("full smoothing gave %v, want neighbour midpoint 30", prev)
	}

	a.SetHeightSmoothing(false)
	s := NewFromGrid(grid, []*lsystem.Patch{a, b}, testConfig())
	if h := s.HeightAt(0.5, 0.5); h != 5 {
		t.Fatalf("smoothing disabled: height %v, want 5", h)
	}
}

func TestSmoothingSkipsUnmatchedNeighbours(t *testing.T) {
	grid := lsystem.MustParseGrid(
		"ZZZ",
		"ZAZ",
		"ZZZ",
	)
	a := lsystem.NewPatch("lonely", 'A')
	a.SetHeightRange(2, 4)
	a.SetSmoothFactor(1)
	s := NewFromGrid(grid, []*lsystem.Patch{a}, testConfig())
	if h := s.HeightAt(0.5, 0.5); h != 3 {
		t.Fatalf("height %v, want 3", h)
	}
}

func TestFeatherMaskEndpoints(t *testing.T) {
	const th, f = 0.4, 0.2
	if got := featherMask(th-f, th, f, true); got != 0 {
		t.Fatalf("above at t-f = %v, want 0", got)
	}
	if got := featherMask(th+f, th, f, true); got != 1 {
		t.Fatalf("above at t+f = %v, want 1", got)
	}
	if got := featherMask(th, th, f, true); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("above at t = %v, want 0.5", got)
	}
	if got := featherMask(th-f, th, f, false); got != 1 {
		t.Fatalf("below at t-f = %v, want 1", got)
	}
	if got := featherMask(th+f, th, f, false); got != 0 {
		t.Fatalf("below at t+f = %v, want 0", got)
	}
	for _, c := range [][2]float64{{0.4, 0.2}, {0.1, 0.2}, {-0.3, 0.7}, {0.7, 0.1}} {
		if got := featherMask(c[0]+c[1], c[0], c[1], true); got != 1 {
			t.Fatalf("above at t+f for t=%v f=%v = %v, want 1", c[0], c[1], got)
		}
		if got := featherMask(c[0]-c[1], c[0], c[1], false); got != 1 {
			t.Fatalf("below at t-f for t=%v f=%v = %v, want 1", c[0], c[1], got)
		}
	}
	prev := -1.0
	for i := 0; i <= 100; i++ {
		n := th - 2*f + 4*f*float64(i)/100
		got := featherMask(n, th, f, true)
		if got < prev || got < 0 || got > 1 {
			t.Fatalf("mask not monotone in [0,1]: %v after %v at n=%v", got, prev, n)
		}
		prev = got
	}
	if featherMask(0.39, 0.4, 0, true) != 0 || featherMask(0.4, 0.4, 0, true) != 1 {
		t.Fatalf("hard step above threshold wrong")
	}
	if featherMask(0.41, 0.4, 0, false) != 0 || featherMask(0.4, 0.4, 0, false) != 1 {
		t.Fatalf("hard step below threshold wrong")
	}
}

func TestPaintMergesTexturesAndSkipsUnassigned(t *testing.T) {
	grass := &lsystem.GroundTexture{Name: "Grass"}
	rock := &lsystem.GroundTexture{Name: "Rock"}
	p := lsystem.NewPatch("meadow", 'A')
	p.AddPaintWeight(lsystem.NewPaintWeight(grass)).SetWeight(0.3)
	p.AddPaintWeight(lsystem.NewPaintWeight(nil))
	p.AddPaintWeight(lsystem.NewPaintWeight(grass)).SetWeight(0.4)
	masked := p.AddPaintWeight(lsystem.NewPaintWeight(rock))
	masked.Mask = lsystem.NewNoise(noise.Perlin)
	masked.Threshold = 0
	masked.SetFeather(0.5)

	s := NewFromGrid(lsystem.MustParseGrid("A"), []*lsystem.Patch{p}, testConfig())
	layers := s.LayersAt(0.3, 0.7)
	if len(layers) != 2 {
		t.Fatalf("expected 2 layers, got %d", len(layers))
	}
	if layers[0].Texture != grass || math.Abs(layers[0].Weight-0.7) > 1e-12 {
		t.Fatalf("grass layer = %+v, want 0.7", layers[0])
	}
	if layers[1].Texture != rock || layers[1].Weight < 0 || layers[1].Weight > 1 {
		t.Fatalf("rock layer = %+v", layers[1])
	}
}

func TestUnmatchedPolicies(t *testing.T) {
	grid := lsystem.MustParseGrid(
		"AZ",
		"ZB",
	)
	a := lsystem.NewPatch("a", 'A')
	a.SetHeightRange(3, 8)
	a.AddPaintWeight(lsystem.NewPaintWeight(&lsystem.GroundTexture{Name: "Grass"}))
	a.AddScatter(lsystem.NewObjectScatter(&lsystem.MeshAsset{Name: "Tree"}))
	b := lsystem.NewPatch("b", 'B')
	b.SetHeightRange(-5, 0)
	patches := []*lsystem.Patch{a, b}

	s := NewFromGrid(grid, patches, testConfig())
	smp := s.Synthesize(0.9, 0.1)
	if smp.Symbol != 'Z' || smp.Patch != nil {
		t.Fatalf("expected unmatched Z sample, got %+v", smp)
	}
	if smp.Height != 0 || len(smp.Layers) != 0 || len(smp.Placements) != 0 {
		t.Fatalf("unmatched sample not empty: %+v", smp)
	}

	cfg := testConfig()
	cfg.Unmatched = UnmatchedLowest
	s = NewFromGrid(grid, patches, cfg)
	if h := s.HeightAt(0.9, 0.1); h != -5 {
		t.Fatalf("lowest policy height %v, want -5", h)
	}

	empty := NewFromGrid(nil, patches, testConfig())
	if smp := empty.Synthesize(0.5, 0.5); smp.Patch != nil || smp.Height != 0 {
		t.Fatalf("nil grid should synthesize the unmatched default, got %+v", smp)
	}
}

func TestConfigFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"seed":        "7",
		"extent":      "250",
		"noise_scale": "-1",
		"resolution":  "129",
		"unmatched":   "lowest",
		"workers":     "x",
	})
	d := DefaultConfig()
	if c.Seed != 7 || c.Extent != 250 || c.Resolution != 129 || c.Unmatched != UnmatchedLowest {
		t.Fatalf("unexpected config %+v", c)
	}
	if c.NoiseScale != d.NoiseScale || c.Workers != d.Workers {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	if _, err := ParseUnmatchedPolicy("sideways"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
