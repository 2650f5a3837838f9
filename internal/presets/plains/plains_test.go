package plains

import (
	"math"
	"testing"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"
)

func TestPlainsExpandsToUniformGrid(t *testing.T) {
	p := New(DefaultConfig())
	size := p.Size()
	if size.W != lsystem.Dims*lsystem.Dims {
		t.Fatalf("side %d, want %d", size.W, lsystem.Dims*lsystem.Dims)
	}
	for i, c := range p.Cells() {
		if lsystem.Code(c) != Plain {
			t.Fatalf("cell %d = %s, want A", i, lsystem.Code(c))
		}
	}
}

func TestPlainsSynthesizesMidpoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Synth.Workers = 2
	p := New(cfg)
	hm := synth.NewHeightmap(9, 9)
	if _, err := p.Synthesizer().SynthesizeGrid(hm, nil); err != nil {
		t.Fatalf("SynthesizeGrid: %v", err)
	}
	for i, h := range hm.Data {
		if math.Abs(h-5.5) > 1e-9 {
			t.Fatalf("sample %d height %v, want 5.5", i, h)
		}
	}
}

func TestFromMapKeepsBandOrdered(t *testing.T) {
	c := FromMap(map[string]string{"min_height": "8", "max_height": "3", "rolling": "true"})
	if c.MinHeight != 8 || c.MaxHeight != 8 || !c.Rolling {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestDepthEditRegenerates(t *testing.T) {
	p := New(DefaultConfig())
	if !p.SetIntParameter("depth", 1) {
		t.Fatalf("depth edit rejected")
	}
	if p.Depth() != 1 || p.Size().W != lsystem.Dims {
		t.Fatalf("depth %d side %d after edit", p.Depth(), p.Size().W)
	}
	if p.SetIntParameter("depth", -1) {
		t.Fatalf("negative depth accepted")
	}
}
