package app

import (
	"flag"
	"testing"
	"time"

	"lterrain/pkg/lsystem"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-preset", "plains", "-slide", "250ms", "-set", "depth=3", "-set", "bogus", "-set", "max_height = 40"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Preset != "plains" || cfg.Slide != 250*time.Millisecond {
		t.Fatalf("unexpected config %+v", cfg)
	}
	m := cfg.PresetConfig()
	if m["depth"] != "3" || m["max_height"] != "40" || m["seed"] != "1337" || len(m) != 3 {
		t.Fatalf("preset config %v", m)
	}
}

func TestExplicitSeedWins(t *testing.T) {
	cfg := NewConfig()
	cfg.Set = KVList{"seed=5"}
	if got := cfg.PresetConfig()["seed"]; got != "5" {
		t.Fatalf("seed %q", got)
	}
}

func TestLodCellsClampsLevel(t *testing.T) {
	chain := lsystem.NewChain(lsystem.MustParseGrid("AB", "BA"))
	chain = chain.Append(lsystem.NewGrid(10, 'A'))
	cells, side, lod := lodCells(chain, 7)
	if side != 10 || lod != 1 || len(cells) != 100 {
		t.Fatalf("side %d lod %d cells %d", side, lod, len(cells))
	}
	cells, side, lod = lodCells(chain, -2)
	if side != 2 || lod != 0 || cells[1] != 'B' {
		t.Fatalf("seed level: side %d lod %d cells %v", side, lod, cells)
	}
	if _, side, _ := lodCells(nil, 0); side != 0 {
		t.Fatalf("nil chain side %d", side)
	}
}

func TestSlideshowWraps(t *testing.T) {
	if nextSlide(2, 3) != 0 || nextSlide(0, 3) != 1 || nextSlide(4, 0) != 0 {
		t.Fatalf("slideshow order broken")
	}
}
