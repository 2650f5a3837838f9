package synth

import (
	"slices"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/noise"
)

// LayerWeight is the contribution of one ground texture at a sample. The
// host normalizes overlapping weights.
type LayerWeight struct {
	Texture *lsystem.GroundTexture
	Weight  float64
}

// Sample is everything synthesized for one terrain coordinate.
type Sample struct {
	Symbol     lsystem.Code
	Patch      *lsystem.Patch
	Height     float64
	Layers     []LayerWeight
	Placements []Placement
}

// Synthesizer turns the finest level of a chain into heights, paint
// weights and scatter placements. It reads the grid and patches but never
// changes them, so one Synthesizer may serve any number of goroutines.
type Synthesizer struct {
	cfg     Config
	field   *noise.Field
	grid    *lsystem.Grid
	patches []*lsystem.Patch

	unmatchedHeight float64
}

// New snapshots the finest level and patch list of sys.
func New(sys *lsystem.LSystem, cfg Config) *Synthesizer {
	return NewFromGrid(sys.Chain().Finest(), sys.Patches, cfg)
}

// NewFromGrid builds a synthesizer over an explicit grid. A nil grid makes
// every sample unmatched.
func NewFromGrid(grid *lsystem.Grid, patches []*lsystem.Patch, cfg Config) *Synthesizer {
	cfg = cfg.normalized()
	s := &Synthesizer{
		cfg:     cfg,
		field:   noise.NewField(cfg.Seed),
		grid:    grid,
		patches: slices.Clone(patches),
	}
	if cfg.Unmatched == UnmatchedLowest {
		s.unmatchedHeight = lowestHeight(s.patches)
	}
	return s
}

// Config returns the normalized configuration in use.
func (s *Synthesizer) Config() Config { return s.cfg }

// Grid returns the symbol grid being sampled.
func (s *Synthesizer) Grid() *lsystem.Grid { return s.grid }

// Synthesize composes the full sample at (u, v). Placements are those whose
// position lies in the host sample cell nearest (u, v) on a
// Resolution×Resolution grid, whichever patch owns them.
func (s *Synthesizer) Synthesize(u, v float64) Sample {
	fx := footprint(nearestIndex(u, s.cfg.Resolution), s.cfg.Resolution, s.cfg.Extent)
	fz := footprint(nearestIndex(v, s.cfg.Resolution), s.cfg.Resolution, s.cfg.Extent)
	return s.sample(u, v, fx, fz)
}

func (s *Synthesizer) sample(u, v float64, fx, fz span) Sample {
	c, i, p := s.resolve(u, v)
	out := Sample{Symbol: c, Patch: p, Height: s.unmatchedHeight}
	out.Placements = s.placementsWithin(fx, fz)
	if p == nil {
		return out
	}
	out.Height = s.heightAt(u, v, i, p)
	out.Layers = s.paint(u, v, i, p)
	return out
}

// SymbolAt returns the finest symbol under (u, v).
func (s *Synthesizer) SymbolAt(u, v float64) lsystem.Code {
	if s.grid == nil {
		return lsystem.MatchAny
	}
	return lsystem.SymbolAt(s.grid, u, v)
}

// HeightAt returns the smoothed height at (u, v).
func (s *Synthesizer) HeightAt(u, v float64) float64 {
	_, i, p := s.resolve(u, v)
	if p == nil {
		return s.unmatchedHeight
	}
	return s.heightAt(u, v, i, p)
}

// LayersAt returns the paint weights at (u, v).
func (s *Synthesizer) LayersAt(u, v float64) []LayerWeight {
	_, i, p := s.resolve(u, v)
	if p == nil {
		return nil
	}
	return s.paint(u, v, i, p)
}

// resolve maps (u, v) to its symbol and the first patch bound to it.
func (s *Synthesizer) resolve(u, v float64) (lsystem.Code, int, *lsystem.Patch) {
	if s.grid == nil {
		return lsystem.MatchAny, -1, nil
	}
	c := lsystem.SymbolAt(s.grid, u, v)
	i, p := s.patchFor(c)
	return c, i, p
}

func (s *Synthesizer) patchFor(c lsystem.Code) (int, *lsystem.Patch) {
	p, ok := lsystem.MatchPatch(s.patches, c)
	if !ok {
		return -1, nil
	}
	return slices.Index(s.patches, p), p
}

func lowestHeight(patches []*lsystem.Patch) float64 {
	lowest, found := 0.0, false
	for _, p := range patches {
		if p == nil {
			continue
		}
		if !found || p.MinHeight() < lowest {
			lowest, found = p.MinHeight(), true
		}
	}
	return lowest
}
