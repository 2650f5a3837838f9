// Package presets holds the shared machinery behind the built-in terrain
// grammars. Each preset lives in its own sub-package and registers itself
// with core.Register.
package presets

import (
	"fmt"
	"image/color"

	"lterrain/internal/core"
	"lterrain/internal/render"
	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"
)

// Builder installs a grammar into an empty system for the given seed.
type Builder func(sys *lsystem.LSystem, seed int64)

// Terrain is a Generator backed by an L-system. Reset rebuilds the grammar
// and regenerates the chain to the configured depth; Step appends one more
// level of detail.
type Terrain struct {
	name     string
	depth    int
	synthCfg synth.Config
	build    Builder
	sys      *lsystem.LSystem
	palette  []color.RGBA
}

// NewTerrain constructs a preset terrain and builds it once with the seed
// from synthCfg.
func NewTerrain(name string, depth int, synthCfg synth.Config, build Builder) *Terrain {
	t := &Terrain{
		name:     name,
		depth:    max(depth, 0),
		synthCfg: synthCfg,
		build:    build,
		sys:      lsystem.New(),
	}
	t.Reset(synthCfg.Seed)
	return t
}

// Name returns the preset name.
func (t *Terrain) Name() string { return t.name }

// Size returns the side of the finest level of detail.
func (t *Terrain) Size() core.Size {
	g := t.sys.Chain().Finest()
	if g == nil {
		return core.Size{}
	}
	return core.Size{W: g.Side(), H: g.Side()}
}

// Reset rebuilds the grammar for seed and regenerates the chain.
func (t *Terrain) Reset(seed int64) {
	t.synthCfg.Seed = seed
	t.sys.Reset()
	t.build(t.sys, seed)
	t.sys.Regenerate(t.depth)
	t.palette = render.SymbolPalette(&t.sys.Symbols)
}

// Step appends one level of detail to the chain.
func (t *Terrain) Step() { t.sys.Iterate() }

// Cells returns the finest level as row-major codes.
func (t *Terrain) Cells() []uint8 {
	g := t.sys.Chain().Finest()
	if g == nil {
		return nil
	}
	codes := g.Codes()
	out := make([]uint8, len(codes))
	for i, c := range codes {
		out[i] = uint8(c)
	}
	return out
}

// Depth returns the number of expansion steps in the current chain.
func (t *Terrain) Depth() int { return max(t.sys.Chain().Len()-1, 0) }

// TargetDepth returns the depth Reset regenerates to.
func (t *Terrain) TargetDepth() int { return t.depth }

// SetTargetDepth changes the depth used by the next Reset.
func (t *Terrain) SetTargetDepth(depth int) { t.depth = max(depth, 0) }

// System exposes the underlying grammar.
func (t *Terrain) System() *lsystem.LSystem { return t.sys }

// SynthConfig returns the synthesis settings with the current seed.
func (t *Terrain) SynthConfig() synth.Config { return t.synthCfg }

// Synthesizer snapshots the current chain for attribute synthesis.
func (t *Terrain) Synthesizer() *synth.Synthesizer { return synth.New(t.sys, t.synthCfg) }

// Palette maps symbol codes to display colours.
func (t *Terrain) Palette() []color.RGBA { return t.palette }

// Provider is what tools need from a preset beyond core.Generator.
type Provider interface {
	core.Generator
	System() *lsystem.LSystem
	SynthConfig() synth.Config
	Synthesizer() *synth.Synthesizer
	Palette() []color.RGBA
}

// Build looks up a registered preset and constructs it from cfg.
func Build(name string, cfg map[string]string) (Provider, error) {
	factory, err := core.Lookup(name)
	if err != nil {
		return nil, err
	}
	gen := factory(cfg)
	p, ok := gen.(Provider)
	if !ok {
		return nil, fmt.Errorf("preset %q does not expose a terrain grammar", name)
	}
	return p, nil
}
