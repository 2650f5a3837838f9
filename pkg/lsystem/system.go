package lsystem

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// LSystem owns a terrain grammar: the symbol palette, the ordered rule and
// patch lists, the texture and mesh palettes, the seed grid and the current
// level-of-detail chain.
//
// Rule and patch order is match precedence. The chain is replaced as a
// whole by Regenerate and Iterate, so readers holding a *Chain never see a
// partially built one.
type LSystem struct {
	Symbols        Palette
	Rules          []*Rule
	Patches        []*Patch
	GroundTextures []*GroundTexture
	MeshAssets     []*MeshAsset

	// Workers bounds expansion parallelism. Zero uses every CPU.
	Workers int

	seed  *Grid
	chain atomic.Pointer[Chain]
}

// New returns an empty system.
func New() *LSystem {
	s := &LSystem{}
	s.chain.Store(NewChain(nil))
	return s
}

// Reset drops every symbol, rule, patch, palette entry and grid.
func (s *LSystem) Reset() {
	s.Symbols.Clear()
	s.Rules = nil
	s.Patches = nil
	s.GroundTextures = nil
	s.MeshAssets = nil
	s.seed = nil
	s.chain.Store(NewChain(nil))
}

// DefaultSymbol returns the first palette symbol.
func (s *LSystem) DefaultSymbol() (Symbol, bool) {
	syms := s.Symbols.Symbols()
	if len(syms) == 0 {
		return Symbol{}, false
	}
	return syms[0], true
}

// SetSeed installs the coarsest grid and resets the chain to it.
func (s *LSystem) SetSeed(g *Grid) error {
	if g == nil {
		return fmt.Errorf("set seed: %w", ErrGridSize)
	}
	if g.Count(MatchAny) > 0 {
		return fmt.Errorf("set seed: %w", ErrWildcardInGrid)
	}
	s.seed = g
	s.chain.Store(NewChain(g))
	return nil
}

// Seed returns the seed grid.
func (s *LSystem) Seed() *Grid { return s.seed }

// Chain returns the current level-of-detail chain.
func (s *LSystem) Chain() *Chain { return s.chain.Load() }

// AddSymbol appends a symbol to the palette.
func (s *LSystem) AddSymbol(sym Symbol) error { return s.Symbols.Add(sym) }

// AddRule appends r at the lowest precedence.
func (s *LSystem) AddRule(r *Rule) *Rule {
	s.Rules = append(s.Rules, r)
	return r
}

// RemoveRule deletes r and reports whether it was present.
func (s *LSystem) RemoveRule(r *Rule) bool { return removeItem(&s.Rules, r) }

// MoveRule moves r to index i, changing its precedence.
func (s *LSystem) MoveRule(r *Rule, i int) bool {
	from := slices.Index(s.Rules, r)
	if from < 0 || i < 0 || i >= len(s.Rules) {
		return false
	}
	s.Rules = slices.Delete(s.Rules, from, from+1)
	s.Rules = slices.Insert(s.Rules, i, r)
	return true
}

// AddPatch appends p at the lowest precedence.
func (s *LSystem) AddPatch(p *Patch) *Patch {
	s.Patches = append(s.Patches, p)
	return p
}

// RemovePatch deletes p and reports whether it was present.
func (s *LSystem) RemovePatch(p *Patch) bool { return removeItem(&s.Patches, p) }

// AddGroundTexture registers a texture in the palette.
func (s *LSystem) AddGroundTexture(t *GroundTexture) *GroundTexture {
	s.GroundTextures = append(s.GroundTextures, t)
	return t
}

// RemoveGroundTexture drops a texture from the palette.
func (s *LSystem) RemoveGroundTexture(t *GroundTexture) bool {
	return removeItem(&s.GroundTextures, t)
}

// AddMeshAsset registers a mesh in the palette.
func (s *LSystem) AddMeshAsset(m *MeshAsset) *MeshAsset {
	s.MeshAssets = append(s.MeshAssets, m)
	return m
}

// RemoveMeshAsset drops a mesh from the palette.
func (s *LSystem) RemoveMeshAsset(m *MeshAsset) bool {
	return removeItem(&s.MeshAssets, m)
}

// MatchRule returns the first rule accepted for cell (x, y) of g.
func (s *LSystem) MatchRule(g *Grid, x, y int) (*Rule, bool) {
	return MatchRule(s.Rules, g, x, y)
}

// MatchPatch returns the first patch bound to c.
func (s *LSystem) MatchPatch(c Code) (*Patch, bool) {
	return MatchPatch(s.Patches, c)
}

// Expand produces the level after g using the current rules.
func (s *LSystem) Expand(g *Grid) *Grid {
	return ExpandParallel(slices.Clone(s.Rules), g, s.Workers)
}

// Regenerate rebuilds the chain from the seed with depth expansion steps
// and publishes it atomically. The previous chain stays valid for anyone
// still holding it.
func (s *LSystem) Regenerate(depth int) *Chain {
	chain := NewChain(s.seed)
	if s.seed != nil {
		rules := slices.Clone(s.Rules)
		g := s.seed
		for range depth {
			g = ExpandParallel(rules, g, s.Workers)
			chain = chain.Append(g)
		}
	}
	s.chain.Store(chain)
	return chain
}

// Iterate appends one level to the current chain.
func (s *LSystem) Iterate() *Chain {
	cur := s.Chain()
	finest := cur.Finest()
	if finest == nil {
		return cur
	}
	next := cur.Append(s.Expand(finest))
	s.chain.Store(next)
	return next
}
