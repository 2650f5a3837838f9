package lsystem

// Chain is an immutable level-of-detail sequence, coarsest first. LoD 0 is
// the seed grid. Consumers address levels by index; regeneration swaps in
// a whole new Chain rather than editing one.
type Chain struct {
	lods []*Grid
}

// NewChain starts a chain at the seed grid.
func NewChain(seed *Grid) *Chain {
	if seed == nil {
		return &Chain{}
	}
	return &Chain{lods: []*Grid{seed}}
}

// Len returns the number of levels.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.lods)
}

// LoD returns level i, or nil when out of range.
func (c *Chain) LoD(i int) *Grid {
	if c == nil || i < 0 || i >= len(c.lods) {
		return nil
	}
	return c.lods[i]
}

// Seed returns level 0.
func (c *Chain) Seed() *Grid { return c.LoD(0) }

// Finest returns the last level, or nil for an empty chain.
func (c *Chain) Finest() *Grid { return c.LoD(c.Len() - 1) }

// Append returns a new chain extended by g. The receiver is unchanged.
func (c *Chain) Append(g *Grid) *Chain {
	lods := make([]*Grid, 0, c.Len()+1)
	if c != nil {
		lods = append(lods, c.lods...)
	}
	return &Chain{lods: append(lods, g)}
}
