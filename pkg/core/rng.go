package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewCellRNG seeds an RNG from a base seed and a lattice position so that
// every cell draws an independent, reproducible stream regardless of the
// order in which cells are visited.
func NewCellRNG(seed int64, x, y int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(Hash2(x, y, seed), uint64(seed)))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}
