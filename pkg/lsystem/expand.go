package lsystem

import (
	"runtime"

	"lterrain/internal/core"

	"golang.org/x/sync/errgroup"
)

// Expand rewrites every cell of g through the rule list and returns the
// next level of detail, whose side is Dims times larger. A cell no rule
// accepts is copied into every cell of its block.
func Expand(rules []*Rule, g *Grid) *Grid {
	next := core.NewByteGrid(g.Side()*Dims, g.Side()*Dims)
	for y := 0; y < g.Side(); y++ {
		expandRow(rules, g, next, y)
	}
	return &Grid{cells: next}
}

// ExpandParallel is Expand with source rows distributed over up to workers
// goroutines. Every row writes a disjoint band of the output and reads only
// g and rules, so the result is identical to Expand.
func ExpandParallel(rules []*Rule, g *Grid, workers int) *Grid {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	side := g.Side()
	if workers == 1 || side == 1 {
		return Expand(rules, g)
	}
	next := core.NewByteGrid(side*Dims, side*Dims)
	var eg errgroup.Group
	eg.SetLimit(workers)
	for y := 0; y < side; y++ {
		eg.Go(func() error {
			expandRow(rules, g, next, y)
			return nil
		})
	}
	// Rows never fail.
	eg.Wait()
	return &Grid{cells: next}
}

func expandRow(rules []*Rule, g *Grid, next *core.ByteGrid, y int) {
	for x := 0; x < g.Side(); x++ {
		c := g.At(x, y)
		ox, oy := x*Dims, y*Dims
		r, ok := MatchRule(rules, g, x, y)
		if !ok {
			next.FillRect(ox, oy, Dims, Dims, uint8(c))
			continue
		}
		for sy := 0; sy < Dims; sy++ {
			for sx := 0; sx < Dims; sx++ {
				v := r.Replacement.At(sx, sy)
				if v == MatchAny {
					v = c
				}
				next.Set(ox+sx, oy+sy, uint8(v))
			}
		}
	}
}
