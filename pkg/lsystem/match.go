package lsystem

// MatchRule scans rules in order and returns the first one accepted for the
// cell (x, y) of g. Precedence is declaration order only; rules are never
// ranked by how specific their neighbourhood is. Invalid rules are skipped.
func MatchRule(rules []*Rule, g *Grid, x, y int) (*Rule, bool) {
	c := g.At(x, y)
	for _, r := range rules {
		if !r.Valid() || r.MatchVal != c {
			continue
		}
		if r.MatchNeighbors && !neighborsMatch(r, g, x, y) {
			continue
		}
		return r, true
	}
	return nil, false
}

// neighborsMatch compares the rule's 3×3 neighbourhood with the grid.
// Cells beyond the grid edge behave as wildcards, so an edge never blocks a
// match.
func neighborsMatch(r *Rule, g *Grid, x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			want := r.Neighbors[dy+1][dx+1]
			if want == MatchAny {
				continue
			}
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			if g.At(nx, ny) != want {
				return false
			}
		}
	}
	return true
}

// MatchPatch returns the first patch whose MatchVal equals c.
func MatchPatch(patches []*Patch, c Code) (*Patch, bool) {
	for _, p := range patches {
		if p != nil && p.MatchVal == c {
			return p, true
		}
	}
	return nil, false
}
