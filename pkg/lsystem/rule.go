package lsystem

import "fmt"

// Rule is a grammar production. A cell holding MatchVal (and, when
// MatchNeighbors is set, whose 3×3 surroundings agree with Neighbors) is
// replaced by the Dims×Dims Replacement at the next level of detail.
type Rule struct {
	Name           string
	MatchVal       Code
	MatchNeighbors bool
	// Neighbors is indexed [dy+1][dx+1]. Cells holding MatchAny accept
	// any neighbour.
	Neighbors   [3][3]Code
	Replacement *Grid
}

// NewRule returns a rule substituting replacement for match. Replacement
// cells holding MatchAny inherit the matched symbol.
func NewRule(match Code, replacement *Grid) (*Rule, error) {
	if match.Reserved() {
		return nil, fmt.Errorf("new rule: %w", ErrReservedSymbol)
	}
	if replacement == nil || replacement.Side() != Dims {
		return nil, fmt.Errorf("new rule for %s: %w", match, ErrReplacementSize)
	}
	return newRule(match, replacement), nil
}

// NewPropagateRule returns a rule that fills the whole replacement with a
// single target symbol, letting a symbol spread into finer levels without
// structural change.
func NewPropagateRule(match, target Code) (*Rule, error) {
	if match.Reserved() || target.Reserved() {
		return nil, fmt.Errorf("new propagate rule: %w", ErrReservedSymbol)
	}
	r := newRule(match, NewGrid(Dims, target))
	r.Name = fmt.Sprintf("%s -> %s", match, target)
	return r, nil
}

func newRule(match Code, replacement *Grid) *Rule {
	r := &Rule{MatchVal: match, Replacement: replacement}
	r.ClearNeighbors()
	return r
}

// ClearNeighbors resets the neighbourhood to all-wildcard except the
// centre, which holds MatchVal.
func (r *Rule) ClearNeighbors() {
	for dy := range r.Neighbors {
		for dx := range r.Neighbors[dy] {
			r.Neighbors[dy][dx] = MatchAny
		}
	}
	r.Neighbors[1][1] = r.MatchVal
}

// SetNeighbor requires the cell at offset (dx, dy) to hold c. Offsets
// outside [-1, 1] are ignored.
func (r *Rule) SetNeighbor(dx, dy int, c Code) {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return
	}
	r.Neighbors[dy+1][dx+1] = c
}

// Neighbor returns the requirement at offset (dx, dy).
func (r *Rule) Neighbor(dx, dy int) Code {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
		return MatchAny
	}
	return r.Neighbors[dy+1][dx+1]
}

// SetNeighborRows sets the neighbourhood from three textual rows of three
// cells each and enables neighbour matching.
func (r *Rule) SetNeighborRows(rows ...string) error {
	g, err := ParseGrid(rows...)
	if err != nil {
		return fmt.Errorf("rule %s neighbours: %w", r.MatchVal, err)
	}
	if g.Side() != 3 {
		return fmt.Errorf("rule %s neighbours have side %d: %w", r.MatchVal, g.Side(), ErrGridSize)
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			r.SetNeighbor(dx, dy, g.At(dx+1, dy+1))
		}
	}
	r.MatchNeighbors = true
	return nil
}

// Valid reports whether the rule can be applied by the expander.
func (r *Rule) Valid() bool {
	return r != nil && !r.MatchVal.Reserved() && r.Replacement != nil && r.Replacement.Side() == Dims
}

func (r *Rule) String() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("rule %s", r.MatchVal)
}

// NewContactRules returns eight propagation rules turning match into
// target wherever one of its Moore neighbours holds contact. Each rule
// tests a single offset, so together they fire on any contact. Offsets
// past the grid edge always match, so every match cell on the border is
// converted as well; seeds that want to keep match on the rim need a
// border of contact or of another symbol.
func NewContactRules(match, contact, target Code) ([]*Rule, error) {
	if contact.Reserved() {
		return nil, fmt.Errorf("new contact rules: %w", ErrReservedSymbol)
	}
	base, err := NewPropagateRule(match, target)
	if err != nil {
		return nil, err
	}
	rules := make([]*Rule, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r := newRule(match, base.Replacement)
			r.Name = fmt.Sprintf("%s next to %s -> %s", match, contact, target)
			r.SetNeighbor(dx, dy, contact)
			r.MatchNeighbors = true
			rules = append(rules, r)
		}
	}
	return rules, nil
}
