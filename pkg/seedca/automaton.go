// Package seedca runs Life-like cellular automata over binary masks.
// Presets use it to turn random land/water noise into coherent coastlines
// before the grammar takes over.
package seedca

import (
	"fmt"
	"strings"

	"lterrain/pkg/core"
)

// Rule is an outer-totalistic rule in B/S notation: a dead cell is born
// with Birth[n] live neighbours, a live cell survives with Survive[n].
type Rule struct {
	Birth   [9]bool
	Survive [9]bool
}

var (
	// Life is Conway's B3/S23.
	Life = MustParseRule("B3/S23")
	// Islands fills small gaps and erodes lone cells, producing blobby
	// landmasses after a few steps.
	Islands = MustParseRule("B5678/S45678")
)

// ParseRule reads "B3/S23" style notation. Either half may be empty.
func ParseRule(s string) (Rule, error) {
	var r Rule
	b, sv, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "/")
	if !ok || !strings.HasPrefix(b, "B") || !strings.HasPrefix(sv, "S") {
		return r, fmt.Errorf("seedca: rule %q is not in B.../S... form", s)
	}
	if err := digits(b[1:], &r.Birth); err != nil {
		return r, fmt.Errorf("seedca: rule %q: %w", s, err)
	}
	if err := digits(sv[1:], &r.Survive); err != nil {
		return r, fmt.Errorf("seedca: rule %q: %w", s, err)
	}
	return r, nil
}

// MustParseRule is ParseRule for literals.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func digits(s string, out *[9]bool) error {
	for _, c := range s {
		if c < '0' || c > '8' {
			return fmt.Errorf("bad neighbour count %q", c)
		}
		out[c-'0'] = true
	}
	return nil
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for n, on := range r.Birth {
		if on {
			sb.WriteByte(byte('0' + n))
		}
	}
	sb.WriteString("/S")
	for n, on := range r.Survive {
		if on {
			sb.WriteByte(byte('0' + n))
		}
	}
	return sb.String()
}

// Automaton steps a w×h binary mask. Without wrapping, cells beyond the
// edge count as dead.
type Automaton struct {
	w, h int
	rule Rule
	wrap bool
	cur  []uint8
	nxt  []uint8
}

// New returns an empty automaton.
func New(w, h int, rule Rule) *Automaton {
	cells := make([]uint8, w*h)
	return &Automaton{w: w, h: h, rule: rule, cur: cells, nxt: make([]uint8, len(cells))}
}

// SetWrap switches between toroidal and dead-edge neighbourhoods.
func (a *Automaton) SetWrap(wrap bool) { a.wrap = wrap }

// Size returns the mask dimensions.
func (a *Automaton) Size() (int, int) { return a.w, a.h }

// Cells exposes the current mask, row-major, 1 for live.
func (a *Automaton) Cells() []uint8 { return a.cur }

// Fill sets each cell live with probability chance.
func (a *Automaton) Fill(rng *core.RNG, chance float64) {
	for i := range a.cur {
		a.cur[i] = 0
		if rng.Float64() < chance {
			a.cur[i] = 1
		}
	}
}

// Step advances the mask by one generation.
func (a *Automaton) Step() {
	w, h := a.w, a.h
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := a.neighbors(x, y)
			idx := y*w + x
			a.nxt[idx] = 0
			if (a.cur[idx] == 1 && a.rule.Survive[n]) || (a.cur[idx] == 0 && a.rule.Birth[n]) {
				a.nxt[idx] = 1
			}
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
}

// Run applies n steps.
func (a *Automaton) Run(n int) {
	for range n {
		a.Step()
	}
}

func (a *Automaton) neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if a.wrap {
				nx = (nx + a.w) % a.w
				ny = (ny + a.h) % a.h
			} else if nx < 0 || ny < 0 || nx >= a.w || ny >= a.h {
				continue
			}
			n += int(a.cur[ny*a.w+nx])
		}
	}
	return n
}
