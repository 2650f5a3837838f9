package lsystem

import (
	"errors"
	"fmt"
)

// Validate reports authoring problems: symbols missing from the palette,
// malformed rules, paint weights without a texture and scatters without a
// mesh. Synthesis tolerates all of these; the report exists for the
// authoring surface.
func (s *LSystem) Validate() error {
	var errs []error
	known := func(c Code) bool { return c == MatchAny || s.Symbols.Contains(c) }

	if s.seed == nil {
		errs = append(errs, errors.New("no seed grid"))
	} else {
		for _, c := range s.seed.Codes() {
			if !s.Symbols.Contains(c) {
				errs = append(errs, fmt.Errorf("seed grid: symbol %s: %w", c, ErrUnknownSymbol))
				break
			}
		}
	}
	for i, r := range s.Rules {
		if r == nil {
			errs = append(errs, fmt.Errorf("rule %d is nil", i))
			continue
		}
		if !r.Valid() {
			errs = append(errs, fmt.Errorf("rule %d (%s): %w", i, r, ErrReplacementSize))
			continue
		}
		if !known(r.MatchVal) {
			errs = append(errs, fmt.Errorf("rule %d (%s): match symbol %s: %w", i, r, r.MatchVal, ErrUnknownSymbol))
		}
		for _, c := range r.Replacement.Codes() {
			if !known(c) {
				errs = append(errs, fmt.Errorf("rule %d (%s): replacement symbol %s: %w", i, r, c, ErrUnknownSymbol))
				break
			}
		}
		for _, row := range r.Neighbors {
			for _, c := range row {
				if !known(c) {
					errs = append(errs, fmt.Errorf("rule %d (%s): neighbour symbol %s: %w", i, r, c, ErrUnknownSymbol))
				}
			}
		}
	}
	for i, p := range s.Patches {
		if p == nil {
			errs = append(errs, fmt.Errorf("patch %d is nil", i))
			continue
		}
		if !s.Symbols.Contains(p.MatchVal) {
			errs = append(errs, fmt.Errorf("patch %q: symbol %s: %w", p.Name, p.MatchVal, ErrUnknownSymbol))
		}
		for j, w := range p.PaintWeights {
			if w == nil || w.Texture == nil {
				errs = append(errs, fmt.Errorf("patch %q: paint weight %d has no texture", p.Name, j))
			}
		}
		for j, sc := range p.Scatters {
			if sc == nil || sc.Mesh == nil {
				errs = append(errs, fmt.Errorf("patch %q: scatter %d has no mesh", p.Name, j))
			}
		}
	}
	return errors.Join(errs...)
}
