package lsystem

import "fmt"

// Code is the single-character identity of a symbol.
type Code byte

// MatchAny is the wildcard. It matches every symbol in neighbourhood
// comparisons and is never written into a grid produced by expansion.
const MatchAny Code = 0

// wildcardChar is how MatchAny is spelled in textual grids.
const wildcardChar = '*'

// String renders the code as its character, or "*" for the wildcard.
func (c Code) String() string {
	if c == MatchAny {
		return string(rune(wildcardChar))
	}
	return string(rune(c))
}

// Reserved reports whether the code may not name a palette symbol.
func (c Code) Reserved() bool { return c == MatchAny || c == wildcardChar }

// AssetRef is an opaque handle to an external texture, mesh or layer asset.
// The core stores and forwards it without interpreting it.
type AssetRef string

// Symbol is one letter of the grammar alphabet.
type Symbol struct {
	Code    Code
	Name    string
	Texture AssetRef
}

// NewSymbol returns a symbol with the given character and display name.
func NewSymbol(c byte, name string) Symbol {
	return Symbol{Code: Code(c), Name: name}
}

// MatchAnySymbol returns the wildcard as a symbol value.
func MatchAnySymbol() Symbol {
	return Symbol{Code: MatchAny, Name: "Any"}
}

// Palette is the ordered alphabet usable in grids and rules.
type Palette struct {
	symbols []Symbol
}

// Add appends s to the palette.
func (p *Palette) Add(s Symbol) error {
	if s.Code.Reserved() {
		return fmt.Errorf("add symbol %q: %w", s.Name, ErrReservedSymbol)
	}
	if p.Index(s.Code) >= 0 {
		return fmt.Errorf("add symbol %s: %w", s.Code, ErrDuplicateSymbol)
	}
	p.symbols = append(p.symbols, s)
	return nil
}

// Remove deletes the symbol with the given code and reports whether it existed.
func (p *Palette) Remove(c Code) bool {
	i := p.Index(c)
	if i < 0 {
		return false
	}
	p.symbols = append(p.symbols[:i], p.symbols[i+1:]...)
	return true
}

// Update replaces the name and texture of an existing symbol. The code is
// the symbol's identity and cannot change.
func (p *Palette) Update(s Symbol) error {
	i := p.Index(s.Code)
	if i < 0 {
		return fmt.Errorf("update symbol %s: %w", s.Code, ErrUnknownSymbol)
	}
	p.symbols[i] = s
	return nil
}

// Lookup returns the symbol for a code.
func (p *Palette) Lookup(c Code) (Symbol, bool) {
	if c == MatchAny {
		return MatchAnySymbol(), true
	}
	if i := p.Index(c); i >= 0 {
		return p.symbols[i], true
	}
	return Symbol{}, false
}

// Index returns the palette position of c, or -1.
func (p *Palette) Index(c Code) int {
	for i := range p.symbols {
		if p.symbols[i].Code == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is part of the palette.
func (p *Palette) Contains(c Code) bool { return p.Index(c) >= 0 }

// Len returns the number of symbols.
func (p *Palette) Len() int { return len(p.symbols) }

// Symbols returns a copy of the palette in order.
func (p *Palette) Symbols() []Symbol {
	out := make([]Symbol, len(p.symbols))
	copy(out, p.symbols)
	return out
}

// Clear removes every symbol.
func (p *Palette) Clear() { p.symbols = nil }
