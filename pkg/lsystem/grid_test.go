package lsystem

import (
	"errors"
	"slices"
	"testing"
)

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid(
		"AB*",
		"CDE",
		"FGH",
	)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	want := []Code{'A', 'B', MatchAny, 'C', 'D', 'E', 'F', 'G', 'H'}
	if !slices.Equal(g.Codes(), want) {
		t.Fatalf("codes = %v, want %v", g.Codes(), want)
	}
	if g.String() != "AB*\nCDE\nFGH" {
		t.Fatalf("String() = %q", g.String())
	}
}

func TestParseGridRejectsNonSquare(t *testing.T) {
	if _, err := ParseGrid("AB", "C"); !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize, got %v", err)
	}
	if _, err := ParseGrid(); !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize for empty grid, got %v", err)
	}
	if _, err := GridFromCodes(2, []Code{'A'}); !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize, got %v", err)
	}
}

func TestSymbolAtBoundaries(t *testing.T) {
	g := MustParseGrid(
		"ABCDE",
		"FGHIJ",
		"KLMNO",
		"PQRST",
		"UVWXY",
	)
	cases := []struct {
		u, v float64
		want Code
	}{
		{0, 0, 'A'},
		{1, 1, 'Y'},
		{1, 0, 'E'},
		{0.5, 0.5, 'M'},
		{0.19, 0.21, 'F'},
		{-3, 0.99, 'U'},
		{7, -1, 'E'},
	}
	for _, c := range cases {
		if got := SymbolAt(g, c.u, c.v); got != c.want {
			t.Fatalf("SymbolAt(%v,%v) = %s, want %s", c.u, c.v, got, c.want)
		}
	}
	x, y := CellAt(g, 1, 1)
	if x != g.Side()-1 || y != g.Side()-1 {
		t.Fatalf("CellAt(1,1) = (%d,%d), want (%d,%d)", x, y, g.Side()-1, g.Side()-1)
	}
}

func TestPaletteErrors(t *testing.T) {
	var p Palette
	if err := p.Add(NewSymbol('A', "Plain")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := p.Add(NewSymbol('A', "Again")); !errors.Is(err, ErrDuplicateSymbol) {
		t.Fatalf("expected ErrDuplicateSymbol, got %v", err)
	}
	if err := p.Add(MatchAnySymbol()); !errors.Is(err, ErrReservedSymbol) {
		t.Fatalf("expected ErrReservedSymbol, got %v", err)
	}
	if err := p.Add(NewSymbol('*', "Star")); !errors.Is(err, ErrReservedSymbol) {
		t.Fatalf("expected ErrReservedSymbol for '*', got %v", err)
	}
	if err := p.Update(NewSymbol('Z', "Missing")); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
	if s, ok := p.Lookup(MatchAny); !ok || s.Code != MatchAny {
		t.Fatalf("wildcard lookup failed")
	}
	if !p.Remove('A') || p.Len() != 0 {
		t.Fatalf("Remove did not drop the symbol")
	}
}
