package lsystem

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func randomGrid(r *rand.Rand, side int, alphabet string) *Grid {
	codes := make([]Code, side*side)
	for i := range codes {
		codes[i] = Code(alphabet[r.IntN(len(alphabet))])
	}
	g, err := GridFromCodes(side, codes)
	if err != nil {
		panic(err)
	}
	return g
}

func uniformBlock(t *testing.T, g *Grid, bx, by int, want Code) {
	t.Helper()
	for y := by * Dims; y < (by+1)*Dims; y++ {
		for x := bx * Dims; x < (bx+1)*Dims; x++ {
			if got := g.At(x, y); got != want {
				t.Fatalf("block (%d,%d) cell (%d,%d) = %s, want %s", bx, by, x, y, got, want)
			}
		}
	}
}

func TestExpandMultipliesSide(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	grow, _ := NewPropagateRule('A', 'B')
	for side := 1; side <= 6; side++ {
		g := randomGrid(r, side, "ABC")
		next := Expand([]*Rule{grow}, g)
		if next.Side() != side*Dims {
			t.Fatalf("side %d expanded to %d, want %d", side, next.Side(), side*Dims)
		}
	}
}

func TestExpandIdentityFallback(t *testing.T) {
	g := MustParseGrid(
		"AB",
		"BA",
	)
	grow, _ := NewPropagateRule('A', 'C')
	next := Expand([]*Rule{grow}, g)
	uniformBlock(t, next, 0, 0, 'C')
	uniformBlock(t, next, 1, 0, 'B')
	uniformBlock(t, next, 0, 1, 'B')
	uniformBlock(t, next, 1, 1, 'C')
}

func TestExpandWithoutRulesCopiesBlocks(t *testing.T) {
	g := MustParseGrid("Q")
	next := Expand(nil, g)
	if next.Count('Q') != Dims*Dims {
		t.Fatalf("expected %d Q cells, got %d", Dims*Dims, next.Count('Q'))
	}
}

func TestRulePrecedenceIsDeclarationOrder(t *testing.T) {
	g := MustParseGrid(
		"ABA",
		"AAA",
		"AAA",
	)
	restricted, _ := NewPropagateRule('A', 'C')
	restricted.SetNeighbor(0, -1, 'B')
	restricted.MatchNeighbors = true
	plain, _ := NewPropagateRule('A', 'D')

	next := Expand([]*Rule{restricted, plain}, g)
	uniformBlock(t, next, 1, 1, 'C')
	uniformBlock(t, next, 1, 2, 'D')

	next = Expand([]*Rule{plain, restricted}, g)
	uniformBlock(t, next, 1, 1, 'D')
}

func TestNeighbourBeyondEdgeMatches(t *testing.T) {
	r, _ := NewPropagateRule('A', 'C')
	if err := r.SetNeighborRows(
		"BBB",
		"BAB",
		"BBB",
	); err != nil {
		t.Fatalf("SetNeighborRows: %v", err)
	}
	g := MustParseGrid("A")
	got, ok := MatchRule([]*Rule{r}, g, 0, 0)
	if !ok || got != r {
		t.Fatalf("edge cell should match an all-B neighbourhood")
	}

	g = MustParseGrid(
		"AA",
		"AA",
	)
	if _, ok := MatchRule([]*Rule{r}, g, 0, 0); ok {
		t.Fatalf("in-bounds A neighbour must block a B requirement")
	}
}

func TestMatchRuleSkipsInvalidRules(t *testing.T) {
	broken := &Rule{MatchVal: 'A'}
	good, _ := NewPropagateRule('A', 'B')
	got, ok := MatchRule([]*Rule{broken, nil, good}, MustParseGrid("A"), 0, 0)
	if !ok || got != good {
		t.Fatalf("expected the valid rule to win, got %v", got)
	}
}

func TestReplacementWildcardInheritsParent(t *testing.T) {
	r, err := NewRule('A', MustParseGrid(
		"*BBB*",
		"BBBBB",
		"BB*BB",
		"BBBBB",
		"*BBB*",
	))
	if err != nil {
		t.Fatalf("NewRule: %v", err)
	}
	next := Expand([]*Rule{r}, MustParseGrid("A"))
	if next.Count(MatchAny) != 0 {
		t.Fatalf("wildcard written into expanded grid:\n%s", next)
	}
	for _, p := range [][2]int{{0, 0}, {4, 0}, {2, 2}, {0, 4}, {4, 4}} {
		if got := next.At(p[0], p[1]); got != 'A' {
			t.Fatalf("cell %v = %s, want A", p, got)
		}
	}
	if next.Count('B') != Dims*Dims-5 {
		t.Fatalf("expected %d B cells, got %d", Dims*Dims-5, next.Count('B'))
	}
}

func TestExpandParallelMatchesSerial(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	shore, _ := NewPropagateRule('A', 'C')
	shore.SetNeighbor(1, 0, 'B')
	shore.MatchNeighbors = true
	rules := []*Rule{shore}
	for _, c := range "ABC" {
		p, _ := NewPropagateRule(Code(c), Code(c))
		rules = append(rules, p)
	}
	g := randomGrid(r, 9, "ABC")
	want := Expand(rules, g)
	for _, workers := range []int{0, 1, 2, 4, 16} {
		if got := ExpandParallel(rules, g, workers); !got.Equal(want) {
			t.Fatalf("workers=%d result differs from serial expansion", workers)
		}
	}
}

func TestExpandIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	g := randomGrid(r, 4, "AB")
	split, _ := NewRule('A', MustParseGrid(
		"ABABA",
		"BABAB",
		"ABABA",
		"BABAB",
		"ABABA",
	))
	a := Expand([]*Rule{split}, g)
	b := Expand([]*Rule{split}, g)
	if !a.Equal(b) {
		t.Fatalf("expansion not deterministic")
	}
}

func TestPropagateTwiceEndToEnd(t *testing.T) {
	s := New()
	if err := s.AddSymbol(NewSymbol('A', "Plain")); err != nil {
		t.Fatalf("AddSymbol: %v", err)
	}
	r, _ := NewPropagateRule('A', 'A')
	s.AddRule(r)
	if err := s.SetSeed(MustParseGrid("A")); err != nil {
		t.Fatalf("SetSeed: %v", err)
	}
	chain := s.Regenerate(2)
	if chain.Len() != 3 {
		t.Fatalf("chain has %d levels, want 3", chain.Len())
	}
	finest := chain.Finest()
	if finest.Side() != Dims*Dims {
		t.Fatalf("finest side %d, want %d", finest.Side(), Dims*Dims)
	}
	if finest.Count('A') != Dims*Dims*Dims*Dims {
		t.Fatalf("finest grid not all A:\n%s", finest)
	}
}

func TestContactRulesFireOnAnyNeighbour(t *testing.T) {
	rules, err := NewContactRules('G', 'W', 'S')
	if err != nil {
		t.Fatalf("NewContactRules: %v", err)
	}
	if len(rules) != 8 {
		t.Fatalf("got %d rules, want 8", len(rules))
	}
	g := MustParseGrid(
		"GGGGGGG",
		"GWGGGGG",
		"GGGGGGG",
		"GGGGGGG",
		"GGGGGGG",
		"GGGGGGG",
		"GGGGGGG",
	)
	next := Expand(rules, g)
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			want := Code('G')
			switch {
			case x == 1 && y == 1:
				want = 'W'
			case x <= 2 && y <= 2:
				want = 'S'
			case x == 0 || y == 0 || x == 6 || y == 6:
				// Out-of-bounds neighbours match the contact symbol.
				want = 'S'
			}
			uniformBlock(t, next, x, y, want)
		}
	}
	if _, err := NewContactRules('G', MatchAny, 'S'); !errors.Is(err, ErrReservedSymbol) {
		t.Fatalf("expected ErrReservedSymbol, got %v", err)
	}
}

func TestContactRulesConvertBorderWithoutContact(t *testing.T) {
	rules, _ := NewContactRules('G', 'W', 'S')
	next := Expand(rules, MustParseGrid(
		"GGG",
		"GGG",
		"GGG",
	))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := Code('S')
			if x == 1 && y == 1 {
				want = 'G'
			}
			uniformBlock(t, next, x, y, want)
		}
	}
}
