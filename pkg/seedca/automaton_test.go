package seedca

import (
	"slices"
	"testing"

	"lterrain/pkg/core"
)

func live(a *Automaton) [][2]int {
	w, _ := a.Size()
	var out [][2]int
	for i, c := range a.Cells() {
		if c == 1 {
			out = append(out, [2]int{i % w, i / w})
		}
	}
	return out
}

func TestBlinkerOscillation(t *testing.T) {
	a := New(5, 5, Life)
	a.SetWrap(true)
	w, _ := a.Size()
	for _, p := range [][2]int{{2, 1}, {2, 2}, {2, 3}} {
		a.Cells()[p[1]*w+p[0]] = 1
	}

	a.Step()
	if got, want := live(a), [][2]int{{1, 2}, {2, 2}, {3, 2}}; !slices.Equal(got, want) {
		t.Fatalf("after one step live = %v, want %v", got, want)
	}
	a.Step()
	if got, want := live(a), [][2]int{{2, 1}, {2, 2}, {2, 3}}; !slices.Equal(got, want) {
		t.Fatalf("after two steps live = %v, want %v", got, want)
	}
}

func TestIslandsFillsHolesAndDropsSpecks(t *testing.T) {
	a := New(7, 7, Islands)
	w, _ := a.Size()
	// A 5x5 block with a hole in the middle, plus a lone speck in a corner.
	for y := 1; y <= 5; y++ {
		for x := 1; x <= 5; x++ {
			a.Cells()[y*w+x] = 1
		}
	}
	a.Cells()[3*w+3] = 0
	a.Cells()[0] = 1

	a.Step()
	if a.Cells()[3*w+3] != 1 {
		t.Fatalf("hole with 8 live neighbours was not filled")
	}
	if a.Cells()[0] != 0 {
		t.Fatalf("lone corner cell survived")
	}
}

func TestDeadEdgesDoNotWrap(t *testing.T) {
	spread := MustParseRule("B1/S")
	a := New(4, 3, spread)
	a.Cells()[1*4+0] = 1
	a.Step()
	if a.Cells()[1*4+1] != 1 || a.Cells()[1*4+3] != 0 || a.Cells()[1*4+0] != 0 {
		t.Fatalf("dead-edge step = %v", a.Cells())
	}

	b := New(4, 3, spread)
	b.SetWrap(true)
	b.Cells()[1*4+0] = 1
	b.Step()
	if b.Cells()[1*4+3] != 1 || b.Cells()[0*4+3] != 1 {
		t.Fatalf("wrapped step = %v", b.Cells())
	}
}

func TestParseRule(t *testing.T) {
	if Life.String() != "B3/S23" || Islands.String() != "B5678/S45678" {
		t.Fatalf("round trip: %s %s", Life, Islands)
	}
	for _, bad := range []string{"", "B3S23", "S23/B3", "B9/S1", "Bx/S"} {
		if _, err := ParseRule(bad); err == nil {
			t.Fatalf("ParseRule(%q) accepted", bad)
		}
	}
}

func TestFillIsDeterministic(t *testing.T) {
	a, b := New(16, 16, Islands), New(16, 16, Islands)
	a.Fill(core.NewRNG(9), 0.5)
	b.Fill(core.NewRNG(9), 0.5)
	a.Run(3)
	b.Run(3)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatalf("same seed diverged")
	}
}
