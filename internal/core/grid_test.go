package core

import "testing"

func TestByteGridClamp(t *testing.T) {
	g := NewByteGrid(4, 3)
	cases := []struct{ x, y, wx, wy int }{
		{-1, -1, 0, 0},
		{4, 3, 3, 2},
		{2, 1, 2, 1},
		{100, -5, 3, 0},
	}
	for _, c := range cases {
		x, y := g.Clamp(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Fatalf("Clamp(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestByteGridFillRectAndClone(t *testing.T) {
	g := NewByteGrid(5, 5)
	g.FillRect(1, 2, 3, 2, 7)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(0)
			if x >= 1 && x < 4 && y >= 2 && y < 4 {
				want = 7
			}
			if got := g.At(x, y); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
	c := g.Clone()
	c.Set(0, 0, 9)
	if g.At(0, 0) != 0 {
		t.Fatal("Clone shares storage with the original grid")
	}
	if !g.InBounds(4, 4) || g.InBounds(5, 0) || g.InBounds(0, -1) {
		t.Fatal("InBounds misreports grid edges")
	}
}
