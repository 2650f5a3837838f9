package app

import "lterrain/pkg/lsystem"

// lodCells returns the cells of level i of chain, clamping i into range.
func lodCells(chain *lsystem.Chain, i int) ([]uint8, int, int) {
	if chain == nil || chain.Len() == 0 {
		return nil, 0, 0
	}
	i = clampLoD(i, chain.Len())
	g := chain.LoD(i)
	codes := g.Codes()
	cells := make([]uint8, len(codes))
	for j, c := range codes {
		cells[j] = uint8(c)
	}
	return cells, g.Side(), i
}

func clampLoD(i, n int) int {
	return min(max(i, 0), n-1)
}

// nextSlide advances the slideshow, wrapping back to the seed level.
func nextSlide(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}
