package synth

import "lterrain/pkg/lsystem"

// heightAt applies neighbour smoothing on top of the patch's own height.
// Neighbours are the four edge-adjacent finest cells; their heights are
// what their patches would produce at the same coordinate, so the result
// only depends on symbols and never on other synthesized samples.
func (s *Synthesizer) heightAt(u, v float64, i int, p *lsystem.Patch) float64 {
	h := s.patchHeight(u, v, i, p)
	f := p.SmoothFactor()
	if !p.HeightSmoothing() || f == 0 {
		return h
	}
	x, y := lsystem.CellAt(s.grid, u, v)
	sum, n := 0.0, 0
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := x+d[0], y+d[1]
		if !s.grid.InBounds(nx, ny) {
			continue
		}
		ni, np := s.patchFor(s.grid.At(nx, ny))
		if np == nil {
			continue
		}
		sum += s.patchHeight(u, v, ni, np)
		n++
	}
	if n == 0 {
		return h
	}
	return (1-f)*h + f*sum/float64(n)
}

// patchHeight maps the summed noise layers onto [MinHeight, MaxHeight].
// The sum is divided by MaxAmplitude, or by the total amplitude once that
// is larger, so one layer at full amplitude spans the whole band and
// quieter layers stay near the midpoint.
func (s *Synthesizer) patchHeight(u, v float64, i int, p *lsystem.Patch) float64 {
	nx, ny := u*s.cfg.NoiseScale, v*s.cfg.NoiseScale
	sum, norm := 0.0, 0.0
	for j, n := range p.Noise {
		if n == nil {
			continue
		}
		sum += n.Eval(s.field, nx, ny, heightSalt(i, j))
		norm += n.Amplitude()
	}
	t := 0.5 + 0.5*sum/max(norm, lsystem.MaxAmplitude)
	return p.MinHeight() + (p.MaxHeight()-p.MinHeight())*t
}

func heightSalt(patch, layer int) int64 {
	return int64(patch+1)<<20 | int64(layer+1)
}

func maskSalt(patch, weight int) int64 {
	return int64(patch+1)<<20 | 1<<19 | int64(weight+1)
}
