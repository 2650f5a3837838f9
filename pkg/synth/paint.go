package synth

import "lterrain/pkg/lsystem"

// paint evaluates the patch's paint weights in order. Entries sharing a
// texture are summed into one LayerWeight; entries without a texture are
// skipped.
func (s *Synthesizer) paint(u, v float64, i int, p *lsystem.Patch) []LayerWeight {
	var out []LayerWeight
	nx, ny := u*s.cfg.NoiseScale, v*s.cfg.NoiseScale
	for k, w := range p.PaintWeights {
		if w == nil || w.Texture == nil {
			continue
		}
		weight := w.Weight
		if w.Mask != nil {
			n := w.Mask.Eval(s.field, nx, ny, maskSalt(i, k))
			weight *= featherMask(n, w.Threshold, w.Feather, w.AboveThreshold)
		}
		merged := false
		for j := range out {
			if out[j].Texture == w.Texture {
				out[j].Weight += weight
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, LayerWeight{Texture: w.Texture, Weight: weight})
		}
	}
	return out
}

// featherMask ramps linearly from 0 to 1 across [t-f, t+f], mirrored when
// masking below the threshold. With f == 0 it is a hard step that keeps
// the threshold value itself.
func featherMask(n, t, f float64, above bool) float64 {
	if f <= 0 {
		if (above && n >= t) || (!above && n <= t) {
			return 1
		}
		return 0
	}
	lo, hi := t-f, t+f
	switch {
	case n <= lo && above, n >= hi && !above:
		return 0
	case n >= hi && above, n <= lo && !above:
		return 1
	case above:
		return clamp01((n - lo) / (2 * f))
	}
	return clamp01((hi - n) / (2 * f))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
