package grammar

import (
	"lterrain/pkg/lsystem"
)

// FromSystem captures sys as a document that Build turns back into an
// equivalent system. Rules whose replacement is a single symbol are
// written in the short propagate form.
func FromSystem(sys *lsystem.LSystem, depth int) *Document {
	d := &Document{Depth: depth}
	for _, s := range sys.Symbols.Symbols() {
		d.Symbols = append(d.Symbols, SymbolDoc{Code: string(rune(s.Code)), Name: s.Name, Texture: string(s.Texture)})
	}
	for _, t := range sys.GroundTextures {
		d.Textures = append(d.Textures, TextureDoc{
			Name:      t.Name,
			LayerInfo: string(t.LayerInfo),
			Texture:   string(t.Texture),
			NormalMap: string(t.NormalMap),
		})
	}
	for _, m := range sys.MeshAssets {
		d.Meshes = append(d.Meshes, MeshDoc{Name: m.Name, FoliageType: string(m.FoliageType), Object: string(m.Object)})
	}
	for _, r := range sys.Rules {
		if !r.Valid() {
			continue
		}
		rd := RuleDoc{Name: r.Name, Match: string(rune(r.MatchVal))}
		if c, ok := uniform(r.Replacement); ok {
			rd.Propagate = string(rune(c))
		} else {
			rd.Replacement = rows(r.Replacement)
		}
		if r.MatchNeighbors {
			for dy := -1; dy <= 1; dy++ {
				row := make([]byte, 3)
				for dx := -1; dx <= 1; dx++ {
					row[dx+1] = cellChar(r.Neighbor(dx, dy))
				}
				rd.Neighbors = append(rd.Neighbors, string(row))
			}
		}
		d.Rules = append(d.Rules, rd)
	}
	for _, p := range sys.Patches {
		if p != nil {
			d.Patches = append(d.Patches, patchDoc(p))
		}
	}
	if seed := sys.Seed(); seed != nil {
		d.Seed = rows(seed)
	}
	return d
}

func patchDoc(p *lsystem.Patch) PatchDoc {
	smooth, factor := p.HeightSmoothing(), p.SmoothFactor()
	pd := PatchDoc{
		Name:         p.Name,
		Symbol:       string(rune(p.MatchVal)),
		MinHeight:    p.MinHeight(),
		MaxHeight:    p.MaxHeight(),
		Smoothing:    &smooth,
		SmoothFactor: &factor,
	}
	for _, n := range p.Noise {
		if n != nil {
			pd.Noise = append(pd.Noise, noiseDoc(n))
		}
	}
	for _, w := range p.PaintWeights {
		if w == nil || w.Texture == nil {
			continue
		}
		weight := w.Weight
		wd := PaintDoc{Texture: w.Texture.Name, Weight: &weight, Below: !w.AboveThreshold, Threshold: w.Threshold, Feather: w.Feather}
		if w.Mask != nil {
			m := noiseDoc(w.Mask)
			wd.Mask = &m
		}
		pd.Paint = append(pd.Paint, wd)
	}
	for _, s := range p.Scatters {
		if s == nil || s.Mesh == nil {
			continue
		}
		lo, hi := s.MinRadius(), s.MaxRadius()
		pd.Scatter = append(pd.Scatter, ScatterDoc{Mesh: s.Mesh.Name, MinRadius: &lo, MaxRadius: &hi})
	}
	return pd
}

func noiseDoc(n *lsystem.Noise) NoiseDoc {
	f, a := n.Frequency(), n.Amplitude()
	return NoiseDoc{Kind: n.Kind().String(), Frequency: &f, Amplitude: &a}
}

func uniform(g *lsystem.Grid) (lsystem.Code, bool) {
	codes := g.Codes()
	for _, c := range codes {
		if c != codes[0] || c == lsystem.MatchAny {
			return 0, false
		}
	}
	return codes[0], len(codes) > 0
}

func rows(g *lsystem.Grid) []string {
	side := g.Side()
	out := make([]string, side)
	for y := range side {
		row := make([]byte, side)
		for x := range side {
			row[x] = cellChar(g.At(x, y))
		}
		out[y] = string(row)
	}
	return out
}

func cellChar(c lsystem.Code) byte {
	if c == lsystem.MatchAny {
		return '*'
	}
	return byte(c)
}
