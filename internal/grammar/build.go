package grammar

import (
	"errors"
	"fmt"

	"lterrain/pkg/lsystem"
	"lterrain/pkg/noise"
)

// ErrBadCode is returned for symbol fields that are not exactly one
// character.
var ErrBadCode = errors.New("grammar: symbol must be a single character")

// Build turns the document into a system with its seed installed. The
// chain is not regenerated; callers pick the depth. Structural problems
// (bad codes, unknown texture or mesh names, malformed grids) fail here;
// authoring problems are left for LSystem.Validate.
func (d *Document) Build() (*lsystem.LSystem, error) {
	sys := lsystem.New()
	for i, sd := range d.Symbols {
		c, err := code(sd.Code)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
		sym := lsystem.Symbol{Code: c, Name: sd.Name, Texture: lsystem.AssetRef(sd.Texture)}
		if err := sys.AddSymbol(sym); err != nil {
			return nil, fmt.Errorf("symbol %d: %w", i, err)
		}
	}

	textures := map[string]*lsystem.GroundTexture{}
	for _, td := range d.Textures {
		textures[td.Name] = sys.AddGroundTexture(&lsystem.GroundTexture{
			Name:      td.Name,
			LayerInfo: lsystem.AssetRef(td.LayerInfo),
			Texture:   lsystem.AssetRef(td.Texture),
			NormalMap: lsystem.AssetRef(td.NormalMap),
		})
	}
	meshes := map[string]*lsystem.MeshAsset{}
	for _, md := range d.Meshes {
		meshes[md.Name] = sys.AddMeshAsset(&lsystem.MeshAsset{
			Name:        md.Name,
			FoliageType: lsystem.AssetRef(md.FoliageType),
			Object:      lsystem.AssetRef(md.Object),
		})
	}

	for i, rd := range d.Rules {
		r, err := rd.build()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		sys.AddRule(r)
	}
	for i, pd := range d.Patches {
		p, err := pd.build(textures, meshes)
		if err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
		sys.AddPatch(p)
	}

	if len(d.Seed) > 0 {
		seed, err := lsystem.ParseGrid(d.Seed...)
		if err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
		if err := sys.SetSeed(seed); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

func (rd RuleDoc) build() (*lsystem.Rule, error) {
	match, err := code(rd.Match)
	if err != nil {
		return nil, err
	}
	var r *lsystem.Rule
	switch {
	case rd.Propagate != "" && len(rd.Replacement) > 0:
		return nil, errors.New("rule sets both propagate and replacement")
	case rd.Propagate != "":
		target, err := code(rd.Propagate)
		if err != nil {
			return nil, err
		}
		if r, err = lsystem.NewPropagateRule(match, target); err != nil {
			return nil, err
		}
	default:
		g, err := lsystem.ParseGrid(rd.Replacement...)
		if err != nil {
			return nil, err
		}
		if r, err = lsystem.NewRule(match, g); err != nil {
			return nil, err
		}
	}
	if rd.Name != "" {
		r.Name = rd.Name
	}
	if len(rd.Neighbors) > 0 {
		if err := r.SetNeighborRows(rd.Neighbors...); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (pd PatchDoc) build(textures map[string]*lsystem.GroundTexture, meshes map[string]*lsystem.MeshAsset) (*lsystem.Patch, error) {
	c, err := code(pd.Symbol)
	if err != nil {
		return nil, err
	}
	p := lsystem.NewPatch(pd.Name, c)
	p.SetHeightRange(pd.MinHeight, pd.MaxHeight)
	if pd.Smoothing != nil {
		p.SetHeightSmoothing(*pd.Smoothing)
	}
	if pd.SmoothFactor != nil {
		p.SetSmoothFactor(*pd.SmoothFactor)
	}
	for _, nd := range pd.Noise {
		n, err := nd.build()
		if err != nil {
			return nil, err
		}
		p.AddNoise(n)
	}
	for _, wd := range pd.Paint {
		tex, ok := textures[wd.Texture]
		if !ok {
			return nil, fmt.Errorf("paint: unknown texture %q", wd.Texture)
		}
		w := lsystem.NewPaintWeight(tex)
		if wd.Weight != nil {
			w.SetWeight(*wd.Weight)
		}
		if wd.Mask != nil {
			if w.Mask, err = wd.Mask.build(); err != nil {
				return nil, err
			}
		}
		w.AboveThreshold = !wd.Below
		w.Threshold = wd.Threshold
		w.SetFeather(wd.Feather)
		p.AddPaintWeight(w)
	}
	for _, sd := range pd.Scatter {
		mesh, ok := meshes[sd.Mesh]
		if !ok {
			return nil, fmt.Errorf("scatter: unknown mesh %q", sd.Mesh)
		}
		s := lsystem.NewObjectScatter(mesh)
		if sd.MaxRadius != nil {
			s.SetMaxRadius(*sd.MaxRadius)
		}
		if sd.MinRadius != nil {
			s.SetMinRadius(*sd.MinRadius)
		}
		p.AddScatter(s)
	}
	return p, nil
}

func (nd NoiseDoc) build() (*lsystem.Noise, error) {
	kind, err := noise.ParseKind(nd.Kind)
	if err != nil {
		return nil, err
	}
	n := lsystem.NewNoise(kind)
	if nd.Frequency != nil {
		n.SetFrequency(*nd.Frequency)
	}
	if nd.Amplitude != nil {
		n.SetAmplitude(*nd.Amplitude)
	}
	return n, nil
}

func code(s string) (lsystem.Code, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%q: %w", s, ErrBadCode)
	}
	return lsystem.Code(s[0]), nil
}
