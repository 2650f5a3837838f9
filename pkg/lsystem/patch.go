package lsystem

import "slices"

// HeightLimit bounds authored patch heights on both sides.
const HeightLimit = 250.0

// Patch is the authored surface behaviour bound to one symbol: a height
// band, noise layers that move the height inside it, texture paint weights
// and object scatters. The first paint weight is conventionally the base
// layer.
type Patch struct {
	Name     string
	MatchVal Code

	minHeight    float64
	maxHeight    float64
	smooth       bool
	smoothFactor float64

	Noise        []*Noise
	PaintWeights []*PaintWeight
	Scatters     []*ObjectScatter
}

// NewPatch returns a patch for match with smoothing enabled at 0.5 and a
// flat [0, 0] height band.
func NewPatch(name string, match Code) *Patch {
	if name == "" {
		name = "default patch"
	}
	return &Patch{Name: name, MatchVal: match, smooth: true, smoothFactor: 0.5}
}

func (p *Patch) MinHeight() float64 { return p.minHeight }
func (p *Patch) MaxHeight() float64 { return p.maxHeight }

// MidHeight is the centre of the height band.
func (p *Patch) MidHeight() float64 { return (p.minHeight + p.maxHeight) / 2 }

// SetMinHeight stores h clamped to [-HeightLimit, MaxHeight].
func (p *Patch) SetMinHeight(h float64) float64 {
	p.minHeight = clamp(h, -HeightLimit, p.maxHeight)
	return p.minHeight
}

// SetMaxHeight stores h clamped to [MinHeight, HeightLimit].
func (p *Patch) SetMaxHeight(h float64) float64 {
	p.maxHeight = clamp(h, p.minHeight, HeightLimit)
	return p.maxHeight
}

// SetHeightRange sets both bounds at once. lo wins: when hi < lo the band
// collapses to lo.
func (p *Patch) SetHeightRange(lo, hi float64) {
	p.minHeight = clamp(lo, -HeightLimit, HeightLimit)
	p.maxHeight = clamp(hi, p.minHeight, HeightLimit)
}

// HeightSmoothing reports whether heights blend with neighbouring patches.
func (p *Patch) HeightSmoothing() bool { return p.smooth }

// SmoothFactor returns the neighbour blend strength in [0, 1].
func (p *Patch) SmoothFactor() float64 { return p.smoothFactor }

// SetHeightSmoothing toggles neighbour blending.
func (p *Patch) SetHeightSmoothing(on bool) { p.smooth = on }

// SetSmoothFactor stores f clamped to [0, 1].
func (p *Patch) SetSmoothFactor(f float64) float64 {
	p.smoothFactor = clamp(f, 0, 1)
	return p.smoothFactor
}

// AddNoise appends a layer and returns it.
func (p *Patch) AddNoise(n *Noise) *Noise {
	p.Noise = append(p.Noise, n)
	return n
}

// RemoveNoise deletes a layer and reports whether it was present.
func (p *Patch) RemoveNoise(n *Noise) bool {
	return removeItem(&p.Noise, n)
}

// AddPaintWeight appends a paint weight and returns it.
func (p *Patch) AddPaintWeight(w *PaintWeight) *PaintWeight {
	p.PaintWeights = append(p.PaintWeights, w)
	return w
}

// RemovePaintWeight deletes a paint weight and reports whether it was present.
func (p *Patch) RemovePaintWeight(w *PaintWeight) bool {
	return removeItem(&p.PaintWeights, w)
}

// AddScatter appends a scatter and returns it.
func (p *Patch) AddScatter(s *ObjectScatter) *ObjectScatter {
	p.Scatters = append(p.Scatters, s)
	return s
}

// RemoveScatter deletes a scatter and reports whether it was present.
func (p *Patch) RemoveScatter(s *ObjectScatter) bool {
	return removeItem(&p.Scatters, s)
}

func removeItem[T comparable](list *[]T, item T) bool {
	i := slices.Index(*list, item)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}
