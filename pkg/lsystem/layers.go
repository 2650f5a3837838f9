package lsystem

import (
	"lterrain/pkg/noise"
)

// Noise layer parameter bounds and defaults.
const (
	MinFrequency     = 0.001
	MaxFrequency     = 10.0
	MaxAmplitude     = 10.0
	DefaultFrequency = 1.0
	DefaultAmplitude = 2.0
)

// Noise is one scalar noise layer of a patch, also used as a paint mask.
type Noise struct {
	kind      noise.Kind
	frequency float64
	amplitude float64
}

// NewNoise returns a layer of the given kind with default parameters.
func NewNoise(kind noise.Kind) *Noise {
	return &Noise{kind: kind, frequency: DefaultFrequency, amplitude: DefaultAmplitude}
}

func (n *Noise) Kind() noise.Kind   { return n.kind }
func (n *Noise) Frequency() float64 { return n.frequency }
func (n *Noise) Amplitude() float64 { return n.amplitude }

// SetKind switches the variant and resets frequency and amplitude.
func (n *Noise) SetKind(kind noise.Kind) {
	*n = *NewNoise(kind)
}

// SetFrequency stores f clamped to [MinFrequency, MaxFrequency] and
// returns the stored value.
func (n *Noise) SetFrequency(f float64) float64 {
	n.frequency = clamp(f, MinFrequency, MaxFrequency)
	return n.frequency
}

// SetAmplitude stores a clamped to [0, MaxAmplitude] and returns the
// stored value.
func (n *Noise) SetAmplitude(a float64) float64 {
	n.amplitude = clamp(a, 0, MaxAmplitude)
	return n.amplitude
}

// Sample evaluates the unscaled layer at (x, y), in [-1, 1].
func (n *Noise) Sample(f *noise.Field, x, y float64, salt int64) float64 {
	return f.Sample(n.kind, x, y, n.frequency, salt)
}

// Eval evaluates the layer scaled by its amplitude.
func (n *Noise) Eval(f *noise.Field, x, y float64, salt int64) float64 {
	return n.amplitude * n.Sample(f, x, y, salt)
}

// GroundTexture is a paintable terrain layer. All handles are opaque.
type GroundTexture struct {
	Name      string
	LayerInfo AssetRef
	Texture   AssetRef
	NormalMap AssetRef
}

// MeshAsset is a placeable mesh. All handles are opaque.
type MeshAsset struct {
	Name        string
	FoliageType AssetRef
	Object      AssetRef
}

// PaintWeight contributes a ground texture to a patch, optionally masked
// by a noise layer. With a mask the texture is kept where the mask is above
// (or below) Threshold, ramping linearly over ±Feather.
type PaintWeight struct {
	Texture        *GroundTexture
	Weight         float64
	Mask           *Noise
	AboveThreshold bool
	Threshold      float64
	Feather        float64
}

// NewPaintWeight returns an unmasked, full-weight entry for tex.
func NewPaintWeight(tex *GroundTexture) *PaintWeight {
	return &PaintWeight{Texture: tex, Weight: 1, AboveThreshold: true}
}

// SetWeight stores w clamped to [0, 1].
func (p *PaintWeight) SetWeight(w float64) float64 {
	p.Weight = clamp(w, 0, 1)
	return p.Weight
}

// SetFeather stores a non-negative feather width.
func (p *PaintWeight) SetFeather(f float64) float64 {
	p.Feather = max(f, 0)
	return p.Feather
}

// Scatter radius bounds and defaults.
const (
	MinScatterRadius = 0.01
	DefaultMaxRadius = 2.0
	DefaultMinRadius = 1.0
)

// ObjectScatter controls how a mesh is distributed over a patch. MinRadius
// is the smallest allowed spacing between instances; MaxRadius is the
// radius within which an instance is expected.
type ObjectScatter struct {
	Mesh      *MeshAsset
	maxRadius float64
	minRadius float64
}

// NewObjectScatter returns a scatter for mesh with default radii.
func NewObjectScatter(mesh *MeshAsset) *ObjectScatter {
	return &ObjectScatter{Mesh: mesh, maxRadius: DefaultMaxRadius, minRadius: DefaultMinRadius}
}

func (s *ObjectScatter) MinRadius() float64 { return s.minRadius }
func (s *ObjectScatter) MaxRadius() float64 { return s.maxRadius }

// SetMinRadius stores r and raises MaxRadius if it would fall below it.
func (s *ObjectScatter) SetMinRadius(r float64) float64 {
	s.minRadius = max(r, MinScatterRadius)
	if s.maxRadius < s.minRadius {
		s.maxRadius = s.minRadius
	}
	return s.minRadius
}

// SetMaxRadius stores r and lowers MinRadius if it would exceed it.
func (s *ObjectScatter) SetMaxRadius(r float64) float64 {
	s.maxRadius = max(r, MinScatterRadius)
	if s.minRadius > s.maxRadius {
		s.minRadius = s.maxRadius
	}
	return s.maxRadius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
