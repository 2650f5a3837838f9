package synth

import (
	"errors"
	"fmt"
	"math"

	"lterrain/pkg/lsystem"

	"golang.org/x/sync/errgroup"
)

// ErrBufferSize is returned when output buffers disagree on dimensions.
var ErrBufferSize = errors.New("synth: output buffer size mismatch")

// Heightmap is a caller-owned row-major height buffer.
type Heightmap struct {
	W, H int
	Data []float64
}

// NewHeightmap allocates a w×h heightmap.
func NewHeightmap(w, h int) *Heightmap {
	return &Heightmap{W: w, H: h, Data: make([]float64, w*h)}
}

// At returns the height at (x, y).
func (m *Heightmap) At(x, y int) float64 { return m.Data[y*m.W+x] }

// Range returns the lowest and highest stored heights.
func (m *Heightmap) Range() (lo, hi float64) {
	if len(m.Data) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range m.Data {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// Weightmaps holds one row-major weight buffer per ground texture, in the
// order of Textures.
type Weightmaps struct {
	W, H     int
	Textures []*lsystem.GroundTexture
	Data     [][]float64
}

// NewWeightmaps allocates a w×h buffer for every texture.
func NewWeightmaps(w, h int, textures []*lsystem.GroundTexture) *Weightmaps {
	wm := &Weightmaps{W: w, H: h, Textures: textures, Data: make([][]float64, len(textures))}
	for i := range wm.Data {
		wm.Data[i] = make([]float64, w*h)
	}
	return wm
}

// Layer returns the buffer for tex, or nil when it is not tracked.
func (wm *Weightmaps) Layer(tex *lsystem.GroundTexture) []float64 {
	for i, t := range wm.Textures {
		if t == tex {
			return wm.Data[i]
		}
	}
	return nil
}

func (wm *Weightmaps) write(idx int, layers []LayerWeight) {
	for i, t := range wm.Textures {
		w := 0.0
		for _, l := range layers {
			if l.Texture == t {
				w = l.Weight
				break
			}
		}
		wm.Data[i][idx] = w
	}
}

// SynthesizeGrid samples a regular grid spanning [0, 1]² and writes into
// the supplied buffers, either of which may be nil. Rows run in parallel;
// every slot is written exactly once and nothing is read back. Placements
// are returned in row order, each one reported by exactly one sample.
func (s *Synthesizer) SynthesizeGrid(hm *Heightmap, wm *Weightmaps) ([]Placement, error) {
	w, h, err := gridSize(hm, wm)
	if err != nil {
		return nil, err
	}
	rows := make([][]Placement, h)
	var eg errgroup.Group
	eg.SetLimit(s.cfg.Workers)
	for y := 0; y < h; y++ {
		eg.Go(func() error {
			v := axisCoord(y, h)
			fz := footprint(y, h, s.cfg.Extent)
			for x := 0; x < w; x++ {
				smp := s.sample(axisCoord(x, w), v, footprint(x, w, s.cfg.Extent), fz)
				idx := y*w + x
				if hm != nil {
					hm.Data[idx] = smp.Height
				}
				if wm != nil {
					wm.write(idx, smp.Layers)
				}
				rows[y] = append(rows[y], smp.Placements...)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var out []Placement
	for _, r := range rows {
		out = append(out, r...)
	}
	return out, nil
}

func gridSize(hm *Heightmap, wm *Weightmaps) (int, int, error) {
	switch {
	case hm == nil && wm == nil:
		return 0, 0, fmt.Errorf("synthesize grid: no output buffers: %w", ErrBufferSize)
	case hm != nil && len(hm.Data) != hm.W*hm.H:
		return 0, 0, fmt.Errorf("heightmap %dx%d holds %d values: %w", hm.W, hm.H, len(hm.Data), ErrBufferSize)
	case hm != nil && wm != nil && (hm.W != wm.W || hm.H != wm.H):
		return 0, 0, fmt.Errorf("heightmap %dx%d, weightmaps %dx%d: %w", hm.W, hm.H, wm.W, wm.H, ErrBufferSize)
	}
	if wm != nil {
		for i, d := range wm.Data {
			if len(d) != wm.W*wm.H {
				return 0, 0, fmt.Errorf("weightmap %d holds %d values: %w", i, len(d), ErrBufferSize)
			}
		}
		if len(wm.Data) != len(wm.Textures) {
			return 0, 0, fmt.Errorf("weightmaps: %d buffers for %d textures: %w", len(wm.Data), len(wm.Textures), ErrBufferSize)
		}
	}
	if hm != nil {
		return hm.W, hm.H, nil
	}
	return wm.W, wm.H, nil
}

func axisCoord(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
