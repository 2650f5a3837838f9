package synth

import (
	"math"

	"lterrain/pkg/core"
	"lterrain/pkg/lsystem"

	"github.com/go-gl/mathgl/mgl32"
)

// Placement is one scattered mesh instance in world space. Y is up; X and
// Z follow u and v scaled by the terrain extent.
type Placement struct {
	Mesh      *lsystem.MeshAsset
	Patch     *lsystem.Patch
	Scatter   *lsystem.ObjectScatter
	Position  mgl32.Vec3
	Yaw       float32
	Transform mgl32.Mat4
}

// Scatter placement runs on a world-space lattice whose cell size is the
// scatter's MaxRadius. Every lattice cell proposes one candidate with a
// hashed jitter and a hashed priority. A candidate is valid when it lands
// on a cell owned by the scatter's patch, and accepted when no valid
// candidate of the same scatter within MinRadius has a higher priority.
// Two accepted candidates can therefore never be closer than MinRadius,
// and acceptance depends only on the seed and the grid, never on the order
// samples are visited.
type candidate struct {
	cx, cz   int64
	x, z     float64
	priority uint64
	yaw      float64
}

type span struct{ lo, hi float64 }

func (s span) contains(v float64) bool { return v >= s.lo && v < s.hi }

// footprint is the world interval owned by sample i of an n-sample axis.
// Adjacent footprints share their boundary exactly, so every position on
// [0, extent] belongs to one sample.
func footprint(i, n int, extent float64) span {
	if n <= 1 {
		return span{math.Inf(-1), math.Inf(1)}
	}
	step := float64(n - 1)
	return span{
		lo: (float64(i) - 0.5) / step * extent,
		hi: (float64(i) + 0.5) / step * extent,
	}
}

func nearestIndex(u float64, n int) int {
	if n <= 1 || math.IsNaN(u) {
		return 0
	}
	i := int(math.Round(min(max(u, 0), 1) * float64(n-1)))
	return min(max(i, 0), n-1)
}

func scatterSeed(seed int64, patch, scatter int) int64 {
	return core.Split(core.Split(seed, int64(patch+1)), int64(scatter+1))
}

func (s *Synthesizer) candidateAt(sc *lsystem.ObjectScatter, seed int64, cx, cz int64) candidate {
	cell := sc.MaxRadius()
	return candidate{
		cx:       cx,
		cz:       cz,
		x:        (float64(cx) + core.Unit(core.Hash3(cx, cz, 0, seed))) * cell,
		z:        (float64(cz) + core.Unit(core.Hash3(cx, cz, 1, seed))) * cell,
		priority: core.Hash3(cx, cz, 2, seed),
		yaw:      core.Unit(core.Hash3(cx, cz, 3, seed)) * 2 * math.Pi,
	}
}

// valid reports whether the candidate lies on the terrain over a cell whose
// patch is owner.
func (s *Synthesizer) valid(c candidate, owner *lsystem.Patch) bool {
	e := s.cfg.Extent
	if c.x < 0 || c.x > e || c.z < 0 || c.z > e {
		return false
	}
	_, p := s.patchFor(lsystem.SymbolAt(s.grid, c.x/e, c.z/e))
	return p == owner
}

func outranks(a, b candidate) bool {
	if a.priority != b.priority {
		return a.priority > b.priority
	}
	if a.cx != b.cx {
		return a.cx < b.cx
	}
	return a.cz < b.cz
}

// accepted assumes c is valid. MinRadius never exceeds the lattice cell
// size, so conflicting candidates are always in the 3×3 block around c.
func (s *Synthesizer) accepted(c candidate, sc *lsystem.ObjectScatter, seed int64, owner *lsystem.Patch) bool {
	r := sc.MinRadius()
	for dz := int64(-1); dz <= 1; dz++ {
		for dx := int64(-1); dx <= 1; dx++ {
			if dx == 0 && dz == 0 {
				continue
			}
			o := s.candidateAt(sc, seed, c.cx+dx, c.cz+dz)
			if math.Hypot(o.x-c.x, o.z-c.z) >= r {
				continue
			}
			if outranks(o, c) && s.valid(o, owner) {
				return false
			}
		}
	}
	return true
}

// placementsIn returns the accepted placements of every scatter of patch i
// whose position lies in fx × fz.
func (s *Synthesizer) placementsIn(i int, p *lsystem.Patch, fx, fz span) []Placement {
	var out []Placement
	for k, sc := range p.Scatters {
		if sc == nil || sc.Mesh == nil {
			continue
		}
		seed := scatterSeed(s.cfg.Seed, i, k)
		cell := sc.MaxRadius()
		x0, x1 := s.latticeRange(fx, cell)
		z0, z1 := s.latticeRange(fz, cell)
		for cz := z0; cz <= z1; cz++ {
			for cx := x0; cx <= x1; cx++ {
				c := s.candidateAt(sc, seed, cx, cz)
				if !fx.contains(c.x) || !fz.contains(c.z) {
					continue
				}
				if !s.valid(c, p) || !s.accepted(c, sc, seed, p) {
					continue
				}
				out = append(out, s.place(c, p, sc))
			}
		}
	}
	return out
}

// latticeRange clips a footprint to the terrain and returns the lattice
// cells that may hold candidates inside it. Jitter spans the closed unit
// interval, so one extra cell is scanned on each side.
func (s *Synthesizer) latticeRange(f span, cell float64) (int64, int64) {
	lo := max(f.lo, 0)
	hi := min(f.hi, s.cfg.Extent)
	return int64(math.Floor(lo/cell)) - 1, int64(math.Floor(hi/cell)) + 1
}

func (s *Synthesizer) place(c candidate, p *lsystem.Patch, sc *lsystem.ObjectScatter) Placement {
	e := s.cfg.Extent
	h := s.HeightAt(c.x/e, c.z/e)
	pos := mgl32.Vec3{float32(c.x), float32(h), float32(c.z)}
	yaw := float32(c.yaw)
	return Placement{
		Mesh:      sc.Mesh,
		Patch:     p,
		Scatter:   sc,
		Position:  pos,
		Yaw:       yaw,
		Transform: mgl32.Translate3D(pos.X(), pos.Y(), pos.Z()).Mul4(mgl32.HomogRotate3DY(yaw)),
	}
}

// Placements returns every accepted placement on the terrain, patch by
// patch and scatter by scatter.
func (s *Synthesizer) Placements() []Placement {
	all := span{math.Inf(-1), math.Inf(1)}
	return s.placementsWithin(all, all)
}

// placementsWithin collects the placements of every patch that wins its
// symbol. The owner of a placement is the patch under its position, which
// need not be the patch under the sample asking for it.
func (s *Synthesizer) placementsWithin(fx, fz span) []Placement {
	if s.grid == nil {
		return nil
	}
	var out []Placement
	for i, p := range s.patches {
		if p == nil || len(p.Scatters) == 0 {
			continue
		}
		if first, _ := s.patchFor(p.MatchVal); first != i {
			continue
		}
		out = append(out, s.placementsIn(i, p, fx, fz)...)
	}
	return out
}
