// Package archipelago is a terrain preset: random islands in open water,
// grown into shores, forests and mountain ridges by a small grammar.
package archipelago

import (
	"lterrain/internal/core"
	"lterrain/internal/presets"
	pcore "lterrain/pkg/core"
	"lterrain/pkg/lsystem"
	"lterrain/pkg/noise"
	"lterrain/pkg/seedca"
)

// Symbols used by the archipelago grammar.
const (
	Water    lsystem.Code = 'W'
	Shore    lsystem.Code = 'S'
	Grass    lsystem.Code = 'G'
	Forest   lsystem.Code = 'F'
	Mountain lsystem.Code = 'M'
)

// Archipelago wires the grammar builder to a preset terrain.
type Archipelago struct {
	*presets.Terrain
	cfg Config
}

// New constructs the preset from cfg.
func New(cfg Config) *Archipelago {
	a := &Archipelago{cfg: cfg}
	a.Terrain = presets.NewTerrain("archipelago", cfg.Depth, cfg.Synth, a.build)
	return a
}

// Config returns the active configuration.
func (a *Archipelago) Config() Config { return a.cfg }

func (a *Archipelago) build(sys *lsystem.LSystem, seed int64) {
	p := a.cfg.Params

	_ = sys.AddSymbol(lsystem.Symbol{Code: Water, Name: "Water", Texture: "textures/water"})
	_ = sys.AddSymbol(lsystem.Symbol{Code: Shore, Name: "Shore", Texture: "textures/sand"})
	_ = sys.AddSymbol(lsystem.Symbol{Code: Grass, Name: "Grassland", Texture: "textures/grass"})
	_ = sys.AddSymbol(lsystem.Symbol{Code: Forest, Name: "Forest", Texture: "textures/forest_floor"})
	_ = sys.AddSymbol(lsystem.Symbol{Code: Mountain, Name: "Mountain", Texture: "textures/rock"})

	grassTex := sys.AddGroundTexture(&lsystem.GroundTexture{Name: "Grass", LayerInfo: "layers/grass", Texture: "textures/grass", NormalMap: "textures/grass_n"})
	rockTex := sys.AddGroundTexture(&lsystem.GroundTexture{Name: "Rock", LayerInfo: "layers/rock", Texture: "textures/rock", NormalMap: "textures/rock_n"})
	sandTex := sys.AddGroundTexture(&lsystem.GroundTexture{Name: "Sand", LayerInfo: "layers/sand", Texture: "textures/sand"})
	soilTex := sys.AddGroundTexture(&lsystem.GroundTexture{Name: "Forest floor", LayerInfo: "layers/forest_floor", Texture: "textures/forest_floor"})
	tree := sys.AddMeshAsset(&lsystem.MeshAsset{Name: "Pine", FoliageType: "foliage/pine", Object: "meshes/pine"})
	boulder := sys.AddMeshAsset(&lsystem.MeshAsset{Name: "Boulder", Object: "meshes/boulder"})

	// Land touching water becomes shore before anything else applies.
	for _, land := range []lsystem.Code{Grass, Forest} {
		rules, _ := lsystem.NewContactRules(land, Water, Shore)
		for _, r := range rules {
			sys.AddRule(r)
		}
	}
	// Mountains never reach the sea directly.
	cliffs, _ := lsystem.NewContactRules(Mountain, Water, Grass)
	for _, r := range cliffs {
		sys.AddRule(r)
	}

	ridge, _ := lsystem.NewRule(Mountain, lsystem.MustParseGrid(
		"GMMGG",
		"MMMMG",
		"GMMMM",
		"GGMMG",
		"GGGMG",
	))
	ridge.Name = "mountain ridge"
	sys.AddRule(ridge)

	grove, _ := lsystem.NewRule(Grass, lsystem.MustParseGrid(
		"GGGGG",
		"GFFGG",
		"GFFFG",
		"GGFFG",
		"GGGGG",
	))
	grove.Name = "grove"
	grove.SetNeighbor(0, -1, Grass)
	grove.SetNeighbor(0, 1, Grass)
	grove.MatchNeighbors = true
	sys.AddRule(grove)

	// Forest thins at its edge; '*' keeps the parent symbol.
	edge, _ := lsystem.NewRule(Forest, lsystem.MustParseGrid(
		"G*F*G",
		"*FFF*",
		"FFFFF",
		"*FFF*",
		"G*F*G",
	))
	edge.Name = "forest edge"
	sys.AddRule(edge)

	for _, c := range []lsystem.Code{Water, Shore, Grass} {
		r, _ := lsystem.NewPropagateRule(c, c)
		sys.AddRule(r)
	}

	water := sys.AddPatch(lsystem.NewPatch("Water", Water))
	water.SetHeightRange(p.WaterMin, p.WaterMax)
	water.SetSmoothFactor(p.SmoothFactor)
	water.AddNoise(lsystem.NewNoise(noise.Pink)).SetAmplitude(1)
	water.AddPaintWeight(lsystem.NewPaintWeight(sandTex)).SetWeight(0.3)

	shore := sys.AddPatch(lsystem.NewPatch("Shore", Shore))
	shore.SetHeightRange(p.WaterMax, p.GrassMin)
	shore.SetSmoothFactor(p.SmoothFactor)
	shore.AddPaintWeight(lsystem.NewPaintWeight(sandTex))

	grass := sys.AddPatch(lsystem.NewPatch("Grassland", Grass))
	grass.SetHeightRange(p.GrassMin, p.GrassMax)
	grass.SetSmoothFactor(p.SmoothFactor)
	grass.AddNoise(lsystem.NewNoise(noise.Perlin))
	grass.AddPaintWeight(lsystem.NewPaintWeight(grassTex))
	stones := grass.AddPaintWeight(lsystem.NewPaintWeight(rockTex))
	stones.Mask = lsystem.NewNoise(noise.Blue)
	stones.Threshold = p.RockThreshold * stones.Mask.Amplitude()
	stones.SetFeather(p.RockFeather)
	stones.SetWeight(0.4)

	forest := sys.AddPatch(lsystem.NewPatch("Forest", Forest))
	forest.SetHeightRange(p.GrassMin, p.GrassMax)
	forest.SetSmoothFactor(p.SmoothFactor)
	forest.AddNoise(lsystem.NewNoise(noise.Perlin))
	forest.AddNoise(lsystem.NewNoise(noise.White)).SetAmplitude(0.2)
	forest.AddPaintWeight(lsystem.NewPaintWeight(soilTex))
	forest.AddPaintWeight(lsystem.NewPaintWeight(grassTex)).SetWeight(0.25)
	pines := forest.AddScatter(lsystem.NewObjectScatter(tree))
	pines.SetMaxRadius(p.TreeMaxRadius)
	pines.SetMinRadius(p.TreeMinRadius)

	mountain := sys.AddPatch(lsystem.NewPatch("Mountain", Mountain))
	mountain.SetHeightRange(p.MountainMin, p.MountainMax)
	mountain.SetSmoothFactor(p.SmoothFactor)
	peaks := mountain.AddNoise(lsystem.NewNoise(noise.Perlin))
	peaks.SetAmplitude(6)
	peaks.SetFrequency(2)
	mountain.AddNoise(lsystem.NewNoise(noise.Pink)).SetAmplitude(1.5)
	mountain.AddPaintWeight(lsystem.NewPaintWeight(rockTex))
	snow := mountain.AddPaintWeight(lsystem.NewPaintWeight(grassTex))
	snow.Mask = lsystem.NewNoise(noise.Perlin)
	snow.AboveThreshold = false
	snow.Threshold = -p.RockThreshold * snow.Mask.Amplitude()
	snow.SetFeather(p.RockFeather)
	rocks := mountain.AddScatter(lsystem.NewObjectScatter(boulder))
	rocks.SetMaxRadius(p.TreeMaxRadius * 2)
	rocks.SetMinRadius(p.TreeMinRadius * 1.5)

	_ = sys.SetSeed(seedGrid(p, seed))
}

// seedGrid scatters land over a SeedSide×SeedSide grid whose border is
// always water. CoastSteps rounds of the Islands automaton merge the land
// into coherent masses before mountains are placed. Mountains draw from a
// per-cell stream, so resizing the seed does not reshuffle them.
func seedGrid(p Params, seed int64) *lsystem.Grid {
	side := max(p.SeedSide, 3)
	rng := pcore.NewRNG(seed)
	land := seedca.New(side, side, seedca.Islands)
	land.Fill(rng, p.LandChance)
	land.Run(p.CoastSteps)
	mask := land.Cells()

	codes := make([]lsystem.Code, side*side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			i := y*side + x
			c := Water
			border := x == 0 || y == 0 || x == side-1 || y == side-1
			mountain := pcore.NewCellRNG(seed, int64(x), int64(y)).Float64() < p.MountainChance
			switch {
			case border || mask[i] == 0:
			case mountain:
				c = Mountain
			default:
				c = Grass
			}
			codes[i] = c
		}
	}
	g, _ := lsystem.GridFromCodes(side, codes)
	return g
}

func init() {
	core.Register("archipelago", func(cfg map[string]string) core.Generator {
		return New(FromMap(cfg))
	})
}
