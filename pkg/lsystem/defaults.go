package lsystem

import "lterrain/pkg/noise"

// GenerateSomeDefaults resets the system and installs a small working
// grammar: grassland that grows ridges, water that keeps its shape, and a
// sand shore wherever grassland touches water.
func (s *LSystem) GenerateSomeDefaults() {
	s.Reset()

	const (
		grass    Code = 'G'
		mountain Code = 'M'
		water    Code = 'W'
		sand     Code = 'S'
	)
	_ = s.AddSymbol(Symbol{Code: grass, Name: "Grassland", Texture: "textures/grass"})
	_ = s.AddSymbol(Symbol{Code: mountain, Name: "Mountain", Texture: "textures/rock"})
	_ = s.AddSymbol(Symbol{Code: water, Name: "Water", Texture: "textures/water"})
	_ = s.AddSymbol(Symbol{Code: sand, Name: "Shore", Texture: "textures/sand"})

	grassTex := s.AddGroundTexture(&GroundTexture{Name: "Grass", LayerInfo: "layers/grass", Texture: "textures/grass"})
	rockTex := s.AddGroundTexture(&GroundTexture{Name: "Rock", LayerInfo: "layers/rock", Texture: "textures/rock"})
	sandTex := s.AddGroundTexture(&GroundTexture{Name: "Sand", LayerInfo: "layers/sand", Texture: "textures/sand"})
	tree := s.AddMeshAsset(&MeshAsset{Name: "Tree", FoliageType: "foliage/tree", Object: "meshes/tree"})
	boulder := s.AddMeshAsset(&MeshAsset{Name: "Boulder", Object: "meshes/boulder"})

	// Grassland bordering water turns into shore first.
	shore, _ := NewContactRules(grass, water, sand)
	for _, r := range shore {
		s.AddRule(r)
	}
	ridge, _ := NewRule(grass, MustParseGrid(
		"GGGGG",
		"GGMGG",
		"GMMMG",
		"GGMGG",
		"GGGGG",
	))
	ridge.Name = "grass ridge"
	s.AddRule(ridge)
	for _, c := range []Code{mountain, water, sand} {
		r, _ := NewPropagateRule(c, c)
		s.AddRule(r)
	}

	g := s.AddPatch(NewPatch("Grassland", grass))
	g.SetHeightRange(1, 10)
	g.AddNoise(NewNoise(noise.Perlin))
	g.AddPaintWeight(NewPaintWeight(grassTex))
	rocky := g.AddPaintWeight(NewPaintWeight(rockTex))
	rocky.Mask = NewNoise(noise.Pink)
	rocky.Threshold = 1
	rocky.SetFeather(0.5)
	trees := g.AddScatter(NewObjectScatter(tree))
	trees.SetMaxRadius(12)
	trees.SetMinRadius(6)

	m := s.AddPatch(NewPatch("Mountain", mountain))
	m.SetHeightRange(20, 80)
	ridgeNoise := m.AddNoise(NewNoise(noise.Perlin))
	ridgeNoise.SetAmplitude(6)
	ridgeNoise.SetFrequency(2)
	m.AddPaintWeight(NewPaintWeight(rockTex))
	rocks := m.AddScatter(NewObjectScatter(boulder))
	rocks.SetMaxRadius(20)
	rocks.SetMinRadius(8)

	w := s.AddPatch(NewPatch("Water", water))
	w.SetHeightRange(-12, -4)
	w.SetSmoothFactor(0.8)

	sh := s.AddPatch(NewPatch("Shore", sand))
	sh.SetHeightRange(-1, 1)
	sh.AddPaintWeight(NewPaintWeight(sandTex))

	// Water rims the seed so the shore rules only eat the coast.
	_ = s.SetSeed(MustParseGrid(
		"WWWWW",
		"WGGGW",
		"WGGMW",
		"WGGGW",
		"WWWWW",
	))
}
