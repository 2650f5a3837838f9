package archipelago

import (
	"lterrain/internal/core"
	"lterrain/pkg/lsystem"
)

// Parameters reports the preset configuration for the HUD and -params.
func (a *Archipelago) Parameters() core.ParameterSnapshot {
	p := a.cfg.Params
	s := a.SynthConfig()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.Seed),
				core.IntParam("depth", "Depth", a.TargetDepth()),
				core.IntParam("seed_side", "Seed grid side", p.SeedSide),
				core.FloatParam("extent", "Extent", s.Extent),
				core.FloatParam("noise_scale", "Noise scale", s.NoiseScale),
				core.IntParam("resolution", "Resolution", s.Resolution),
			},
		},
		{
			Name: "Islands",
			Params: []core.Parameter{
				core.FloatParam("land_chance", "Land chance", p.LandChance),
				core.FloatParam("mountain_chance", "Mountain chance", p.MountainChance),
				core.IntParam("coast_steps", "Coast smoothing steps", p.CoastSteps),
			},
		},
		{
			Name: "Heights",
			Params: []core.Parameter{
				core.FloatParam("water_min", "Water min", p.WaterMin),
				core.FloatParam("water_max", "Water max", p.WaterMax),
				core.FloatParam("grass_min", "Grass min", p.GrassMin),
				core.FloatParam("grass_max", "Grass max", p.GrassMax),
				core.FloatParam("mountain_min", "Mountain min", p.MountainMin),
				core.FloatParam("mountain_max", "Mountain max", p.MountainMax),
				core.FloatParam("smooth_factor", "Smooth factor", p.SmoothFactor),
			},
		},
		{
			Name: "Surface",
			Params: []core.Parameter{
				core.FloatParam("tree_min_radius", "Tree min radius", p.TreeMinRadius),
				core.FloatParam("tree_max_radius", "Tree max radius", p.TreeMaxRadius),
				core.FloatParam("rock_threshold", "Rock threshold", p.RockThreshold),
				core.FloatParam("rock_feather", "Rock feather", p.RockFeather),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (a *Archipelago) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "depth", Label: "Depth", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 4, HasMin: true, HasMax: true},
		{Key: "seed_side", Label: "Seed side", Type: core.ParamTypeInt, Step: 1, Min: 3, Max: 16, HasMin: true, HasMax: true},
		{Key: "coast_steps", Label: "Coast steps", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 6, HasMin: true, HasMax: true},
		{Key: "land_chance", Label: "Land", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "mountain_chance", Label: "Mountains", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "smooth_factor", Label: "Smoothing", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "mountain_max", Label: "Peak height", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: lsystem.HeightLimit, HasMin: true, HasMax: true},
		{Key: "rock_threshold", Label: "Rock threshold", Type: core.ParamTypeFloat, Step: 0.05, Min: -1, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer HUD edit and regenerates.
func (a *Archipelago) SetIntParameter(key string, value int) bool {
	switch key {
	case "depth":
		if value < 0 {
			return false
		}
		a.cfg.Depth = value
		a.SetTargetDepth(value)
	case "seed_side":
		if value < 3 {
			return false
		}
		a.cfg.Params.SeedSide = value
	case "coast_steps":
		if value < 0 {
			return false
		}
		a.cfg.Params.CoastSteps = value
	default:
		return false
	}
	a.Reset(a.SynthConfig().Seed)
	return true
}

// SetFloatParameter applies a float HUD edit and regenerates.
func (a *Archipelago) SetFloatParameter(key string, value float64) bool {
	p := &a.cfg.Params
	switch key {
	case "land_chance":
		p.LandChance = clamp01(value)
	case "mountain_chance":
		p.MountainChance = clamp01(value)
	case "smooth_factor":
		p.SmoothFactor = clamp01(value)
	case "mountain_max":
		p.MountainMax = max(value, p.MountainMin)
	case "rock_threshold":
		p.RockThreshold = value
	default:
		return false
	}
	a.Reset(a.SynthConfig().Seed)
	return true
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
