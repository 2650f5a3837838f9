package archipelago

import (
	"strconv"

	"lterrain/pkg/synth"
)

// Params holds the grammar and surface tunables of the archipelago.
type Params struct {
	SeedSide       int
	LandChance     float64
	MountainChance float64
	CoastSteps     int

	WaterMin    float64
	WaterMax    float64
	GrassMin    float64
	GrassMax    float64
	MountainMin float64
	MountainMax float64

	SmoothFactor float64

	TreeMinRadius float64
	TreeMaxRadius float64

	RockThreshold float64
	RockFeather   float64
}

// Config controls the archipelago preset.
type Config struct {
	Depth  int
	Synth  synth.Config
	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Depth: 2,
		Synth: synth.DefaultConfig(),
		Params: Params{
			SeedSide:       6,
			LandChance:     0.55,
			MountainChance: 0.25,
			WaterMin:       -14,
			WaterMax:       -4,
			GrassMin:       1,
			GrassMax:       12,
			MountainMin:    25,
			MountainMax:    90,
			SmoothFactor:   0.5,
			TreeMinRadius:  6,
			TreeMaxRadius:  12,
			RockThreshold:  0.6,
			RockFeather:    0.4,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Synthesis keys such as seed, extent and resolution are read by
// synth.FromMap.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	c.Synth = synth.FromMap(cfg)
	if v, ok := cfg["depth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Depth = parsed
		}
	}
	if v, ok := cfg["seed_side"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Params.SeedSide = parsed
		}
	}
	if v, ok := cfg["land_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.LandChance = parsed
		}
	}
	if v, ok := cfg["mountain_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.MountainChance = parsed
		}
	}
	if v, ok := cfg["coast_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.CoastSteps = parsed
		}
	}
	readBand(cfg, "water", &c.Params.WaterMin, &c.Params.WaterMax)
	readBand(cfg, "grass", &c.Params.GrassMin, &c.Params.GrassMax)
	readBand(cfg, "mountain", &c.Params.MountainMin, &c.Params.MountainMax)
	if v, ok := cfg["smooth_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SmoothFactor = parsed
		}
	}
	if v, ok := cfg["tree_min_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TreeMinRadius = parsed
		}
	}
	if v, ok := cfg["tree_max_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.TreeMaxRadius = parsed
		}
	}
	if c.Params.TreeMaxRadius < c.Params.TreeMinRadius {
		c.Params.TreeMaxRadius = c.Params.TreeMinRadius
	}
	if v, ok := cfg["rock_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.RockThreshold = parsed
		}
	}
	if v, ok := cfg["rock_feather"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.RockFeather = parsed
		}
	}
	return c
}

// readBand parses <name>_min and <name>_max. A max below min is pulled up
// to min.
func readBand(cfg map[string]string, name string, lo, hi *float64) {
	if v, ok := cfg[name+"_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*lo = parsed
		}
	}
	if v, ok := cfg[name+"_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*hi = parsed
		}
	}
	if *hi < *lo {
		*hi = *lo
	}
}
