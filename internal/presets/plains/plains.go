// Package plains is the smallest useful preset: a single symbol that
// propagates unchanged, bound to one flat-ish patch.
package plains

import (
	"strconv"

	"lterrain/internal/core"
	"lterrain/internal/presets"
	"lterrain/pkg/lsystem"
	"lterrain/pkg/noise"
	"lterrain/pkg/synth"
)

// Plain is the only symbol.
const Plain lsystem.Code = 'A'

// Config controls the plains preset.
type Config struct {
	Depth     int
	Synth     synth.Config
	MinHeight float64
	MaxHeight float64
	Rolling   bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Depth: 2, Synth: synth.DefaultConfig(), MinHeight: 1, MaxHeight: 10}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
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
	if v, ok := cfg["min_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MinHeight = parsed
		}
	}
	if v, ok := cfg["max_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.MaxHeight = parsed
		}
	}
	if c.MaxHeight < c.MinHeight {
		c.MaxHeight = c.MinHeight
	}
	if v, ok := cfg["rolling"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Rolling = parsed
		}
	}
	return c
}

// Plains is the preset generator.
type Plains struct {
	*presets.Terrain
	cfg Config
}

// New constructs the preset from cfg.
func New(cfg Config) *Plains {
	p := &Plains{cfg: cfg}
	p.Terrain = presets.NewTerrain("plains", cfg.Depth, cfg.Synth, p.build)
	return p
}

func (p *Plains) build(sys *lsystem.LSystem, _ int64) {
	_ = sys.AddSymbol(lsystem.Symbol{Code: Plain, Name: "Plain", Texture: "textures/grass"})
	r, _ := lsystem.NewPropagateRule(Plain, Plain)
	sys.AddRule(r)
	tex := sys.AddGroundTexture(&lsystem.GroundTexture{Name: "Grass", LayerInfo: "layers/grass", Texture: "textures/grass"})

	patch := sys.AddPatch(lsystem.NewPatch("Plain", Plain))
	patch.SetHeightRange(p.cfg.MinHeight, p.cfg.MaxHeight)
	patch.SetHeightSmoothing(false)
	patch.AddPaintWeight(lsystem.NewPaintWeight(tex))
	if p.cfg.Rolling {
		patch.AddNoise(lsystem.NewNoise(noise.Perlin))
	}
	_ = sys.SetSeed(lsystem.NewGrid(1, Plain))
}

// Parameters reports the preset configuration.
func (p *Plains) Parameters() core.ParameterSnapshot {
	s := p.SynthConfig()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.Int64Param("seed", "Seed", s.Seed),
				core.IntParam("depth", "Depth", p.TargetDepth()),
			},
		},
		{
			Name: "Heights",
			Params: []core.Parameter{
				core.FloatParam("min_height", "Min height", p.cfg.MinHeight),
				core.FloatParam("max_height", "Max height", p.cfg.MaxHeight),
				core.BoolParam("rolling", "Rolling", p.cfg.Rolling),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (p *Plains) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "depth", Label: "Depth", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 4, HasMin: true, HasMax: true},
		{Key: "max_height", Label: "Max height", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: lsystem.HeightLimit, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer HUD edit and regenerates.
func (p *Plains) SetIntParameter(key string, value int) bool {
	if key != "depth" || value < 0 {
		return false
	}
	p.cfg.Depth = value
	p.SetTargetDepth(value)
	p.Reset(p.SynthConfig().Seed)
	return true
}

// SetFloatParameter applies a float HUD edit and regenerates.
func (p *Plains) SetFloatParameter(key string, value float64) bool {
	if key != "max_height" {
		return false
	}
	p.cfg.MaxHeight = max(value, p.cfg.MinHeight)
	p.Reset(p.SynthConfig().Seed)
	return true
}

func init() {
	core.Register("plains", func(cfg map[string]string) core.Generator {
		return New(FromMap(cfg))
	})
}
