package synth

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// UnmatchedPolicy decides the height of samples whose symbol has no patch.
type UnmatchedPolicy int

const (
	// UnmatchedZero emits height 0.
	UnmatchedZero UnmatchedPolicy = iota
	// UnmatchedLowest emits the lowest authored minimum height.
	UnmatchedLowest
)

func (p UnmatchedPolicy) String() string {
	if p == UnmatchedLowest {
		return "lowest"
	}
	return "zero"
}

// ParseUnmatchedPolicy accepts "zero" or "lowest".
func ParseUnmatchedPolicy(s string) (UnmatchedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "zero", "0", "":
		return UnmatchedZero, nil
	case "lowest", "min":
		return UnmatchedLowest, nil
	}
	return UnmatchedZero, fmt.Errorf("unknown unmatched policy %q", s)
}

// Set implements flag.Value.
func (p *UnmatchedPolicy) Set(s string) error {
	v, err := ParseUnmatchedPolicy(s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Config controls how the finest symbol grid is turned into terrain
// attributes.
type Config struct {
	Seed int64
	// Extent is the world size of the terrain along each axis.
	Extent float64
	// NoiseScale is how many noise periods span the terrain at frequency 1.
	NoiseScale float64
	// Resolution is the host sample grid side. It sets the footprint that
	// Synthesize uses to report scatter placements.
	Resolution int
	Unmatched  UnmatchedPolicy
	Workers    int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:       1337,
		Extent:     1000,
		NoiseScale: 8,
		Resolution: 513,
		Unmatched:  UnmatchedZero,
		Workers:    runtime.NumCPU(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["extent"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Extent = parsed
		}
	}
	if v, ok := cfg["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.NoiseScale = parsed
		}
	}
	if v, ok := cfg["resolution"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Resolution = parsed
		}
	}
	if v, ok := cfg["unmatched"]; ok {
		if parsed, err := ParseUnmatchedPolicy(v); err == nil {
			c.Unmatched = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for noise and scatter placement")
	fs.Float64Var(&c.Extent, "extent", c.Extent, "world size of the terrain")
	fs.Float64Var(&c.NoiseScale, "noise-scale", c.NoiseScale, "noise periods across the terrain at frequency 1")
	fs.IntVar(&c.Resolution, "res", c.Resolution, "heightmap side in samples")
	fs.Var(&c.Unmatched, "unmatched", "height for symbols without a patch: zero or lowest")
	fs.IntVar(&c.Workers, "workers", c.Workers, "parallel synthesis workers")
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Extent <= 0 {
		c.Extent = d.Extent
	}
	if c.NoiseScale <= 0 {
		c.NoiseScale = d.NoiseScale
	}
	if c.Resolution <= 0 {
		c.Resolution = d.Resolution
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	return c
}
