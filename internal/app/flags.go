package app

import (
	"flag"
	"strconv"
	"strings"
	"time"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string { return strings.Join(*l, ",") }

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the pairs; malformed entries are skipped and later keys win.
func (l KVList) Map() map[string]string {
	out := map[string]string{}
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		out[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return out
}

// Config represents the command-line parameters for the viewer.
type Config struct {
	Preset   string
	View     int
	HUDWidth int
	TPS      int
	Seed     int64
	Slide    time.Duration
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "archipelago", View: 750, HUDWidth: 240, TPS: 60, Seed: 1337, Slide: time.Second}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "terrain preset to show")
	fs.IntVar(&c.View, "view", c.View, "side of the terrain view in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first reset")
	fs.DurationVar(&c.Slide, "slide", c.Slide, "delay between levels of detail in slideshow mode")
	fs.Var(&c.Set, "set", "preset parameter in key=value form (repeatable)")
}

// PresetConfig is the key/value map handed to the preset factory.
func (c *Config) PresetConfig() map[string]string {
	m := c.Set.Map()
	if _, ok := m["seed"]; !ok {
		m["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	return m
}
