package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"lterrain/internal/core"
	"lterrain/internal/export"
	"lterrain/internal/grammar"
	"lterrain/internal/presets"
	_ "lterrain/internal/presets/archipelago"
	_ "lterrain/internal/presets/plains"
	"lterrain/internal/render"
	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"

	"github.com/xlab/closer"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// synthFlagKeys maps synth.Config flags to the keys presets read.
var synthFlagKeys = map[string]string{
	"seed":        "seed",
	"extent":      "extent",
	"noise-scale": "noise_scale",
	"res":         "resolution",
	"unmatched":   "unmatched",
	"workers":     "workers",
}

// terrain is what the pipeline needs, whichever way it was loaded.
type terrain struct {
	name  string
	sys   *lsystem.LSystem
	depth int
	synth synth.Config
}

func main() {
	defer closer.Close()

	var (
		presetName = flag.String("preset", "archipelago", "built-in preset ("+strings.Join(core.Names(), ", ")+")")
		grammarSrc = flag.String("grammar", "", "grammar document: local path or go-getter address; overrides -preset")
		depth      = flag.Int("depth", -1, "expansion steps (-1 keeps the preset or document depth)")
		outDir     = flag.String("out", "out", "output directory")
		scale      = flag.Int("scale", 4, "preview image scale")
		params     = flag.Bool("params", false, "print preset parameters and exit")
		dump       = flag.Bool("dump-grammar", true, "write grammar.json next to the outputs")
		verbose    = flag.Bool("v", false, "debug logging")
		overrides  kvList
	)
	synthCfg := synth.DefaultConfig()
	synthCfg.Bind(flag.CommandLine)
	flag.Var(&overrides, "set", "preset parameter override in key=value form (repeatable)")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var (
		t   *terrain
		err error
	)
	if *grammarSrc != "" {
		t, err = loadGrammar(*grammarSrc, synthCfg, log)
	} else {
		var gen presets.Provider
		gen, err = presets.Build(*presetName, presetConfig(flag.CommandLine, synthCfg, overrides))
		if err == nil && *params {
			printParams(gen)
			return
		}
		if err == nil {
			t = fromPreset(gen)
		}
	}
	if err != nil {
		closer.Fatalln(err)
	}
	if *depth >= 0 {
		t.depth = *depth
	}

	if err := run(t, *outDir, *scale, *dump, log); err != nil {
		closer.Fatalln(err)
	}
}

// presetConfig merges explicitly set synthesis flags into the -set pairs.
// -set wins when both name the same key.
func presetConfig(fs *flag.FlagSet, cfg synth.Config, overrides kvList) map[string]string {
	m := map[string]string{}
	fs.Visit(func(f *flag.Flag) {
		if key, ok := synthFlagKeys[f.Name]; ok {
			m[key] = f.Value.String()
		}
	})
	for _, kv := range overrides {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}

func fromPreset(gen presets.Provider) *terrain {
	return &terrain{
		name:  gen.Name(),
		sys:   gen.System(),
		depth: gen.Depth(),
		synth: gen.SynthConfig(),
	}
}

func loadGrammar(src string, cfg synth.Config, log *slog.Logger) (*terrain, error) {
	var (
		doc *grammar.Document
		err error
	)
	if _, statErr := os.Stat(src); statErr == nil {
		doc, err = grammar.Load(src)
	} else {
		tmp, tmpErr := os.MkdirTemp("", "lterrain-grammar-")
		if tmpErr != nil {
			return nil, tmpErr
		}
		closer.Bind(func() {
			log.Debug("removing fetched grammar", "dir", tmp)
			os.RemoveAll(tmp)
		})
		doc, err = grammar.LoadRemote(context.Background(), src, tmp, log)
	}
	if err != nil {
		return nil, err
	}
	sys, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("grammar %s: %w", src, err)
	}
	name := doc.Name
	if name == "" {
		name = "grammar"
	}
	return &terrain{name: name, sys: sys, depth: doc.Depth, synth: cfg}, nil
}

func run(t *terrain, dir string, scale int, dump bool, log *slog.Logger) error {
	log = log.With("terrain", t.name)
	if err := t.sys.Validate(); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			log.Warn("grammar problem", "detail", line)
		}
	}
	chain := t.sys.Regenerate(t.depth)
	if chain.Len() == 0 {
		return errors.New("grammar has no seed grid")
	}
	log.Info("regenerated", "depth", t.depth, "side", chain.Finest().Side())

	w, err := export.NewWriter(dir, scale, log)
	if err != nil {
		return err
	}
	palette := render.SymbolPalette(&t.sys.Symbols)
	for i := 0; i < chain.Len(); i++ {
		if _, err := w.WriteSymbols(fmt.Sprintf("symbols_lod%d.png", i), chain.LoD(i), palette); err != nil {
			return err
		}
	}

	s := synth.New(t.sys, t.synth)
	cfg := s.Config()
	hm := synth.NewHeightmap(cfg.Resolution, cfg.Resolution)
	wm := synth.NewWeightmaps(cfg.Resolution, cfg.Resolution, t.sys.GroundTextures)
	placements, err := s.SynthesizeGrid(hm, wm)
	if err != nil {
		return err
	}
	lo, hi := hm.Range()
	log.Info("synthesized", "resolution", cfg.Resolution, "min_height", lo, "max_height", hi, "placements", len(placements))

	if _, err := w.WriteHeightmap("heightmap.png", hm, lo, hi); err != nil {
		return err
	}
	if _, err := w.WriteHeightPreview("heightmap_preview.png", hm); err != nil {
		return err
	}
	for i, tex := range wm.Textures {
		if _, err := w.WriteWeightmap(weightmapName(i, tex), wm, i); err != nil {
			return err
		}
	}
	if _, err := w.WritePlacements("placements.json", placements); err != nil {
		return err
	}
	if dump {
		return writeGrammar(dir, t, log)
	}
	return nil
}

func weightmapName(i int, tex *lsystem.GroundTexture) string {
	name := strings.ToLower(strings.Join(strings.Fields(tex.Name), "_"))
	if name == "" {
		name = strconv.Itoa(i)
	}
	return fmt.Sprintf("weight_%s.png", name)
}

func writeGrammar(dir string, t *terrain, log *slog.Logger) error {
	doc := grammar.FromSystem(t.sys, t.depth)
	doc.Name = t.name
	f, err := os.Create(filepath.Join(dir, "grammar.json"))
	if err != nil {
		return err
	}
	if err := doc.Encode(f); err != nil {
		f.Close()
		return err
	}
	log.Info("wrote grammar", "path", f.Name())
	return f.Close()
}

func printParams(gen presets.Provider) {
	p, ok := gen.(core.ParameterProvider)
	if !ok {
		fmt.Printf("%s exposes no parameters\n", gen.Name())
		return
	}
	snap := p.Parameters()
	for _, g := range snap.Groups {
		fmt.Printf("[%s]\n", g.Name)
		params := append([]core.Parameter(nil), g.Params...)
		sort.SliceStable(params, func(i, j int) bool { return params[i].Key < params[j].Key })
		for _, param := range params {
			fmt.Printf("  %-18s %-8s %s\n", param.Key, param.Type, param.Value)
		}
	}
}
