//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lterrain/internal/app"
	"lterrain/internal/presets"
	_ "lterrain/internal/presets/archipelago"
	_ "lterrain/internal/presets/plains"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	gen, err := presets.Build(cfg.Preset, cfg.PresetConfig())
	if err != nil {
		log.Fatal(err)
	}
	if err := gen.System().Validate(); err != nil {
		log.Printf("grammar problems:\n%v", err)
	}

	game := app.New(gen, cfg)

	ebiten.SetWindowTitle("lterrain: " + gen.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.View+cfg.HUDWidth, cfg.View)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
