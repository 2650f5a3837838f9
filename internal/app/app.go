//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"lterrain/internal/core"
	"lterrain/internal/presets"
	"lterrain/internal/render"
	"lterrain/internal/ui"
	"lterrain/pkg/lsystem"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxSide caps interactive iteration; larger levels no longer fit a texture.
const maxSide = 4096

// Game adapts a terrain preset to the ebiten.Game interface.
type Game struct {
	gen      presets.Provider
	cfg      *Config
	painters map[int]*render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay

	seed      int64
	lod       int
	follow    bool
	slideshow bool
	pacer     *core.FixedStep
}

// New constructs a Game for the provided preset.
func New(gen presets.Provider, cfg *Config) *Game {
	g := &Game{
		gen:      gen,
		cfg:      cfg,
		painters: map[int]*render.GridPainter{},
		hud:      ui.NewHUD(gen, cfg.HUDWidth),
		overlay:  ui.NewOverlay(),
		seed:     cfg.Seed,
		follow:   true,
		pacer:    core.NewFixedStep(cfg.Slide),
	}
	g.refresh()
	return g
}

// Reset regenerates the terrain with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.gen.Reset(seed)
	g.refresh()
}

// refresh points the view and overlay at the current chain.
func (g *Game) refresh() {
	if g.follow {
		g.lod = g.gen.Depth()
	}
	g.lod = clampLoD(g.lod, g.gen.Depth()+1)
	g.overlay.SetSource(g.gen.Synthesizer(), g.gen.System().GroundTextures, g.gen.Size().W)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.iterate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.follow = false
		g.lod = clampLoD(g.lod-1, g.gen.Depth()+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.lod = clampLoD(g.lod+1, g.gen.Depth()+1)
		g.follow = g.lod == g.gen.Depth()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.slideshow = !g.slideshow
		g.pacer.Restart()
	}
	if g.slideshow && g.pacer.ShouldStep() {
		g.lod = nextSlide(g.lod, g.gen.Depth()+1)
		g.follow = false
	}

	g.overlay.Update()
	g.hud.Update(g.cfg.View, g.lod)
	if g.hud.Changed() {
		g.refresh()
	}
	return nil
}

func (g *Game) iterate() {
	if side := g.gen.Size().W; side*lsystem.Dims > maxSide {
		slog.Warn("not iterating: next level too large", "side", side*lsystem.Dims, "max", maxSide)
		return
	}
	g.gen.Step()
	g.follow = true
	g.refresh()
}

// Draw renders the viewed level of detail with overlays and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	cells, side, lod := lodCells(g.gen.System().Chain(), g.lod)
	if side == 0 {
		return
	}
	gp, ok := g.painters[side]
	if !ok {
		gp = render.NewGridPainter(side, side)
		g.painters[side] = gp
	}
	scale := float64(g.cfg.View) / float64(side)
	gp.Blit(screen, cells, g.gen.Palette(), scale)
	if lod == g.gen.Depth() {
		g.overlay.Draw(screen, scale)
	}
	g.hud.Draw(screen, g.cfg.View, g.cfg.View)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.View + g.cfg.HUDWidth, g.cfg.View
}
