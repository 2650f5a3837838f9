//go:build !ebiten

package ui

import (
	"lterrain/pkg/lsystem"
	"lterrain/pkg/synth"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetSource is a no-op in headless builds.
func (o *Overlay) SetSource(*synth.Synthesizer, []*lsystem.GroundTexture, int) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, float64) {}
