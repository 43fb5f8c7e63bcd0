//go:build !ebiten

package ui

import "fonsters/pkg/traits"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int, bool) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// DrawUnder is a no-op placeholder.
func (o *Overlay) DrawUnder(any) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, traits.CreatureConfig) {}
