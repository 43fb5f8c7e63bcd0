//go:build !ebiten

package ui

import "fonsters/pkg/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Height is zero in the headless build.
func (h *HUD) Height() int { return 0 }

// Update is a no-op in the headless build.
func (h *HUD) Update(string, core.ParameterSnapshot, string) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
