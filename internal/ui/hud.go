//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"fonsters/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 10
	headerBaseline = 12
	lineHeight     = 15
	groupGap       = 6
	valueColumn    = 140
)

var (
	panelBG     = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	groupColor  = color.RGBA{R: 150, G: 180, B: 230, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	promptColor = color.RGBA{R: 250, G: 210, B: 120, A: 255}
)

// HUD renders the trait panel to the right of the creature view.
type HUD struct {
	width    int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot
	title    string
	prompt   string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update replaces the displayed seed, traits, and the pending input line.
func (h *HUD) Update(seed string, snapshot core.ParameterSnapshot, prompt string) {
	if h == nil {
		return
	}
	h.title = fmt.Sprintf("seed: %q", seed)
	h.snapshot = snapshot
	h.prompt = prompt
}

// Height returns the panel height needed for the current snapshot.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	rows := 3
	for _, g := range h.snapshot.Groups {
		rows += 1 + len(g.Params)
	}
	return 2*panelPadding + rows*lineHeight + len(h.snapshot.Groups)*groupGap
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBG)
	h.drawTraits()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawTraits() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight
	text.Draw(h.panel, "> "+h.prompt+"_", face, panelPadding, y, promptColor)
	y += lineHeight
	for _, g := range h.snapshot.Groups {
		y += groupGap
		text.Draw(h.panel, g.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, p := range g.Params {
			valueColor := labelColor
			if p.Type == core.ParamTypeBool && p.Value == "false" {
				valueColor = mutedColor
			}
			text.Draw(h.panel, p.Label, face, panelPadding+8, y, mutedColor)
			text.Draw(h.panel, p.Value, face, valueColumn, y, valueColor)
			y += lineHeight
		}
	}
}
