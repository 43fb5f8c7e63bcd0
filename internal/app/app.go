//go:build ebiten

package app

import (
	"image/color"

	"fonsters/internal/render"
	"fonsters/internal/ui"
	"fonsters/pkg/core"
	"fonsters/pkg/fonster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

var backdrop = color.RGBA{R: 24, G: 24, B: 28, A: 255}

// Game adapts the creature generator to the ebiten.Game interface.
type Game struct {
	creature fonster.Creature
	painter  *render.GridPainter
	overlay  *ui.Overlay
	hud      *ui.HUD

	scale   int
	input   []rune
	showHUD bool
}

// New constructs a viewer showing the creature for seed.
func New(seed string, scale int, showHUD, showOverlay bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	g := &Game{
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(scale, showOverlay),
		hud:     ui.NewHUD(hudWidth),
		scale:   scale,
		input:   []rune(seed),
		showHUD: showHUD,
	}
	g.Reset(seed)
	return g
}

// Reset regenerates the creature for seed.
func (g *Game) Reset(seed string) {
	g.creature = fonster.New(seed)
	g.painter.Upload(&g.creature.Grid, g.creature.Config.Palette)
	g.refreshHUD()
}

// Seed returns the text of the creature currently shown.
func (g *Game) Seed() string { return g.creature.Seed.Text() }

func (g *Game) refreshHUD() {
	g.hud.Update(g.creature.Seed.Text(), g.creature.Config.Parameters(), string(g.input))
}

// Update handles seed editing and display toggles.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	edited := false
	if chars := ebiten.AppendInputChars(nil); len(chars) > 0 {
		g.input = append(g.input, chars...)
		edited = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(g.input) > 0 {
		g.input = g.input[:len(g.input)-1]
		edited = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.Reset(string(g.input))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.step(-1)
	}
	if edited {
		g.refreshHUD()
	}
	if g.overlay != nil {
		g.overlay.Update()
	}
	return nil
}

// step bumps the trailing number of the current seed and regenerates.
func (g *Game) step(delta int) {
	next := StepSeed(string(g.input), delta)
	g.input = []rune(next)
	g.Reset(next)
}

// Draw renders the creature, the guides, and the trait panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if g.overlay != nil {
		g.overlay.DrawUnder(screen)
	}
	g.painter.Blit(screen, 0, 0, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.creature.Config)
	}
	if g.showHUD {
		_, h := g.Layout(0, 0)
		g.hud.Draw(screen, core.Size*g.scale, h)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := core.Size * g.scale
	h := core.Size * g.scale
	if g.showHUD {
		w += g.hud.Width()
		if hh := g.hud.Height(); hh > h {
			h = hh
		}
	}
	return w, h
}
