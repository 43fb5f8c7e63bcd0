//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"fonsters/pkg/core"
	"fonsters/pkg/traits"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional guides on top of the creature view.
type Overlay struct {
	scale     int
	showGrid  bool
	showAxis  bool
	showCheck bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int, enabled bool) *Overlay {
	o := &Overlay{scale: scale, showAxis: enabled, showCheck: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles guides from number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showGrid = !o.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		o.showAxis = !o.showAxis
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.showCheck = !o.showCheck
	}
}

// DrawUnder paints a checkerboard where transparent cells will show through.
func (o *Overlay) DrawUnder(screen *ebiten.Image) {
	if !o.showCheck {
		return
	}
	s := float64(o.cellScale())
	half := s / 2
	light := color.RGBA{R: 60, G: 60, B: 66, A: 255}
	dark := color.RGBA{R: 44, G: 44, B: 50, A: 255}
	for y := 0; y < core.Size*2; y++ {
		for x := 0; x < core.Size*2; x++ {
			col := dark
			if (x+y)%2 == 0 {
				col = light
			}
			o.drawRect(screen, float64(x)*half, float64(y)*half, half, half, col)
		}
	}
}

// Draw renders the enabled guides for cfg.
func (o *Overlay) Draw(screen *ebiten.Image, cfg traits.CreatureConfig) {
	s := float64(o.cellScale())
	extent := s * core.Size
	if o.showGrid {
		col := color.RGBA{R: 0, G: 0, B: 0, A: 60}
		for i := 0; i <= core.Size; i++ {
			o.drawLine(screen, float64(i)*s, 0, float64(i)*s, extent, 1, col)
			o.drawLine(screen, 0, float64(i)*s, extent, float64(i)*s, 1, col)
		}
	}
	if o.showAxis && cfg.SymmetricVertical {
		col := color.RGBA{R: 255, G: 80, B: 120, A: 180}
		mid := core.Mid * s
		if cfg.Axis == traits.AxisHorizontal {
			o.drawLine(screen, 0, mid, extent, mid, 2, col)
		} else {
			o.drawLine(screen, mid, 0, mid, extent, 2, col)
		}
	}
}

func (o *Overlay) cellScale() int {
	if o.scale <= 0 {
		return 1
	}
	return o.scale
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
