//go:build ebiten

package render

import (
	"fonsters/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a Size×Size image updated from creature grids.
type GridPainter struct {
	img *ebiten.Image
	buf []byte
}

// NewGridPainter allocates the backing image.
func NewGridPainter() *GridPainter {
	return &GridPainter{
		img: ebiten.NewImage(core.Size, core.Size),
		buf: make([]byte, 4*core.Size*core.Size),
	}
}

// Upload rasterizes g through palette into the painter image.
func (gp *GridPainter) Upload(g *core.Grid, palette []string) {
	FillRGBA(gp.buf, g, palette)
	gp.img.WritePixels(gp.buf)
}

// Blit draws the current image scaled by scale at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, x, y float64, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return core.Size, core.Size }
