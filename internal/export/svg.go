// Package export writes creature grids to vector formats.
package export

import (
	"fmt"
	"io"

	"fonsters/internal/render"
	"fonsters/pkg/core"

	svg "github.com/ajstarks/svgo"
)

// DefaultCell is the edge length of one grid cell in SVG user units.
const DefaultCell = 10

// SVG writes g as an SVG document where each horizontal run of equal cells
// becomes one rect. Transparent cells are left out. The first write error is
// returned.
func SVG(w io.Writer, g *core.Grid, palette []string, cell int, title string) error {
	if cell <= 0 {
		cell = DefaultCell
	}
	ew := &errWriter{w: w}
	colors := render.PaletteRGBA(palette)
	canvas := svg.New(ew)
	canvas.Start(core.Size*cell, core.Size*cell, `shape-rendering="crispEdges"`)
	if title != "" {
		canvas.Title(title)
	}
	for y := 0; y < core.Size; y++ {
		x := 0
		for x < core.Size {
			v := g.At(x, y)
			run := 1
			for x+run < core.Size && g.At(x+run, y) == v {
				run++
			}
			if v >= 0 {
				col := render.ColorAt(v, colors)
				canvas.Rect(x*cell, y*cell, run*cell, cell, "fill:"+hexColor(col.R, col.G, col.B))
			}
			x += run
		}
	}
	canvas.End()
	return ew.err
}

func hexColor(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}
