// Package term renders creatures for terminals: a styled half-block dump,
// a trait table, and an interactive tcell preview.
package term

import (
	"fmt"
	"strings"

	"fonsters/internal/render"
	"fonsters/pkg/core"

	"github.com/charmbracelet/lipgloss"
)

// Half-block glyphs. Each terminal row shows two grid rows.
const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// halfBlock picks the glyph for a terminal cell covering top and bottom.
// The glyph is drawn in the foreground color; the other half, if any, uses
// the background.
func halfBlock(top, bottom int8) rune {
	switch {
	case top < 0 && bottom < 0:
		return ' '
	case top < 0:
		return lowerHalf
	case bottom < 0:
		return upperHalf
	case top == bottom:
		return fullBlock
	default:
		return upperHalf
	}
}

// Blocks renders g as Size/2 lines of ANSI-styled half blocks.
func Blocks(g *core.Grid, palette []string) string {
	colors := make([]lipgloss.Color, len(palette))
	for i, c := range render.PaletteRGBA(palette) {
		colors[i] = lipgloss.Color(hexString(c.R, c.G, c.B))
	}
	pick := func(v int8) lipgloss.Color {
		if int(v) >= len(colors) {
			return colors[len(colors)-1]
		}
		return colors[v]
	}
	var b strings.Builder
	for y := 0; y < core.Size; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < core.Size; x++ {
			top, bottom := g.At(x, y), g.At(x, y+1)
			glyph := halfBlock(top, bottom)
			if glyph == ' ' || len(colors) == 0 {
				b.WriteRune(glyph)
				continue
			}
			style := lipgloss.NewStyle()
			switch glyph {
			case lowerHalf:
				style = style.Foreground(pick(bottom))
			case upperHalf:
				style = style.Foreground(pick(top))
				if bottom >= 0 {
					style = style.Background(pick(bottom))
				}
			default:
				style = style.Foreground(pick(top))
			}
			b.WriteString(style.Render(string(glyph)))
		}
	}
	return b.String()
}

func hexString(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
