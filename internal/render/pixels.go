package render

import (
	"image"
	"image/color"
	"strconv"
	"strings"

	"fonsters/pkg/core"
)

// Fallback is used for palette entries that cannot be parsed.
var Fallback = color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

// ParseHex converts "#RRGGBB" or "#RGB" into an opaque color. The literal
// "transparent" maps to transparent black; anything else malformed maps to
// Fallback.
func ParseHex(s string) color.NRGBA {
	s = strings.TrimSpace(s)
	if s == "transparent" {
		return color.NRGBA{}
	}
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return Fallback
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return color.NRGBA{R: r<<4 | r, G: g<<4 | g, B: b<<4 | b, A: 0xff}
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Fallback
		}
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	default:
		return Fallback
	}
}

// PaletteRGBA parses every palette entry.
func PaletteRGBA(palette []string) []color.NRGBA {
	out := make([]color.NRGBA, len(palette))
	for i, s := range palette {
		out[i] = ParseHex(s)
	}
	return out
}

// ColorAt maps one grid value through the palette. Negative values are
// transparent and indices past the end clamp to the last slot.
func ColorAt(v int8, palette []color.NRGBA) color.NRGBA {
	if v < 0 || len(palette) == 0 {
		return color.NRGBA{}
	}
	idx := int(v)
	if last := len(palette) - 1; idx > last {
		idx = last
	}
	return palette[idx]
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []int8, palette []color.NRGBA) {
	for i, c := range cells {
		col := ColorAt(c, palette)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// FillRGBA writes g into buf, which must hold 4*Size*Size bytes.
func FillRGBA(buf []byte, g *core.Grid, palette []string) {
	if len(buf) < 4*core.Size*core.Size {
		return
	}
	fillPaletteRGBA(buf, g.Cells(), PaletteRGBA(palette))
}

// Image rasterizes g into a new Size×Size image.
func Image(g *core.Grid, palette []string) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, core.Size, core.Size))
	FillRGBA(img.Pix, g, palette)
	return img
}
