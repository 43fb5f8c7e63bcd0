// Package fonster is the public entry point: a seed string goes in, a 32×32
// grid of palette indices (or the palette itself) comes out. Every function is
// pure and safe for concurrent use.
package fonster

import (
	"image"

	"fonsters/internal/render"
	"fonsters/pkg/core"
	"fonsters/pkg/paint"
	"fonsters/pkg/traits"
)

// Grid is a generated 32×32 image of palette indices.
type Grid = core.Grid

// Config is the resolved creature config.
type Config = traits.CreatureConfig

// Creature bundles everything derived from one seed.
type Creature struct {
	Seed   core.Seed
	Config Config
	Grid   Grid
}

// New hashes seed once and derives both the config and the grid from it.
func New(seed string) Creature {
	s := core.NewSeed(seed)
	cfg := traits.Resolve(s)
	return Creature{Seed: s, Config: cfg, Grid: paint.Paint(s, cfg)}
}

// GenerateGrid returns the grid for seed. Empty and whitespace-only seeds
// render the same as " ".
func GenerateGrid(seed string) Grid {
	return New(seed).Grid
}

// PaletteForSeed returns the seed's palette and whether its background is
// opaque.
func PaletteForSeed(seed string) ([]string, bool) {
	cfg := traits.ResolveString(seed)
	return cfg.Palette, cfg.HasOpaqueBackground
}

// ResolveConfig returns the creature config for seed.
func ResolveConfig(seed string) Config {
	return traits.ResolveString(seed)
}

// Inspect returns the creature grid before the speckle and frame-mask passes.
// Symmetric creatures are exactly mirrored at this stage.
func Inspect(seed string) Grid {
	s := core.NewSeed(seed)
	return paint.PaintWith(s, traits.Resolve(s), paint.Options{SkipSpeckles: true, SkipFrameMask: true})
}

// Render rasterizes the seed's grid through its palette.
func Render(seed string) *image.NRGBA {
	c := New(seed)
	return render.Image(&c.Grid, c.Config.Palette)
}
