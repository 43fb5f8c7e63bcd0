// Package paint rasterizes a resolved creature config onto a grid. Exactly
// one routine runs per grid, chosen by the config's avatar mode.
package paint

import (
	"strconv"

	"fonsters/pkg/core"
	"fonsters/pkg/traits"
)

// Options switches off the trailing creature passes. The zero value runs
// everything.
type Options struct {
	// SkipSpeckles leaves out the asymmetric speckle pass.
	SkipSpeckles bool
	// SkipFrameMask leaves out the final shape-mask crop.
	SkipFrameMask bool
}

type painter func(seed core.Seed, cfg traits.CreatureConfig, opts Options) core.Grid

var painters = map[traits.AvatarMode]painter{
	traits.ModeCreature:  paintCreature,
	traits.ModeCloud:     paintCloud,
	traits.ModeFlower:    paintFlower,
	traits.ModeRepeating: paintRepeating,
	traits.ModeSpace:     paintSpace,
}

// Paint renders cfg for seed with every pass enabled.
func Paint(seed core.Seed, cfg traits.CreatureConfig) core.Grid {
	return PaintWith(seed, cfg, Options{})
}

// PaintWith renders cfg for seed. Unknown modes fall back to the creature
// routine.
func PaintWith(seed core.Seed, cfg traits.CreatureConfig, opts Options) core.Grid {
	p, ok := painters[cfg.Mode]
	if !ok {
		p = paintCreature
	}
	return p(seed, cfg, opts)
}

// Palette roles, as offsets from the fill index.
const (
	roleFill   = 0
	roleFace   = 1
	roleAccent = 2
	roleBody   = 3
)

// roles maps drawing roles onto palette indices for one config. Opaque
// backgrounds take slot 0, pushing the fill to slot 1.
type roles struct {
	bg    int8
	fill  int8
	count int
}

func newRoles(cfg traits.CreatureConfig) roles {
	r := roles{bg: core.Transparent, count: cfg.ColorCount()}
	if cfg.HasOpaqueBackground {
		r.bg = 0
		r.fill = 1
	}
	if int(r.fill) >= r.count {
		r.fill = 0
	}
	return r
}

// index returns the palette index for a role offset, clamped to the fill
// when the palette is too short.
func (r roles) index(offset int) int8 {
	i := int(r.fill) + offset
	if i < 0 || i >= r.count {
		return r.fill
	}
	return int8(i)
}

// cycle walks the non-background slots.
func (r roles) cycle(i int) int8 {
	span := r.count - int(r.fill)
	if span <= 0 {
		return r.fill
	}
	return r.index(i % span)
}

func segment(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// paintRows returns the exclusive row limit for alternate modes: the top half
// when the seed mirrors across the horizontal axis.
func paintRows(cfg traits.CreatureConfig) int {
	if cfg.Axis == traits.AxisHorizontal {
		return core.MirrorStart
	}
	return core.Size
}

// finishScene mirrors the painted top half of an alternate-mode grid.
func finishScene(g *core.Grid, cfg traits.CreatureConfig) {
	if cfg.Axis == traits.AxisHorizontal {
		g.MirrorRows()
	}
}
