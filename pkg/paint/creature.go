package paint

import (
	"math"

	"fonsters/pkg/core"
	"fonsters/pkg/geom"
	"fonsters/pkg/traits"
)

const (
	tierOneRadius   = 10.0
	tierTwoRadius   = 9.0
	tierTwoSpan     = 4.0
	headRadiusMin   = 8.0
	headRadiusSpan  = 3.0
	bodyHeadLift    = 4.0
	bodyStartRow    = int(core.Mid) + 6
	bodyHalfWidth   = 8.0
	hairRows        = 3
	hairHalfWidth   = 6.0
	mouthHalfWidth  = 3.0
	beardHalfWidth  = 4.0
	earRadius       = 2.5
	asymEnableP     = 0.25
	asymMaxSpeckles = 5
)

// head is the un-mirrored head geometry in logical (upright) coordinates.
type head struct {
	c      geom.Point
	r      float64
	shape  traits.ShapeMask
	aspect traits.Aspect
	poly   []geom.Point
	top    int
}

func newHead(seed core.Seed, cfg traits.CreatureConfig) head {
	h := head{
		c:      geom.Point{X: core.Mid, Y: core.Mid},
		r:      headRadiusMin + seed.Hash("head_radius")*headRadiusSpan,
		shape:  cfg.Shape,
		aspect: cfg.Aspect,
	}
	if cfg.HasBody {
		h.c.Y -= bodyHeadLift
	}
	if n := cfg.Shape.Sides(); n > 0 {
		h.poly = geom.RegularPolygon(n, h.c, h.r)
	}
	extent := h.r
	if cfg.Shape == traits.ShapeEllipse {
		extent = h.r * cfg.Aspect.RY
	}
	h.top = int(math.Ceil(h.c.Y - extent - 0.5))
	return h
}

func (h head) contains(p geom.Point) bool {
	switch h.shape {
	case traits.ShapeCircle:
		return geom.InCircle(p, h.c, h.r)
	case traits.ShapeEllipse:
		return geom.InEllipse(p, h.c, h.r*h.aspect.RX, h.r*h.aspect.RY)
	case traits.ShapeRect:
		return geom.InSquare(p, h.c, h.r)
	default:
		return geom.InPolygon(p, h.poly)
	}
}

// row returns the integer row of the head center.
func (h head) row() int { return int(math.Floor(h.c.Y)) }

// screenY maps a logical row onto the grid, flipping for upside-down seeds.
func screenY(cfg traits.CreatureConfig, y int) int {
	if cfg.UpsideDown {
		return core.Size - 1 - y
	}
	return y
}

func paintCreature(seed core.Seed, cfg traits.CreatureConfig, opts Options) core.Grid {
	r := newRoles(cfg)
	if cfg.Tier <= 2 {
		return paintBlob(seed, cfg, r)
	}

	g := core.NewGrid(r.bg)
	h := newHead(seed, cfg)
	f := newFace(seed, cfg, h)
	for y := 0; y < core.Size; y++ {
		for x := 0; x < core.Size; x++ {
			g.Set(x, y, creatureCell(cfg, h, f, r, x, y))
		}
	}

	drawHorn(&g, cfg, h, r)
	drawAntlers(&g, cfg, h, r)
	drawAppendages(&g, seed, cfg, h, r)

	if cfg.SymmetricVertical {
		mirror(&g, cfg.Axis)
	}
	if !opts.SkipSpeckles && cfg.SymmetricVertical && seed.Roll("asym_enable", asymEnableP) {
		speckle(&g, seed, r)
	}
	if !opts.SkipFrameMask {
		applyFrameMask(&g, cfg)
	}
	return g
}

// paintBlob draws the tier 1 and tier 2 creature: a single centered circle.
func paintBlob(seed core.Seed, cfg traits.CreatureConfig, r roles) core.Grid {
	radius := tierOneRadius
	if cfg.Tier == 2 {
		radius = tierTwoRadius + seed.Hash("radius")*tierTwoSpan
	}
	g := core.NewGrid(r.bg)
	c := geom.Point{X: core.Mid, Y: core.Mid}
	for y := 0; y < core.Size; y++ {
		for x := 0; x < core.Size; x++ {
			if geom.InCircle(geom.CellCenter(x, y), c, radius) {
				g.Set(x, y, r.fill)
			}
		}
	}
	return g
}

// creatureCell computes one cell in z-order: head, eyes, mouth, nose,
// eyebrows, beard, ears, body, hair. Later layers win.
func creatureCell(cfg traits.CreatureConfig, h head, f face, r roles, x, y int) int8 {
	ly := screenY(cfg, y)
	px := x
	if cfg.SymmetricVertical {
		switch cfg.Axis {
		case traits.AxisVertical:
			if px >= core.MirrorStart {
				px = core.Size - 1 - px
			}
		case traits.AxisHorizontal:
			if ly >= core.MirrorStart {
				ly = core.Size - 1 - ly
			}
		}
	}

	p := geom.CellCenter(px, ly)
	dxc := p.X - h.c.X
	rel := ly - h.row()
	v := r.bg

	inHead := h.contains(p)
	if inHead {
		v = r.fill
		if cfg.Tier >= 4 && cfg.HasEyes && f.eyeAt(p) {
			v = r.index(roleFace)
		}
		if cfg.HasMouth && inMouth(cfg.Mouth, rel, dxc) {
			v = r.index(roleFace)
		}
		if cfg.HasNose && rel >= 0 && rel <= 1 && math.Abs(dxc) <= 0.5 {
			v = r.index(roleAccent)
		}
		if cfg.HasEyebrow && f.browAt(p) {
			v = r.index(roleFace)
		}
	}
	if cfg.HasBeard && rel >= 5 && rel <= 8 && math.Abs(dxc) <= beardHalfWidth-float64(rel-5) {
		v = r.index(roleAccent)
	}
	if cfg.HasEars && !inHead && f.earAt(p) {
		v = r.index(roleAccent)
	}
	if cfg.HasBody && ly > bodyStartRow && math.Abs(dxc) <= bodyHalfWidth {
		v = r.index(roleBody)
	}
	if cfg.HasHair && ly < h.top && ly >= h.top-hairRows && math.Abs(dxc) <= hairHalfWidth {
		v = r.index(roleBody)
	}
	return v
}

func inMouth(style traits.MouthStyle, rel int, dxc float64) bool {
	if rel < 2 || rel > 5 || math.Abs(dxc) > mouthHalfWidth {
		return false
	}
	ax := math.Abs(dxc)
	switch style {
	case traits.MouthOpen:
		return rel <= 4 && ax <= 2
	case traits.MouthSmiling:
		if ax <= 1.5 {
			return rel == 3
		}
		return rel == 2
	default:
		return rel == 3
	}
}

func mirror(g *core.Grid, axis traits.SymmetryAxis) {
	if axis == traits.AxisHorizontal {
		g.MirrorRows()
		return
	}
	g.MirrorColumns()
}

// speckle drops a few single-pixel colors onto the mirrored half.
func speckle(g *core.Grid, seed core.Seed, r roles) {
	n := seed.Pick("asym_count", asymMaxSpeckles)
	for i := 0; i < n; i++ {
		x := core.MirrorStart + seed.Pick(segment("asym_x_", i), core.Size-core.MirrorStart)
		y := seed.Pick(segment("asym_y_", i), core.Size)
		c := seed.Pick(segment("asym_c_", i), r.count)
		g.Set(x, y, int8(c))
	}
}

// applyFrameMask clears every cell outside the frame shape.
func applyFrameMask(g *core.Grid, cfg traits.CreatureConfig) {
	if cfg.Shape == traits.ShapeRect {
		return
	}
	frame := head{
		c:      geom.Point{X: core.Mid, Y: core.Mid},
		r:      core.Mid,
		shape:  cfg.Shape,
		aspect: cfg.Aspect,
	}
	if n := cfg.Shape.Sides(); n > 0 {
		frame.poly = geom.RegularPolygon(n, frame.c, frame.r)
	}
	for y := 0; y < core.Size; y++ {
		for x := 0; x < core.Size; x++ {
			if !frame.contains(geom.CellCenter(x, y)) {
				g.Set(x, y, core.Transparent)
			}
		}
	}
}
