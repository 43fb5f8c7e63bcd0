package paint

import (
	"math"

	"fonsters/pkg/core"
	"fonsters/pkg/geom"
	"fonsters/pkg/traits"
)

const (
	hornHeight      = 5
	hornLeft        = int(core.Mid) - 2
	hornWidth       = 3
	antlerStem      = 6
	antlerInset     = 5
	antlerBranchLen = 4.0

	legJitterDeg    = 18.0
	legLengthMin    = 6
	legLengthSpan   = 7
	legLengthJitter = 5
	legTaperP       = 0.4
	legTaper        = 0.4
	legOffset       = 1.5
	tentacleSplit   = 0.6
	tentacleCurlDeg = 30.0
	footLength      = 2.0
)

// stubRow returns the screen row i steps beyond the head top, growing up for
// upright creatures and down for upside-down ones.
func stubRow(cfg traits.CreatureConfig, h head, i int) int {
	if cfg.UpsideDown {
		return screenY(cfg, h.top) + i
	}
	return h.top - i
}

func drawHorn(g *core.Grid, cfg traits.CreatureConfig, h head, r roles) {
	if !cfg.HasHorn {
		return
	}
	for i := 1; i <= hornHeight; i++ {
		y := stubRow(cfg, h, i)
		for x := hornLeft; x < hornLeft+hornWidth; x++ {
			g.Set(x, y, r.fill)
		}
	}
}

func drawAntlers(g *core.Grid, cfg traits.CreatureConfig, h head, r roles) {
	if !cfg.HasAntlers {
		return
	}
	v := r.index(roleAccent)
	branches := [2]float64{-45, -135}
	if cfg.UpsideDown {
		branches = [2]float64{45, 135}
	}
	cx := int(h.c.X)
	for _, x := range [2]int{cx - antlerInset, cx + antlerInset - 1} {
		for i := 1; i <= antlerStem; i++ {
			g.Set(x, stubRow(cfg, h, i), v)
		}
		tip := geom.CellCenter(x, stubRow(cfg, h, antlerStem))
		for _, a := range branches {
			geom.DrawThickLine(g, geom.Line{Start: tip, Angle: a, Length: antlerBranchLen, Thickness: 1}, v)
		}
	}
}

// leg is one resolved appendage on the left side of the creature.
type leg struct {
	angle  float64
	length float64
	thick  float64
	curl   float64
}

func resolveLegs(seed core.Seed, cfg traits.CreatureConfig) ([]leg, float64) {
	countLeft := cfg.AppendageCount / 2
	baseLen := legLengthMin + seed.Pick("leg_length", legLengthSpan)
	baseThick := 1 + seed.Pick("leg_thickness", 2)
	taper := 1.0
	if seed.Roll("leg_taper", legTaperP) {
		taper = legTaper
	}

	legs := make([]leg, countLeft)
	for i := range legs {
		frac := (float64(i) + 0.5) / float64(countLeft)
		a := 120 + 120*frac
		if cfg.AppendageRadial {
			a = 90 + 180*frac
		}
		a += (seed.Hash(segment("leg_angle_", i))*2 - 1) * legJitterDeg
		thick := baseThick + seed.Pick(segment("leg_thick_", i), 3) - 1
		if thick < 1 {
			thick = 1
		}
		legs[i] = leg{
			angle:  a,
			length: float64(baseLen + seed.Pick(segment("leg_len_", i), legLengthJitter)),
			thick:  float64(thick),
			curl:   (seed.Hash(segment("leg_curl_", i))*2 - 1) * tentacleCurlDeg,
		}
	}
	return legs, taper
}

func drawAppendages(g *core.Grid, seed core.Seed, cfg traits.CreatureConfig, h head, r roles) {
	if !cfg.HasAppendages {
		return
	}
	legs, taper := resolveLegs(seed, cfg)
	c := h.c
	if cfg.UpsideDown {
		c.Y = float64(core.Size) - c.Y
	}
	for _, l := range legs {
		for k, a := range [2]float64{l.angle, 180 - l.angle} {
			curl := l.curl
			if k == 1 {
				curl = -curl
			}
			if cfg.UpsideDown {
				a = -a
				curl = -curl
			}
			rad := a * math.Pi / 180
			start := geom.Point{
				X: c.X + math.Cos(rad)*(h.r+legOffset),
				Y: c.Y + math.Sin(rad)*(h.r+legOffset),
			}
			drawLimb(g, cfg.AppendageStyle, start, a, curl, l, taper, r.fill)
		}
	}
}

func drawLimb(g *core.Grid, style traits.AppendageStyle, start geom.Point, a, curl float64, l leg, taper float64, v int8) {
	switch style {
	case traits.AppendageTentacle:
		first := geom.Line{Start: start, Angle: a, Length: l.length * tentacleSplit, Thickness: l.thick}
		geom.DrawThickLine(g, first, v)
		geom.DrawThickLine(g, geom.Line{
			Start:     first.End(),
			Angle:     a + curl,
			Length:    l.length * (1 - tentacleSplit),
			Thickness: l.thick,
			TaperEnd:  taper,
		}, v)
	case traits.AppendageLeg:
		line := geom.Line{Start: start, Angle: a, Length: l.length, Thickness: l.thick, TaperEnd: taper}
		geom.DrawThickLine(g, line, v)
		foot := 0.0
		if math.Cos(a*math.Pi/180) < 0 {
			foot = 180
		}
		geom.DrawThickLine(g, geom.Line{Start: line.End(), Angle: foot, Length: footLength, Thickness: 1}, v)
	default:
		geom.DrawThickLine(g, geom.Line{Start: start, Angle: a, Length: l.length, Thickness: l.thick, TaperEnd: taper}, v)
	}
}
