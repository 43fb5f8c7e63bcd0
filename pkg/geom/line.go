package geom

import (
	"math"

	"fonsters/pkg/core"
)

// Line describes a stroke starting at Start heading Angle degrees (0 = +x,
// 90 = +y, i.e. down on the grid).
type Line struct {
	Start     Point
	Angle     float64
	Length    float64
	Thickness float64
	// TaperEnd scales the thickness at the far end. Zero or >= 1 disables
	// tapering.
	TaperEnd float64
}

// End returns the far endpoint of the line.
func (l Line) End() Point {
	a := l.Angle * math.Pi / 180
	return Point{X: l.Start.X + math.Cos(a)*l.Length, Y: l.Start.Y + math.Sin(a)*l.Length}
}

// DrawThickLine stamps l onto g with value v. Writes outside the grid are
// dropped.
func DrawThickLine(g *core.Grid, l Line, v int8) {
	steps := int(math.Ceil(l.Length))
	if steps < 1 {
		steps = 1
	}
	a := l.Angle * math.Pi / 180
	dx, dy := math.Cos(a), math.Sin(a)
	taper := l.TaperEnd > 0 && l.TaperEnd < 1
	// Inclusive of both endpoints.
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := l.Start.X + dx*l.Length*t
		y := l.Start.Y + dy*l.Length*t
		thick := l.Thickness
		if taper {
			thick = l.Thickness * (1 - t*(1-l.TaperEnd))
		}
		stamp(g, x, y, math.Round(thick), v)
	}
}

// stamp paints a disc whose radius is the rounded thickness; thickness 1 or
// less is a single cell.
func stamp(g *core.Grid, x, y, thick float64, v int8) {
	cx := int(math.Floor(x))
	cy := int(math.Floor(y))
	if thick <= 1 {
		g.Set(cx, cy, v)
		return
	}
	r := thick
	lim := int(math.Ceil(r))
	// +0.5 rounds out small discs.
	rr := r*r + 0.5
	for oy := -lim; oy <= lim; oy++ {
		for ox := -lim; ox <= lim; ox++ {
			if float64(ox*ox+oy*oy) <= rr {
				g.Set(cx+ox, cy+oy, v)
			}
		}
	}
}
