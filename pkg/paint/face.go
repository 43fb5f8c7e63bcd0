package paint

import (
	"math"

	"fonsters/pkg/core"
	"fonsters/pkg/geom"
	"fonsters/pkg/traits"
)

// face holds the eye and ear anchors derived from the head.
type face struct {
	eyes  [2]geom.Point
	ears  [2]geom.Point
	shape traits.EyeShape
}

func newFace(seed core.Seed, cfg traits.CreatureConfig, h head) face {
	s := 2 + float64(seed.Pick("eye_spacing", 2))
	eyeY := h.c.Y - 2.5
	earY := h.c.Y - h.r/2
	return face{
		eyes: [2]geom.Point{
			{X: h.c.X - 0.5 - s, Y: eyeY},
			{X: h.c.X + 0.5 + s, Y: eyeY},
		},
		ears: [2]geom.Point{
			{X: h.c.X - h.r, Y: earY},
			{X: h.c.X + h.r, Y: earY},
		},
		shape: cfg.Eye,
	}
}

// offset returns p relative to the eye centers as integer cell offsets; the
// right eye is reflected so both eyes share one stamp.
func (f face) offset(p geom.Point, i int) (int, int) {
	ex := math.Round(p.X - f.eyes[i].X)
	if i == 1 {
		ex = -ex
	}
	return int(ex), int(math.Round(p.Y - f.eyes[i].Y))
}

func (f face) eyeAt(p geom.Point) bool {
	for i := range f.eyes {
		ex, ey := f.offset(p, i)
		if eyeStamp(f.shape, ex, ey) {
			return true
		}
	}
	return false
}

func (f face) browAt(p geom.Point) bool {
	for i := range f.eyes {
		ex, ey := f.offset(p, i)
		if ey == -2 && abs(ex) <= 1 {
			return true
		}
	}
	return false
}

func (f face) earAt(p geom.Point) bool {
	return geom.InCircle(p, f.ears[0], earRadius) || geom.InCircle(p, f.ears[1], earRadius)
}

func eyeStamp(shape traits.EyeShape, ex, ey int) bool {
	ax, ay := abs(ex), abs(ey)
	switch shape {
	case traits.EyeRound:
		return ex*ex+ey*ey <= 1
	case traits.EyeDot:
		return ax == 0 && ay == 0
	case traits.EyeTall:
		return ax == 0 && ay <= 1
	case traits.EyeWide:
		return ax <= 1 && ay == 0
	case traits.EyeDiamond:
		return ax+ay <= 2 && ay <= 1
	case traits.EyeCross:
		return ax == ay && ax <= 1
	case traits.EyeSlit:
		return ax <= 2 && ay == 0
	default:
		return ax <= 1 && ay <= 1
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
