package paint

import (
	"math"

	"fonsters/pkg/core"
	"fonsters/pkg/geom"
	"fonsters/pkg/traits"
)

// Space scenes.
const (
	sceneMoon = iota
	sceneStarfield
	sceneNebula
	sceneGalaxy
	sceneCount
)

const (
	galaxyCore      = 2.5
	galaxyRadius    = 14.0
	galaxyArmWidth  = 0.28
	galaxyTwistMin  = 0.35
	galaxyTwistSpan = 0.2
)

func paintSpace(seed core.Seed, cfg traits.CreatureConfig, _ Options) core.Grid {
	r := newRoles(cfg)
	g := core.NewGrid(r.bg)
	yMax := paintRows(cfg)

	switch seed.Pick("space_scene", sceneCount) {
	case sceneMoon:
		paintMoon(&g, seed, r, yMax)
	case sceneStarfield:
		paintStars(&g, seed, r, yMax)
	case sceneNebula:
		paintNebula(&g, seed, r, yMax)
	default:
		paintGalaxy(&g, seed, r, yMax)
	}

	finishScene(&g, cfg)
	return g
}

func paintMoon(g *core.Grid, seed core.Seed, r roles, yMax int) {
	c := geom.Point{
		X: core.Mid + (seed.Hash("moon_x")-0.5)*6,
		Y: core.Mid + (seed.Hash("moon_y")-0.5)*6,
	}
	radius := 8 + seed.Hash("moon_r")*3
	fillCircle(g, c, radius, yMax, r.fill)

	craters := 2 + seed.Pick("moon_craters", 3)
	for i := 0; i < craters; i++ {
		a := seed.Hash(segment("crater_a_", i)) * 2 * math.Pi
		d := seed.Hash(segment("crater_d_", i)) * (radius - 3)
		cr := 1 + seed.Hash(segment("crater_r_", i))*1.5
		fillCircle(g, geom.Point{X: c.X + d*math.Cos(a), Y: c.Y + d*math.Sin(a)}, cr, yMax, r.index(roleFace))
	}
}

func paintStars(g *core.Grid, seed core.Seed, r roles, yMax int) {
	stars := 12 + seed.Pick("star_count", 12)
	for i := 0; i < stars; i++ {
		x := seed.Pick(segment("star_x_", i), core.Size)
		y := seed.Pick(segment("star_y_", i), core.Size)
		v := int8(seed.Pick(segment("star_c_", i), r.count))
		if v == r.bg {
			v = r.fill
		}
		if y >= yMax {
			continue
		}
		g.Set(x, y, v)
		if i%5 == 0 {
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				if y+d[1] < yMax {
					g.Set(x+d[0], y+d[1], v)
				}
			}
		}
	}
}

func paintNebula(g *core.Grid, seed core.Seed, r roles, yMax int) {
	blobs := 3 + seed.Pick("nebula_blobs", 3)
	for i := 0; i < blobs; i++ {
		c := geom.Point{
			X: 4 + seed.Hash(segment("nebula_x_", i))*24,
			Y: 4 + seed.Hash(segment("nebula_y_", i))*24,
		}
		fillCircle(g, c, 4+seed.Hash(segment("nebula_r_", i))*4, yMax, r.cycle(i))
	}
}

// paintGalaxy assigns each cell to a spiral arm by its polar angle, twisted
// by distance from the core.
func paintGalaxy(g *core.Grid, seed core.Seed, r roles, yMax int) {
	arms := 2 + seed.Pick("galaxy_arms", 2)
	twist := galaxyTwistMin + seed.Hash("galaxy_twist")*galaxyTwistSpan
	c := geom.Point{X: core.Mid, Y: core.Mid}
	for y := 0; y < yMax; y++ {
		for x := 0; x < core.Size; x++ {
			p := geom.CellCenter(x, y)
			dx, dy := p.X-c.X, p.Y-c.Y
			dist := math.Hypot(dx, dy)
			switch {
			case dist < galaxyCore:
				g.Set(x, y, r.index(roleFace))
			case dist < galaxyRadius:
				phase := math.Atan2(dy, dx) - dist*twist
				pos := phase * float64(arms) / (2 * math.Pi)
				arm := int(math.Floor(pos))
				if pos-math.Floor(pos) < galaxyArmWidth {
					g.Set(x, y, r.cycle(((arm%arms)+arms)%arms))
				}
			}
		}
	}
}
