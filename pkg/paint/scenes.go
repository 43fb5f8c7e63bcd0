package paint

import (
	"math"
	"strconv"

	"fonsters/pkg/core"
	"fonsters/pkg/geom"
	"fonsters/pkg/traits"
)

// fillCircle paints every cell whose center lies inside the circle, limited to
// rows above yMax.
func fillCircle(g *core.Grid, c geom.Point, radius float64, yMax int, v int8) {
	for y := 0; y < yMax; y++ {
		for x := 0; x < core.Size; x++ {
			if geom.InCircle(geom.CellCenter(x, y), c, radius) {
				g.Set(x, y, v)
			}
		}
	}
}

func paintCloud(seed core.Seed, cfg traits.CreatureConfig, _ Options) core.Grid {
	r := newRoles(cfg)
	g := core.NewGrid(r.bg)
	yMax := paintRows(cfg)

	blobs := 4 + seed.Pick("cloud_blobs", 4)
	for i := 0; i < blobs; i++ {
		c := geom.Point{
			X: 8 + seed.Hash(segment("cloud_x_", i))*16,
			Y: 12 + seed.Hash(segment("cloud_y_", i))*8,
		}
		radius := 4 + seed.Hash(segment("cloud_r_", i))*3
		for y := 0; y < yMax; y++ {
			for x := 0; x < core.Size; x++ {
				p := geom.CellCenter(x, y)
				if !geom.InCircle(p, c, radius) {
					continue
				}
				if p.Y < c.Y-radius/3 {
					g.Set(x, y, r.index(roleFace))
				} else {
					g.Set(x, y, r.fill)
				}
			}
		}
	}

	finishScene(&g, cfg)
	return g
}

func paintFlower(seed core.Seed, cfg traits.CreatureConfig, _ Options) core.Grid {
	r := newRoles(cfg)
	g := core.NewGrid(r.bg)
	yMax := paintRows(cfg)
	center := geom.Point{X: core.Mid, Y: core.Mid}

	petals := 5 + seed.Pick("flower_petals", 4)
	ring := 7 + seed.Hash("flower_ring")*2
	phase := seed.Hash("flower_phase") * 360
	petalR := 3 + seed.Hash("flower_petal_r")*1.5
	for k := 0; k < petals; k++ {
		a := (phase + float64(k)*360/float64(petals)) * math.Pi / 180
		c := geom.Point{X: center.X + ring*math.Cos(a), Y: center.Y + ring*math.Sin(a)}
		fillCircle(&g, c, petalR, yMax, r.fill)
	}
	fillCircle(&g, center, 3+seed.Hash("flower_center_r")*1.5, yMax, r.index(roleFace))

	finishScene(&g, cfg)
	return g
}

func paintRepeating(seed core.Seed, cfg traits.CreatureConfig, _ Options) core.Grid {
	r := newRoles(cfg)
	g := core.NewGrid(r.bg)
	yMax := paintRows(cfg)

	n := 4 + seed.Pick("tile_size", 2)
	tile := make([]int8, n*n)
	for ty := 0; ty < n; ty++ {
		for tx := 0; tx < n; tx++ {
			v := int8(seed.Pick("tile_"+strconv.Itoa(tx)+"_"+strconv.Itoa(ty), r.count+1) - 1)
			if v < 0 {
				v = r.bg
			}
			tile[ty*n+tx] = v
		}
	}
	for y := 0; y < yMax; y++ {
		for x := 0; x < core.Size; x++ {
			g.Set(x, y, tile[(y%n)*n+x%n])
		}
	}

	finishScene(&g, cfg)
	return g
}
