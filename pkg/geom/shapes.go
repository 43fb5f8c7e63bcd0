// Package geom holds the point-membership tests and line rasterization used by
// the painters. Coordinates are continuous; grid cells are sampled at their
// centers (x+0.5, y+0.5).
package geom

import "math"

// Point is a continuous grid coordinate.
type Point struct {
	X, Y float64
}

// CellCenter returns the sampling point of cell (x, y).
func CellCenter(x, y int) Point {
	return Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// InCircle reports whether p lies inside the circle at c with radius r.
func InCircle(p, c Point, r float64) bool {
	dx := p.X - c.X
	dy := p.Y - c.Y
	return dx*dx+dy*dy <= r*r
}

// InEllipse reports whether p lies inside the axis-aligned ellipse at c.
func InEllipse(p, c Point, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx := (p.X - c.X) / rx
	ny := (p.Y - c.Y) / ry
	return nx*nx+ny*ny <= 1
}

// InSquare reports whether p lies inside the square of half-size r at c.
func InSquare(p, c Point, r float64) bool {
	return math.Abs(p.X-c.X) <= r && math.Abs(p.Y-c.Y) <= r
}

// RegularPolygon returns the n vertices of a regular polygon with
// circumradius r. The first vertex points up.
func RegularPolygon(n int, c Point, r float64) []Point {
	if n < 3 {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		a := (-90 + float64(i)*360/float64(n)) * math.Pi / 180
		pts[i] = Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return pts
}

// InPolygon is an even-odd ray-casting test.
func InPolygon(p Point, poly []Point) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}
