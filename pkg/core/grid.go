package core

// Size is the edge length of every generated grid.
const Size = 32

// Mid is the continuous center coordinate of the grid on both axes.
const Mid = float64(Size) / 2

// MirrorStart is the first column (or row) rewritten by a mirror pass.
const MirrorStart = Size / 2

// Transparent marks an unset cell.
const Transparent int8 = -1

// Grid stores a Size×Size matrix of palette indices in row-major order.
// Grid is a value type; two grids compare equal with == when every cell matches.
type Grid struct {
	data [Size * Size]int8
}

// NewGrid returns a grid with every cell set to v.
func NewGrid(v int8) Grid {
	var g Grid
	g.Fill(v)
	return g
}

// Cells exposes the backing array so callers can read values directly.
func (g *Grid) Cells() []int8 { return g.data[:] }

// Index returns the linear index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*Size + x }

// InBounds reports whether (x, y) lies on the grid.
func InBounds(x, y int) bool { return x >= 0 && x < Size && y >= 0 && y < Size }

// At returns the cell at (x, y), or Transparent when out of range.
func (g *Grid) At(x, y int) int8 {
	if !InBounds(x, y) {
		return Transparent
	}
	return g.data[y*Size+x]
}

// Set writes v at (x, y). Writes outside the grid are dropped.
func (g *Grid) Set(x, y int, v int8) {
	if !InBounds(x, y) {
		return
	}
	g.data[y*Size+x] = v
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// MirrorColumns copies the left half onto the right: column x takes the value
// of column Size-1-x for every x >= MirrorStart.
func (g *Grid) MirrorColumns() {
	for y := 0; y < Size; y++ {
		row := y * Size
		for x := MirrorStart; x < Size; x++ {
			g.data[row+x] = g.data[row+Size-1-x]
		}
	}
}

// MirrorRows copies the top half onto the bottom.
func (g *Grid) MirrorRows() {
	for y := MirrorStart; y < Size; y++ {
		copy(g.data[y*Size:(y+1)*Size], g.data[(Size-1-y)*Size:(Size-y)*Size])
	}
}

// Rows returns the grid as a slice of rows, mostly for printing and tests.
func (g *Grid) Rows() [][]int8 {
	rows := make([][]int8, Size)
	for y := range rows {
		rows[y] = append([]int8(nil), g.data[y*Size:(y+1)*Size]...)
	}
	return rows
}
