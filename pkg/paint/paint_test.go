package paint

import (
	"strconv"
	"testing"

	"fonsters/pkg/core"
	"fonsters/pkg/traits"
)

var allModes = []traits.AvatarMode{
	traits.ModeCreature,
	traits.ModeCloud,
	traits.ModeFlower,
	traits.ModeRepeating,
	traits.ModeSpace,
}

func checkRange(t *testing.T, g *core.Grid, count int, context string) {
	t.Helper()
	for i, v := range g.Cells() {
		if v < core.Transparent || int(v) >= count {
			t.Fatalf("%s: cell %d has value %d with %d colors", context, i, v, count)
		}
	}
}

func TestPaintValuesInPaletteRange(t *testing.T) {
	for i := 0; i < 400; i++ {
		seed := core.NewSeed("range-" + strconv.Itoa(i))
		cfg := traits.Resolve(seed)
		for _, mode := range allModes {
			cfg.Mode = mode
			g := Paint(seed, cfg)
			checkRange(t, &g, cfg.ColorCount(), seed.Text()+"/"+mode.String())
		}
	}
}

func TestPaintDeterministic(t *testing.T) {
	seed := core.NewSeed("same every time")
	cfg := traits.Resolve(seed)
	for _, mode := range allModes {
		cfg.Mode = mode
		if Paint(seed, cfg) != Paint(seed, cfg) {
			t.Fatalf("mode %s painted two different grids", mode)
		}
	}
}

func TestSymmetricCreaturesMirrorBeforeSpeckles(t *testing.T) {
	opts := Options{SkipSpeckles: true, SkipFrameMask: true}
	checked := 0
	for i := 0; i < 600; i++ {
		seed := core.NewSeed("sym-" + strconv.Itoa(i))
		cfg := traits.Resolve(seed)
		if !cfg.SymmetricVertical || cfg.Mode != traits.ModeCreature {
			continue
		}
		checked++
		g := PaintWith(seed, cfg, opts)
		for y := 0; y < core.Size; y++ {
			for x := 0; x < core.Size; x++ {
				var twin int8
				if cfg.Axis == traits.AxisHorizontal {
					twin = g.At(x, core.Size-1-y)
				} else {
					twin = g.At(core.Size-1-x, y)
				}
				if g.At(x, y) != twin {
					t.Fatalf("seed %q (%s axis) not mirrored at (%d,%d)", seed.Text(), cfg.Axis, x, y)
				}
			}
		}
	}
	if checked < 400 {
		t.Fatalf("only %d symmetric creatures checked", checked)
	}
}

func TestHorizontalAxisScenesMirrorRows(t *testing.T) {
	seed := core.NewSeed("scenes")
	cfg := traits.Resolve(seed)
	cfg.Axis = traits.AxisHorizontal
	for _, mode := range allModes[1:] {
		cfg.Mode = mode
		g := Paint(seed, cfg)
		rows := g.Rows()
		for y := 0; y < core.MirrorStart; y++ {
			for x := range rows[y] {
				if rows[y][x] != rows[core.Size-1-y][x] {
					t.Fatalf("mode %s row %d not mirrored", mode, y)
				}
			}
		}
	}
}

func TestTierOneBlob(t *testing.T) {
	cfg := traits.CreatureConfig{
		Tier:              1,
		Palette:           []string{"#ffffff", "#000000"},
		SymmetricVertical: true,
		Shape:             traits.ShapeCircle,
	}
	g := Paint(core.NewSeed("blob"), cfg)
	filled := 0
	for _, v := range g.Cells() {
		switch v {
		case 0:
			filled++
		case core.Transparent:
		default:
			t.Fatalf("blob used color %d", v)
		}
	}
	if filled != 316 {
		t.Fatalf("tier 1 blob covers %d cells, want 316", filled)
	}
	if g.At(16, 16) != 0 || g.At(0, 0) != core.Transparent {
		t.Fatal("blob not centered")
	}
}

func TestOpaqueBackgroundShiftsFill(t *testing.T) {
	cfg := traits.CreatureConfig{
		Tier:                4,
		Palette:             []string{"#111111", "#222222", "#333333"},
		HasOpaqueBackground: true,
		SymmetricVertical:   true,
		Shape:               traits.ShapeRect,
	}
	g := PaintWith(core.NewSeed("opaque"), cfg, Options{SkipSpeckles: true})
	if g.At(0, 0) != 0 {
		t.Fatalf("background cell = %d, want slot 0", g.At(0, 0))
	}
	if g.At(16, 16) != 1 {
		t.Fatalf("head cell = %d, want slot 1", g.At(16, 16))
	}
	for _, v := range g.Cells() {
		if v == core.Transparent {
			t.Fatal("opaque rect creature has a transparent cell")
		}
	}
}

func TestFrameMaskClearsCorners(t *testing.T) {
	cfg := traits.CreatureConfig{
		Tier:                4,
		Palette:             []string{"#111111", "#222222", "#333333"},
		HasOpaqueBackground: true,
		SymmetricVertical:   true,
		Shape:               traits.ShapeCircle,
		Aspect:              traits.Aspect{RX: 1, RY: 1},
	}
	seed := core.NewSeed("masked")
	unmasked := PaintWith(seed, cfg, Options{SkipSpeckles: true, SkipFrameMask: true})
	masked := PaintWith(seed, cfg, Options{SkipSpeckles: true})
	if unmasked.At(0, 0) != 0 {
		t.Fatalf("unmasked corner = %d", unmasked.At(0, 0))
	}
	for _, p := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {31, 31}} {
		if v := masked.At(p[0], p[1]); v != core.Transparent {
			t.Fatalf("masked corner %v = %d", p, v)
		}
	}
	if masked.At(16, 16) != 1 {
		t.Fatalf("frame mask cleared the center")
	}
}

func TestRolesClamp(t *testing.T) {
	r := newRoles(traits.CreatureConfig{Palette: []string{"#000", "#fff"}})
	if r.bg != core.Transparent || r.fill != 0 {
		t.Fatalf("transparent roles = %+v", r)
	}
	if got := r.index(roleBody); got != r.fill {
		t.Fatalf("out-of-range role = %d, want fill", got)
	}
	if got := r.index(roleFace); got != 1 {
		t.Fatalf("face role = %d, want 1", got)
	}
	for i := 0; i < 6; i++ {
		if v := r.cycle(i); v < 0 || v > 1 {
			t.Fatalf("cycle(%d) = %d", i, v)
		}
	}
}

func TestMouthStyles(t *testing.T) {
	if !inMouth(traits.MouthNeutral, 3, 0) || inMouth(traits.MouthNeutral, 2, 0) {
		t.Fatal("neutral mouth should be a single row")
	}
	if !inMouth(traits.MouthOpen, 4, 1.5) || inMouth(traits.MouthOpen, 4, 2.5) {
		t.Fatal("open mouth width wrong")
	}
	if !inMouth(traits.MouthSmiling, 2, 2.5) || inMouth(traits.MouthSmiling, 2, 0.5) {
		t.Fatal("smiling mouth corners should sit a row above the middle")
	}
	if inMouth(traits.MouthNeutral, 3, 3.5) {
		t.Fatal("mouth wider than its half width")
	}
}
