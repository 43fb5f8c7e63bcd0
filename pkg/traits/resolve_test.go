package traits

import (
	"slices"
	"strconv"
	"testing"

	"fonsters/pkg/core"
)

func TestResolveHelloWorld(t *testing.T) {
	c := ResolveString("hello world")
	if c.Tier != 3 {
		t.Fatalf("tier = %d, want 3", c.Tier)
	}
	if c.Mode != ModeCreature || c.Axis != AxisVertical {
		t.Fatalf("mode/axis = %s/%s", c.Mode, c.Axis)
	}
	if c.PaletteIndex != 4 {
		t.Fatalf("palette index = %d, want 4", c.PaletteIndex)
	}
	if want := []string{"#ef476f", "#073b4c"}; !slices.Equal(c.Palette, want) {
		t.Fatalf("palette = %v, want %v", c.Palette, want)
	}
	if !c.SymmetricVertical || c.Shape != ShapeRect {
		t.Fatalf("symmetric=%v shape=%s", c.SymmetricVertical, c.Shape)
	}
	if !c.HasEyes || c.Eye != EyeRound || !c.HasMouth {
		t.Fatalf("eyes=%v eye=%s mouth=%v", c.HasEyes, c.Eye, c.HasMouth)
	}
	if c.HasAppendages || c.AppendageCount != 4 || c.AppendageStyle != AppendageArm {
		t.Fatalf("appendages=%v count=%d style=%s", c.HasAppendages, c.AppendageCount, c.AppendageStyle)
	}
}

func TestResolveDeterministic(t *testing.T) {
	for i := 0; i < 200; i++ {
		seed := "det-" + strconv.Itoa(i)
		a := ResolveString(seed)
		b := Resolve(core.NewSeed(seed))
		if !a.Equal(b) {
			t.Fatalf("seed %q resolved differently on second call", seed)
		}
	}
}

func TestResolveBlankSeeds(t *testing.T) {
	want := ResolveString(" ")
	for _, s := range []string{"", "  ", "\t"} {
		if !ResolveString(s).Equal(want) {
			t.Fatalf("seed %q should resolve like a single space", s)
		}
	}
}

func TestTierGates(t *testing.T) {
	seen := make(map[int]bool)
	for i := 0; i < 3000; i++ {
		c := ResolveString("tier-" + strconv.Itoa(i))
		seen[c.Tier] = true
		if c.Tier < 1 || c.Tier > 5 {
			t.Fatalf("tier %d out of range", c.Tier)
		}
		if c.PaletteIndex < 0 || c.PaletteIndex >= PaletteCount {
			t.Fatalf("palette index %d out of range", c.PaletteIndex)
		}
		wantColors := map[int]int{1: 2, 2: 2, 3: 2, 4: 3}[c.Tier]
		if c.Tier == 5 {
			if n := c.ColorCount(); n < 4 || n > 6 {
				t.Fatalf("tier 5 color count %d", n)
			}
		} else if c.ColorCount() != wantColors {
			t.Fatalf("tier %d color count %d, want %d", c.Tier, c.ColorCount(), wantColors)
		}
		if !slices.Equal(c.Palette, RawPalette(c.PaletteIndex)[:c.ColorCount()]) {
			t.Fatalf("palette is not a prefix of raw palette %d", c.PaletteIndex)
		}
		if c.Tier <= 2 && !c.SymmetricVertical {
			t.Fatalf("tier %d must be symmetric", c.Tier)
		}
		if c.Tier == 1 && c.Shape != ShapeCircle {
			t.Fatalf("tier 1 shape = %s", c.Shape)
		}
		if c.Tier < 3 && (c.HasEyes || c.HasMouth || c.HasAppendages) {
			t.Fatalf("tier %d has face features", c.Tier)
		}
		if c.Tier < 4 {
			if c.HasOpaqueBackground || c.HasNose || c.HasBody || c.HasHair || c.HasEyebrow ||
				c.HasBeard || c.HasEars || c.HasHorn || c.HasAntlers || c.SymmetricDiagonal || c.UpsideDown {
				t.Fatalf("tier %d has tier-4 features: %+v", c.Tier, c)
			}
			if c.Shape != ShapeRect && c.Shape != ShapeCircle {
				t.Fatalf("tier %d shape %s", c.Tier, c.Shape)
			}
		}
		if c.HasAppendages && !slices.Contains(appendageCounts[:], c.AppendageCount) {
			t.Fatalf("appendage count %d", c.AppendageCount)
		}
		if c.Aspect.RX < aspectMin || c.Aspect.RX >= aspectMin+aspectSpan {
			t.Fatalf("aspect rx %v out of range", c.Aspect.RX)
		}
	}
	for tier := 1; tier <= 5; tier++ {
		if !seen[tier] {
			t.Fatalf("no seed reached tier %d", tier)
		}
	}
}

func TestModeBands(t *testing.T) {
	cases := []struct {
		u    float64
		want AvatarMode
	}{
		{0, ModeCloud},
		{0.0099, ModeCloud},
		{0.01, ModeFlower},
		{0.025, ModeRepeating},
		{0.035, ModeSpace},
		{0.04, ModeCreature},
		{0.999, ModeCreature},
	}
	for _, tc := range cases {
		if got := resolveMode(tc.u); got != tc.want {
			t.Fatalf("resolveMode(%v) = %s, want %s", tc.u, got, tc.want)
		}
	}
}

func TestRawPaletteClamps(t *testing.T) {
	if !slices.Equal(RawPalette(-1), RawPalette(0)) {
		t.Fatal("negative index should clamp to palette 0")
	}
	if !slices.Equal(RawPalette(PaletteCount+3), RawPalette(PaletteCount-1)) {
		t.Fatal("large index should clamp to the last palette")
	}
	p := RawPalette(0)
	p[0] = "#000000"
	if RawPalette(0)[0] == "#000000" {
		t.Fatal("RawPalette must return a copy")
	}
}

func TestParametersSnapshot(t *testing.T) {
	c := ResolveString("hello world")
	snap := c.Parameters()
	if v, ok := snap.Lookup("tier"); !ok || v != "3" {
		t.Fatalf("tier param = %q, %v", v, ok)
	}
	if v, ok := snap.Lookup("eye_shape"); !ok || v != "round" {
		t.Fatalf("eye_shape param = %q, %v", v, ok)
	}
	if v, ok := snap.Lookup("mode"); !ok || v != "creature" {
		t.Fatalf("mode param = %q, %v", v, ok)
	}
	names := make([]string, 0, len(snap.Groups))
	for _, g := range snap.Groups {
		names = append(names, g.Name)
	}
	if want := []string{"Avatar", "Shape", "Face", "Extras", "Appendages"}; !slices.Equal(names, want) {
		t.Fatalf("groups = %v, want %v", names, want)
	}
}

func TestEnumStrings(t *testing.T) {
	if got := ShapeHexagon.String(); got != "hexagon" {
		t.Fatalf("ShapeHexagon = %q", got)
	}
	if got := AvatarMode(200).String(); got == "" {
		t.Fatal("unknown enum values should still print something")
	}
}

func TestConfigEqual(t *testing.T) {
	a := ResolveString("equal")
	b := ResolveString("equal")
	if !a.Equal(b) {
		t.Fatal("configs for the same seed should be equal")
	}

	b.Palette = append([]string(nil), a.Palette...)
	b.Palette[0] = "#000001"
	if a.Equal(b) {
		t.Fatal("configs with different palettes compared equal")
	}

	c := ResolveString("equal")
	c.Palette = c.Palette[:1]
	if a.Equal(c) {
		t.Fatal("configs with different palette lengths compared equal")
	}

	d := ResolveString("equal")
	d.Aspect.RY += 0.01
	if a.Equal(d) {
		t.Fatal("configs with different aspects compared equal")
	}

	e := ResolveString("equal")
	e.HasHorn = !e.HasHorn
	if a.Equal(e) {
		t.Fatal("configs with different horn flags compared equal")
	}
}
