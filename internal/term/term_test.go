package term

import (
	"strings"
	"testing"

	"fonsters/pkg/core"
	"fonsters/pkg/traits"

	"github.com/gdamore/tcell/v2"
)

func TestHalfBlock(t *testing.T) {
	cases := []struct {
		top, bottom int8
		want        rune
	}{
		{-1, -1, ' '},
		{-1, 2, lowerHalf},
		{2, -1, upperHalf},
		{1, 1, fullBlock},
		{1, 2, upperHalf},
	}
	for _, tc := range cases {
		if got := halfBlock(tc.top, tc.bottom); got != tc.want {
			t.Fatalf("halfBlock(%d,%d) = %q, want %q", tc.top, tc.bottom, got, tc.want)
		}
	}
}

func TestBlocksShape(t *testing.T) {
	g := core.NewGrid(core.Transparent)
	out := Blocks(&g, []string{"#000000"})
	lines := strings.Split(out, "\n")
	if len(lines) != core.Size/2 {
		t.Fatalf("got %d lines, want %d", len(lines), core.Size/2)
	}
	for _, l := range lines {
		if l != strings.Repeat(" ", core.Size) {
			t.Fatalf("empty grid line = %q", l)
		}
	}
	g.Set(0, 0, 0)
	if !strings.ContainsRune(Blocks(&g, []string{"#000000"}), upperHalf) {
		t.Fatal("top-only cell should use the upper half block")
	}
}

func TestTraitTable(t *testing.T) {
	cfg := traits.ResolveString("hello world")
	out := TraitTable(cfg.Parameters())
	for _, want := range []string{"Group", "Trait", "Value", "Avatar", "Tier", "creature"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(80, 24)
	t.Cleanup(s.Fini)
	return s
}

func TestPreviewDrawsGrid(t *testing.T) {
	s := newSimScreen(t)
	p := NewPreview(s, "hello world")
	p.Draw()
	cells, w, _ := s.GetContents()
	g := &p.creature.Grid
	for y := 0; y < core.Size/2; y++ {
		for x := 0; x < core.Size; x++ {
			want := halfBlock(g.At(x, 2*y), g.At(x, 2*y+1))
			cell := cells[y*w+x]
			if len(cell.Runes) == 0 || cell.Runes[0] != want {
				t.Fatalf("cell (%d,%d) = %q, want %q", x, y, cell.Runes, want)
			}
		}
	}
}

func TestPreviewEditing(t *testing.T) {
	s := newSimScreen(t)
	p := NewPreview(s, "ab")
	key := func(k tcell.Key, r rune) bool {
		return p.HandleEvent(tcell.NewEventKey(k, r, tcell.ModNone))
	}
	key(tcell.KeyRune, 'c')
	key(tcell.KeyBackspace2, 0)
	key(tcell.KeyRune, '7')
	if p.Input() != "ab7" || p.Seed() != "ab" {
		t.Fatalf("input %q seed %q", p.Input(), p.Seed())
	}
	key(tcell.KeyEnter, 0)
	if p.Seed() != "ab7" {
		t.Fatalf("enter should regenerate, seed %q", p.Seed())
	}
	key(tcell.KeyUp, 0)
	if p.Seed() != "ab8" {
		t.Fatalf("up should step the seed, got %q", p.Seed())
	}
	if key(tcell.KeyEscape, 0) {
		t.Fatal("escape should stop the preview")
	}
}

func TestPreviewRunStopsOnEscape(t *testing.T) {
	s := newSimScreen(t)
	p := NewPreview(s, "run")
	s.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	p.Run()
	if p.Input() != "runx" {
		t.Fatalf("input = %q", p.Input())
	}
}
