package term

import (
	"fonsters/internal/app"
	"fonsters/internal/render"
	"fonsters/pkg/core"
	"fonsters/pkg/fonster"

	"github.com/gdamore/tcell/v2"
)

// Preview is an interactive terminal viewer. Typing edits the seed, Enter
// regenerates, Up/Down step a trailing number, Escape quits.
type Preview struct {
	screen   tcell.Screen
	creature fonster.Creature
	input    []rune
}

// OpenScreen creates and initializes the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return screen, nil
}

// NewPreview shows seed on an initialized screen.
func NewPreview(screen tcell.Screen, seed string) *Preview {
	p := &Preview{screen: screen, input: []rune(seed)}
	p.creature = fonster.New(seed)
	return p
}

// Seed returns the text of the creature on screen.
func (p *Preview) Seed() string { return p.creature.Seed.Text() }

// Input returns the pending seed text.
func (p *Preview) Input() string { return string(p.input) }

// Run draws and handles events until the user quits or the screen is
// finalized.
func (p *Preview) Run() {
	for {
		p.Draw()
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		if !p.HandleEvent(ev) {
			return
		}
	}
}

// HandleEvent applies one event and reports whether the preview should keep
// running.
func (p *Preview) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			p.regenerate(string(p.input))
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(p.input) > 0 {
				p.input = p.input[:len(p.input)-1]
			}
		case tcell.KeyUp:
			p.regenerate(app.StepSeed(string(p.input), 1))
		case tcell.KeyDown:
			p.regenerate(app.StepSeed(string(p.input), -1))
		case tcell.KeyRune:
			p.input = append(p.input, ev.Rune())
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

func (p *Preview) regenerate(seed string) {
	p.input = []rune(seed)
	p.creature = fonster.New(seed)
}

// Draw paints the creature in the top-left corner with the seed below it.
func (p *Preview) Draw() {
	p.screen.Clear()
	colors := render.PaletteRGBA(p.creature.Config.Palette)
	toColor := func(v int8) tcell.Color {
		c := render.ColorAt(v, colors)
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	g := &p.creature.Grid
	for y := 0; y < core.Size; y += 2 {
		for x := 0; x < core.Size; x++ {
			top, bottom := g.At(x, y), g.At(x, y+1)
			glyph := halfBlock(top, bottom)
			style := tcell.StyleDefault
			switch glyph {
			case lowerHalf:
				style = style.Foreground(toColor(bottom))
			case upperHalf:
				style = style.Foreground(toColor(top))
				if bottom >= 0 {
					style = style.Background(toColor(bottom))
				}
			case fullBlock:
				style = style.Foreground(toColor(top))
			}
			p.screen.SetContent(x, y/2, glyph, nil, style)
		}
	}
	row := core.Size/2 + 1
	p.drawText(0, row, "seed: "+p.creature.Seed.Text(), tcell.StyleDefault.Foreground(tcell.ColorSilver))
	p.drawText(0, row+1, "> "+string(p.input)+"_", tcell.StyleDefault.Foreground(tcell.ColorYellow))
	p.drawText(0, row+2, "enter: render  up/down: step  esc: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))
	p.screen.Show()
}

func (p *Preview) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		p.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
