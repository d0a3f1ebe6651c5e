package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T, w, h int) (Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewFromScreen(screen, ColorModeTrueColor)
	if err := term.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	screen.SetSize(w, h)
	return term, screen
}

func TestFlushWritesCells(t *testing.T) {
	term, screen := newSimTerminal(t, 4, 2)
	defer term.Fini()

	cells := make([]Cell, 8)
	cells[1] = Cell{Rune: 'A', Fg: RGB{255, 0, 0}}
	cells[6] = Cell{Rune: 'B', Attrs: AttrBold}
	term.Flush(cells, 4, 2)

	if r, _, _, _ := screen.GetContent(1, 0); r != 'A' {
		t.Errorf("Expected 'A' at (1,0), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(2, 1); r != 'B' {
		t.Errorf("Expected 'B' at (2,1), got %q", r)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != ' ' {
		t.Errorf("Expected blank for zero rune, got %q", r)
	}

	// Unchanged frames still show later edits
	cells[1].Rune = 'C'
	term.Flush(cells, 4, 2)
	if r, _, _, _ := screen.GetContent(1, 0); r != 'C' {
		t.Errorf("Expected 'C' after second flush, got %q", r)
	}
}

func TestFiniTwice(t *testing.T) {
	term, _ := newSimTerminal(t, 2, 2)
	term.Fini()
	term.Fini()
}

func TestParseColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"truecolor": ColorModeTrueColor,
		"":          ColorModeTrueColor,
		"256":       ColorMode256,
		" 256 ":     ColorMode256,
	}
	for in, want := range cases {
		got, err := ParseColorMode(in)
		if err != nil || got != want {
			t.Errorf("ParseColorMode(%q): expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseColorMode("16"); err == nil {
		t.Error("Expected error for unsupported mode")
	}
}

func TestRGBHelpers(t *testing.T) {
	c := RGB{200, 100, 50}
	if got := c.Scale(0.5); got != (RGB{100, 50, 25}) {
		t.Errorf("Expected half brightness, got %v", got)
	}
	if got := c.Lerp(RGBBlack, 1); !got.Equal(RGBBlack) {
		t.Errorf("Expected black at t=1, got %v", got)
	}
	if got := c.Scale(-1); got != RGBBlack {
		t.Errorf("Expected black for negative scale, got %v", got)
	}
}
