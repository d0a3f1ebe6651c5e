package terminal

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone    Attr = 0
	AttrBold    Attr = 1 << 0
	AttrDim     Attr = 1 << 1
	AttrBlink   Attr = 1 << 2
	AttrReverse Attr = 1 << 3
)

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// Style converts the cell colors and attributes to a tcell style
func (c Cell) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(c.Fg.Color()).Background(c.Bg.Color())
	if c.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Terminal provides screen access for the render loop and the input poller
type Terminal interface {
	// Init enters the alternate screen and hides the cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// ColorMode returns the configured color capability
	ColorMode() ColorMode

	// Flush writes cell buffer to terminal
	// Cells are row-major: cells[y*width + x]
	Flush(cells []Cell, width, height int)

	// Sync forces a full redraw, used after resize
	Sync()

	// PollEvent blocks for the next event; nil after Fini
	PollEvent() tcell.Event
}

type screenTerminal struct {
	screen tcell.Screen
	mode   ColorMode

	// Last flushed frame, for diffing
	prev       []Cell
	prevWidth  int
	prevHeight int

	finiOnce sync.Once
}

// New creates a terminal on the controlling tty
func New(mode ColorMode) (Terminal, error) {
	if mode == ColorMode256 {
		// tcell reads this when the screen is created
		os.Setenv("TCELL_TRUECOLOR", "disable")
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewFromScreen(screen, mode), nil
}

// NewFromScreen wraps an existing screen, tests pass a simulation screen
func NewFromScreen(screen tcell.Screen, mode ColorMode) Terminal {
	return &screenTerminal{screen: screen, mode: mode}
}

func (t *screenTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.SetStyle(tcell.StyleDefault.Background(RGBBlack.Color()))
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

func (t *screenTerminal) Fini() {
	t.finiOnce.Do(t.screen.Fini)
}

func (t *screenTerminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *screenTerminal) ColorMode() ColorMode {
	return t.mode
}

func (t *screenTerminal) Flush(cells []Cell, width, height int) {
	full := width != t.prevWidth || height != t.prevHeight || len(t.prev) != len(cells)
	if full {
		t.prev = make([]Cell, len(cells))
		t.prevWidth, t.prevHeight = width, height
	}
	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			c := cells[row+x]
			if !full && c == t.prev[row+x] {
				continue
			}
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			t.screen.SetContent(x, y, r, nil, c.Style())
			t.prev[row+x] = c
		}
	}
	t.screen.Show()
}

func (t *screenTerminal) Sync() {
	t.prev = t.prev[:0]
	t.screen.Sync()
}

func (t *screenTerminal) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}
