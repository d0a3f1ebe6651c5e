package render

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/terminal"
)

// RenderBuffer is the frame being composed, row-major
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int

	// Primitive misuse warnings, sampled so a bad frame loop cannot flood the log
	log zerolog.Logger
}

// NewRenderBuffer creates a buffer of the given size
func NewRenderBuffer(width, height int, log zerolog.Logger) *RenderBuffer {
	b := &RenderBuffer{
		log: log.Sample(&zerolog.BurstSampler{Burst: 5, Period: time.Second}),
	}
	b.Resize(width, height)
	return b
}

// Width returns the buffer width in cells
func (b *RenderBuffer) Width() int { return b.width }

// Height returns the buffer height in cells
func (b *RenderBuffer) Height() int { return b.height }

// Resize reallocates the cells; contents are cleared
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(0, width), max(0, height)
	b.width, b.height = width, height
	if cap(b.cells) >= width*height {
		b.cells = b.cells[:width*height]
	} else {
		b.cells = make([]Cell, width*height)
	}
	b.Clear()
}

// Clear fills the buffer with blank cells on the default background
func (b *RenderBuffer) Clear() {
	blank := Cell{Rune: ' ', Bg: DefaultBgRGB}
	for i := range b.cells {
		b.cells[i] = blank
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.width && y < b.height
}

// Get returns the cell at (x, y), zero Cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Set replaces a cell; out of bounds writes are dropped
func (b *RenderBuffer) Set(x, y int, r rune, fg, bg RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs}
}

// SetFg writes a glyph keeping the existing background
func (b *RenderBuffer) SetFg(x, y int, r rune, fg RGB, attrs Attr) {
	if !b.inBounds(x, y) {
		return
	}
	c := &b.cells[y*b.width+x]
	c.Rune, c.Fg, c.Attrs = r, fg, attrs
}

// SetBg recolors a cell background keeping its glyph
func (b *RenderBuffer) SetBg(x, y int, bg RGB) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x].Bg = bg
}

// SetString writes s starting at (x, y) and returns the columns used
func (b *RenderBuffer) SetString(x, y int, s string, fg RGB, attrs Attr) int {
	n := 0
	for _, r := range s {
		b.SetFg(x+n, y, r, fg, attrs)
		n++
	}
	return n
}

// SetStringCentered writes s centred on row y
func (b *RenderBuffer) SetStringCentered(y int, s string, fg RGB, attrs Attr) {
	n := 0
	for range s {
		n++
	}
	b.SetString((b.width-n)/2, y, s, fg, attrs)
}

// FlushToTerminal hands the frame to the terminal
func (b *RenderBuffer) FlushToTerminal(term terminal.Terminal) {
	term.Flush(b.cells, b.width, b.height)
}
