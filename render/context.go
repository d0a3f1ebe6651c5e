package render

import (
	"math"

	"github.com/drillerjoe/space/parameter"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Tick   uint64
	Mode   string
	Paused bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext creates a context for one frame
func NewRenderContext(tick uint64, mode string, paused bool, width, height int) RenderContext {
	return RenderContext{
		Tick:         tick,
		Mode:         mode,
		Paused:       paused,
		ScreenWidth:  width,
		ScreenHeight: height,
	}
}

// scaleX is terminal columns per field unit
func (ctx RenderContext) scaleX() float64 {
	return float64(ctx.ScreenWidth) / parameter.ScreenWidth
}

// scaleY is terminal rows per field unit
func (ctx RenderContext) scaleY() float64 {
	return float64(ctx.ScreenHeight) / parameter.ScreenHeight
}

// Project maps a field position to a terminal cell
func (ctx RenderContext) Project(x, y float64) (int, int) {
	return int(math.Floor(x * ctx.scaleX())), int(math.Floor(y * ctx.scaleY()))
}

// Unproject returns the field position of a cell centre
func (ctx RenderContext) Unproject(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / ctx.scaleX(), (float64(row) + 0.5) / ctx.scaleY()
}

// Columns converts a field width to whole terminal columns, at least 1
func (ctx RenderContext) Columns(w float64) int {
	return max(1, int(math.Round(w*ctx.scaleX())))
}

// Rows converts a field height to whole terminal rows, at least 1
func (ctx RenderContext) Rows(h float64) int {
	return max(1, int(math.Round(h*ctx.scaleY())))
}
