package renderer

import (
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/status"
)

// DebugRenderer lists every registered metric in a column on the right
type DebugRenderer struct {
	reg     *status.Registry
	visible bool
}

func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{reg: reg}
}

// Toggle flips visibility and returns the new state
func (r *DebugRenderer) Toggle() bool {
	r.visible = !r.visible
	return r.visible
}

func (r *DebugRenderer) IsVisible() bool {
	return r.visible
}

func (r *DebugRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	entries := r.reg.Snapshot()
	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key)+len(e.Value)+1)
	}
	left := buf.Width() - width - 1
	for i, e := range entries {
		row := 2 + i
		if row >= buf.Height()-1 {
			break
		}
		buf.SetString(left, row, e.Key, render.RgbTextDim, 0)
		buf.SetString(left+width-len(e.Value), row, e.Value, render.RgbText, 0)
	}
}
