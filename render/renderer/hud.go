package renderer

import (
	"fmt"
	"strings"

	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// Vitals is the shared state shown by the HUD
type Vitals interface {
	Health() int
	MaxHealth() int
	Score() int
}

// HUDRenderer draws health and score on the top row
type HUDRenderer struct {
	vitals Vitals
}

func NewHUDRenderer(vitals Vitals) *HUDRenderer {
	return &HUDRenderer{vitals: vitals}
}

func (r *HUDRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	hp, maxHP := r.vitals.Health(), r.vitals.MaxHealth()
	x := buf.SetString(1, 0, "HULL ", render.RgbText, 0) + 1
	for i := 0; i < maxHP; i++ {
		fg := render.RgbHealthEmpty
		if i < hp {
			fg = render.RgbHealthFull
			if hp <= 2 {
				fg = render.RgbWarning
			}
		}
		buf.SetFg(x+i, 0, '#', fg, terminal.AttrBold)
	}

	score := fmt.Sprintf("SCORE %d", r.vitals.Score())
	buf.SetString(buf.Width()-len(score)-1, 0, score, render.RgbText, terminal.AttrBold)

	if ctx.Paused {
		drawBanner(buf, buf.Height()/2, "PAUSED", render.RgbTitle, 1)
	}
	if ctx.Mode != "" {
		buf.SetString(1, buf.Height()-1, strings.ToUpper(ctx.Mode), render.RgbTextDim, 0)
	}
}
