package renderer

import (
	"fmt"

	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// MenuSource exposes the title screen snapshot
type MenuSource interface {
	View() mode.MenuView
}

// MenuRenderer draws the title and the item list
type MenuRenderer struct {
	src MenuSource
}

func NewMenuRenderer(src MenuSource) *MenuRenderer {
	return &MenuRenderer{src: src}
}

var title = []string{
	"DRILLER JOE",
	"I N   S P A C E",
}

func (r *MenuRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()
	top := buf.Height()/2 - 6
	for i, line := range title {
		buf.SetStringCentered(top+i*2, line, render.RgbTitle, terminal.AttrBold)
	}

	for i, item := range v.Items {
		label := item.String()
		if item == mode.MenuSound {
			state := "on"
			if !v.SoundOn {
				state = "off"
			}
			label = fmt.Sprintf("%s [%s]", label, state)
		}
		fg, attrs := render.RgbText, terminal.Attr(0)
		if item == v.Selected {
			label = "> " + label + " <"
			fg, attrs = render.RgbSelected, terminal.AttrBold
		}
		buf.SetStringCentered(top+6+i*2, label, fg, attrs)
	}
}

// GameOverSource exposes the game over snapshot
type GameOverSource interface {
	View() mode.GameOverView
}

// GameOverRenderer draws the final score
type GameOverRenderer struct {
	src GameOverSource
}

func NewGameOverRenderer(src GameOverSource) *GameOverRenderer {
	return &GameOverRenderer{src: src}
}

func (r *GameOverRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()
	mid := buf.Height() / 2
	drawBanner(buf, mid-2, "GAME OVER", render.RgbWarning, v.Alpha)
	buf.SetStringCentered(mid+1, fmt.Sprintf("final score %d", v.Score), render.RgbText.Scale(v.Alpha), 0)
	if v.InputReady && blinkOn(ctx.Tick, 30) {
		buf.SetStringCentered(mid+4, "press fire", render.RgbTextDim, 0)
	}
}

// VictorySource exposes the campaign end snapshot
type VictorySource interface {
	View() mode.VictoryView
}

// VictoryRenderer draws fireworks and the winning route
type VictoryRenderer struct {
	src VictorySource
}

func NewVictoryRenderer(src VictorySource) *VictoryRenderer {
	return &VictoryRenderer{src: src}
}

func (r *VictoryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()
	for _, f := range v.Fireworks {
		fg := render.Hue(f.Hue)
		for i := range f.Particles {
			p := &f.Particles[i]
			buf.Glyph(ctx, p.X, p.Y, '*', render.RgbBackground.Lerp(fg, p.Alpha()), 0)
		}
	}

	mid := buf.Height() / 2
	msg := "THE ENEMY EMPIRE HAS FALLEN"
	if v.Route == parameter.RouteAlly {
		msg = "THE ALLIANCE STANDS UNITED"
	}
	drawBanner(buf, mid-2, "VICTORY", render.RgbSuccess, 1)
	buf.SetStringCentered(mid, msg, render.RgbTitle, terminal.AttrBold)
	buf.SetStringCentered(mid+2, fmt.Sprintf("final score %d", v.Score), render.RgbText, 0)
	if v.InputReady && blinkOn(ctx.Tick, 30) {
		buf.SetStringCentered(mid+4, "press fire", render.RgbTextDim, 0)
	}
}
