package renderer

import (
	"fmt"

	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// StorySource exposes the story crawl snapshot
type StorySource interface {
	View() mode.StoryView
}

// StoryRenderer draws the scrolling briefing
type StoryRenderer struct {
	src StorySource
}

func NewStoryRenderer(src StorySource) *StoryRenderer {
	return &StoryRenderer{src: src}
}

func (r *StoryRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()
	if _, row := ctx.Project(parameter.ScreenCX, v.Scroll-parameter.StoryTitleOffset); row >= 0 && row < buf.Height() {
		buf.SetStringCentered(row, v.Title, render.RgbTitle, terminal.AttrBold)
	}
	for i, line := range v.Lines {
		_, row := ctx.Project(parameter.ScreenCX, v.Scroll+float64(i)*parameter.StoryLineSpacing)
		if row < 0 || row >= buf.Height() || line == "" {
			continue
		}
		buf.SetStringCentered(row, line, render.RgbTitle, 0)
	}
}

// DescentSource exposes the planet approach snapshot
type DescentSource interface {
	View() mode.DescentView
}

// DescentRenderer draws the planet, the descending ship and the orbit captions
type DescentRenderer struct {
	src DescentSource
}

func NewDescentRenderer(src DescentSource) *DescentRenderer {
	return &DescentRenderer{src: src}
}

const descentPlanetRadius = 80.0

func (r *DescentRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()
	planet, caption := render.RgbSectorEnemyPlanet, "ENTERING ENEMY ORBIT"
	radius := descentPlanetRadius
	if v.Kind == mode.DescentAlly {
		planet, caption = render.RgbSectorAllyPlanet, "ENTERING ALLY ORBIT"
		radius += v.Progress * 30
	}
	buf.FillCircle(ctx, parameter.ScreenCX, parameter.ScreenCY, radius, 'o', planet.Scale(0.6), 0)
	buf.Circle(ctx, parameter.ScreenCX, parameter.ScreenCY, radius, 'O', planet, terminal.AttrBold)
	buf.Glyph(ctx, parameter.ScreenCX, v.ShipY, 'V', render.RgbPlayer, terminal.AttrBold)

	_, top := ctx.Project(parameter.ScreenCX, 150)
	_, bottom := ctx.Project(parameter.ScreenCX, 450)
	if v.Message != "" {
		drawBanner(buf, bottom, v.Message, render.RgbSuccess, v.MessageAlpha)
		return
	}

	fg := render.RgbWarning
	if !blinkOn(uint64(v.Ticks), 10) {
		fg = render.RgbTitle
	}
	buf.SetStringCentered(top, caption, fg, terminal.AttrBold)
	if v.Repaired {
		buf.SetStringCentered(bottom, "EMERGENCY FIELD REPAIRS COMPLETE", render.RgbSuccess, 0)
		buf.SetStringCentered(bottom+1, fmt.Sprintf("hull %d -> %d", v.RepairedFrom, v.RepairedTo), render.RgbText, 0)
	}
	buf.SetStringCentered(bottom+3, "press fire to skip", render.RgbTextDim, 0)
}
