package renderer

import (
	"math"

	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// MissionSource exposes the planet mission snapshot
type MissionSource interface {
	View() mode.MissionView
}

// MissionRenderer draws the scrolling canyon run
type MissionRenderer struct {
	src MissionSource
}

func NewMissionRenderer(src MissionSource) *MissionRenderer {
	return &MissionRenderer{src: src}
}

var obstacleGlyphs = [...]rune{
	component.ShapeCircle:   'O',
	component.ShapeDiamond:  '<',
	component.ShapePentagon: '*',
}

func (r *MissionRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()

	for _, s := range v.Segments {
		if s.LeftWall > 0 {
			buf.FillRectBg(ctx, 0, s.Y, s.LeftWall, parameter.MissionSegmentHeight, render.RgbWall)
		}
		if s.RightWall < parameter.ScreenWidth {
			buf.FillRectBg(ctx, s.RightWall, s.Y, parameter.ScreenWidth-s.RightWall, parameter.MissionSegmentHeight, render.RgbWall)
		}
		buf.Glyph(ctx, s.LeftWall, s.Y+parameter.MissionSegmentHeight/2, '|', render.RgbWallEdge, 0)
		buf.Glyph(ctx, s.RightWall, s.Y+parameter.MissionSegmentHeight/2, '|', render.RgbWallEdge, 0)
	}

	if v.Exit.Active {
		pulse := 0.6 + 0.4*math.Sin(v.Exit.FlashPhase)
		buf.Circle(ctx, v.Exit.X, v.Exit.Y, v.Exit.Size/2, '@', render.RgbBackground.Lerp(render.RgbExit, pulse), terminal.AttrBold)
	}

	for _, o := range v.Obstacles {
		buf.FillCircle(ctx, o.X, o.Y, o.Size/2, obstacleGlyphs[o.Shape], render.RgbObstacle, terminal.AttrBold)
	}
	for _, b := range v.Barriers {
		buf.FillRect(ctx, b.X, b.Y, b.W, b.H, '#', render.RgbBarrier, 0)
	}
	for _, s := range v.Shots {
		buf.Glyph(ctx, s.X, s.Y, '|', render.RgbPlayerShot, terminal.AttrBold)
	}
	for _, m := range v.Missiles {
		buf.FillRect(ctx, m.X, m.Y, m.W, m.H, '^', render.RgbMissile, terminal.AttrBold)
	}
	for _, w := range v.Warnings {
		if blinkOn(ctx.Tick, 8) {
			buf.Glyph(ctx, w.X, w.Y, '!', render.RgbWarning, terminal.AttrBold)
		}
	}

	if v.Failed == mode.FailNone || blinkOn(ctx.Tick, 4) {
		buf.FillRect(ctx, v.PlayerX, v.PlayerY, parameter.MissionPlayerW, parameter.MissionPlayerH, 'A', render.RgbPlayer, terminal.AttrBold)
	}

	mid := buf.Height() / 2
	switch v.Phase {
	case mode.PhaseIntro:
		drawBanner(buf, mid-4, "ENEMY PLANET: REACH THE EXIT", render.RgbTitle, 1)
		drawBanner(buf, mid+4, "avoid walls, obstacles and barriers", render.RgbTextDim, 1)
	case mode.PhaseVictory:
		drawBanner(buf, mid-4, "MISSION COMPLETE", render.RgbSuccess, v.OverlayAlpha)
	}
	if v.Failed != mode.FailNone {
		drawBanner(buf, mid, "MISSION FAILED: "+v.Failed.String(), render.RgbWarning, 1)
	}
}
