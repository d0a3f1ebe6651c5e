package renderer

import (
	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// CombatSource exposes the combat snapshot
type CombatSource interface {
	View() mode.CombatView
}

// CombatRenderer draws the first-person dogfight
type CombatRenderer struct {
	src CombatSource
}

func NewCombatRenderer(src CombatSource) *CombatRenderer {
	return &CombatRenderer{src: src}
}

var enemyColors = [...]render.RGB{
	component.EnemyBasic: render.RgbEnemyBasic,
	component.EnemyFast:  render.RgbEnemyFast,
	component.EnemyElite: render.RgbEnemyElite,
}

func (r *CombatRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()

	for _, e := range v.Enemies {
		if e.Destroyed {
			continue
		}
		if e.Exploding {
			for i := range e.Particles {
				p := &e.Particles[i]
				fg := render.RgbBackground.Lerp(render.RgbExplosion, p.Alpha())
				buf.Glyph(ctx, p.X+v.WorldX, p.Y+v.WorldY, '*', fg, 0)
			}
			continue
		}
		fg := enemyColors[e.Kind]
		if e.HitFlash > 0 {
			fg = render.RgbHitFlash
		}
		sx, sy := e.X+v.WorldX, e.Y+v.WorldY
		buf.FillCircle(ctx, sx, sy, e.CollisionRadius(), '@', fg, terminal.AttrBold)
	}

	for _, s := range v.Shots {
		ch := 'o'
		if s.Scale > 1 {
			ch = 'O'
		}
		buf.Glyph(ctx, s.X, s.Y, ch, render.RgbEnemyShot, terminal.AttrBold)
	}

	for _, l := range v.Lasers {
		buf.Line(ctx, l.X, l.Y, l.X-l.VX, l.Y-l.VY, '|', render.RgbLaser, terminal.AttrBold)
	}

	// Cockpit
	buf.Glyph(ctx, parameter.CombatCannonLeftX, parameter.CombatCannonY, 'A', render.RgbPlayer, terminal.AttrBold)
	buf.Glyph(ctx, parameter.CombatCannonRightX, parameter.CombatCannonY, 'A', render.RgbPlayer, terminal.AttrBold)
	half := parameter.CombatCrosshairSize / 2
	buf.Line(ctx, parameter.ScreenCX-half, parameter.ScreenCY, parameter.ScreenCX+half, parameter.ScreenCY, '-', render.RgbCrosshair, 0)
	buf.Line(ctx, parameter.ScreenCX, parameter.ScreenCY-half, parameter.ScreenCX, parameter.ScreenCY+half, '|', render.RgbCrosshair, 0)
	buf.Glyph(ctx, parameter.ScreenCX, parameter.ScreenCY, '+', render.RgbCrosshair, terminal.AttrBold)

	if v.Crack {
		buf.Line(ctx, 330, 250, 470, 350, '\\', render.RgbCrack, 0)
		buf.Line(ctx, 470, 250, 330, 350, '/', render.RgbCrack, 0)
	}

	mid := buf.Height() / 2
	switch v.Phase {
	case mode.PhaseAlert:
		if blinkOn(ctx.Tick, 20) {
			drawBanner(buf, mid-4, "!! ENEMY FIGHTERS INBOUND !!", render.RgbWarning, 1)
		}
		drawBanner(buf, mid+4, "press fire to engage", render.RgbTextDim, 1)
	case mode.PhaseVictory:
		drawBanner(buf, mid-4, "SECTOR CLEAR", render.RgbSuccess, v.OverlayAlpha)
	}
}
