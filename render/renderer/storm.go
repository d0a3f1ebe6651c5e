package renderer

import (
	"fmt"
	"math"

	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// StormSource exposes the asteroid storm snapshot
type StormSource interface {
	View() mode.StormView
}

// StormRenderer draws the wrap-around asteroid field
type StormRenderer struct {
	src StormSource
}

func NewStormRenderer(src StormSource) *StormRenderer {
	return &StormRenderer{src: src}
}

// shipGlyphs is indexed by heading octant, 0 pointing right, clockwise on screen
var shipGlyphs = [8]rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}

func shipGlyph(angle float64) rune {
	oct := int(math.Round(angle/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return shipGlyphs[oct]
}

var asteroidGlyphs = [...]rune{
	component.AsteroidLarge:  '#',
	component.AsteroidMedium: '%',
	component.AsteroidSmall:  '+',
}

func (r *StormRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()

	for i := range v.Asteroids {
		a := &v.Asteroids[i]
		buf.Circle(ctx, a.X, a.Y, a.Size, asteroidGlyphs[a.Kind], render.RgbAsteroid, 0)
	}

	for i := range v.UFOs {
		u := &v.UFOs[i]
		buf.FillRect(ctx, u.X, u.Y, parameter.StormUFOSize*2, parameter.StormUFOSize, '=', render.RgbUFO, terminal.AttrBold)
		for _, b := range u.Bullets {
			buf.Glyph(ctx, b.X, b.Y, 'o', render.RgbUFOShot, 0)
		}
	}

	for _, b := range v.Bullets {
		buf.Glyph(ctx, b.X, b.Y, '.', render.RgbPlayerShot, terminal.AttrBold)
	}

	// Ship blinks while invulnerable
	if !v.Ship.Invulnerable() || blinkOn(ctx.Tick, 6) || v.Phase == mode.PhaseVictory {
		fg := render.RgbPlayer
		if v.Ship.Invulnerable() && v.Phase != mode.PhaseVictory {
			fg = render.RgbPlayerHurt
		}
		buf.Glyph(ctx, v.Ship.X, v.Ship.Y, shipGlyph(v.Ship.Angle), fg, terminal.AttrBold)
		if v.Ship.Thrusting {
			buf.Glyph(ctx, v.Ship.X-math.Cos(v.Ship.Angle)*12, v.Ship.Y-math.Sin(v.Ship.Angle)*12, '~', render.RgbExplosion, 0)
		}
	}

	secs := (v.TimerTicks + parameter.TicksPerSecond - 1) / parameter.TicksPerSecond
	buf.SetStringCentered(1, fmt.Sprintf("STORM %02d:%02d", secs/60, secs%60), render.RgbText, 0)

	mid := buf.Height() / 2
	switch v.Phase {
	case mode.PhaseAlert:
		if blinkOn(ctx.Tick, 20) {
			drawBanner(buf, mid-4, "!! ASTEROID STORM !!", render.RgbWarning, 1)
		}
		drawBanner(buf, mid+4, "survive until the storm passes", render.RgbTextDim, 1)
	case mode.PhaseVictory:
		drawBanner(buf, mid-4, "STORM SURVIVED", render.RgbSuccess, v.OverlayAlpha)
	}
}
