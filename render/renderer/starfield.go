package renderer

import (
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/vmath"
)

type star struct {
	x, y  float64
	phase uint64
}

// StarfieldRenderer draws a fixed twinkling background
type StarfieldRenderer struct {
	stars []star
}

// NewStarfieldRenderer scatters count stars from a fixed seed
func NewStarfieldRenderer(count int, seed uint64) *StarfieldRenderer {
	rng := vmath.NewFastRand(seed)
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * parameter.ScreenWidth,
			y:     rng.Float64() * parameter.ScreenHeight,
			phase: uint64(rng.Intn(120)),
		}
	}
	return &StarfieldRenderer{stars: stars}
}

func (r *StarfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, s := range r.stars {
		ch, fg := '.', render.RgbStarDim
		if (ctx.Tick+s.phase)%120 < 10 {
			ch, fg = '*', render.RgbStarBright
		}
		buf.Glyph(ctx, s.x, s.y, ch, fg, 0)
	}
}
