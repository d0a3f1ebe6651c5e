package renderer

import (
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// drawBanner writes centred text on a dark strip, faded by alpha
func drawBanner(buf *render.RenderBuffer, row int, text string, fg render.RGB, alpha float64) {
	if alpha <= 0 {
		return
	}
	strip := render.RgbBackground.Lerp(render.RgbBannerStrip, alpha)
	for x := 0; x < buf.Width(); x++ {
		buf.SetBg(x, row, strip)
	}
	buf.SetStringCentered(row, text, render.RgbBackground.Lerp(fg, alpha), terminal.AttrBold)
}

// blinkOn alternates every period ticks
func blinkOn(tick uint64, period uint64) bool {
	return (tick/period)%2 == 0
}
