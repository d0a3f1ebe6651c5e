package renderer

import (
	"fmt"

	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/terminal"
)

// StarMapSource exposes the campaign grid snapshot
type StarMapSource interface {
	View() mode.StarMapView
}

// StarMapRenderer draws the sector grid, legend and warp prompt
type StarMapRenderer struct {
	src StarMapSource
}

func NewStarMapRenderer(src StarMapSource) *StarMapRenderer {
	return &StarMapRenderer{src: src}
}

var sectorStyles = [...]struct {
	glyph rune
	fg    render.RGB
}{
	component.SectorEnemy:       {'E', render.RgbSectorEnemy},
	component.SectorAsteroid:    {'A', render.RgbSectorAsteroid},
	component.SectorEnemyPlanet: {'P', render.RgbSectorEnemyPlanet},
	component.SectorAllyPlanet:  {'H', render.RgbSectorAllyPlanet},
}

const (
	cellCols = 5
	cellRows = 2
)

func (r *StarMapRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	v := r.src.View()
	n := len(v.Sectors)
	if n == 0 {
		return
	}

	gridW, gridH := n*cellCols, n*cellRows
	left := (buf.Width() - gridW) / 2
	top := max(2, (buf.Height()-gridH)/2)

	buf.SetStringCentered(top-2, "STAR MAP", render.RgbTitle, terminal.AttrBold)

	for y, row := range v.Sectors {
		buf.SetString(left-3, top+y*cellRows, fmt.Sprintf("%d", y+1), render.RgbTextDim, 0)
		for x, sec := range row {
			if y == 0 {
				buf.SetString(left+x*cellCols+2, top-1, string(rune('A'+x)), render.RgbTextDim, 0)
			}
			col, line := left+x*cellCols, top+y*cellRows

			glyph, fg := '?', render.RgbSectorHidden
			if sec.Revealed {
				st := sectorStyles[sec.Kind]
				glyph, fg = st.glyph, st.fg
			}
			if sec.Completed {
				fg = render.RgbSectorCompleted
			}
			var attrs terminal.Attr
			switch {
			case x == v.PlayerX && y == v.PlayerY:
				glyph, fg, attrs = '@', render.RgbPlayer, terminal.AttrBold
			case v.Confirming && x == v.CursorX && y == v.CursorY && blinkOn(uint64(v.Ticks), 15):
				attrs = terminal.AttrReverse
			}
			buf.SetString(col+1, line, "[", render.RgbTextDim, 0)
			buf.SetFg(col+2, line, glyph, fg, attrs)
			buf.SetString(col+3, line, "]", render.RgbTextDim, 0)
			if x == v.CursorX && y == v.CursorY {
				buf.SetString(col+1, line, ">", render.RgbSelected, terminal.AttrBold)
				buf.SetString(col+3, line, "<", render.RgbSelected, terminal.AttrBold)
			}
		}
	}

	info := top + gridH + 1
	cursor := v.Sectors[v.CursorY][v.CursorX]
	desc := "unknown sector"
	if cursor.Revealed {
		desc = cursor.Kind.String()
	}
	if cursor.Completed {
		desc += " (cleared)"
	}
	buf.SetStringCentered(info, fmt.Sprintf("%s: %s", component.SectorName(v.CursorX, v.CursorY), desc), render.RgbText, 0)
	buf.SetStringCentered(info+1, fmt.Sprintf("enemy planets %d/%d   ally planets %d/%d",
		v.EnemyPlanets, v.VictoryCount, v.AllyPlanets, v.VictoryCount), render.RgbTextDim, 0)
	if v.Confirming {
		buf.SetStringCentered(info+3, "fire again to warp, escape to cancel", render.RgbSelected, terminal.AttrBold)
	} else {
		buf.SetStringCentered(info+3, "arrows move, fire selects, escape for menu", render.RgbTextDim, 0)
	}
}
