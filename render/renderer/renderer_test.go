package renderer

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/mode"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/render"
	"github.com/drillerjoe/space/status"
)

func newFrame() (render.RenderContext, *render.RenderBuffer) {
	return render.NewRenderContext(0, "", false, 100, 75), render.NewRenderBuffer(100, 75, zerolog.Nop())
}

func rowText(buf *render.RenderBuffer, y int) string {
	var sb strings.Builder
	for x := 0; x < buf.Width(); x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

func screenContains(buf *render.RenderBuffer, s string) bool {
	for y := 0; y < buf.Height(); y++ {
		if strings.Contains(rowText(buf, y), s) {
			return true
		}
	}
	return false
}

type menuSource struct{ v mode.MenuView }

func (s menuSource) View() mode.MenuView { return s.v }

func TestMenuRenderer(t *testing.T) {
	ctx, buf := newFrame()
	src := menuSource{mode.MenuView{
		Items:    []mode.MenuItem{mode.MenuStart, mode.MenuSound, mode.MenuQuit},
		Selected: mode.MenuSound,
		SoundOn:  false,
	}}
	NewMenuRenderer(src).Render(ctx, buf)

	if !screenContains(buf, "DRILLER JOE") {
		t.Error("Expected title")
	}
	if !screenContains(buf, "> Toggle Sound [off] <") {
		t.Error("Expected selected sound item showing off")
	}
	if !screenContains(buf, "Start Mission") {
		t.Error("Expected start item")
	}
}

type vitals struct{ hp, score int }

func (v vitals) Health() int    { return v.hp }
func (v vitals) MaxHealth() int { return parameter.PlayerMaxHealth }
func (v vitals) Score() int     { return v.score }

func TestHUDRenderer(t *testing.T) {
	ctx, buf := newFrame()
	ctx.Mode = parameter.ModeCombat
	NewHUDRenderer(vitals{hp: 3, score: 42}).Render(ctx, buf)

	top := rowText(buf, 0)
	if !strings.Contains(top, "SCORE 42") {
		t.Errorf("Expected score on top row, got %q", top)
	}
	if strings.Count(top, "#") != parameter.PlayerMaxHealth {
		t.Errorf("Expected %d health pips, got %q", parameter.PlayerMaxHealth, top)
	}
	if !strings.Contains(rowText(buf, buf.Height()-1), "COMBAT") {
		t.Error("Expected mode name on the bottom row")
	}
}

func TestDebugRendererToggle(t *testing.T) {
	reg := status.NewRegistry()
	reg.Ints.Get("storm.asteroids").Store(12)
	r := NewDebugRenderer(reg)
	if r.IsVisible() {
		t.Fatal("Expected debug overlay hidden by default")
	}
	if !r.Toggle() {
		t.Fatal("Expected visible after toggle")
	}
	ctx, buf := newFrame()
	r.Render(ctx, buf)
	if !screenContains(buf, "storm.asteroids") {
		t.Error("Expected metric key in overlay")
	}
}

type combatSource struct{ v mode.CombatView }

func (s combatSource) View() mode.CombatView { return s.v }

func TestCombatRendererCrosshair(t *testing.T) {
	ctx, buf := newFrame()
	e := component.NewEnemy(component.EnemyBasic, 200, 150, 2, 100)
	NewCombatRenderer(combatSource{mode.CombatView{
		Phase:   mode.PhaseActive,
		Enemies: []*component.Enemy{e},
	}}).Render(ctx, buf)

	cx, cy := ctx.Project(parameter.ScreenCX, parameter.ScreenCY)
	if buf.Get(cx, cy).Rune != '+' {
		t.Errorf("Expected crosshair at centre, got %q", buf.Get(cx, cy).Rune)
	}
	ex, ey := ctx.Project(200, 150)
	if buf.Get(ex, ey).Rune != '@' {
		t.Errorf("Expected enemy at (%d,%d), got %q", ex, ey, buf.Get(ex, ey).Rune)
	}
}

type starMapSource struct{ v mode.StarMapView }

func (s starMapSource) View() mode.StarMapView { return s.v }

func TestStarMapRendererHidesUnrevealed(t *testing.T) {
	ctx, buf := newFrame()
	sectors := [][]component.Sector{
		{{X: 0, Y: 0, Kind: component.SectorEnemy, Revealed: true}, {X: 1, Y: 0, Kind: component.SectorEnemyPlanet}},
		{{X: 0, Y: 1, Kind: component.SectorAllyPlanet, Revealed: true}, {X: 1, Y: 1, Kind: component.SectorAsteroid}},
	}
	NewStarMapRenderer(starMapSource{mode.StarMapView{
		Sectors: sectors, CursorX: 0, CursorY: 1, VictoryCount: 3,
	}}).Render(ctx, buf)

	if !screenContains(buf, "[@]") {
		t.Error("Expected player marker")
	}
	if !screenContains(buf, "[?]") {
		t.Error("Expected hidden sectors")
	}
	if screenContains(buf, "[P]") {
		t.Error("Hidden enemy planet must not be shown")
	}
	if !screenContains(buf, ">H<") {
		t.Error("Expected cursor on the revealed ally planet")
	}
	if !screenContains(buf, "A2: allyPlanet") {
		t.Error("Expected cursor sector description")
	}
}

type storySource struct{ v mode.StoryView }

func (s storySource) View() mode.StoryView { return s.v }

func TestStoryRendererScrolls(t *testing.T) {
	ctx, buf := newFrame()
	NewStoryRenderer(storySource{mode.StoryView{
		Title:  "DRILLER JOE IN SPACE",
		Lines:  []string{"first line", "", "second line"},
		Scroll: 300,
	}}).Render(ctx, buf)
	if !screenContains(buf, "DRILLER JOE IN SPACE") || !screenContains(buf, "second line") {
		t.Error("Expected title and lines on screen")
	}

	ctx, buf = newFrame()
	NewStoryRenderer(storySource{mode.StoryView{
		Title:  "DRILLER JOE IN SPACE",
		Lines:  []string{"first line"},
		Scroll: -1000,
	}}).Render(ctx, buf)
	if screenContains(buf, "first line") || screenContains(buf, "DRILLER") {
		t.Error("Expected crawl scrolled off the top")
	}
}

type descentSource struct{ v mode.DescentView }

func (s descentSource) View() mode.DescentView { return s.v }

func TestDescentRendererCaptions(t *testing.T) {
	ctx, buf := newFrame()
	NewDescentRenderer(descentSource{mode.DescentView{
		Kind:         mode.DescentEnemy,
		ShipY:        parameter.DescentShipStartY,
		Repaired:     true,
		RepairedFrom: 1,
		RepairedTo:   4,
	}}).Render(ctx, buf)
	if !screenContains(buf, "ENTERING ENEMY ORBIT") {
		t.Error("Expected enemy orbit caption")
	}
	if !screenContains(buf, "hull 1 -> 4") {
		t.Error("Expected repair summary")
	}

	ctx, buf = newFrame()
	NewDescentRenderer(descentSource{mode.DescentView{
		Kind:         mode.DescentAlly,
		Progress:     1,
		ShipY:        parameter.DescentShipStartY + parameter.DescentShipTravel,
		Message:      "BEER DELIVERED",
		MessageAlpha: 1,
	}}).Render(ctx, buf)
	if !screenContains(buf, "BEER DELIVERED") {
		t.Error("Expected delivery message")
	}
	if screenContains(buf, "ENTERING") {
		t.Error("Expected orbit caption hidden during messages")
	}
}
