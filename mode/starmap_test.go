package mode

import (
	"testing"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
)

func newStarMap(t *testing.T, seed uint64) (*StarMap, *harness) {
	t.Helper()
	h := newHarness(seed)
	s := NewStarMap(h.deps, defaultLayout(t))
	s.Enter()
	return s, h
}

// sectorsOf lists coordinates of every sector of kind, skipping the player's
func sectorsOf(s *StarMap, kind component.SectorKind) [][2]int {
	var out [][2]int
	for y := range s.sectors {
		for x := range s.sectors[y] {
			if s.sectors[y][x].Kind == kind && (x != s.playerX || y != s.playerY) {
				out = append(out, [2]int{x, y})
			}
		}
	}
	return out
}

// warpTo selects and confirms a sector through the regular input path
func warpTo(s *StarMap, h *harness, x, y int) {
	s.cursorX, s.cursorY = x, y
	h.input.tap(input.KeyFire)
	h.tick(s)
	h.input.tap(input.KeyFire)
	h.tick(s)
}

func TestStarMapGeneration(t *testing.T) {
	s, _ := newStarMap(t, 41)
	l := s.layout

	counts := map[component.SectorKind]int{}
	revealed := 0
	for y := range s.sectors {
		for x := range s.sectors[y] {
			sec := s.sectors[y][x]
			counts[sec.Kind]++
			if sec.Revealed {
				revealed++
			}
			if sec.Completed {
				t.Errorf("Sector %s completed at start", component.SectorName(x, y))
			}
		}
	}
	want := map[component.SectorKind]int{
		component.SectorEnemyPlanet: l.EnemyPlanets,
		component.SectorAllyPlanet:  l.AllyPlanets,
		component.SectorAsteroid:    l.AsteroidStorms,
		component.SectorEnemy:       l.EnemyEncounters,
	}
	for k, n := range want {
		if counts[k] != n {
			t.Errorf("Expected %d %v sectors, got %d", n, k, counts[k])
		}
	}
	if revealed != 1+l.RevealCount {
		t.Errorf("Expected %d revealed sectors, got %d", 1+l.RevealCount, revealed)
	}

	start := s.sectors[s.playerY][s.playerX]
	if start.Kind != component.SectorEnemy || !start.Revealed {
		t.Errorf("Expected revealed enemy start sector, got %v revealed=%v", start.Kind, start.Revealed)
	}
}

func TestStarMapResetRegenerates(t *testing.T) {
	s, _ := newStarMap(t, 42)
	s.CompleteSector()
	s.Reset()
	enemy, ally := s.Progress()
	if enemy != 0 || ally != 0 {
		t.Errorf("Expected no progress after Reset, got %d and %d", enemy, ally)
	}
	for y := range s.sectors {
		for x := range s.sectors[y] {
			if s.sectors[y][x].Completed {
				t.Fatalf("Sector %s still completed", component.SectorName(x, y))
			}
		}
	}
}

func TestStarMapWarpToEncounter(t *testing.T) {
	s, h := newStarMap(t, 43)
	target := sectorsOf(s, component.SectorAsteroid)[0]

	s.cursorX, s.cursorY = target[0], target[1]
	h.input.tap(input.KeyFire)
	h.tick(s)
	if !s.confirming {
		t.Fatal("Expected warp confirmation")
	}
	if len(h.switcher.switches) != 0 {
		t.Fatalf("Expected no switch before confirming, got %v", h.switcher.switches)
	}

	h.input.tap(input.KeyFire)
	h.tick(s)
	if s.playerX != target[0] || s.playerY != target[1] {
		t.Errorf("Expected player at %v, got %d,%d", target, s.playerX, s.playerY)
	}
	if !s.sectors[target[1]][target[0]].Revealed {
		t.Error("Expected target revealed")
	}
	if h.audio.played(audio.SoundWarp) != 1 {
		t.Errorf("Expected one warp sound, got %d", h.audio.played(audio.SoundWarp))
	}
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeAsteroidStorm {
		t.Errorf("Expected switch to asteroidStorm, got %v", h.switcher.switches)
	}
}

func TestStarMapEncounterModes(t *testing.T) {
	cases := []struct {
		kind component.SectorKind
		mode string
	}{
		{component.SectorEnemy, parameter.ModeCombat},
		{component.SectorAsteroid, parameter.ModeAsteroidStorm},
		{component.SectorEnemyPlanet, parameter.ModePlanetDescent},
		{component.SectorAllyPlanet, parameter.ModeAllyDescent},
	}
	for _, c := range cases {
		s, h := newStarMap(t, 44)
		target := sectorsOf(s, c.kind)[0]
		warpTo(s, h, target[0], target[1])
		if h.switcher.last() != c.mode {
			t.Errorf("Expected %v to start %s, got %v", c.kind, c.mode, h.switcher.switches)
		}
	}
}

func TestStarMapCursorCancelsConfirmation(t *testing.T) {
	s, h := newStarMap(t, 45)
	target := sectorsOf(s, component.SectorEnemy)[0]
	s.cursorX, s.cursorY = target[0], target[1]
	h.input.tap(input.KeyFire)
	h.tick(s)

	if target[0] > 0 {
		h.input.tap(input.KeyLeft)
	} else {
		h.input.tap(input.KeyRight)
	}
	h.tick(s)
	if s.confirming {
		t.Error("Expected cursor move to cancel confirmation")
	}
	if h.audio.played(audio.SoundMenuMove) != 1 {
		t.Errorf("Expected one move sound, got %d", h.audio.played(audio.SoundMenuMove))
	}
}

func TestStarMapCursorBounds(t *testing.T) {
	s, h := newStarMap(t, 46)
	s.cursorX, s.cursorY = 0, 0
	h.input.tap(input.KeyUp)
	h.input.tap(input.KeyLeft)
	h.tick(s)
	if s.cursorX != 0 || s.cursorY != 0 {
		t.Errorf("Expected cursor pinned at 0,0, got %d,%d", s.cursorX, s.cursorY)
	}
	if h.audio.played(audio.SoundMenuMove) != 0 {
		t.Error("Expected no move sound at the edge")
	}
}

func TestStarMapRejectsCurrentAndCompleted(t *testing.T) {
	s, h := newStarMap(t, 47)
	h.input.tap(input.KeyFire)
	h.tick(s)
	if s.confirming {
		t.Error("Expected current sector rejected")
	}

	target := sectorsOf(s, component.SectorEnemy)[0]
	s.sectors[target[1]][target[0]].Completed = true
	s.cursorX, s.cursorY = target[0], target[1]
	h.input.tap(input.KeyFire)
	h.tick(s)
	if s.confirming {
		t.Error("Expected completed sector rejected")
	}
	if h.audio.played(audio.SoundPlayerHit) != 1 {
		t.Errorf("Expected rejection sound, got %d", h.audio.played(audio.SoundPlayerHit))
	}
}

func TestStarMapAllyPlanetDescends(t *testing.T) {
	s, h := newStarMap(t, 48)
	h.state.Damage(3)
	target := sectorsOf(s, component.SectorAllyPlanet)[0]
	warpTo(s, h, target[0], target[1])

	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeAllyDescent {
		t.Errorf("Expected one switch to allyPlanetDescent, got %v", h.switcher.switches)
	}
	// The descent heals and completes the sector, not the map
	if h.state.Health() != 4 {
		t.Errorf("Expected health untouched by the warp, got %d", h.state.Health())
	}
	if s.sectors[target[1]][target[0]].Completed {
		t.Error("Expected ally planet left for the descent to complete")
	}
}

func TestStarMapEnemyRouteVictory(t *testing.T) {
	s, h := newStarMap(t, 49)
	planets := sectorsOf(s, component.SectorEnemyPlanet)
	for i, p := range planets[:s.layout.VictoryCount] {
		s.playerX, s.playerY = p[0], p[1]
		s.CompleteSector()
		if i < s.layout.VictoryCount-1 && h.state.VictoryRoute() != "" {
			t.Fatalf("Victory triggered early after %d planets", i+1)
		}
	}
	if h.state.VictoryRoute() != parameter.RouteEnemy {
		t.Fatalf("Expected enemy route, got %q", h.state.VictoryRoute())
	}

	// The map hands over on its next update
	s.Enter()
	h.ticks(s, 3)
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeVictory {
		t.Errorf("Expected one switch to victory, got %v", h.switcher.switches)
	}
}

func TestStarMapAllyRouteVictory(t *testing.T) {
	s, h := newStarMap(t, 50)
	for _, p := range sectorsOf(s, component.SectorAllyPlanet) {
		warpTo(s, h, p[0], p[1])
		s.CompleteSector()
		s.Enter()
	}
	if h.state.VictoryRoute() != parameter.RouteAlly {
		t.Errorf("Expected ally route, got %q", h.state.VictoryRoute())
	}
	h.tick(s)
	if h.switcher.last() != parameter.ModeVictory {
		t.Errorf("Expected switch to victory, got %v", h.switcher.switches)
	}
}

func TestStarMapEscape(t *testing.T) {
	s, h := newStarMap(t, 51)
	target := sectorsOf(s, component.SectorEnemy)[0]
	s.cursorX, s.cursorY = target[0], target[1]
	h.input.tap(input.KeyFire)
	h.tick(s)

	h.input.tap(input.KeyEscape)
	h.tick(s)
	if s.confirming || len(h.switcher.switches) != 0 {
		t.Errorf("Expected escape to cancel confirmation only, got %v", h.switcher.switches)
	}

	h.input.tap(input.KeyEscape)
	h.tick(s)
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeMenu {
		t.Errorf("Expected switch to menu, got %v", h.switcher.switches)
	}
}
