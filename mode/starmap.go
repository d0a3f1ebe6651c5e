package mode

import (
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/config"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
)

// encounterModes maps a sector kind to the mode its warp triggers
var encounterModes = map[component.SectorKind]string{
	component.SectorEnemy:       parameter.ModeCombat,
	component.SectorAsteroid:    parameter.ModeAsteroidStorm,
	component.SectorEnemyPlanet: parameter.ModePlanetDescent,
	component.SectorAllyPlanet:  parameter.ModeAllyDescent,
}

// StarMap is the campaign grid between encounters and the game's SectorMap
type StarMap struct {
	deps   Deps
	log    zerolog.Logger
	layout config.SectorLayout
	done   latch

	sectors [][]component.Sector
	playerX int
	playerY int

	cursorX, cursorY int
	confirming       bool
	targetX, targetY int
	ticks            int
}

// NewStarMap creates the star map and generates a first campaign
func NewStarMap(deps Deps, layout config.SectorLayout) *StarMap {
	s := &StarMap{
		deps:   deps,
		log:    deps.logger(parameter.ModeStarMap),
		layout: layout,
	}
	s.Reset()
	return s
}

// Reset generates a fresh universe: shuffled encounters, a random enemy start and initial reveals
func (s *StarMap) Reset() {
	n := s.layout.GridSize
	kinds := make([]component.SectorKind, 0, n*n)
	for _, c := range []struct {
		kind  component.SectorKind
		count int
	}{
		{component.SectorEnemyPlanet, s.layout.EnemyPlanets},
		{component.SectorAllyPlanet, s.layout.AllyPlanets},
		{component.SectorAsteroid, s.layout.AsteroidStorms},
		{component.SectorEnemy, s.layout.EnemyEncounters},
	} {
		for i := 0; i < c.count; i++ {
			kinds = append(kinds, c.kind)
		}
	}
	for len(kinds) < n*n {
		kinds = append(kinds, component.SectorEnemy)
	}
	kinds = kinds[:n*n]

	rng := s.deps.Rand
	for i := len(kinds) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}

	s.sectors = make([][]component.Sector, n)
	var starts [][2]int
	for y := 0; y < n; y++ {
		s.sectors[y] = make([]component.Sector, n)
		for x := 0; x < n; x++ {
			k := kinds[y*n+x]
			s.sectors[y][x] = component.Sector{X: x, Y: y, Kind: k}
			if k == component.SectorEnemy {
				starts = append(starts, [2]int{x, y})
			}
		}
	}

	if len(starts) > 0 {
		p := starts[rng.Intn(len(starts))]
		s.playerX, s.playerY = p[0], p[1]
	} else {
		s.playerX, s.playerY = rng.Intn(n), rng.Intn(n)
	}
	s.sectors[s.playerY][s.playerX].Revealed = true
	s.revealRandom(s.layout.RevealCount)

	s.cursorX, s.cursorY = s.playerX, s.playerY
	s.confirming = false
	s.log.Info().Str("start", component.SectorName(s.playerX, s.playerY)).Msg("universe generated")
}

// revealRandom uncovers up to count hidden sectors
func (s *StarMap) revealRandom(count int) {
	var hidden []*component.Sector
	for y := range s.sectors {
		for x := range s.sectors[y] {
			if !s.sectors[y][x].Revealed {
				hidden = append(hidden, &s.sectors[y][x])
			}
		}
	}
	for i := 0; i < count && len(hidden) > 0; i++ {
		j := s.deps.Rand.Intn(len(hidden))
		hidden[j].Revealed = true
		hidden = append(hidden[:j], hidden[j+1:]...)
	}
}

// Enter places the cursor on the player and starts the map music
func (s *StarMap) Enter() {
	s.done.reset()
	s.cursorX, s.cursorY = s.playerX, s.playerY
	s.confirming = false
	s.ticks = 0
	s.deps.Audio.PlayMusic(audio.MusicStarMap)
}

// Exit stops the map music
func (s *StarMap) Exit() {
	s.deps.Audio.StopMusic()
}

// Update handles navigation, warp confirmation and pending campaign victory
func (s *StarMap) Update() {
	if s.done.fired {
		return
	}
	s.ticks++

	if route := s.deps.State.VictoryRoute(); route != "" {
		s.leave(parameter.ModeVictory)
		return
	}

	in := s.deps.Input
	if in.IsKeyPressed(input.KeyEscape) {
		if s.confirming {
			s.confirming = false
			return
		}
		s.leave(parameter.ModeMenu)
		return
	}

	n := s.layout.GridSize
	moved := false
	if in.IsKeyPressed(input.KeyUp) && s.cursorY > 0 {
		s.cursorY--
		moved = true
	}
	if in.IsKeyPressed(input.KeyDown) && s.cursorY < n-1 {
		s.cursorY++
		moved = true
	}
	if in.IsKeyPressed(input.KeyLeft) && s.cursorX > 0 {
		s.cursorX--
		moved = true
	}
	if in.IsKeyPressed(input.KeyRight) && s.cursorX < n-1 {
		s.cursorX++
		moved = true
	}
	if moved {
		s.confirming = false
		s.deps.Audio.PlaySFX(audio.SoundMenuMove)
	}

	if !in.IsFirePressed() {
		return
	}
	if s.confirming && s.cursorX == s.targetX && s.cursorY == s.targetY {
		s.warp()
		return
	}
	s.selectSector(s.cursorX, s.cursorY)
}

// selectSector opens the warp confirmation for a valid target
func (s *StarMap) selectSector(x, y int) {
	if x == s.playerX && y == s.playerY {
		return
	}
	if s.sectors[y][x].Completed {
		s.deps.Audio.PlaySFX(audio.SoundPlayerHit)
		return
	}
	s.targetX, s.targetY = x, y
	s.confirming = true
	s.deps.Audio.PlaySFX(audio.SoundMenuSelect)
}

// warp moves to the target, reveals around it and triggers its encounter
func (s *StarMap) warp() {
	s.confirming = false
	s.playerX, s.playerY = s.targetX, s.targetY
	sec := &s.sectors[s.playerY][s.playerX]
	sec.Revealed = true
	s.revealRandom(s.layout.RevealCount)
	s.deps.Audio.PlaySFX(audio.SoundWarp)
	s.log.Info().Str("sector", component.SectorName(s.playerX, s.playerY)).Stringer("kind", sec.Kind).Msg("warped")

	if sec.Completed {
		return
	}
	s.leave(encounterModes[sec.Kind])
}

func (s *StarMap) leave(next string) {
	if !s.done.fire() {
		return
	}
	s.deps.Switcher.SwitchToMode(next)
}

// CompleteSector marks the player's sector complete and records a campaign victory at the threshold
func (s *StarMap) CompleteSector() {
	sec := &s.sectors[s.playerY][s.playerX]
	sec.Completed = true

	enemy, ally := s.Progress()
	s.log.Info().Str("sector", component.SectorName(s.playerX, s.playerY)).Int("enemy_planets", enemy).Int("ally_planets", ally).Msg("sector completed")

	switch {
	case enemy >= s.layout.VictoryCount:
		s.deps.State.TriggerVictory(parameter.RouteEnemy)
	case ally >= s.layout.VictoryCount:
		s.deps.State.TriggerVictory(parameter.RouteAlly)
	}
}

// Progress counts completed enemy and ally planets
func (s *StarMap) Progress() (enemy, ally int) {
	for y := range s.sectors {
		for x := range s.sectors[y] {
			sec := s.sectors[y][x]
			if !sec.Completed {
				continue
			}
			switch sec.Kind {
			case component.SectorEnemyPlanet:
				enemy++
			case component.SectorAllyPlanet:
				ally++
			}
		}
	}
	return enemy, ally
}

// StarMapView is a read-only snapshot for rendering
type StarMapView struct {
	Sectors          [][]component.Sector
	PlayerX, PlayerY int
	CursorX, CursorY int
	Confirming       bool
	EnemyPlanets     int
	AllyPlanets      int
	VictoryCount     int
	Ticks            int
}

// View returns the current snapshot
func (s *StarMap) View() StarMapView {
	enemy, ally := s.Progress()
	return StarMapView{
		Sectors:      s.sectors,
		PlayerX:      s.playerX,
		PlayerY:      s.playerY,
		CursorX:      s.cursorX,
		CursorY:      s.cursorY,
		Confirming:   s.confirming,
		EnemyPlanets: enemy,
		AllyPlanets:  ally,
		VictoryCount: s.layout.VictoryCount,
		Ticks:        s.ticks,
	}
}
