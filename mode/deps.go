package mode

import (
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/status"
	"github.com/drillerjoe/space/vmath"
)

// Switcher changes the active mode
type Switcher interface {
	SwitchToMode(name string)
}

// Input is the per-tick key state read by modes
type Input interface {
	IsKeyDown(k input.Key) bool
	IsKeyPressed(k input.Key) bool
	IsFirePressed() bool
	HeldTicks(k input.Key) int
}

// GameState is the health and score shared across modes
type GameState interface {
	Health() int
	MaxHealth() int
	Damage(n int)
	Heal(n int)
	AddScore(n int)
	Score() int
	IsPlayerAlive() bool
	Reset()
	TriggerVictory(route string)
	VictoryRoute() string
}

// Audio plays effects and music
type Audio interface {
	PlaySFX(id audio.SoundID)
	PlayMusic(id audio.MusicID)
	StopMusic()
}

// SectorMap is notified when an encounter is won
type SectorMap interface {
	CompleteSector()
}

// Deps are the collaborators shared by every mode
type Deps struct {
	Switcher Switcher
	Input    Input
	State    GameState
	Audio    Audio
	Sectors  SectorMap
	Rand     *vmath.FastRand
	Log      zerolog.Logger
	Status   *status.Registry
}

// logger returns the mode logger tagged with the mode name
func (d Deps) logger(name string) zerolog.Logger {
	return d.Log.With().Str("component", "mode").Str("mode", name).Logger()
}
