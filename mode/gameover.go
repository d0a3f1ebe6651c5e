package mode

import (
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/parameter"
)

// GameOver shows the final score until fire returns to the menu
type GameOver struct {
	deps Deps
	log  zerolog.Logger
	done latch
	cues CueList

	finalScore int
	ticks      int
}

func NewGameOver(deps Deps) *GameOver {
	return &GameOver{deps: deps, log: deps.logger(parameter.ModeGameOver)}
}

// Enter captures the score before any reset
func (g *GameOver) Enter() {
	g.done.reset()
	g.cues.Clear()
	g.ticks = 0
	g.finalScore = g.deps.State.Score()
	g.deps.Audio.StopMusic()
	g.cues.Schedule(parameter.GameOverMusicDelayTicks, func() {
		g.deps.Audio.PlayMusic(audio.MusicGameOver)
	})
	g.log.Info().Int("score", g.finalScore).Msg("game over")
}

func (g *GameOver) Exit() {
	g.cues.Clear()
	g.deps.Audio.StopMusic()
}

func (g *GameOver) Update() {
	if g.done.fired {
		return
	}
	g.cues.Advance()
	g.ticks++
	// Ignore fire held over from the encounter
	if g.ticks < parameter.GameOverInputDelayTicks || !g.deps.Input.IsFirePressed() {
		return
	}
	if g.done.fire() {
		g.deps.Switcher.SwitchToMode(parameter.ModeMenu)
	}
}

// GameOverView is a read-only snapshot for rendering
type GameOverView struct {
	Score      int
	Ticks      int
	InputReady bool
	Alpha      float64
}

func (g *GameOver) View() GameOverView {
	return GameOverView{
		Score:      g.finalScore,
		Ticks:      g.ticks,
		InputReady: g.ticks >= parameter.GameOverInputDelayTicks,
		Alpha:      min(1, float64(g.ticks)/parameter.FadeInTicks),
	}
}
