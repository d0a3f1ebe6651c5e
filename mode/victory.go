package mode

import (
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/component"
	"github.com/drillerjoe/space/parameter"
)

// Firework is one celebratory particle burst
type Firework struct {
	Particles []component.Particle
	Hue       float64
}

// Victory is the campaign end screen
type Victory struct {
	deps Deps
	log  zerolog.Logger
	done latch
	cues CueList

	route      string
	finalScore int
	ticks      int
	fireworks  []Firework
	nextBurst  int
}

func NewVictory(deps Deps) *Victory {
	return &Victory{deps: deps, log: deps.logger(parameter.ModeVictory)}
}

func (v *Victory) Enter() {
	v.done.reset()
	v.cues.Clear()
	v.ticks = 0
	v.fireworks = v.fireworks[:0]
	v.nextBurst = parameter.VictoryFireworkStart
	v.route = v.deps.State.VictoryRoute()
	v.finalScore = v.deps.State.Score()
	v.deps.Audio.StopMusic()
	v.cues.Schedule(parameter.VictoryMusicDelayTicks, func() {
		v.deps.Audio.PlayMusic(audio.MusicVictory)
	})
	v.log.Info().Str("route", v.route).Int("score", v.finalScore).Msg("campaign won")
}

func (v *Victory) Exit() {
	v.cues.Clear()
	v.deps.Audio.StopMusic()
}

func (v *Victory) Update() {
	if v.done.fired {
		return
	}
	v.cues.Advance()
	v.ticks++
	v.updateFireworks()

	if v.ticks >= parameter.VictoryInputDelayTicks && v.deps.Input.IsFirePressed() && v.done.fire() {
		v.deps.Switcher.SwitchToMode(parameter.ModeMenu)
	}
}

func (v *Victory) updateFireworks() {
	kept := v.fireworks[:0]
	for _, f := range v.fireworks {
		f.Particles = component.UpdateParticles(f.Particles)
		if len(f.Particles) > 0 {
			kept = append(kept, f)
		}
	}
	v.fireworks = kept

	v.nextBurst--
	if v.nextBurst > 0 || len(v.fireworks) >= parameter.VictoryFireworkMax {
		return
	}
	rng := v.deps.Rand
	x := rng.Range(parameter.ScreenWidth*0.15, parameter.ScreenWidth*0.85)
	y := rng.Range(parameter.ScreenHeight*0.15, parameter.ScreenHeight*0.5)
	v.fireworks = append(v.fireworks, Firework{
		Particles: component.EmitParticles(nil, x, y, rng),
		Hue:       rng.Float64(),
	})
	v.nextBurst = parameter.VictoryFireworkGapMin + rng.Intn(parameter.VictoryFireworkGapSpan)
}

// VictoryView is a read-only snapshot for rendering
type VictoryView struct {
	Route      string
	Score      int
	Ticks      int
	InputReady bool
	Fireworks  []Firework
}

func (v *Victory) View() VictoryView {
	return VictoryView{
		Route:      v.route,
		Score:      v.finalScore,
		Ticks:      v.ticks,
		InputReady: v.ticks >= parameter.VictoryInputDelayTicks,
		Fireworks:  v.fireworks,
	}
}
