package mode

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
	"github.com/drillerjoe/space/vmath"
)

// DescentKind selects the planet being approached
type DescentKind uint8

const (
	DescentEnemy DescentKind = iota
	DescentAlly
)

func (k DescentKind) String() string {
	if k == DescentAlly {
		return "ally"
	}
	return "enemy"
}

var allyMessages = [...]string{
	"BEER DELIVERED",
	"SHIP REPAIRED BY BEER POWER",
}

// Descent is the orbit approach before a planet
// The enemy approach patches a badly damaged ship and hands over to the planet mission.
// The ally approach shows the delivery messages, restores full health and completes the sector.
type Descent struct {
	deps Deps
	log  zerolog.Logger
	kind DescentKind
	done latch
	cues CueList

	phase      Phase
	phaseTicks int

	repairedFrom int
	repairedTo   int
}

// NewPlanetDescent creates the approach to an enemy planet
func NewPlanetDescent(deps Deps) *Descent {
	return &Descent{deps: deps, log: deps.logger(parameter.ModePlanetDescent), kind: DescentEnemy}
}

// NewAllyDescent creates the approach to an ally planet
func NewAllyDescent(deps Deps) *Descent {
	return &Descent{deps: deps, log: deps.logger(parameter.ModeAllyDescent), kind: DescentAlly}
}

func (d *Descent) Enter() {
	d.done.reset()
	d.cues.Clear()
	d.phase = PhaseIntro
	d.phaseTicks = 0
	d.repairedFrom, d.repairedTo = 0, 0

	d.deps.Audio.StopMusic()
	d.cues.Schedule(parameter.DescentOrbitSoundTicks, func() {
		d.deps.Audio.PlaySFX(audio.SoundOrbit)
	})

	if d.kind == DescentEnemy {
		if hp := d.deps.State.Health(); hp <= parameter.EmergencyRepairHealth {
			target := parameter.EmergencyRepairMin + d.deps.Rand.Intn(parameter.EmergencyRepairSpan)
			d.deps.State.Heal(target - hp)
			d.repairedFrom, d.repairedTo = hp, d.deps.State.Health()
			d.log.Info().Int("from", d.repairedFrom).Int("to", d.repairedTo).Msg("emergency repairs")
		}
	}
	d.log.Info().Stringer("kind", d.kind).Msg("descent started")
}

func (d *Descent) Exit() {
	d.cues.Clear()
}

// Update advances the approach; fire or escape skip ahead
func (d *Descent) Update() {
	if d.done.fired {
		return
	}
	d.cues.Advance()
	d.phaseTicks++

	in := d.deps.Input
	skip := in.IsFirePressed() || in.IsKeyPressed(input.KeyEscape)

	switch d.phase {
	case PhaseIntro:
		if !skip && d.phaseTicks < parameter.DescentTicks {
			return
		}
		if d.kind == DescentEnemy {
			d.finish(parameter.ModeEnemyPlanet)
			return
		}
		if skip {
			d.resolveAlly()
			return
		}
		d.phase = PhaseVictory
		d.phaseTicks = 0
		d.deps.Audio.PlaySFX(audio.SoundVictory)
	case PhaseVictory:
		if skip || d.phaseTicks >= len(allyMessages)*parameter.AllyMessageTicks {
			d.resolveAlly()
		}
	}
}

// resolveAlly restores full health, completes the sector and returns to the map
func (d *Descent) resolveAlly() {
	if !d.done.fire() {
		return
	}
	d.cues.Clear()
	d.deps.State.Heal(d.deps.State.MaxHealth())
	d.deps.Audio.PlaySFX(audio.SoundHeal)
	d.deps.Sectors.CompleteSector()
	d.log.Info().Int("health", d.deps.State.Health()).Msg("ally planet resupplied")
	d.deps.Switcher.SwitchToMode(parameter.ModeStarMap)
}

func (d *Descent) finish(next string) {
	if d.done.fire() {
		d.cues.Clear()
		d.deps.Switcher.SwitchToMode(next)
	}
}

// DescentView is a read-only snapshot for rendering
type DescentView struct {
	Kind DescentKind
	// Progress runs 0 to 1 over the approach and stays at 1 during the messages
	Progress     float64
	ShipY        float64
	Message      string
	MessageAlpha float64
	Repaired     bool
	RepairedFrom int
	RepairedTo   int
	Ticks        int
}

func (d *Descent) View() DescentView {
	v := DescentView{
		Kind:         d.kind,
		Progress:     1,
		Repaired:     d.repairedTo > 0,
		RepairedFrom: d.repairedFrom,
		RepairedTo:   d.repairedTo,
		Ticks:        d.phaseTicks,
	}
	if d.phase == PhaseIntro {
		v.Progress = vmath.Clamp(float64(d.phaseTicks)/parameter.DescentTicks, 0, 1)
	} else {
		i := min(d.phaseTicks/parameter.AllyMessageTicks, len(allyMessages)-1)
		t := float64(d.phaseTicks-i*parameter.AllyMessageTicks) / parameter.AllyMessageTicks
		v.Message = allyMessages[i]
		// Fades in over the first half of its slot and out over the second
		v.MessageAlpha = vmath.Clamp(1-2*math.Abs(t-0.5), 0, 1)
	}
	v.ShipY = parameter.DescentShipStartY + v.Progress*parameter.DescentShipTravel
	return v
}
