package mode

import "github.com/drillerjoe/space/parameter"

// Phase is the lifecycle stage of an encounter
type Phase uint8

const (
	PhaseAlert Phase = iota
	PhaseIntro
	PhaseActive
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhaseAlert:
		return "alert"
	case PhaseIntro:
		return "intro"
	case PhaseActive:
		return "active"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	}
	return "unknown"
}

// FadeAlpha returns overlay opacity for tick t of a sequence lasting total ticks
// Fades in over the first FadeInTicks, holds, then fades out over the last FadeOutTicks
func FadeAlpha(t, total int) float64 {
	switch {
	case t < 0 || t >= total:
		return 0
	case t < parameter.FadeInTicks:
		return float64(t) / parameter.FadeInTicks
	case t >= total-parameter.FadeOutTicks:
		return float64(total-t) / parameter.FadeOutTicks
	}
	return 1
}

// latch guards a mode's single terminal transition
type latch struct {
	fired bool
}

// fire returns true exactly once until reset
func (l *latch) fire() bool {
	if l.fired {
		return false
	}
	l.fired = true
	return true
}

func (l *latch) reset() { l.fired = false }
