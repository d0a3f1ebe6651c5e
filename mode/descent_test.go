package mode

import (
	"testing"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/parameter"
)

func TestPlanetDescentHandsOver(t *testing.T) {
	h := newHarness(81)
	d := NewPlanetDescent(h.deps)
	d.Enter()

	h.ticks(d, parameter.DescentOrbitSoundTicks)
	if h.audio.played(audio.SoundOrbit) != 1 {
		t.Errorf("Expected orbit sound after %d ticks, got %d", parameter.DescentOrbitSoundTicks, h.audio.played(audio.SoundOrbit))
	}
	h.ticks(d, parameter.DescentTicks-parameter.DescentOrbitSoundTicks-1)
	if len(h.switcher.switches) != 0 {
		t.Fatalf("Expected descent still running, got %v", h.switcher.switches)
	}
	if p := d.View().Progress; p <= 0 || p >= 1 {
		t.Errorf("Expected partial progress, got %v", p)
	}
	h.ticks(d, 5)
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeEnemyPlanet {
		t.Errorf("Expected one switch to enemyPlanet, got %v", h.switcher.switches)
	}
	if h.sectors.completed != 0 {
		t.Errorf("Expected the mission to complete the sector, got %d", h.sectors.completed)
	}
}

func TestPlanetDescentSkip(t *testing.T) {
	h := newHarness(82)
	d := NewPlanetDescent(h.deps)
	d.Enter()
	h.ticks(d, 10)
	h.input.tap(input.KeyFire)
	h.tick(d)
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeEnemyPlanet {
		t.Errorf("Expected skip to enemyPlanet, got %v", h.switcher.switches)
	}
	h.ticks(d, parameter.DescentTicks)
	if len(h.switcher.switches) != 1 {
		t.Errorf("Expected a single switch, got %v", h.switcher.switches)
	}
	if h.audio.played(audio.SoundOrbit) != 0 {
		t.Error("Expected pending orbit sound cancelled by the skip")
	}
}

func TestPlanetDescentEmergencyRepairs(t *testing.T) {
	cases := []struct {
		health   int
		repaired bool
	}{
		{1, true},
		{parameter.EmergencyRepairHealth, true},
		{parameter.EmergencyRepairHealth + 1, false},
		{parameter.PlayerMaxHealth, false},
	}
	for _, c := range cases {
		h := newHarness(83)
		h.state.SetHealth(c.health)
		d := NewPlanetDescent(h.deps)
		d.Enter()
		v := d.View()

		if v.Repaired != c.repaired {
			t.Errorf("Health %d: expected repaired=%v, got %v", c.health, c.repaired, v.Repaired)
		}
		hp := h.state.Health()
		if !c.repaired {
			if hp != c.health {
				t.Errorf("Health %d: expected no repairs, got %d", c.health, hp)
			}
			continue
		}
		if hp < parameter.EmergencyRepairMin || hp >= parameter.EmergencyRepairMin+parameter.EmergencyRepairSpan {
			t.Errorf("Health %d: expected repair into [%d,%d], got %d", c.health,
				parameter.EmergencyRepairMin, parameter.EmergencyRepairMin+parameter.EmergencyRepairSpan-1, hp)
		}
		if v.RepairedFrom != c.health || v.RepairedTo != hp {
			t.Errorf("Expected repair %d -> %d in view, got %d -> %d", c.health, hp, v.RepairedFrom, v.RepairedTo)
		}
	}
}

func TestAllyDescentFullHeal(t *testing.T) {
	h := newHarness(84)
	h.state.SetHealth(2)
	d := NewAllyDescent(h.deps)
	d.Enter()
	if h.state.Health() != 2 {
		t.Errorf("Expected no emergency repairs on an ally approach, got %d", h.state.Health())
	}

	h.ticks(d, parameter.DescentTicks)
	if d.phase != PhaseVictory || h.audio.played(audio.SoundVictory) != 1 {
		t.Fatalf("Expected delivery messages after the approach, got %v", d.phase)
	}

	h.ticks(d, parameter.AllyMessageTicks/2)
	if v := d.View(); v.Message != allyMessages[0] || v.MessageAlpha < 0.99 {
		t.Errorf("Expected first message at full strength, got %q at %v", v.Message, v.MessageAlpha)
	}
	h.ticks(d, parameter.AllyMessageTicks)
	if v := d.View(); v.Message != allyMessages[1] {
		t.Errorf("Expected second message, got %q", v.Message)
	}
	if h.sectors.completed != 0 || h.state.Health() != 2 {
		t.Fatal("Expected reward held until the messages end")
	}

	h.ticks(d, parameter.AllyMessageTicks/2)
	if h.state.Health() != parameter.PlayerMaxHealth {
		t.Errorf("Expected full health %d, got %d", parameter.PlayerMaxHealth, h.state.Health())
	}
	if h.sectors.completed != 1 {
		t.Errorf("Expected CompleteSector once, got %d", h.sectors.completed)
	}
	if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeStarMap {
		t.Errorf("Expected one switch to starMap, got %v", h.switcher.switches)
	}
}

func TestAllyDescentSkipKeepsReward(t *testing.T) {
	for _, k := range []input.Key{input.KeyFire, input.KeyEscape} {
		h := newHarness(85)
		h.state.SetHealth(3)
		d := NewAllyDescent(h.deps)
		d.Enter()
		h.ticks(d, 20)
		h.input.tap(k)
		h.tick(d)
		h.ticks(d, parameter.DescentTicks+2*parameter.AllyMessageTicks)

		if h.state.Health() != parameter.PlayerMaxHealth {
			t.Errorf("Expected full heal after %v skip, got %d", k, h.state.Health())
		}
		if h.sectors.completed != 1 {
			t.Errorf("Expected CompleteSector once after %v skip, got %d", k, h.sectors.completed)
		}
		if len(h.switcher.switches) != 1 || h.switcher.last() != parameter.ModeStarMap {
			t.Errorf("Expected one switch to starMap, got %v", h.switcher.switches)
		}
	}
}
