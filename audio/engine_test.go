package audio

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/status"
)

func TestEngineSilentWithoutSpeaker(t *testing.T) {
	reg := status.NewRegistry()
	e := NewEngine(DefaultConfig(), reg, zerolog.Nop())

	e.PlaySFX(SoundLaser)
	e.PlaySFX(SoundExplosion)

	if got := reg.Ints.Get("audio.dropped").Load(); got != 2 {
		t.Errorf("Expected 2 dropped effects, got %d", got)
	}
	if got := reg.Ints.Get("audio.played").Load(); got != 0 {
		t.Errorf("Expected 0 played, got %d", got)
	}
}

func TestEngineMusicTracking(t *testing.T) {
	reg := status.NewRegistry()
	e := NewEngine(DefaultConfig(), reg, zerolog.Nop())

	e.PlayMusic(MusicCombat)
	if e.CurrentMusic() != MusicCombat {
		t.Errorf("Expected combat music, got %s", e.CurrentMusic())
	}
	if got := reg.Strings.Get("audio.music").Load(); got != "combat" {
		t.Errorf("Expected audio.music combat, got %q", got)
	}

	e.StopMusic()
	if e.CurrentMusic() != MusicNone {
		t.Errorf("Expected no music, got %s", e.CurrentMusic())
	}
}

func TestEngineMute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	e := NewEngine(cfg, status.NewRegistry(), zerolog.Nop())

	if !e.IsMuted() {
		t.Fatal("Expected disabled config to start muted")
	}
	if on := e.ToggleMute(); !on {
		t.Error("Expected ToggleMute to turn sound on")
	}
	if e.IsMuted() {
		t.Error("Expected unmuted")
	}
}

func TestEngineClampsVolume(t *testing.T) {
	cfg := Config{Enabled: true, MasterVolume: 3, MusicVolume: -1}
	e := NewEngine(cfg, status.NewRegistry(), zerolog.Nop())
	if e.config.MasterVolume != 1 || e.config.MusicVolume != 0 {
		t.Errorf("Expected clamped volumes, got %v/%v", e.config.MasterVolume, e.config.MusicVolume)
	}
	if e.config.SampleRate != DefaultConfig().SampleRate {
		t.Errorf("Expected default sample rate, got %d", e.config.SampleRate)
	}
}
