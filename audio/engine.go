package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/status"
)

// Engine plays synthesized effects and music through the beep speaker
// Without a started speaker it runs silent: calls are accepted and counted
type Engine struct {
	mu     sync.Mutex
	config Config
	rate   beep.SampleRate
	mixer  *beep.Mixer

	music   *beep.Ctrl
	musicID MusicID

	running atomic.Bool
	muted   atomic.Bool

	log         zerolog.Logger
	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
	statMusic   *status.AtomicString
	statMuted   *atomic.Bool
}

// NewEngine creates an engine; Start opens the speaker
func NewEngine(cfg Config, reg *status.Registry, log zerolog.Logger) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	cfg.MasterVolume = clampVolume(cfg.MasterVolume)
	cfg.MusicVolume = clampVolume(cfg.MusicVolume)

	e := &Engine{
		config:      cfg,
		rate:        beep.SampleRate(cfg.SampleRate),
		mixer:       &beep.Mixer{},
		log:         log.With().Str("component", "audio").Logger(),
		statPlayed:  reg.Ints.Get("audio.played"),
		statDropped: reg.Ints.Get("audio.dropped"),
		statMusic:   reg.Strings.Get("audio.music"),
		statMuted:   reg.Bools.Get("audio.muted"),
	}
	e.setMuted(!cfg.Enabled)
	e.statMusic.Store(MusicNone.String())
	return e
}

// Start initializes the speaker and attaches the mixer
// On failure the engine stays usable in silent mode and the error is returned for logging
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}
	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(e.mixer)
	e.running.Store(true)
	return nil
}

// Stop clears all streams and closes the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// IsRunning reports whether the speaker is open
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// PlaySFX queues a one-shot effect
func (e *Engine) PlaySFX(id SoundID) {
	if !e.running.Load() || e.muted.Load() {
		e.statDropped.Add(1)
		return
	}
	s := NewSound(id, e.config.MasterVolume, e.rate)
	if s == nil {
		e.log.Warn().Uint8("sound", uint8(id)).Msg("unknown sound id")
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
	e.statPlayed.Add(1)
}

// PlayMusic replaces the current track; the same track already playing is left alone
func (e *Engine) PlayMusic(id MusicID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if id == e.musicID && e.music != nil {
		return
	}
	e.stopMusicLocked()
	e.musicID = id
	e.statMusic.Store(id.String())

	if !e.running.Load() || id == MusicNone {
		return
	}
	s := NewMusic(id, e.config.MasterVolume*e.config.MusicVolume, e.rate)
	if s == nil {
		return
	}
	e.music = &beep.Ctrl{Streamer: s, Paused: e.muted.Load()}
	speaker.Lock()
	e.mixer.Add(e.music)
	speaker.Unlock()
	e.log.Debug().Str("music", id.String()).Msg("music started")
}

// StopMusic silences the current track
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopMusicLocked()
	e.musicID = MusicNone
	e.statMusic.Store(MusicNone.String())
}

func (e *Engine) stopMusicLocked() {
	if e.music == nil {
		return
	}
	// Dropping the streamer from the ctrl ends it, the mixer removes drained streamers
	speaker.Lock()
	e.music.Streamer = nil
	speaker.Unlock()
	e.music = nil
}

// CurrentMusic returns the track most recently requested
func (e *Engine) CurrentMusic() MusicID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.musicID
}

// ToggleMute flips mute and returns true when sound is now on
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.setMuted(muted)

	e.mu.Lock()
	if e.music != nil {
		speaker.Lock()
		e.music.Paused = muted
		speaker.Unlock()
	}
	e.mu.Unlock()
	return !muted
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

func (e *Engine) setMuted(m bool) {
	e.muted.Store(m)
	e.statMuted.Store(m)
}
