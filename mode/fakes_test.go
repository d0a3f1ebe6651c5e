package mode

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/audio"
	"github.com/drillerjoe/space/config"
	"github.com/drillerjoe/space/engine"
	"github.com/drillerjoe/space/input"
	"github.com/drillerjoe/space/status"
	"github.com/drillerjoe/space/vmath"
)

type recordingSwitcher struct {
	switches []string
}

func (s *recordingSwitcher) SwitchToMode(name string) {
	s.switches = append(s.switches, name)
}

func (s *recordingSwitcher) last() string {
	if len(s.switches) == 0 {
		return ""
	}
	return s.switches[len(s.switches)-1]
}

// scriptedInput holds keys down until released; pressed edges last one Update
type scriptedInput struct {
	down    map[input.Key]bool
	pressed map[input.Key]bool
	held    map[input.Key]int
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		down:    make(map[input.Key]bool),
		pressed: make(map[input.Key]bool),
		held:    make(map[input.Key]int),
	}
}

func (in *scriptedInput) IsKeyDown(k input.Key) bool    { return in.down[k] }
func (in *scriptedInput) IsKeyPressed(k input.Key) bool { return in.pressed[k] }
func (in *scriptedInput) IsFirePressed() bool           { return in.pressed[input.KeyFire] }
func (in *scriptedInput) HeldTicks(k input.Key) int     { return in.held[k] }

func (in *scriptedInput) hold(k input.Key, ticks int) {
	in.down[k] = true
	in.held[k] = ticks
}

func (in *scriptedInput) release(k input.Key) {
	delete(in.down, k)
	delete(in.held, k)
}

func (in *scriptedInput) tap(k input.Key) {
	in.pressed[k] = true
}

func (in *scriptedInput) clear() {
	clear(in.pressed)
}

type recordingAudio struct {
	sfx   []audio.SoundID
	music []audio.MusicID
	stops int
}

func (a *recordingAudio) PlaySFX(id audio.SoundID)   { a.sfx = append(a.sfx, id) }
func (a *recordingAudio) PlayMusic(id audio.MusicID) { a.music = append(a.music, id) }
func (a *recordingAudio) StopMusic()                 { a.stops++ }

func (a *recordingAudio) played(id audio.SoundID) int {
	n := 0
	for _, s := range a.sfx {
		if s == id {
			n++
		}
	}
	return n
}

type countingSectors struct {
	completed int
}

func (s *countingSectors) CompleteSector() { s.completed++ }

type harness struct {
	deps     Deps
	switcher *recordingSwitcher
	input    *scriptedInput
	audio    *recordingAudio
	sectors  *countingSectors
	state    *engine.GameState
}

func newHarness(seed uint64) *harness {
	h := &harness{
		switcher: &recordingSwitcher{},
		input:    newScriptedInput(),
		audio:    &recordingAudio{},
		sectors:  &countingSectors{},
		state:    engine.NewGameState(7),
	}
	h.deps = Deps{
		Switcher: h.switcher,
		Input:    h.input,
		State:    h.state,
		Audio:    h.audio,
		Sectors:  h.sectors,
		Rand:     vmath.NewFastRand(seed),
		Log:      zerolog.Nop(),
		Status:   status.NewRegistry(),
	}
	return h
}

// tick runs one Update and clears one-shot edges like the dispatcher does
func (h *harness) tick(m interface{ Update() }) {
	m.Update()
	h.input.clear()
}

func (h *harness) ticks(m interface{ Update() }, n int) {
	for i := 0; i < n; i++ {
		h.tick(m)
	}
}

func defaultLayout(t *testing.T) config.SectorLayout {
	t.Helper()
	l, err := config.DefaultSectors()
	if err != nil {
		t.Fatalf("DefaultSectors failed: %v", err)
	}
	return l
}
