package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/drillerjoe/space/parameter"
)

// State tracks per-tick key state built from terminal key events
// Terminals report presses and repeats but no releases, so a key counts
// as down for a hold window after its last event
type State struct {
	table     *KeyTable
	holdTicks int

	remaining [keyCount]int  // Hold window left, 0 = up
	held      [keyCount]int  // Ticks the key has been continuously down
	pressed   [keyCount]bool // Went down since the last ClearFrameStates
}

// NewState creates input state over a key table; nil uses the default bindings
func NewState(table *KeyTable) *State {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &State{
		table:     table,
		holdTicks: parameter.KeyHoldTicks,
	}
}

// HandleEvent folds a terminal key event in and returns the mapped key
func (s *State) HandleEvent(ev *tcell.EventKey) (Key, bool) {
	k, ok := s.table.Lookup(ev)
	if !ok {
		return KeyNone, false
	}
	s.Press(k)
	return k, true
}

// Press marks k down, refreshing its hold window; pressing a direction releases its opposite
func (s *State) Press(k Key) {
	if k == KeyNone || k >= keyCount {
		return
	}
	if s.remaining[k] == 0 {
		s.pressed[k] = true
		s.held[k] = 0
	}
	s.remaining[k] = s.holdTicks
	if o := opposite(k); o != KeyNone {
		s.remaining[o] = 0
		s.held[o] = 0
	}
}

// Release forces k up
func (s *State) Release(k Key) {
	if k < keyCount {
		s.remaining[k] = 0
		s.held[k] = 0
	}
}

// IsKeyDown reports level state
func (s *State) IsKeyDown(k Key) bool {
	return k < keyCount && s.remaining[k] > 0
}

// IsKeyPressed reports an edge since the last tick
func (s *State) IsKeyPressed(k Key) bool {
	return k < keyCount && s.pressed[k]
}

// IsFirePressed reports a fire edge since the last tick
func (s *State) IsFirePressed() bool {
	return s.pressed[KeyFire]
}

// HeldTicks returns how many ticks k has been continuously down
func (s *State) HeldTicks(k Key) int {
	if !s.IsKeyDown(k) {
		return 0
	}
	return s.held[k]
}

// ClearFrameStates ends the tick: edges clear and hold windows count down
func (s *State) ClearFrameStates() {
	for k := range s.remaining {
		s.pressed[k] = false
		if s.remaining[k] == 0 {
			continue
		}
		s.held[k]++
		s.remaining[k]--
		if s.remaining[k] == 0 {
			s.held[k] = 0
		}
	}
}

// Reset releases every key
func (s *State) Reset() {
	s.remaining = [keyCount]int{}
	s.held = [keyCount]int{}
	s.pressed = [keyCount]bool{}
}
