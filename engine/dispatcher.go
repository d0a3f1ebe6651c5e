package engine

import (
	_ "embed"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/drillerjoe/space/engine/fsm"
	"github.com/drillerjoe/space/status"
)

//go:embed modes.toml
var defaultModeGraph []byte

var (
	ErrUnknownMode     = errors.New("unknown mode")
	ErrIllegalSwitch   = errors.New("illegal mode switch")
	ErrSwitchReentered = errors.New("mode switch already in progress")
)

// Mode is one screen of the game; exactly one is active at a time
type Mode interface {
	Enter()
	Exit()
	Update()
}

// FrameInput is cleared after every tick so edge-triggered keys last one tick
type FrameInput interface {
	ClearFrameStates()
}

// Dispatcher owns the active mode and performs switches along the mode graph
type Dispatcher struct {
	modes   map[string]Mode
	machine *fsm.Machine[*Dispatcher]
	state   *GameState
	input   FrameInput
	log     zerolog.Logger

	active     Mode
	activeName string
	switching  bool
	quit       bool

	statSwitches   *atomic.Int64
	statEncounters *atomic.Int64
	statRejected   *atomic.Int64
	statMode       *status.AtomicString
}

// NewDispatcher creates a dispatcher; register modes, then call Start
func NewDispatcher(state *GameState, input FrameInput, reg *status.Registry, log zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		modes:          make(map[string]Mode),
		machine:        fsm.NewMachine[*Dispatcher](),
		state:          state,
		input:          input,
		log:            log.With().Str("component", "dispatcher").Logger(),
		statSwitches:   reg.Ints.Get("dispatcher.switches"),
		statEncounters: reg.Ints.Get("dispatcher.encounters"),
		statRejected:   reg.Ints.Get("dispatcher.rejected"),
		statMode:       reg.Strings.Get("mode.active"),
	}

	d.machine.RegisterAction("EnterMode", (*Dispatcher).enterMode)
	d.machine.RegisterAction("ExitMode", (*Dispatcher).exitMode)
	d.machine.RegisterAction("CountEncounter", func(d *Dispatcher, _ string, _ map[string]any) {
		d.statEncounters.Add(1)
	})
	d.machine.RegisterGuard("PlayerAlive", func(d *Dispatcher, _ uint64) bool {
		return d.state.IsPlayerAlive()
	})
	return d
}

// Register binds a mode implementation to a state name of the graph
func (d *Dispatcher) Register(name string, m Mode) {
	d.modes[name] = m
}

// Start loads the mode graph (graphPath or the embedded default) and enters the initial mode
func (d *Dispatcher) Start(graphPath string) error {
	if err := fsm.LoadConfigAuto(d.machine, graphPath, defaultModeGraph); err != nil {
		return fmt.Errorf("mode graph: %w", err)
	}
	d.switching = true
	err := d.machine.Init(d)
	d.switching = false
	if err != nil {
		return fmt.Errorf("mode graph init: %w", err)
	}
	if d.active == nil {
		return fmt.Errorf("%w: initial state '%s' has no mode", ErrUnknownMode, d.machine.Current())
	}
	return nil
}

// SwitchToMode requests a switch and logs a rejected one; the current mode stays active on error
func (d *Dispatcher) SwitchToMode(name string) {
	if err := d.SwitchTo(name); err != nil {
		d.statRejected.Add(1)
		d.log.Error().Err(err).Str("from", d.activeName).Str("to", name).Msg("mode switch rejected")
	}
}

// SwitchTo exits the active mode and enters name if the graph allows it
func (d *Dispatcher) SwitchTo(name string) error {
	if _, ok := d.modes[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	if d.switching {
		return fmt.Errorf("%w: %s", ErrSwitchReentered, name)
	}

	from := d.activeName
	d.switching = true
	err := d.machine.Fire(d, name)
	d.switching = false
	if err != nil {
		if errors.Is(err, fsm.ErrNoTransition) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalSwitch, from, name)
		}
		return err
	}

	d.statSwitches.Add(1)
	d.log.Info().Str("from", from).Str("to", name).Msg("mode switched")
	return nil
}

// Update advances the active mode by one tick, then clears per-tick input
func (d *Dispatcher) Update() {
	if d.active != nil {
		d.active.Update()
	}
	d.machine.Update(d)
	if d.input != nil {
		d.input.ClearFrameStates()
	}
}

// Current returns the active mode name
func (d *Dispatcher) Current() string {
	return d.activeName
}

// Active returns the active mode
func (d *Dispatcher) Active() Mode {
	return d.active
}

// RequestQuit asks the main loop to stop after the current tick
func (d *Dispatcher) RequestQuit() {
	d.quit = true
}

// Quitting reports whether a quit was requested
func (d *Dispatcher) Quitting() bool {
	return d.quit
}

// Shutdown exits the active mode
func (d *Dispatcher) Shutdown() {
	if d.active != nil {
		d.active.Exit()
		d.active = nil
		d.activeName = ""
	}
}

func (d *Dispatcher) enterMode(state string, _ map[string]any) {
	m, ok := d.modes[state]
	if !ok {
		d.log.Warn().Str("mode", state).Msg("state has no registered mode")
		return
	}
	d.active = m
	d.activeName = state
	d.statMode.Store(state)
	m.Enter()
}

func (d *Dispatcher) exitMode(state string, _ map[string]any) {
	if d.active == nil {
		return
	}
	d.active.Exit()
	d.active = nil
	d.activeName = ""
}
