package fsm

import (
	"errors"
	"fmt"
)

// ErrNoTransition is returned by Fire when no enabled transition matches the trigger
var ErrNoTransition = errors.New("no transition for trigger")

// NewMachine creates an empty FSM; register guards and actions before LoadConfig
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		names:     make(map[string]StateID),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.ticksInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		n := m.nodes[id]
		for _, a := range n.OnEnter {
			a.Func(ctx, n.Name, a.Args)
		}
	}
	return nil
}

// Update runs OnUpdate for the active leaf and evaluates Tick transitions, bubbling up
func (m *Machine[T]) Update(ctx T) {
	if m.activeStateID == StateNone {
		return
	}
	m.ticksInState++

	leaf := m.nodes[m.activeStateID]
	for _, a := range leaf.OnUpdate {
		a.Func(ctx, leaf.Name, a.Args)
	}

	if target, ok := m.match(ctx, TriggerTick); ok {
		m.transition(ctx, target)
	}
}

// Fire routes a named trigger from the active leaf up to Root and takes the first enabled transition
func (m *Machine[T]) Fire(ctx T, trigger string) error {
	if m.activeStateID == StateNone {
		return fmt.Errorf("fire %q: machine not initialized", trigger)
	}
	target, ok := m.match(ctx, trigger)
	if !ok {
		return fmt.Errorf("%w %q in state '%s'", ErrNoTransition, trigger, m.Current())
	}
	m.transition(ctx, target)
	return nil
}

// Can reports whether Fire(trigger) would take a transition
func (m *Machine[T]) Can(ctx T, trigger string) bool {
	_, ok := m.match(ctx, trigger)
	return ok
}

func (m *Machine[T]) match(ctx T, trigger string) (StateID, bool) {
	curr := m.activeStateID
	for curr != StateNone {
		node := m.nodes[curr]
		for _, t := range node.Transitions {
			if t.Trigger != trigger {
				continue
			}
			if t.Guard == nil || t.Guard(ctx, m.ticksInState) {
				return t.TargetID, true
			}
		}
		curr = node.ParentID
	}
	return StateNone, false
}

// transition exits up to the lowest common ancestor and enters down to the target
// A transition to the active state is a no-op
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if m.activeStateID == targetID {
		return
	}
	target, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: transition to unknown state ID %d", targetID))
	}

	lca := -1
	for i := 0; i < len(m.activePath) && i < len(target.Path); i++ {
		if m.activePath[i] != target.Path[i] {
			break
		}
		lca = i
	}

	for i := len(m.activePath) - 1; i > lca; i-- {
		n := m.nodes[m.activePath[i]]
		for _, a := range n.OnExit {
			a.Func(ctx, n.Name, a.Args)
		}
	}

	// Commit before entering so OnEnter observes the new state
	m.activeStateID = targetID
	m.ticksInState = 0
	m.activePath = append(m.activePath[:0], target.Path...)

	for i := lca + 1; i < len(target.Path); i++ {
		n := m.nodes[target.Path[i]]
		for _, a := range n.OnEnter {
			a.Func(ctx, n.Name, a.Args)
		}
	}
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		n := m.nodes[m.activePath[i]]
		for _, a := range n.OnExit {
			a.Func(ctx, n.Name, a.Args)
		}
	}
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// Current returns the active leaf name, empty before Init
func (m *Machine[T]) Current() string {
	if n, ok := m.nodes[m.activeStateID]; ok {
		return n.Name
	}
	return ""
}

// InState reports whether name is on the active path (leaf or ancestor)
func (m *Machine[T]) InState(name string) bool {
	id, ok := m.names[name]
	if !ok {
		return false
	}
	for _, p := range m.activePath {
		if p == id {
			return true
		}
	}
	return false
}

// TicksInState returns Update calls since the last transition
func (m *Machine[T]) TicksInState() uint64 {
	return m.ticksInState
}
