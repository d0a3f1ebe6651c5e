package fsm

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// LoadConfig parses a TOML document and replaces the machine graph
// All state, guard and action references are validated
func (m *Machine[T]) LoadConfig(data []byte) error {
	var cfg RootConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to unmarshal FSM config: %w", err)
	}
	return m.LoadRootConfig(&cfg)
}

// LoadRootConfig builds the graph from an already decoded config
func (m *Machine[T]) LoadRootConfig(cfg *RootConfig) error {
	if cfg.States == nil {
		cfg.States = make(map[string]*StateConfig)
	}

	m.nodes = make(map[StateID]*Node[T])
	m.names = make(map[string]StateID)
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	m.ticksInState = 0

	m.AddState(StateRoot, "Root", StateNone)
	if _, ok := cfg.States["Root"]; !ok {
		cfg.States["Root"] = &StateConfig{}
	}

	// Sorted names give deterministic IDs
	stateNames := make([]string, 0, len(cfg.States))
	for name := range cfg.States {
		if name != "Root" {
			stateNames = append(stateNames, name)
		}
	}
	sort.Strings(stateNames)

	nameToID := map[string]StateID{"Root": StateRoot}
	for i, name := range stateNames {
		nameToID[name] = StateID(i + 2)
	}

	for _, name := range stateNames {
		sc := cfg.States[name]
		if sc == nil {
			sc = &StateConfig{}
			cfg.States[name] = sc
		}
		pName := sc.Parent
		if pName == "" {
			pName = "Root"
		}
		parentID, ok := nameToID[pName]
		if !ok {
			return fmt.Errorf("state '%s' references unknown parent '%s'", name, pName)
		}
		m.AddState(nameToID[name], name, parentID)
	}

	for name, sc := range cfg.States {
		node := m.nodes[nameToID[name]]
		var err error
		if node.OnEnter, err = m.compileActions(sc.OnEnter); err != nil {
			return fmt.Errorf("state '%s' on_enter: %w", name, err)
		}
		if node.OnUpdate, err = m.compileActions(sc.OnUpdate); err != nil {
			return fmt.Errorf("state '%s' on_update: %w", name, err)
		}
		if node.OnExit, err = m.compileActions(sc.OnExit); err != nil {
			return fmt.Errorf("state '%s' on_exit: %w", name, err)
		}
		if err := m.compileTransitions(node, sc.Transitions, nameToID); err != nil {
			return fmt.Errorf("state '%s' transitions: %w", name, err)
		}
	}

	if err := m.CompilePaths(); err != nil {
		return err
	}

	initialID, ok := nameToID[cfg.Initial]
	if !ok || initialID == StateRoot {
		return fmt.Errorf("initial state '%s' not found", cfg.Initial)
	}
	m.InitialStateID = initialID
	return nil
}

// StateID resolves a state name
func (m *Machine[T]) StateID(name string) (StateID, bool) {
	id, ok := m.names[name]
	return id, ok
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, ac := range configs {
		fn, ok := m.actionReg[ac.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action function '%s'", ac.Action)
		}
		actions = append(actions, Action[T]{Func: fn, Args: ac.Args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, tc := range configs {
		targetID, ok := nameToID[tc.Target]
		if !ok || targetID == StateRoot {
			return fmt.Errorf("unknown target state '%s'", tc.Target)
		}
		if tc.Trigger == "" {
			return fmt.Errorf("transition to '%s' has no trigger", tc.Target)
		}
		var guard GuardFunc[T]
		if tc.Guard != "" {
			g, ok := m.guardReg[tc.Guard]
			if !ok {
				return fmt.Errorf("unknown guard function '%s'", tc.Guard)
			}
			guard = g
		}
		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Trigger:  tc.Trigger,
			Guard:    guard,
		})
	}
	return nil
}
