package fsm

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// TriggerTick marks a transition evaluated on every Update instead of on Fire
const TriggerTick = "Tick"

// Machine is a hierarchical finite state machine
// T is the context passed to actions and guards
type Machine[T any] struct {
	// Graph, immutable after load
	nodes          map[StateID]*Node[T]
	names          map[string]StateID
	InitialStateID StateID

	// Runtime
	activeStateID StateID
	activePath    []StateID
	ticksInState  uint64

	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Path from Root to this node, used for LCA lookup
	Path []StateID

	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Evaluated in declaration order
	Transitions []Transition[T]
}

// Transition links a state to a target on a named trigger
type Transition[T any] struct {
	TargetID StateID
	Trigger  string
	Guard    GuardFunc[T] // nil = always
}

// Action is a compiled side effect with its static arguments
type Action[T any] struct {
	Func ActionFunc[T]
	Args map[string]any
}

// GuardFunc returns true if the transition may occur
type GuardFunc[T any] func(ctx T, ticksInState uint64) bool

// ActionFunc executes a side effect; state is the name of the node running it
type ActionFunc[T any] func(ctx T, state string, args map[string]any)
