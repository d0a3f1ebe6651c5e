package audio

// Cue is an action due at a simulation tick, used for delayed music starts
type Cue struct {
	FireAt uint64
	Action func()
}
