package input

// Key is a logical game key; several terminal keys may map to one
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyFire
	KeyEscape
	KeyPause
	KeyMute
	KeyDebug
	KeyQuit
	keyCount
)

var keyNames = [keyCount]string{
	"none", "left", "right", "up", "down", "fire", "escape", "pause", "mute", "debug", "quit",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "unknown"
}

// KeyByAction resolves an action name as used in key bindings
func KeyByAction(name string) (Key, bool) {
	for i, n := range keyNames {
		if n == name {
			return Key(i), true
		}
	}
	return KeyNone, false
}

// opposite returns the direction cancelled by pressing k
func opposite(k Key) Key {
	switch k {
	case KeyLeft:
		return KeyRight
	case KeyRight:
		return KeyLeft
	case KeyUp:
		return KeyDown
	case KeyDown:
		return KeyUp
	}
	return KeyNone
}
