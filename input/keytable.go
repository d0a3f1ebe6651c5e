package input

import (
	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to game keys
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, function keys)
	SpecialKeys map[tcell.Key]Key
	// Printable runes, matched case-insensitively through lower case
	Runes map[rune]Key
}

// DefaultKeyTable returns the default bindings: arrows or WASD to move, space or enter to fire
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Key{
			tcell.KeyLeft:   KeyLeft,
			tcell.KeyRight:  KeyRight,
			tcell.KeyUp:     KeyUp,
			tcell.KeyDown:   KeyDown,
			tcell.KeyEnter:  KeyFire,
			tcell.KeyEscape: KeyEscape,
			tcell.KeyF1:     KeyDebug,
			tcell.KeyCtrlC:  KeyQuit,
			tcell.KeyCtrlQ:  KeyQuit,
		},
		Runes: map[rune]Key{
			'a': KeyLeft,
			'd': KeyRight,
			'w': KeyUp,
			's': KeyDown,
			'h': KeyLeft,
			'l': KeyRight,
			'k': KeyUp,
			'j': KeyDown,
			' ': KeyFire,
			'p': KeyPause,
			'm': KeyMute,
			'`': KeyDebug,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	out := &KeyTable{
		SpecialKeys: make(map[tcell.Key]Key, len(kt.SpecialKeys)),
		Runes:       make(map[rune]Key, len(kt.Runes)),
	}
	for k, v := range kt.SpecialKeys {
		out.SpecialKeys[k] = v
	}
	for k, v := range kt.Runes {
		out.Runes[k] = v
	}
	return out
}

// Lookup resolves a terminal key event
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Key, bool) {
	return kt.LookupKey(ev.Key(), ev.Rune())
}

// LookupKey resolves a terminal key code and rune
func (kt *KeyTable) LookupKey(key tcell.Key, r rune) (Key, bool) {
	if key == tcell.KeyRune {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		k, ok := kt.Runes[r]
		return k, ok && k != KeyNone
	}
	k, ok := kt.SpecialKeys[key]
	return k, ok && k != KeyNone
}
