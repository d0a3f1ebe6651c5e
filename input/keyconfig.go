package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"backtick":  '`',
}

// Special key names accepted in bindings, lower case
var specialByName = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"enter":     tcell.KeyEnter,
	"esc":       tcell.KeyEscape,
	"escape":    tcell.KeyEscape,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pgup":      tcell.KeyPgUp,
	"pgdn":      tcell.KeyPgDn,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
	"ctrl-c":    tcell.KeyCtrlC,
	"ctrl-q":    tcell.KeyCtrlQ,
	"ctrl-p":    tcell.KeyCtrlP,
}

// ApplyBindings returns a copy of base with key name → action name overrides applied
// The action "none" unbinds the key
func ApplyBindings(base *KeyTable, bindings map[string]string) (*KeyTable, error) {
	kt := base.Clone()
	for keyStr, actionName := range bindings {
		action, ok := KeyByAction(strings.ToLower(strings.TrimSpace(actionName)))
		if !ok {
			return nil, fmt.Errorf("key %q: unknown action: %q", keyStr, actionName)
		}

		if r, ok := resolveRune(keyStr); ok {
			if action == KeyNone {
				delete(kt.Runes, r)
			} else {
				kt.Runes[r] = action
			}
			continue
		}

		k, ok := specialByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		if action == KeyNone {
			delete(kt.SpecialKeys, k)
		} else {
			kt.SpecialKeys[k] = action
		}
	}
	return kt, nil
}

// resolveRune converts a key string to a rune; accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		r := runes[0]
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return r, true
	}
	return 0, false
}
