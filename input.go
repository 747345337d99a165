package learngl

import (
	"fmt"
	"strings"
)

// Key represents a keyboard key the frame loop can query.
type Key int

// Letter keys are contiguous, so KeyA+n is the n-th letter.
const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyCount
)

// String returns the key name as accepted by ParseKey.
func (k Key) String() string {
	switch {
	case k == KeySpace:
		return "space"
	case k == KeyEnter:
		return "enter"
	case k == KeyEscape:
		return "escape"
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k == KeyUnknown:
		return "none"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// ParseKey parses a key name: a single letter, "space", "enter", "escape"
// ("esc") or "none". Letters are case-insensitive.
func ParseKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "space":
		return KeySpace, nil
	case "enter", "return":
		return KeyEnter, nil
	case "escape", "esc":
		return KeyEscape, nil
	case "none", "":
		return KeyUnknown, nil
	}
	if len(name) == 1 && name[0] >= 'a' && name[0] <= 'z' {
		return KeyA + Key(name[0]-'a'), nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}
