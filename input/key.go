// Package input defines platform-neutral key events for the editing
// controller, plus the translation from tcell events the demo TUI uses.
package input

// Key identifies a non-rune key.
type Key int

const (
	KeyRune Key = iota // a printable character, carried in Event.Rune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEscape
	KeyUnknown
)

// Modifiers is a bit set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Event is one decoded key press or release.
type Event struct {
	Key  Key
	Rune rune // valid when Key == KeyRune
	Mod  Modifiers
}

// Has reports whether all the given modifiers are held.
func (e Event) Has(m Modifiers) bool {
	return e.Mod&m == m
}

// Arrow reports whether the event is a bare cursor-movement key.
func (e Event) Arrow() bool {
	switch e.Key {
	case KeyLeft, KeyRight, KeyUp, KeyDown:
		return true
	}
	return false
}
