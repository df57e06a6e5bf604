package input

import "github.com/gdamore/tcell/v2"

// FromTcell translates a tcell key event into a platform-neutral Event.
// Ctrl-letter chords arrive from tcell as dedicated key codes; they are
// normalized back to KeyRune plus ModCtrl so the controller sees one shape.
func FromTcell(ev *tcell.EventKey) Event {
	mod := Modifiers(0)
	tm := ev.Modifiers()
	if tm&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if tm&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if tm&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if tm&tcell.ModMeta != 0 {
		mod |= ModMeta
	}

	key := ev.Key()
	switch key {
	case tcell.KeyEnter:
		return Event{Key: KeyEnter, Mod: mod}
	case tcell.KeyTab:
		return Event{Key: KeyTab, Mod: mod}
	case tcell.KeyBacktab:
		return Event{Key: KeyTab, Mod: mod | ModShift}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Event{Key: KeyBackspace, Mod: mod}
	case tcell.KeyDelete:
		return Event{Key: KeyDelete, Mod: mod}
	case tcell.KeyLeft:
		return Event{Key: KeyLeft, Mod: mod}
	case tcell.KeyRight:
		return Event{Key: KeyRight, Mod: mod}
	case tcell.KeyUp:
		return Event{Key: KeyUp, Mod: mod}
	case tcell.KeyDown:
		return Event{Key: KeyDown, Mod: mod}
	case tcell.KeyHome:
		return Event{Key: KeyHome, Mod: mod}
	case tcell.KeyEnd:
		return Event{Key: KeyEnd, Mod: mod}
	case tcell.KeyEscape:
		return Event{Key: KeyEscape, Mod: mod}
	case tcell.KeyRune:
		return Event{Key: KeyRune, Rune: ev.Rune(), Mod: mod}
	}

	// Ctrl-letter chords (KeyCtrlA..KeyCtrlZ) map onto ASCII control codes.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		r := rune('a' + (key - tcell.KeyCtrlA))
		return Event{Key: KeyRune, Rune: r, Mod: mod | ModCtrl}
	}
	return Event{Key: KeyUnknown, Mod: mod}
}
