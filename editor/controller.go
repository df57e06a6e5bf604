package editor

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/etchlab/etch/caret"
	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/input"
	"github.com/etchlab/etch/internal/event"
	"github.com/etchlab/etch/internal/logger"
)

const (
	openers = `([{'"`
	closers = `)]}'"`
)

// HandleKeyDown processes one key press. Returns whether the key was
// consumed; unconsumed keys are the host's to act on. The first qualifying
// key of an edit burst opens a history recording by snapshotting the
// pre-edit state.
func (e *Editor) HandleKeyDown(ev input.Event) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	e.prevText = e.text()

	if shouldRecord(ev) && !e.recording {
		e.recordSnapshot()
		e.recording = true
	}

	handled := true
	switch {
	case isUndo(ev):
		e.undo()
	case isRedo(ev):
		e.redo()
	case ev.Key == input.KeyEnter:
		e.handleNewLine()
	case ev.Key == input.KeyTab:
		e.handleTab(ev.Has(input.ModShift))
	case ev.Key == input.KeyHome,
		ev.Key == input.KeyLeft && ev.Has(input.ModMeta):
		e.handleLineStart(ev.Has(input.ModShift))
	case ev.Key == input.KeyBackspace:
		e.handleBackspace()
	case ev.Key == input.KeyDelete:
		e.handleDeleteForward()
	case ev.Key == input.KeyRune && ev.Mod&^input.ModShift == 0:
		handled = e.handleRune(ev.Rune)
	default:
		handled = false
	}

	if t := e.text(); t != e.prevText {
		e.dirty = true
		e.events.Dispatch(event.TypeContentChanged, event.ContentChangedData{Text: t})
	}
	return handled
}

// HandleKeyUp schedules the debounced highlight pass and the debounced close
// of the current history recording. Rapid keystrokes collapse into one
// highlight and one snapshot. The scheduled closures run on timer goroutines
// and take the editor mutex before touching any state.
func (e *Editor) HandleKeyUp(ev input.Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.notify.scheduleHighlight(e.afterBurst)
	record := shouldRecord(ev)
	e.notify.scheduleRecord(func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.closed {
			return
		}
		if record {
			e.recordSnapshot()
		}
		e.recording = false
	})
}

// afterBurst re-highlights if any keystroke in the burst changed the text,
// preserving the cursor across the pass since highlighting may rebuild the
// tree, then fires the update callback.
func (e *Editor) afterBurst() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	text := e.text()
	if e.dirty {
		e.dirty = false
		pos, err := e.mapper.Save()
		e.fn(e.root)
		if err == nil {
			e.restore(pos)
		}
		e.events.Dispatch(event.TypeHighlighted, event.HighlightedData{Text: text})
	}
	if e.onUpdate != nil {
		e.onUpdate(text)
	}
}

// handleNewLine inserts a line break carrying over the current line's
// padding, adds one indent level after an opening brace, keeps the final
// line enterable, and drops an adjacent closing brace onto its own
// de-indented line.
func (e *Editor) handleNewLine() {
	before := e.beforeCursor()
	after := e.afterCursor()
	padding, _, _ := findPadding(before)

	newPadding := padding
	if strings.HasSuffix(before, "{") {
		newPadding += e.opts.Tab
	}
	e.insertAtCursor("\n" + newPadding)

	if after == "" {
		// Without a newline after the cursor the last line cannot be
		// re-entered; park one behind the cursor.
		if pos, err := e.mapper.Save(); err == nil {
			start, _ := pos.Normalized()
			if err := dom.InsertAt(e.root, start, "\n"); err == nil {
				e.restore(pos)
			}
		}
	}

	if newPadding != padding && strings.HasPrefix(after, "}") {
		if pos, err := e.mapper.Save(); err == nil {
			start, _ := pos.Normalized()
			if err := dom.InsertAt(e.root, start, "\n"+padding); err == nil {
				e.restore(pos)
			}
		}
	}
}

// handleTab inserts one indent level, or with shift removes up to one indent
// level from the current line's padding, keeping the cursor on the same
// character.
func (e *Editor) handleTab(shift bool) {
	if !shift {
		e.insertAtCursor(e.opts.Tab)
		return
	}
	before := e.beforeCursor()
	padding, lineStart, _ := findPadding(before)
	if len(padding) == 0 {
		return
	}
	pos, err := e.mapper.Save()
	if err != nil {
		return
	}
	n := len(e.opts.Tab)
	if len(padding) < n {
		n = len(padding)
	}
	if err := dom.DeleteRange(e.root, lineStart, lineStart+n); err != nil {
		logger.Warnf("editor: outdent failed: %v", err)
		return
	}
	e.restore(caret.Position{Start: pos.Start - n, End: pos.End - n, Dir: pos.Dir})
}

// handleLineStart jumps (or with extend, select-extends) to the start of the
// line when the cursor sits inside the leading padding, and to the first
// non-padding character otherwise.
func (e *Editor) handleLineStart(extend bool) {
	before := e.beforeCursor()
	padding, lineStart, paddingEnd := findPadding(before)

	target := paddingEnd
	if strings.HasSuffix(before, padding) {
		target = lineStart
	}
	if extend {
		pos, err := e.mapper.Save()
		if err != nil {
			return
		}
		e.restore(caret.Position{Start: target, End: pos.End})
	} else {
		e.restore(caret.Position{Start: target, End: target})
	}
}

// handleRune applies self-closing pair behavior, falling back to plain
// insertion. Typing a closer that already sits after the cursor moves past
// it instead of duplicating; typing an opener inserts the pair around the
// selection with the cursor (or selection) between them.
func (e *Editor) handleRune(r rune) bool {
	ch := string(r)

	if strings.Contains(closers, ch) && strings.HasPrefix(e.afterCursor(), ch) {
		pos, err := e.mapper.Save()
		if err != nil {
			return false
		}
		_, end := pos.Normalized()
		e.restoreAt(end + len(ch))
		return true
	}

	if idx := strings.Index(openers, ch); idx >= 0 {
		pos, err := e.mapper.Save()
		if err != nil {
			return false
		}
		start, end := pos.Normalized()
		wrapped := ""
		if end > start {
			wrapped = e.text()[start:end]
		}
		if !e.insertAtCursor(ch + wrapped + string(closers[idx])) {
			return false
		}
		e.restore(caret.Position{Start: pos.Start + 1, End: pos.End + 1, Dir: pos.Dir})
		return true
	}

	return e.insertAtCursor(ch)
}

// handleBackspace deletes the selection, or the rune before the cursor.
func (e *Editor) handleBackspace() {
	pos, err := e.mapper.Save()
	if err != nil {
		return
	}
	start, end := pos.Normalized()
	if end > start {
		if dom.DeleteRange(e.root, start, end) == nil {
			e.restoreAt(start)
		}
		return
	}
	if start == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(e.text()[:start])
	if dom.DeleteRange(e.root, start-size, start) == nil {
		e.restoreAt(start - size)
	}
}

// handleDeleteForward deletes the selection, or the rune after the cursor.
func (e *Editor) handleDeleteForward() {
	pos, err := e.mapper.Save()
	if err != nil {
		return
	}
	start, end := pos.Normalized()
	if end > start {
		if dom.DeleteRange(e.root, start, end) == nil {
			e.restoreAt(start)
		}
		return
	}
	after := e.text()[end:]
	if after == "" {
		return
	}
	_, size := utf8.DecodeRuneInString(after)
	if dom.DeleteRange(e.root, end, end+size) == nil {
		e.restoreAt(end)
	}
}

// insertAtCursor replaces the current selection with s and collapses the
// cursor after it.
func (e *Editor) insertAtCursor(s string) bool {
	pos, err := e.mapper.Save()
	if err != nil {
		logger.Debugf("editor: insert with no selection: %v", err)
		return false
	}
	start, end := pos.Normalized()
	if end > start {
		if err := dom.DeleteRange(e.root, start, end); err != nil {
			logger.Warnf("editor: delete before insert failed: %v", err)
			return false
		}
	}
	if err := dom.InsertAt(e.root, start, s); err != nil {
		logger.Warnf("editor: insert failed: %v", err)
		return false
	}
	e.restoreAt(start + len(s))
	return true
}

// beforeCursor returns the flattened text before the (normalized) selection
// start.
func (e *Editor) beforeCursor() string {
	pos, err := e.mapper.Save()
	if err != nil {
		return ""
	}
	start, _ := pos.Normalized()
	text := e.text()
	if start > len(text) {
		start = len(text)
	}
	return text[:start]
}

// afterCursor returns the flattened text after the (normalized) selection
// end.
func (e *Editor) afterCursor() string {
	pos, err := e.mapper.Save()
	if err != nil {
		return ""
	}
	_, end := pos.Normalized()
	text := e.text()
	if end > len(text) {
		end = len(text)
	}
	return text[end:]
}

// findPadding scans back from the end of text to the last line break, then
// forward across spaces and tabs. It returns the padding run plus the flat
// offsets of the line start and of the first non-padding character.
func findPadding(text string) (padding string, lineStart, paddingEnd int) {
	i := len(text) - 1
	for i >= 0 && text[i] != '\n' {
		i--
	}
	i++
	j := i
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	return text[i:j], i, j
}

func isCtrlOrMeta(ev input.Event) bool {
	return ev.Has(input.ModCtrl) || ev.Has(input.ModMeta)
}

func isUndo(ev input.Event) bool {
	return ev.Key == input.KeyRune && isCtrlOrMeta(ev) &&
		!ev.Has(input.ModShift) && unicode.ToLower(ev.Rune) == 'z'
}

func isRedo(ev input.Event) bool {
	if ev.Key != input.KeyRune || !isCtrlOrMeta(ev) {
		return false
	}
	lower := unicode.ToLower(ev.Rune)
	return (ev.Has(input.ModShift) && lower == 'z') || lower == 'y'
}

// shouldRecord reports whether the key event participates in history
// recording: anything but undo/redo chords and bare cursor movement.
func shouldRecord(ev input.Event) bool {
	return !isUndo(ev) && !isRedo(ev) && !ev.Arrow() && ev.Key != input.KeyUnknown
}
