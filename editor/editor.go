// Package editor implements the editing core: it turns a content tree into a
// flat-text editing surface with cursor tracking, structural auto-indent,
// bracket pairing, tab handling, paste sanitization and bounded undo/redo,
// delegating token coloring to a caller-supplied highlight function.
package editor

import (
	"strings"
	"sync"

	"github.com/etchlab/etch/caret"
	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/highlight"
	"github.com/etchlab/etch/history"
	"github.com/etchlab/etch/internal/event"
	"github.com/etchlab/etch/internal/logger"
)

// Editor owns the editing behavior for one content tree. The tree itself is
// owned by the host and outlives the editor; the editor only mutates its
// children. A single mutex serializes the key handlers with the debounced
// highlight/record callbacks, which fire on timer goroutines: the tree and
// the selection host are never touched by two goroutines at once. Event and
// update callbacks run with that mutex held and must not call back into the
// editor.
type Editor struct {
	mu sync.Mutex

	root   *dom.Node
	fn     highlight.Func
	opts   Options
	mapper *caret.Mapper
	store  *history.Store
	events *event.Manager
	notify *notifier

	onUpdate func(string)

	focused   bool
	recording bool
	dirty     bool
	prevText  string
	closed    bool
}

// New creates an editor over root. fn may be nil for no highlighting. The
// zero Options value selects all defaults.
func New(root *dom.Node, fn highlight.Func, opts Options) *Editor {
	opts.applyDefaults()
	if fn == nil {
		fn = highlight.Plain()
	}
	if len(root.Children()) == 0 {
		// Guarantee a selection target even for empty content.
		dom.SetText(root, "")
	}
	e := &Editor{
		root:   root,
		fn:     fn,
		opts:   opts,
		mapper: caret.NewMapper(root, opts.Selection),
		store:  history.NewStore(opts.MaxHistory),
		events: event.NewManager(),
		notify: newNotifier(opts.HighlightDelay, opts.RecordDelay),
	}
	e.fn(e.root)
	return e
}

// Root returns the content tree root.
func (e *Editor) Root() *dom.Node { return e.root }

// Events returns the editor's event bus.
func (e *Editor) Events() *event.Manager { return e.events }

// History returns the undo/redo store.
func (e *Editor) History() *history.Store { return e.store }

// Text returns the current flattened text.
func (e *Editor) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text()
}

func (e *Editor) text() string { return dom.Text(e.root) }

// Render invokes fn with the editor lock held, giving the host a consistent
// view of the content tree and selection for drawing. fn must not call back
// into the editor.
func (e *Editor) Render(fn func(root *dom.Node)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.root)
}

// SetText replaces all content with plain text, drops the selection and
// re-highlights. History is not recorded; use it for programmatic loads.
func (e *Editor) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	dom.SetText(e.root, text)
	e.fn(e.root)
	e.opts.Selection.Clear()
	e.events.Dispatch(event.TypeContentChanged, event.ContentChangedData{Text: text})
	e.events.Dispatch(event.TypeHighlighted, event.HighlightedData{Text: text})
	if e.onUpdate != nil {
		e.onUpdate(text)
	}
}

// UpdateOptions merges the non-zero fields of patch into the current options
// without resetting history. A changed MaxHistory applies to future editors
// only; the live store keeps its cap.
func (e *Editor) UpdateOptions(patch Options) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.merge(patch)
	e.notify.highlightDelay = e.opts.HighlightDelay
	e.notify.recordDelay = e.opts.RecordDelay
	if patch.Selection != nil {
		e.mapper = caret.NewMapper(e.root, e.opts.Selection)
	}
}

// OnUpdate registers the content-changed callback, invoked debounced after
// edit bursts and synchronously after SetText and paste, with the full
// flattened text.
func (e *Editor) OnUpdate(fn func(string)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onUpdate = fn
}

// SetFocused tracks whether the editing surface has focus. History is only
// recorded while focused, so programmatic changes do not pollute it.
func (e *Editor) SetFocused(focused bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.focused == focused {
		return
	}
	e.focused = focused
	e.events.Dispatch(event.TypeFocusChanged, event.FocusChangedData{Focused: focused})
}

// Focused reports the focus state.
func (e *Editor) Focused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.focused
}

// Undo reinstates the previous history record, if any.
func (e *Editor) Undo() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.undo()
}

// Redo reinstates the next history record, if any.
func (e *Editor) Redo() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.redo()
}

func (e *Editor) undo() {
	rec, ok := e.store.Undo()
	if !ok {
		return
	}
	e.applyRecord(rec)
}

func (e *Editor) redo() {
	rec, ok := e.store.Redo()
	if !ok {
		return
	}
	e.applyRecord(rec)
}

// applyRecord replaces the live content with a snapshot and restores the
// recorded position.
func (e *Editor) applyRecord(rec history.Record) {
	if err := dom.SetHTML(e.root, rec.Snapshot); err != nil {
		logger.Errorf("editor: corrupt history snapshot: %v", err)
		return
	}
	if len(e.root.Children()) == 0 {
		// An empty snapshot must still leave a selection target.
		dom.SetText(e.root, "")
	}
	if err := e.mapper.Restore(rec.Position); err != nil {
		logger.Debugf("editor: history position not restorable: %v", err)
	}
	e.events.Dispatch(event.TypeContentChanged, event.ContentChangedData{Text: e.text()})
}

// HandlePaste reads the clipboard host's plain-text payload and pastes it at
// the cursor. Returns false when no clipboard or payload is available.
func (e *Editor) HandlePaste() bool {
	e.mu.Lock()
	clip := e.opts.Clipboard
	closed := e.closed
	e.mu.Unlock()
	if closed || clip == nil {
		return false
	}
	text, ok := clip.ReadText()
	if !ok {
		return false
	}
	return e.PasteText(text)
}

// PasteText inserts a plain-text payload at the cursor, replacing any active
// selection. Line endings are normalized, rich-text artifacts are collapsed
// back into flat text, the highlighter re-runs and the cursor lands right
// after the inserted text. History is snapshotted before and after.
func (e *Editor) PasteText(text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	pos, err := e.mapper.Save()
	if err != nil {
		logger.Debugf("editor: paste with no selection: %v", err)
		return false
	}
	e.recordSnapshot()

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	start, end := pos.Normalized()
	if end > start {
		if err := dom.DeleteRange(e.root, start, end); err != nil {
			logger.Warnf("editor: paste delete failed: %v", err)
			return false
		}
	}
	if err := dom.InsertAt(e.root, start, text); err != nil {
		logger.Warnf("editor: paste insert failed: %v", err)
		return false
	}

	flat := dom.Flatten(e.root)
	e.fn(e.root)
	e.restoreAt(start + len(text))

	e.events.Dispatch(event.TypeContentChanged, event.ContentChangedData{Text: flat})
	e.events.Dispatch(event.TypeHighlighted, event.HighlightedData{Text: flat})
	e.recordSnapshot()
	if e.onUpdate != nil {
		e.onUpdate(flat)
	}
	return true
}

// Flush runs any pending debounced highlight/record passes immediately.
func (e *Editor) Flush() {
	e.notify.flush()
}

// Close tears the editor down: pending debounce timers are cancelled and the
// update callback is detached. The content tree is left as-is for the host.
func (e *Editor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.notify.cancel()
	e.onUpdate = nil
}

// recordSnapshot pushes the current serialized content and cursor position
// onto the history. No-op while unfocused; duplicate states are skipped by
// the store.
func (e *Editor) recordSnapshot() {
	if !e.focused {
		return
	}
	pos, err := e.mapper.Save()
	if err != nil {
		pos = caret.Position{}
	}
	rec := history.Record{Snapshot: dom.Serialize(e.root), Position: pos}
	if e.store.Push(rec) {
		e.events.Dispatch(event.TypeHistoryRecorded, event.HistoryRecordedData{
			Index: e.store.At(),
			Count: e.store.Len(),
		})
	}
}

// restoreAt collapses the selection to a single flat offset.
func (e *Editor) restoreAt(offset int) {
	e.restore(caret.Position{Start: offset, End: offset, Dir: caret.DirForward})
}

func (e *Editor) restore(pos caret.Position) {
	if err := e.mapper.Restore(pos); err != nil {
		logger.Debugf("editor: restore failed: %v", err)
	}
}
