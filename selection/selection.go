// Package selection expresses the platform selection as a non-owning
// reference into the content tree: (anchor node, offset) and (focus node,
// offset) pairs. The Host interface isolates how the platform stores the
// selection so the mapping logic can run against an in-memory fake.
package selection

import "github.com/etchlab/etch/dom"

// Selection references two points inside the content tree. Offsets are byte
// offsets within the node's own text for text nodes. The anchor is where the
// user started selecting; the focus is where the selection currently ends.
type Selection struct {
	AnchorNode   *dom.Node
	AnchorOffset int
	FocusNode    *dom.Node
	FocusOffset  int
}

// Collapsed reports whether the selection is a bare cursor.
func (s Selection) Collapsed() bool {
	return s.AnchorNode == s.FocusNode && s.AnchorOffset == s.FocusOffset
}

// Host is the platform capability for reading and writing the structural
// selection. Get reports false when no selection is active.
type Host interface {
	Get() (Selection, bool)
	Set(Selection)
	Clear()
}

// MemoryHost is an in-memory Host used by tests and the demo TUI.
type MemoryHost struct {
	sel    Selection
	active bool
}

// NewMemoryHost creates a host with no active selection.
func NewMemoryHost() *MemoryHost {
	return &MemoryHost{}
}

// Get returns the current selection, false if none is set.
func (h *MemoryHost) Get() (Selection, bool) {
	return h.sel, h.active
}

// Set replaces the current selection.
func (h *MemoryHost) Set(sel Selection) {
	h.sel = sel
	h.active = true
}

// Clear drops the active selection.
func (h *MemoryHost) Clear() {
	h.sel = Selection{}
	h.active = false
}
