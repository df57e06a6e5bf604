// Package gutter implements the peripheral line-number overlay. It holds no
// cursor or history state: it just recomputes the rendered line count from
// the flattened text whenever a highlight pass completes.
package gutter

import (
	"fmt"
	"strings"
)

// Overlay tracks the rendered line count for the current text.
type Overlay struct {
	lines int
}

// New creates an overlay for empty content.
func New() *Overlay {
	return &Overlay{lines: 1}
}

// Update recomputes the line count from the flattened text and returns it.
func (o *Overlay) Update(text string) int {
	o.lines = strings.Count(text, "\n") + 1
	return o.lines
}

// Lines returns the last computed line count.
func (o *Overlay) Lines() int {
	return o.lines
}

// Width returns the number of columns needed for the widest label, with a
// floor of two digits so the gutter does not jitter on small files.
func (o *Overlay) Width() int {
	w := len(fmt.Sprintf("%d", o.lines))
	if w < 2 {
		w = 2
	}
	return w
}

// Label formats the 0-based line index as a right-aligned gutter label.
func (o *Overlay) Label(i int) string {
	return fmt.Sprintf("%*d", o.Width(), i+1)
}
