// Package caret maps between the platform's tree-anchored selection and a
// pair of flat byte offsets into the flattened text. Both directions rely on
// the same pre-order traversal that defines the flattening, so the running
// counters are always "bytes fully consumed before this node".
package caret

import (
	"errors"

	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/selection"
)

// Direction records which end of the selection is the anchor.
type Direction int

const (
	// DirNone means the direction is unset; consumers treat it as forward.
	DirNone Direction = iota
	// DirForward means the anchor precedes the focus.
	DirForward
	// DirBackward means the focus precedes the anchor (backward drag).
	DirBackward
)

// String renders the direction in arrow notation.
func (d Direction) String() string {
	switch d {
	case DirForward:
		return "->"
	case DirBackward:
		return "<-"
	}
	return ""
}

// Position is a selection expressed as flat byte offsets. Start belongs to
// the anchor and End to the focus; Start <= End is not guaranteed, Dir alone
// encodes handedness.
type Position struct {
	Start int
	End   int
	Dir   Direction
}

// Normalized returns the range with start <= end regardless of direction.
func (p Position) Normalized() (start, end int) {
	if p.Dir == DirBackward {
		return p.End, p.Start
	}
	return p.Start, p.End
}

var (
	// ErrNoSelection is returned by Save when the host has no active selection.
	ErrNoSelection = errors.New("caret: no active selection")
	// ErrPositionOutOfRange is returned by Restore when the requested offsets
	// exceed the flattened text; the selection is left untouched.
	ErrPositionOutOfRange = errors.New("caret: position exceeds flattened text")
)

// Mapper converts between the host selection and flat positions for one
// content tree.
type Mapper struct {
	root *dom.Node
	host selection.Host
}

// NewMapper creates a mapper over root using host for selection access.
func NewMapper(root *dom.Node, host selection.Host) *Mapper {
	return &Mapper{root: root, host: host}
}

// Save reads the host selection and converts it into a flat Position by
// walking the tree in pre-order, accumulating the length of every text node
// visited before each endpoint is located. Traversal stops as soon as both
// endpoints are resolved.
func (m *Mapper) Save() (Position, error) {
	sel, ok := m.host.Get()
	if !ok || sel.AnchorNode == nil || sel.FocusNode == nil {
		return Position{}, ErrNoSelection
	}

	var pos Position
	dom.Walk(m.root, func(n *dom.Node) dom.WalkStatus {
		if n == sel.AnchorNode && n == sel.FocusNode {
			pos.Start += sel.AnchorOffset
			pos.End += sel.FocusOffset
			if sel.AnchorOffset <= sel.FocusOffset {
				pos.Dir = DirForward
			} else {
				pos.Dir = DirBackward
			}
			return dom.Stop
		}

		if n == sel.AnchorNode {
			pos.Start += sel.AnchorOffset
			if pos.Dir == DirNone {
				pos.Dir = DirForward
			} else {
				return dom.Stop // focus was found earlier; order resolved
			}
		} else if n == sel.FocusNode {
			pos.End += sel.FocusOffset
			if pos.Dir == DirNone {
				pos.Dir = DirBackward
			} else {
				return dom.Stop
			}
		}

		// Advance whichever endpoint has not been located yet (both if
		// neither has).
		if n.IsText() {
			l := len(n.TextContent())
			if pos.Dir != DirForward {
				pos.Start += l
			}
			if pos.Dir != DirBackward {
				pos.End += l
			}
		}
		return dom.Continue
	})
	return pos, nil
}

// Restore converts a flat Position back into a host selection. A missing
// direction defaults to forward and negative offsets clamp to zero. If the
// offsets exceed the flattened text length no selection is placed and
// ErrPositionOutOfRange is returned.
func (m *Mapper) Restore(pos Position) error {
	start, end := pos.Start, pos.End
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = 0
	}
	// Traverse with start first; the original direction only decides which
	// end becomes the anchor at the very end.
	if pos.Dir == DirBackward {
		start, end = end, start
	}

	var startNode, endNode *dom.Node
	var startOffset, endOffset int
	current := 0
	dom.Walk(m.root, func(n *dom.Node) dom.WalkStatus {
		if !n.IsText() {
			return dom.Continue
		}
		l := len(n.TextContent())
		if current+l >= start {
			if startNode == nil {
				startNode = n
				startOffset = start - current
			}
			if current+l >= end {
				endNode = n
				endOffset = end - current
				return dom.Stop
			}
		}
		current += l
		return dom.Continue
	})
	if startNode == nil || endNode == nil {
		return ErrPositionOutOfRange
	}

	if pos.Dir == DirBackward {
		startNode, endNode = endNode, startNode
		startOffset, endOffset = endOffset, startOffset
	}
	m.host.Set(selection.Selection{
		AnchorNode:   startNode,
		AnchorOffset: startOffset,
		FocusNode:    endNode,
		FocusOffset:  endOffset,
	})
	return nil
}
