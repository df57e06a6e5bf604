// Package dom models the editable content tree the editor mutates: text
// nodes carry characters, element nodes group children and carry decoration.
// The pre-order concatenation of every text node defines the flattened text
// that all flat offsets refer to.
package dom

import (
	"fmt"
	"strings"
)

// Kind discriminates node types.
type Kind int

const (
	KindText Kind = iota
	KindElement
)

// Node is a single node of the content tree. A text node holds a string and
// has no children; an element node holds ordered children, a tag and an
// optional class used by highlighters for decoration.
type Node struct {
	kind     Kind
	text     string
	tag      string
	class    string
	parent   *Node
	children []*Node
}

// NewText creates a text node.
func NewText(s string) *Node {
	return &Node{kind: KindText, text: s}
}

// NewElement creates an empty element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{kind: KindElement, tag: tag}
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool { return n.kind == KindText }

// TextContent returns a text node's characters ("" for elements).
func (n *Node) TextContent() string { return n.text }

// SetTextContent replaces a text node's characters. No-op on elements.
func (n *Node) SetTextContent(s string) {
	if n.kind == KindText {
		n.text = s
	}
}

// Tag returns the element tag ("" for text nodes).
func (n *Node) Tag() string { return n.tag }

// Class returns the decoration class.
func (n *Node) Class() string { return n.class }

// SetClass sets the decoration class.
func (n *Node) SetClass(c string) { n.class = c }

// Parent returns the parent node, nil for a detached root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the ordered child slice. Callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// AppendChild attaches c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

// InsertBefore attaches c immediately before ref. If ref is nil or not a
// child of n, c is appended.
func (n *Node) InsertBefore(c, ref *Node) {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	for i, ch := range n.children {
		if ch == ref {
			c.parent = n
			n.children = append(n.children, nil)
			copy(n.children[i+1:], n.children[i:])
			n.children[i] = c
			return
		}
	}
	n.AppendChild(c)
}

// RemoveChild detaches c from n.
func (n *Node) RemoveChild(c *Node) {
	for i, ch := range n.children {
		if ch == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			c.parent = nil
			return
		}
	}
}

// RemoveAll detaches every child of n.
func (n *Node) RemoveAll() {
	for _, ch := range n.children {
		ch.parent = nil
	}
	n.children = nil
}

// Clone returns a deep copy of n, detached from any parent.
func (n *Node) Clone() *Node {
	c := &Node{kind: n.kind, text: n.text, tag: n.tag, class: n.class}
	for _, ch := range n.children {
		c.AppendChild(ch.Clone())
	}
	return c
}

// WalkStatus controls a pre-order walk.
type WalkStatus int

const (
	// Continue visits the next node in pre-order.
	Continue WalkStatus = iota
	// Stop terminates the walk immediately.
	Stop
)

// Walk visits every descendant of root in pre-order (a node's subtree before
// its next sibling). The root itself is not visited. The walk terminates as
// soon as fn returns Stop.
func Walk(root *Node, fn func(*Node) WalkStatus) {
	walk(root, fn)
}

func walk(n *Node, fn func(*Node) WalkStatus) WalkStatus {
	for _, ch := range n.children {
		if fn(ch) == Stop {
			return Stop
		}
		if walk(ch, fn) == Stop {
			return Stop
		}
	}
	return Continue
}

// Text returns the flattened text of root: every text node's characters
// concatenated in pre-order.
func Text(root *Node) string {
	var b strings.Builder
	Walk(root, func(n *Node) WalkStatus {
		if n.IsText() {
			b.WriteString(n.text)
		}
		return Continue
	})
	return b.String()
}

// ErrOffsetOutOfRange is returned when a flat offset exceeds the flattened
// text length.
var ErrOffsetOutOfRange = fmt.Errorf("dom: offset out of range")

// InsertAt splices s into the flattened text at the given byte offset. The
// receiving text node is the first one whose span covers the offset; an
// offset at a node boundary goes to the end of the earlier node. Inserting
// into an empty tree appends a fresh text node.
func InsertAt(root *Node, offset int, s string) error {
	if offset < 0 {
		return ErrOffsetOutOfRange
	}
	if s == "" {
		return nil
	}
	current := 0
	done := false
	Walk(root, func(n *Node) WalkStatus {
		if !n.IsText() {
			return Continue
		}
		l := len(n.text)
		if current+l >= offset {
			at := offset - current
			n.text = n.text[:at] + s + n.text[at:]
			done = true
			return Stop
		}
		current += l
		return Continue
	})
	if done {
		return nil
	}
	if current == offset {
		// Offset sits exactly at the end of the text (or the tree is empty).
		root.AppendChild(NewText(s))
		return nil
	}
	return ErrOffsetOutOfRange
}

// DeleteRange removes the flattened text between start and end (byte
// offsets, end exclusive). Text nodes emptied by the deletion are detached.
func DeleteRange(root *Node, start, end int) error {
	if start < 0 || end < start {
		return ErrOffsetOutOfRange
	}
	if start == end {
		return nil
	}
	current := 0
	remaining := end - start
	var emptied []*Node
	Walk(root, func(n *Node) WalkStatus {
		if !n.IsText() {
			return Continue
		}
		l := len(n.text)
		if current+l > start && remaining > 0 {
			from := 0
			if start > current {
				from = start - current
			}
			to := from + remaining
			if to > l {
				to = l
			}
			remaining -= to - from
			n.text = n.text[:from] + n.text[to:]
			if n.text == "" {
				emptied = append(emptied, n)
			}
			if remaining == 0 {
				current += l
				return Stop
			}
		}
		current += l
		return Continue
	})
	for _, n := range emptied {
		if p := n.parent; p != nil {
			p.RemoveChild(n)
		}
	}
	if remaining > 0 {
		return ErrOffsetOutOfRange
	}
	return nil
}

// SetText replaces root's children with a single text node holding s. An
// empty text node is kept so the tree always has a selection target.
func SetText(root *Node, s string) {
	root.RemoveAll()
	root.AppendChild(NewText(s))
}

// blockTags are the structural line wrappers rich editing tends to produce.
var blockTags = map[string]bool{"div": true, "p": true}

// Flatten collapses rich-text artifacts back into one flat text content:
// structural line wrappers contribute a line break before their text, forced
// line breaks (<br>) are dropped. The tree is rewritten as a single text
// node and the resulting text returned.
func Flatten(root *Node) string {
	var b strings.Builder
	flattenInto(&b, root)
	s := b.String()
	SetText(root, s)
	return s
}

func flattenInto(b *strings.Builder, n *Node) {
	for _, ch := range n.children {
		switch {
		case ch.IsText():
			b.WriteString(ch.text)
		case ch.tag == "br":
			// Dropped; the wrapper rule below supplies the breaks.
		case blockTags[ch.tag]:
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
				b.WriteByte('\n')
			}
			flattenInto(b, ch)
		default:
			flattenInto(b, ch)
		}
	}
}
