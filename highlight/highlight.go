// Package highlight defines the contract for the caller-supplied token
// coloring routine and ships a tree-sitter backed implementation for Go.
//
// A highlight function is given full ownership of re-rendering the root's
// structural decoration. It must not change the flattened text content, only
// its structure, or cursor restoration after highlighting will be
// approximate.
package highlight

import (
	"sort"

	"github.com/etchlab/etch/dom"
)

// Func decorates the content tree in place.
type Func func(root *dom.Node)

// Plain returns a highlight function that applies no decoration at all.
func Plain() Func {
	return func(root *dom.Node) {}
}

// Span is one class-tagged byte range of the flattened text.
type Span struct {
	Start int
	End   int
	Class string
}

// Apply rebuilds root's children from the flattened text and a set of spans:
// uncovered stretches become bare text nodes, covered stretches become
// class-tagged elements wrapping a text node. Overlapping spans keep the
// earlier one; out-of-range spans are clamped. The flattened text is
// preserved exactly.
func Apply(root *dom.Node, text string, spans []Span) {
	sorted := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Start < 0 {
			s.Start = 0
		}
		if s.End > len(text) {
			s.End = len(text)
		}
		if s.End > s.Start {
			sorted = append(sorted, s)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	root.RemoveAll()
	cur := 0
	for _, s := range sorted {
		if s.Start < cur {
			continue // overlaps the previous span
		}
		if s.Start > cur {
			root.AppendChild(dom.NewText(text[cur:s.Start]))
		}
		el := dom.NewElement("span")
		el.SetClass(s.Class)
		el.AppendChild(dom.NewText(text[s.Start:s.End]))
		root.AppendChild(el)
		cur = s.End
	}
	if cur < len(text) || len(root.Children()) == 0 {
		root.AppendChild(dom.NewText(text[cur:]))
	}
}
