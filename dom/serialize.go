package dom

import (
	"fmt"
	"strings"
)

// Serialize encodes root's children (not root itself) into a markup string.
// Text nodes are entity-escaped; element nodes become <tag> or
// <tag class="..."> pairs, with <br> serialized as a void tag. The format
// round-trips through ParseFragment and is what history snapshots store.
func Serialize(root *Node) string {
	var b strings.Builder
	for _, ch := range root.children {
		serializeNode(&b, ch)
	}
	return b.String()
}

func serializeNode(b *strings.Builder, n *Node) {
	if n.IsText() {
		b.WriteString(escapeText(n.text))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)
	if n.class != "" {
		b.WriteString(` class="`)
		b.WriteString(escapeAttr(n.class))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if n.tag == "br" {
		return
	}
	for _, ch := range n.children {
		serializeNode(b, ch)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	return strings.ReplaceAll(escapeText(s), `"`, "&quot;")
}

func unescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

// ParseFragment decodes a markup string produced by Serialize into a list of
// detached nodes. Unknown entities pass through verbatim; mismatched or
// unterminated tags are an error.
func ParseFragment(s string) ([]*Node, error) {
	p := &parser{src: s}
	nodes, err := p.parseChildren("")
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("dom: unexpected close tag at offset %d", p.pos)
	}
	return nodes, nil
}

// SetHTML replaces root's children with the parsed fragment. On parse error
// the tree is left untouched.
func SetHTML(root *Node, s string) error {
	nodes, err := ParseFragment(s)
	if err != nil {
		return err
	}
	root.RemoveAll()
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return nil
}

type parser struct {
	src string
	pos int
}

// parseChildren consumes nodes until the matching close tag for `open` (or
// end of input when open is "").
func (p *parser) parseChildren(open string) ([]*Node, error) {
	var nodes []*Node
	for p.pos < len(p.src) {
		if strings.HasPrefix(p.src[p.pos:], "</") {
			if open == "" {
				return nodes, nil // caller reports the stray close tag
			}
			end := strings.IndexByte(p.src[p.pos:], '>')
			if end < 0 {
				return nil, fmt.Errorf("dom: unterminated close tag at offset %d", p.pos)
			}
			name := p.src[p.pos+2 : p.pos+end]
			if name != open {
				return nil, fmt.Errorf("dom: close tag %q does not match open tag %q", name, open)
			}
			p.pos += end + 1
			return nodes, nil
		}
		if p.src[p.pos] == '<' {
			n, err := p.parseElement()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			continue
		}
		nodes = append(nodes, NewText(p.parseText()))
	}
	if open != "" {
		return nil, fmt.Errorf("dom: missing close tag for %q", open)
	}
	return nodes, nil
}

func (p *parser) parseText() string {
	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != '<' {
		p.pos++
	}
	return unescape(p.src[start:p.pos])
}

func (p *parser) parseElement() (*Node, error) {
	end := strings.IndexByte(p.src[p.pos:], '>')
	if end < 0 {
		return nil, fmt.Errorf("dom: unterminated tag at offset %d", p.pos)
	}
	inner := p.src[p.pos+1 : p.pos+end]
	p.pos += end + 1

	tag := inner
	class := ""
	if i := strings.IndexByte(inner, ' '); i >= 0 {
		tag = inner[:i]
		attrs := strings.TrimSpace(inner[i+1:])
		const prefix = `class="`
		if strings.HasPrefix(attrs, prefix) {
			if j := strings.IndexByte(attrs[len(prefix):], '"'); j >= 0 {
				class = unescape(attrs[len(prefix) : len(prefix)+j])
			}
		}
	}
	if tag == "" {
		return nil, fmt.Errorf("dom: empty tag name")
	}

	n := NewElement(tag)
	n.SetClass(class)
	if tag == "br" {
		return n, nil
	}
	children, err := p.parseChildren(tag)
	if err != nil {
		return nil, err
	}
	for _, ch := range children {
		n.AppendChild(ch)
	}
	return n, nil
}
