package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/gutter"
)

// classStyles maps highlight decoration classes to terminal styles.
var classStyles = map[string]tcell.Style{
	"keyword":  tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true),
	"string":   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	"number":   tcell.StyleDefault.Foreground(tcell.ColorOrange),
	"comment":  tcell.StyleDefault.Foreground(tcell.ColorGray).Italic(true),
	"function": tcell.StyleDefault.Foreground(tcell.ColorBlue),
	"type":     tcell.StyleDefault.Foreground(tcell.ColorTeal),
	"constant": tcell.StyleDefault.Foreground(tcell.ColorRed),
}

var gutterStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)

// segment is a run of text rendered with one style.
type segment struct {
	text  string
	style tcell.Style
}

// styledSegments flattens the content tree into styled runs, each text node
// taking the nearest enclosing decoration class.
func styledSegments(root *dom.Node) []segment {
	var segs []segment
	var walk func(n *dom.Node, style tcell.Style)
	walk = func(n *dom.Node, style tcell.Style) {
		for _, ch := range n.Children() {
			if ch.IsText() {
				if ch.TextContent() != "" {
					segs = append(segs, segment{text: ch.TextContent(), style: style})
				}
				continue
			}
			childStyle := style
			if s, ok := classStyles[ch.Class()]; ok {
				childStyle = s
			}
			walk(ch, childStyle)
		}
	}
	walk(root, tcell.StyleDefault)
	return segs
}

// DrawEditor renders the gutter and the decorated text, placing the terminal
// cursor at the given 0-based line and byte column.
func DrawEditor(t *TUI, root *dom.Node, overlay *gutter.Overlay, cursorLine, cursorCol int) {
	t.Clear()
	screen := t.GetScreen()
	width, height := t.Size()
	gutterWidth := overlay.Width() + 1

	line, col := 0, gutterWidth
	drawLabel := func(l int) {
		if l >= height {
			return
		}
		for i, r := range overlay.Label(l) {
			screen.SetContent(i, l, r, nil, gutterStyle)
		}
	}
	drawLabel(0)

	for _, seg := range styledSegments(root) {
		rest := seg.text
		for rest != "" {
			nl := strings.IndexByte(rest, '\n')
			chunk := rest
			if nl >= 0 {
				chunk = rest[:nl]
			}
			gr := uniseg.NewGraphemes(chunk)
			for gr.Next() && line < height {
				runes := gr.Runes()
				if col < width {
					var comb []rune
					if len(runes) > 1 {
						comb = runes[1:]
					}
					screen.SetContent(col, line, runes[0], comb, seg.style)
				}
				col += gr.Width()
			}
			if nl < 0 {
				break
			}
			line++
			col = gutterWidth
			drawLabel(line)
			rest = rest[nl+1:]
		}
	}

	if cursorLine < height {
		text := dom.Text(root)
		screen.ShowCursor(gutterWidth+visualColumn(lineAt(text, cursorLine), cursorCol), cursorLine)
	}
	t.Show()
}

// lineAt returns the cursorLine'th line of text.
func lineAt(text string, line int) string {
	parts := strings.Split(text, "\n")
	if line < 0 || line >= len(parts) {
		return ""
	}
	return parts[line]
}

// visualColumn converts a byte column into a display column, stepping
// grapheme clusters so wide and combining characters land correctly.
func visualColumn(line string, byteCol int) int {
	if byteCol > len(line) {
		byteCol = len(line)
	}
	width := 0
	consumed := 0
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		if consumed >= byteCol {
			break
		}
		consumed += len(gr.Str())
		width += gr.Width()
	}
	return width
}
