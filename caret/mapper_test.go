package caret

import (
	"errors"
	"testing"

	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/selection"
)

// testTree builds: pre[ "func " span["main"] "() {" div["\tbody"] "\n}" ]
// Flattened: "func main() {\tbody\n}". Offsets of the text nodes:
// "func "=0..5, "main"=5..9, "() {"=9..13, "\tbody"=13..18, "\n}"=18..20.
func testTree() (*dom.Node, []*dom.Node) {
	root := dom.NewElement("pre")
	t0 := dom.NewText("func ")
	root.AppendChild(t0)
	span := dom.NewElement("span")
	t1 := dom.NewText("main")
	span.AppendChild(t1)
	root.AppendChild(span)
	t2 := dom.NewText("() {")
	root.AppendChild(t2)
	div := dom.NewElement("div")
	t3 := dom.NewText("\tbody")
	div.AppendChild(t3)
	root.AppendChild(div)
	t4 := dom.NewText("\n}")
	root.AppendChild(t4)
	return root, []*dom.Node{t0, t1, t2, t3, t4}
}

func TestSave(t *testing.T) {
	root, texts := testTree()
	tests := []struct {
		name string
		sel  selection.Selection
		want Position
	}{
		{
			"collapsed in first node",
			selection.Selection{AnchorNode: texts[0], AnchorOffset: 2, FocusNode: texts[0], FocusOffset: 2},
			Position{Start: 2, End: 2, Dir: DirForward},
		},
		{
			"forward across nodes",
			selection.Selection{AnchorNode: texts[1], AnchorOffset: 1, FocusNode: texts[3], FocusOffset: 2},
			Position{Start: 6, End: 15, Dir: DirForward},
		},
		{
			"backward across nodes",
			selection.Selection{AnchorNode: texts[3], AnchorOffset: 2, FocusNode: texts[1], FocusOffset: 1},
			Position{Start: 15, End: 6, Dir: DirBackward},
		},
		{
			"backward within one node",
			selection.Selection{AnchorNode: texts[1], AnchorOffset: 3, FocusNode: texts[1], FocusOffset: 1},
			Position{Start: 8, End: 6, Dir: DirBackward},
		},
		{
			"anchor in nested node",
			selection.Selection{AnchorNode: texts[3], AnchorOffset: 0, FocusNode: texts[4], FocusOffset: 2},
			Position{Start: 13, End: 20, Dir: DirForward},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := selection.NewMemoryHost()
			host.Set(tt.sel)
			m := NewMapper(root, host)
			got, err := m.Save()
			if err != nil {
				t.Fatalf("Save() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Save() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSaveNoSelection(t *testing.T) {
	root, _ := testTree()
	m := NewMapper(root, selection.NewMemoryHost())
	if _, err := m.Save(); !errors.Is(err, ErrNoSelection) {
		t.Errorf("Save() error = %v, want ErrNoSelection", err)
	}
}

func TestRestore(t *testing.T) {
	root, texts := testTree()
	tests := []struct {
		name       string
		pos        Position
		wantAnchor *dom.Node
		wantAnOff  int
		wantFocus  *dom.Node
		wantFoOff  int
	}{
		{
			"collapsed cursor",
			Position{Start: 7, End: 7},
			texts[1], 2, texts[1], 2,
		},
		{
			"node boundary goes to earlier node",
			Position{Start: 5, End: 5},
			texts[0], 5, texts[0], 5,
		},
		{
			"forward range",
			Position{Start: 6, End: 15, Dir: DirForward},
			texts[1], 1, texts[3], 2,
		},
		{
			"backward range swaps endpoints",
			Position{Start: 15, End: 6, Dir: DirBackward},
			texts[3], 2, texts[1], 1,
		},
		{
			"negative offsets clamp to zero",
			Position{Start: -3, End: -3},
			texts[0], 0, texts[0], 0,
		},
		{
			"end of text",
			Position{Start: 20, End: 20},
			texts[4], 2, texts[4], 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := selection.NewMemoryHost()
			m := NewMapper(root, host)
			if err := m.Restore(tt.pos); err != nil {
				t.Fatalf("Restore(%+v) error: %v", tt.pos, err)
			}
			sel, ok := host.Get()
			if !ok {
				t.Fatal("no selection placed")
			}
			if sel.AnchorNode != tt.wantAnchor || sel.AnchorOffset != tt.wantAnOff {
				t.Errorf("anchor = (%p, %d), want (%p, %d)",
					sel.AnchorNode, sel.AnchorOffset, tt.wantAnchor, tt.wantAnOff)
			}
			if sel.FocusNode != tt.wantFocus || sel.FocusOffset != tt.wantFoOff {
				t.Errorf("focus = (%p, %d), want (%p, %d)",
					sel.FocusNode, sel.FocusOffset, tt.wantFocus, tt.wantFoOff)
			}
		})
	}
}

func TestRestoreOutOfRange(t *testing.T) {
	root, _ := testTree()
	host := selection.NewMemoryHost()
	m := NewMapper(root, host)
	if err := m.Restore(Position{Start: 100, End: 100}); !errors.Is(err, ErrPositionOutOfRange) {
		t.Fatalf("Restore() error = %v, want ErrPositionOutOfRange", err)
	}
	if _, ok := host.Get(); ok {
		t.Error("selection placed despite out-of-range position")
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	root, _ := testTree()
	host := selection.NewMemoryHost()
	m := NewMapper(root, host)
	positions := []Position{
		{Start: 0, End: 0, Dir: DirForward},
		{Start: 3, End: 3, Dir: DirForward},
		{Start: 5, End: 9, Dir: DirForward},
		{Start: 9, End: 5, Dir: DirBackward},
		{Start: 13, End: 20, Dir: DirForward},
		{Start: 20, End: 20, Dir: DirForward},
	}
	for _, pos := range positions {
		if err := m.Restore(pos); err != nil {
			t.Fatalf("Restore(%+v) error: %v", pos, err)
		}
		got, err := m.Save()
		if err != nil {
			t.Fatalf("Save() after Restore(%+v) error: %v", pos, err)
		}
		if got != pos {
			t.Errorf("round trip of %+v = %+v", pos, got)
		}
	}
}

func TestNormalized(t *testing.T) {
	start, end := (Position{Start: 9, End: 5, Dir: DirBackward}).Normalized()
	if start != 5 || end != 9 {
		t.Errorf("Normalized() = (%d, %d), want (5, 9)", start, end)
	}
	start, end = (Position{Start: 5, End: 9, Dir: DirForward}).Normalized()
	if start != 5 || end != 9 {
		t.Errorf("Normalized() = (%d, %d), want (5, 9)", start, end)
	}
}
