package highlight

import (
	"testing"

	"github.com/etchlab/etch/dom"
)

func TestApply(t *testing.T) {
	text := "func main()"
	root := dom.NewElement("pre")
	Apply(root, text, []Span{
		{Start: 0, End: 4, Class: "keyword"},
		{Start: 5, End: 9, Class: "function"},
	})

	if got := dom.Text(root); got != text {
		t.Fatalf("flattened text = %q, want %q", got, text)
	}
	want := `<span class="keyword">func</span> <span class="function">main</span>()`
	if got := dom.Serialize(root); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestApplyPreservesTextAcrossEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		spans []Span
	}{
		{"no spans", "plain", nil},
		{"empty text", "", []Span{{Start: 0, End: 3, Class: "keyword"}}},
		{"out of range clamps", "ab", []Span{{Start: -2, End: 99, Class: "keyword"}}},
		{"overlap keeps earlier", "abcdef", []Span{
			{Start: 0, End: 4, Class: "keyword"},
			{Start: 2, End: 6, Class: "string"},
		}},
		{"unsorted input", "abcdef", []Span{
			{Start: 4, End: 6, Class: "number"},
			{Start: 0, End: 2, Class: "keyword"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := dom.NewElement("pre")
			Apply(root, tt.text, tt.spans)
			if got := dom.Text(root); got != tt.text {
				t.Errorf("flattened text = %q, want %q", got, tt.text)
			}
			if len(root.Children()) == 0 {
				t.Error("Apply left no selection target")
			}
		})
	}
}

func TestApplyOverlapKeepsEarlierSpan(t *testing.T) {
	root := dom.NewElement("pre")
	Apply(root, "abcdef", []Span{
		{Start: 0, End: 4, Class: "keyword"},
		{Start: 2, End: 6, Class: "string"},
	})
	want := `<span class="keyword">abcd</span>ef`
	if got := dom.Serialize(root); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestApplyIsRepeatable(t *testing.T) {
	text := "x := 1"
	root := dom.NewElement("pre")
	spans := []Span{{Start: 5, End: 6, Class: "number"}}
	Apply(root, text, spans)
	Apply(root, dom.Text(root), spans)
	if got := dom.Text(root); got != text {
		t.Errorf("flattened text after second pass = %q, want %q", got, text)
	}
}
