package dom

import "testing"

func TestSerialize(t *testing.T) {
	root := NewElement("pre")
	root.AppendChild(NewText("a < b"))
	span := NewElement("span")
	span.SetClass("keyword")
	span.AppendChild(NewText("if"))
	root.AppendChild(span)
	root.AppendChild(NewElement("br"))

	want := `a &lt; b<span class="keyword">if</span><br>`
	if got := Serialize(root); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain text",
		"a &amp; b &lt;tag&gt;",
		`<span class="string">"hi"</span> rest`,
		`line1<br>line2`,
		`<div><span class="comment">// x</span></div>`,
	}
	for _, src := range tests {
		root := NewElement("pre")
		if err := SetHTML(root, src); err != nil {
			t.Errorf("SetHTML(%q) error: %v", src, err)
			continue
		}
		if got := Serialize(root); got != src {
			t.Errorf("round trip of %q = %q", src, got)
		}
	}
}

func TestParseFragmentErrors(t *testing.T) {
	tests := []string{
		"<span>unclosed",
		"<span>mismatch</div>",
		"stray</span>",
		"<span",
		"<>empty</>",
	}
	for _, src := range tests {
		if _, err := ParseFragment(src); err == nil {
			t.Errorf("ParseFragment(%q) = nil error, want error", src)
		}
	}
}

func TestSetHTMLKeepsTreeOnError(t *testing.T) {
	root := NewElement("pre")
	SetText(root, "original")
	if err := SetHTML(root, "<span>bad"); err == nil {
		t.Fatal("expected parse error")
	}
	if got := Text(root); got != "original" {
		t.Errorf("tree changed on error: Text() = %q", got)
	}
}
