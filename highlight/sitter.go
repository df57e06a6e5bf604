package highlight

import (
	"context"
	_ "embed"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	gosrc "github.com/smacker/go-tree-sitter/golang"

	"github.com/etchlab/etch/dom"
	"github.com/etchlab/etch/internal/logger"
)

//go:embed queries/go/highlights.scm
var goHighlightsQuery []byte

// Sitter decorates the content tree using a tree-sitter grammar. It parses
// the flattened text on every pass; incremental parsing is not needed at the
// sizes an in-page editor handles.
type Sitter struct {
	parser *sitter.Parser
	lang   *sitter.Language
	query  *sitter.Query
}

// NewGo creates a Sitter for Go source using the embedded highlight query.
func NewGo() (*Sitter, error) {
	lang := gosrc.GetLanguage()
	query, err := sitter.NewQuery(goHighlightsQuery, lang)
	if err != nil {
		return nil, fmt.Errorf("highlight: query parse failed: %w", err)
	}
	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	return &Sitter{parser: parser, lang: lang, query: query}, nil
}

// Highlight is the highlight.Func for this grammar. On parse failure the
// tree is left undecorated but the text is untouched.
func (s *Sitter) Highlight(root *dom.Node) {
	text := dom.Text(root)
	tree, err := s.parser.ParseCtx(context.Background(), nil, []byte(text))
	if err != nil {
		logger.Warnf("highlight: parse failed: %v", err)
		return
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	qc.Exec(s.query, tree.RootNode())

	var spans []Span
	for {
		match, exists := qc.NextMatch()
		if !exists {
			break
		}
		for _, capture := range match.Captures {
			name := s.query.CaptureNameForId(capture.Index)
			node := capture.Node
			spans = append(spans, Span{
				Start: int(node.StartByte()),
				End:   int(node.EndByte()),
				Class: name,
			})
		}
	}
	Apply(root, text, spans)
}
