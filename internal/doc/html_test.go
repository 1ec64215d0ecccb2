package doc

import (
	"strings"
	"testing"

	"github.com/adl-lang/adl/internal/scanner"
	"github.com/adl-lang/adl/internal/source"
)

func TestRenderHTMLRendersTextAndTags(t *testing.T) {
	text := "/**\n * Frobnicates the `widget`.\n * @param name the thing to frobnicate\n */"
	file := source.NewFile("t.adl", text)
	s := scanner.New(file)
	node := Parse(s, source.Range{Start: 0, End: source.Pos(len(text))})

	html, err := RenderHTML(node)
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(html, "<code>widget</code>") {
		t.Fatalf("expected markdown code span rendered, got %q", html)
	}
	if !strings.Contains(html, "@param") || !strings.Contains(html, "name") {
		t.Fatalf("expected a param tag entry, got %q", html)
	}
}
