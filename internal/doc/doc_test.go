package doc

import (
	"testing"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/scanner"
	"github.com/adl-lang/adl/internal/source"
)

func TestParseSimpleDocText(t *testing.T) {
	text := "/** does a thing */"
	file := source.NewFile("t.adl", text)
	s := scanner.New(file)
	doc := Parse(s, source.Range{Start: 0, End: source.Pos(len(text))})

	if doc.Kind != cst.KindDoc {
		t.Fatalf("kind = %v, want Doc", doc.Kind)
	}
	textNode := doc.FirstChildOfKind(cst.KindDocText)
	if textNode == nil {
		t.Fatalf("expected a DocText child")
	}
	if got := textNode.TokenLiteral(); got != "does a thing" {
		t.Errorf("text = %q, want %q", got, "does a thing")
	}
}

func TestParseParamAndReturnsTags(t *testing.T) {
	text := "/**\n * Frobnicates.\n * @param name the thing to frobnicate\n * @returns whether it worked\n */"
	file := source.NewFile("t.adl", text)
	s := scanner.New(file)
	doc := Parse(s, source.Range{Start: 0, End: source.Pos(len(text))})

	params := doc.ChildrenOfKind(cst.KindDocParamTag)
	if len(params) != 1 {
		t.Fatalf("len(params) = %d, want 1", len(params))
	}
	id := params[0].FirstChildOfKind(cst.KindIdentifier)
	if id == nil || id.TokenLiteral() != "name" {
		t.Errorf("param identifier = %+v, want %q", id, "name")
	}

	returns := doc.ChildrenOfKind(cst.KindDocReturnsTag)
	if len(returns) != 1 {
		t.Fatalf("len(returns) = %d, want 1", len(returns))
	}
}

func TestParseUnknownTag(t *testing.T) {
	text := "/** @deprecated use something else */"
	file := source.NewFile("t.adl", text)
	s := scanner.New(file)
	doc := Parse(s, source.Range{Start: 0, End: source.Pos(len(text))})

	if got := len(doc.ChildrenOfKind(cst.KindDocUnknownTag)); got != 1 {
		t.Errorf("unknown tag count = %d, want 1", got)
	}
}

func TestParseUnterminatedDocCommentUsesRangeEnd(t *testing.T) {
	text := "/** unterminated"
	file := source.NewFile("t.adl", text)
	s := scanner.New(file)
	r := source.Range{Start: 0, End: source.Pos(len(text))}
	doc := Parse(s, r)
	if doc.Range.End != r.End {
		t.Errorf("doc.Range.End = %d, want %d (range end, not end-2)", doc.Range.End, r.End)
	}
}
