package treeutil

import (
	"testing"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/parser"
	"github.com/adl-lang/adl/internal/source"
)

func TestGetNodeAtPositionFindsInnermost(t *testing.T) {
	src := `model Widget { name: string; }`
	result := parser.Parse("w.adl", src)
	LinkParents(result.Script)

	// position inside the "name" identifier
	pos := source.Pos(15)
	found := GetNodeAtPosition(result.Script, pos, nil)
	if found == nil {
		t.Fatalf("expected a node at position %d", pos)
	}
	if found.Range.Len() == 0 {
		t.Fatalf("expected a nonzero-span node, got %v", found.Kind)
	}
}

func TestHasParseErrorMemoizes(t *testing.T) {
	src := `model Widget {` // unterminated
	result := parser.Parse("bad.adl", src)
	if !HasParseError(result.Script) {
		t.Fatalf("expected parse error to be detected")
	}
	if !result.Script.Flags.Has(cst.DescendantErrorsExamined) {
		t.Fatalf("expected the examined bit to be memoized after the first query")
	}
	if !HasParseError(result.Script) {
		t.Fatalf("expected memoized parse error to still be detected")
	}
}

func TestHasParseErrorCleanTree(t *testing.T) {
	src := `model Widget { name: string; }`
	result := parser.Parse("clean.adl", src)
	if HasParseError(result.Script) {
		t.Fatalf("expected no parse error for clean input")
	}
}

func TestLinkParentsAndIdentifierContext(t *testing.T) {
	src := `model Widget { name: string; }`
	result := parser.Parse("ctx.adl", src)
	LinkParents(result.Script)

	model := result.Script.Children[0]
	modelName := model.Children[0]
	if GetIdentifierContext(modelName) != IdentifierContextDeclaration {
		t.Fatalf("expected model name to be a Declaration context, got %v", GetIdentifierContext(modelName))
	}
}

func TestVisitChildrenStopsEarly(t *testing.T) {
	src := `model A { } model B { } model C { }`
	result := parser.Parse("v.adl", src)
	count := 0
	VisitChildren(result.Script, func(n *cst.Node) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Fatalf("expected early stop after 2 children, got %d", count)
	}
}
