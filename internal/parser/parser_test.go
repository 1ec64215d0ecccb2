package parser

import (
	"testing"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/token"
)

func TestParseScriptBasicModel(t *testing.T) {
	src := `
namespace Widgets;

model Widget {
	id: string;
	name?: string;
	tags: string[];
}
`
	result := Parse("widget.adl", src)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	if !result.Printable {
		t.Fatalf("expected printable tree")
	}
	var kinds []cst.Kind
	for _, c := range result.Script.Children {
		kinds = append(kinds, c.Kind)
	}
	if len(kinds) != 2 || kinds[0] != cst.KindNamespaceStatement || kinds[1] != cst.KindModelStatement {
		t.Fatalf("unexpected top-level kinds: %v", kinds)
	}
}

func TestParseScriptNamespaceChainDecoratorsAttachInnermost(t *testing.T) {
	src := `@doc("x") namespace A.B.C { }`
	result := Parse("ns.adl", src)
	outer := result.Script.Children[0]
	if outer.Kind != cst.KindNamespaceStatement {
		t.Fatalf("expected NamespaceStatement, got %v", outer.Kind)
	}
	if nestedDecoratorCount(outer) != 0 {
		t.Fatalf("decorator should not attach to the outer chain root")
	}
	n := outer
	for {
		nested := firstNamespaceChild(n)
		if nested == nil {
			break
		}
		n = nested
	}
	found := false
	for _, c := range n.Children {
		if c.Kind == cst.KindDecoratorExpression {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected decorator attached to innermost namespace segment")
	}
}

func nestedDecoratorCount(n *cst.Node) int {
	count := 0
	for _, c := range n.Children {
		if c.Kind == cst.KindDecoratorExpression {
			count++
		}
	}
	return count
}

func firstNamespaceChild(n *cst.Node) *cst.Node {
	for _, c := range n.Children {
		if c.Kind == cst.KindNamespaceStatement {
			return c
		}
	}
	return nil
}

func TestParseScriptDetectsBlocklessNamespaceOrdering(t *testing.T) {
	src := `
model A { }
namespace N;
`
	result := Parse("order.adl", src)
	if len(result.Diagnostics) == 0 {
		t.Fatalf("expected blockless-namespace-first diagnostic")
	}
}

func TestParseScriptRecoversFromGarbageToken(t *testing.T) {
	src := `model A { } "garbage" model B { }`
	result := Parse("garbage.adl", src)
	if len(result.Diagnostics) == 0 {
		t.Fatalf("expected diagnostics for garbage token")
	}
	var names []cst.Kind
	for _, c := range result.Script.Children {
		names = append(names, c.Kind)
	}
	found := 0
	for _, k := range names {
		if k == cst.KindModelStatement {
			found++
		}
	}
	if found != 2 {
		t.Fatalf("expected parser to recover and parse both models, got kinds %v", names)
	}
}

func TestParseFunctionParameterOrdering(t *testing.T) {
	src := `fn f(a: string, b?: string, c: string): void;`
	result := Parse("fn.adl", src)
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == "required-parameter-first" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected required-parameter-first diagnostic, got %v", result.Diagnostics)
	}
}

func TestParseDecoratorDeclarationRequiresTarget(t *testing.T) {
	src := `dec noop();`
	result := Parse("dec.adl", src)
	found := false
	for _, d := range result.Diagnostics {
		if d.Code == "decorator-decl-target" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected decorator-decl-target diagnostic, got %v", result.Diagnostics)
	}
}

func TestParseProjectionStatement(t *testing.T) {
	src := `
projection model #rename {
	to(name) {
		return name;
	}
}
`
	result := Parse("proj.adl", src)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
	stmt := result.Script.Children[0]
	if stmt.Kind != cst.KindProjectionStatement {
		t.Fatalf("expected ProjectionStatement, got %v", stmt.Kind)
	}
}

func TestParseProjectionStatementStashesDirectionOnClauseToken(t *testing.T) {
	src := `
projection model #rename {
	to(name) {
		return name;
	}
}
`
	result := Parse("proj.adl", src)
	stmt := result.Script.Children[0]
	clause := stmt.Children[2]
	if clause.Kind != cst.KindProjection {
		t.Fatalf("expected Projection clause, got %v", clause.Kind)
	}
	if clause.Token == nil || clause.Token.Kind != token.ToKeyword {
		t.Fatalf("expected clause token to record the 'to' keyword, got %v", clause.Token)
	}
}

func TestParseInterfaceMembersUseListDelimiterNotSignatureSemicolon(t *testing.T) {
	src := `
interface I {
	op a(): void
	op b(): void
}
`
	result := Parse("iface.adl", src)
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(result.Diagnostics), result.Diagnostics)
	}
	d := result.Diagnostics[0]
	if d.Code != diagnostics.CodeTokenExpected || d.MessageID != "delimiter" {
		t.Fatalf("expected a missing-delimiter diagnostic, got %+v", d)
	}
}

func TestParseInterfaceMembersToleratedCommaReportsTrailingToken(t *testing.T) {
	src := `
interface I {
	op a(): void, op b(): void
}
`
	result := Parse("iface.adl", src)
	if len(result.Diagnostics) != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %v", len(result.Diagnostics), result.Diagnostics)
	}
	if result.Diagnostics[0].Code != diagnostics.CodeTrailingToken {
		t.Fatalf("expected a trailing-token diagnostic for the tolerated comma, got %+v", result.Diagnostics[0])
	}
}

func TestParseOperationStatementStillConsumesOwnSemicolon(t *testing.T) {
	src := `op a(): void;`
	result := Parse("op.adl", src)
	if len(result.Diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
	}
}

func TestParseStandaloneTypeReference(t *testing.T) {
	node, diags := ParseStandaloneTypeReference("Foo.Bar<Baz>")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if node.Kind != cst.KindTypeReference {
		t.Fatalf("expected TypeReference, got %v", node.Kind)
	}
}
