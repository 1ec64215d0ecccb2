package projection

import (
	"testing"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/scanner"
	"github.com/adl-lang/adl/internal/source"
)

func parseBody(t *testing.T, text string) *cst.Node {
	t.Helper()
	file := source.NewFile("<test>", text)
	s := scanner.New(file)
	sink := diagnostics.NewSink()
	node := Parse(s, source.Range{Start: 0, End: source.Pos(len(text))}, sink)
	if sink.HasErrors() {
		t.Fatalf("unexpected diagnostics parsing %q: %v", text, sink.All())
	}
	return node
}

func TestParseReturnExpression(t *testing.T) {
	block := parseBody(t, `{ return name; }`)
	if block.Kind != cst.KindProjectionBlockExpression {
		t.Fatalf("expected block, got %v", block.Kind)
	}
	if len(block.Children) != 1 {
		t.Fatalf("expected one statement, got %d", len(block.Children))
	}
	stmt := block.Children[0]
	if stmt.Kind != cst.KindProjectionExpressionStatement {
		t.Fatalf("expected expression statement, got %v", stmt.Kind)
	}
	ret := stmt.Children[0]
	if ret.Kind != cst.KindProjectionReturnExpression {
		t.Fatalf("expected return expression, got %v", ret.Kind)
	}
}

func TestParseIfElse(t *testing.T) {
	block := parseBody(t, `{
		if a == b {
			return 1;
		} else if c {
			return 2;
		} else {
			return 3;
		}
	}`)
	stmt := block.Children[0].Children[0]
	if stmt.Kind != cst.KindProjectionIfExpression {
		t.Fatalf("expected if expression, got %v", stmt.Kind)
	}
	if len(stmt.Children) != 3 {
		t.Fatalf("expected condition + then + else-if, got %d children", len(stmt.Children))
	}
}

func TestParseLambdaVsParenthesized(t *testing.T) {
	block := parseBody(t, `{ return (x, y) => x; }`)
	ret := block.Children[0].Children[0]
	lambda := ret.Children[0]
	if lambda.Kind != cst.KindProjectionLambdaExpression {
		t.Fatalf("expected lambda expression, got %v", lambda.Kind)
	}
	if len(lambda.Children) != 3 {
		t.Fatalf("expected 2 params + body, got %d children", len(lambda.Children))
	}

	block2 := parseBody(t, `{ return (x); }`)
	ret2 := block2.Children[0].Children[0]
	if ret2.Children[0].Kind == cst.KindProjectionLambdaExpression {
		t.Fatalf("a single parenthesized identifier must not parse as a lambda")
	}
}

func TestParseCallAndMemberChain(t *testing.T) {
	block := parseBody(t, `{ return a.b.c(1, 2); }`)
	ret := block.Children[0].Children[0]
	call := ret.Children[0]
	if call.Kind != cst.KindProjectionCallExpression {
		t.Fatalf("expected call expression, got %v", call.Kind)
	}
	callee := call.Children[0]
	if callee.Kind != cst.KindProjectionMemberExpression {
		t.Fatalf("expected member expression callee, got %v", callee.Kind)
	}
}

func TestParseDecoratorReference(t *testing.T) {
	block := parseBody(t, `{ return @visibility; }`)
	ret := block.Children[0].Children[0]
	decRef := ret.Children[0]
	if decRef.Kind != cst.KindProjectionDecoratorReferenceExpression {
		t.Fatalf("expected decorator reference expression, got %v", decRef.Kind)
	}
}

func TestParseParametersList(t *testing.T) {
	text := `a, b, c`
	file := source.NewFile("<test>", text)
	s := scanner.New(file)
	sink := diagnostics.NewSink()
	params := ParseParameters(s, source.Range{Start: 0, End: source.Pos(len(text))}, sink)
	if len(params) != 3 {
		t.Fatalf("expected 3 parameters, got %d", len(params))
	}
	for _, p := range params {
		if p.Kind != cst.KindProjectionParameterDeclaration {
			t.Fatalf("expected ProjectionParameterDeclaration, got %v", p.Kind)
		}
	}
}
