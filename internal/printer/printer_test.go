package printer

import (
	"strings"
	"testing"

	"github.com/adl-lang/adl/internal/parser"
)

func printSource(t *testing.T, src string) string {
	t.Helper()
	result := parser.Parse("w.adl", src)
	return Print(result.Script)
}

func TestPrintModelStatement(t *testing.T) {
	out := printSource(t, `model Widget { name: string; count?: int32 = 1; }`)
	if !strings.Contains(out, "model Widget {") {
		t.Fatalf("expected model header, got %q", out)
	}
	if !strings.Contains(out, "name: string;") {
		t.Fatalf("expected name property, got %q", out)
	}
	if !strings.Contains(out, "count?: int32 = 1;") {
		t.Fatalf("expected optional property with default, got %q", out)
	}
}

func TestPrintNamespaceChain(t *testing.T) {
	out := printSource(t, `namespace A.B { model X { } }`)
	if !strings.Contains(out, "namespace A.B {") {
		t.Fatalf("expected chained namespace header, got %q", out)
	}
}

func TestPrintEnumStatement(t *testing.T) {
	out := printSource(t, `enum Color { Red: "red", Blue: "blue" }`)
	if !strings.Contains(out, "enum Color {") {
		t.Fatalf("expected enum header, got %q", out)
	}
	if !strings.Contains(out, `Red: "red";`) {
		t.Fatalf("expected enum member, got %q", out)
	}
}

func TestPrintProjectionStatement(t *testing.T) {
	out := printSource(t, `projection model #visibility {
		to(value) { return value; }
		from(value) { if value == 1 { return 2; } else { return value; } }
	}`)
	if !strings.Contains(out, "projection model #visibility {") {
		t.Fatalf("expected projection header, got %q", out)
	}
	if !strings.Contains(out, "return value;") {
		t.Fatalf("expected return expression, got %q", out)
	}
	if !strings.Contains(out, "value == 1") {
		t.Fatalf("expected equality operator preserved, got %q", out)
	}
}

func TestPrintDecoratorOnModel(t *testing.T) {
	out := printSource(t, `@visibility("admin") model Secret { name: string; }`)
	if !strings.Contains(out, `@visibility("admin")`) {
		t.Fatalf("expected decorator rendered before model, got %q", out)
	}
}
