package langserver

import (
	"testing"

	"github.com/adl-lang/adl/internal/parser"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/treeutil"
)

func TestFindDeclarationLocatesTopLevelModel(t *testing.T) {
	src := "model Widget {\n  name: string;\n}\n"
	result := parser.Parse("w.adl", src)
	treeutil.LinkParents(result.Script)

	decl := findDeclaration(result.Script, "Widget")
	if decl == nil {
		t.Fatalf("expected to find a declaration named Widget")
	}
}

func TestFindDeclarationReturnsNilForUnknownName(t *testing.T) {
	src := "model Widget {\n  name: string;\n}\n"
	result := parser.Parse("w.adl", src)
	treeutil.LinkParents(result.Script)

	if decl := findDeclaration(result.Script, "Gadget"); decl != nil {
		t.Fatalf("expected no declaration named Gadget, got %v", decl.Kind)
	}
}

func TestPositionRoundTripsThroughLineCol(t *testing.T) {
	src := "model Widget {\n  name: string;\n}\n"
	file := source.NewFile("w.adl", src)

	for _, pos := range []source.Pos{0, 6, 20} {
		p := toProtocolPosition(file, pos)
		back := fromProtocolPosition(file, p)
		if back != pos {
			t.Fatalf("position round trip mismatch: %d -> %+v -> %d", pos, p, back)
		}
	}
}

func TestUriToPathStripsFileScheme(t *testing.T) {
	if got := uriToPath("file:///home/user/widget.adl"); got != "/home/user/widget.adl" {
		t.Fatalf("unexpected path: %q", got)
	}
	if got := uriToPath("/already/a/path.adl"); got != "/already/a/path.adl" {
		t.Fatalf("unexpected passthrough: %q", got)
	}
}
