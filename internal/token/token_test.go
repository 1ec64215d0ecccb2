package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"model":   ModelKeyword,
		"op":      OpKeyword,
		"foo":     Identifier,
		"to":      ToKeyword,
		"extends": ExtendsKeyword,
	}
	for ident, want := range cases {
		if got := LookupKeyword(ident); got != want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", ident, got, want)
		}
	}
}

func TestIsStatementKeyword(t *testing.T) {
	if !IsStatementKeyword(ModelKeyword) {
		t.Errorf("expected model to be a statement keyword")
	}
	if IsStatementKeyword(Identifier) {
		t.Errorf("expected identifier to not be a statement keyword")
	}
	if IsStatementKeyword(ToKeyword) {
		t.Errorf("expected 'to' to not be a statement keyword on its own")
	}
}

func TestKindIsTrivia(t *testing.T) {
	for _, k := range []Kind{Whitespace, NewLine, SingleLineComment, MultiLineComment, DocComment} {
		if !k.IsTrivia() {
			t.Errorf("%v.IsTrivia() = false, want true", k)
		}
	}
	if Identifier.IsTrivia() {
		t.Errorf("Identifier.IsTrivia() = true, want false")
	}
}

func TestFlagsHas(t *testing.T) {
	f := FlagDocComment | FlagUnterminated
	if !f.Has(FlagDocComment) {
		t.Errorf("expected flags to have FlagDocComment")
	}
	if !f.Has(FlagUnterminated) {
		t.Errorf("expected flags to have FlagUnterminated")
	}
	if FlagNone.Has(FlagDocComment) {
		t.Errorf("expected FlagNone to not have FlagDocComment")
	}
}
