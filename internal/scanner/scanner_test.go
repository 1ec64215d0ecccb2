package scanner

import (
	"testing"

	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

func scanAll(text string) []token.Token {
	s := New(source.NewFile("t.adl", text))
	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks := scanAll("model Foo")
	got := kinds(toks)
	want := []token.Kind{token.ModelKeyword, token.Whitespace, token.Identifier, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll("@@(){}[]<>::=>||&&!=<=>=...")
	got := kinds(toks)
	want := []token.Kind{
		token.AtAt, token.OpenParen, token.CloseParen, token.OpenBrace, token.CloseBrace,
		token.OpenBracket, token.CloseBracket, token.OpenAngle, token.CloseAngle,
		token.ColonColon, token.FatArrow,
		token.BarBar, token.AmpAmp, token.BangEquals, token.LessThanEquals,
		token.GreaterThanEquals, token.DotDotDot, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScanDocCommentFlag(t *testing.T) {
	s := New(source.NewFile("t.adl", "/** doc */model M{}"))
	tok := s.Scan()
	if tok.Kind != token.MultiLineComment {
		t.Fatalf("kind = %v, want MultiLineComment", tok.Kind)
	}
	if !tok.Flags.Has(token.FlagDocComment) {
		t.Errorf("expected doc comment flag to be set")
	}
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	s := New(source.NewFile("t.adl", "/* oops"))
	tok := s.Scan()
	if !tok.Flags.Has(token.FlagUnterminated) {
		t.Errorf("expected unterminated flag on EOF-truncated block comment")
	}
	if int(tok.Range.End) != len("/* oops") {
		t.Errorf("end = %d, want %d (unterminated comment extends to range end)", tok.Range.End, len("/* oops"))
	}
}

func TestScanUnterminatedString(t *testing.T) {
	s := New(source.NewFile("t.adl", `"abc`))
	tok := s.Scan()
	if tok.Kind != token.StringLiteral || !tok.Flags.Has(token.FlagUnterminated) {
		t.Errorf("expected unterminated string literal, got %+v", tok)
	}
}

func TestScanRangeRestoresCursor(t *testing.T) {
	s := New(source.NewFile("t.adl", "model M {}"))
	first := s.Scan()
	s.ScanRange(source.Range{Start: 0, End: 5}, func() {
		inner := s.Scan()
		if inner.Kind != token.ModelKeyword {
			t.Errorf("inner scan kind = %v, want ModelKeyword", inner.Kind)
		}
	})
	if s.Token != first {
		t.Errorf("expected outer token to be restored after ScanRange")
	}
}

func TestScanEmptyInput(t *testing.T) {
	toks := scanAll("")
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Errorf("expected exactly one EOF token for empty input, got %v", toks)
	}
}
