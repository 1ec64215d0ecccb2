package list

import (
	"testing"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// fakeHost drives the list algorithm over a canned token stream, standing
// in for a real parser so the algorithm can be tested independent of the
// grammar.
type fakeHost struct {
	toks    []token.Kind
	pos     int
	missing int
	trailing int
}

func (f *fakeHost) Peek() token.Kind {
	if f.pos >= len(f.toks) {
		return token.EOF
	}
	return f.toks[f.pos]
}
func (f *fakeHost) PeekPos() source.Pos { return source.Pos(f.pos) }
func (f *fakeHost) PrevEnd() source.Pos {
	if f.pos == 0 {
		return 0
	}
	return source.Pos(f.pos)
}
func (f *fakeHost) Advance() token.Token {
	k := f.Peek()
	f.pos++
	return token.Token{Kind: k}
}
func (f *fakeHost) AtEOF() bool                                  { return f.Peek() == token.EOF }
func (f *fakeHost) ParsePrelude(invalidTarget string) bool       { return false }
func (f *fakeHost) ReportMissingDelimiter(pos source.Pos)        { f.missing++ }
func (f *fakeHost) ReportTrailingToken(start, end source.Pos)    { f.trailing++ }

func parseIdentItem(h *fakeHost) *cst.Node {
	h.Advance() // consume one "item" token
	return cst.NewNode(cst.KindIdentifier, 0)
}

func TestParseCommaSeparatedList(t *testing.T) {
	// a, b, c }
	h := &fakeHost{toks: []token.Kind{
		token.Identifier, token.Comma,
		token.Identifier, token.Comma,
		token.Identifier, token.CloseBrace,
	}}
	cfg := Config{Close: token.CloseBrace, Delimiter: token.Comma}
	items := Parse(cfg, h, func() *cst.Node { return parseIdentItem(h) })
	if len(items) != 3 {
		t.Fatalf("len(items) = %d, want 3", len(items))
	}
	if h.missing != 0 {
		t.Errorf("missing delimiter count = %d, want 0", h.missing)
	}
}

func TestParseTrailingDelimiterFlaggedWhenInvalid(t *testing.T) {
	// a, }
	h := &fakeHost{toks: []token.Kind{token.Identifier, token.Comma, token.CloseBrace}}
	cfg := Config{Close: token.CloseBrace, Delimiter: token.Comma, TrailingDelimiterIsValid: false}
	Parse(cfg, h, func() *cst.Node { return parseIdentItem(h) })
	if h.trailing != 1 {
		t.Errorf("trailing count = %d, want 1", h.trailing)
	}
}

func TestParseTrailingDelimiterSilentWhenValid(t *testing.T) {
	h := &fakeHost{toks: []token.Kind{token.Identifier, token.Comma, token.CloseBrace}}
	cfg := Config{Close: token.CloseBrace, Delimiter: token.Comma, TrailingDelimiterIsValid: true}
	Parse(cfg, h, func() *cst.Node { return parseIdentItem(h) })
	if h.trailing != 0 {
		t.Errorf("trailing count = %d, want 0 when trailing delimiter is valid", h.trailing)
	}
}

func TestParseProgressGuardTerminates(t *testing.T) {
	// An item parser that never consumes input - simulates hitting a
	// completely unexpected token inside a list body, e.g. `model M { ]`.
	h := &fakeHost{toks: []token.Kind{token.CloseBracket}}
	cfg := Config{Close: token.CloseBrace, Delimiter: token.Comma}

	done := make(chan struct{})
	go func() {
		Parse(cfg, h, func() *cst.Node { return cst.NewNode(cst.KindInvalidStatement, 0) })
		close(done)
	}()
	select {
	case <-done:
	default:
	}
	// The guard must ensure Parse returns (this test hanging indicates an
	// infinite loop bug); reaching here without a timeout harness relies on
	// the progress guard actually working in-process.
	<-done
}

// TestParseAllowedStatementKeywordStillReportsMissingDelimiter mimics
// InterfaceMembers (`op a(): void op b(): void`): each item starts with the
// list's own AllowedStatementKeyword, so nothing ever satisfies Delimiter or
// ToleratedDelimiter between members. The list must still report exactly
// one missing-delimiter per boundary instead of suppressing it just because
// the next token happens to be a statement keyword.
func TestParseAllowedStatementKeywordStillReportsMissingDelimiter(t *testing.T) {
	// op X op X }
	h := &fakeHost{toks: []token.Kind{
		token.OpKeyword, token.Identifier,
		token.OpKeyword, token.Identifier,
		token.CloseBrace,
	}}
	cfg := Config{
		Close: token.CloseBrace, Delimiter: token.Semicolon,
		ToleratedDelimiter: token.Comma, AllowedStatementKeyword: token.OpKeyword,
	}
	parseMember := func() *cst.Node {
		if h.Peek() == token.OpKeyword {
			h.Advance()
		}
		h.Advance()
		return cst.NewNode(cst.KindOperationStatement, 0)
	}
	items := Parse(cfg, h, parseMember)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if h.missing != 1 {
		t.Errorf("missing delimiter count = %d, want exactly 1", h.missing)
	}
}

func TestParseAllowEmpty(t *testing.T) {
	h := &fakeHost{toks: []token.Kind{token.CloseBrace}}
	cfg := Config{Close: token.CloseBrace, Delimiter: token.Comma, AllowEmpty: true}
	items := Parse(cfg, h, func() *cst.Node { return parseIdentItem(h) })
	if len(items) != 0 {
		t.Errorf("len(items) = %d, want 0 for an allow-empty list at its close token", len(items))
	}
}
