// Package scanner implements the pull-based token cursor the parser drives:
// a single current token, advanced one at a time in either syntax or doc
// mode, with a scoped sub-range scan used for doc comments.
package scanner

import (
	"strings"

	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// Scanner exposes the current token plus scan()/scanDoc() to advance it, and
// scanRange to run a callback with the cursor temporarily confined to a
// sub-range (used to scan inside an extracted doc-comment body).
type Scanner struct {
	file *source.File

	pos      int // current byte offset into file.Text
	rangeEnd int // when nonzero, confines scanning to end-of-file or this offset, whichever is smaller

	Token         token.Token
	TokenPosition source.Pos // start of Token
	Position      source.Pos // end of Token (== cursor pos)
}

// New returns a Scanner positioned before the first token of file. Call Scan
// once to populate the first Token.
func New(file *source.File) *Scanner {
	return &Scanner{file: file}
}

// File returns the source file this scanner reads from.
func (s *Scanner) File() *source.File { return s.file }

func (s *Scanner) end() int { return len(s.file.Text) }

func (s *Scanner) at(offset int) byte {
	if offset < 0 || offset >= s.end() {
		return 0
	}
	return s.file.Text[offset]
}

func (s *Scanner) peek() byte     { return s.at(s.pos) }
func (s *Scanner) peekN(n int) byte { return s.at(s.pos + n) }

func (s *Scanner) advance() byte {
	ch := s.peek()
	if s.pos < s.end() {
		s.pos++
	}
	return ch
}

// Scan advances to the next syntax-mode token, including trivia: the caller
// (the parser's prelude loop) is responsible for skipping whitespace,
// newlines and comments it does not want to see.
func (s *Scanner) Scan() token.Token {
	s.TokenPosition = source.Pos(s.pos)
	tok := s.scanOne()
	s.Token = tok
	s.Position = source.Pos(s.pos)
	return tok
}

// ScanDoc advances to the next doc-mode token: the doc-comment sub-parser
// runs over raw rune content rather than the syntax grammar, so doc mode
// only recognizes whitespace-run, newline, word and punctuation-rune tokens.
// See internal/doc for the consumer.
func (s *Scanner) ScanDoc() token.Token {
	s.TokenPosition = source.Pos(s.pos)
	start := s.pos
	if s.pos >= s.end() {
		tok := token.Token{Kind: token.EOF, Range: source.Range{Start: source.Pos(start), End: source.Pos(start)}}
		s.Token = tok
		s.Position = source.Pos(s.pos)
		return tok
	}
	ch := s.peek()
	switch {
	case ch == '\n':
		s.advance()
	case ch == ' ' || ch == '\t' || ch == '\r':
		for s.peek() == ' ' || s.peek() == '\t' || s.peek() == '\r' {
			s.advance()
		}
	case isIdentStart(rune(ch)):
		for isIdentPart(rune(s.peek())) {
			s.advance()
		}
	default:
		s.advance()
	}
	lit := s.file.Text[start:s.pos]
	kind := token.Identifier
	switch {
	case lit == "\n":
		kind = token.NewLine
	case strings.TrimSpace(lit) == "" && lit != "":
		kind = token.Whitespace
	case !isIdentStart(rune(lit[0])):
		kind = token.None
	}
	tok := token.Token{Kind: kind, Range: source.Range{Start: source.Pos(start), End: source.Pos(s.pos)}, Literal: lit}
	s.Token = tok
	s.Position = source.Pos(s.pos)
	return tok
}

// ScanRange runs fn with the scanner's cursor confined to r, restoring the
// prior cursor and current token afterward regardless of how fn returns.
// This is how the doc-comment sub-parser is scoped to a single comment's
// body without disturbing the outer syntax-mode scan.
func (s *Scanner) ScanRange(r source.Range, fn func()) {
	savedPos := s.pos
	savedTok := s.Token
	savedTokPos := s.TokenPosition
	savedCursorPos := s.Position
	savedEnd := s.rangeEnd
	s.pos = int(r.Start)
	s.rangeEnd = int(r.End)
	defer func() {
		s.pos = savedPos
		s.Token = savedTok
		s.TokenPosition = savedTokPos
		s.Position = savedCursorPos
		s.rangeEnd = savedEnd
	}()
	fn()
}

func (s *Scanner) scanOne() token.Token {
	start := s.pos
	limit := s.end()
	if s.rangeEnd != 0 && s.rangeEnd < limit {
		limit = s.rangeEnd
	}
	if s.pos >= limit {
		return token.Token{Kind: token.EOF, Range: source.Range{Start: source.Pos(start), End: source.Pos(start)}}
	}

	ch := s.peek()

	switch {
	case ch == '\n':
		s.advance()
		return s.finish(start, token.NewLine, token.FlagNone)
	case ch == ' ' || ch == '\t' || ch == '\r':
		for ch := s.peek(); ch == ' ' || ch == '\t' || ch == '\r'; ch = s.peek() {
			s.advance()
		}
		return s.finish(start, token.Whitespace, token.FlagNone)
	case ch == '/' && s.peekN(1) == '/':
		s.advance()
		s.advance()
		for s.peek() != 0 && s.peek() != '\n' {
			s.advance()
		}
		return s.finish(start, token.SingleLineComment, token.FlagNone)
	case ch == '/' && s.peekN(1) == '*':
		return s.scanBlockComment(start)
	case isIdentStart(rune(ch)):
		return s.scanIdentOrKeyword(start)
	case isDigit(ch):
		return s.scanNumber(start)
	case ch == '"':
		return s.scanString(start)
	default:
		return s.scanOperator(start)
	}
}

func (s *Scanner) scanBlockComment(start int) token.Token {
	s.advance()
	s.advance()
	isDoc := s.peek() == '*' && s.peekN(1) != '/'
	terminated := false
	for {
		if s.peek() == 0 {
			break
		}
		if s.peek() == '*' && s.peekN(1) == '/' {
			s.advance()
			s.advance()
			terminated = true
			break
		}
		s.advance()
	}
	flags := token.FlagNone
	if isDoc {
		flags |= token.FlagDocComment
	}
	if !terminated {
		flags |= token.FlagUnterminated
	}
	return s.finish(start, token.MultiLineComment, flags)
}

func (s *Scanner) scanIdentOrKeyword(start int) token.Token {
	for isIdentPart(rune(s.peek())) {
		s.advance()
	}
	lit := s.file.Text[start:s.pos]
	kind := token.LookupKeyword(lit)
	return token.Token{Kind: kind, Range: source.Range{Start: source.Pos(start), End: source.Pos(s.pos)}, Literal: lit}
}

func (s *Scanner) scanNumber(start int) token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekN(1)) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.finish(start, token.NumericLiteral, token.FlagNone)
}

func (s *Scanner) scanString(start int) token.Token {
	s.advance() // opening quote
	terminated := false
	for {
		ch := s.peek()
		if ch == 0 || ch == '\n' {
			break
		}
		if ch == '\\' {
			s.advance()
			s.advance()
			continue
		}
		if ch == '"' {
			s.advance()
			terminated = true
			break
		}
		s.advance()
	}
	flags := token.FlagNone
	if !terminated {
		flags |= token.FlagUnterminated
	}
	return s.finish(start, token.StringLiteral, flags)
}

func (s *Scanner) scanOperator(start int) token.Token {
	ch := s.advance()
	kind := token.None
	switch ch {
	case '{':
		kind = token.OpenBrace
	case '}':
		kind = token.CloseBrace
	case '(':
		kind = token.OpenParen
	case ')':
		kind = token.CloseParen
	case '[':
		kind = token.OpenBracket
	case ']':
		kind = token.CloseBracket
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case ':':
		if s.peek() == ':' {
			s.advance()
			kind = token.ColonColon
		} else {
			kind = token.Colon
		}
	case '.':
		if s.peek() == '.' && s.peekN(1) == '.' {
			s.advance()
			s.advance()
			kind = token.DotDotDot
		} else {
			kind = token.Dot
		}
	case '@':
		if s.peek() == '@' {
			s.advance()
			kind = token.AtAt
		} else {
			kind = token.At
		}
	case '#':
		kind = token.Hash
	case '=':
		switch {
		case s.peek() == '=':
			s.advance()
			kind = token.EqualsEquals
		case s.peek() == '>':
			s.advance()
			kind = token.FatArrow
		default:
			kind = token.Equals
		}
	case '|':
		if s.peek() == '|' {
			s.advance()
			kind = token.BarBar
		} else {
			kind = token.Bar
		}
	case '&':
		if s.peek() == '&' {
			s.advance()
			kind = token.AmpAmp
		} else {
			kind = token.Amp
		}
	case '?':
		kind = token.Question
	case '!':
		if s.peek() == '=' {
			s.advance()
			kind = token.BangEquals
		} else {
			kind = token.Bang
		}
	case '<':
		if s.peek() == '=' {
			s.advance()
			kind = token.LessThanEquals
		} else {
			kind = token.OpenAngle
		}
	case '>':
		if s.peek() == '=' {
			s.advance()
			kind = token.GreaterThanEquals
		} else {
			kind = token.CloseAngle
		}
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case 0:
		kind = token.EOF
	default:
		kind = token.ErrorToken
	}
	return s.finish(start, kind, token.FlagNone)
}

func (s *Scanner) finish(start int, kind token.Kind, flags token.Flags) token.Token {
	return token.Token{
		Kind:    kind,
		Range:   source.Range{Start: source.Pos(start), End: source.Pos(s.pos)},
		Literal: s.file.Text[start:s.pos],
		Flags:   flags,
	}
}

func isIdentStart(ch rune) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }
