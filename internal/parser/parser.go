// Package parser implements the recursive-descent parser for the language:
// statement and expression grammar, decorators, directives, doc comments,
// templates and modifiers (spec component E). It is grounded throughout on
// the teacher's java/parser/parser.go: the functional Option pattern,
// startNode/finishNode span tracking, errorNode/recoverTo skip-to-sync-point
// recovery, expect/check/match/peek token-cursor helpers and the
// mustProgress closure-based loop guard are all adapted from that file.
package parser

import (
	"fmt"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/doc"
	"github.com/adl-lang/adl/internal/scanner"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// Options mirrors spec §4.2's ParseOptions: which trivia to retain alongside
// the tree.
type Options struct {
	Comments bool
	Docs     bool
}

// Option configures a Parser, following the teacher's functional-option
// pattern (WithFile, WithComments, ...).
type Option func(*Parser)

// WithComments makes the parser collect comment trivia into the script's
// comment list.
func WithComments() Option { return func(p *Parser) { p.opts.Comments = true } }

// WithDocs makes the parser parse doc comments into Doc nodes instead of
// leaving them as opaque comment trivia.
func WithDocs() Option { return func(p *Parser) { p.opts.Docs = true } }

// mode distinguishes the scanner's two scan functions; only Syntax mode is
// driven directly by this package today (Doc mode is driven by
// internal/doc, scoped via Scanner.ScanRange per spec §9's "scoped mode
// switching").
type mode int

const (
	modeSyntax mode = iota
	modeDoc
)

// Parser is a single, non-reentrant parse of one source file. All of its
// fields are per-parse state (spec §5): there is no process-wide or shared
// state, so independent parses of different files are safe to run
// concurrently.
type Parser struct {
	file    *source.File
	scan    *scanner.Scanner
	sink    *diagnostics.Sink
	opts    Options
	comments []*cst.Node

	cur  token.Token
	curPos source.Pos
	prevEnd source.Pos

	missingIdentCounter int
	printable           bool
	newLineIsTrivia     bool
	currentMode         mode

	pendingDocs []*cst.Node
}

// New constructs a Parser over text, applying opts.
func New(filename, text string, opts ...Option) *Parser {
	file := source.NewFile(filename, text)
	p := &Parser{
		file:            file,
		scan:            scanner.New(file),
		sink:            diagnostics.NewSink(),
		printable:       true,
		newLineIsTrivia: true,
	}
	for _, o := range opts {
		o(p)
	}
	p.advanceRaw()
	return p
}

// Result bundles the ScriptNode's fields per spec §6: the tree itself plus
// the collected comments, diagnostics, printable bit and option snapshot
// that would otherwise have to live inside a homogeneous CST node.
type Result struct {
	Script      *cst.Node
	Comments    []*cst.Node
	Diagnostics []diagnostics.Diagnostic
	Printable   bool
	Options     Options
}

// Parse parses code as a complete script (spec §4.2's `parse(code, options)`).
func Parse(filename, code string, opts ...Option) *Result {
	p := New(filename, code, opts...)
	script := p.ParseScript()
	return &Result{
		Script:      script,
		Comments:    p.comments,
		Diagnostics: p.sink.All(),
		Printable:   p.printable,
		Options:     p.opts,
	}
}

// ParseStandaloneTypeReference parses a single reference expression and
// returns it along with any diagnostics, per spec §4.2. Anything left
// before EOF is reported as an unexpected-token diagnostic.
func ParseStandaloneTypeReference(code string) (*cst.Node, []diagnostics.Diagnostic) {
	p := New("<standalone>", code)
	expr := p.parseExpression()
	if p.Peek() != token.EOF {
		p.reportTokenExpected("unexpected", token.EOF)
	}
	return expr, p.sink.All()
}

// Diagnostics returns every diagnostic kept by this parse so far.
func (p *Parser) Diagnostics() []diagnostics.Diagnostic { return p.sink.All() }

// Printable reports whether the tree produced so far is safe to feed to a
// pretty-printer (spec §3's script-wide printable bit).
func (p *Parser) Printable() bool { return p.printable }

// ---- low-level cursor -----------------------------------------------------

// advanceRaw pulls the next syntax-mode token from the scanner, filtering
// trivia as appropriate and feeding comments/doc-comments to the side
// channels that attach them to the next declaration.
func (p *Parser) advanceRaw() {
	for {
		p.prevEnd = p.curPos
		tok := p.scan.Scan()
		p.curPos = tok.Range.End

		switch {
		case tok.Kind == token.NewLine:
			if !p.newLineIsTrivia {
				p.cur = tok
				return
			}
			continue
		case tok.Kind == token.Whitespace:
			continue
		case tok.Kind == token.SingleLineComment:
			if p.opts.Comments {
				p.comments = append(p.comments, p.triviaNode(tok))
			}
			continue
		case tok.Kind == token.MultiLineComment:
			if p.opts.Comments {
				p.comments = append(p.comments, p.triviaNode(tok))
			}
			if p.opts.Docs && tok.Flags.Has(token.FlagDocComment) {
				p.pendingDocs = append(p.pendingDocs, doc.Parse(p.scan, tok.Range))
			}
			continue
		}
		p.cur = tok
		return
	}
}

func (p *Parser) triviaNode(tok token.Token) *cst.Node {
	n := cst.NewNode(cst.KindDocText, tok.Range.Start)
	n.Range = tok.Range
	t := tok
	n.Token = &t
	return n
}

// Peek returns the kind of the current (not-yet-consumed) token.
func (p *Parser) Peek() token.Kind { return p.cur.Kind }

// PeekPos returns the start position of the current token.
func (p *Parser) PeekPos() source.Pos { return p.cur.Range.Start }

// PrevEnd returns the end position of the previously consumed token, used
// to place "missing punctuation" diagnostics immediately after it (spec
// §7 policy 5).
func (p *Parser) PrevEnd() source.Pos { return p.prevEnd }

// AtEOF reports whether the current token is end-of-file.
func (p *Parser) AtEOF() bool { return p.cur.Kind == token.EOF }

// Advance consumes and returns the current token, then pulls the next one.
func (p *Parser) Advance() token.Token {
	tok := p.cur
	p.advanceRaw()
	return tok
}

// Check reports whether the current token has kind k without consuming it.
func (p *Parser) check(k token.Kind) bool { return p.cur.Kind == k }

// Match consumes and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			p.Advance()
			return true
		}
	}
	return false
}

// expect consumes the current token if it has kind k; otherwise it reports
// token-expected and leaves the cursor in place so callers can still
// attempt recovery on the unexpected token.
func (p *Parser) expect(k token.Kind) *token.Token {
	if p.cur.Kind == k {
		tok := p.cur
		p.Advance()
		return &tok
	}
	p.reportTokenExpected("expected", k)
	return nil
}

func (p *Parser) reportTokenExpected(messageID string, expected ...token.Kind) {
	got := p.cur
	pos := p.prevEnd
	end := p.prevEnd + 1
	p.report(diagnostics.Diagnostic{
		Severity:  diagnostics.SeverityError,
		Code:      diagnostics.CodeTokenExpected,
		MessageID: messageID,
		Message:   fmt.Sprintf("expected %v, got %v", expected, got.Kind),
		Pos:       pos,
		End:       end,
		Printable: false,
	})
}

func (p *Parser) report(d diagnostics.Diagnostic) bool {
	kept := p.sink.Report(d)
	if kept && d.Severity == diagnostics.SeverityError && !d.Printable {
		p.printable = false
	}
	return kept
}

// mustProgress returns a check function following the teacher's closure
// pattern: call it after attempting an iteration of work; it reports
// whether the cursor actually advanced since mustProgress was called.
func (p *Parser) mustProgress() func() bool {
	start := p.curPos
	return func() bool { return p.curPos != start }
}

// ---- node construction -----------------------------------------------------

func (p *Parser) startNode(kind cst.Kind) *cst.Node {
	return cst.NewNode(kind, p.cur.Range.Start)
}

func (p *Parser) finishNode(n *cst.Node) *cst.Node {
	n.Range.End = p.prevEnd
	return n
}

// errorNode marks the node under construction as erroneous, reports a
// token-expected diagnostic, and skips tokens up to one of recoverTo (or
// EOF) so the caller can resynchronize. This mirrors the teacher's
// errorNode+recoverTo pair exactly.
func (p *Parser) errorNode(kind cst.Kind, msg string, recoverToKinds []token.Kind, expected ...token.Kind) *cst.Node {
	n := p.startNode(kind)
	n.Flags |= cst.ThisNodeHasError
	p.report(diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeTokenExpected,
		Message:  msg,
		Pos:      p.prevEnd,
		End:      p.prevEnd + 1,
	})
	p.recoverTo(recoverToKinds)
	return p.finishNode(n)
}

// recoverTo skips tokens until the current token is one of kinds or EOF.
func (p *Parser) recoverTo(kinds []token.Kind) {
	for {
		if p.AtEOF() {
			return
		}
		for _, k := range kinds {
			if p.cur.Kind == k {
				return
			}
		}
		p.Advance()
	}
}

// nextMissingIdentifier synthesizes a unique placeholder identifier literal
// per spec §3's invariant on synthetic missing-identifier nodes.
func (p *Parser) nextMissingIdentifier() string {
	p.missingIdentCounter++
	return fmt.Sprintf("<missing identifier>%d", p.missingIdentCounter)
}

// parseIdentifier consumes an identifier, or synthesizes one flagged
// Synthetic + ThisNodeHasError if the current token is not one.
func (p *Parser) parseIdentifier() *cst.Node {
	n := p.startNode(cst.KindIdentifier)
	if p.check(token.Identifier) {
		tok := p.cur
		n.Token = &tok
		p.Advance()
		return p.finishNode(n)
	}
	n.Flags |= cst.ThisNodeHasError | cst.Synthetic
	n.Token = &token.Token{Kind: token.Identifier, Literal: p.nextMissingIdentifier()}
	p.reportTokenExpected("expected", token.Identifier)
	return p.finishNode(n)
}

// parseDottedName parses `id (. id)*` and returns the flat list of
// identifier nodes plus the full dotted literal.
func (p *Parser) parseDottedName() []*cst.Node {
	ids := []*cst.Node{p.parseIdentifier()}
	for p.check(token.Dot) {
		p.Advance()
		ids = append(ids, p.parseIdentifier())
	}
	return ids
}
