// Package projection implements the embedded expression sub-language used
// inside `to`/`from` projection bodies: a small statement-and-expression
// grammar (return, if/else, lambdas, operators, calls, member access) that
// is scanned and parsed independently of the surrounding declaration
// grammar, the same way internal/doc parses doc comments over a scoped
// sub-range of the same file. It is grounded on the teacher's expression
// parser (java/parser/parser.go's precedence-climbing binary-expression
// chain and its isLambda/parseLambdaExpr disambiguation).
package projection

import (
	"fmt"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/scanner"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// parser is a self-contained recursive-descent cursor over a scoped range
// of the shared scanner, mirroring internal/parser's low-level cursor
// fields and helpers but kept independent so this package never needs to
// import internal/parser.
type parser struct {
	scan *scanner.Scanner
	sink *diagnostics.Sink

	cur     token.Token
	curPos  source.Pos
	prevEnd source.Pos

	missingIdentCounter int
}

// Parse parses a projection body occupying r within s's file, reporting any
// diagnostics into sink, and returns the resulting ProjectionBlockExpression
// (or a best-effort partial tree on malformed input).
func Parse(s *scanner.Scanner, r source.Range, sink *diagnostics.Sink) *cst.Node {
	var result *cst.Node
	s.ScanRange(r, func() {
		p := &parser{scan: s, sink: sink}
		p.advance()
		result = p.parseBlock()
	})
	return result
}

// ParseParameters parses a projection's `(id, id, ...)` parameter list,
// used by the `to`/`from` clause itself (spec's projection parameter list),
// over a scoped range.
func ParseParameters(s *scanner.Scanner, r source.Range, sink *diagnostics.Sink) []*cst.Node {
	var result []*cst.Node
	s.ScanRange(r, func() {
		p := &parser{scan: s, sink: sink}
		p.advance()
		for !p.atEOF() {
			progress := p.mustProgress()
			n := p.startNode(cst.KindProjectionParameterDeclaration)
			n.AddChild(p.parseIdentifier())
			result = append(result, p.finishNode(n))
			if !p.match(token.Comma) {
				break
			}
			if !progress() {
				break
			}
		}
	})
	return result
}

func (p *parser) advance() {
	for {
		p.prevEnd = p.curPos
		tok := p.scan.Scan()
		p.curPos = tok.Range.End
		if tok.Kind.IsTrivia() {
			continue
		}
		p.cur = tok
		return
	}
}

func (p *parser) peek() token.Kind       { return p.cur.Kind }
func (p *parser) peekPos() source.Pos    { return p.cur.Range.Start }
func (p *parser) atEOF() bool            { return p.cur.Kind == token.EOF }
func (p *parser) check(k token.Kind) bool { return p.cur.Kind == k }

func (p *parser) next() token.Token {
	tok := p.cur
	p.advance()
	return tok
}

func (p *parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.cur.Kind == k {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) expect(k token.Kind) {
	if p.cur.Kind == k {
		p.advance()
		return
	}
	p.report("expected "+k.String(), p.prevEnd)
}

func (p *parser) report(msg string, pos source.Pos) {
	p.sink.Report(diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeTokenExpected,
		Message:  msg,
		Pos:      pos,
		End:      pos + 1,
	})
}

func (p *parser) mustProgress() func() bool {
	start := p.curPos
	return func() bool { return p.curPos != start }
}

func (p *parser) startNode(kind cst.Kind) *cst.Node { return cst.NewNode(kind, p.cur.Range.Start) }

func (p *parser) finishNode(n *cst.Node) *cst.Node {
	n.Range.End = p.prevEnd
	return n
}

func (p *parser) nextMissingIdentifier() string {
	p.missingIdentCounter++
	return fmt.Sprintf("<missing identifier>%d", p.missingIdentCounter)
}

func (p *parser) parseIdentifier() *cst.Node {
	n := p.startNode(cst.KindIdentifier)
	if p.check(token.Identifier) {
		tok := p.cur
		n.Token = &tok
		p.advance()
		return p.finishNode(n)
	}
	n.Flags |= cst.ThisNodeHasError | cst.Synthetic
	n.Token = &token.Token{Kind: token.Identifier, Literal: p.nextMissingIdentifier()}
	p.report("expected identifier", p.prevEnd)
	return p.finishNode(n)
}

// parseBlock parses `{ statement* }`, where each statement is either a
// bare expression (ProjectionExpressionStatement) or a `return expr;`.
func (p *parser) parseBlock() *cst.Node {
	n := p.startNode(cst.KindProjectionBlockExpression)
	p.expect(token.OpenBrace)
	for !p.check(token.CloseBrace) && !p.atEOF() {
		progress := p.mustProgress()
		n.AddChild(p.parseStatement())
		if !progress() {
			p.advance()
		}
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

func (p *parser) parseStatement() *cst.Node {
	if p.check(token.Semicolon) {
		p.advance()
		return p.parseStatement()
	}
	start := p.cur.Range.Start
	expr := p.parseExpression()
	p.match(token.Semicolon)
	wrap := cst.NewNode(cst.KindProjectionExpressionStatement, start)
	wrap.AddChild(expr)
	wrap.Range.End = p.prevEnd
	return wrap
}

// parseExpression is the entry point of the precedence chain: return (as a
// prefix form), then logical-or, ... down to unary and primary/call/member.
func (p *parser) parseExpression() *cst.Node {
	if p.check(token.ReturnKeyword) {
		start := p.cur.Range.Start
		p.advance()
		n := cst.NewNode(cst.KindProjectionReturnExpression, start)
		if !p.check(token.Semicolon) && !p.check(token.CloseBrace) {
			n.AddChild(p.parseExpression())
		}
		n.Range.End = p.prevEnd
		return n
	}
	return p.parseLogicalOr()
}

func (p *parser) parseLogicalOr() *cst.Node  { return p.parseLogicalBinary(token.BarBar) }
func (p *parser) parseLogicalAnd() *cst.Node { return p.parseLogicalBinary(token.AmpAmp) }

func (p *parser) parseLogicalBinary(op token.Kind) *cst.Node {
	var next func() *cst.Node
	if op == token.BarBar {
		next = p.parseLogicalAnd
	} else {
		next = p.parseEquality
	}
	start := p.cur.Range.Start
	left := next()
	for p.check(op) {
		opTok := p.cur
		p.advance()
		n := cst.NewNode(cst.KindProjectionLogicalExpression, start)
		n.Token = &opTok
		n.AddChild(left)
		n.AddChild(next())
		n.Range.End = p.prevEnd
		left = n
	}
	return left
}

func (p *parser) parseEquality() *cst.Node {
	start := p.cur.Range.Start
	left := p.parseRelational()
	for p.check(token.EqualsEquals) || p.check(token.BangEquals) {
		opTok := p.cur
		p.advance()
		n := cst.NewNode(cst.KindProjectionEqualityExpression, start)
		n.Token = &opTok
		n.AddChild(left)
		n.AddChild(p.parseRelational())
		n.Range.End = p.prevEnd
		left = n
	}
	return left
}

func (p *parser) parseRelational() *cst.Node {
	start := p.cur.Range.Start
	left := p.parseAdditive()
	for p.check(token.OpenAngle) || p.check(token.CloseAngle) ||
		p.check(token.LessThanEquals) || p.check(token.GreaterThanEquals) {
		opTok := p.cur
		p.advance()
		n := cst.NewNode(cst.KindProjectionRelationalExpression, start)
		n.Token = &opTok
		n.AddChild(left)
		n.AddChild(p.parseAdditive())
		n.Range.End = p.prevEnd
		left = n
	}
	return left
}

func (p *parser) parseAdditive() *cst.Node {
	start := p.cur.Range.Start
	left := p.parseMultiplicative()
	for p.check(token.Plus) || p.check(token.Minus) {
		opTok := p.cur
		p.advance()
		n := cst.NewNode(cst.KindProjectionArithmeticExpression, start)
		n.Token = &opTok
		n.AddChild(left)
		n.AddChild(p.parseMultiplicative())
		n.Range.End = p.prevEnd
		left = n
	}
	return left
}

func (p *parser) parseMultiplicative() *cst.Node {
	start := p.cur.Range.Start
	left := p.parseUnary()
	for p.check(token.Star) || p.check(token.Slash) {
		opTok := p.cur
		p.advance()
		n := cst.NewNode(cst.KindProjectionArithmeticExpression, start)
		n.Token = &opTok
		n.AddChild(left)
		n.AddChild(p.parseUnary())
		n.Range.End = p.prevEnd
		left = n
	}
	return left
}

func (p *parser) parseUnary() *cst.Node {
	if p.check(token.Bang) {
		start := p.cur.Range.Start
		opTok := p.cur
		p.advance()
		n := cst.NewNode(cst.KindProjectionUnaryExpression, start)
		n.Token = &opTok
		n.AddChild(p.parseUnary())
		n.Range.End = p.prevEnd
		return n
	}
	return p.parseCallOrMember()
}

func (p *parser) parseCallOrMember() *cst.Node {
	start := p.cur.Range.Start
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.Dot):
			p.advance()
			n := cst.NewNode(cst.KindProjectionMemberExpression, start)
			n.AddChild(expr)
			n.AddChild(p.parseIdentifier())
			n.Range.End = p.prevEnd
			expr = n
		case p.check(token.ColonColon):
			p.advance()
			n := cst.NewNode(cst.KindProjectionMemberExpression, start)
			n.AddChild(expr)
			n.AddChild(p.parseIdentifier())
			n.Token = &token.Token{Kind: token.ColonColon}
			n.Range.End = p.prevEnd
			expr = n
		case p.check(token.OpenParen):
			p.advance()
			n := cst.NewNode(cst.KindProjectionCallExpression, start)
			n.AddChild(expr)
			for !p.check(token.CloseParen) && !p.atEOF() {
				progress := p.mustProgress()
				n.AddChild(p.parseExpression())
				if !p.match(token.Comma) {
					break
				}
				if !progress() {
					break
				}
			}
			p.expect(token.CloseParen)
			n.Range.End = p.prevEnd
			expr = n
		default:
			return expr
		}
	}
}

// parseLiteral wraps the current single-token literal in a node of kind.
func (p *parser) parseLiteral(kind cst.Kind) *cst.Node {
	n := p.startNode(kind)
	tok := p.cur
	n.Token = &tok
	p.advance()
	return p.finishNode(n)
}

// parsePrimary dispatches literals, parenthesized-or-lambda expressions,
// decorator references, if/else, tuples and model expressions, and bare
// identifiers.
func (p *parser) parsePrimary() *cst.Node {
	switch p.peek() {
	case token.StringLiteral:
		return p.parseLiteral(cst.KindStringLiteral)
	case token.NumericLiteral:
		return p.parseLiteral(cst.KindNumericLiteral)
	case token.TrueKeyword, token.FalseKeyword:
		return p.parseLiteral(cst.KindBooleanLiteral)
	case token.At:
		start := p.cur.Range.Start
		p.advance()
		n := cst.NewNode(cst.KindProjectionDecoratorReferenceExpression, start)
		n.AddChild(p.parseIdentifier())
		n.Range.End = p.prevEnd
		return n
	case token.IfKeyword:
		return p.parseIf()
	case token.OpenBracket:
		return p.parseTuple()
	case token.OpenBrace:
		return p.parseModelExpression()
	case token.OpenParen:
		return p.parseParenOrLambda()
	case token.Identifier:
		return p.parseIdentifier()
	default:
		n := p.startNode(cst.KindIdentifier)
		n.Flags |= cst.ThisNodeHasError
		p.report("expected an expression", p.prevEnd)
		return p.finishNode(n)
	}
}

// parseIf parses `if expr { ... } (else (if ... | { ... }))?`.
func (p *parser) parseIf() *cst.Node {
	start := p.cur.Range.Start
	p.advance() // `if`
	n := cst.NewNode(cst.KindProjectionIfExpression, start)
	n.AddChild(p.parseExpression())
	n.AddChild(p.parseBlock())
	if p.match(token.ElseKeyword) {
		if p.check(token.IfKeyword) {
			n.AddChild(p.parseIf())
		} else {
			n.AddChild(p.parseBlock())
		}
	}
	n.Range.End = p.prevEnd
	return n
}

func (p *parser) parseTuple() *cst.Node {
	n := p.startNode(cst.KindProjectionTupleExpression)
	p.advance() // `[`
	for !p.check(token.CloseBracket) && !p.atEOF() {
		progress := p.mustProgress()
		n.AddChild(p.parseExpression())
		if !p.match(token.Comma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expect(token.CloseBracket)
	return p.finishNode(n)
}

func (p *parser) parseModelExpression() *cst.Node {
	n := p.startNode(cst.KindProjectionModelExpression)
	p.advance() // `{`
	for !p.check(token.CloseBrace) && !p.atEOF() {
		progress := p.mustProgress()
		key := p.parseIdentifier()
		p.expect(token.Colon)
		val := p.parseExpression()
		member := cst.NewNode(cst.KindProjectionMemberExpression, key.Range.Start)
		member.AddChild(key)
		member.AddChild(val)
		member.Range.End = p.prevEnd
		n.AddChild(member)
		if !p.match(token.Comma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

// parseParenOrLambda disambiguates `(expr)` from `(params) => { ... }` by
// scanning ahead for a matching close-paren followed by `=>`, the way the
// teacher's isLambda lookahead does for Java's cast-vs-parenthesized-
// expression ambiguity, then replays from the same starting cursor.
func (p *parser) parseParenOrLambda() *cst.Node {
	if p.looksLikeLambdaParams() {
		return p.parseLambda()
	}
	start := p.cur.Range.Start
	p.advance() // `(`
	inner := p.parseExpression()
	p.expect(token.CloseParen)
	_ = start
	return inner
}

// looksLikeLambdaParams peeks through scanner tokens to decide whether the
// parenthesized group is followed by `=>`. The scan runs inside
// p.scan.ScanRange so the shared Scanner's real cursor is restored
// afterward, the same technique internal/parser.peekIsColonAfterIdentifier
// uses for its own nested lookahead; p.cur/curPos/prevEnd are saved and
// restored around it since p.advance reads and writes them too.
func (p *parser) looksLikeLambdaParams() bool {
	savedCur, savedCurPos, savedPrevEnd := p.cur, p.curPos, p.prevEnd
	ok := false
	p.scan.ScanRange(source.Range{Start: p.curPos, End: p.scan.File().Len()}, func() {
		depth := 0
		for {
			switch p.cur.Kind {
			case token.OpenParen:
				depth++
			case token.CloseParen:
				depth--
				if depth == 0 {
					p.advance()
					ok = p.check(token.FatArrow)
					return
				}
			case token.EOF:
				return
			}
			p.advance()
		}
	})
	p.cur, p.curPos, p.prevEnd = savedCur, savedCurPos, savedPrevEnd
	return ok
}

func (p *parser) parseLambda() *cst.Node {
	n := p.startNode(cst.KindProjectionLambdaExpression)
	p.expect(token.OpenParen)
	for !p.check(token.CloseParen) && !p.atEOF() {
		progress := p.mustProgress()
		param := p.startNode(cst.KindProjectionLambdaParameter)
		param.AddChild(p.parseIdentifier())
		n.AddChild(p.finishNode(param))
		if !p.match(token.Comma) {
			break
		}
		if !progress() {
			break
		}
	}
	p.expect(token.CloseParen)
	p.expect(token.FatArrow)
	n.AddChild(p.parseExpression())
	return p.finishNode(n)
}
