package parser

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/list"
	"github.com/adl-lang/adl/internal/token"
)

// parseExpression parses the primary expression grammar (spec §4.4),
// lowest precedence first: union (|), then intersection (&), then the
// array postfix (T[]), bottoming out at parsePrimaryExpression.
func (p *Parser) parseExpression() *cst.Node {
	return p.parseUnionExpression()
}

func (p *Parser) parseUnionExpression() *cst.Node {
	start := p.cur.Range.Start
	p.match(token.Bar) // a leading bar is permitted and discarded
	left := p.parseIntersectionExpression()
	if !p.check(token.Bar) {
		return left
	}
	n := cst.NewNode(cst.KindUnionExpression, start)
	n.AddChild(left)
	for p.match(token.Bar) {
		n.AddChild(p.parseIntersectionExpression())
	}
	return p.finishNode(n)
}

func (p *Parser) parseIntersectionExpression() *cst.Node {
	start := p.cur.Range.Start
	p.match(token.Amp)
	left := p.parseArrayPostfixExpression()
	if !p.check(token.Amp) {
		return left
	}
	n := cst.NewNode(cst.KindIntersectionExpression, start)
	n.AddChild(left)
	for p.match(token.Amp) {
		n.AddChild(p.parseArrayPostfixExpression())
	}
	return p.finishNode(n)
}

func (p *Parser) parseArrayPostfixExpression() *cst.Node {
	start := p.cur.Range.Start
	expr := p.parsePrimaryExpression()
	for p.check(token.OpenBracket) {
		// Distinguish the T[] postfix from a primary-position tuple: only
		// a directly-adjacent empty `[]` counts as the array postfix here.
		save := p.cur
		p.Advance()
		if !p.check(token.CloseBracket) {
			// Not actually `[]` — this wasn't the array postfix; there is
			// no general array-index grammar, so treat it as an error and
			// resynchronize at the bracket.
			p.cur = save
			break
		}
		p.Advance()
		arr := cst.NewNode(cst.KindArrayExpression, start)
		arr.AddChild(expr)
		expr = p.finishNode(arr)
	}
	return expr
}

func (p *Parser) parsePrimaryExpression() *cst.Node {
	switch p.Peek() {
	case token.StringLiteral:
		return p.parseLiteral(cst.KindStringLiteral)
	case token.NumericLiteral:
		return p.parseLiteral(cst.KindNumericLiteral)
	case token.TrueKeyword, token.FalseKeyword:
		return p.parseLiteral(cst.KindBooleanLiteral)
	case token.VoidKeyword:
		return p.parseKeywordExpr(cst.KindVoidKeyword)
	case token.NeverKeyword:
		return p.parseKeywordExpr(cst.KindNeverKeyword)
	case token.UnknownKeyword:
		return p.parseKeywordExpr(cst.KindUnknownKeyword)
	case token.OpenBrace:
		return p.parseModelExpression()
	case token.OpenBracket:
		return p.parseTupleExpression()
	case token.OpenParen:
		p.Advance()
		inner := p.parseExpression()
		p.expect(token.CloseParen)
		return inner
	case token.At:
		// A stray decorator in expression position: report and resume.
		p.parseDecorator()
		p.reportInvalidDecoratorLocation()
		return p.parsePrimaryExpression()
	case token.Hash:
		p.parseDirective("expression")
		p.reportInvalidDirectiveLocation()
		return p.parsePrimaryExpression()
	case token.Identifier:
		return p.parseReferenceExpression()
	default:
		return p.errorNode(cst.KindIdentifier, "expected an expression",
			[]token.Kind{token.Semicolon, token.CloseBrace, token.Comma, token.CloseParen, token.CloseBracket, token.CloseAngle})
	}
}

func (p *Parser) parseLiteral(kind cst.Kind) *cst.Node {
	n := p.startNode(kind)
	tok := p.cur
	n.Token = &tok
	p.Advance()
	return p.finishNode(n)
}

func (p *Parser) parseKeywordExpr(kind cst.Kind) *cst.Node {
	n := p.startNode(kind)
	tok := p.cur
	n.Token = &tok
	p.Advance()
	return p.finishNode(n)
}

// parseReferenceExpression parses `A.B.C<...>`: an identifier or chain of
// member expressions joined by `.`, with an optional template argument
// list. Per spec §4.4, member-expression identifiers after `.` do not
// recover from keywords — parseIdentifier already refuses to consume a
// keyword as an identifier, which gives exactly that behavior (the chain
// simply stops, leaving a dangling MemberExpression).
func (p *Parser) parseReferenceExpression() *cst.Node {
	start := p.cur.Range.Start
	expr := p.parseIdentifier()
	for p.check(token.Dot) {
		p.Advance()
		member := cst.NewNode(cst.KindMemberExpression, start)
		member.AddChild(expr)
		member.AddChild(p.parseIdentifier())
		expr = p.finishNode(member)
	}
	if p.check(token.OpenAngle) {
		ref := cst.NewNode(cst.KindTypeReference, start)
		ref.AddChild(expr)
		p.Advance()
		args := list.Parse(cfgTemplateArguments, p, p.parseExpression)
		for _, a := range args {
			ref.AddChild(a)
		}
		p.expectCloseAngle()
		return p.finishNode(ref)
	}
	return expr
}

// expectCloseAngle consumes a `>` closing a template argument list,
// splitting a `>=` token into `>` and `=` (the scanner has no `>>` token),
// the way the teacher's expectGT/splitShiftToken pair does for Java's
// generics.
func (p *Parser) expectCloseAngle() {
	switch p.Peek() {
	case token.CloseAngle:
		p.Advance()
	case token.GreaterThanEquals:
		// Split `>=` into `>` (consumed) + `=` (left for the caller).
		tok := p.cur
		p.cur = token.Token{Kind: token.Equals, Range: tok.Range, Literal: "="}
		p.cur.Range.Start++
	default:
		p.reportTokenExpected("expected", token.CloseAngle)
	}
}

func (p *Parser) parseTupleExpression() *cst.Node {
	n := p.startNode(cst.KindTupleExpression)
	p.Advance() // `[`
	items := list.Parse(cfgTuple, p, p.parseExpression)
	for _, it := range items {
		n.AddChild(it)
	}
	p.expect(token.CloseBracket)
	return p.finishNode(n)
}

func (p *Parser) parseModelExpression() *cst.Node {
	n := p.startNode(cst.KindModelExpression)
	p.Advance() // `{`
	items := list.Parse(cfgModelProperties, p, p.parseModelPropertyOrSpread)
	for _, it := range items {
		n.AddChild(it)
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

func (p *Parser) parseModelPropertyOrSpread() *cst.Node {
	if p.check(token.DotDotDot) {
		n := p.startNode(cst.KindModelSpreadProperty)
		p.Advance()
		n.AddChild(p.parseExpression())
		return p.finishNode(n)
	}
	return p.parseModelProperty()
}

// parseModelProperty parses `@dec* id ?? : type (= default)?`. Whether the
// property is optional is recorded by stashing the `?` token on the node
// itself (nil when absent) rather than adding a bit to cst.Flags, which is
// reserved for the error/synthetic bookkeeping spec §3 defines; IsOptional
// below is the canonical reader.
func (p *Parser) parseModelProperty() *cst.Node {
	n := p.startNode(cst.KindModelProperty)
	for p.check(token.At) {
		n.AddChild(p.parseDecorator())
	}
	n.AddChild(p.parseIdentifier())
	if p.check(token.Question) {
		tok := p.cur
		n.Token = &tok
		p.Advance()
	}
	p.expect(token.Colon)
	n.AddChild(p.parseExpression())
	if p.match(token.Equals) {
		n.AddChild(p.parseExpression())
		if n.Token == nil {
			p.report(diagnosticDefaultOptional(p.prevEnd))
		}
	}
	return p.finishNode(n)
}

// IsOptional reports whether a ModelProperty/FunctionParameter node carries
// a `?`.
func IsOptional(n *cst.Node) bool { return n.Token != nil && n.Token.Kind == token.Question }
