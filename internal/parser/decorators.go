package parser

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/list"
	"github.com/adl-lang/adl/internal/token"
)

// parseDecorator parses `@name(args...)` or a bare `@name`.
func (p *Parser) parseDecorator() *cst.Node {
	n := p.startNode(cst.KindDecoratorExpression)
	p.Advance() // `@`
	n.AddChild(p.parseReferenceExpression())
	if p.check(token.OpenParen) {
		p.Advance()
		args := list.Parse(cfgDecoratorArguments, p, p.parseExpression)
		for _, a := range args {
			n.AddChild(a)
		}
		p.expect(token.CloseParen)
	}
	return p.finishNode(n)
}

// parseDecoratorList reads zero or more leading `@decorator` preludes.
func (p *Parser) parseDecoratorList() []*cst.Node {
	var decs []*cst.Node
	for p.check(token.At) {
		decs = append(decs, p.parseDecorator())
	}
	return decs
}

// parseAugmentDecoratorStatement parses `@@name(target, args...);` per spec
// §4.3. The first argument must be a type reference; if it is not, it is
// replaced with a synthetic missing reference and augment-decorator-target
// is reported.
func (p *Parser) parseAugmentDecoratorStatement() *cst.Node {
	n := p.startNode(cst.KindAugmentDecoratorStatement)
	p.Advance() // `@@`
	n.AddChild(p.parseReferenceExpression())
	p.expect(token.OpenParen)

	first := true
	args := list.Parse(cfgDecoratorArguments, p, func() *cst.Node {
		arg := p.parseExpression()
		if first {
			first = false
			if arg.Kind != cst.KindIdentifier && arg.Kind != cst.KindMemberExpression && arg.Kind != cst.KindTypeReference {
				p.report(diagnosticAugmentDecoratorTarget(arg.Range.Start))
				synthetic := cst.NewNode(cst.KindIdentifier, arg.Range.Start)
				synthetic.Flags |= cst.Synthetic | cst.ThisNodeHasError
				synthetic.Token = &token.Token{Kind: token.Identifier, Literal: p.nextMissingIdentifier()}
				return synthetic
			}
		}
		return arg
	})
	if len(args) == 0 {
		p.reportTokenExpected("expected", token.Identifier)
	}
	for _, a := range args {
		n.AddChild(a)
	}
	p.expect(token.CloseParen)
	p.expect(token.Semicolon)
	return p.finishNode(n)
}
