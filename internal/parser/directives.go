package parser

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/token"
)

// parseDirective parses `#name args… ` terminated by a newline. Newline is
// normally trivia (spec §3) but becomes significant for the duration of
// this call so the argument list ends at end-of-line rather than
// swallowing the next statement.
func (p *Parser) parseDirective(invalidTarget string) *cst.Node {
	n := p.startNode(cst.KindDirectiveExpression)
	p.Advance() // `#`

	wasTrivia := p.newLineIsTrivia
	p.newLineIsTrivia = false
	defer func() { p.newLineIsTrivia = wasTrivia }()

	name := p.parseIdentifier()
	n.AddChild(name)
	if lit := name.TokenLiteral(); lit != "suppress" && lit != "" && !name.IsError() {
		p.report(diagnosticUnknownDirective(name.Range.Start, lit))
	}

	for !p.check(token.NewLine) && !p.AtEOF() && !p.check(token.Semicolon) {
		progress := p.mustProgress()
		n.AddChild(p.parseExpression())
		if !progress() {
			break
		}
	}
	if p.check(token.NewLine) {
		p.Advance()
	}
	return p.finishNode(n)
}

// parseDirectiveList reads zero or more leading `#directive` preludes.
func (p *Parser) parseDirectiveList() []*cst.Node {
	var dirs []*cst.Node
	for p.check(token.Hash) {
		dirs = append(dirs, p.parseDirective(""))
	}
	return dirs
}
