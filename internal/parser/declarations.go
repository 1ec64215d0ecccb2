package parser

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/list"
	"github.com/adl-lang/adl/internal/projection"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// sourceRangeFrom builds a source.Range from a start/end position pair, used
// to carve out the exact sub-range a projection parameter list or body
// occupies before handing it to internal/projection.
func sourceRangeFrom(start, end source.Pos) source.Range {
	return source.Range{Start: start, End: end}
}

// parseNamespaceStatement parses `namespace A.B.C { ... }` or `namespace
// A.B.C;`, decomposing the dotted name into a chain of nested
// NamespaceStatement nodes sharing the same source range, per spec §4.3.
// prelude (docs/directives/decorators) attaches only to the innermost
// (last) segment.
func (p *Parser) parseNamespaceStatement(docs, directives, decorators []*cst.Node) *cst.Node {
	start := p.cur.Range.Start
	p.Advance() // `namespace`
	ids := p.parseDottedName()

	var body []*cst.Node
	blockless := false
	if p.check(token.OpenBrace) {
		p.Advance()
		body = p.parseStatementList(false)
		p.expect(token.CloseBrace)
	} else {
		p.expect(token.Semicolon)
		blockless = true
	}

	// Build from the innermost segment outward so the prelude and body can
	// be attached to the correct node.
	var inner *cst.Node
	for i := len(ids) - 1; i >= 0; i-- {
		n := cst.NewNode(cst.KindNamespaceStatement, start)
		n.Range.End = p.prevEnd
		n.AddChild(ids[i])
		if i == len(ids)-1 {
			for _, d := range docs {
				n.Children = append([]*cst.Node{d}, n.Children...)
			}
			for _, d := range directives {
				n.AddChild(d)
			}
			for _, d := range decorators {
				n.AddChild(d)
			}
			if !blockless {
				for _, s := range body {
					n.AddChild(s)
				}
			}
			// blockless leaf: no statements child added, matching
			// spec §3's "statements = undefined" terminator.
		} else {
			n.AddChild(inner)
		}
		inner = n
	}
	return inner
}

// IsBlocklessNamespace reports whether a NamespaceStatement node (as built
// by parseNamespaceStatement) has no braced body: the leaf of the chain
// carries no statement children beyond its identifier and any
// docs/directives/decorators, which this distinguishes by kind.
func IsBlocklessNamespace(n *cst.Node) bool {
	if n.Kind != cst.KindNamespaceStatement {
		return false
	}
	for _, c := range n.Children {
		if c.Kind == cst.KindNamespaceStatement {
			return IsBlocklessNamespace(c)
		}
	}
	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindIdentifier, cst.KindDecoratorExpression, cst.KindDirectiveExpression, cst.KindDocText,
			cst.KindDoc:
			continue
		default:
			return false
		}
	}
	return true
}

func (p *Parser) parseImportStatement() *cst.Node {
	n := p.startNode(cst.KindImportStatement)
	p.Advance() // `import`
	path := p.startNode(cst.KindStringLiteral)
	if p.check(token.StringLiteral) {
		tok := p.cur
		path.Token = &tok
		p.Advance()
	} else {
		path.Flags |= cst.ThisNodeHasError
		p.reportTokenExpected("expected", token.StringLiteral)
	}
	n.AddChild(p.finishNode(path))
	p.expect(token.Semicolon)
	return p.finishNode(n)
}

// parseTemplateParameters parses an optional `< T, U = default, ... >` list.
func (p *Parser) parseTemplateParameters() []*cst.Node {
	if !p.check(token.OpenAngle) {
		return nil
	}
	p.Advance()
	items := list.Parse(cfgTemplateParameters, p, func() *cst.Node {
		n := p.startNode(cst.KindTemplateParameter)
		n.AddChild(p.parseIdentifier())
		if p.match(token.ExtendsKeyword) {
			n.AddChild(p.parseExpression())
		}
		if p.match(token.Equals) {
			n.AddChild(p.parseExpression())
		}
		return p.finishNode(n)
	})
	p.expectCloseAngle()
	return items
}

// parseModelStatement parses `model id templates? (extends expr)? (is expr)?
// ({ props } | ;)` per spec §4.3.
func (p *Parser) parseModelStatement() *cst.Node {
	n := p.startNode(cst.KindModelStatement)
	p.Advance() // `model`
	n.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTemplateParameters() {
		n.AddChild(tp)
	}
	if p.match(token.ExtendsKeyword) {
		n.AddChild(p.parseExpression())
	}
	if p.match(token.IsKeyword) {
		n.AddChild(p.parseExpression())
	}
	if p.check(token.Semicolon) {
		p.Advance()
		return p.finishNode(n)
	}
	if p.expect(token.OpenBrace) == nil {
		n.Flags |= cst.ThisNodeHasError
	}
	items := list.Parse(cfgModelProperties, p, p.parseModelPropertyOrSpread)
	for _, it := range items {
		n.AddChild(it)
	}
	if p.expect(token.CloseBrace) == nil {
		n.Flags |= cst.ThisNodeHasError
	}
	return p.finishNode(n)
}

func (p *Parser) parseScalarStatement() *cst.Node {
	n := p.startNode(cst.KindScalarStatement)
	p.Advance() // `scalar`
	n.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTemplateParameters() {
		n.AddChild(tp)
	}
	if p.match(token.ExtendsKeyword) {
		n.AddChild(p.parseReferenceExpression())
	}
	p.expect(token.Semicolon)
	return p.finishNode(n)
}

func (p *Parser) parseInterfaceStatement() *cst.Node {
	n := p.startNode(cst.KindInterfaceStatement)
	p.Advance() // `interface`
	n.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTemplateParameters() {
		n.AddChild(tp)
	}
	if p.match(token.ExtendsKeyword) {
		for {
			n.AddChild(p.parseReferenceExpression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.expect(token.OpenBrace)
	items := list.Parse(cfgInterfaceMembers, p, p.parseInterfaceMember)
	for _, it := range items {
		n.AddChild(it)
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

// parseInterfaceMember parses one operation inside an interface body; the
// `op` keyword is tolerated but optional, per spec §4.3.
func (p *Parser) parseInterfaceMember() *cst.Node {
	docs := p.takePendingDocs()
	directives := p.parseDirectiveList()
	decorators := p.parseDecoratorList()
	p.match(token.OpKeyword)
	n := p.parseOperationSignature(false)
	for _, d := range docs {
		n.Children = append([]*cst.Node{d}, n.Children...)
	}
	for _, d := range directives {
		n.AddChild(d)
	}
	for _, d := range decorators {
		n.AddChild(d)
	}
	return n
}

func (p *Parser) parseUnionStatement() *cst.Node {
	n := p.startNode(cst.KindUnionStatement)
	p.Advance() // `union`
	n.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTemplateParameters() {
		n.AddChild(tp)
	}
	p.expect(token.OpenBrace)
	items := list.Parse(cfgUnionVariants, p, p.parseUnionVariant)
	for _, it := range items {
		n.AddChild(it)
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

func (p *Parser) parseUnionVariant() *cst.Node {
	n := p.startNode(cst.KindUnionVariant)
	for p.check(token.At) {
		n.AddChild(p.parseDecorator())
	}
	// `name: type` or a bare `type`.
	if p.check(token.Identifier) && p.peekIsColonAfterIdentifier() {
		n.AddChild(p.parseIdentifier())
		p.expect(token.Colon)
	}
	n.AddChild(p.parseExpression())
	return p.finishNode(n)
}

// peekIsColonAfterIdentifier looks one token past the current identifier
// for a colon, distinguishing `name: type` from a bare type reference that
// happens to start with an identifier. The parser only has lookahead-of-one
// over its own cursor (spec §4.1), so this scans ahead over a scoped
// sub-range of the underlying scanner and relies on Scanner.ScanRange to
// restore the real cursor position afterward, the same technique
// internal/doc and internal/projection use for their own nested scans.
func (p *Parser) peekIsColonAfterIdentifier() bool {
	isColon := false
	p.scan.ScanRange(source.Range{Start: p.curPos, End: source.Pos(p.file.Len())}, func() {
		tok := p.scan.Scan()
		for tok.Kind.IsTrivia() {
			tok = p.scan.Scan()
		}
		isColon = tok.Kind == token.Colon
	})
	return isColon
}

func (p *Parser) parseOperationStatement() *cst.Node {
	n := p.startNode(cst.KindOperationStatement)
	p.Advance() // `op`
	n.AddChild(p.parseOperationSignature(true))
	return p.finishNode(n)
}

// parseOperationSignature parses `id templates? (( params ) : returnType |
// is reference)`, producing an OperationSignatureDeclaration or
// OperationSignatureReference child depending on form, per spec §4.3.
// consumeSemicolon is true for the top-level `op …;` statement, where the
// trailing `;` belongs to the signature itself. Inside an interface body the
// `;`/`,` is the InterfaceMembers list delimiter, not part of the signature,
// so parseInterfaceMember passes false and lets the list driver consume and
// report it instead.
func (p *Parser) parseOperationSignature(consumeSemicolon bool) *cst.Node {
	op := p.startNode(cst.KindOperationStatement)
	op.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTemplateParameters() {
		op.AddChild(tp)
	}
	if p.match(token.IsKeyword) {
		ref := p.startNode(cst.KindOperationSignatureReference)
		ref.AddChild(p.parseReferenceExpression())
		op.AddChild(p.finishNode(ref))
	} else {
		decl := p.startNode(cst.KindOperationSignatureDeclaration)
		p.expect(token.OpenParen)
		params := list.Parse(cfgOperationParameters, p, p.parseFunctionParameter)
		validateParameterOrdering(p, params)
		for _, param := range params {
			decl.AddChild(param)
		}
		p.expect(token.CloseParen)
		if p.match(token.Colon) {
			decl.AddChild(p.parseExpression())
		}
		op.AddChild(p.finishNode(decl))
	}
	if consumeSemicolon {
		p.expect(token.Semicolon)
	}
	return p.finishNode(op)
}

// parseFunctionParameter parses `@dec* ...? id ?? : type (= default)?`.
func (p *Parser) parseFunctionParameter() *cst.Node {
	n := p.startNode(cst.KindFunctionParameter)
	for p.check(token.At) {
		n.AddChild(p.parseDecorator())
	}
	isRest := p.match(token.DotDotDot)
	n.AddChild(p.parseIdentifier())
	optional := p.check(token.Question)
	if optional {
		tok := p.cur
		n.Token = &tok
		p.Advance()
	}
	if isRest {
		restMarker := cst.NewNode(cst.KindFunctionParameter, n.Range.Start)
		restMarker.Flags |= cst.Synthetic
		n.AddChild(restMarker) // rest marker: presence signals `...`
		if optional {
			p.report(diagnosticRestParameterRequired(n.Range.Start))
		}
	}
	p.expect(token.Colon)
	n.AddChild(p.parseExpression())
	if p.match(token.Equals) {
		n.AddChild(p.parseExpression())
	} else if optional {
		// spec's default-required only applies to function/decorator
		// declarations with explicit parameter defaults required by
		// their own shape; bare optional operation parameters are fine
		// without a default.
	}
	return p.finishNode(n)
}

// IsRestParameter reports whether a FunctionParameter node was parsed with
// a leading `...`.
func IsRestParameter(n *cst.Node) bool {
	for _, c := range n.Children {
		if c.Kind == cst.KindFunctionParameter && c.Flags.Has(cst.Synthetic) && len(c.Children) == 0 {
			return true
		}
	}
	return false
}

// validateParameterOrdering enforces spec §4.3's rest/optional ordering
// invariants across a parsed parameter list.
func validateParameterOrdering(p *Parser, params []*cst.Node) {
	seenOptional := false
	for i, param := range params {
		rest := IsRestParameter(param)
		optional := IsOptional(param)
		if rest && i != len(params)-1 {
			p.report(diagnosticRestParameterLast(param.Range.Start))
		}
		if optional {
			seenOptional = true
		} else if seenOptional && !rest {
			p.report(diagnosticRequiredParameterFirst(param.Range.Start))
		}
	}
}

func (p *Parser) parseEnumStatement() *cst.Node {
	n := p.startNode(cst.KindEnumStatement)
	p.Advance() // `enum`
	n.AddChild(p.parseIdentifier())
	p.expect(token.OpenBrace)
	items := list.Parse(cfgEnumMembers, p, p.parseEnumMember)
	for _, it := range items {
		n.AddChild(it)
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

func (p *Parser) parseEnumMember() *cst.Node {
	if p.check(token.DotDotDot) {
		n := p.startNode(cst.KindEnumSpreadMember)
		p.Advance()
		n.AddChild(p.parseReferenceExpression())
		return p.finishNode(n)
	}
	n := p.startNode(cst.KindEnumMember)
	for p.check(token.At) {
		n.AddChild(p.parseDecorator())
	}
	n.AddChild(p.parseIdentifier())
	if p.match(token.Colon) {
		if !p.check(token.StringLiteral) && !p.check(token.NumericLiteral) {
			p.reportTokenExpected("expected", token.StringLiteral, token.NumericLiteral)
		}
		n.AddChild(p.parseExpression())
	}
	return p.finishNode(n)
}

func (p *Parser) parseAliasStatement() *cst.Node {
	n := p.startNode(cst.KindAliasStatement)
	p.Advance() // `alias`
	n.AddChild(p.parseIdentifier())
	for _, tp := range p.parseTemplateParameters() {
		n.AddChild(tp)
	}
	p.expect(token.Equals)
	n.AddChild(p.parseExpression())
	p.expect(token.Semicolon)
	return p.finishNode(n)
}

func (p *Parser) parseUsingStatement() *cst.Node {
	n := p.startNode(cst.KindUsingStatement)
	p.Advance() // `using`
	for _, id := range p.parseDottedName() {
		n.AddChild(id)
	}
	p.expect(token.Semicolon)
	return p.finishNode(n)
}

// parseModifiedDeclaration handles the `extern`/`fn`/`dec` prefix forms.
// `extern` accumulates into an ExternKeyword marker child; `fn`/`dec`
// dispatch to function/decorator declarations.
func (p *Parser) parseModifiedDeclaration() *cst.Node {
	var externTok *token.Token
	if p.check(token.ExternKeyword) {
		tok := p.cur
		externTok = &tok
		p.Advance()
	}
	var n *cst.Node
	switch p.Peek() {
	case token.FnKeyword:
		n = p.parseFunctionDeclaration()
	case token.DecKeyword:
		n = p.parseDecoratorDeclaration()
	default:
		n = p.errorNode(cst.KindInvalidStatement, "expected 'fn' or 'dec' after 'extern'",
			[]token.Kind{token.Semicolon})
	}
	if externTok != nil {
		n.Token = externTok
	}
	return n
}

// IsExtern reports whether a modified declaration carries the `extern`
// modifier.
func IsExtern(n *cst.Node) bool { return n.Token != nil && n.Token.Kind == token.ExternKeyword }

func (p *Parser) parseFunctionDeclaration() *cst.Node {
	n := p.startNode(cst.KindFunctionDeclarationStatement)
	p.Advance() // `fn`
	n.AddChild(p.parseIdentifier())
	p.expect(token.OpenParen)
	params := list.Parse(cfgFunctionParameters, p, p.parseFunctionParameter)
	validateParameterOrdering(p, params)
	for _, param := range params {
		n.AddChild(param)
	}
	p.expect(token.CloseParen)
	if p.match(token.Colon) {
		n.AddChild(p.parseExpression())
	}
	p.expect(token.Semicolon)
	return p.finishNode(n)
}

// parseDecoratorDeclaration parses `dec name(target, params...);`, requiring
// at least one (the target) non-optional parameter per spec §4.3.
func (p *Parser) parseDecoratorDeclaration() *cst.Node {
	n := p.startNode(cst.KindDecoratorDeclarationStatement)
	p.Advance() // `dec`
	n.AddChild(p.parseIdentifier())
	p.expect(token.OpenParen)
	params := list.Parse(cfgFunctionParameters, p, p.parseFunctionParameter)
	if len(params) == 0 {
		p.report(diagnosticDecoratorDeclTarget(n.Range.Start))
	} else if IsOptional(params[0]) {
		p.report(diagnosticDecoratorDeclTarget(params[0].Range.Start))
	}
	validateParameterOrdering(p, params)
	for _, param := range params {
		n.AddChild(param)
	}
	p.expect(token.CloseParen)
	p.expect(token.Semicolon)
	return p.finishNode(n)
}

// selectorKeywordKinds maps a selector keyword to its ProjectionXxxSelector
// node kind; a bare expression selector falls back to parseExpression.
var selectorKeywordKinds = map[token.Kind]cst.Kind{
	token.ModelKeyword:     cst.KindProjectionModelSelector,
	token.OpKeyword:        cst.KindProjectionOperationSelector,
	token.InterfaceKeyword: cst.KindProjectionInterfaceSelector,
	token.UnionKeyword:     cst.KindProjectionUnionSelector,
	token.EnumKeyword:      cst.KindProjectionEnumSelector,
}

// parseProjectionStatement parses `projection <selector> #<id> { (to|from)
// (params) { body } ... }`. The to/from bodies are scanned and parsed by
// the embedded projection expression sub-language (internal/projection)
// over the exact source range the block occupies, the same scoped-range
// technique internal/doc uses for doc comments.
func (p *Parser) parseProjectionStatement() *cst.Node {
	n := p.startNode(cst.KindProjectionStatement)
	p.Advance() // `projection`

	if kind, ok := selectorKeywordKinds[p.Peek()]; ok {
		sel := p.startNode(kind)
		p.Advance()
		n.AddChild(p.finishNode(sel))
	} else {
		sel := p.startNode(cst.KindProjectionExpressionSelector)
		sel.AddChild(p.parseExpression())
		n.AddChild(p.finishNode(sel))
	}

	p.expect(token.Hash)
	n.AddChild(p.parseIdentifier())

	p.expect(token.OpenBrace)
	seenTo, seenFrom := false, false
	for (p.check(token.ToKeyword) || p.check(token.FromKeyword)) && !p.AtEOF() {
		progress := p.mustProgress()
		isTo := p.check(token.ToKeyword)
		dirPos := p.cur.Range.Start
		dirTok := p.cur
		p.Advance()
		if isTo {
			if seenTo {
				p.report(diagnosticDuplicateSymbol(dirPos, "'to' clause"))
			}
			seenTo = true
		} else {
			if seenFrom {
				p.report(diagnosticDuplicateSymbol(dirPos, "'from' clause"))
			}
			seenFrom = true
		}
		n.AddChild(p.parseProjectionClause(dirTok))
		if !progress() {
			break
		}
	}
	p.expect(token.CloseBrace)
	return p.finishNode(n)
}

// parseProjectionClause parses one `(params) { body }` directional clause,
// delegating the parameter list and body to internal/projection over their
// own scoped sub-ranges. dirTok is the `to`/`from` keyword that introduced
// the clause; it is stashed on the node's own Token field (the same
// marker-stashing convention used for optional/rest/extern modifiers) so
// consumers such as the printer can tell the two clauses apart.
func (p *Parser) parseProjectionClause(dirTok token.Token) *cst.Node {
	n := p.startNode(cst.KindProjection)
	n.Token = &dirTok
	p.expect(token.OpenParen)
	paramsStart := p.prevEnd
	for !p.check(token.CloseParen) && !p.AtEOF() {
		progress := p.mustProgress()
		p.Advance()
		if !progress() {
			break
		}
	}
	paramsRange := sourceRangeFrom(paramsStart, p.cur.Range.Start)
	for _, param := range projection.ParseParameters(p.scan, paramsRange, p.sink) {
		n.AddChild(param)
	}
	p.expect(token.CloseParen)

	// The body range is handed to internal/projection whole, braces
	// included, since its own parseBlock expects to consume the opening
	// and closing brace itself (mirroring how internal/doc.Parse is given
	// a doc comment's full `/** ... */` span and strips the delimiters
	// itself).
	if !p.check(token.OpenBrace) {
		p.reportTokenExpected("expected", token.OpenBrace)
	}
	bodyStart := p.cur.Range.Start
	depth := 0
	for !p.AtEOF() {
		switch {
		case p.check(token.OpenBrace):
			depth++
			p.Advance()
		case p.check(token.CloseBrace):
			depth--
			p.Advance()
			if depth == 0 {
				goto bodyDone
			}
		default:
			p.Advance()
		}
	}
bodyDone:
	bodyRange := sourceRangeFrom(bodyStart, p.prevEnd)
	if block := projection.Parse(p.scan, bodyRange, p.sink); block != nil {
		n.AddChild(block)
	}
	return p.finishNode(n)
}
