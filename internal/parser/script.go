package parser

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/token"
)

// ParseScript parses the whole input as a top-level statement list, per
// spec §4.3's top-level driver.
func (p *Parser) ParseScript() *cst.Node {
	n := p.startNode(cst.KindScript)
	seenImport := false
	seenDeclaration := false
	seenBlocklessNamespace := false

	for !p.AtEOF() {
		progress := p.mustProgress()
		stmt := p.parseStatement(true)
		if stmt != nil {
			n.AddChild(stmt)
			p.checkTopLevelOrdering(stmt, &seenImport, &seenDeclaration, &seenBlocklessNamespace)
		}
		if !progress() {
			// Nothing was consumed; force progress to avoid looping
			// forever on a token parseStatement could not handle.
			p.Advance()
		}
	}
	return p.finishNode(n)
}

func (p *Parser) checkTopLevelOrdering(stmt *cst.Node, seenImport, seenDeclaration, seenBlocklessNamespace *bool) {
	switch stmt.Kind {
	case cst.KindImportStatement:
		if *seenDeclaration || *seenBlocklessNamespace {
			p.report(diagnosticImportFirst(stmt.Range.Start, "topLevel"))
		}
		*seenImport = true
	case cst.KindNamespaceStatement:
		if IsBlocklessNamespace(stmt) {
			if *seenBlocklessNamespace {
				p.report(diagnosticMultipleBlocklessNamespace(stmt.Range.Start))
			}
			if *seenDeclaration {
				p.report(diagnosticBlocklessNamespaceFirst(stmt.Range.Start, "topLevel"))
			}
			*seenBlocklessNamespace = true
		} else {
			*seenDeclaration = true
		}
	default:
		*seenDeclaration = true
	}
}

// parseStatementList parses a `{ statement* }` block body, used by
// namespace and interface-less blocks; it is shared between namespace
// bodies and (indirectly) block-level parsing.
func (p *Parser) parseStatementList(topLevel bool) []*cst.Node {
	var stmts []*cst.Node
	seenImport := false
	seenDeclaration := false
	seenBlocklessNamespace := false
	for !p.check(token.CloseBrace) && !p.AtEOF() {
		progress := p.mustProgress()
		stmt := p.parseStatement(false)
		if stmt != nil {
			stmts = append(stmts, stmt)
			if stmt.Kind == cst.KindImportStatement {
				p.report(diagnosticImportFirst(stmt.Range.Start, "block"))
			}
			p.checkTopLevelOrdering(stmt, &seenImport, &seenDeclaration, &seenBlocklessNamespace)
		}
		if !progress() {
			p.Advance()
		}
	}
	return stmts
}

// parseStatement reads the doc/directive/decorator prelude then dispatches
// on the next token per spec §4.3's table.
func (p *Parser) parseStatement(topLevel bool) *cst.Node {
	docs := p.takePendingDocs()
	directives := p.parseDirectiveList()
	decorators := p.parseDecoratorList()

	attach := func(n *cst.Node) *cst.Node {
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

	rejectDecorators := func(what string) {
		if len(decorators) > 0 {
			p.reportInvalidDecoratorLocation()
		}
		_ = what
	}

	switch p.Peek() {
	case token.AtAt:
		rejectDecorators("augment decorator")
		return attach(p.parseAugmentDecoratorStatement())
	case token.ImportKeyword:
		rejectDecorators("import")
		return attach(p.parseImportStatement())
	case token.ModelKeyword:
		return attach(p.parseModelStatement())
	case token.ScalarKeyword:
		return attach(p.parseScalarStatement())
	case token.NamespaceKeyword:
		// Namespace decorators attach to the innermost (last-dotted-
		// segment) NamespaceStatement per spec §4.3, not to the outer
		// chain root attach() would otherwise wrap — so this bypasses
		// attach() and threads the prelude through directly.
		return p.parseNamespaceStatement(docs, directives, decorators)
	case token.InterfaceKeyword:
		return attach(p.parseInterfaceStatement())
	case token.UnionKeyword:
		return attach(p.parseUnionStatement())
	case token.OpKeyword:
		return attach(p.parseOperationStatement())
	case token.EnumKeyword:
		return attach(p.parseEnumStatement())
	case token.AliasKeyword:
		rejectDecorators("alias")
		return attach(p.parseAliasStatement())
	case token.UsingKeyword:
		rejectDecorators("using")
		return attach(p.parseUsingStatement())
	case token.ProjectionKeyword:
		rejectDecorators("projection")
		return attach(p.parseProjectionStatement())
	case token.ExternKeyword, token.FnKeyword, token.DecKeyword:
		return attach(p.parseModifiedDeclaration())
	case token.Semicolon:
		rejectDecorators("empty statement")
		n := p.startNode(cst.KindEmptyStatement)
		p.Advance()
		return attach(p.finishNode(n))
	default:
		return attach(p.parseInvalidStatement())
	}
}

// takePendingDocs drains and returns docs collected by advanceRaw since the
// last statement, attaching them to whatever statement follows.
func (p *Parser) takePendingDocs() []*cst.Node {
	docs := p.pendingDocs
	p.pendingDocs = nil
	return docs
}

// parseInvalidStatement consumes tokens until a statement keyword, `@`,
// `;`, or EOF, emitting one token-expected diagnostic for the whole span
// (spec §4.3's fallback row).
func (p *Parser) parseInvalidStatement() *cst.Node {
	n := p.startNode(cst.KindInvalidStatement)
	n.Flags |= cst.ThisNodeHasError
	p.report(diagnosticStatementExpected(p.cur.Range.Start))
	for !p.AtEOF() && !token.IsStatementKeyword(p.Peek()) &&
		p.Peek() != token.At && p.Peek() != token.AtAt && p.Peek() != token.Semicolon {
		p.Advance()
	}
	return p.finishNode(n)
}
