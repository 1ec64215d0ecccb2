package printer

import "github.com/adl-lang/adl/internal/cst"

// partitionPrelude separates a declaration node's children into its
// doc/directive/decorator prelude and everything else, preserving the
// relative order of the "everything else" children. Declarations.go mixes
// prelude children in at different positions depending on statement shape
// (docs prepended, directives/decorators appended near the end), so a
// position-independent partition is simpler for printing than replaying the
// exact construction order.
func partitionPrelude(n *cst.Node) (docs, directives, decorators, rest []*cst.Node) {
	for _, c := range n.Children {
		switch c.Kind {
		case cst.KindDoc:
			docs = append(docs, c)
		case cst.KindDirectiveExpression:
			directives = append(directives, c)
		case cst.KindDecoratorExpression:
			decorators = append(decorators, c)
		default:
			rest = append(rest, c)
		}
	}
	return
}

func (p *Printer) printPrelude(docs, directives, decorators []*cst.Node) {
	for _, d := range docs {
		p.printDoc(d)
	}
	for _, d := range directives {
		p.printDirective(d)
		p.newline()
	}
	for _, d := range decorators {
		p.printDecorator(d)
		p.newline()
	}
}

func (p *Printer) printNode(n *cst.Node) {
	switch n.Kind {
	case cst.KindModelStatement:
		p.printModelStatement(n)
	case cst.KindScalarStatement:
		p.printScalarStatement(n)
	case cst.KindNamespaceStatement:
		p.printNamespaceStatement(n)
	case cst.KindInterfaceStatement:
		p.printInterfaceStatement(n)
	case cst.KindUnionStatement:
		p.printUnionStatement(n)
	case cst.KindOperationStatement:
		p.printOperationStatement(n)
	case cst.KindEnumStatement:
		p.printEnumStatement(n)
	case cst.KindAliasStatement:
		p.printAliasStatement(n)
	case cst.KindUsingStatement:
		p.printUsingStatement(n)
	case cst.KindImportStatement:
		p.printImportStatement(n)
	case cst.KindAugmentDecoratorStatement:
		p.printAugmentDecoratorStatement(n)
	case cst.KindFunctionDeclarationStatement:
		p.printFunctionDeclaration(n)
	case cst.KindDecoratorDeclarationStatement:
		p.printDecoratorDeclaration(n)
	case cst.KindProjectionStatement:
		p.printProjectionStatement(n)
	case cst.KindEmptyStatement:
		p.write(";")
		p.newline()
	case cst.KindInvalidStatement:
		p.write("/* invalid */")
		p.newline()
	default:
		p.printExpr(n)
	}
}

func splitTemplateParams(rest []*cst.Node) (tps []*cst.Node, remainder []*cst.Node) {
	i := 0
	for i < len(rest) && rest[i].Kind == cst.KindTemplateParameter {
		i++
	}
	return rest[:i], rest[i:]
}

func (p *Printer) printTemplateParams(tps []*cst.Node) {
	if len(tps) == 0 {
		return
	}
	p.write("<")
	for i, tp := range tps {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(tp.Children[0])
		rest := tp.Children[1:]
		if len(rest) > 0 {
			p.write(" extends ")
			p.printExpr(rest[0])
			rest = rest[1:]
		}
		if len(rest) > 0 {
			p.write(" = ")
			p.printExpr(rest[0])
		}
	}
	p.write(">")
}

func (p *Printer) printModelStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("model ")
	p.printExpr(rest[0])
	tps, rest := splitTemplateParams(rest[1:])
	p.printTemplateParams(tps)

	var members []*cst.Node
	i := 0
	for i < len(rest) && rest[i].Kind != cst.KindModelProperty && rest[i].Kind != cst.KindModelSpreadProperty {
		if i == 0 {
			p.write(" extends ")
		} else {
			p.write(" is ")
		}
		p.printExpr(rest[i])
		i++
	}
	members = rest[i:]

	if members == nil && i == len(rest) {
		p.write(";")
		p.newline()
		return
	}
	p.write(" {")
	p.newline()
	p.indent++
	for _, m := range members {
		p.printModelMember(m)
	}
	p.indent--
	p.write("}")
	p.newline()
}

func (p *Printer) printModelMember(n *cst.Node) {
	if n.Kind == cst.KindModelSpreadProperty {
		p.write("...")
		p.printExpr(n.Children[0])
		p.write(";")
		p.newline()
		return
	}
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.printExpr(rest[0])
	if isOptionalToken(n) {
		p.write("?")
	}
	p.write(": ")
	p.printExpr(rest[1])
	if len(rest) > 2 {
		p.write(" = ")
		p.printExpr(rest[2])
	}
	p.write(";")
	p.newline()
}

func isOptionalToken(n *cst.Node) bool {
	return n.Token != nil && n.TokenLiteral() == "?"
}

func (p *Printer) printScalarStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("scalar ")
	p.printExpr(rest[0])
	tps, rest := splitTemplateParams(rest[1:])
	p.printTemplateParams(tps)
	if len(rest) > 0 {
		p.write(" extends ")
		p.printExpr(rest[0])
	}
	p.write(";")
	p.newline()
}

func (p *Printer) printNamespaceStatement(n *cst.Node) {
	docs, directives, decorators, _ := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("namespace ")
	names := []string{}
	cur := n
	for {
		inner, id := splitNamespaceChild(cur)
		names = append(names, id.TokenLiteral())
		if inner == nil {
			break
		}
		cur = inner
	}
	for i, nm := range names {
		if i > 0 {
			p.write(".")
		}
		p.write(nm)
	}

	_, _, _, innerRest := partitionPrelude(cur)
	body := innerRest[1:]
	if len(body) == 0 {
		p.write(";")
		p.newline()
		return
	}
	p.write(" {")
	p.newline()
	p.indent++
	for _, s := range body {
		p.printNode(s)
	}
	p.indent--
	p.write("}")
	p.newline()
}

// splitNamespaceChild returns the nested NamespaceStatement child (if any)
// and this level's own identifier.
func splitNamespaceChild(n *cst.Node) (inner, id *cst.Node) {
	for _, c := range n.Children {
		if c.Kind == cst.KindIdentifier {
			id = c
		}
		if c.Kind == cst.KindNamespaceStatement {
			inner = c
		}
	}
	return
}

func (p *Printer) printInterfaceStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("interface ")
	p.printExpr(rest[0])
	tps, rest := splitTemplateParams(rest[1:])
	p.printTemplateParams(tps)

	var extends []*cst.Node
	i := 0
	for i < len(rest) && rest[i].Kind != cst.KindOperationStatement {
		extends = append(extends, rest[i])
		i++
	}
	if len(extends) > 0 {
		p.write(" extends ")
		for j, e := range extends {
			if j > 0 {
				p.write(", ")
			}
			p.printExpr(e)
		}
	}
	p.write(" {")
	p.newline()
	p.indent++
	for _, m := range rest[i:] {
		p.printOperationStatement(m)
	}
	p.indent--
	p.write("}")
	p.newline()
}

func (p *Printer) printUnionStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("union ")
	p.printExpr(rest[0])
	tps, rest := splitTemplateParams(rest[1:])
	p.printTemplateParams(tps)
	p.write(" {")
	p.newline()
	p.indent++
	for _, v := range rest {
		p.printUnionVariant(v)
	}
	p.indent--
	p.write("}")
	p.newline()
}

func (p *Printer) printUnionVariant(n *cst.Node) {
	_, _, decorators, rest := partitionPrelude(n)
	p.printDecorators(decorators)
	if len(rest) == 2 {
		p.printExpr(rest[0])
		p.write(": ")
		p.printExpr(rest[1])
	} else {
		p.printExpr(rest[0])
	}
	p.write(";")
	p.newline()
}

func (p *Printer) printOperationStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("op ")
	p.printOperationSignature(rest)
}

func (p *Printer) printOperationSignature(rest []*cst.Node) {
	p.printExpr(rest[0])
	tps, rest := splitTemplateParams(rest[1:])
	p.printTemplateParams(tps)

	if len(rest) == 1 && rest[0].Kind == cst.KindOperationSignatureReference {
		p.write(" is ")
		p.printExpr(rest[0].Children[0])
		p.write(";")
		p.newline()
		return
	}
	decl := rest[0]
	p.write("(")
	for i, param := range decl.Children {
		if param.Kind == cst.KindFunctionParameter {
			if i > 0 {
				p.write(", ")
			}
			p.printFunctionParameter(param)
		}
	}
	p.write(")")
	for _, c := range decl.Children {
		if c.Kind != cst.KindFunctionParameter {
			p.write(": ")
			p.printExpr(c)
		}
	}
	p.write(";")
	p.newline()
}

func (p *Printer) printFunctionParameter(n *cst.Node) {
	_, _, decorators, rest := partitionPrelude(n)
	for _, d := range decorators {
		p.printDecorator(d)
		p.write(" ")
	}
	isRest := false
	var realRest []*cst.Node
	for _, c := range rest {
		if c.Kind == cst.KindFunctionParameter && c.Flags.Has(cst.Synthetic) && len(c.Children) == 0 {
			isRest = true
			continue
		}
		realRest = append(realRest, c)
	}
	if isRest {
		p.write("...")
	}
	p.printExpr(realRest[0])
	if isOptionalToken(n) {
		p.write("?")
	}
	p.write(": ")
	p.printExpr(realRest[1])
	if len(realRest) > 2 {
		p.write(" = ")
		p.printExpr(realRest[2])
	}
}

func (p *Printer) printEnumStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("enum ")
	p.printExpr(rest[0])
	p.write(" {")
	p.newline()
	p.indent++
	for _, m := range rest[1:] {
		p.printEnumMember(m)
	}
	p.indent--
	p.write("}")
	p.newline()
}

func (p *Printer) printEnumMember(n *cst.Node) {
	if n.Kind == cst.KindEnumSpreadMember {
		p.write("...")
		p.printExpr(n.Children[0])
		p.write(";")
		p.newline()
		return
	}
	_, _, decorators, rest := partitionPrelude(n)
	p.printDecorators(decorators)
	p.printExpr(rest[0])
	if len(rest) > 1 {
		p.write(": ")
		p.printExpr(rest[1])
	}
	p.write(";")
	p.newline()
}

func (p *Printer) printAliasStatement(n *cst.Node) {
	docs, directives, decorators, rest := partitionPrelude(n)
	p.printPrelude(docs, directives, decorators)
	p.write("alias ")
	p.printExpr(rest[0])
	tps, rest := splitTemplateParams(rest[1:])
	p.printTemplateParams(tps)
	p.write(" = ")
	p.printExpr(rest[0])
	p.write(";")
	p.newline()
}

func (p *Printer) printUsingStatement(n *cst.Node) {
	_, _, _, rest := partitionPrelude(n)
	p.write("using ")
	for i, id := range rest {
		if i > 0 {
			p.write(".")
		}
		p.printExpr(id)
	}
	p.write(";")
	p.newline()
}

func (p *Printer) printImportStatement(n *cst.Node) {
	p.write("import ")
	p.printExpr(n.Children[0])
	p.write(";")
	p.newline()
}

func (p *Printer) printAugmentDecoratorStatement(n *cst.Node) {
	p.write("@@")
	p.printExpr(n.Children[0])
	p.write("(")
	for i, a := range n.Children[1:] {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(a)
	}
	p.write(")")
	p.write(";")
	p.newline()
}

func (p *Printer) printFunctionDeclaration(n *cst.Node) {
	if n.Token != nil {
		p.write("extern ")
	}
	_, _, _, rest := partitionPrelude(n)
	p.write("fn ")
	p.printExpr(rest[0])
	p.write("(")
	var ret *cst.Node
	first := true
	for _, c := range rest[1:] {
		if c.Kind == cst.KindFunctionParameter {
			if !first {
				p.write(", ")
			}
			p.printFunctionParameter(c)
			first = false
		} else {
			ret = c
		}
	}
	p.write(")")
	if ret != nil {
		p.write(": ")
		p.printExpr(ret)
	}
	p.write(";")
	p.newline()
}

func (p *Printer) printDecoratorDeclaration(n *cst.Node) {
	if n.Token != nil {
		p.write("extern ")
	}
	_, _, _, rest := partitionPrelude(n)
	p.write("dec ")
	p.printExpr(rest[0])
	p.write("(")
	for i, c := range rest[1:] {
		if i > 0 {
			p.write(", ")
		}
		p.printFunctionParameter(c)
	}
	p.write(")")
	p.write(";")
	p.newline()
}

func (p *Printer) printProjectionStatement(n *cst.Node) {
	selector := n.Children[0]
	p.write("projection ")
	p.printSelector(selector)
	p.write(" #")
	p.printExpr(n.Children[1])
	p.write(" {")
	p.newline()
	p.indent++
	for _, clause := range n.Children[2:] {
		p.printProjectionClause(clause)
	}
	p.indent--
	p.write("}")
	p.newline()
}

func (p *Printer) printSelector(sel *cst.Node) {
	switch sel.Kind {
	case cst.KindProjectionModelSelector:
		p.write("model")
	case cst.KindProjectionOperationSelector:
		p.write("op")
	case cst.KindProjectionInterfaceSelector:
		p.write("interface")
	case cst.KindProjectionUnionSelector:
		p.write("union")
	case cst.KindProjectionEnumSelector:
		p.write("enum")
	case cst.KindProjectionExpressionSelector:
		p.printExpr(sel.Children[0])
	}
}

func (p *Printer) printProjectionClause(n *cst.Node) {
	// The parser stashes the clause's `to`/`from` keyword on the Projection
	// node's Token; parameters then a block follow it, matching what
	// internal/projection built.
	if n.Token != nil {
		p.write(n.TokenLiteral())
	}
	p.write("(")
	params, body := splitProjectionClauseChildren(n)
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(param.Children[0])
	}
	p.write(") {")
	p.newline()
	p.indent++
	if body != nil {
		for _, stmt := range body.Children {
			p.printProjectionNode(stmt)
		}
	}
	p.indent--
	p.write("}")
	p.newline()
}

func splitProjectionClauseChildren(n *cst.Node) (params []*cst.Node, body *cst.Node) {
	for _, c := range n.Children {
		if c.Kind == cst.KindProjectionParameterDeclaration {
			params = append(params, c)
		} else if c.Kind == cst.KindProjectionBlockExpression {
			body = c
		}
	}
	return
}
