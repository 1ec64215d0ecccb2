package printer

import "github.com/adl-lang/adl/internal/cst"

func (p *Printer) printExpr(n *cst.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case cst.KindIdentifier, cst.KindStringLiteral, cst.KindNumericLiteral, cst.KindBooleanLiteral,
		cst.KindVoidKeyword, cst.KindNeverKeyword, cst.KindUnknownKeyword:
		p.write(n.TokenLiteral())
	case cst.KindMemberExpression:
		p.printExpr(n.Children[0])
		p.write(".")
		p.printExpr(n.Children[1])
	case cst.KindTypeReference:
		p.printExpr(n.Children[0])
		p.write("<")
		for i, a := range n.Children[1:] {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(a)
		}
		p.write(">")
	case cst.KindUnionExpression:
		for i, c := range n.Children {
			if i > 0 {
				p.write(" | ")
			}
			p.printExpr(c)
		}
	case cst.KindIntersectionExpression:
		for i, c := range n.Children {
			if i > 0 {
				p.write(" & ")
			}
			p.printExpr(c)
		}
	case cst.KindArrayExpression:
		p.printExpr(n.Children[0])
		p.write("[]")
	case cst.KindTupleExpression:
		p.write("[")
		for i, c := range n.Children {
			if i > 0 {
				p.write(", ")
			}
			p.printExpr(c)
		}
		p.write("]")
	case cst.KindModelExpression:
		p.write("{ ")
		for i, c := range n.Children {
			if i > 0 {
				p.write(", ")
			}
			p.printModelExpressionMember(c)
		}
		p.write(" }")
	case cst.KindModelProperty:
		p.printModelExpressionMember(n)
	case cst.KindModelSpreadProperty:
		p.write("...")
		p.printExpr(n.Children[0])
	case cst.KindDecoratorExpression:
		p.printDecorator(n)
	case cst.KindInvalidStatement:
		p.write("/* invalid */")
	default:
		p.write(n.TokenLiteral())
	}
}

func (p *Printer) printModelExpressionMember(n *cst.Node) {
	_, _, decorators, rest := partitionPrelude(n)
	for _, d := range decorators {
		p.printDecorator(d)
		p.write(" ")
	}
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
}

// printProjectionNode renders a node from the embedded projection
// expression sub-language (internal/projection). It is kept separate from
// printExpr since projection nodes use their own Kind catalog.
func (p *Printer) printProjectionNode(n *cst.Node) {
	switch n.Kind {
	case cst.KindProjectionExpressionStatement:
		inner := n.Children[0]
		if inner.Kind == cst.KindProjectionIfExpression {
			p.printProjectionIf(inner)
			return
		}
		p.printProjectionExpr(inner)
		p.write(";")
		p.newline()
	case cst.KindProjectionIfExpression:
		p.printProjectionIf(n)
	default:
		p.printProjectionExpr(n)
		p.newline()
	}
}

func (p *Printer) printProjectionIf(n *cst.Node) {
	p.write("if ")
	p.printProjectionExpr(n.Children[0])
	p.write(" {")
	p.newline()
	p.indent++
	p.printProjectionBlockBody(n.Children[1])
	p.indent--
	p.write("}")
	if len(n.Children) > 2 {
		p.write(" else ")
		els := n.Children[2]
		if els.Kind == cst.KindProjectionIfExpression {
			p.printProjectionIf(els)
			return
		}
		p.write("{")
		p.newline()
		p.indent++
		p.printProjectionBlockBody(els)
		p.indent--
		p.write("}")
	}
	p.newline()
}

func (p *Printer) printProjectionBlockBody(block *cst.Node) {
	if block == nil || block.Kind != cst.KindProjectionBlockExpression {
		return
	}
	for _, s := range block.Children {
		p.printProjectionNode(s)
	}
}

func (p *Printer) printProjectionExpr(n *cst.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case cst.KindIdentifier, cst.KindStringLiteral, cst.KindNumericLiteral, cst.KindBooleanLiteral:
		p.write(n.TokenLiteral())
	case cst.KindProjectionReturnExpression:
		p.write("return ")
		if len(n.Children) > 0 {
			p.printProjectionExpr(n.Children[0])
		}
	case cst.KindProjectionLogicalExpression, cst.KindProjectionEqualityExpression,
		cst.KindProjectionRelationalExpression, cst.KindProjectionArithmeticExpression:
		for i, c := range n.Children {
			if i > 0 {
				p.write(" " + n.TokenLiteral() + " ")
			}
			p.printProjectionExpr(c)
		}
	case cst.KindProjectionUnaryExpression:
		p.write(n.TokenLiteral())
		p.printProjectionExpr(n.Children[0])
	case cst.KindProjectionMemberExpression:
		p.printProjectionExpr(n.Children[0])
		if n.Token != nil {
			p.write("::")
		} else {
			p.write(".")
		}
		p.printProjectionExpr(n.Children[1])
	case cst.KindProjectionCallExpression:
		p.printProjectionExpr(n.Children[0])
		p.write("(")
		for i, a := range n.Children[1:] {
			if i > 0 {
				p.write(", ")
			}
			p.printProjectionExpr(a)
		}
		p.write(")")
	case cst.KindProjectionDecoratorReferenceExpression:
		p.write("@")
		p.printProjectionExpr(n.Children[0])
	case cst.KindProjectionTupleExpression:
		p.write("[")
		for i, c := range n.Children {
			if i > 0 {
				p.write(", ")
			}
			p.printProjectionExpr(c)
		}
		p.write("]")
	case cst.KindProjectionModelExpression:
		p.write("{ ")
		for i, c := range n.Children {
			if i > 0 {
				p.write(", ")
			}
			// c is a ProjectionMemberExpression built as a key/value pair
			// (not a true member access), so render it "key: value".
			p.printProjectionExpr(c.Children[0])
			p.write(": ")
			p.printProjectionExpr(c.Children[1])
		}
		p.write(" }")
	case cst.KindProjectionLambdaExpression:
		params := n.Children[:len(n.Children)-1]
		body := n.Children[len(n.Children)-1]
		p.write("(")
		for i, param := range params {
			if i > 0 {
				p.write(", ")
			}
			p.printProjectionExpr(param.Children[0])
		}
		p.write(") => ")
		p.printProjectionExpr(body)
	case cst.KindProjectionLambdaParameter, cst.KindProjectionParameterDeclaration:
		p.printProjectionExpr(n.Children[0])
	case cst.KindProjectionIfExpression:
		p.printProjectionIf(n)
	default:
		p.write(n.TokenLiteral())
	}
}
