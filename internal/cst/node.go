// Package cst defines the concrete syntax tree produced by the parser: a
// single tagged-variant Node type carrying a NodeKind, its source range,
// children, an optional terminal token, and a bitset of flags — rather than
// a Go interface implemented once per node kind. This keeps the tree
// homogeneous so tree utilities (internal/treeutil) can walk it without a
// type switch per caller.
package cst

import (
	"fmt"
	"strings"

	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// Kind identifies what a Node represents.
type Kind int

const (
	KindInvalid Kind = iota

	// Script root
	KindScript

	// Declarations
	KindModelStatement
	KindScalarStatement
	KindNamespaceStatement
	KindInterfaceStatement
	KindUnionStatement
	KindOperationStatement
	KindEnumStatement
	KindAliasStatement
	KindUsingStatement
	KindImportStatement
	KindDecoratorDeclarationStatement
	KindFunctionDeclarationStatement
	KindProjectionStatement
	KindEmptyStatement
	KindInvalidStatement

	// Expressions
	KindIdentifier
	KindMemberExpression
	KindTypeReference
	KindUnionExpression
	KindIntersectionExpression
	KindArrayExpression
	KindTupleExpression
	KindModelExpression
	KindStringLiteral
	KindNumericLiteral
	KindBooleanLiteral
	KindVoidKeyword
	KindNeverKeyword
	KindUnknownKeyword

	// Members
	KindModelProperty
	KindModelSpreadProperty
	KindEnumMember
	KindEnumSpreadMember
	KindUnionVariant
	KindOperationSignatureDeclaration
	KindOperationSignatureReference
	KindFunctionParameter
	KindTemplateParameter

	// Decorations
	KindDecoratorExpression
	KindAugmentDecoratorStatement
	KindDirectiveExpression

	// Doc nodes
	KindDoc
	KindDocText
	KindDocParamTag
	KindDocTemplateTag
	KindDocReturnsTag
	KindDocUnknownTag

	// Projection nodes
	KindProjection
	KindProjectionModelSelector
	KindProjectionOperationSelector
	KindProjectionInterfaceSelector
	KindProjectionUnionSelector
	KindProjectionEnumSelector
	KindProjectionExpressionSelector
	KindProjectionBlockExpression
	KindProjectionIfExpression
	KindProjectionLambdaExpression
	KindProjectionLambdaParameter
	KindProjectionTupleExpression
	KindProjectionModelExpression
	KindProjectionCallExpression
	KindProjectionMemberExpression
	KindProjectionDecoratorReferenceExpression
	KindProjectionReturnExpression
	KindProjectionLogicalExpression
	KindProjectionEqualityExpression
	KindProjectionRelationalExpression
	KindProjectionArithmeticExpression
	KindProjectionUnaryExpression
	KindProjectionParameterDeclaration
	KindProjectionExpressionStatement
)

var kindNames = map[Kind]string{
	KindInvalid:                                 "Invalid",
	KindScript:                                  "Script",
	KindModelStatement:                          "ModelStatement",
	KindScalarStatement:                         "ScalarStatement",
	KindNamespaceStatement:                      "NamespaceStatement",
	KindInterfaceStatement:                      "InterfaceStatement",
	KindUnionStatement:                          "UnionStatement",
	KindOperationStatement:                      "OperationStatement",
	KindEnumStatement:                           "EnumStatement",
	KindAliasStatement:                          "AliasStatement",
	KindUsingStatement:                          "UsingStatement",
	KindImportStatement:                         "ImportStatement",
	KindDecoratorDeclarationStatement:           "DecoratorDeclarationStatement",
	KindFunctionDeclarationStatement:            "FunctionDeclarationStatement",
	KindProjectionStatement:                     "ProjectionStatement",
	KindEmptyStatement:                          "EmptyStatement",
	KindInvalidStatement:                        "InvalidStatement",
	KindIdentifier:                              "Identifier",
	KindMemberExpression:                        "MemberExpression",
	KindTypeReference:                           "TypeReference",
	KindUnionExpression:                         "UnionExpression",
	KindIntersectionExpression:                  "IntersectionExpression",
	KindArrayExpression:                         "ArrayExpression",
	KindTupleExpression:                         "TupleExpression",
	KindModelExpression:                         "ModelExpression",
	KindStringLiteral:                           "StringLiteral",
	KindNumericLiteral:                          "NumericLiteral",
	KindBooleanLiteral:                          "BooleanLiteral",
	KindVoidKeyword:                             "VoidKeyword",
	KindNeverKeyword:                            "NeverKeyword",
	KindUnknownKeyword:                          "UnknownKeyword",
	KindModelProperty:                           "ModelProperty",
	KindModelSpreadProperty:                     "ModelSpreadProperty",
	KindEnumMember:                              "EnumMember",
	KindEnumSpreadMember:                        "EnumSpreadMember",
	KindUnionVariant:                            "UnionVariant",
	KindOperationSignatureDeclaration:           "OperationSignatureDeclaration",
	KindOperationSignatureReference:             "OperationSignatureReference",
	KindFunctionParameter:                       "FunctionParameter",
	KindTemplateParameter:                       "TemplateParameter",
	KindDecoratorExpression:                     "DecoratorExpression",
	KindAugmentDecoratorStatement:               "AugmentDecoratorStatement",
	KindDirectiveExpression:                     "DirectiveExpression",
	KindDoc:                                     "Doc",
	KindDocText:                                 "DocText",
	KindDocParamTag:                             "DocParamTag",
	KindDocTemplateTag:                          "DocTemplateTag",
	KindDocReturnsTag:                           "DocReturnsTag",
	KindDocUnknownTag:                           "DocUnknownTag",
	KindProjection:                              "Projection",
	KindProjectionModelSelector:                 "ProjectionModelSelector",
	KindProjectionOperationSelector:             "ProjectionOperationSelector",
	KindProjectionInterfaceSelector:             "ProjectionInterfaceSelector",
	KindProjectionUnionSelector:                 "ProjectionUnionSelector",
	KindProjectionEnumSelector:                  "ProjectionEnumSelector",
	KindProjectionExpressionSelector:            "ProjectionExpressionSelector",
	KindProjectionBlockExpression:               "ProjectionBlockExpression",
	KindProjectionIfExpression:                  "ProjectionIfExpression",
	KindProjectionLambdaExpression:              "ProjectionLambdaExpression",
	KindProjectionLambdaParameter:               "ProjectionLambdaParameter",
	KindProjectionTupleExpression:               "ProjectionTupleExpression",
	KindProjectionModelExpression:               "ProjectionModelExpression",
	KindProjectionCallExpression:                "ProjectionCallExpression",
	KindProjectionMemberExpression:               "ProjectionMemberExpression",
	KindProjectionDecoratorReferenceExpression:  "ProjectionDecoratorReferenceExpression",
	KindProjectionReturnExpression:              "ProjectionReturnExpression",
	KindProjectionLogicalExpression:             "ProjectionLogicalExpression",
	KindProjectionEqualityExpression:            "ProjectionEqualityExpression",
	KindProjectionRelationalExpression:          "ProjectionRelationalExpression",
	KindProjectionArithmeticExpression:          "ProjectionArithmeticExpression",
	KindProjectionUnaryExpression:               "ProjectionUnaryExpression",
	KindProjectionParameterDeclaration:          "ProjectionParameterDeclaration",
	KindProjectionExpressionStatement:           "ProjectionExpressionStatement",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Flags is a bitset of per-node state, mutated only in the ways §3/§9 allow:
// ThisNodeHasError/Synthetic are set once at construction; DescendantHasError
// is set eagerly by AddChild when the added child carries an error flag, and
// both it and DescendantErrorsExamined are set lazily (and monotonically) by
// internal/treeutil.HasParseError.
type Flags uint8

const (
	FlagNone Flags = 0
	ThisNodeHasError Flags = 1 << iota
	DescendantHasError
	DescendantErrorsExamined
	Synthetic
)

func (f Flags) Has(other Flags) bool { return f&other == other }

// Error describes why a node was marked erroneous: the expected token kinds
// (if any) and the token actually found.
type Error struct {
	Message  string
	Expected []token.Kind
	Got      *token.Token
}

// Node is the single tagged-variant type for every CST node kind. Which
// fields are meaningful depends on Kind; internal/treeutil.VisitChildren is
// the canonical place that knows, per kind, which children mean what.
type Node struct {
	Kind     Kind
	Range    source.Range
	Children []*Node
	Token    *token.Token // terminal token for leaf nodes (identifiers, literals, operators)
	Error    *Error
	Flags    Flags

	// Parent is filled by a post-pass (treeutil.LinkParents) after parsing
	// completes; it is never set during construction, per the CST's
	// strictly tree-shaped ownership.
	Parent *Node
}

// NewNode allocates a Node of the given kind with an as-yet-unclosed range;
// callers normally go through a parser's startNode/finishNode helpers.
func NewNode(kind Kind, pos source.Pos) *Node {
	return &Node{Kind: kind, Range: source.Range{Start: pos, End: pos}}
}

// AddChild appends child to n's children and sets DescendantHasError on n if
// child carries an error flag. It leaves n.Range unchanged; ranges come from
// the parser's startNode/finishNode helpers. A nil child is ignored, matching
// the teacher's nil-safe AddChild.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
	if child.Flags.Has(ThisNodeHasError) || child.Flags.Has(DescendantHasError) {
		n.Flags |= DescendantHasError
	}
}

// IsError reports whether this node itself was marked erroneous.
func (n *Node) IsError() bool { return n.Flags.Has(ThisNodeHasError) }

// FirstChildOfKind returns the first direct child with the given kind, or
// nil if none exists.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child with the given kind.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// TokenLiteral returns the literal text of n's terminal token, or "" if n
// has none.
func (n *Node) TokenLiteral() string {
	if n.Token == nil {
		return ""
	}
	return n.Token.Literal
}

// String renders an indented tree dump, omitting positions.
func (n *Node) String() string {
	var b strings.Builder
	n.stringIndent(&b, 0, false)
	return b.String()
}

// StringWithPositions renders an indented tree dump including each node's
// byte range.
func (n *Node) StringWithPositions() string {
	var b strings.Builder
	n.stringIndent(&b, 0, true)
	return b.String()
}

func (n *Node) stringIndent(b *strings.Builder, indent int, showPositions bool) {
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString(n.Kind.String())
	if showPositions {
		fmt.Fprintf(b, " @%d-%d", n.Range.Start, n.Range.End)
	}
	if n.Token != nil && n.Token.Literal != "" {
		fmt.Fprintf(b, " %q", n.Token.Literal)
	}
	if n.IsError() {
		b.WriteString(" <error>")
	}
	b.WriteString("\n")
	for _, c := range n.Children {
		c.stringIndent(b, indent+1, showPositions)
	}
}
