// Package treeutil provides read-only queries over a parsed CST: visiting
// children, finding the node at a source position, checking whether a
// subtree contains a parse error, and classifying the syntactic role of an
// identifier. It is grounded on the teacher's java/at_point.go
// (findNodeAtPosition/positionInSpan/hasLargerSpan), adapted from Java's
// line/column spans to this package's byte-offset source.Range.
package treeutil

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/source"
)

// VisitChildren calls cb for each direct child of n, in order. cb returning
// false stops the visit early.
func VisitChildren(n *cst.Node, cb func(*cst.Node) bool) {
	if n == nil {
		return
	}
	for _, c := range n.Children {
		if !cb(c) {
			return
		}
	}
}

// Walk calls cb for every node in the subtree rooted at n, pre-order,
// including n itself. cb returning false stops descent into that node's
// children but does not stop the walk overall.
func Walk(n *cst.Node, cb func(*cst.Node) bool) {
	if n == nil {
		return
	}
	if !cb(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, cb)
	}
}

// GetNodeAtPosition returns the most specific (smallest-span) node in the
// tree rooted at root whose range contains pos, optionally restricted to
// kinds matching filter. It mirrors the teacher's
// findNodeAtPosition/hasLargerSpan descent: children are checked before the
// parent, and among overlapping candidates the one with a nonzero,
// strictly smaller span wins.
func GetNodeAtPosition(root *cst.Node, pos source.Pos, filter func(*cst.Node) bool) *cst.Node {
	if root == nil {
		return nil
	}

	var best *cst.Node
	for _, child := range root.Children {
		if found := GetNodeAtPosition(child, pos, filter); found != nil {
			if best == nil || hasSmallerSpan(found, best) {
				best = found
			}
		}
	}
	if best != nil {
		return best
	}

	if root.Range.Contains(pos) && (filter == nil || filter(root)) {
		return root
	}
	return nil
}

func hasSmallerSpan(a, b *cst.Node) bool {
	as, bs := a.Range.Len(), b.Range.Len()
	if as == 0 {
		return false
	}
	if bs == 0 {
		return true
	}
	return as < bs
}

// HasParseError reports whether n or any of its descendants carries a
// parse error, memoizing the result on n.Flags via DescendantErrorsExamined
// so a repeated query over the same node (e.g. from an editor re-checking
// the same range on every keystroke) does not re-walk the subtree. Per
// spec's data-race guidance, the memo bit should be materialized eagerly by
// a single-threaded pass (e.g. right after parsing) if the tree will be
// queried concurrently afterward; this function does not itself take a
// lock.
func HasParseError(n *cst.Node) bool {
	if n == nil {
		return false
	}
	if n.Flags.Has(cst.DescendantErrorsExamined) {
		return n.Flags.Has(cst.ThisNodeHasError) || n.Flags.Has(cst.DescendantHasError)
	}
	found := n.Flags.Has(cst.ThisNodeHasError)
	for _, c := range n.Children {
		if HasParseError(c) {
			found = true
		}
	}
	if found {
		n.Flags |= cst.DescendantHasError
	}
	n.Flags |= cst.DescendantErrorsExamined
	return found
}

// IdentifierContext classifies the syntactic role of an Identifier node,
// determined by walking up through enclosing MemberExpression/TypeReference
// nodes via Parent links (populated by LinkParents).
type IdentifierContext int

const (
	// IdentifierContextUnknown means the identifier's role could not be
	// classified, typically because Parent links were never populated.
	IdentifierContextUnknown IdentifierContext = iota
	// IdentifierContextReference means the identifier (or the leftmost
	// identifier of a dotted chain) refers to a declared symbol.
	IdentifierContextReference
	// IdentifierContextMember means the identifier is a non-leftmost
	// segment of a dotted member-access chain (`a.b` — `b` here).
	IdentifierContextMember
	// IdentifierContextDeclaration means the identifier names a
	// declaration itself (a model/enum/interface/etc. name).
	IdentifierContextDeclaration
)

var declarationParentKinds = map[cst.Kind]bool{
	cst.KindModelStatement:                true,
	cst.KindScalarStatement:               true,
	cst.KindInterfaceStatement:            true,
	cst.KindUnionStatement:                true,
	cst.KindEnumStatement:                 true,
	cst.KindAliasStatement:                true,
	cst.KindNamespaceStatement:            true,
	cst.KindOperationStatement:            true,
	cst.KindTemplateParameter:             true,
	cst.KindFunctionParameter:             true,
	cst.KindModelProperty:                 true,
	cst.KindEnumMember:                    true,
	cst.KindFunctionDeclarationStatement:  true,
	cst.KindDecoratorDeclarationStatement: true,
}

// GetIdentifierContext classifies id by walking up through its Parent
// chain (populated by LinkParents): the first segment of a member-access
// chain is a Reference, later segments are Member accesses, and an
// identifier whose immediate non-MemberExpression ancestor is a
// declaration's own name slot is a Declaration.
func GetIdentifierContext(id *cst.Node) IdentifierContext {
	if id == nil || id.Kind != cst.KindIdentifier {
		return IdentifierContextUnknown
	}
	if id.Parent == nil {
		return IdentifierContextUnknown
	}

	parent := id.Parent
	if parent.Kind == cst.KindMemberExpression {
		// The first child of a MemberExpression is the base (possibly
		// itself a nested MemberExpression); later children are member
		// names. An identifier that IS the member-name child (not the
		// base) is a Member access.
		if len(parent.Children) > 0 && parent.Children[0] != id {
			return IdentifierContextMember
		}
		// The base of the chain is its leftmost segment, which names the
		// referenced symbol.
		return IdentifierContextReference
	}

	if declarationParentKinds[parent.Kind] && len(parent.Children) > 0 && parent.Children[0] == id {
		return IdentifierContextDeclaration
	}
	return IdentifierContextReference
}

// climbMemberChain walks up from member to the outermost enclosing
// MemberExpression and returns that expression's base child if it is an
// Identifier, or nil otherwise.
func climbMemberChain(member *cst.Node) *cst.Node {
	n := member
	for n.Parent != nil && n.Parent.Kind == cst.KindMemberExpression {
		n = n.Parent
	}
	if len(n.Children) == 0 {
		return nil
	}
	base := n.Children[0]
	if base.Kind == cst.KindIdentifier {
		return base
	}
	return nil
}

// LinkParents populates every descendant's Parent field by walking the
// tree once, following spec's Design Notes that Parent links are filled by
// a post-pass rather than during construction (construction happens
// bottom-up, before a node's parent exists).
func LinkParents(root *cst.Node) {
	for _, c := range root.Children {
		c.Parent = root
		LinkParents(c)
	}
}
