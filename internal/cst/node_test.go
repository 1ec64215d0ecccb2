package cst

import "testing"

func TestNodeKindString(t *testing.T) {
	if got := KindModelStatement.String(); got != "ModelStatement" {
		t.Errorf("String() = %q, want %q", got, "ModelStatement")
	}
	if got := Kind(9999).String(); got != "Unknown" {
		t.Errorf("String() for unknown kind = %q, want %q", got, "Unknown")
	}
}

func TestNodeAddChildNilSafe(t *testing.T) {
	n := NewNode(KindModelStatement, 0)
	n.AddChild(nil)
	if len(n.Children) != 0 {
		t.Errorf("expected AddChild(nil) to be a no-op, got %d children", len(n.Children))
	}
}

func TestNodeAddChildPropagatesErrorFlag(t *testing.T) {
	parent := NewNode(KindModelStatement, 0)
	child := NewNode(KindIdentifier, 0)
	child.Flags |= ThisNodeHasError
	parent.AddChild(child)
	if !parent.Flags.Has(DescendantHasError) {
		t.Errorf("expected parent to gain DescendantHasError after adding an erroring child")
	}
}

func TestNodeFirstAndAllChildrenOfKind(t *testing.T) {
	parent := NewNode(KindModelStatement, 0)
	parent.AddChild(NewNode(KindModelProperty, 0))
	parent.AddChild(NewNode(KindIdentifier, 0))
	parent.AddChild(NewNode(KindModelProperty, 0))

	if got := parent.FirstChildOfKind(KindModelProperty); got == nil {
		t.Fatalf("expected to find a ModelProperty child")
	}
	if got := len(parent.ChildrenOfKind(KindModelProperty)); got != 2 {
		t.Errorf("ChildrenOfKind count = %d, want 2", got)
	}
	if got := parent.FirstChildOfKind(KindEnumMember); got != nil {
		t.Errorf("expected no EnumMember child, got %+v", got)
	}
}

func TestNodeIsError(t *testing.T) {
	n := NewNode(KindInvalidStatement, 0)
	if n.IsError() {
		t.Errorf("fresh node should not report an error")
	}
	n.Flags |= ThisNodeHasError
	if !n.IsError() {
		t.Errorf("expected IsError() to be true once ThisNodeHasError is set")
	}
}
