package diagnostics

import "testing"

func TestSinkSuppressesSamePosition(t *testing.T) {
	s := NewSink()
	kept1 := s.Report(Diagnostic{Code: CodeTokenExpected, Pos: 5, End: 6})
	kept2 := s.Report(Diagnostic{Code: CodeTrailingToken, Pos: 5, End: 6})
	kept3 := s.Report(Diagnostic{Code: CodeTrailingToken, Pos: 9, End: 10})

	if !kept1 {
		t.Errorf("expected first diagnostic to be kept")
	}
	if kept2 {
		t.Errorf("expected second diagnostic at same pos to be suppressed")
	}
	if !kept3 {
		t.Errorf("expected diagnostic at a new pos to be kept")
	}
	if got := len(s.All()); got != 2 {
		t.Errorf("len(All()) = %d, want 2", got)
	}
}

func TestSinkHasErrors(t *testing.T) {
	s := NewSink()
	s.Report(Diagnostic{Severity: SeverityWarning, Code: CodeDocInvalidIdentifier, Pos: 1})
	if s.HasErrors() {
		t.Errorf("expected HasErrors to be false with only a warning")
	}
	s.Report(Diagnostic{Severity: SeverityError, Code: CodeTokenExpected, Pos: 2})
	if !s.HasErrors() {
		t.Errorf("expected HasErrors to be true after an error diagnostic")
	}
}
