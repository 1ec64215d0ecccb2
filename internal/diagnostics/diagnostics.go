// Package diagnostics is the typed report sink the parser writes to: each
// entry carries a severity, a catalog code, a message and a source range.
// The sink enforces same-position suppression so error-recovery token
// insertion cannot cascade into a wall of redundant reports.
package diagnostics

import "github.com/adl-lang/adl/internal/source"

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Code enumerates the catalog of diagnostic identities the parser can emit.
// Each is a stable, externally documented string key rather than a raw int,
// since collaborators (formatters, suppression directives) match on it.
type Code string

const (
	CodeTokenExpected               Code = "token-expected"
	CodeTrailingToken                Code = "trailing-token"
	CodeImportFirst                  Code = "import-first"
	CodeBlocklessNamespaceFirst      Code = "blockless-namespace-first"
	CodeMultipleBlocklessNamespace   Code = "multiple-blockless-namespace"
	CodeDuplicateSymbol              Code = "duplicate-symbol"
	CodeDefaultRequired              Code = "default-required"
	CodeDefaultOptional              Code = "default-optional"
	CodeRequiredParameterFirst       Code = "required-parameter-first"
	CodeRestParameterRequired        Code = "rest-parameter-required"
	CodeRestParameterLast            Code = "rest-parameter-last"
	CodeReservedIdentifier           Code = "reserved-identifier"
	CodeInvalidDecoratorLocation     Code = "invalid-decorator-location"
	CodeInvalidDirectiveLocation     Code = "invalid-directive-location"
	CodeUnknownDirective             Code = "unknown-directive"
	CodeAugmentDecoratorTarget       Code = "augment-decorator-target"
	CodeDecoratorDeclTarget          Code = "decorator-decl-target"
	CodeDocInvalidIdentifier         Code = "doc-invalid-identifier"
)

// Diagnostic is one reported condition at a position in a source file.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	MessageID string // sub-variant of Code, e.g. "unexpected", "topLevel"
	Message   string
	Pos       source.Pos
	End       source.Pos
	Printable bool // false clears the script-wide printable bit
}

// Sink collects diagnostics during a single parse, applying same-position
// suppression: a diagnostic sharing realPos with the immediately preceding
// one is dropped.
type Sink struct {
	diagnostics []Diagnostic
	lastRealPos source.Pos
	hasLast     bool
}

// NewSink returns an empty Sink.
func NewSink() *Sink {
	return &Sink{}
}

// Report records d unless it shares a real position with the previously
// reported diagnostic. Returns true if the diagnostic was kept.
func (s *Sink) Report(d Diagnostic) bool {
	realPos := d.Pos
	if s.hasLast && realPos == s.lastRealPos {
		return false
	}
	s.lastRealPos = realPos
	s.hasLast = true
	s.diagnostics = append(s.diagnostics, d)
	return true
}

// All returns every kept diagnostic, in report order.
func (s *Sink) All() []Diagnostic {
	return s.diagnostics
}

// HasErrors reports whether any kept diagnostic is an error (not a warning).
func (s *Sink) HasErrors() bool {
	for _, d := range s.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
