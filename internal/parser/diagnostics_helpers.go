package parser

import (
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/source"
)

func diagnosticDefaultOptional(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeDefaultOptional,
		Message:  "a property with a default value must be optional",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticDefaultRequired(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeDefaultRequired,
		Message:  "an optional parameter must have a default value",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticRequiredParameterFirst(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeRequiredParameterFirst,
		Message:  "required parameters must precede optional parameters",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticRestParameterRequired(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeRestParameterRequired,
		Message:  "a rest parameter may not be optional",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticRestParameterLast(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeRestParameterLast,
		Message:  "a rest parameter must be the last parameter",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticDuplicateSymbol(pos source.Pos, what string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeDuplicateSymbol,
		Message:  "duplicate " + what,
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticImportFirst(pos source.Pos, messageID string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity:  diagnostics.SeverityError,
		Code:      diagnostics.CodeImportFirst,
		MessageID: messageID,
		Message:   "imports must precede all other declarations",
		Pos:       pos,
		End:       pos + 1,
	}
}

func diagnosticBlocklessNamespaceFirst(pos source.Pos, messageID string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity:  diagnostics.SeverityError,
		Code:      diagnostics.CodeBlocklessNamespaceFirst,
		MessageID: messageID,
		Message:   "a blockless namespace must precede all non-import declarations",
		Pos:       pos,
		End:       pos + 1,
	}
}

func diagnosticMultipleBlocklessNamespace(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeMultipleBlocklessNamespace,
		Message:  "at most one blockless namespace is allowed per file",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticReservedIdentifier(pos source.Pos, name string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeReservedIdentifier,
		Message:  "'" + name + "' is a reserved identifier",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticUnknownDirective(pos source.Pos, name string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeUnknownDirective,
		Message:  "unknown directive '" + name + "'",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticAugmentDecoratorTarget(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeAugmentDecoratorTarget,
		Message:  "the first argument to an augment decorator must be a type reference",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticDecoratorDeclTarget(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeDecoratorDeclTarget,
		Message:  "a decorator declaration requires a non-optional target parameter",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticDocInvalidIdentifier(pos source.Pos, name string) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity: diagnostics.SeverityWarning,
		Code:     diagnostics.CodeDocInvalidIdentifier,
		Message:  "doc comment refers to unknown identifier '" + name + "'",
		Pos:      pos,
		End:      pos + 1,
	}
}

func diagnosticStatementExpected(pos source.Pos) diagnostics.Diagnostic {
	return diagnostics.Diagnostic{
		Severity:  diagnostics.SeverityError,
		Code:      diagnostics.CodeTokenExpected,
		MessageID: "statement",
		Message:   "expected a statement",
		Pos:       pos,
		End:       pos + 1,
	}
}

func (p *Parser) reportInvalidDecoratorLocation() {
	p.report(diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeInvalidDecoratorLocation,
		Message:  "a decorator is not valid in this location",
		Pos:      p.prevEnd,
		End:      p.prevEnd + 1,
	})
}

func (p *Parser) reportInvalidDirectiveLocation() {
	p.report(diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeInvalidDirectiveLocation,
		Message:  "a directive is not valid in this location",
		Pos:      p.prevEnd,
		End:      p.prevEnd + 1,
	})
}
