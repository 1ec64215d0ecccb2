package diagreport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/source"
)

func TestFormatDiagnosticIncludesLocationAndMessage(t *testing.T) {
	file := source.NewFile("widget.adl", "model Widget {\n  name string;\n}\n")
	d := diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeTokenExpected,
		Message:  "expected ':'",
		Pos:      source.Pos(20),
	}

	out := NewStyles(false).FormatDiagnostic(d, file, false)
	require.Contains(t, out, "widget.adl:2:")
	require.Contains(t, out, "expected ':'")
	require.Contains(t, out, "(token-expected)")
}

func TestFormatDiagnosticWithContextShowsCaret(t *testing.T) {
	file := source.NewFile("w.adl", "model Widget {\n  name string;\n}\n")
	d := diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeTokenExpected,
		Message:  "expected ':'",
		Pos:      source.Pos(20),
	}

	out := NewStyles(false).FormatDiagnostic(d, file, true)
	require.Contains(t, out, "^")
}

func TestFormatDiagnosticSuggestsCasingForReservedIdentifier(t *testing.T) {
	file := source.NewFile("w.adl", "model import {\n}\n")
	d := diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeReservedIdentifier,
		Message:  "'import' is a reserved identifier",
		Pos:      source.Pos(6),
	}

	out := NewStyles(false).FormatDiagnostic(d, file, false)
	require.Contains(t, out, "importValue")
	require.Contains(t, out, "import_value")
}

func TestIsColorEnabledModes(t *testing.T) {
	require.True(t, IsColorEnabled("always", &bytes.Buffer{}))
	require.False(t, IsColorEnabled("never", &bytes.Buffer{}))
	require.False(t, IsColorEnabled("auto", &bytes.Buffer{}))
}
