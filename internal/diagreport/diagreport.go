// Package diagreport renders diagnostics.Diagnostic values for terminal
// output: a lipgloss-styled "path:line:col severity message" line plus an
// optional source-context snippet with a caret under the offending column.
// Grounded on yaklabco-gomdlint/internal/ui/pretty's Styles/FormatDiagnostic
// and its IsColorEnabled gate (mattn/go-isatty plus the NO_COLOR
// convention).
package diagreport

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/format"
	"github.com/adl-lang/adl/internal/source"
)

// Styles holds the lipgloss renderers used to format a diagnostic.
type Styles struct {
	Error      lipgloss.Style
	Warning    lipgloss.Style
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Code       lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style
	Dim        lipgloss.Style
}

// NewStyles returns a Styles using ANSI colors when colorEnabled is true,
// or plain (unstyled) renderers otherwise.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			Error: plain, Warning: plain, FilePath: plain, Location: plain,
			Code: plain, Message: plain, SourceLine: plain, Caret: plain, Dim: plain,
		}
	}
	return &Styles{
		Error:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		FilePath:   lipgloss.NewStyle().Bold(true),
		Location:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Code:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:    lipgloss.NewStyle(),
		SourceLine: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		Caret:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled decides whether w should receive ANSI styling: mode
// "always"/"never" force the answer, "auto" (or any other value) enables
// color only when w is a terminal and NO_COLOR is unset.
func IsColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := w.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// FormatDiagnostic renders d for terminal output. file is used to translate
// d.Pos into a line/column and to fetch the offending source line when
// showContext is true; file may be nil, in which case no line/column or
// source context is rendered.
func (s *Styles) FormatDiagnostic(d diagnostics.Diagnostic, file *source.File, showContext bool) string {
	var b strings.Builder

	path := "<unknown>"
	line, col := 0, 0
	if file != nil {
		path = file.Path
		lc := file.LineCol(d.Pos)
		line, col = lc.Line, lc.Column
	}

	location := s.Location.Render(fmt.Sprintf("%s:%d:%d", s.FilePath.Render(path), line, col))
	severity := s.formatSeverity(d.Severity)
	code := s.Code.Render("(" + string(d.Code) + ")")

	fmt.Fprintf(&b, "%s  %s  %s  %s\n", location, severity, s.Message.Render(d.Message), code)

	if d.Code == diagnostics.CodeReservedIdentifier {
		if name := reservedIdentifierName(d.Message); name != "" {
			b.WriteString(s.formatCasingSuggestion(name))
		}
	}

	if showContext && file != nil && line > 0 {
		b.WriteString(s.formatSourceContext(file.LineText(line), col))
	}

	return b.String()
}

// reservedIdentifierName extracts the quoted identifier out of a
// diagnosticReservedIdentifier message ("'import' is a reserved identifier").
func reservedIdentifierName(message string) string {
	start := strings.IndexByte(message, '\'')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(message[start+1:], '\'')
	if end < 0 {
		return ""
	}
	return message[start+1 : start+1+end]
}

func (s *Styles) formatCasingSuggestion(name string) string {
	suggestion := format.SuggestCasing(name)
	return "    " + s.Dim.Render("try: "+suggestion.Camel+", "+suggestion.Pascal+", or "+suggestion.Snake) + "\n"
}

func (s *Styles) formatSeverity(sev diagnostics.Severity) string {
	if sev == diagnostics.SeverityWarning {
		return s.Warning.Render("warning")
	}
	return s.Error.Render("error")
}

func (s *Styles) formatSourceContext(line string, column int) string {
	var b strings.Builder
	const indent = "    "
	b.WriteString(indent + s.SourceLine.Render(line) + "\n")
	if column > 0 {
		b.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}
	return b.String()
}

// FormatAll renders every diagnostic in ds in order, separated by blank
// lines are not added between entries since each already ends in a newline.
func (s *Styles) FormatAll(ds []diagnostics.Diagnostic, file *source.File, showContext bool) string {
	var b strings.Builder
	for _, d := range ds {
		b.WriteString(s.FormatDiagnostic(d, file, showContext))
	}
	return b.String()
}
