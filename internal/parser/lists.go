package parser

import (
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/list"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// The Parser implements list.Host so internal/list's generic delimited-list
// driver (component D) can parse any of the list kinds below without
// knowing about the scanner or diagnostic sink directly.

// ParsePrelude consumes a doc-comment/directive/decorator prelude before a
// list item. When invalidTarget is non-empty, directives and decorators are
// still consumed (so trivia is not silently dropped) but each is reported as
// misplaced.
func (p *Parser) ParsePrelude(invalidTarget string) bool {
	consumedAny := false
	for {
		switch {
		case len(p.pendingDocs) > 0 && invalidTarget != "":
			// Doc comments were already attached as trivia by advanceRaw;
			// nothing further to consume here, but a doc before e.g. a
			// decorator-argument list is simply unusual, not erroneous.
			return consumedAny
		case p.check(token.Hash):
			p.parseDirective(invalidTarget)
			if invalidTarget != "" {
				p.reportInvalidDirectiveLocation()
			}
			consumedAny = true
		case p.check(token.At) && invalidTarget != "DecoratorArguments":
			p.parseDecorator()
			if invalidTarget != "" {
				p.reportInvalidDecoratorLocation()
			}
			consumedAny = true
		default:
			return consumedAny
		}
	}
}

// ReportMissingDelimiter reports a missing-delimiter token-expected
// diagnostic at pos, per spec §4.5 step 7.
func (p *Parser) ReportMissingDelimiter(pos source.Pos) {
	p.report(diagnostics.Diagnostic{
		Severity: diagnostics.SeverityError,
		Code:     diagnostics.CodeTokenExpected,
		MessageID: "delimiter",
		Message:  "expected a delimiter",
		Pos:      pos,
		End:      pos + 1,
	})
}

// ReportTrailingToken reports a trailing-delimiter diagnostic, per spec
// §4.5 steps 4-5 and the TemplateArguments boundary behavior in §8.
func (p *Parser) ReportTrailingToken(start, end source.Pos) {
	p.report(diagnostics.Diagnostic{
		Severity: diagnostics.SeverityWarning,
		Code:     diagnostics.CodeTrailingToken,
		Message:  "trailing delimiter",
		Pos:      end,
		End:      end + 1,
	})
}

// Fixed list-kind configurations, per spec §4.5.
var (
	cfgModelProperties = list.Config{
		Open: token.OpenBrace, Close: token.CloseBrace, Delimiter: token.Semicolon,
		ToleratedDelimiter: token.Comma, AllowEmpty: true, TrailingDelimiterIsValid: true,
		ToleratedDelimiterIsValid: true,
	}
	cfgEnumMembers = list.Config{
		Open: token.OpenBrace, Close: token.CloseBrace, Delimiter: token.Comma,
		ToleratedDelimiter: token.Semicolon, AllowEmpty: true, TrailingDelimiterIsValid: true,
		ToleratedDelimiterIsValid: true,
	}
	cfgUnionVariants = list.Config{
		Open: token.OpenBrace, Close: token.CloseBrace, Delimiter: token.Comma,
		AllowEmpty: true, TrailingDelimiterIsValid: true,
	}
	cfgInterfaceMembers = list.Config{
		Open: token.OpenBrace, Close: token.CloseBrace, Delimiter: token.Semicolon,
		ToleratedDelimiter: token.Comma, AllowEmpty: true, TrailingDelimiterIsValid: true,
		AllowedStatementKeyword: token.OpKeyword,
	}
	cfgOperationParameters = list.Config{
		Open: token.OpenParen, Close: token.CloseParen, Delimiter: token.Comma,
		AllowEmpty: true,
	}
	cfgDecoratorArguments = list.Config{
		Open: token.OpenParen, Close: token.CloseParen, Delimiter: token.Comma,
		AllowEmpty: true, InvalidAnnotationTarget: "DecoratorArguments",
	}
	cfgCallArguments = list.Config{
		Open: token.OpenParen, Close: token.CloseParen, Delimiter: token.Comma,
		AllowEmpty: true, InvalidAnnotationTarget: "CallArguments",
	}
	cfgTuple = list.Config{
		Open: token.OpenBracket, Close: token.CloseBracket, Delimiter: token.Comma,
		AllowEmpty: true, InvalidAnnotationTarget: "Tuple",
	}
	cfgTemplateParameters = list.Config{
		Open: token.OpenAngle, Close: token.CloseAngle, Delimiter: token.Comma,
		AllowEmpty: false, InvalidAnnotationTarget: "TemplateParameters",
	}
	cfgTemplateArguments = list.Config{
		Open: token.OpenAngle, Close: token.CloseAngle, Delimiter: token.Comma,
		AllowEmpty: false, TrailingDelimiterIsValid: false, InvalidAnnotationTarget: "TemplateArguments",
	}
	cfgFunctionParameters = list.Config{
		Open: token.OpenParen, Close: token.CloseParen, Delimiter: token.Comma,
		AllowEmpty: true, InvalidAnnotationTarget: "FunctionParameters",
	}
	cfgHeritage = list.Config{
		Delimiter: token.Comma, AllowEmpty: false, InvalidAnnotationTarget: "Heritage",
	}
)
