// Package list implements the generic delimited-list parsing algorithm
// shared by every comma/semicolon-separated construct in the grammar:
// operation parameters, model properties, enum members, template argument
// lists, tuples, and so on. It is grounded on the same comma-list-with-
// progress-guard shape used throughout the teacher's parser (its
// parseArguments/mustProgress pattern), generalized into data instead of
// being re-implemented once per list kind.
package list

import (
	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// Config parameterizes one list kind per spec §4.5.
type Config struct {
	Open               token.Kind
	Close              token.Kind
	Delimiter          token.Kind // token.None if the list has no delimiter (e.g. Heritage)
	ToleratedDelimiter token.Kind // token.None if there is none

	AllowEmpty                bool
	ToleratedDelimiterIsValid bool
	TrailingDelimiterIsValid  bool

	// InvalidAnnotationTarget, when non-empty, means doc/decorator/directive
	// preludes are still parsed (so trivia attaches somewhere) but
	// immediately flagged as misplaced for this list kind.
	InvalidAnnotationTarget string

	// AllowedStatementKeyword is a single statement keyword that does not
	// trigger end-of-list recovery even though token.IsStatementKeyword
	// would otherwise say it does (e.g. InterfaceMembers tolerates a bare
	// "op" that opens the next member).
	AllowedStatementKeyword token.Kind
}

// Host is the subset of parser behavior the list driver needs: token
// inspection/advancement, prelude parsing and diagnostic reporting. A
// *parser.Parser implements this so the driver never needs to know about
// scanner or diagnostics internals directly.
type Host interface {
	Peek() token.Kind
	PeekPos() source.Pos
	PrevEnd() source.Pos
	Advance() token.Token
	AtEOF() bool

	// ParsePrelude consumes any doc-comment/directive/decorator prelude
	// before a list item and returns whether it consumed anything. When
	// cfg.InvalidAnnotationTarget is set, the host is responsible for
	// reporting the misplaced-annotation diagnostic itself.
	ParsePrelude(invalidTarget string) bool

	ReportMissingDelimiter(pos source.Pos)
	ReportTrailingToken(start, end source.Pos)
}

// Parse drives cfg's algorithm, calling parseItem once per list element and
// returning the parsed items in order. Parse handles only the body between
// the open and close tokens: callers consume cfg.Open before calling it and
// cfg.Close after it returns.
func Parse(cfg Config, h Host, parseItem func() *cst.Node) []*cst.Node {
	var items []*cst.Node

	if cfg.AllowEmpty && h.Peek() == cfg.Close {
		return items
	}

	for {
		startPos := h.PeekPos()
		hadPrelude := h.ParsePrelude(cfg.InvalidAnnotationTarget)

		if !hadPrelude && h.Peek() != cfg.AllowedStatementKeyword &&
			(token.IsStatementKeyword(h.Peek()) || h.AtEOF() || h.Peek() == cfg.Close) {
			break
		}

		item := parseItem()
		items = append(items, item)

		madeProgress := h.PeekPos() != startPos

		if cfg.Delimiter != token.None && h.Peek() == cfg.Delimiter {
			h.Advance()
			if h.Peek() == cfg.Close {
				if !cfg.TrailingDelimiterIsValid {
					h.ReportTrailingToken(startPos, h.PrevEnd())
				}
			}
			if !madeProgress && h.PeekPos() == startPos {
				break
			}
			continue
		}

		if cfg.ToleratedDelimiter != token.None && h.Peek() == cfg.ToleratedDelimiter {
			if !cfg.ToleratedDelimiterIsValid {
				h.ReportTrailingToken(startPos, h.PrevEnd())
			}
			h.Advance()
			if !madeProgress && h.PeekPos() == startPos {
				break
			}
			continue
		}

		if h.Peek() == cfg.Close {
			break
		}

		if !h.AtEOF() && (!token.IsStatementKeyword(h.Peek()) || h.Peek() == cfg.AllowedStatementKeyword) {
			h.ReportMissingDelimiter(h.PrevEnd())
		}

		if !madeProgress {
			// Progress guard (spec §4.5 step 8): the iteration consumed
			// zero tokens, so force-close and drop the synthetic item just
			// pushed to avoid an infinite loop on malformed input such as
			// `model M { ]`.
			items = items[:len(items)-1]
			break
		}
	}

	return items
}
