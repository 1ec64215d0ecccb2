// Package token defines the lexical vocabulary of the language: token kinds,
// flag bits, keyword lookup and the Token value itself.
package token

import "github.com/adl-lang/adl/internal/source"

// Kind identifies the lexical category of a token.
type Kind int

const (
	None Kind = iota
	EOF
	ErrorToken

	// Trivia
	Whitespace
	NewLine
	SingleLineComment
	MultiLineComment
	// DocComment is never produced by the scanner directly — a doc comment
	// is a MultiLineComment token carrying FlagDocComment — but stays a
	// distinct Kind so IsTrivia's switch and any future doc-aware consumer
	// can name it without relying on the flag bit.
	DocComment

	// Literals
	Identifier
	StringLiteral
	NumericLiteral

	// Keywords
	ModelKeyword
	ScalarKeyword
	NamespaceKeyword
	InterfaceKeyword
	UnionKeyword
	OpKeyword
	EnumKeyword
	AliasKeyword
	UsingKeyword
	ImportKeyword
	ExternKeyword
	FnKeyword
	DecKeyword
	ProjectionKeyword
	ToKeyword
	FromKeyword
	IsKeyword
	ExtendsKeyword
	VoidKeyword
	NeverKeyword
	UnknownKeyword
	TrueKeyword
	FalseKeyword
	ReturnKeyword
	IfKeyword
	ElseKeyword

	// Punctuation and operators
	OpenBrace
	CloseBrace
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	OpenAngle
	CloseAngle
	Comma
	Semicolon
	Colon
	Dot
	DotDotDot
	At
	AtAt
	Hash
	Equals
	FatArrow
	Bar
	Amp
	Question
	ColonColon
	Bang
	EqualsEquals
	BangEquals
	LessThanEquals
	GreaterThanEquals
	AmpAmp
	BarBar
	Plus
	Minus
	Star
	Slash
)

var names = map[Kind]string{
	None:               "none",
	EOF:                "end-of-file",
	ErrorToken:         "error",
	Whitespace:         "whitespace",
	NewLine:            "newline",
	SingleLineComment:  "single-line-comment",
	MultiLineComment:   "multi-line-comment",
	DocComment:         "doc-comment",
	Identifier:         "identifier",
	StringLiteral:      "string-literal",
	NumericLiteral:     "numeric-literal",
	ModelKeyword:       "model",
	ScalarKeyword:      "scalar",
	NamespaceKeyword:   "namespace",
	InterfaceKeyword:   "interface",
	UnionKeyword:       "union",
	OpKeyword:          "op",
	EnumKeyword:        "enum",
	AliasKeyword:       "alias",
	UsingKeyword:       "using",
	ImportKeyword:      "import",
	ExternKeyword:      "extern",
	FnKeyword:          "fn",
	DecKeyword:         "dec",
	ProjectionKeyword:  "projection",
	ToKeyword:          "to",
	FromKeyword:        "from",
	IsKeyword:          "is",
	ExtendsKeyword:     "extends",
	VoidKeyword:        "void",
	NeverKeyword:       "never",
	UnknownKeyword:     "unknown",
	TrueKeyword:        "true",
	FalseKeyword:       "false",
	ReturnKeyword:      "return",
	IfKeyword:          "if",
	ElseKeyword:        "else",
	OpenBrace:          "{",
	CloseBrace:         "}",
	OpenParen:          "(",
	CloseParen:         ")",
	OpenBracket:        "[",
	CloseBracket:       "]",
	OpenAngle:          "<",
	CloseAngle:         ">",
	Comma:              ",",
	Semicolon:          ";",
	Colon:              ":",
	Dot:                ".",
	DotDotDot:          "...",
	At:                 "@",
	AtAt:               "@@",
	Hash:               "#",
	Equals:             "=",
	FatArrow:           "=>",
	Bar:                "|",
	Amp:                "&",
	Question:           "?",
	ColonColon:         "::",
	Bang:               "!",
	EqualsEquals:       "==",
	BangEquals:         "!=",
	LessThanEquals:     "<=",
	GreaterThanEquals:  ">=",
	AmpAmp:             "&&",
	BarBar:             "||",
	Plus:               "+",
	Minus:              "-",
	Star:               "*",
	Slash:              "/",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return "unknown"
}

// IsTrivia reports whether tokens of this kind carry no grammatical meaning.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, NewLine, SingleLineComment, MultiLineComment, DocComment:
		return true
	default:
		return false
	}
}

// Flags are bit flags attached to a scanned token.
type Flags uint8

const (
	FlagNone Flags = 0
	// FlagDocComment marks a MultiLineComment token that begins with the
	// doc-comment marker, so the parser knows to route it through doc mode.
	FlagDocComment Flags = 1 << iota
	// FlagUnterminated marks a string or block-comment token that ran into
	// end-of-file before its closing delimiter.
	FlagUnterminated
)

// Has reports whether f contains all bits of other.
func (f Flags) Has(other Flags) bool { return f&other == other }

// Token is one lexical unit: its kind, source range and literal text.
type Token struct {
	Kind    Kind
	Range   source.Range
	Literal string
	Flags   Flags
}

var keywords = map[string]Kind{
	"model":      ModelKeyword,
	"scalar":     ScalarKeyword,
	"namespace":  NamespaceKeyword,
	"interface":  InterfaceKeyword,
	"union":      UnionKeyword,
	"op":         OpKeyword,
	"enum":       EnumKeyword,
	"alias":      AliasKeyword,
	"using":      UsingKeyword,
	"import":     ImportKeyword,
	"extern":     ExternKeyword,
	"fn":         FnKeyword,
	"dec":        DecKeyword,
	"projection": ProjectionKeyword,
	"to":         ToKeyword,
	"from":       FromKeyword,
	"is":         IsKeyword,
	"extends":    ExtendsKeyword,
	"void":       VoidKeyword,
	"never":      NeverKeyword,
	"unknown":    UnknownKeyword,
	"true":       TrueKeyword,
	"false":      FalseKeyword,
	"return":     ReturnKeyword,
	"if":         IfKeyword,
	"else":       ElseKeyword,
}

// LookupKeyword returns the keyword Kind for ident, or Identifier if ident
// is not a reserved word.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Identifier
}

// IsStatementKeyword reports whether k begins a top-level or block-level
// declaration, used by list drivers to detect an unrecoverable list body.
func IsStatementKeyword(k Kind) bool {
	switch k {
	case ModelKeyword, ScalarKeyword, NamespaceKeyword, InterfaceKeyword,
		UnionKeyword, OpKeyword, EnumKeyword, AliasKeyword, UsingKeyword,
		ImportKeyword, ExternKeyword, FnKeyword, DecKeyword, ProjectionKeyword:
		return true
	default:
		return false
	}
}
