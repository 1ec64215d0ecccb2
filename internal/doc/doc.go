// Package doc parses the structured content of a documentation comment
// (text plus @param/@template/@returns tags) into Doc* CST nodes. It is
// modeled on the teacher's Javadoc parser (java/javadoc/parser.go): a
// dedicated rune-level recursive-descent reader scoped to the comment's
// body, re-targeted from Javadoc's tag set to this language's @param /
// @template / @returns tags with everything else falling through to a
// generic DocUnknownTag node.
package doc

import (
	"strings"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/scanner"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/token"
)

// Parse extracts the structured content of the doc comment spanning r
// (the full comment including its /** */ delimiters) in s's source file,
// producing a Doc node. It uses s.ScanRange to scope scanning to the inner
// body without disturbing the outer syntax-mode cursor, per the scanner's
// scoped-mode-switching contract (spec §9). The scanner argument is kept for
// symmetry with §4.1's scanRange contract even though this implementation
// reads the already-sliced text directly; a tokenizing doc-mode reader would
// additionally call s.ScanDoc() within ScanRange.
func Parse(s *scanner.Scanner, r source.Range) *cst.Node {
	file := s.File()
	inner := innerRange(file, r)
	body := file.Slice(inner)

	doc := cst.NewNode(cst.KindDoc, r.Start)
	doc.Range = r

	var result *cst.Node
	s.ScanRange(inner, func() {
		p := &parser{body: body, base: inner.Start}
		p.parse(doc)
		result = doc
	})
	return result
}

// innerRange strips the /** and */ (or */ truncated by EOF) delimiters,
// matching spec §8's boundary rule: an unterminated block comment at EOF
// uses end = range.end rather than end-2.
func innerRange(file *source.File, r source.Range) source.Range {
	start := r.Start + 3 // skip "/**"
	end := r.End
	text := file.Slice(r)
	if strings.HasSuffix(text, "*/") {
		end -= 2
	}
	if end < start {
		end = start
	}
	return source.Range{Start: start, End: end}
}

// parser walks the extracted doc-comment body byte by byte, stripping
// leading "*" line prefixes the way Javadoc bodies do, and splitting it into
// a leading text run followed by zero or more @tag blocks.
type parser struct {
	body string
	base source.Pos
	pos  int
}

func (p *parser) parse(doc *cst.Node) {
	text, textStart, textEnd := p.readUntilTag()
	if strings.TrimSpace(text) != "" {
		textNode := cst.NewNode(cst.KindDocText, p.base+source.Pos(textStart))
		textNode.Range = source.Range{Start: p.base + source.Pos(textStart), End: p.base + source.Pos(textEnd)}
		textNode.Token = &token.Token{Kind: token.Identifier, Literal: strings.TrimSpace(text), Range: textNode.Range}
		doc.AddChild(textNode)
	}

	for p.pos < len(p.body) {
		doc.AddChild(p.parseTag())
	}
}

// readUntilTag consumes bytes (skipping leading "*" line-prefixes) up to the
// next line that starts with '@', returning the accumulated text and its
// span within p.body.
func (p *parser) readUntilTag() (string, int, int) {
	start := p.pos
	var b strings.Builder
	atLineStart := true
	for p.pos < len(p.body) {
		if atLineStart {
			p.skipLinePrefix()
			atLineStart = false
			q := p.pos
			for q < len(p.body) && (p.body[q] == ' ' || p.body[q] == '\t') {
				q++
			}
			if q < len(p.body) && p.body[q] == '@' {
				p.pos = q
				break
			}
			if p.pos >= len(p.body) {
				break
			}
		}
		ch := p.body[p.pos]
		b.WriteByte(ch)
		p.pos++
		if ch == '\n' {
			atLineStart = true
		}
	}
	return b.String(), start, p.pos
}

// skipLinePrefix skips a run of whitespace then a single "*" that is not
// part of "*/", matching Javadoc's per-line " * " convention.
func (p *parser) skipLinePrefix() {
	for p.pos < len(p.body) && (p.body[p.pos] == ' ' || p.body[p.pos] == '\t') {
		p.pos++
	}
	if p.pos < len(p.body) && p.body[p.pos] == '*' && (p.pos+1 >= len(p.body) || p.body[p.pos+1] != '/') {
		p.pos++
	}
}

func (p *parser) atTag() bool {
	return p.pos < len(p.body) && p.body[p.pos] == '@'
}

// parseTag reads one @name rest-of-line block, producing a DocParamTag,
// DocTemplateTag, DocReturnsTag, or a DocUnknownTag for anything else.
func (p *parser) parseTag() *cst.Node {
	start := p.pos
	p.pos++ // '@'
	nameStart := p.pos
	for p.pos < len(p.body) && isTagNameRune(p.body[p.pos]) {
		p.pos++
	}
	name := p.body[nameStart:p.pos]

	for p.pos < len(p.body) && (p.body[p.pos] == ' ' || p.body[p.pos] == '\t') {
		p.pos++
	}

	var target string
	if name == "param" || name == "template" {
		targetStart := p.pos
		for p.pos < len(p.body) && isIdentRune(p.body[p.pos]) {
			p.pos++
		}
		target = p.body[targetStart:p.pos]
		for p.pos < len(p.body) && (p.body[p.pos] == ' ' || p.body[p.pos] == '\t' || p.body[p.pos] == '-') {
			p.pos++
		}
	}

	descStart := p.pos
	for p.pos < len(p.body) {
		if p.body[p.pos] == '\n' {
			p.pos++
			p.skipLinePrefix()
			if p.atTag() {
				break
			}
			continue
		}
		if p.atTag() {
			break
		}
		p.pos++
	}
	desc := strings.TrimSpace(p.body[descStart:p.pos])

	var kind cst.Kind
	switch name {
	case "param":
		kind = cst.KindDocParamTag
	case "template":
		kind = cst.KindDocTemplateTag
	case "returns", "return":
		kind = cst.KindDocReturnsTag
	default:
		kind = cst.KindDocUnknownTag
	}

	tagRange := source.Range{Start: p.base + source.Pos(start), End: p.base + source.Pos(p.pos)}
	tag := cst.NewNode(kind, tagRange.Start)
	tag.Range = tagRange
	if target != "" {
		id := cst.NewNode(cst.KindIdentifier, tag.Range.Start)
		id.Token = &token.Token{Kind: token.Identifier, Literal: target}
		tag.AddChild(id)
	}
	if desc != "" {
		textNode := cst.NewNode(cst.KindDocText, tag.Range.Start)
		textNode.Token = &token.Token{Kind: token.Identifier, Literal: desc}
		tag.AddChild(textNode)
	}
	return tag
}

func isTagNameRune(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isIdentRune(ch byte) bool {
	return isTagNameRune(ch) || ch == '_' || (ch >= '0' && ch <= '9')
}
