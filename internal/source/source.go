// Package source provides the text buffer and position model shared by the
// scanner, parser and CST: a byte offset into a file, a half-open range of
// offsets, and a precomputed line-start index for mapping offsets back to
// line/column pairs.
package source

import "sort"

// Pos is a zero-based byte offset into a File's content.
type Pos int

// Range is a half-open interval [Start, End) of byte offsets.
type Range struct {
	Start Pos
	End   Pos
}

// Len reports the number of bytes spanned by r.
func (r Range) Len() int { return int(r.End - r.Start) }

// Contains reports whether pos falls within the inclusive span [Start, End],
// matching the "inclusive range" language used by position-to-node queries.
func (r Range) Contains(pos Pos) bool { return pos >= r.Start && pos <= r.End }

// LineCol is a one-based line and column pair.
type LineCol struct {
	Line   int
	Column int
}

// File bundles source text with its path and a precomputed line-start index,
// following the same layout as a scanner-facing SourceFile.
type File struct {
	Path    string
	Text    string
	starts  []Pos // byte offset of the first byte of each line
}

// NewFile builds a File and its line-start index in a single pass.
func NewFile(path, text string) *File {
	f := &File{Path: path, Text: text, starts: []Pos{0}}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			f.starts = append(f.starts, Pos(i+1))
		}
	}
	return f
}

// Len returns the length of the source text in bytes.
func (f *File) Len() Pos { return Pos(len(f.Text)) }

// Slice returns the text spanned by r, clamped to the file's bounds.
func (f *File) Slice(r Range) string {
	start, end := r.Start, r.End
	if start < 0 {
		start = 0
	}
	if end > f.Len() {
		end = f.Len()
	}
	if start > end {
		return ""
	}
	return f.Text[start:end]
}

// LineCol maps a byte offset to a one-based line/column pair via a binary
// search over the precomputed line starts.
func (f *File) LineCol(pos Pos) LineCol {
	i := sort.Search(len(f.starts), func(i int) bool { return f.starts[i] > pos }) - 1
	if i < 0 {
		i = 0
	}
	return LineCol{Line: i + 1, Column: int(pos-f.starts[i]) + 1}
}

// LineText returns the text of the given one-based line number, without its
// trailing newline.
func (f *File) LineText(line int) string {
	if line < 1 || line > len(f.starts) {
		return ""
	}
	start := f.starts[line-1]
	var end Pos
	if line < len(f.starts) {
		end = f.starts[line] - 1
	} else {
		end = f.Len()
	}
	if end < start {
		end = start
	}
	text := f.Text[start:end]
	for len(text) > 0 && text[len(text)-1] == '\r' {
		text = text[:len(text)-1]
	}
	return text
}
