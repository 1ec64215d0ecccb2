// Package format renders a parsed tree in a handful of output encodings: a
// JSON dump of the CST for tooling to consume, and a plain indented text
// dump for humans. It is grounded on the teacher's format/ast_json.go
// (ASTJSONEncoder/nodeToJSON), re-targeted from the teacher's parser.Node to
// this project's cst.Node.
package format

import (
	"encoding/json"
	"io"

	"github.com/adl-lang/adl/internal/cst"
)

// Encoder writes a parsed tree to w in some representation.
type Encoder interface {
	Encode(w io.Writer, root *cst.Node) error
}

// JSONEncoder renders a tree as indented JSON, one object per node, mirroring
// the shape of the teacher's astJSONNode.
type JSONEncoder struct {
	// Positions includes each node's byte range in the output when true.
	Positions bool
}

// NewJSONEncoder returns a JSONEncoder with the given position-inclusion
// setting.
func NewJSONEncoder(withPositions bool) *JSONEncoder {
	return &JSONEncoder{Positions: withPositions}
}

func (e *JSONEncoder) Encode(w io.Writer, root *cst.Node) error {
	text, err := e.MarshalText(root)
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}

// MarshalText returns the same rendering Encode writes, without requiring a
// io.Writer — useful for tests and for the language server, which wants the
// bytes in-memory rather than streamed.
func (e *JSONEncoder) MarshalText(root *cst.Node) ([]byte, error) {
	return json.MarshalIndent(e.nodeToJSON(root), "", "  ")
}

type jsonNode struct {
	Kind     string      `json:"kind"`
	Span     *jsonSpan   `json:"span,omitempty"`
	Token    string      `json:"token,omitempty"`
	Error    *jsonError  `json:"error,omitempty"`
	Children []*jsonNode `json:"children,omitempty"`
}

type jsonSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type jsonError struct {
	Message  string   `json:"message"`
	Expected []string `json:"expected,omitempty"`
	Got      string   `json:"got,omitempty"`
}

func (e *JSONEncoder) nodeToJSON(n *cst.Node) *jsonNode {
	if n == nil {
		return nil
	}
	jn := &jsonNode{Kind: n.Kind.String()}

	if e.Positions {
		jn.Span = &jsonSpan{Start: int(n.Range.Start), End: int(n.Range.End)}
	}

	if n.Token != nil {
		jn.Token = n.Token.Literal
	}

	if n.Error != nil {
		jn.Error = &jsonError{Message: n.Error.Message}
		for _, exp := range n.Error.Expected {
			jn.Error.Expected = append(jn.Error.Expected, exp.String())
		}
		if n.Error.Got != nil {
			jn.Error.Got = n.Error.Got.Literal
		}
	}

	if len(n.Children) > 0 {
		jn.Children = make([]*jsonNode, len(n.Children))
		for i, c := range n.Children {
			jn.Children[i] = e.nodeToJSON(c)
		}
	}

	return jn
}

// TextEncoder renders a tree as the indented dump cst.Node already knows how
// to produce; it exists so callers can select an Encoder by value (CLI flag,
// LSP request param) without special-casing the plain-text case.
type TextEncoder struct {
	Positions bool
}

func NewTextEncoder(withPositions bool) *TextEncoder {
	return &TextEncoder{Positions: withPositions}
}

func (e *TextEncoder) Encode(w io.Writer, root *cst.Node) error {
	var s string
	if e.Positions {
		s = root.StringWithPositions()
	} else {
		s = root.String()
	}
	_, err := io.WriteString(w, s)
	return err
}
