// Package langserver implements a language server for schema source files on
// top of tliron/glsp, wiring the same protocol.Handler/server.Server pattern
// as dhamidi-sai/java/codebase/lsp.go's NewLSPServer: a struct of method
// values registered on a protocol.Handler, run over stdio. Document state is
// a parsed tree per URI rather than a scanned codebase, since this server
// has no cross-file archive index to build.
package langserver

import (
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/adl-lang/adl/internal/cst"
	"github.com/adl-lang/adl/internal/diagnostics"
	"github.com/adl-lang/adl/internal/parser"
	"github.com/adl-lang/adl/internal/printer"
	"github.com/adl-lang/adl/internal/source"
	"github.com/adl-lang/adl/internal/treeutil"
)

const name = "adlc"

// document holds one open file's most recent parse result, keyed by URI.
type document struct {
	file   *source.File
	result *parser.Result
}

// Server is a language server over a set of open schema documents. It has
// no notion of a workspace-wide symbol index; every query re-walks the
// single document's tree.
type Server struct {
	version string

	mu   sync.RWMutex
	docs map[protocol.DocumentUri]*document

	handler protocol.Handler
	server  *server.Server
}

// New builds a Server with its protocol.Handler wired to method values, the
// same shape as the teacher's NewLSPServer.
func New(version string) *Server {
	s := &Server{
		version: version,
		docs:    make(map[protocol.DocumentUri]*document),
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidSave:    s.textDocumentDidSave,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentHover:      s.textDocumentHover,
		TextDocumentDefinition: s.textDocumentDefinition,
		TextDocumentFormatting: s.textDocumentFormatting,
	}
	s.server = server.NewServer(&s.handler, name, false)
	return s
}

// RunStdio runs the server over stdin/stdout until the client disconnects.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = boolPtr(true)
	capabilities.DefinitionProvider = boolPtr(true)
	capabilities.DocumentFormattingProvider = boolPtr(true)

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    name,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// The server advertises full-document sync, so the last change event
	// carries the whole new text.
	last := params.ContentChanges[len(params.ContentChanges)-1]
	if change, ok := last.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.update(ctx, params.TextDocument.URI, change.Text)
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

// update reparses text under uri, stores the result, and publishes fresh
// diagnostics to the client.
func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	path := uriToPath(uri)
	file := source.NewFile(path, text)
	result := parser.Parse(path, text)
	treeutil.LinkParents(result.Script)

	s.mu.Lock()
	s.docs[uri] = &document{file: file, result: result}
	s.mu.Unlock()

	if ctx != nil {
		ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
			URI:         uri,
			Diagnostics: diagnosticsToProtocol(file, result.Diagnostics),
		})
	}
}

func diagnosticsToProtocol(file *source.File, ds []diagnostics.Diagnostic) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		start := toProtocolPosition(file, d.Pos)
		end := toProtocolPosition(file, d.End)
		severity := protocol.DiagnosticSeverityError
		if d.Severity == diagnostics.SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}
		code := string(d.Code)
		out = append(out, protocol.Diagnostic{
			Range:    protocol.Range{Start: start, End: end},
			Severity: &severity,
			Code:     &protocol.IntegerOrString{Value: code},
			Source:   strPtr(name),
			Message:  d.Message,
		})
	}
	return out
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	pos := fromProtocolPosition(doc.file, params.Position)
	node := treeutil.GetNodeAtPosition(doc.result.Script, pos, func(n *cst.Node) bool {
		return n.Kind == cst.KindIdentifier
	})
	if node == nil {
		return nil, nil
	}

	role := "reference"
	switch treeutil.GetIdentifierContext(node) {
	case treeutil.IdentifierContextDeclaration:
		role = "declaration"
	case treeutil.IdentifierContextMember:
		role = "member"
	}

	contents := protocol.MarkupContent{
		Kind:  protocol.MarkupKindPlainText,
		Value: node.TokenLiteral() + " (" + role + ")",
	}
	return &protocol.Hover{Contents: contents}, nil
}

func (s *Server) textDocumentDefinition(ctx *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc := s.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	pos := fromProtocolPosition(doc.file, params.Position)
	node := treeutil.GetNodeAtPosition(doc.result.Script, pos, func(n *cst.Node) bool {
		return n.Kind == cst.KindIdentifier
	})
	if node == nil || treeutil.GetIdentifierContext(node) != treeutil.IdentifierContextReference {
		return nil, nil
	}

	decl := findDeclaration(doc.result.Script, node.TokenLiteral())
	if decl == nil {
		return nil, nil
	}
	return protocol.Location{
		URI:   params.TextDocument.URI,
		Range: toProtocolRange(doc.file, decl.Range),
	}, nil
}

// findDeclaration walks the whole tree (nested namespaces included) and
// returns the first declaration named name, matching on the first
// Identifier child of each declaration node. It does not resolve
// namespace-qualified names or scoping.
func findDeclaration(root *cst.Node, name string) *cst.Node {
	var found *cst.Node
	treeutil.Walk(root, func(n *cst.Node) bool {
		if found != nil {
			return false
		}
		if !declarationKinds[n.Kind] || len(n.Children) == 0 {
			return true
		}
		if id := n.Children[0]; id.Kind == cst.KindIdentifier && id.TokenLiteral() == name {
			found = n
			return false
		}
		return true
	})
	return found
}

var declarationKinds = map[cst.Kind]bool{
	cst.KindModelStatement:               true,
	cst.KindScalarStatement:              true,
	cst.KindInterfaceStatement:           true,
	cst.KindUnionStatement:               true,
	cst.KindEnumStatement:                true,
	cst.KindAliasStatement:               true,
	cst.KindOperationStatement:           true,
	cst.KindFunctionDeclarationStatement: true,
}

func (s *Server) textDocumentFormatting(ctx *glsp.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.get(params.TextDocument.URI)
	if doc == nil {
		return nil, nil
	}
	formatted := printer.Print(doc.result.Script)

	lastLine := doc.file.LineCol(doc.file.Len())
	return []protocol.TextEdit{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   protocol.Position{Line: protocol.UInteger(lastLine.Line), Character: 0},
		},
		NewText: formatted,
	}}, nil
}

func (s *Server) get(uri protocol.DocumentUri) *document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

func toProtocolPosition(file *source.File, pos source.Pos) protocol.Position {
	lc := file.LineCol(pos)
	return protocol.Position{Line: protocol.UInteger(lc.Line - 1), Character: protocol.UInteger(lc.Column - 1)}
}

func toProtocolRange(file *source.File, r source.Range) protocol.Range {
	return protocol.Range{Start: toProtocolPosition(file, r.Start), End: toProtocolPosition(file, r.End)}
}

func fromProtocolPosition(file *source.File, p protocol.Position) source.Pos {
	line := int(p.Line) + 1
	if line < 1 || line > int(p.Line)+1 {
		line = 1
	}
	col := int(p.Character) + 1
	var pos source.Pos
	for l := 1; l < line; l++ {
		pos += source.Pos(len(file.LineText(l)) + 1)
	}
	return pos + source.Pos(col-1)
}

func uriToPath(uri protocol.DocumentUri) string {
	const filePrefix = "file://"
	s := string(uri)
	if len(s) >= len(filePrefix) && s[:len(filePrefix)] == filePrefix {
		return s[len(filePrefix):]
	}
	return s
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func intPtr(i int) *protocol.TextDocumentSyncKind {
	v := protocol.TextDocumentSyncKind(i)
	return &v
}
