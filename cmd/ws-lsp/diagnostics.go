package main

import (
	"context"
	"errors"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/parse"
	"github.com/scratchtools/go-ws/token"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	// good holds the last tree of each document that parsed.
	good map[string]*ir.Node
}

type document struct {
	uri       string
	content   string
	version   int32
	lines     *token.PosDoc
	node      *ir.Node
	err       error
	positions map[*ir.Node]*token.Pos
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.ParseString(content, parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		lines:     token.NewPosDoc([]byte(content)),
		node:      node,
		err:       err,
		positions: positions,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	if doc.err == nil {
		ds.good[uri] = doc.node
	}
	return doc
}

func (ds *documentStore) lastGood(uri string) *ir.Node {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.good[uri]
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
	delete(ds.good, uri)
}

// position converts byte offset off of doc to a protocol position, whose
// character counts UTF-16 code units.
func (doc *document) position(off int) protocol.Position {
	off = min(max(off, 0), len(doc.content))
	line, col := doc.lines.LineCol(off)
	n := 0
	for _, r := range doc.content[off-col : off] {
		n += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(n)}
}

// offset is the inverse of position. Characters past the end of a line
// clamp to the line end.
func (doc *document) offset(p protocol.Position) int {
	i := doc.lines.Offset(int(p.Line), 0)
	n := 0
	for i < len(doc.content) && n < int(p.Character) {
		r, size := utf8.DecodeRuneInString(doc.content[i:])
		if r == '\n' {
			break
		}
		n += utf16.RuneLen(r)
		i += size
	}
	return i
}

func (doc *document) span(start, end int) protocol.Range {
	return protocol.Range{Start: doc.position(start), End: doc.position(end)}
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Version:     uint32(doc.version),
		Diagnostics: validateDocument(doc),
	})
	if err != nil {
		theLog.Error("publish diagnostics", "uri", doc.uri, "error", err)
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err == nil {
		return diagnostics
	}
	diagnostic := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   "ws",
	}
	var pErr *parse.Error
	if errors.As(doc.err, &pErr) {
		diagnostic.Message = diagnosticMessage(pErr)
		if off := pErr.Offset(); off >= 0 {
			end := off
			if off < len(doc.content) {
				_, size := utf8.DecodeRuneInString(doc.content[off:])
				end += size
			}
			diagnostic.Range = doc.span(off, end)
		}
	}
	return append(diagnostics, diagnostic)
}

// diagnosticMessage is the error without its position, which the range
// already carries.
func diagnosticMessage(e *parse.Error) string {
	s := e.Kind.Error() + ": " + e.Msg
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := string(params.TextDocument.URI)
	doc := s.docs.get(uri)
	if doc == nil {
		return nil
	}
	doc = applyChanges(doc, params.ContentChanges)
	doc = s.docs.put(uri, doc.content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

// applyChanges applies changes in order. A change with a zero range and
// no range length replaces the whole content.
func applyChanges(doc *document, changes []protocol.TextDocumentContentChangeEvent) *document {
	for _, change := range changes {
		var content string
		if change.Range == (protocol.Range{}) && change.RangeLength == 0 {
			content = change.Text
		} else {
			start := doc.offset(change.Range.Start)
			end := max(doc.offset(change.Range.End), start)
			content = doc.content[:start] + change.Text + doc.content[end:]
		}
		doc = &document{
			uri:     doc.uri,
			content: content,
			lines:   token.NewPosDoc([]byte(content)),
		}
	}
	return doc
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
