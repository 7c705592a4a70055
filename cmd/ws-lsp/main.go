package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"

	"github.com/scratchtools/go-ws/ir"
)

const lsName = "ws-lsp"

var version = "0.0.1"

// stdout carries the protocol, so logs go to stderr.
var theLog = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	if os.Getenv("WS_LSP_GOPS") != "" {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		}
	}
	ctx := context.Background()
	server := newServer()
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(stdio{Reader: os.Stdin, Writer: os.Stdout}))
	server.conn = conn
	conn.Go(ctx, protocol.ServerHandler(server, nil))
	<-conn.Done()
}

type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error { return nil }

// Server serves text sync, diagnostics, hover, completion and semantic
// tokens. Everything else is answered by unsupported.
type Server struct {
	unsupported

	conn jsonrpc2.Conn
	docs *documentStore
}

var _ protocol.Server = (*Server)(nil)

func newServer() *Server {
	return &Server{
		docs: &documentStore{
			docs: make(map[string]*document),
			good: make(map[string]*ir.Node),
		},
	}
}

var tokenLegend = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenVariable,
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindIncremental,
			},
			HoverProvider:      true,
			CompletionProvider: &protocol.CompletionOptions{TriggerCharacters: []string{"?", "(", "."}},
			SemanticTokensProvider: map[string]any{
				"legend": protocol.SemanticTokensLegend{
					TokenTypes:     tokenLegend,
					TokenModifiers: []protocol.SemanticTokenModifiers{},
				},
				"full":  true,
				"range": true,
			},
		},
		ServerInfo: &protocol.ServerInfo{Name: lsName, Version: version},
	}, nil
}

func (s *Server) Initialized(context.Context, *protocol.InitializedParams) error { return nil }
func (s *Server) Shutdown(context.Context) error { return nil }
func (s *Server) Exit(context.Context) error { return nil }
func (s *Server) SetTrace(context.Context, *protocol.SetTraceParams) error { return nil }
