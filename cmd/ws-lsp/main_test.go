package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"

	"github.com/scratchtools/go-ws/parse"
)

const testURI = "file:///test.ws"

func TestPositionOffset(t *testing.T) {
	doc := newDocument(testURI, "{a:\"é\",\n b:\"𝄞x\"}", 1)
	x := strings.IndexByte(doc.content, 'x')
	p := doc.position(x)
	assert.Equal(t, protocol.Position{Line: 1, Character: 6}, p)
	assert.Equal(t, x, doc.offset(p))
	assert.Equal(t, len(doc.content), doc.offset(protocol.Position{Line: 1, Character: 100}))
	assert.Equal(t, strings.IndexByte(doc.content, '\n'), doc.offset(protocol.Position{Line: 0, Character: 100}))
}

func TestInitialize(t *testing.T) {
	s := newServer()
	res, err := s.Initialize(context.Background(), &protocol.InitializeParams{})
	require.NoError(t, err)
	caps := res.Capabilities
	assert.Equal(t, lsName, res.ServerInfo.Name)
	assert.Equal(t, true, caps.HoverProvider)
	require.NotNil(t, caps.CompletionProvider)
	assert.Contains(t, caps.CompletionProvider.TriggerCharacters, "?")
	assert.Nil(t, caps.DocumentFormattingProvider)

	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{})
	assert.NoError(t, err)
	assert.Nil(t, edits)
}

func TestValidateDocument(t *testing.T) {
	ok := newDocument(testURI, "{a:1}", 1)
	assert.Empty(t, validateDocument(ok))

	src := "{a:1,\n b:}}"
	bad := newDocument(testURI, src, 2)
	diags := validateDocument(bad)
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, protocol.DiagnosticSeverityError, d.Severity)
	assert.Equal(t, "ws", d.Source)
	assert.NotContains(t, d.Message, "offset")

	_, err := parse.ParseString(src)
	var pErr *parse.Error
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, bad.position(pErr.Offset()), d.Range.Start)
}

func TestApplyChanges(t *testing.T) {
	doc := newDocument(testURI, "{a:1,\nb:2}", 1)
	got := applyChanges(doc, []protocol.TextDocumentContentChangeEvent{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 1, Character: 2},
				End:   protocol.Position{Line: 1, Character: 3},
			},
			RangeLength: 1,
			Text:        "22",
		},
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 1},
				End:   protocol.Position{Line: 0, Character: 2},
			},
			RangeLength: 1,
			Text:        "x",
		},
	})
	assert.Equal(t, "{x:1,\nb:22}", got.content)

	got = applyChanges(doc, []protocol.TextDocumentContentChangeEvent{{Text: "[1]"}})
	assert.Equal(t, "[1]", got.content)
}

func TestDocumentStore(t *testing.T) {
	s := newServer()
	s.docs.put(testURI, "{a:1}", 1)
	good := s.docs.lastGood(testURI)
	require.NotNil(t, good)
	s.docs.put(testURI, "{a:", 2)
	assert.Same(t, good, s.docs.lastGood(testURI))
	assert.Error(t, s.docs.get(testURI).err)
	s.docs.remove(testURI)
	assert.Nil(t, s.docs.get(testURI))
	assert.Nil(t, s.docs.lastGood(testURI))
}

func TestHover(t *testing.T) {
	doc := newDocument(testURI, "{a:[1, x]}", 1)
	require.NoError(t, doc.err)

	node, path := findNodeAt(doc.node, doc.positions, 5)
	require.NotNil(t, node)
	text := buildHoverText(node, path)
	assert.Contains(t, text, "**Path:** `a.0`")
	assert.Contains(t, text, "**Type:** integer")
	assert.Contains(t, text, "**Value:** `1`")

	node, path = findNodeAt(doc.node, doc.positions, 8)
	text = buildHoverText(node, path)
	assert.Contains(t, text, "`a.1`")
	assert.Contains(t, text, "**Type:** string")

	node, path = findNodeAt(doc.node, doc.positions, 3)
	assert.Contains(t, buildHoverText(node, path), "sequence with 2 elements")

	node, path = findNodeAt(doc.node, doc.positions, 0)
	text = buildHoverText(node, path)
	assert.NotContains(t, text, "**Path:**")
	assert.Contains(t, text, "mapping with 1 keys")
}

func TestWordAndReferencePrefix(t *testing.T) {
	assert.Equal(t, "?tr", wordBefore("{a: ?tr"))
	assert.Equal(t, "", wordBefore("{a: "))
	ref, ok := referencePrefix("{a:1, b:(a.c")
	assert.True(t, ok)
	assert.Equal(t, "a.c", ref)
	_, ok = referencePrefix("{a:1, b:(a),")
	assert.False(t, ok)
}

func TestCompletions(t *testing.T) {
	doc := newDocument(testURI, "{a:?tr", 1)
	items := completions(doc, nil, len(doc.content))
	require.NotEmpty(t, items)
	var labels []string
	for _, it := range items {
		labels = append(labels, it.Label)
		assert.True(t, strings.HasPrefix(it.Label, "?"))
		require.NotNil(t, it.TextEdit)
		assert.Equal(t, protocol.Position{Line: 0, Character: 3}, it.TextEdit.Range.Start)
		assert.Equal(t, protocol.Position{Line: 0, Character: 6}, it.TextEdit.Range.End)
	}
	assert.Contains(t, labels, "?true")

	root, err := parse.ParseString("{server:{port:1}, x:2}")
	require.NoError(t, err)
	doc = newDocument(testURI, "{server:{port:1}, x:(ser", 2)
	items = completions(doc, root, len(doc.content))
	labels = labels[:0]
	for _, it := range items {
		labels = append(labels, it.Label)
	}
	assert.Contains(t, labels, "server")
	assert.Contains(t, labels, "server.port")
	assert.NotContains(t, labels, "x")

	assert.Empty(t, completions(doc, nil, len(doc.content)))
	assert.Empty(t, completions(newDocument(testURI, "{a:b", 1), root, 4))
}

func TestSemanticTokens(t *testing.T) {
	doc := newDocument(testURI, `{a: 12, b: ?true, c: "s" /note/, d: (a)}`, 1)
	type tok struct {
		char, length uint32
		typ          protocol.SemanticTokenTypes
	}
	want := []tok{
		{1, 1, protocol.SemanticTokenProperty},
		{2, 1, protocol.SemanticTokenOperator},
		{4, 2, protocol.SemanticTokenNumber},
		{6, 1, protocol.SemanticTokenOperator},
		{8, 1, protocol.SemanticTokenProperty},
		{9, 1, protocol.SemanticTokenOperator},
		{11, 5, protocol.SemanticTokenKeyword},
		{16, 1, protocol.SemanticTokenOperator},
		{18, 1, protocol.SemanticTokenProperty},
		{19, 1, protocol.SemanticTokenOperator},
		{21, 3, protocol.SemanticTokenString},
		{25, 6, protocol.SemanticTokenComment},
		{31, 1, protocol.SemanticTokenOperator},
		{33, 1, protocol.SemanticTokenProperty},
		{34, 1, protocol.SemanticTokenOperator},
		{36, 3, protocol.SemanticTokenVariable},
	}
	var got []tok
	for _, st := range collectSemanticTokens(doc) {
		assert.Zero(t, st.line)
		got = append(got, tok{st.character, st.length, st.tokenType})
	}
	assert.Equal(t, want, got)
}

func TestSemanticTokensMultiline(t *testing.T) {
	doc := newDocument(testURI, "{k: 'x\ny'}", 1)
	toks := collectSemanticTokens(doc)
	require.Len(t, toks, 4)
	assert.Equal(t, semToken{line: 0, character: 4, length: 2, tokenType: protocol.SemanticTokenString}, toks[2])
	assert.Equal(t, semToken{line: 1, character: 0, length: 2, tokenType: protocol.SemanticTokenString}, toks[3])

	data := encodeTokens(toks)
	require.Len(t, data, 20)
	assert.Equal(t, []uint32{0, 1, 1, tokenTypeIndex(protocol.SemanticTokenProperty), 0}, data[0:5])
	assert.Equal(t, []uint32{0, 1, 1, tokenTypeIndex(protocol.SemanticTokenOperator), 0}, data[5:10])
	assert.Equal(t, []uint32{0, 2, 2, tokenTypeIndex(protocol.SemanticTokenString), 0}, data[10:15])
	assert.Equal(t, []uint32{1, 0, 2, tokenTypeIndex(protocol.SemanticTokenString), 0}, data[15:20])
}
