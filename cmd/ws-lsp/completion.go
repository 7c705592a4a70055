package main

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.lsp.dev/protocol"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		Items: completions(doc, s.docs.lastGood(doc.uri), doc.offset(params.Position)),
	}, nil
}

func completions(doc *document, root *ir.Node, off int) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	if ref, ok := referencePrefix(doc.content[:off]); ok {
		if root == nil {
			return items
		}
		span := doc.span(off-len(ref), off)
		for _, p := range rank(ref, referencePaths(root)) {
			items = append(items, protocol.CompletionItem{
				Label:    p,
				Kind:     protocol.CompletionItemKindReference,
				TextEdit: &protocol.TextEdit{Range: span, NewText: p},
			})
		}
		return items
	}
	word := wordBefore(doc.content[:off])
	if !strings.HasPrefix(word, "?") {
		return items
	}
	span := doc.span(off-len(word), off)
	for _, name := range rank(word, token.SpecialNames()) {
		sp, _ := token.LookupSpecial(name)
		items = append(items, protocol.CompletionItem{
			Label:    name,
			Kind:     protocol.CompletionItemKindKeyword,
			Detail:   sp.String(),
			TextEdit: &protocol.TextEdit{Range: span, NewText: name},
		})
	}
	return items
}

// rank orders the candidates matching prefix fuzzily, closest first.
func rank(prefix string, candidates []string) []string {
	ranks := fuzzy.RankFindFold(prefix, candidates)
	sort.Sort(ranks)
	res := make([]string, len(ranks))
	for i, r := range ranks {
		res[i] = r.Target
	}
	return res
}

// wordBefore returns the literal characters directly before the end of
// text.
func wordBefore(text string) string {
	i := len(text)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if token.Classify(r) != token.CLiteral {
			break
		}
		i -= size
	}
	return text[i:]
}

// referencePrefix reports whether text ends inside an unclosed reference
// and returns what was written of it.
func referencePrefix(text string) (string, bool) {
	if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	open := strings.LastIndexByte(text, '(')
	if open < 0 || strings.IndexByte(text[open:], ')') >= 0 {
		return "", false
	}
	return text[open+1:], true
}

// referencePaths lists the paths of every value reachable from root
// through mapping keys and sequence indices.
func referencePaths(root *ir.Node) []string {
	var res []string
	path := ir.NewPath()
	var visit func(*ir.Node)
	visit = func(node *ir.Node) {
		for i, child := range node.Values {
			if node.Type == ir.MappingType {
				path.Append(ir.SignOf(node.Fields[i]))
			} else {
				path.Append(ir.IntSign(int64(i)))
			}
			res = append(res, path.String())
			visit(child)
			path.Pop()
		}
	}
	visit(root)
	return res
}
