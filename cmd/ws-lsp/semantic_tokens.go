package main

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/scratchtools/go-ws/token"
)

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeTokens(collectSemanticTokens(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	toks := collectSemanticTokens(doc)
	toks = slices.DeleteFunc(toks, func(t semToken) bool {
		return t.line < params.Range.Start.Line || t.line > params.Range.End.Line
	})
	return &protocol.SemanticTokens{Data: encodeTokens(toks)}, nil
}

// semToken is a token on a single line; character and length count
// UTF-16 code units.
type semToken struct {
	line      uint32
	character uint32
	length    uint32
	tokenType protocol.SemanticTokenTypes
}

func tokenTypeIndex(t protocol.SemanticTokenTypes) uint32 {
	return uint32(slices.Index(tokenLegend, t))
}

// encodeTokens produces the relative encoding of toks, which must be in
// document order.
func encodeTokens(toks []semToken) []uint32 {
	data := make([]uint32, 0, 5*len(toks))
	var prevLine, prevChar uint32
	for _, t := range toks {
		deltaLine := t.line - prevLine
		deltaChar := t.character
		if deltaLine == 0 {
			deltaChar = t.character - prevChar
		}
		data = append(data, deltaLine, deltaChar, t.length, tokenTypeIndex(t.tokenType), 0)
		prevLine, prevChar = t.line, t.character
	}
	return data
}

type lexer struct {
	doc  *document
	src  string
	off  int
	toks []semToken

	// the literal being read, typed once the structural character after
	// it is known.
	litToks  []semToken
	litText  strings.Builder
	litQuote bool
	inLit    bool
}

// collectSemanticTokens lexes doc with the parser's character classes.
// It does not need doc to parse.
func collectSemanticTokens(doc *document) []semToken {
	lx := &lexer{doc: doc, src: doc.content}
	lx.run()
	return lx.toks
}

func (lx *lexer) next() (rune, int) {
	if lx.off >= len(lx.src) {
		return -1, lx.off
	}
	r, size := utf8.DecodeRuneInString(lx.src[lx.off:])
	start := lx.off
	lx.off += size
	return r, start
}

func (lx *lexer) run() {
	for {
		r, start := lx.next()
		if r < 0 {
			lx.endLiteral(false)
			return
		}
		switch token.Classify(r) {
		case token.CWhite:
		case token.CComment:
			lx.skipTo('/', false)
			lx.emit(lx.dst(), start, lx.off, protocol.SemanticTokenComment)
		case token.CQuote:
			lx.beginLiteral()
			lx.litQuote = true
			lx.skipTo(r, true)
			lx.emit(&lx.litToks, start, lx.off, protocol.SemanticTokenString)
		case token.CEscape:
			lx.beginLiteral()
			lx.next()
			lx.word(start)
		case token.CLiteral:
			lx.beginLiteral()
			lx.word(start)
		case token.CDefiner:
			lx.endLiteral(true)
			lx.emit(&lx.toks, start, lx.off, protocol.SemanticTokenOperator)
		case token.CSeparator:
			lx.endLiteral(false)
			lx.emit(&lx.toks, start, lx.off, protocol.SemanticTokenOperator)
		case token.COpen, token.CClose:
			lx.endLiteral(false)
		case token.CAlias:
			lx.endLiteral(false)
			lx.skipTo(')', false)
			lx.emit(&lx.toks, start, lx.off, protocol.SemanticTokenVariable)
		case token.CCopy:
			lx.beginLiteral()
			lx.litQuote = true
			lx.skipTo(')', false)
			lx.emit(&lx.litToks, start, lx.off, protocol.SemanticTokenVariable)
		}
	}
}

// word reads the rest of an unquoted run of literal characters starting
// at start.
func (lx *lexer) word(start int) {
loop:
	for lx.off < len(lx.src) {
		r, size := utf8.DecodeRuneInString(lx.src[lx.off:])
		switch token.Classify(r) {
		case token.CLiteral:
			lx.off += size
		case token.CEscape:
			lx.off += size
			lx.next()
		default:
			break loop
		}
	}
	if lx.litText.Len() > 0 {
		lx.litText.WriteByte(' ')
	}
	lx.litText.WriteString(lx.src[start:lx.off])
	lx.emit(&lx.litToks, start, lx.off, protocol.SemanticTokenString)
}

// skipTo consumes up to and including the next end, or to the end of
// input.
func (lx *lexer) skipTo(end rune, escapes bool) {
	for {
		r, _ := lx.next()
		switch {
		case r < 0, r == end:
			return
		case escapes && r == '\\':
			lx.next()
		}
	}
}

// dst is where tokens go so they stay in document order.
func (lx *lexer) dst() *[]semToken {
	if lx.inLit {
		return &lx.litToks
	}
	return &lx.toks
}

func (lx *lexer) beginLiteral() {
	if !lx.inLit {
		lx.inLit = true
		lx.litToks = lx.litToks[:0]
		lx.litText.Reset()
		lx.litQuote = false
	}
}

// endLiteral types the pending literal. It is a key when followed by a
// definer.
func (lx *lexer) endLiteral(isKey bool) {
	if !lx.inLit {
		return
	}
	lx.inLit = false
	typ := protocol.SemanticTokenString
	text := lx.litText.String()
	switch {
	case isKey:
		typ = protocol.SemanticTokenProperty
	case lx.litQuote:
	case strings.HasPrefix(text, "?"):
		typ = protocol.SemanticTokenKeyword
	case isNumber(text):
		typ = protocol.SemanticTokenNumber
	}
	for _, t := range lx.litToks {
		if t.tokenType == protocol.SemanticTokenString || isKey && t.tokenType != protocol.SemanticTokenComment {
			t.tokenType = typ
		}
		lx.toks = append(lx.toks, t)
	}
}

func isNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// emit appends the byte range [start, end) to dst, split at line breaks.
func (lx *lexer) emit(dst *[]semToken, start, end int, typ protocol.SemanticTokenTypes) {
	for start < end {
		lineEnd := end
		if nl := strings.IndexByte(lx.src[start:end], '\n'); nl >= 0 {
			lineEnd = start + nl
		}
		if lineEnd > start {
			p, q := lx.doc.position(start), lx.doc.position(lineEnd)
			*dst = append(*dst, semToken{
				line:      p.Line,
				character: p.Character,
				length:    q.Character - p.Character,
				tokenType: typ,
			})
		}
		start = lineEnd + 1
	}
}
