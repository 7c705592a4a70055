// Package ws reads wS documents.
//
// wS is a whitespace-tolerant notation for mappings and sequences with
// type-coerced literals, special tokens such as ?true, aliases written
// (a.b) and ?inherit lookups. Parsing happens in [parse]; this package
// gathers the common entry points:
//
//	doc, err := ws.Loads(`{name: box, size: {w: 3, h: 4}}`)
//	w, err := ws.Get(doc, "size.w")
//
// along with document matching and patching.
package ws

import (
	"context"

	"github.com/scratchtools/go-ws/gomap"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/load"
	"github.com/scratchtools/go-ws/parse"
)

// Loads parses text.
func Loads(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(text, opts...)
}

// Load reads and parses the file at path.
func Load(ctx context.Context, path string, opts ...load.Option) (*ir.Node, []load.Warning, error) {
	return load.Load(ctx, path, opts...)
}

// Get resolves a reference path such as "a.b.0" in doc.
func Get(doc *ir.Node, path string) (*ir.Node, error) {
	return ir.ParsePath(path).Resolve(doc)
}

// Unmarshal parses text and stores the result in the value target points
// to, using `ws` struct tags.
func Unmarshal(text []byte, target any, opts ...parse.ParseOption) error {
	doc, err := parse.Parse(text, opts...)
	if err != nil {
		return err
	}
	return gomap.Decode(doc, target)
}
