package eval

import (
	"github.com/expr-lang/expr"

	"github.com/scratchtools/go-ws/ir"
)

const (
	getName   name = "get"
	hasName   name = "has"
	keysName  name = "keys"
	truthName name = "truth"
)

type pathFunc struct {
	name
	fn  func(doc *ir.Node, p *ir.Path) (any, error)
	typ any
}

func (s pathFunc) Option(doc *ir.Node) expr.Option {
	return expr.Function(s.String(), func(params ...any) (any, error) {
		return s.fn(doc, ir.ParsePath(params[0].(string)))
	}, s.typ)
}

var (
	getSym = &pathFunc{
		name: getName,
		fn: func(doc *ir.Node, p *ir.Path) (any, error) {
			res, err := doc.Get(p)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
		typ: new(func(string) any),
	}
	hasSym = &pathFunc{
		name: hasName,
		fn: func(doc *ir.Node, p *ir.Path) (any, error) {
			_, err := doc.Get(p)
			return err == nil, nil
		},
		typ: new(func(string) bool),
	}
	keysSym = &pathFunc{
		name: keysName,
		fn: func(doc *ir.Node, p *ir.Path) (any, error) {
			res, err := doc.Get(p)
			if err != nil {
				return nil, err
			}
			keys := make([]any, len(res.Fields))
			for i, f := range res.Fields {
				keys[i] = ir.SignOf(f).String()
			}
			return keys, nil
		},
		typ: new(func(string) []any),
	}
	truthSym = &pathFunc{
		name: truthName,
		fn: func(doc *ir.Node, p *ir.Path) (any, error) {
			res, err := doc.Get(p)
			if err != nil {
				return false, nil
			}
			return ir.Truth(res), nil
		},
		typ: new(func(string) bool),
	}
)

// Get resolves a reference path such as "a.b.0" against the document.
func Get() Symbol { return getSym }

// Has reports whether a reference path resolves.
func Has() Symbol { return hasSym }

// Keys lists the keys of the mapping at a reference path in order.
func Keys() Symbol { return keysSym }

// Truth reports the truth of the value at a reference path. A path that
// does not resolve is false.
func Truth() Symbol { return truthSym }
