package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/parse"
)

// textFunc is a symbol taking one string argument and ignoring the
// document.
type textFunc struct {
	name
	fn  func(string) (any, error)
	typ any
}

func (s textFunc) Option(_ *ir.Node) expr.Option {
	return expr.Function(s.String(), func(params ...any) (any, error) {
		res, err := s.fn(params[0].(string))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s, err)
		}
		return res, nil
	}, s.typ)
}

var (
	osenvSym = &textFunc{
		name: "getenv",
		fn: func(v string) (any, error) {
			return os.Getenv(strings.TrimSpace(v)), nil
		},
		typ: new(func(string) string),
	}
	toValueSym = &textFunc{
		name: "tovalue",
		fn: func(text string) (any, error) {
			if debug.Eval() {
				debug.Logf("tovalue on %q\n", text)
			}
			node, err := parse.ParseString(text)
			if err != nil {
				return nil, err
			}
			return ir.ToAny(node), nil
		},
		typ: new(func(string) any),
	}
)

// OSEnv reads an environment variable.
func OSEnv() Symbol { return osenvSym }

// ToValue parses wS text into a value.
func ToValue() Symbol { return toValueSym }
