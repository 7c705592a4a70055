package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/gomap"
	"github.com/scratchtools/go-ws/ir"
)

// DocVar names the variable holding the document.
const DocVar = "doc"

// Env holds additional variables visible to an expression.
type Env map[string]any

// Eval compiles and runs src with doc bound to DocVar and the entries of
// env as further variables. The result is converted back to a node.
func Eval(doc *ir.Node, src string, env Env) (*ir.Node, error) {
	if debug.Eval() {
		debug.Logf("eval %q on %s\n", src, doc)
	}
	vars := make(map[string]any, len(env)+1)
	for k, v := range env {
		if k == DocVar || Lookup(k) != nil {
			return nil, fmt.Errorf("%w: %w: %q", ErrEval, ErrReserved, k)
		}
		vars[k] = v
	}
	vars[DocVar] = ir.ToAny(doc)

	opts := []expr.Option{expr.Env(vars)}
	for _, s := range Symbols() {
		opts = append(opts, s.Option(doc))
	}
	prog, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrEval, src, err)
	}
	out, err := expr.Run(prog, vars)
	if err != nil {
		return nil, fmt.Errorf("%w: run %q: %w", ErrEval, src, err)
	}
	res, err := gomap.ToIR(out)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrEval, src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %s\n", src, res)
	}
	return res, nil
}
