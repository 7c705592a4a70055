package eval

import (
	"github.com/expr-lang/expr"

	"github.com/scratchtools/go-ws/ir"
)

// Symbol is a function made available to expressions. Option binds it to
// the document being evaluated.
type Symbol interface {
	String() string
	Option(doc *ir.Node) expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}
