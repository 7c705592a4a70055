package parse

import (
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

type parseOpts struct {
	permissive bool
	positions  map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// Permissive tolerates a separator directly after an opening bracket.
func Permissive() ParseOption {
	return WithPermissive(true)
}

func WithPermissive(v bool) ParseOption {
	return func(o *parseOpts) { o.permissive = v }
}

// ParsePositions records in m where each value node starts. Nodes shared
// through an alias or an inherit keep the position of their source.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
