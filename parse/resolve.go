package parse

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

// nameOf returns the key a literal names. Unquoted integers name integer
// keys.
func nameOf(lit token.Literal) ir.Sign {
	if lit.Quoted {
		return ir.StringSign(lit.Text)
	}
	return ir.NameSign(lit.Text)
}

// coerce converts an unquoted literal to an integer, then a float, and
// falls back to the literal text. Integers too large for int64 become
// floats.
func coerce(raw string) *ir.Node {
	if raw == "" {
		return ir.FromString("")
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ir.FromInt(i)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err == nil || errors.Is(err, strconv.ErrRange) {
		return ir.FromFloat(f)
	}
	return ir.FromString(raw)
}

// value is the node for literal lit stored under key in the current
// container.
func (b *builder) value(key ir.Sign, lit token.Literal) (*ir.Node, error) {
	if lit.Quoted {
		return ir.FromString(lit.Text), nil
	}
	if !strings.HasPrefix(lit.Text, "?") {
		return coerce(lit.Text), nil
	}
	sp, ok := token.LookupSpecial(lit.Text)
	if !ok {
		if s := token.Suggest(lit.Text); s != "" {
			return nil, syntaxErr(lit.Pos, "unknown special value %q, did you mean %q?", lit.Text, s)
		}
		return nil, syntaxErr(lit.Pos, "unknown special value %q", lit.Text)
	}
	switch sp {
	case token.STrue:
		return ir.FromBool(true), nil
	case token.SFalse:
		return ir.FromBool(false), nil
	case token.SNull:
		return ir.Null(), nil
	case token.SEmpty:
		return ir.FromString(""), nil
	case token.SMapping:
		return ir.NewMapping(), nil
	case token.SSequence:
		return ir.NewSequence(), nil
	default:
		return b.inherit(key, lit.Pos)
	}
}

// inherit looks key up at each level from the root down to the parent of
// the current container. At a mapping level a key missing there is looked
// up in the sibling named like the current container. Deeper levels win.
func (b *builder) inherit(key ir.Sign, pos *token.Pos) (*ir.Node, error) {
	var val *ir.Node
	last, _ := b.path.Top()
	for i := range b.path.Len() {
		loc := b.stack[i].node
		if v := member(loc, key); v != nil {
			val = v
		} else if loc.Type == ir.MappingType {
			if sib := loc.Lookup(last); sib != nil {
				if v := member(sib, key); v != nil {
					val = v
				}
			}
		}
	}
	if val == nil {
		return nil, refErr(pos, nil, "unable to resolve inherit of %q at %q", key, b.path)
	}
	if val.Type == ir.AliasType {
		return ir.NewAlias(val.Source.Clone()), nil
	}
	if val.Contains(b.top()) {
		return nil, refErr(pos, nil, "inherit of %q at %q captures an enclosing container", key, b.path)
	}
	return val, nil
}

// member returns the entry of container c at key, or nil. Sequences are
// indexed by the integer reading of key.
func member(c *ir.Node, key ir.Sign) *ir.Node {
	switch c.Type {
	case ir.SequenceType:
		i, ok := key.Index()
		if !ok || i < 0 || i >= int64(len(c.Values)) {
			return nil
		}
		return c.Values[i]
	case ir.MappingType:
		return c.Lookup(key)
	}
	return nil
}

// scalarString is the text a copy splices into a literal.
func scalarString(v *ir.Node) string {
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NumberType:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		f := *v.Float64
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !math.IsInf(f, 0) && !math.IsNaN(f) && !strings.ContainsAny(s, ".") {
			s += ".0"
		}
		return s
	default:
		return v.String
	}
}
