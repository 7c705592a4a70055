package parse

import (
	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

// pendingAlias is an alias waiting for the document to be complete.
// target is the path of its slot when the alias was read.
type pendingAlias struct {
	target      *ir.Path
	placeholder *ir.Node
	pos         *token.Pos
}

func (b *builder) addAlias(key ir.Sign, ph *ir.Node, pos *token.Pos) {
	target := b.path.Clone()
	target.Append(key)
	b.aliases = append(b.aliases, &pendingAlias{
		target:      target,
		placeholder: ph,
		pos:         pos,
	})
}

// resolveAliases writes the value at each alias source into the alias
// slot, in the order the aliases were read. The slot is found again from
// the root, so an alias whose key was later redefined still overwrites
// it. Values are shared, not copied.
func (b *builder) resolveAliases() error {
	for _, pa := range b.aliases {
		src := pa.placeholder.Source
		v, err := src.Resolve(b.root)
		if err != nil {
			return refErr(pa.pos, err, "alias at %q to %q is broken", pa.target, src)
		}
		if v.Type == ir.AliasType {
			return refErr(pa.pos, nil, "alias at %q to %q: source is itself an alias", pa.target, src)
		}
		in := pa.target.Clone()
		key, err := in.Pop()
		if err != nil {
			return err
		}
		parent, err := in.Resolve(b.root)
		if err != nil || !parent.Type.IsContainer() {
			return refErr(pa.pos, err, "alias at %q: the enclosing %q no longer holds a container", pa.target, in)
		}
		if v.Contains(parent) {
			return refErr(pa.pos, nil, "alias at %q to %q is cyclic", pa.target, src)
		}
		if debug.Alias() {
			debug.Logf("alias %q -> %q\n", pa.target, src)
		}
		if !parent.Set(key, v) {
			return refErr(pa.pos, nil, "alias at %q: slot %q is gone", pa.target, key)
		}
	}
	b.aliases = nil
	return nil
}
