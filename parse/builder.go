package parse

import (
	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

type state int

const (
	stateVoid state = iota
	stateOpen
	stateClosed
)

type frame struct {
	node *ir.Node
	open rune
	pos  *token.Pos
}

// builder holds the state of a single Parse call. stack holds the live
// containers from the root down; path holds the signs between them, so
// path.Len() == len(stack)-1 while the root is open.
type builder struct {
	sc    *token.Scanner
	opts  *parseOpts
	state state
	root  *ir.Node
	stack []frame
	path  *ir.Path

	name    ir.Sign
	hasName bool

	// committed is set once the current slot has been written by a
	// closing bracket or an alias, so a following separator is not
	// dangling.
	committed bool

	aliases []*pendingAlias
}

func newBuilder(d []byte, opts *parseOpts) *builder {
	return &builder{
		sc:   token.NewScanner(d),
		opts: opts,
		path: ir.NewPath(),
	}
}

func (b *builder) run() (*ir.Node, error) {
	for {
		ev, err := b.sc.Next()
		if err != nil {
			return nil, scanErr(err)
		}
		if debug.Parse() {
			debug.Logf("parse %s %s literal=%t path=%q\n", ev.Kind, ev, b.sc.HasLiteral(), b.path)
		}
		switch b.state {
		case stateVoid:
			if b.sc.HasLiteral() {
				lit := b.sc.Literal()
				return nil, syntaxErr(lit.Pos, "literal %q before the root container", lit.Text)
			}
			switch ev.Kind {
			case token.KEOF:
				return nil, unclosedErr(ev.Pos, "empty document")
			case token.KOpen:
				b.openRoot(ev)
				continue
			default:
				return nil, syntaxErr(ev.Pos, "%s before the root container", ev)
			}
		case stateClosed:
			if b.sc.HasLiteral() {
				lit := b.sc.Literal()
				return nil, syntaxErr(lit.Pos, "literal %q after the root container", lit.Text)
			}
			if ev.Kind == token.KEOF {
				return b.root, nil
			}
			return nil, syntaxErr(ev.Pos, "%s after the root container", ev)
		}

		switch ev.Kind {
		case token.KEOF:
			f := b.stack[len(b.stack)-1]
			return nil, unclosedErr(ev.Pos, "%q opened at %s is not closed", f.open, f.pos)
		case token.KOpen:
			err = b.open(ev)
		case token.KClose:
			err = b.close(ev)
		case token.KSeparator:
			err = b.separator(ev)
		case token.KDefiner:
			err = b.definer(ev)
		case token.KAlias:
			err = b.alias(ev)
		case token.KCopy:
			err = b.copy(ev)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (b *builder) top() *ir.Node {
	return b.stack[len(b.stack)-1].node
}

func (b *builder) trackPos(node *ir.Node, pos *token.Pos) {
	if b.opts.positions == nil || pos == nil {
		return
	}
	if _, ok := b.opts.positions[node]; !ok {
		b.opts.positions[node] = pos
	}
}

func (b *builder) resetSlot() {
	b.sc.Reset()
	b.hasName = false
	b.name = ir.Sign{}
}

func newContainer(open rune) *ir.Node {
	if open == '[' {
		return ir.NewSequence()
	}
	return ir.NewMapping()
}

func (b *builder) openRoot(ev token.Event) {
	b.root = newContainer(ev.Rune)
	b.trackPos(b.root, ev.Pos)
	b.stack = append(b.stack, frame{node: b.root, open: ev.Rune, pos: ev.Pos})
	b.state = stateOpen
	b.committed = b.opts.permissive
}

func (b *builder) open(ev token.Event) error {
	parent := b.top()
	key, err := b.slotKey(ev, true)
	if err != nil {
		return err
	}
	child := newContainer(ev.Rune)
	b.trackPos(child, ev.Pos)
	parent.Set(key, child)
	b.path.Append(key)
	b.stack = append(b.stack, frame{node: child, open: ev.Rune, pos: ev.Pos})
	b.resetSlot()
	b.committed = b.opts.permissive
	return nil
}

// slotKey returns the Sign of the slot the next value of the current
// container goes to. In a mapping a literal with no bound name is
// promoted to the name. When exclusive is set a literal may not precede
// the value.
func (b *builder) slotKey(ev token.Event, exclusive bool) (ir.Sign, error) {
	parent := b.top()
	hasLit := b.sc.HasLiteral()
	if parent.Type == ir.SequenceType {
		if exclusive && hasLit {
			lit := b.sc.Literal()
			return ir.Sign{}, syntaxErr(ev.Pos, "literal %q before %s in a sequence", lit.Text, ev)
		}
		return ir.IntSign(int64(len(parent.Values))), nil
	}
	if b.hasName {
		if exclusive && hasLit {
			lit := b.sc.Literal()
			return ir.Sign{}, syntaxErr(ev.Pos, "literal %q before %s for key %q", lit.Text, ev, b.name)
		}
		return b.name, nil
	}
	if !hasLit {
		return ir.Sign{}, syntaxErr(ev.Pos, "%s without a key", ev)
	}
	b.name = nameOf(b.sc.Literal())
	b.hasName = true
	b.sc.Reset()
	return b.name, nil
}

func (b *builder) separator(ev token.Event) error {
	done, err := b.commit(ev)
	if err != nil {
		return err
	}
	if !done && !b.committed {
		return syntaxErr(ev.Pos, "dangling separator %s", ev)
	}
	b.resetSlot()
	b.committed = false
	return nil
}

// commit writes the pending entry of the current container and reports
// whether there was one.
func (b *builder) commit(ev token.Event) (bool, error) {
	parent := b.top()
	hasLit := b.sc.HasLiteral()
	switch parent.Type {
	case ir.SequenceType:
		if !hasLit {
			return false, nil
		}
		key := ir.IntSign(int64(len(parent.Values)))
		return true, b.setValue(parent, key)
	default:
		switch {
		case b.hasName && hasLit:
			return true, b.setValue(parent, b.name)
		case b.hasName:
			return false, syntaxErr(ev.Pos, "key %q has no value", b.name)
		case hasLit:
			lit := b.sc.Literal()
			v := ir.Null()
			b.trackPos(v, lit.Pos)
			parent.Set(nameOf(lit), v)
			return true, nil
		}
	}
	return false, nil
}

func (b *builder) setValue(parent *ir.Node, key ir.Sign) error {
	lit := b.sc.Literal()
	v, err := b.value(key, lit)
	if err != nil {
		return err
	}
	if v.Type == ir.AliasType {
		b.addAlias(key, v, lit.Pos)
	}
	b.trackPos(v, lit.Pos)
	parent.Set(key, v)
	return nil
}

func (b *builder) definer(ev token.Event) error {
	if b.top().Type == ir.SequenceType {
		return syntaxErr(ev.Pos, "%s in a sequence", ev)
	}
	if !b.sc.HasLiteral() {
		return syntaxErr(ev.Pos, "%s without a key", ev)
	}
	if b.hasName {
		return syntaxErr(ev.Pos, "second %s after key %q", ev, b.name)
	}
	b.name = nameOf(b.sc.Literal())
	b.hasName = true
	b.sc.Reset()
	b.committed = false
	return nil
}

func (b *builder) close(ev token.Event) error {
	f := b.stack[len(b.stack)-1]
	want := token.Closer(f.open)
	if ev.Rune != want {
		return syntaxErr(ev.Pos, "mismatched closer: expected %q, got %q", want, ev.Rune)
	}
	if _, err := b.commit(ev); err != nil {
		return err
	}
	b.resetSlot()
	b.committed = true
	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) != 0 {
		if _, err := b.path.Pop(); err != nil {
			return err
		}
		return nil
	}
	b.state = stateClosed
	return b.resolveAliases()
}

func (b *builder) alias(ev token.Event) error {
	parent := b.top()
	key, err := b.slotKey(ev, true)
	if err != nil {
		return err
	}
	src, err := b.reference(ev.Pos)
	if err != nil {
		return err
	}
	ph := ir.NewAlias(src)
	b.addAlias(key, ph, ev.Pos)
	b.trackPos(ph, ev.Pos)
	parent.Set(key, ph)
	b.resetSlot()
	b.committed = true
	return nil
}

func (b *builder) copy(ev token.Event) error {
	r, pos, err := b.sc.ReadRune()
	if err != nil || r != '(' {
		return syntaxErr(pos, "%s must be followed by '('", ev)
	}
	if _, err := b.slotKey(ev, false); err != nil {
		return err
	}
	src, err := b.reference(pos)
	if err != nil {
		return err
	}
	v, err := src.Resolve(b.root)
	if err != nil {
		return refErr(ev.Pos, err, "copy of %q is broken", src)
	}
	if !v.Type.IsLeaf() || v.Type == ir.AliasType {
		return refErr(ev.Pos, nil, "copy of %q: %s is not a scalar", src, v.Type)
	}
	b.sc.AppendLiteral(scalarString(v), ev.Pos)
	b.committed = false
	return nil
}
