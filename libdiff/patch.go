package libdiff

import (
	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
)

// Patch applies diff to doc and returns the result. doc is not modified;
// unchanged subtrees are shared with the result.
func Patch(doc, diff *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch %s\n  with %s\n", doc, diff)
	}
	p := ir.NewPath()
	res, err := patch(doc, diff, p)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, badDiff(p, "document deleted")
	}
	return res, nil
}

func patch(doc, d *ir.Node, p *ir.Path) (*ir.Node, error) {
	if d == nil {
		return doc, nil
	}
	if d.Type != ir.MappingType {
		return nil, badDiff(p, "operation is a %s", d.Type)
	}
	del := d.Lookup(ir.StringSign(DeleteKey))
	ins := d.Lookup(ir.StringSign(InsertKey))
	switch {
	case del != nil || ins != nil:
		n := 0
		if del != nil {
			n++
		}
		if ins != nil {
			n++
		}
		if d.Len() != n {
			return nil, badDiff(p, "unexpected keys beside %s/%s", DeleteKey, InsertKey)
		}
		if del == nil {
			if doc != nil {
				return nil, conflict(p)
			}
			return ins.Clone(), nil
		}
		if doc == nil || !ir.Equal(doc, del) {
			return nil, conflict(p)
		}
		if ins == nil {
			return nil, nil
		}
		return ins.Clone(), nil
	case d.Len() == 1 && d.Lookup(ir.StringSign(SequenceKey)) != nil:
		return patchSequence(doc, d.Values[0], p)
	case d.Len() == 1 && d.Lookup(ir.StringSign(StringKey)) != nil:
		return patchString(doc, d.Values[0], p)
	case d.Lookup(ir.StringSign(MappingKey)) != nil:
		keys := d.Lookup(ir.StringSign(OrderKey))
		if d.Len() != 1 && (keys == nil || d.Len() != 2) {
			return nil, badDiff(p, "unexpected keys beside %s", MappingKey)
		}
		return patchMapping(doc, d.Lookup(ir.StringSign(MappingKey)), keys, p)
	default:
		return nil, badDiff(p, "unknown operation")
	}
}

func patchMapping(doc, changes, keys *ir.Node, p *ir.Path) (*ir.Node, error) {
	if changes.Type != ir.MappingType {
		return nil, badDiff(p, "%s value is %s", MappingKey, changes.Type)
	}
	if doc == nil || doc.Type != ir.MappingType {
		return nil, conflict(p)
	}
	res := &ir.Node{
		Type:   ir.MappingType,
		Fields: append([]*ir.Node{}, doc.Fields...),
		Values: append([]*ir.Node{}, doc.Values...),
	}
	for i, f := range changes.Fields {
		s := ir.SignOf(f)
		p.Append(s)
		v, err := patch(res.Lookup(s), changes.Values[i], p)
		if err != nil {
			return nil, err
		}
		if v == nil {
			remove(res, s)
		} else {
			res.Set(s, v)
		}
		p.Pop()
	}
	if keys == nil {
		return res, nil
	}
	if keys.Type != ir.SequenceType {
		return nil, badDiff(p, "%s value is %s", OrderKey, keys.Type)
	}
	if len(keys.Values) != res.Len() {
		return nil, conflict(p)
	}
	ordered := ir.NewMapping()
	for _, k := range keys.Values {
		s := ir.SignOf(k)
		v := res.Lookup(s)
		if v == nil {
			return nil, conflict(p)
		}
		ordered.Set(s, v)
	}
	return ordered, nil
}

func remove(node *ir.Node, s ir.Sign) {
	i := node.Index(s)
	if i < 0 {
		return
	}
	node.Fields = append(node.Fields[:i], node.Fields[i+1:]...)
	node.Values = append(node.Values[:i], node.Values[i+1:]...)
}

func patchSequence(doc, script *ir.Node, p *ir.Path) (*ir.Node, error) {
	if script.Type != ir.SequenceType {
		return nil, badDiff(p, "%s value is %s", SequenceKey, script.Type)
	}
	if doc == nil || doc.Type != ir.SequenceType {
		return nil, conflict(p)
	}
	res := ir.NewSequence()
	pos := 0
	for _, e := range script.Values {
		p.Append(ir.IntSign(int64(pos)))
		if e.Type == ir.MappingType && e.Len() == 1 {
			if n := e.Lookup(ir.StringSign(KeepKey)); n != nil {
				if !n.IsInt() || *n.Int64 < 0 {
					return nil, badDiff(p, "%s count is not a natural number", KeepKey)
				}
				end := pos + int(*n.Int64)
				if end > len(doc.Values) {
					return nil, conflict(p)
				}
				res.Values = append(res.Values, doc.Values[pos:end]...)
				pos = end
				p.Pop()
				continue
			}
			if ins := e.Lookup(ir.StringSign(InsertKey)); ins != nil {
				res.Append(ins.Clone())
				p.Pop()
				continue
			}
		}
		if pos >= len(doc.Values) {
			return nil, conflict(p)
		}
		v, err := patch(doc.Values[pos], e, p)
		if err != nil {
			return nil, err
		}
		if v != nil {
			res.Append(v)
		}
		pos++
		p.Pop()
	}
	res.Values = append(res.Values, doc.Values[pos:]...)
	return res, nil
}
