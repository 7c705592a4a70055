package libdiff

import (
	"slices"

	"github.com/scratchtools/go-ws/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the operation turning from into to, or nil when they are
// equal.
func Diff(from, to *ir.Node) *ir.Node {
	if ir.Equal(from, to) {
		return nil
	}
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.MappingType:
		return DiffMapping(from, to)
	case ir.SequenceType:
		return DiffSequence(from, to)
	case ir.StringType:
		return DiffString(from, to)
	default:
		return MakeDiff(from, to)
	}
}

// DiffMapping aligns the keys of from and to, recursing on keys present
// in both. A key that moved is recorded as a change of the mapping's key
// order.
func DiffMapping(from, to *ir.Node) *ir.Node {
	signRunes := map[ir.Sign]rune{}
	fromRunes := mapKeys(signRunes, from)
	toRunes := mapKeys(signRunes, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	ops := map[ir.Sign]*ir.Node{}
	var order []ir.Sign
	set := func(s ir.Sign, d *ir.Node) {
		if _, ok := ops[s]; !ok {
			order = append(order, s)
		}
		ops[s] = d
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range []rune(diff.Text) {
				s := ir.SignOf(from.Fields[fi])
				if prev, ok := ops[s]; ok {
					// moved earlier
					set(s, Diff(from.Values[fi], prev.Lookup(ir.StringSign(InsertKey))))
				} else {
					set(s, MakeDiff(from.Values[fi], nil))
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for range []rune(diff.Text) {
				if d := Diff(from.Values[fi], to.Values[ti]); d != nil {
					set(ir.SignOf(to.Fields[ti]), d)
				}
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range []rune(diff.Text) {
				s := ir.SignOf(to.Fields[ti])
				if prev, ok := ops[s]; ok {
					// moved later
					set(s, Diff(prev.Lookup(ir.StringSign(DeleteKey)), to.Values[ti]))
				} else {
					set(s, MakeDiff(nil, to.Values[ti]))
				}
				ti++
			}
		}
	}
	changes := ir.NewMapping()
	for _, s := range order {
		if d := ops[s]; d != nil {
			changes.Set(s, d)
		}
	}
	kvs := []ir.KeyVal{{Key: ir.StringSign(MappingKey), Val: changes}}
	if keys := keyOrder(from, to); keys != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.StringSign(OrderKey), Val: keys})
	}
	if changes.Len() == 0 && len(kvs) == 1 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

// keyOrder returns the keys of to when patching from would not reproduce
// their order on its own.
func keyOrder(from, to *ir.Node) *ir.Node {
	toSigns := signs(to)
	fromSigns := signs(from)
	var natural []ir.Sign
	for _, s := range fromSigns {
		if slices.Contains(toSigns, s) {
			natural = append(natural, s)
		}
	}
	for _, s := range toSigns {
		if !slices.Contains(fromSigns, s) {
			natural = append(natural, s)
		}
	}
	if slices.Equal(natural, toSigns) {
		return nil
	}
	res := ir.NewSequence()
	for _, s := range toSigns {
		res.Append(s.Node())
	}
	return res
}

func signs(node *ir.Node) []ir.Sign {
	res := make([]ir.Sign, len(node.Fields))
	for i, f := range node.Fields {
		res[i] = ir.SignOf(f)
	}
	return res
}

func mapKeys(m map[ir.Sign]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		s := ir.SignOf(f)
		r, ok := m[s]
		if !ok {
			r = rune(len(m))
			m[s] = r
		}
		rs[i] = r
	}
	return rs
}
