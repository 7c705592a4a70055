package libdiff

import "github.com/scratchtools/go-ws/ir"

// MakeDiff returns the operation turning from into to. A nil from is an
// insertion and a nil to a deletion.
func MakeDiff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil:
		return op(InsertKey, to)
	case to == nil:
		return op(DeleteKey, from)
	default:
		return ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.StringSign(DeleteKey), Val: from},
			{Key: ir.StringSign(InsertKey), Val: to},
		})
	}
}

func op(key string, v *ir.Node) *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign(key), Val: v}})
}

func keep(n int) *ir.Node {
	return op(KeepKey, ir.FromInt(int64(n)))
}
