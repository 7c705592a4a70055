package libdiff

import (
	"strconv"
	"strings"

	"github.com/scratchtools/go-ws/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffSequence produces an edit script over the elements of from and to.
//
// Each element is summarised as its type and, for scalars, its value.
// The summaries are diffed; aligned containers are diffed recursively and
// a deletion directly followed by an insertion becomes a replacement.
func DiffSequence(from, to *ir.Node) *ir.Node {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var (
		script []*ir.Node
		kept   int
		dels   []*ir.Node
	)
	add := func(d *ir.Node) {
		if kept > 0 {
			script = append(script, keep(kept))
			kept = 0
		}
		script = append(script, d)
	}
	flushDels := func() {
		for _, d := range dels {
			add(MakeDiff(d, nil))
		}
		dels = nil
	}
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range []rune(diff.Text) {
				dels = append(dels, from.Values[fi])
				fi++
			}
		case diffpatch.DiffInsert:
			for range []rune(diff.Text) {
				if len(dels) > 0 {
					add(MakeDiff(dels[0], to.Values[ti]))
					dels = dels[1:]
				} else {
					add(MakeDiff(nil, to.Values[ti]))
				}
				ti++
			}
			flushDels()
		case diffpatch.DiffEqual:
			flushDels()
			for range []rune(diff.Text) {
				if d := Diff(from.Values[fi], to.Values[ti]); d != nil {
					add(d)
				} else {
					kept++
				}
				fi++
				ti++
			}
		}
	}
	flushDels()
	if len(script) == 0 {
		return nil
	}
	return op(SequenceKey, ir.FromSlice(script))
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		if strings.Contains(node.String, "\n") {
			return node.Type.String() + "/m"
		}
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return node.Type.String() + "-i-" + strconv.FormatInt(*node.Int64, 10)
		}
		if node.Float64 != nil {
			return node.Type.String() + "-f-" + strconv.FormatFloat(*node.Float64, 'g', -1, 64)
		}
		return node.Type.String()
	default:
		return node.Type.String()
	}
}
