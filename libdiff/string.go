package libdiff

import (
	"strings"

	"github.com/scratchtools/go-ws/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString records a change between long strings as a go-diff delta.
// Short strings, and changes whose delta would not be shorter than the new
// value, are replaced whole.
func DiffString(from, to *ir.Node) *ir.Node {
	if len(from.String) < minStringDiff || len(to.String) < minStringDiff {
		return MakeDiff(from, to)
	}
	dmp := diffpatch.New()
	multiLine := strings.Contains(from.String, "\n") && strings.Contains(to.String, "\n")
	diffs := dmp.DiffMain(from.String, to.String, multiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)
	delta := dmp.DiffToDelta(diffs)
	if len(delta) >= len(to.String) {
		return MakeDiff(from, to)
	}
	return op(StringKey, ir.FromString(delta))
}

func patchString(doc, delta *ir.Node, p *ir.Path) (*ir.Node, error) {
	if delta.Type != ir.StringType {
		return nil, badDiff(p, "%s value is %s", StringKey, delta.Type)
	}
	if doc == nil || doc.Type != ir.StringType {
		return nil, conflict(p)
	}
	dmp := diffpatch.New()
	diffs, err := dmp.DiffFromDelta(doc.String, delta.String)
	if err != nil {
		return nil, conflictErr(p, err)
	}
	return ir.FromString(dmp.DiffText2(diffs)), nil
}
