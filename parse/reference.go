package parse

import (
	"io"
	"strings"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/token"
)

// reference reads a reference directive up to and including its ')'. The
// opening '(' at start has already been read. Segments are taken as
// written, an integer segment naming an index or an integer key. A
// leading '.' starts from the path of the current container.
func (b *builder) reference(start *token.Pos) (*ir.Path, error) {
	res := ir.NewPath()
	seg := &strings.Builder{}
	read, leading := false, false
	for {
		r, pos, err := b.sc.ReadRune()
		if err == io.EOF {
			return nil, syntaxErr(start, "unterminated reference")
		}
		if err != nil {
			return nil, scanErr(err)
		}
		switch r {
		case '.':
			switch {
			case !read:
				res = b.path.Clone()
				leading = true
			case leading:
				return nil, syntaxErr(pos, "extra leading '.' in reference")
			case seg.Len() == 0:
				return nil, syntaxErr(pos, "empty segment in reference")
			default:
				res.Append(ir.NameSign(seg.String()))
				seg.Reset()
			}
		case ')':
			if seg.Len() != 0 {
				res.Append(ir.NameSign(seg.String()))
			}
			if res.IsEmpty() {
				return nil, syntaxErr(start, "empty reference")
			}
			return res, nil
		default:
			seg.WriteRune(r)
			leading = false
		}
		read = true
	}
}
