package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/scratchtools/go-ws/format"
	"github.com/scratchtools/go-ws/ir"
)

var ErrEncode = errors.New("encode error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w followed by a newline. The default format is
// indented JSON.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.JSONFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	buf := bytes.NewBuffer(nil)
	switch es.format {
	case format.JSONFormat:
		if err := encodeJSON(node, buf, es); err != nil {
			return err
		}
		buf.WriteByte('\n')
	case format.YAMLFormat:
		if err := encodeYAML(node, buf, es); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %w: cannot write %s", ErrEncode, format.ErrBadFormat, es.format)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func aliasErr(node *ir.Node) error {
	return fmt.Errorf("%w: unresolved alias to %q", ErrEncode, node.Source)
}
