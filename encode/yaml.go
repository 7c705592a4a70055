package encode

import (
	"bytes"

	"github.com/goccy/go-yaml"

	"github.com/scratchtools/go-ws/ir"
)

func encodeYAML(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	v, err := toYAML(node)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent), yaml.Flow(es.wire))
	if err != nil {
		return err
	}
	buf.Write(d)
	if len(d) == 0 || d[len(d)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return nil
}

// toYAML converts node to values go-yaml encodes in order.
func toYAML(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.SequenceType:
		res := make([]any, len(node.Values))
		for i, v := range node.Values {
			yv, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = yv
		}
		return res, nil
	case ir.MappingType:
		res := make(yaml.MapSlice, len(node.Values))
		for i, v := range node.Values {
			yv, err := toYAML(v)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: ir.SignOf(node.Fields[i]).String(), Value: yv}
		}
		return res, nil
	case ir.AliasType:
		return nil, aliasErr(node)
	default:
		return ir.ToAny(node), nil
	}
}
