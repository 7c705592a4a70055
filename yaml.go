package ws

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/scratchtools/go-ws/ir"
)

// FromYAML decodes a YAML or JSON document keeping the order of mapping
// keys.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromOrdered(v)
}

func fromOrdered(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		res := ir.NewMapping()
		for _, item := range x {
			n, err := fromOrdered(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(ir.StringSign(fmt.Sprint(item.Key)), n)
		}
		return res, nil
	case []any:
		res := ir.NewSequence()
		for _, e := range x {
			n, err := fromOrdered(e)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	default:
		return ir.FromAny(v)
	}
}
