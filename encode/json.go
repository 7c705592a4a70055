package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/scratchtools/go-ws/ir"
)

func encodeJSON(node *ir.Node, buf *bytes.Buffer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		buf.WriteString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		s, err := jsonNumber(node)
		if err != nil {
			return err
		}
		buf.WriteString(es.color(ir.NumberType, ValueColor, s))
	case ir.StringType:
		buf.WriteString(es.color(ir.StringType, ValueColor, quote(node.String)))
	case ir.SequenceType:
		return encodeJSONContainer(node, buf, es, "[", "]")
	case ir.MappingType:
		return encodeJSONContainer(node, buf, es, "{", "}")
	default:
		return aliasErr(node)
	}
	return nil
}

func encodeJSONContainer(node *ir.Node, buf *bytes.Buffer, es *EncState, open, close string) error {
	buf.WriteString(es.color(node.Type, SepColor, open))
	if len(node.Values) == 0 {
		buf.WriteString(es.color(node.Type, SepColor, close))
		return nil
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			buf.WriteString(es.color(node.Type, SepColor, ","))
		}
		es.newline(buf)
		if node.Type == ir.MappingType {
			key := ir.SignOf(node.Fields[i]).String()
			buf.WriteString(es.color(ir.MappingType, FieldColor, quote(key)))
			buf.WriteString(es.color(ir.MappingType, SepColor, ":"))
			if !es.wire {
				buf.WriteByte(' ')
			}
		}
		if err := encodeJSON(v, buf, es); err != nil {
			return err
		}
	}
	es.depth--
	es.newline(buf)
	buf.WriteString(es.color(node.Type, SepColor, close))
	return nil
}

func (es *EncState) newline(buf *bytes.Buffer) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func jsonNumber(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 == nil {
		return "", fmt.Errorf("%w: number without value", ErrEncode)
	}
	f := *node.Float64
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: %v has no JSON form", ErrEncode, f)
	}
	return FormatFloat(f), nil
}

// FormatFloat formats f so that it reads back as a float.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEIN") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
