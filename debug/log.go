package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
)

var out io.Writer = os.Stderr

// SetOutput redirects debug output, returning the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// WS prints a node as wire JSON.
type WS struct{ *ir.Node }

func (y WS) String() string {
	s, err := encodeWire(y.Node)
	if err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return s
}

func encodeWire(node *ir.Node) (string, error) {
	var b strings.Builder
	if err := encode.Encode(node, &b, encode.EncodeWire(true)); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

// Logf writes to the debug output. Nodes, maps and slices among args are
// rendered as JSON.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case *ir.Node:
			args[i] = WS{x}.String()
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err == nil {
				args[i] = string(d)
			}
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v as one line of JSON.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	fmt.Fprintf(out, "%s\n", d)
}
