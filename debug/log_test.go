package debug

import (
	"bytes"
	"testing"

	"github.com/scratchtools/go-ws/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("%s %d %s\n", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")}), 3, "s")
	if got, want := buf.String(), "[1,\"x\"] 3 s\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	buf.Reset()
	LogAny(map[string]any{"a": 1})
	if got, want := buf.String(), "{\"a\":1}\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
