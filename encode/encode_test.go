package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/scratchtools/go-ws/format"
	"github.com/scratchtools/go-ws/ir"
)

func testDoc() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.StringSign("z"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromFloat(2), ir.Null()})},
		{Key: ir.IntSign(3), Val: ir.FromString("a<b & \"c\"")},
		{Key: ir.StringSign("a"), Val: ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("t"), Val: ir.FromBool(true)}})},
		{Key: ir.StringSign("e"), Val: ir.NewMapping()},
	})
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(testDoc(), &buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "z": [
    1,
    2.0,
    null
  ],
  "3": "a<b & \"c\"",
  "a": {
    "t": true
  },
  "e": {}
}
`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeJSONWire(t *testing.T) {
	got := MustString(testDoc(), EncodeWire(true))
	want := `{"z":[1,2.0,null],"3":"a<b & \"c\"","a":{"t":true},"e":{}}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("a"), Val: ir.FromSlice([]*ir.Node{ir.FromInt(1)})}})
	got := MustString(doc, EncodeIndent(4))
	want := "{\n    \"a\": [\n        1\n    ]\n}"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(testDoc(), &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	iz := strings.Index(out, "z:")
	i3 := strings.Index(out, "3")
	ia := strings.Index(out, "a:\n")
	if iz < 0 || i3 < 0 || ia < 0 || !(iz < i3 && i3 < ia) {
		t.Errorf("keys out of order in\n%s", out)
	}
	if !strings.Contains(out, "t: true") {
		t.Errorf("missing nested value in\n%s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("missing trailing newline")
	}
}

func TestEncodeErrors(t *testing.T) {
	doc := ir.FromSlice([]*ir.Node{ir.NewAlias(ir.ParsePath("a"))})
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat} {
		if err := Encode(doc, &bytes.Buffer{}, EncodeFormat(f)); !errors.Is(err, ErrEncode) {
			t.Errorf("%s: expected ErrEncode, got %v", f, err)
		}
	}
	if err := Encode(ir.FromSlice([]*ir.Node{ir.FromFloat(math.NaN())}), &bytes.Buffer{}); !errors.Is(err, ErrEncode) {
		t.Errorf("NaN: expected ErrEncode, got %v", err)
	}
	err := Encode(ir.NewMapping(), &bytes.Buffer{}, EncodeFormat(format.WSFormat))
	if !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	c := NewColors()
	c.Map = map[Colorable]func(string, ...any) string{
		{Type: ir.MappingType, Attr: FieldColor}: func(s string, _ ...any) string { return "<" + s + ">" },
	}
	got := MustString(ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("k"), Val: ir.FromInt(1)}}), EncodeColors(c), EncodeWire(true))
	if got != `{<"k">:1}` {
		t.Errorf("got %s", got)
	}
}

func TestDefaultColors(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	doc := ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("k"), Val: ir.FromString("50%")}})

	color.NoColor = true
	if got := MustString(doc, EncodeColors(NewColors()), EncodeWire(true)); got != `{"k":"50%"}` {
		t.Errorf("got %q", got)
	}
	color.NoColor = false
	got := MustString(doc, EncodeColors(NewColors()), EncodeWire(true))
	if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "50%") {
		t.Errorf("got %q", got)
	}
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		2:      "2.0",
		1.5:    "1.5",
		1e20:   "1e+20",
		-0.25:  "-0.25",
		1e-7:   "1e-07",
		123456: "123456.0",
	}
	for f, want := range tests {
		if got := FormatFloat(f); got != want {
			t.Errorf("FormatFloat(%v) = %q want %q", f, got, want)
		}
	}
}
