package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/parse"
)

func TestEval(t *testing.T) {
	doc, err := parse.ParseString(`{name:box, size:{w:3, h:4}, tags:[red, blue], on:?true}`)
	require.NoError(t, err)
	t.Setenv("WS_EVAL_TEST", "hello")

	cases := []struct {
		src  string
		env  Env
		want *ir.Node
	}{
		{src: `doc.name`, want: ir.FromString("box")},
		{src: `doc.size.w * doc.size.h`, want: ir.FromInt(12)},
		{src: `get("tags.1")`, want: ir.FromString("blue")},
		{src: `get("size").w`, want: ir.FromInt(3)},
		{src: `has("size.d")`, want: ir.FromBool(false)},
		{src: `has("on")`, want: ir.FromBool(true)},
		{src: `keys("size")`, want: ir.FromSlice([]*ir.Node{ir.FromString("w"), ir.FromString("h")})},
		{src: `len(doc.tags)`, want: ir.FromInt(2)},
		{src: `truth("tags") && truth("on")`, want: ir.FromBool(true)},
		{src: `truth("size.d")`, want: ir.FromBool(false)},
		{src: `getenv("WS_EVAL_TEST")`, want: ir.FromString("hello")},
		{src: `tovalue("[1, x]")`, want: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("x")})},
		{src: `doc.size.w + extra`, env: Env{"extra": 10}, want: ir.FromInt(13)},
		{src: `nil`, want: ir.Null()},
		{
			src: `{"a": 1, "b": [doc.on]}`,
			want: ir.FromKeyVals([]ir.KeyVal{
				{Key: ir.StringSign("a"), Val: ir.FromInt(1)},
				{Key: ir.StringSign("b"), Val: ir.FromSlice([]*ir.Node{ir.FromBool(true)})},
			}),
		},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			got, err := Eval(doc, c.src, c.env)
			require.NoError(t, err)
			assert.True(t, ir.Equal(c.want, got), "got %s", encode.MustString(got))
		})
	}
}

func TestEvalErrors(t *testing.T) {
	doc, err := parse.ParseString(`{a:[1]}`)
	require.NoError(t, err)

	_, err = Eval(doc, `doc.a +`, nil)
	assert.ErrorIs(t, err, ErrEval)

	_, err = Eval(doc, `get("a.5")`, nil)
	assert.ErrorIs(t, err, ErrEval)
	assert.ErrorIs(t, err, ir.ErrIndex)

	_, err = Eval(doc, `1`, Env{"doc": 1})
	assert.ErrorIs(t, err, ErrReserved)
	_, err = Eval(doc, `1`, Env{"get": 1})
	assert.ErrorIs(t, err, ErrReserved)

	_, err = Eval(doc, `tovalue("{a:")`, nil)
	assert.ErrorIs(t, err, parse.ErrParse)
}

func TestRegister(t *testing.T) {
	assert.ErrorIs(t, Register(Get()), ErrSymbolExists)
	assert.Equal(t, Get(), Lookup("get"))
	syms := Symbols()
	for i := 1; i < len(syms); i++ {
		assert.Less(t, syms[i-1].String(), syms[i].String())
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvEnv, "")
	env, err := LoadEnv(Env{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, Env{"x": 1}, env)

	t.Setenv(EnvEnv, `{region:eu, x:2, sizes:[1, 2]}`)
	env, err = LoadEnv(Env{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, "eu", env["region"])
	assert.Equal(t, 1, env["x"])
	assert.Len(t, env["sizes"], 2)

	t.Setenv(EnvEnv, `[1]`)
	_, err = LoadEnv(nil)
	assert.ErrorIs(t, err, ErrEval)

	t.Setenv(EnvEnv, `{a:`)
	_, err = LoadEnv(nil)
	assert.ErrorIs(t, err, parse.ErrParse)
}
