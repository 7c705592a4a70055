package gomap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchtools/go-ws/ir"
)

type Server struct {
	Host    string            `ws:"host"`
	Port    int               `ws:"port"`
	Tags    []string          `ws:"tags"`
	Limits  map[string]int    `ws:"limits"`
	Debug   bool              `ws:"debug,omitempty"`
	Ratio   float64           `ws:"ratio"`
	Labels  map[string]string `ws:"-"`
	private int
}

func serverNode() *ir.Node {
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.StringSign("host"), Val: ir.FromString("localhost")},
		{Key: ir.StringSign("port"), Val: ir.FromInt(8080)},
		{Key: ir.StringSign("tags"), Val: ir.FromSlice([]*ir.Node{ir.FromString("a"), ir.FromString("b")})},
		{Key: ir.StringSign("limits"), Val: ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("cpu"), Val: ir.FromInt(2)}})},
		{Key: ir.StringSign("ratio"), Val: ir.FromFloat(0.5)},
	})
}

func TestDecode(t *testing.T) {
	var s Server
	require.NoError(t, Decode(serverNode(), &s))
	assert.Equal(t, Server{
		Host:   "localhost",
		Port:   8080,
		Tags:   []string{"a", "b"},
		Limits: map[string]int{"cpu": 2},
		Ratio:  0.5,
	}, s)
}

func TestDecodeWeak(t *testing.T) {
	var s struct {
		Port string `ws:"port"`
	}
	node := ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("port"), Val: ir.FromInt(80)}})
	require.NoError(t, Decode(node, &s))
	assert.Equal(t, "80", s.Port)
}

func TestDecodeErrors(t *testing.T) {
	var s Server
	assert.ErrorIs(t, Decode(serverNode(), nil), ErrTargetNil)
	assert.ErrorIs(t, Decode(serverNode(), s), ErrNonPointer)
	var np *Server
	assert.ErrorIs(t, Decode(serverNode(), np), ErrTargetNil)
	bad := ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("tags"), Val: ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("x"), Val: ir.FromInt(1)}})}})
	assert.ErrorIs(t, Decode(bad, &s), ErrDecode)
}

type celsius float64

func (c celsius) ToIR() (*ir.Node, error) {
	return ir.FromString("warm"), nil
}

type fromer struct {
	got *ir.Node
}

func (f *fromer) FromIR(n *ir.Node) error {
	f.got = n
	return nil
}

func TestToIR(t *testing.T) {
	s := Server{Host: "h", Port: 1, Tags: []string{"x"}, Limits: map[string]int{"b": 2, "a": 1}, Labels: map[string]string{"k": "v"}}
	got, err := ToIR(&s)
	require.NoError(t, err)
	want := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.StringSign("host"), Val: ir.FromString("h")},
		{Key: ir.StringSign("port"), Val: ir.FromInt(1)},
		{Key: ir.StringSign("tags"), Val: ir.FromSlice([]*ir.Node{ir.FromString("x")})},
		{Key: ir.StringSign("limits"), Val: ir.FromKeyVals([]ir.KeyVal{
			{Key: ir.StringSign("a"), Val: ir.FromInt(1)},
			{Key: ir.StringSign("b"), Val: ir.FromInt(2)},
		})},
		{Key: ir.StringSign("ratio"), Val: ir.FromFloat(0)},
	})
	assert.True(t, ir.Equal(want, got), "got %v", ir.ToAny(got))

	n, err := ToIR(map[int]celsius{2: 1, 1: 2})
	require.NoError(t, err)
	assert.Equal(t, []*ir.Node{ir.FromInt(1), ir.FromInt(2)}, n.Fields)
	assert.Equal(t, "warm", n.Values[0].String)

	_, err = ToIR(map[float64]int{1: 1})
	assert.ErrorIs(t, err, ErrEncode)
	_, err = ToIR(make(chan int))
	assert.ErrorIs(t, err, ErrEncode)

	f := &fromer{}
	require.NoError(t, Decode(got, f))
	assert.Same(t, got, f.got)
}
