package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
)

func mustLoads(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := Loads(s)
	require.NoError(t, err, s)
	return n
}

func TestMatch(t *testing.T) {
	doc := mustLoads(t, `{name:box, size:{w:3, h:4}, tags:[red, blue], on:?true, n:?null}`)
	cases := []struct {
		pattern string
		want    bool
	}{
		{`{}`, true},
		{`{name:box}`, true},
		{`{name:bag}`, false},
		{`{size:{w:3}}`, true},
		{`{size:{w:3.0}}`, false},
		{`{size:{d:1}}`, false},
		{`{tags:[red, blue]}`, true},
		{`{tags:[red]}`, false},
		{`{tags:[?null, blue]}`, true},
		{`{size:?null}`, true},
		{`{on:?true, name:box}`, true},
		{`{on:?false}`, false},
		{`{name:[box]}`, false},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			got, err := Match(doc, mustLoads(t, c.pattern))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}

	got, err := Match(doc, mustLoads(t, `{size:?null}`), MatchNullExact(true))
	require.NoError(t, err)
	assert.False(t, got)
	got, err = Match(doc, mustLoads(t, `{n:?null}`), MatchNullExact(true))
	require.NoError(t, err)
	assert.True(t, got)
}

func TestMatchAlias(t *testing.T) {
	doc := mustLoads(t, `{a:1}`)
	pattern := ir.FromKeyVals([]ir.KeyVal{{Key: ir.StringSign("a"), Val: ir.NewAlias(ir.ParsePath("b"))}})
	_, err := Match(doc, pattern)
	assert.ErrorIs(t, err, ir.ErrUnsupported)
}

func TestTrim(t *testing.T) {
	doc := mustLoads(t, `{a:1, b:{c:2, d:3}, e:[{k:1, v:x}, {k:2, v:y}]}`)
	got := Trim(mustLoads(t, `{e:[{k:2}], b:{d:?null}}`), doc)
	want := mustLoads(t, `{b:{d:3}, e:[{k:2}]}`)
	assert.True(t, ir.Equal(want, got), encode.MustString(got))
}
