package load

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/parse"
)

func writeFile(t *testing.T, name string, d []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, d, 0o644))
	return p
}

func value(t *testing.T, doc *ir.Node, key string) *ir.Node {
	t.Helper()
	v := doc.Lookup(ir.StringSign(key))
	require.NotNil(t, v, "missing key %q", key)
	return v
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	f := func(name string, d []byte, opts []Option, want string, nWarn int) {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, name+".ws", d)
			doc, warns, err := Load(ctx, p, opts...)
			require.NoError(t, err)
			assert.Len(t, warns, nWarn)
			for _, w := range warns {
				assert.ErrorIs(t, w, ErrLoadWarning)
				assert.Equal(t, p, w.Path)
			}
			assert.Equal(t, want, value(t, doc, "a").String)
		})
	}

	f("utf8", []byte(`{a:héllo}`), nil, "héllo", 0)
	f("utf8-bom", append([]byte{0xEF, 0xBB, 0xBF}, `{a:x}`...), nil, "x", 0)

	u16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(`{a:ü}`))
	require.NoError(t, err)
	f("utf16le", u16le, nil, "ü", 0)

	u16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().Bytes([]byte(`{a:ü}`))
	require.NoError(t, err)
	f("utf16be", u16be, nil, "ü", 0)

	latin1, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(`{a:é}`))
	require.NoError(t, err)
	f("latin1", latin1, []Option{WithEncoding("latin1")}, "é", 0)
	f("invalid-utf8", latin1, nil, "\uFFFD", 1)
	f("unknown-encoding", []byte(`{a:x}`), []Option{WithEncoding("klingon")}, "x", 1)
	f("permissive", []byte(`{,a:x}`), []Option{WithPermissive(true)}, "x", 0)
}

func TestLoadLogsWarnings(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(buf, nil))
	p := writeFile(t, "w.ws", []byte("{a:\xff}"))
	_, warns, err := Load(context.Background(), p, WithLogger(logger))
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Contains(t, buf.String(), "invalid utf-8")
}

func TestLoadErrors(t *testing.T) {
	ctx := context.Background()

	_, _, err := Load(ctx, filepath.Join(t.TempDir(), "missing.ws"))
	assert.ErrorIs(t, err, ErrLoadFile)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	p := writeFile(t, "bad.ws", []byte(`{a:1`))
	_, _, err = Load(ctx, p)
	assert.ErrorIs(t, err, ErrLoadFile)
	assert.ErrorIs(t, err, parse.ErrUnclosed)
	var pe *parse.Error
	assert.True(t, errors.As(err, &pe))

	p = writeFile(t, "strict.ws", []byte(`{,a:x}`))
	_, _, err = Load(ctx, p)
	assert.ErrorIs(t, err, parse.ErrSyntax)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = Load(cctx, p)
	assert.ErrorIs(t, err, context.Canceled)
}
