package load

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dolmen-go/contextio"

	"github.com/scratchtools/go-ws/debug"
	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/parse"
)

// Load reads, decodes and parses the wS file at path.
func Load(ctx context.Context, path string, opts ...Option) (*ir.Node, []Warning, error) {
	o := &loadOpts{logger: slog.New(slog.DiscardHandler)}
	for _, f := range opts {
		f(o)
	}
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrLoadFile, err)
	}
	defer f.Close()
	d, err := io.ReadAll(contextio.NewReader(ctx, f))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrLoadFile, path, err)
	}
	if debug.Load() {
		debug.Logf("load %s: %d bytes, encoding %q\n", path, len(d), o.encoding)
	}
	text, warns := Decode(path, d, o.encoding)
	for _, w := range warns {
		o.logger.Warn(w.Msg, "path", w.Path, "error", w.Err)
	}
	doc, err := parse.Parse(text, parse.WithPermissive(o.permissive))
	if err != nil {
		return nil, warns, fmt.Errorf("%w: %s: %w", ErrLoadFile, path, err)
	}
	return doc, warns, nil
}
