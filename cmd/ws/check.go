package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws/load"
	"github.com/scratchtools/go-ws/parse"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires files", cli.ErrUsage)
	}
	failed := 0
	for _, file := range args {
		_, warns, err := load.Load(cfg.ctx, file, load.WithEncoding(cfg.Encoding), load.WithPermissive(cfg.Permissive))
		if !report(cc.Out, file, warns, err) {
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// report writes one line per warning and error of file and tells whether
// the file parsed.
func report(w io.Writer, file string, warns []load.Warning, err error) bool {
	for _, warn := range warns {
		fmt.Fprintf(w, "%s: warning: %s\n", file, warn.Msg)
	}
	if err == nil {
		fmt.Fprintf(w, "%s: ok\n", file)
		return true
	}
	var pErr *parse.Error
	if errors.As(err, &pErr) && pErr.Pos != nil {
		line, col := pErr.Pos.LineCol()
		fmt.Fprintf(w, "%s:%d:%d: offset %d: %s\n", file, line+1, col+1, pErr.Offset(), pErr.Msg)
		return false
	}
	fmt.Fprintf(w, "%s: %v\n", file, err)
	return false
}
