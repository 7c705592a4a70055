package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws"
	"github.com/scratchtools/go-ws/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := ws.Diff(a, b)
	if d == nil {
		return nil
	}
	if err := encode.Encode(d, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
