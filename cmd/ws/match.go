package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws"
	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	pattern, err := getish(cfg.MainConfig, cfg.String, cc, args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	n := 0
	err = eachFile(cfg.MainConfig, cc, args[1:], func(file string, doc *ir.Node) error {
		ok, err := ws.Match(doc, pattern, ws.MatchNullExact(cfg.NullExact))
		if err != nil || !ok {
			return err
		}
		if cfg.Trim {
			doc = ws.Trim(pattern, doc)
		}
		if n > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		n++
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding output: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
