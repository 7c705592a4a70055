package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	i := 0
	return eachFile(cfg.MainConfig, cc, args, func(file string, doc *ir.Node) error {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing separator: %w", err)
			}
		}
		i++
		if err := encode.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
