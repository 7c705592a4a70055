package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a reference path", cli.ErrUsage)
	}
	path := ir.ParsePath(args[0])
	return eachFile(cfg.MainConfig, cc, args[1:], func(file string, doc *ir.Node) error {
		res, err := path.Resolve(doc)
		if err != nil {
			return err
		}
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
