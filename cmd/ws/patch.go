package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws"
	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	if cfg.JSON && cfg.Merge {
		return fmt.Errorf("%w: -json and -merge are exclusive", cli.ErrUsage)
	}
	target, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	var res *ir.Node
	if cfg.JSON {
		d, err := jsonPatchArg(cfg, cc, args[0])
		if err != nil {
			return err
		}
		res, err = ws.PatchJSON(target, d)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", args[1], err)
		}
	} else {
		p, err := getish(cfg.MainConfig, cfg.String, cc, args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if cfg.Merge {
			res, err = ws.MergePatch(target, p)
		} else {
			res, err = ws.Patch(target, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", args[1], err)
		}
	}
	if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

func jsonPatchArg(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	if arg == "-" {
		return io.ReadAll(cc.In)
	}
	return os.ReadFile(arg)
}
