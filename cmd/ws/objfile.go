package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws/ir"
	"github.com/scratchtools/go-ws/load"
	"github.com/scratchtools/go-ws/parse"
)

// getObjFile loads the document at path, or standard input for "-".
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	if path != "-" {
		doc, _, err := load.Load(cfg.ctx, path, cfg.loadOpts()...)
		return doc, err
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	text, warns := load.Decode(path, d, cfg.Encoding)
	for _, w := range warns {
		theLog.Warn(w.Msg, "path", w.Path, "error", w.Err)
	}
	return parse.Parse(text, cfg.parseOpts()...)
}

// getish reads arg as wS text when isString is set and as a file
// otherwise.
func getish(cfg *MainConfig, isString bool, cc *cli.Context, arg string) (*ir.Node, error) {
	if isString {
		return parse.ParseString(arg, cfg.parseOpts()...)
	}
	return getObjFile(cfg, cc, arg)
}

func eachFile(cfg *MainConfig, cc *cli.Context, files []string, f func(file string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
