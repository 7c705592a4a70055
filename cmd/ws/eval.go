package main

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/eval"
	"github.com/scratchtools/go-ws/ir"
)

func wsEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Syms {
		fmt.Fprintf(cc.Out, "available functions:\n")
		for _, s := range eval.Symbols() {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	env, err := eval.LoadEnv(cfg.Env)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(file string, doc *ir.Node) error {
		res, err := eval.Eval(doc, src, env)
		if err != nil {
			return err
		}
		return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

// envFunc sets a dotted key of env to val read as YAML.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected key=val", cli.ErrUsage, a)
	}
	var v any
	err := yaml.Unmarshal([]byte(val), &v)
	if err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
