package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/scratchtools/go-ws/encode"
	"github.com/scratchtools/go-ws/format"
	"github.com/scratchtools/go-ws/load"
	"github.com/scratchtools/go-ws/parse"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	WireOut    bool   `cli:"name=wire desc='output in compact format'"`
	Permissive bool   `cli:"name=p aliases=permissive desc='tolerate a delimiter right after an opening bracket'"`
	Encoding   string `cli:"name=enc desc='input encoding, for example latin1 or utf-16le (default: detect)'"`
	Indent     int    `cli:"name=indent desc='indentation width of multi-line output (default 2)'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	ctx context.Context
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if f.IsWS() {
			return nil, fmt.Errorf("%w: cannot write %s", cli.ErrUsage, f)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.WithPermissive(cfg.Permissive)}
}

func (cfg *MainConfig) loadOpts() []load.Option {
	return []load.Option{
		load.WithEncoding(cfg.Encoding),
		load.WithPermissive(cfg.Permissive),
		load.WithLogger(theLog),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.JSONFormat
	if cfg.Y {
		fmat = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env  map[string]any
	Syms bool `cli:"name=syms desc='list the available functions'"`

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	JSON   bool `cli:"name=json desc='the patch is an RFC 6902 JSON patch'"`
	Merge  bool `cli:"name=merge desc='the patch is a merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim      bool `cli:"name=trim desc='trim the results to the pattern'"`
	String    bool `cli:"name=s desc='consider the pattern a string argument'"`
	NullExact bool `cli:"name=null desc='null in the pattern only matches null'"`
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}
