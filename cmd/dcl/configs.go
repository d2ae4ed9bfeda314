package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/encode"
	"github.com/matthewpi/dcl/format"
	"github.com/matthewpi/dcl/libdiff"
	"github.com/matthewpi/dcl/parse"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	NoColor bool `cli:"name=nocolor desc='never output with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log debug messages'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
	Log  *zap.Logger
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// colors returns nil unless output to w should be colored.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	switch {
	case cfg.NoColor:
		return nil
	case cfg.Color:
		return encode.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return encode.NewColors()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if c := cfg.colors(w); c != nil {
		return []encode.EncodeOption{encode.EncodeColors(c)}
	}
	return nil
}

func (cfg *MainConfig) diffOpts(w io.Writer) []libdiff.WriteOption {
	if c := cfg.colors(w); c != nil {
		return []libdiff.WriteOption{libdiff.Color(c.DiffLine)}
	}
	return nil
}

func (cfg *MainConfig) docOpts(extra ...dcl.Option) []dcl.Option {
	return append([]dcl.Option{dcl.WithLogger(cfg.Log)}, extra...)
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

func saveOpts(inPlace bool, target string) []dcl.Option {
	var res []dcl.Option
	if inPlace {
		res = append(res, dcl.InPlace())
	}
	if target != "" {
		res = append(res, dcl.WithSaveTarget(target))
	}
	return res
}

type SetConfig struct {
	*MainConfig
	InPlace bool   `cli:"name=i desc='save over the input file'"`
	Target  string `cli:"name=to desc='file to save to (default <name>.updated.dcl)'"`
	DryRun  bool   `cli:"name=diff desc='print the changes instead of saving them'"`

	Set *cli.Command
}

type PatchConfig struct {
	*MainConfig
	InPlace bool   `cli:"name=i desc='save over the input file'"`
	Target  string `cli:"name=to desc='file to save to (default <name>.updated.dcl)'"`
	DryRun  bool   `cli:"name=diff desc='print the changes instead of saving them'"`

	Patch *cli.Command
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type ExportConfig struct {
	*MainConfig
	Compact bool `cli:"name=compact desc='no blank line between sections in dcl output'"`
	Export  *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Strict bool `cli:"name=strict desc='stop at the first malformed line'"`
	Check  *cli.Command
}

func (cfg *CheckConfig) parseOpts() []parse.ParseOption {
	if cfg.Strict {
		return []parse.ParseOption{parse.Strict()}
	}
	return nil
}

type DiffConfig struct {
	*MainConfig
	Context int `cli:"name=U desc='lines of context'"`
	Diff    *cli.Command
}

type ConsoleConfig struct {
	*MainConfig
	Prompt  string `cli:"name=prompt desc='prompt to print before each line'"`
	InPlace bool   `cli:"name=i desc='.save writes over the input file'"`

	Console *cli.Command
}

type WatchConfig struct {
	*MainConfig
	Debounce string `cli:"name=debounce desc='quiet period before reloading, e.g. 200ms'"`
	Watch    *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Eval *cli.Command
}
