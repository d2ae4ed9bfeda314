package main

import (
	"fmt"
	"os"

	"github.com/matthewpi/dcl/libdiff"
	"github.com/matthewpi/dcl/token"

	"github.com/scott-cotton/cli"
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
	var texts [2]*token.Text
	for i, file := range args {
		d, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		texts[i] = token.SplitLines(d)
	}
	ls := libdiff.Lines(texts[0].Lines, texts[1].Lines)
	if !libdiff.Changed(ls) {
		return nil
	}
	fmt.Fprintf(cc.Out, "--- %s\n+++ %s\n", args[0], args[1])
	opts := append(cfg.diffOpts(cc.Out), libdiff.Context(cfg.Context))
	if err := libdiff.Write(cc.Out, ls, opts...); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
