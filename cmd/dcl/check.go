package main

import (
	"fmt"

	"github.com/matthewpi/dcl"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	bad := 0
	for _, file := range args {
		doc, err := readDoc(cfg.MainConfig, cc, file, dcl.WithParseOptions(cfg.parseOpts()...))
		if err != nil {
			fmt.Fprintln(cc.Out, err)
			bad++
			continue
		}
		diags := doc.Diagnostics()
		for _, d := range diags {
			fmt.Fprintf(cc.Out, "%s:%d: %s\n", file, d.Line, d.Msg)
		}
		if len(diags) > 0 {
			bad++
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
