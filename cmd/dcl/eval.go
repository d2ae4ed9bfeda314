package main

import (
	"fmt"
	"strconv"

	"github.com/matthewpi/dcl/eval"

	"github.com/scott-cotton/cli"
)

func evalExprs(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	for _, arg := range args {
		f, err := eval.Decimal(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(cc.Out, strconv.FormatFloat(f, 'g', -1, 64))
	}
	return nil
}
