package main

import (
	"fmt"

	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a file and at least one key", cli.ErrUsage)
	}
	doc, err := dcl.Load(args[0], cfg.docOpts()...)
	if err != nil {
		return err
	}
	missing := 0
	for _, key := range args[1:] {
		v, ok := doc.GetValue(key)
		if !ok {
			cfg.Log.Warn("no such key: " + key)
			missing++
			continue
		}
		text, ok := encode.Literal(v)
		if !ok {
			text = v.Text()
		}
		if len(args) > 2 {
			text = key + ": " + text
		}
		fmt.Fprintln(cc.Out, text)
	}
	if missing > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
