package main

import (
	"fmt"
	"io"
	"os"

	"github.com/matthewpi/dcl"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a file and a patch, got %v", cli.ErrUsage, args)
	}
	if cfg.InPlace && cfg.Target != "" {
		return fmt.Errorf("%w: -i and -to are exclusive", cli.ErrUsage)
	}
	var p []byte
	if args[1] == "-" {
		p, err = io.ReadAll(cc.In)
	} else {
		p, err = os.ReadFile(args[1])
	}
	if err != nil {
		return fmt.Errorf("could not read patch %s: %w", args[1], err)
	}
	doc, err := dcl.Load(args[0], cfg.docOpts(saveOpts(cfg.InPlace, cfg.Target)...)...)
	if err != nil {
		return err
	}
	if err := doc.ApplyPatch(p); err != nil {
		return fmt.Errorf("error patching %s: %w", args[0], err)
	}
	return finish(cfg.MainConfig, cc, doc, cfg.DryRun)
}
