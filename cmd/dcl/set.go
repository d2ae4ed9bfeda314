package main

import (
	"fmt"
	"strings"

	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/parse"

	"github.com/scott-cotton/cli"
	"go.uber.org/zap"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a file and at least one key=value", cli.ErrUsage)
	}
	if cfg.InPlace && cfg.Target != "" {
		return fmt.Errorf("%w: -i and -to are exclusive", cli.ErrUsage)
	}
	doc, err := dcl.Load(args[0], cfg.docOpts(saveOpts(cfg.InPlace, cfg.Target)...)...)
	if err != nil {
		return err
	}
	for _, arg := range args[1:] {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%w: %q is not key=value", cli.ErrUsage, arg)
		}
		v := parse.Literal(raw)
		if err := doc.Set(key, v); err != nil {
			return fmt.Errorf("could not set %s: %w", key, err)
		}
		cfg.Log.Debug("set", zap.String("key", key), zap.Stringer("kind", v.Kind))
	}
	return finish(cfg.MainConfig, cc, doc, cfg.DryRun)
}

// finish prints or saves the pending changes of doc.
func finish(cfg *MainConfig, cc *cli.Context, doc *dcl.Document, dryRun bool) error {
	if dryRun {
		return doc.Diff(cc.Out, cfg.diffOpts(cc.Out)...)
	}
	if !doc.Dirty() {
		cfg.Log.Info("nothing changed", zap.String("path", doc.Path()))
		return nil
	}
	if err := doc.Save(); err != nil {
		return err
	}
	cfg.Log.Info("saved", zap.String("path", doc.Target()))
	return nil
}
