package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/console"

	"github.com/scott-cotton/cli"
)

func runConsole(cfg *ConsoleConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Console.Parse(cc, args)
	if err != nil {
		cfg.Console.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: console takes at most one file, got %v", cli.ErrUsage, args)
	}
	opts := []console.Option{
		console.WithPrompt(cfg.Prompt),
		console.WithLogger(cfg.Log),
	}
	if c := cfg.colors(cc.Out); c != nil {
		opts = append(opts, console.WithColors(c))
	}
	if len(args) == 1 {
		dir, name := filepath.Split(args[0])
		doc, err := dcl.Open(dir, name, cfg.docOpts(saveOpts(cfg.InPlace, "")...)...)
		if err != nil {
			return err
		}
		opts = append(opts, console.WithDocument(doc))
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = console.New(cc.Out, opts...).Run(ctx, cc.In)
	if err == context.Canceled {
		return nil
	}
	return err
}
