package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/watch"

	"github.com/scott-cotton/cli"
)

func watchFile(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: watch requires one file, got %v", cli.ErrUsage, args)
	}
	opts := []watch.Option{
		watch.WithLogger(cfg.Log),
		watch.WithDocumentOptions(cfg.docOpts()...),
	}
	if cfg.Debounce != "" {
		d, err := time.ParseDuration(cfg.Debounce)
		if err != nil {
			return fmt.Errorf("%w: -debounce: %w", cli.ErrUsage, err)
		}
		opts = append(opts, watch.Debounce(d))
	}
	n := 0
	w, err := watch.New(args[0], func(doc *dcl.Document, err error) {
		if err != nil {
			return
		}
		if n > 0 {
			io.WriteString(cc.Out, "---\n")
		}
		n++
		doc.Dump(cc.Out, cfg.encOpts(cc.Out)...)
	}, opts...)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return w.Run(ctx)
}
