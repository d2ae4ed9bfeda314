package main

import (
	"fmt"
	"io"

	"github.com/matthewpi/dcl"
	"github.com/matthewpi/dcl/encode"
	"github.com/matthewpi/dcl/format"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *dcl.Document, w io.Writer) error {
		return doc.Dump(w, cfg.encOpts(w)...)
	})
}

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	f := format.JSONFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return eachDoc(cfg.MainConfig, cc, args, func(doc *dcl.Document, w io.Writer) error {
		opts := cfg.encOpts(w)
		if cfg.Compact {
			opts = append(opts, encode.Compact())
		}
		return doc.Export(w, f, opts...)
	})
}

// eachDoc runs fn over each named file, or over standard input when there
// are none, separating the outputs with "---".
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, fn func(*dcl.Document, io.Writer) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := readDoc(cfg, cc, file)
		if err != nil {
			return err
		}
		if err := fn(doc, cc.Out); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func readDoc(cfg *MainConfig, cc *cli.Context, file string, opts ...dcl.Option) (*dcl.Document, error) {
	if file != "-" {
		return dcl.Load(file, cfg.docOpts(opts...)...)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return dcl.Parse(d, cfg.docOpts(opts...)...)
}
