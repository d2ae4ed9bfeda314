package dcl

import (
	"fmt"
	"os"
	"slices"

	"github.com/matthewpi/dcl/ir"
	"github.com/matthewpi/dcl/parse"
	"github.com/matthewpi/dcl/token"
	"github.com/matthewpi/dcl/workdir"
	"go.uber.org/zap"
)

type Document struct {
	tree *ir.Tree

	// source is the file the document was loaded from, base the file the
	// next save reads and target the file it writes.
	source string
	base   string
	target string
	// text is the content of base as last read or written.
	text *token.Text

	diags []parse.Diagnostic
	log   *zap.Logger
}

// Open loads name from the working directory dir, the process working
// directory if dir is empty.  A missing file is first created from the
// template.
func Open(dir, name string, opts ...Option) (*Document, error) {
	o := newOptions(opts)
	wd := &workdir.Dir{Root: dir, Template: o.template}
	path, created, err := wd.Ensure(name)
	if err != nil {
		return nil, err
	}
	if created {
		o.logger.Info("created from template", zap.String("path", path))
	}
	return load(path, o)
}

// Load parses the existing file at path.
func Load(path string, opts ...Option) (*Document, error) {
	if !workdir.Valid(path) {
		return nil, fmt.Errorf("%w: %q needs the %s extension", ErrInvalidFile, path, workdir.Ext)
	}
	return load(path, newOptions(opts))
}

func load(path string, o *options) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return newDocument(data, path, o)
}

// Parse builds a document with no backing file.  Saving it needs
// [WithSaveTarget].
func Parse(data []byte, opts ...Option) (*Document, error) {
	return newDocument(data, "", newOptions(opts))
}

func newDocument(data []byte, source string, o *options) (*Document, error) {
	d := &Document{
		source: source,
		base:   source,
		target: o.saveTarget(source),
		text:   token.SplitLines(data),
		log:    o.logger.Named("dcl"),
	}
	pOpts := append([]parse.ParseOption{parse.Diagnostics(&d.diags), parse.Logger(o.logger)}, o.parseOpts...)
	tree, err := parse.Parse(data, pOpts...)
	if err != nil {
		if source != "" {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		return nil, err
	}
	d.tree = tree
	for i := range d.diags {
		diag := &d.diags[i]
		d.log.Warn(diag.Msg, zap.String("path", source), zap.Int("line", diag.Line), zap.String("text", diag.Text))
	}
	return d, nil
}

func (d *Document) Tree() *ir.Tree {
	return d.tree
}

// Path returns the file the document was loaded from, "" if it was parsed
// from memory.
func (d *Document) Path() string {
	return d.source
}

func (d *Document) Target() string {
	return d.target
}

func (d *Document) SetTarget(path string) {
	d.target = path
}

// Diagnostics returns the lines skipped or repaired while parsing.
func (d *Document) Diagnostics() []parse.Diagnostic {
	return slices.Clone(d.diags)
}

// Dirty reports whether a save would change anything.
func (d *Document) Dirty() bool {
	return len(d.Patch()) > 0
}
