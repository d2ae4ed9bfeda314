package dcl

import (
	"io/fs"

	"github.com/matthewpi/dcl/debug"
	"github.com/matthewpi/dcl/parse"
	"github.com/matthewpi/dcl/workdir"
	"go.uber.org/zap"
)

type options struct {
	logger    *zap.Logger
	template  fs.FS
	target    string
	inPlace   bool
	parseOpts []parse.ParseOption
}

type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{template: DefaultTemplate}
	for _, f := range opts {
		f(o)
	}
	if o.logger == nil {
		o.logger = debug.Logger()
	}
	return o
}

func (o *options) saveTarget(source string) string {
	switch {
	case o.target != "":
		return o.target
	case source == "":
		return ""
	case o.inPlace:
		return source
	}
	return workdir.Sibling(source)
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTemplate replaces the template [Open] copies missing files from.
func WithTemplate(f fs.FS) Option {
	return func(o *options) { o.template = f }
}

// WithSaveTarget makes Save write to path.
func WithSaveTarget(path string) Option {
	return func(o *options) { o.target = path }
}

// InPlace makes Save overwrite the file the document was loaded from.
func InPlace() Option {
	return func(o *options) { o.inPlace = true }
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(o *options) { o.parseOpts = append(o.parseOpts, opts...) }
}
