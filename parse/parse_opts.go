package parse

import "go.uber.org/zap"

type parseOpts struct {
	diags         *[]Diagnostic
	strict        bool
	noInterpolate bool
	logger        *zap.Logger
}

type ParseOption func(*parseOpts)

// Diagnostics appends every diagnostic of the parse to ds.
func Diagnostics(ds *[]Diagnostic) ParseOption {
	return func(o *parseOpts) { o.diags = ds }
}

// Strict fails the parse on the first diagnostic.
func Strict() ParseOption {
	return func(o *parseOpts) { o.strict = true }
}

// NoInterpolate leaves "${...}" references in place.
func NoInterpolate() ParseOption {
	return func(o *parseOpts) { o.noInterpolate = true }
}

func Logger(l *zap.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}
