package eval

import "errors"

var (
	ErrNotExpression = errors.New("invalid mathematical expression")
	ErrNotFinite     = errors.New("result is not a finite number")
)
