package dcl

import (
	"errors"

	"github.com/matthewpi/dcl/workdir"
)

var (
	ErrNoSection   = errors.New("section not found")
	ErrBadKey      = errors.New("bad key")
	ErrInvalidFile = workdir.ErrInvalidFile
	ErrTemplate    = workdir.ErrTemplate
	ErrNoTarget    = errors.New("no save target")
	ErrPatch       = errors.New("patch not applicable")
)
