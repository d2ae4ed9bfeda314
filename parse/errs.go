package parse

import (
	"errors"
	"fmt"
)

var ErrMalformed = errors.New("malformed line")

// Diagnostic reports a line the parser skipped or repaired.
type Diagnostic struct {
	Line int
	Text string
	Msg  string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s at line %d: %s (%q)", ErrMalformed, d.Line, d.Msg, d.Text)
}

func (d *Diagnostic) Unwrap() error {
	return ErrMalformed
}
