package dcl

import (
	"io"

	"github.com/matthewpi/dcl/encode"
	"github.com/matthewpi/dcl/format"
)

// Dump writes the debug view of the document: root values, then every
// non-empty section.
func (d *Document) Dump(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Dump(d.tree, w, opts...)
}

// Export writes the whole document in format f.
func (d *Document) Export(w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	return encode.Export(d.tree, w, f, opts...)
}
