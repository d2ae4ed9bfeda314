package encode

import (
	"bufio"
	"io"

	"github.com/matthewpi/dcl/ir"
)

// Dump writes the debug view of t: root values followed by a blank line
// when there are any, then every non-empty section under its full dotted
// key.  Values are shown by their text, strings unquoted.
func Dump(t *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	bw := bufio.NewWriter(w)
	line := func(ind string, k string, v *ir.Value) {
		bw.WriteString(ind + es.color(v.Kind, FieldColor, k) + es.color(v.Kind, SepColor, ":") + " " + es.color(v.Kind, ValueColor, v.Text()) + "\n")
	}
	for k, v := range t.Root.All() {
		line("", k, v)
	}
	if t.Root.Len() > 0 {
		bw.WriteString("\n")
	}
	for _, s := range t.Sections() {
		if s.Len() == 0 {
			continue
		}
		bw.WriteString(es.color(0, SectionColor, s.Key()) + " {\n")
		for k, v := range s.All() {
			line(Indent(1), k, v)
		}
		bw.WriteString("}\n\n")
	}
	return bw.Flush()
}
