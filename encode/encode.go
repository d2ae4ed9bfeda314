package encode

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matthewpi/dcl/ir"
	"github.com/matthewpi/dcl/token"
)

const IndentWidth = 4

func Indent(level int) string {
	return strings.Repeat(" ", IndentWidth*level)
}

// Literal renders the right hand side of a scalar assignment.  Strings are
// always quoted.  Lists have no single line form and report false.
func Literal(v *ir.Value) (string, bool) {
	switch v.Kind {
	case ir.StringKind:
		return token.Quote(v.String), true
	case ir.BoolKind:
		return strconv.FormatBool(v.Bool), true
	case ir.IntKind:
		return strconv.FormatInt(v.Int, 10), true
	case ir.FloatKind:
		return ir.FormatFloat(v.Float), true
	}
	return "", false
}

// ValueLine renders key: v as it sits inside s.
func ValueLine(s *ir.Section, key string, v *ir.Value) (string, bool) {
	lit, ok := Literal(v)
	if !ok {
		return "", false
	}
	return valueIndent(s) + key + ": " + lit, true
}

// Header renders the opening line of s.
func Header(s *ir.Section) string {
	return Indent(s.Depth()) + s.Name() + " {"
}

func Footer(s *ir.Section) string {
	return Indent(s.Depth()) + "}"
}

func valueIndent(s *ir.Section) string {
	return Indent(len(s.Path))
}

// Encode writes t as a complete DCL document.  Sections are nested under
// their dotted parents; lists are written in their multi-line form.
func Encode(t *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	bw := bufio.NewWriter(w)
	enc := &encoder{es: es, w: bw, children: children(t)}
	enc.values(t.Root)
	for i, s := range enc.children[t.Root] {
		if es.blankBetween && (i > 0 || t.Root.Len() > 0) {
			bw.WriteString("\n")
		}
		enc.section(s)
	}
	return bw.Flush()
}

type encoder struct {
	es       *EncState
	w        *bufio.Writer
	children map[*ir.Section][]*ir.Section
}

func (e *encoder) values(s *ir.Section) {
	ind := valueIndent(s)
	for k, v := range s.All() {
		e.w.WriteString(ind + e.es.color(v.Kind, FieldColor, k))
		switch v.Kind {
		case ir.StringListKind, ir.IntListKind:
			e.list(ind, v)
		default:
			lit, _ := Literal(v)
			e.w.WriteString(e.es.color(v.Kind, SepColor, ":") + " " + e.es.color(v.Kind, ValueColor, lit) + "\n")
		}
	}
}

func (e *encoder) list(ind string, v *ir.Value) {
	open, closer := " [s", "s]"
	items := make([]string, 0, len(v.Strings)+len(v.Ints))
	if v.Kind == ir.IntListKind {
		open, closer = " [i", "i]"
		for _, n := range v.Ints {
			items = append(items, strconv.FormatInt(n, 10))
		}
	} else {
		for _, s := range v.Strings {
			items = append(items, token.Quote(s))
		}
	}
	e.w.WriteString(e.es.color(v.Kind, SepColor, open) + "\n")
	for _, it := range items {
		e.w.WriteString(ind + Indent(1) + e.es.color(v.Kind, SepColor, "-") + " " + e.es.color(v.Kind, ValueColor, it) + "\n")
	}
	e.w.WriteString(ind + e.es.color(v.Kind, SepColor, closer) + "\n")
}

func (e *encoder) section(s *ir.Section) {
	e.w.WriteString(Indent(s.Depth()) + e.es.color(0, SectionColor, s.Name()) + " {\n")
	e.values(s)
	for _, c := range e.children[s] {
		e.section(c)
	}
	e.w.WriteString(Footer(s) + "\n")
}

// children groups the named sections of t under their parents, keeping
// first-seen order.
func children(t *ir.Tree) map[*ir.Section][]*ir.Section {
	res := map[*ir.Section][]*ir.Section{}
	for _, s := range t.Sections() {
		p := t.Parent(s)
		res[p] = append(res[p], s)
	}
	return res
}
