package encode

import (
	"github.com/fatih/color"
	"github.com/matthewpi/dcl/ir"
	"github.com/matthewpi/dcl/libdiff"
)

// Colorable keys a color by value kind and the part of a line it paints.
// Sections and diff lines use the zero kind.
type Colorable struct {
	Kind ir.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	SectionColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

var valuePalette = map[ir.Kind]*color.Color{
	ir.StringKind:     color.RGB(8, 196, 16),
	ir.StringListKind: color.RGB(88, 158, 86),
	ir.BoolKind:       color.New(color.FgCyan),
	ir.IntKind:        color.RGB(128, 216, 236),
	ir.FloatKind:      color.RGB(128, 216, 236),
	ir.IntListKind:    color.RGB(96, 176, 196),
}

func NewColors() *Colors {
	field := color.RGB(196, 96, 16)
	sep := color.RGB(255, 0, 196)
	m := map[Colorable]*color.Color{
		{Attr: SectionColor}: color.RGB(128, 168, 196),
		{Attr: InsertColor}:  color.New(color.FgGreen),
		{Attr: DeleteColor}:  color.New(color.FgRed),
	}
	for _, k := range ir.Kinds() {
		m[Colorable{Kind: k, Attr: FieldColor}] = field
		m[Colorable{Kind: k, Attr: SepColor}] = sep
		if c, ok := valuePalette[k]; ok {
			m[Colorable{Kind: k, Attr: ValueColor}] = c
		}
	}
	colors := &Colors{
		Default: colorDefault,
		Map:     make(map[Colorable]func(string, ...any) string, len(m)),
	}
	for k, c := range m {
		colors.Map[k] = literal(c)
	}
	return colors
}

// literal paints v as is, never reading it as a format string.
func literal(c *color.Color) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return c.Sprint(v)
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k ir.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k ir.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

// DiffLine colors a line of diff output by its op; it fits [libdiff.Color].
func (c *Colors) DiffLine(op libdiff.Op, s string) string {
	switch op {
	case libdiff.Insert:
		return c.Color(ir.StringKind, InsertColor, s)
	case libdiff.Delete:
		return c.Color(ir.StringKind, DeleteColor, s)
	}
	return s
}
