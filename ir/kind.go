package ir

type Kind int

const (
	StringKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringListKind
	IntListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		StringKind:     "String",
		BoolKind:       "Boolean",
		IntKind:        "Integer",
		FloatKind:      "Double",
		StringListKind: "StringList",
		IntListKind:    "IntegerList",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func Kinds() []Kind {
	return []Kind{
		StringKind,
		BoolKind,
		IntKind,
		FloatKind,
		StringListKind,
		IntListKind,
	}
}

// IsList reports whether values of this kind span several lines.
func (k Kind) IsList() bool {
	return k == StringListKind || k == IntListKind
}
