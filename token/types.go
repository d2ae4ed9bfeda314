package token

type LineKind int

const (
	LBlank LineKind = iota
	LComment
	LSectionOpen
	LSectionClose
	LStringListOpen
	LIntListOpen
	LStringListClose
	LIntListClose
	LAssign
	LMalformed
)

func (k LineKind) String() string {
	return map[LineKind]string{
		LBlank:           "LBlank",
		LComment:         "LComment",
		LSectionOpen:     "LSectionOpen",
		LSectionClose:    "LSectionClose",
		LStringListOpen:  "LStringListOpen",
		LIntListOpen:     "LIntListOpen",
		LStringListClose: "LStringListClose",
		LIntListClose:    "LIntListClose",
		LAssign:          "LAssign",
		LMalformed:       "LMalformed",
	}[k]
}

// IsListOpen reports whether k opens a string or integer list.
func (k LineKind) IsListOpen() bool {
	return k == LStringListOpen || k == LIntListOpen
}

func (k LineKind) IsListClose() bool {
	return k == LStringListClose || k == LIntListClose
}

// Closer returns the closing kind matching a list opener.
func (k LineKind) Closer() LineKind {
	switch k {
	case LStringListOpen:
		return LStringListClose
	case LIntListOpen:
		return LIntListClose
	}
	return LMalformed
}

// Line is one classified source line.
type Line struct {
	Num  int
	Raw  string
	Text string // Raw without surrounding whitespace
	Kind LineKind

	// Key is the local section name for LSectionOpen, the list name for
	// list openers and the value key for LAssign.
	Key string
	// Value is the raw right hand side of an LAssign.
	Value string
	// Err explains an LMalformed line.
	Err error
}

type LiteralKind int

const (
	TString LiteralKind = iota
	TQuoted
	TTrue
	TFalse
	TInteger
	TFloat
)

func (k LiteralKind) String() string {
	return map[LiteralKind]string{
		TString:  "TString",
		TQuoted:  "TQuoted",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
	}[k]
}
