package encode

import "github.com/matthewpi/dcl/ir"

type EncodeOption func(*EncState)

type EncState struct {
	Color func(ir.Kind, ColorAttr, string) string

	blankBetween bool
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{blankBetween: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// Compact drops the blank line written between top level sections.
func Compact() EncodeOption {
	return func(es *EncState) { es.blankBetween = false }
}
