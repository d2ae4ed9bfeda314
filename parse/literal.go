package parse

import (
	"strconv"

	"github.com/matthewpi/dcl/ir"
	"github.com/matthewpi/dcl/token"
)

// Literal classifies an already expanded right hand side.
func Literal(raw string) *ir.Value {
	switch token.ClassifyLiteral(raw) {
	case token.TQuoted:
		return ir.FromString(token.Unquote(raw))
	case token.TTrue:
		return ir.FromBool(true)
	case token.TFalse:
		return ir.FromBool(false)
	case token.TInteger:
		n, _ := strconv.ParseInt(raw, 10, 64)
		return ir.FromInt(n)
	case token.TFloat:
		f, _ := strconv.ParseFloat(raw, 64)
		return ir.FromFloat(f)
	}
	return ir.FromString(raw)
}
