package token

import "strconv"

// ClassifyLiteral returns the kind of a raw literal.  Quoted strings win,
// then booleans, integers and floats; anything else is a plain string.
func ClassifyLiteral(raw string) LiteralKind {
	switch {
	case IsQuoted(raw):
		return TQuoted
	case raw == "true":
		return TTrue
	case raw == "false":
		return TFalse
	case IsInteger(raw):
		return TInteger
	case IsFloat(raw):
		return TFloat
	}
	return TString
}

func IsQuoted(raw string) bool {
	return len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"'
}

// Unquote strips the surrounding double quotes of a quoted literal.  Nothing
// inside is unescaped.
func Unquote(raw string) string {
	if !IsQuoted(raw) {
		return raw
	}
	return raw[1 : len(raw)-1]
}

// IsInteger reports whether raw is a base-10 integer fitting in 64 bits.
func IsInteger(raw string) bool {
	if !decimalOnly(raw, false) {
		return false
	}
	_, err := strconv.ParseInt(raw, 10, 64)
	return err == nil
}

// IsFloat reports whether raw is a finite base-10 floating point literal.
// Hex floats, underscores, "Inf" and "NaN" are strings.
func IsFloat(raw string) bool {
	if !decimalOnly(raw, true) {
		return false
	}
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}

func decimalOnly(raw string, float bool) bool {
	if raw == "" {
		return false
	}
	digits := 0
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '+' || c == '-':
		case float && (c == '.' || c == 'e' || c == 'E'):
		default:
			return false
		}
	}
	return digits > 0
}
