package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Unescape decodes every \uXXXX sequence in s.  A surrogate pair written as
// two escapes decodes to one rune.  Anything else, including a backslash not
// followed by u and four hex digits, is kept as is.
func Unescape(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, ok := unicodeEscape(s[i:])
		if !ok {
			b.WriteByte(s[i])
			i++
			continue
		}
		i += 6
		if utf16.IsSurrogate(r) {
			if r2, ok := unicodeEscape(s[i:]); ok {
				if pair := utf16.DecodeRune(r, r2); pair != utf8.RuneError {
					r = pair
					i += 6
				}
			}
		}
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	return b.String()
}

func unicodeEscape(s string) (rune, bool) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, false
	}
	var buf [2]byte
	if _, err := hex.Decode(buf[:], []byte(s[2:6])); err != nil {
		return 0, false
	}
	return rune(buf[0])<<8 | rune(buf[1]), true
}

// Quote renders v as a double quoted literal that decodes back to v.
// Control characters, the backslash of a \uXXXX lookalike and the "$" of
// a "${" are written as \uXXXX.  Inner double quotes need no escape since
// only the outer pair is stripped.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i, r := range v {
		switch {
		case r == '\\' && isHexEscape(v[i:]):
			d = appendEscape(d, r)
		case r == '$' && strings.HasPrefix(v[i:], "${"):
			d = appendEscape(d, r)
		case unicode.IsControl(r):
			d = appendEscape(d, r)
		default:
			d = utf8.AppendRune(d, r)
		}
	}
	return string(append(d, '"'))
}

func isHexEscape(s string) bool {
	_, ok := unicodeEscape(s)
	return ok
}

func appendEscape(d []byte, r rune) []byte {
	ucs := []byte{byte(r >> 8), byte(r)}
	return append(append(d, '\\', 'u'), hex.EncodeToString(ucs)...)
}
