package parse

import (
	"strings"

	"github.com/matthewpi/dcl/ir"
)

// Interpolate replaces every "${key}" in s by the text of the value lookup
// returns for key, or by nothing when there is none.  Substituted text is not
// scanned again.  An unterminated "${" is kept.
func Interpolate(s string, lookup func(string) (*ir.Value, bool)) (string, []string) {
	if !strings.Contains(s, "${") {
		return s, nil
	}
	var (
		b          strings.Builder
		unresolved []string
	)
	for {
		i := strings.Index(s, "${")
		if i < 0 {
			break
		}
		j := strings.IndexByte(s[i+2:], '}')
		if j < 0 {
			break
		}
		key := s[i+2 : i+2+j]
		b.WriteString(s[:i])
		if v, ok := lookup(key); ok {
			b.WriteString(v.Text())
		} else {
			unresolved = append(unresolved, key)
		}
		s = s[i+2+j+1:]
	}
	b.WriteString(s)
	return b.String(), unresolved
}
