package token

import (
	"fmt"
	"strings"
)

const (
	sectionSuffix    = " {"
	stringListSuffix = " [s"
	intListSuffix    = " [i"
	itemPrefix       = "- "
)

// Classify classifies the raw text of line num.
func Classify(num int, raw string) Line {
	text := strings.TrimSpace(raw)
	ln := Line{Num: num, Raw: raw, Text: text}
	switch {
	case text == "":
		ln.Kind = LBlank
	case IsComment(text):
		ln.Kind = LComment
	case strings.HasSuffix(text, sectionSuffix):
		ln.Kind = LSectionOpen
		ln.Key = strings.TrimSpace(strings.TrimSuffix(text, sectionSuffix))
	case text == "}":
		ln.Kind = LSectionClose
	case text == "s]":
		ln.Kind = LStringListClose
	case text == "i]":
		ln.Kind = LIntListClose
	case strings.HasSuffix(text, stringListSuffix):
		ln.Kind = LStringListOpen
		ln.Key = strings.TrimSpace(strings.TrimSuffix(text, stringListSuffix))
	case strings.HasSuffix(text, intListSuffix):
		ln.Kind = LIntListOpen
		ln.Key = strings.TrimSpace(strings.TrimSuffix(text, intListSuffix))
	default:
		key, val, err := SplitAssign(text)
		if err != nil {
			ln.Kind = LMalformed
			ln.Err = err
			return ln
		}
		ln.Kind = LAssign
		ln.Key, ln.Value = key, val
	}
	if ln.Kind.IsListOpen() && ln.Key == "" {
		ln.Kind = LMalformed
		ln.Err = fmt.Errorf("%w: list", ErrEmptyKey)
	}
	return ln
}

// IsComment reports whether trimmed text is a comment.  A lone "#" counts.
func IsComment(text string) bool {
	return strings.HasPrefix(text, "//") || strings.HasPrefix(text, "# ") || text == "#"
}

// SplitAssign splits "key: value" at the first colon, which must be followed
// by a space.
func SplitAssign(text string) (key, value string, err error) {
	i := strings.IndexByte(text, ':')
	if i < 0 {
		return "", "", ErrNoColon
	}
	if i+1 >= len(text) || text[i+1] != ' ' {
		return "", "", ErrColonSpace
	}
	key = text[:i]
	if key == "" {
		return "", "", ErrEmptyKey
	}
	return key, text[i+2:], nil
}

// ListItem returns the member text of a "- v" line inside a list.  A lone
// "-" is an empty member.
func ListItem(text string) (string, bool) {
	if text == "-" {
		return "", true
	}
	if !strings.HasPrefix(text, itemPrefix) {
		return "", false
	}
	return text[len(itemPrefix):], true
}
