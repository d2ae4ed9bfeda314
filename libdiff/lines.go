package libdiff

import (
	"unicode/utf8"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

// Line is one line of a diff.  From and To are the 1-based line numbers in
// the old and new text, 0 on the side the line is absent from.
type Line struct {
	Op   Op
	Text string
	From int
	To   int
}

// Lines diffs before against after line by line.
func Lines(before, after []string) []Line {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, before)
	toRunes := mapLinesTo(lineMap, runeMap, after)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Line, 0, max(len(before), len(after)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		for _, r := range diff.Text {
			text := runeMap[r]
			switch diff.Type {
			case diffpatch.DiffDelete:
				fi++
				res = append(res, Line{Op: Delete, Text: text, From: fi})
			case diffpatch.DiffInsert:
				ti++
				res = append(res, Line{Op: Insert, Text: text, To: ti})
			case diffpatch.DiffEqual:
				fi++
				ti++
				res = append(res, Line{Op: Equal, Text: text, From: fi, To: ti})
			}
		}
	}
	return res
}

// mapLinesTo gives every distinct line a rune.  Surrogates are skipped
// since they do not survive the trip through the diff's string text.
func mapLinesTo(m map[string]rune, im map[rune]string, lines []string) []rune {
	rs := make([]rune, len(lines))
	for i, ln := range lines {
		r, ok := m[ln]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			if !utf8.ValidRune(r) {
				r = utf8.MaxRune
			}
			m[ln] = r
			im[r] = ln
		}
		rs[i] = r
	}
	return rs
}

func Changed(ls []Line) bool {
	for i := range ls {
		if ls[i].Op != Equal {
			return true
		}
	}
	return false
}
