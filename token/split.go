package token

import "strings"

// Text is a document split into lines, remembering how each line was
// terminated so that it can be joined back byte for byte.
type Text struct {
	Lines []string
	// Ends holds the terminator of each source line: "\r\n", "\n", or ""
	// for a last line without one.  Lines past the end of Ends use EOL.
	Ends []string
	// EOL is "\r\n" when the first line break of the source is CRLF, "\n"
	// otherwise.
	EOL string
	// FinalEOL is set when the source ends with a line break.
	FinalEOL bool
}

func SplitLines(d []byte) *Text {
	s := string(d)
	t := &Text{EOL: "\n"}
	if i := strings.IndexByte(s, '\n'); i > 0 && s[i-1] == '\r' {
		t.EOL = "\r\n"
	}
	if s == "" {
		return t
	}
	t.FinalEOL = strings.HasSuffix(s, "\n")
	for s != "" {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			t.Lines = append(t.Lines, s)
			t.Ends = append(t.Ends, "")
			break
		}
		ln, end := s[:i], "\n"
		if strings.HasSuffix(ln, "\r") {
			ln, end = ln[:len(ln)-1], "\r\n"
		}
		t.Lines = append(t.Lines, ln)
		t.Ends = append(t.Ends, end)
		s = s[i+1:]
	}
	return t
}

// End returns the terminator written after line i (0-based).
func (t *Text) End(i int) string {
	if i < len(t.Ends) && t.Ends[i] != "" {
		return t.Ends[i]
	}
	if i < len(t.Lines)-1 || t.FinalEOL {
		return t.EOL
	}
	return ""
}

func (t *Text) Bytes() []byte {
	var b strings.Builder
	for i, ln := range t.Lines {
		b.WriteString(ln)
		b.WriteString(t.End(i))
	}
	if b.Len() == 0 {
		return nil
	}
	return []byte(b.String())
}
