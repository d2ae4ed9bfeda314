package token

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in    string
		lines []string
		ends  []string
		eol   string
		final bool
	}{
		{in: "", lines: nil, eol: "\n"},
		{in: "a", lines: []string{"a"}, ends: []string{""}, eol: "\n"},
		{in: "a\nb\n", lines: []string{"a", "b"}, ends: []string{"\n", "\n"}, eol: "\n", final: true},
		{in: "a\r\nb\r\n", lines: []string{"a", "b"}, ends: []string{"\r\n", "\r\n"}, eol: "\r\n", final: true},
		{in: "a\n\n", lines: []string{"a", ""}, ends: []string{"\n", "\n"}, eol: "\n", final: true},
		{in: "\n", lines: []string{""}, ends: []string{"\n"}, eol: "\n", final: true},
		{in: "a\r\nb\nc", lines: []string{"a", "b", "c"}, ends: []string{"\r\n", "\n", ""}, eol: "\r\n"},
	}
	for _, tt := range tests {
		txt := SplitLines([]byte(tt.in))
		if diff := cmp.Diff(tt.lines, txt.Lines); diff != "" {
			t.Errorf("%q lines (-want +got):\n%s", tt.in, diff)
		}
		if diff := cmp.Diff(tt.ends, txt.Ends); diff != "" {
			t.Errorf("%q ends (-want +got):\n%s", tt.in, diff)
		}
		if txt.EOL != tt.eol || txt.FinalEOL != tt.final {
			t.Errorf("%q: eol %q final %v", tt.in, txt.EOL, txt.FinalEOL)
		}
		if got := string(txt.Bytes()); got != tt.in {
			t.Errorf("%q joins back as %q", tt.in, got)
		}
	}
}

func TestTextEndOfAddedLines(t *testing.T) {
	txt := SplitLines([]byte("a\r\nb"))
	txt.Lines = append(txt.Lines, "c")
	if got, want := string(txt.Bytes()), "a\r\nb\r\nc"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	txt.FinalEOL = true
	if got, want := string(txt.Bytes()), "a\r\nb\r\nc\r\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
