package token

import "testing"

func TestUnescape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`plain`, "plain"},
		{`caf\u00e9`, "caf\u00e9"},
		{`\u0041\u0042`, "AB"},
		{`\u00zz`, `\u00zz`},
		{`\u12`, `\u12`},
		{`back\slash`, `back\slash`},
		{`\ud83d\ude00`, "\U0001F600"},
		{`\ud83d`, "\uFFFD"},
	}
	for _, tt := range tests {
		if got := Unescape(tt.in); got != tt.want {
			t.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"hello world",
		`say "hi"`,
		"line\nbreak",
		"tab\there",
		`literal \u0041 text`,
		"${not.a.var}",
		"cost $5",
		"\U0001F600 ok",
		`trailing\`,
	}
	for _, in := range tests {
		q := Quote(in)
		if !IsQuoted(q) {
			t.Errorf("Quote(%q) = %s is not quoted", in, q)
			continue
		}
		if got := Unescape(Unquote(q)); got != in {
			t.Errorf("Quote(%q) = %s reads back as %q", in, q, got)
		}
	}
}
