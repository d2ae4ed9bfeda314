package token

import "testing"

func TestClassifyLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want LiteralKind
	}{
		{`"42"`, TQuoted},
		{`"true"`, TQuoted},
		{`""`, TQuoted},
		{`"`, TString},
		{"true", TTrue},
		{"false", TFalse},
		{"True", TString},
		{"42", TInteger},
		{"-7", TInteger},
		{"+3", TInteger},
		{"007", TInteger},
		{"9223372036854775808", TFloat},
		{"4.2", TFloat},
		{"1e3", TFloat},
		{"-.5", TFloat},
		{"0x10", TString},
		{"1_000", TString},
		{"Inf", TString},
		{"NaN", TString},
		{"1e999", TString},
		{".", TString},
		{"-", TString},
		{"hello", TString},
		{"", TString},
	}
	for _, tt := range tests {
		if got := ClassifyLiteral(tt.in); got != tt.want {
			t.Errorf("ClassifyLiteral(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
