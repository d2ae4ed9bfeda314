package eval

import (
	"errors"
	"testing"
)

func TestDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1 + 2", 3},
		{"2 * (3 + 4)", 14},
		{"7 / 2", 3.5},
		{"-3 + 1", -2},
		{"2 ^ 10", 1024},
		{"sqrt(16)", 4},
		{"cbrt(27)", 3},
		{"round(1.4)", 1},
		{"round(1.5)", 2},
		{"round(-1.5)", -1},
		{"ceil(1.2)", 2},
		{"floor(1.8)", 1},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"tan(0)", 0},
		{"fib(1)", 1},
		{"fib(2)", 1},
		{"fib(10)", 55},
		{"fib(3) + fib(4)", 5},
		{" 0.25 ", 0.25},
	}
	for _, tt := range tests {
		got, err := Decimal(tt.in)
		if err != nil {
			t.Errorf("Decimal(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Decimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFibLarge(t *testing.T) {
	got, err := Decimal("fib(90)")
	if err != nil {
		t.Fatal(err)
	}
	if got != 2880067194370816000 {
		t.Errorf("fib(90) = %v", got)
	}
	if _, err := Decimal("fib(2000)"); !errors.Is(err, ErrNotFinite) {
		t.Errorf("fib(2000) err = %v", err)
	}
}

func TestDecimalErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"", ErrNotExpression},
		{"1 +", ErrNotExpression},
		{"nosuch(1)", ErrNotExpression},
		{`"text"`, ErrNotExpression},
		{"true", ErrNotExpression},
		{"1 / 0", ErrNotFinite},
		{"sqrt(-1)", ErrNotFinite},
	}
	for _, tt := range tests {
		if _, err := Decimal(tt.in); !errors.Is(err, tt.err) {
			t.Errorf("Decimal(%q) err = %v, want %v", tt.in, err, tt.err)
		}
	}
}

func TestIsExpression(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1+1", true},
		{"(2)", true},
		{"-4 * 2", true},
		{"sqrt(9)", true},
		{"floor(2.5)", true},
		{"fib (3)", true},
		{"quit", false},
		{".get a", false},
		{"sqrtx(1)", false},
		{"hello world", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsExpression(tt.in); got != tt.want {
			t.Errorf("IsExpression(%q) = %v", tt.in, got)
		}
	}
}
