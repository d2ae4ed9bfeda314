package eval

import (
	"fmt"
	"math"
	"math/big"
	"slices"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
)

// Functions lists the functions an expression may call.
var Functions = []string{"sqrt", "cbrt", "round", "ceil", "floor", "sin", "cos", "tan", "fib"}

// maxFib bounds fib so that its result still has a float64 value.
const maxFib = 1476

func unary(name string, f func(float64) float64) expr.Option {
	return expr.Function(name, func(params ...any) (any, error) {
		x, err := number(params[0])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return f(x), nil
	},
		new(func(float64) float64))
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.AsFloat64(),
		unary("sqrt", math.Sqrt),
		unary("cbrt", math.Cbrt),
		// half rounds up, also for negative numbers
		unary("round", func(x float64) float64 { return math.Floor(x + 0.5) }),
		unary("ceil", math.Ceil),
		unary("floor", math.Floor),
		unary("sin", math.Sin),
		unary("cos", math.Cos),
		unary("tan", math.Tan),
		expr.Function("fib", func(params ...any) (any, error) {
			x, err := number(params[0])
			if err != nil {
				return nil, err
			}
			n := int(x)
			if n > maxFib {
				return nil, fmt.Errorf("fib(%d): %w", n, ErrNotFinite)
			}
			f, _ := fib(n).Float64()
			return f, nil
		},
			new(func(float64) float64)),
	}
}

func number(x any) (float64, error) {
	switch t := x.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	}
	return 0, fmt.Errorf("%v is not a number", x)
}

var (
	fibMu    sync.Mutex
	fibCache = []*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(1)}
)

// fib returns the n-th Fibonacci number, 1 for anything below 3.
func fib(n int) *big.Int {
	fibMu.Lock()
	defer fibMu.Unlock()
	if n < 3 {
		return fibCache[1]
	}
	for len(fibCache) <= n {
		l := len(fibCache)
		fibCache = append(fibCache, new(big.Int).Add(fibCache[l-1], fibCache[l-2]))
	}
	return fibCache[n]
}

// Decimal evaluates input as an arithmetic expression.
func Decimal(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrNotExpression
	}
	prg, err := expr.Compile(input, exprOpts()...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotExpression, err)
	}
	res, err := expr.Run(prg, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotExpression, err)
	}
	f, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: result %v is not a number", ErrNotExpression, res)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q: %w", input, ErrNotFinite)
	}
	return f, nil
}

// IsExpression reports whether input looks like something Decimal should be
// given: it starts with a digit, an opening parenthesis or a sign, or with
// the name of one of the Functions.
func IsExpression(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	switch c := input[0]; {
	case c == '(', c == '-', c == '+', c >= '0' && c <= '9':
		return true
	}
	end := strings.IndexByte(input, '(')
	if end < 0 {
		end = len(input)
	}
	name := strings.TrimSpace(input[:end])
	return slices.Contains(Functions, name)
}
