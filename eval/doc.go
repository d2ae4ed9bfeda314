// Package eval evaluates the arithmetic expressions typed at the console.
//
// Expressions are compiled with expr-lang/expr and always produce a float64.
// Besides the usual operators ("^" and "**" are powers) the functions sqrt,
// cbrt, round, ceil, floor, sin, cos, tan and fib are available.
package eval
