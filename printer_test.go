// printer_test.go
package minilisp

import "testing"

func Test_Printer_Numbers(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{5, "5"},
		{-2.5, "-2.5"},
		{0.5, "0.5"},
		{1e21, "1e+21"},
	}
	for _, c := range cases {
		if got := FormatValue(Num(c.in)); got != c.want {
			t.Fatalf("FormatValue(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func Test_Printer_Booleans(t *testing.T) {
	if got := FormatValue(Bool(true)); got != "true" {
		t.Fatalf("got %q", got)
	}
	if got := FormatValue(Bool(false)); got != "false" {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_Closure(t *testing.T) {
	v := ClosureVal([]string{"x", "y"}, SymbolOf("x"), NewEnv())
	if got := FormatValue(v); got != "<lambda (x y) x>" {
		t.Fatalf("got %q", got)
	}
}

func Test_Printer_Expr(t *testing.T) {
	cases := []struct {
		in   Expr
		want string
	}{
		{NumberLit(2.5), "2.5"},
		{BoolLit(false), "false"},
		{SymbolOf("foo"), "foo"},
		{ListOf(), "()"},
		{ListOf(SymbolOf("define"), SymbolOf("x"), NumberLit(5)), "(define x 5)"},
		{ListOf(SymbolOf("a"), ListOf(SymbolOf("b"))), "(a (b))"},
		{LambdaOf([]string{"x"}, SymbolOf("x")), "(lambda (x) x)"},
	}
	for _, c := range cases {
		if got := FormatExpr(c.in); got != c.want {
			t.Fatalf("FormatExpr = %q, want %q", got, c.want)
		}
	}
}

// Rendering a closure must be stable across calls.
func Test_Printer_Stable(t *testing.T) {
	ip := NewInterp()
	v := mustEval(t, ip, "( lambda ( x ) ( define y x ) )")
	a, b := FormatValue(v), FormatValue(v)
	if a != b {
		t.Fatalf("unstable rendering: %q vs %q", a, b)
	}
	if a != "<lambda (x) (define y x)>" {
		t.Fatalf("got %q", a)
	}
}
