// printer.go: stable textual renderings for values and expressions.
package minilisp

import (
	"strconv"
	"strings"
)

// FormatValue renders a runtime value. Numbers use the shortest float form,
// closures show their parameter list and unevaluated body.
func FormatValue(v Value) string {
	switch v.Tag {
	case VNumber:
		return strconv.FormatFloat(v.Num(), 'g', -1, 64)
	case VBoolean:
		return strconv.FormatBool(v.Bool())
	case VClosure:
		cl := v.Closure()
		return "<lambda (" + strings.Join(cl.Params, " ") + ") " + FormatExpr(cl.Body) + ">"
	}
	return "<invalid>"
}

// FormatExpr renders an expression tree back to s-expression text. The
// rendering is for display only; it uses conventional "(a b)" spacing, not
// the whitespace-separated input surface.
func FormatExpr(e Expr) string {
	switch e.Tag {
	case ENumber:
		return strconv.FormatFloat(e.Num(), 'g', -1, 64)
	case EBoolean:
		return strconv.FormatBool(e.Bool())
	case ESymbol:
		return e.Sym()
	case EList:
		parts := make([]string, 0, len(e.Items()))
		for _, it := range e.Items() {
			parts = append(parts, FormatExpr(it))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case ELambda:
		lit := e.Lambda()
		return "(lambda (" + strings.Join(lit.Params, " ") + ") " + FormatExpr(lit.Body) + ")"
	}
	return "<invalid>"
}
