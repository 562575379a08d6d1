// expr.go: the syntax side of the tagged-union pair (see value.go for the
// runtime side).
//
// Expr is a compact tagged union: Tag selects the kind, Data holds the
// payload. The accessor methods assert the payload type and are only valid
// when the tag matches; every consumer switches on Tag first, and the
// evaluator treats an unknown tag as a hard error rather than a silent
// fallthrough.
//
//	ENumber  float64
//	EBoolean bool
//	ESymbol  string
//	EList    []Expr
//	ELambda  *LambdaLit
//
// ELambda exists for structural completeness of the union: the parser never
// produces it (lambdas are written as the list form "( lambda ( x ) body )"),
// and evaluating one directly is an error.
package minilisp

// ExprTag enumerates the expression kinds.
type ExprTag int

const (
	ENumber ExprTag = iota
	EBoolean
	ESymbol
	EList
	ELambda
)

// Expr is one node of the expression tree. Immutable once parsed.
type Expr struct {
	Tag  ExprTag
	Data any
}

// LambdaLit is the payload of an ELambda node: parameter names in source
// order plus the unevaluated body.
type LambdaLit struct {
	Params []string
	Body   Expr
}

func NumberLit(f float64) Expr  { return Expr{Tag: ENumber, Data: f} }
func BoolLit(b bool) Expr       { return Expr{Tag: EBoolean, Data: b} }
func SymbolOf(name string) Expr { return Expr{Tag: ESymbol, Data: name} }
func ListOf(items ...Expr) Expr { return Expr{Tag: EList, Data: items} }
func LambdaOf(params []string, body Expr) Expr {
	return Expr{Tag: ELambda, Data: &LambdaLit{Params: params, Body: body}}
}

func (e Expr) Num() float64       { return e.Data.(float64) }
func (e Expr) Bool() bool         { return e.Data.(bool) }
func (e Expr) Sym() string        { return e.Data.(string) }
func (e Expr) Items() []Expr      { return e.Data.([]Expr) }
func (e Expr) Lambda() *LambdaLit { return e.Data.(*LambdaLit) }

// equalExpr is structural equality over expression trees.
func equalExpr(a, b Expr) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case ENumber:
		return a.Num() == b.Num()
	case EBoolean:
		return a.Bool() == b.Bool()
	case ESymbol:
		return a.Sym() == b.Sym()
	case EList:
		ai, bi := a.Items(), b.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !equalExpr(ai[i], bi[i]) {
				return false
			}
		}
		return true
	case ELambda:
		al, bl := a.Lambda(), b.Lambda()
		if len(al.Params) != len(bl.Params) {
			return false
		}
		for i := range al.Params {
			if al.Params[i] != bl.Params[i] {
				return false
			}
		}
		return equalExpr(al.Body, bl.Body)
	}
	return false
}
