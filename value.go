// value.go: the runtime side of the tagged-union pair (see expr.go).
package minilisp

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VNumber  ValueTag = iota // float64
	VBoolean                 // bool
	VClosure                 // *Closure
)

// Value is the universal runtime carrier produced by evaluation. The tag
// determines which payload type Data holds.
type Value struct {
	Tag  ValueTag
	Data any
}

// Closure is a lambda together with the environment snapshot taken when the
// lambda form was evaluated. The snapshot is never written to after capture;
// each call works on its own copy (see Interp.Apply).
type Closure struct {
	Params []string
	Body   Expr
	Env    *Env
}

func Num(f float64) Value { return Value{Tag: VNumber, Data: f} }
func Bool(b bool) Value   { return Value{Tag: VBoolean, Data: b} }
func ClosureVal(params []string, body Expr, env *Env) Value {
	return Value{Tag: VClosure, Data: &Closure{Params: params, Body: body, Env: env}}
}

func (v Value) Num() float64      { return v.Data.(float64) }
func (v Value) Bool() bool        { return v.Data.(bool) }
func (v Value) Closure() *Closure { return v.Data.(*Closure) }

// equalValue is structural equality over runtime values. Closures compare
// by parameter list, body, and captured bindings, not by identity.
func equalValue(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VNumber:
		return a.Num() == b.Num()
	case VBoolean:
		return a.Bool() == b.Bool()
	case VClosure:
		ac, bc := a.Closure(), b.Closure()
		if len(ac.Params) != len(bc.Params) {
			return false
		}
		for i := range ac.Params {
			if ac.Params[i] != bc.Params[i] {
				return false
			}
		}
		return equalExpr(ac.Body, bc.Body) && equalEnv(ac.Env, bc.Env)
	}
	return false
}

func equalEnv(a, b *Env) bool {
	if len(a.table) != len(b.table) {
		return false
	}
	for name, av := range a.table {
		bv, ok := b.table[name]
		if !ok || !equalValue(av, bv) {
			return false
		}
	}
	return true
}
