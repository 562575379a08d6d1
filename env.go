// env.go: one flat lexical scope.
//
// There is no parent chain. Closures capture their defining scope with
// Snapshot, a full copy taken at lambda-evaluation time, so a closure never
// observes a later top-level define. That copy semantics is the documented
// behavior of the language, not an accident.
package minilisp

// Env maps symbol names to values. Rebinding a name overwrites it.
type Env struct {
	table map[string]Value
}

func NewEnv() *Env { return &Env{table: make(map[string]Value)} }

// Define binds name to v in this scope, overwriting any previous binding.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get looks name up in this scope.
func (e *Env) Get(name string) (Value, error) {
	if v, ok := e.table[name]; ok {
		return v, nil
	}
	return Value{}, &EvalError{Kind: ErrUndefinedSymbol, Msg: "undefined symbol: " + name}
}

// Snapshot returns an independent copy of this scope. Values are immutable
// once constructed, so copying the binding table is a structural copy.
func (e *Env) Snapshot() *Env {
	cp := make(map[string]Value, len(e.table))
	for name, v := range e.table {
		cp[name] = v
	}
	return &Env{table: cp}
}

// Len reports the number of bindings in this scope.
func (e *Env) Len() int { return len(e.table) }
