// interp.go — evaluator and applier for the minilisp runtime.
//
// OVERVIEW
// --------
// An Interp owns one Global environment that lives for the process lifetime
// and is mutated in place by every top-level define. Evaluation is a plain
// recursive walk over the expression tree, single-threaded and free of I/O;
// the only entry points are:
//
//   - EvalSource(src): tokenize+parse one line, evaluate it in Global.
//   - Eval(expr, env):  evaluate an expression tree in a given scope.
//   - Apply(fn, args, env): call a closure with argument expressions.
//
// The language has exactly two special forms:
//
//   - ( define name expr )   evaluate expr, bind the result to name in the
//     current scope, return it. The name is bound only after the value
//     expression succeeds, so a failed define mutates nothing.
//   - ( lambda ( p... ) body ) build a Closure capturing the current scope
//     by snapshot; the body stays unevaluated.
//
// Any other list form — including ordinary function application like
// "( f 1 )" — fails with "invalid expression". Apply exists and is part of
// the public surface, but Eval never reaches it: making application syntax
// call closures is a language decision this runtime does not take. Hosts
// that want to invoke a closure call Apply themselves.
//
// ERRORS
// ------
// Every failure is a returned *EvalError with a machine-checkable Kind;
// nothing panics across this surface, and the REPL resumes after printing.
package minilisp

import "fmt"

// ErrKind discriminates evaluation failures.
type ErrKind int

const (
	ErrUndefinedSymbol ErrKind = iota // symbol lookup miss
	ErrEmptyList                      // "( )" evaluated
	ErrInvalidDefine                  // malformed define form
	ErrInvalidLambda                  // malformed lambda form
	ErrInvalidLambdaParam             // lambda parameter is not a bare symbol
	ErrInvalidExpression              // any list form other than define/lambda
	ErrLambdaNotCallable              // a raw lambda literal evaluated directly
	ErrNotCallable                    // Apply on a non-closure
	ErrArityMismatch                  // Apply with the wrong argument count
)

// EvalError is a recoverable evaluation failure.
type EvalError struct {
	Kind ErrKind
	Msg  string
}

func (e *EvalError) Error() string { return e.Msg }

func evalErr(kind ErrKind, msg string) error {
	return &EvalError{Kind: kind, Msg: msg}
}

func evalErrf(kind ErrKind, format string, args ...any) error {
	return &EvalError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Interp is the evaluation engine.
type Interp struct {
	// Global is the top-level scope, mutated in place by define.
	Global *Env
	// Trace, when set, receives one line per parameter bound by Apply.
	Trace func(format string, args ...any)
}

func NewInterp() *Interp { return &Interp{Global: NewEnv()} }

// EvalSource parses one line of source and evaluates it in Global.
func (ip *Interp) EvalSource(src string) (Value, error) {
	expr, err := ParseSource(src)
	if err != nil {
		return Value{}, err
	}
	return ip.Eval(expr, ip.Global)
}

// Eval evaluates expr in env.
func (ip *Interp) Eval(expr Expr, env *Env) (Value, error) {
	switch expr.Tag {
	case ENumber:
		return Num(expr.Num()), nil
	case EBoolean:
		return Bool(expr.Bool()), nil
	case ESymbol:
		return env.Get(expr.Sym())
	case EList:
		items := expr.Items()
		if len(items) == 0 {
			return Value{}, evalErr(ErrEmptyList, "empty list")
		}
		if head := items[0]; head.Tag == ESymbol {
			switch head.Sym() {
			case "define":
				return ip.evalDefine(items, env)
			case "lambda":
				return ip.evalLambda(items, env)
			}
		}
		return Value{}, evalErr(ErrInvalidExpression, "invalid expression")
	case ELambda:
		return Value{}, evalErr(ErrLambdaNotCallable, "lambda cannot be evaluated directly")
	}
	return Value{}, evalErrf(ErrInvalidExpression, "invalid expression tag %d", expr.Tag)
}

// ( define name expr )
func (ip *Interp) evalDefine(form []Expr, env *Env) (Value, error) {
	if len(form) != 3 {
		return Value{}, evalErr(ErrInvalidDefine, "invalid define expression")
	}
	if form[1].Tag != ESymbol {
		return Value{}, evalErr(ErrInvalidDefine, "invalid variable name in define")
	}
	v, err := ip.Eval(form[2], env)
	if err != nil {
		return Value{}, err
	}
	env.Define(form[1].Sym(), v)
	return v, nil
}

// ( lambda ( p... ) body )
func (ip *Interp) evalLambda(form []Expr, env *Env) (Value, error) {
	if len(form) != 3 {
		return Value{}, evalErr(ErrInvalidLambda, "invalid lambda expression")
	}
	if form[1].Tag != EList {
		return Value{}, evalErr(ErrInvalidLambda, "invalid parameter list in lambda")
	}
	raw := form[1].Items()
	params := make([]string, 0, len(raw))
	for _, p := range raw {
		if p.Tag != ESymbol {
			return Value{}, evalErr(ErrInvalidLambdaParam, "invalid parameter name in lambda")
		}
		params = append(params, p.Sym())
	}
	return ClosureVal(params, form[2], env.Snapshot()), nil
}

// Apply calls a closure: argument expressions are evaluated in the caller's
// environment and bound positionally in a fresh copy of the closure's
// captured snapshot, then the body is evaluated there. The call scope is
// discarded afterward; no mutation escapes the call.
func (ip *Interp) Apply(fn Value, args []Expr, callerEnv *Env) (Value, error) {
	if fn.Tag != VClosure {
		return Value{}, evalErr(ErrNotCallable, "invalid function application")
	}
	cl := fn.Closure()
	if len(args) != len(cl.Params) {
		return Value{}, evalErrf(ErrArityMismatch,
			"incorrect number of arguments: want %d, got %d", len(cl.Params), len(args))
	}
	callEnv := cl.Env.Snapshot()
	for i, param := range cl.Params {
		v, err := ip.Eval(args[i], callerEnv)
		if err != nil {
			return Value{}, err
		}
		callEnv.Define(param, v)
		ip.tracef("bind %s = %s", param, FormatValue(v))
	}
	return ip.Eval(cl.Body, callEnv)
}

func (ip *Interp) tracef(format string, args ...any) {
	if ip.Trace != nil {
		ip.Trace(format, args...)
	}
}
