package object

import (
	"strings"

	"github.com/akashmaji946/elf-lang/parser"
)

// Function is a user-defined closure, grounded on the teacher's
// function.Function (Name, Params, Body, Scp) generalised with the
// Bound slice that partial application (spec.md §4.3.7) requires —
// a concern the teacher's own language does not have, modelled here
// after original_source/evaluator.py's call_user_function.
type Function struct {
	// Params is the full declared parameter list; it never shrinks.
	Params []string
	Body   *parser.BlockStatement
	Env    *Environment
	// Bound holds arguments already supplied by a prior partial call.
	Bound []Value
}

func (f *Function) Kind() Kind { return FunctionKind }

// String prints the parameters still awaited — the full declared list
// for an unapplied function, or just the remaining tail once some
// arguments have been bound by partial application.
func (f *Function) String() string {
	return "|" + strings.Join(f.Params[len(f.Bound):], ", ") + "| { [closure] }"
}

// Arity is the number of arguments still required before the body
// can run.
func (f *Function) Arity() int { return len(f.Params) - len(f.Bound) }

// BuiltinFn is the native implementation signature for a primitive.
type BuiltinFn func(args []Value) Value

// Builtin is a primitive function value. Arity of -1 marks a variadic
// builtin (spec.md §4.3.9's puts); all other primitives declare a
// fixed arity and curry exactly like user Functions (§4.3.7).
type Builtin struct {
	Name  string
	Arity int
	Bound []Value
	Fn    BuiltinFn
}

func (b *Builtin) Kind() Kind { return BuiltinKind }

func (b *Builtin) String() string { return "<builtin " + b.Name + ">" }

// IsVariadic reports whether b accepts any number of arguments.
func (b *Builtin) IsVariadic() bool { return b.Arity < 0 }

// Callable reports whether v can be called (Function or Builtin),
// which composition/threading (§4.3.8) and the higher-order builtins
// (§4.3.9) both need to check.
func Callable(v Value) bool {
	switch v.(type) {
	case *Function, *Builtin:
		return true
	default:
		return false
	}
}
