package eval

import (
	"github.com/akashmaji946/elf-lang/object"
	"github.com/akashmaji946/elf-lang/parser"
)

func (e *Evaluator) evalCallExpression(node *parser.CallExpression, env *object.Environment) object.Value {
	callee := e.evalExpression(node.Callee, env)
	if object.IsError(callee) {
		return callee
	}
	args, err := e.evalExpressionList(node.Args, env)
	if err != nil {
		return err
	}
	return e.Call(callee, args)
}

// Call dispatches a call on callee to its user-Function or Builtin
// implementation, applying the currying/partial-application rules of
// §4.3.7. Exported so composition/threading (§4.3.8) and the
// higher-order builtins (map/filter/fold) can reuse it.
func (e *Evaluator) Call(callee object.Value, args []object.Value) object.Value {
	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, args)
	case *object.Builtin:
		return e.callBuiltin(fn, args)
	default:
		return object.NewError("Expected a Function, found: %s", callee.Kind())
	}
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Value) object.Value {
	allArgs := append(append([]object.Value{}, fn.Bound...), args...)
	if len(allArgs) < len(fn.Params) {
		return &object.Function{Params: fn.Params, Body: fn.Body, Env: fn.Env, Bound: allArgs}
	}
	callEnv := object.NewEnvironment(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param, allArgs[i], false)
	}
	return e.evalBlock(fn.Body, callEnv)
}

func (e *Evaluator) callBuiltin(b *object.Builtin, args []object.Value) object.Value {
	if b.IsVariadic() {
		return b.Fn(append(append([]object.Value{}, b.Bound...), args...))
	}
	allArgs := append(append([]object.Value{}, b.Bound...), args...)
	if len(allArgs) < b.Arity {
		return &object.Builtin{Name: b.Name, Arity: b.Arity, Bound: allArgs, Fn: b.Fn}
	}
	return b.Fn(allArgs[:b.Arity])
}

// evalComposition implements §4.3.8: f >> g produces a new unary
// Builtin whose invocation on x returns g(f(x)); chains compose
// left-to-right.
func (e *Evaluator) evalComposition(node *parser.CompositionExpression, env *object.Environment) object.Value {
	fns, err := e.evalExpressionList(node.Functions, env)
	if err != nil {
		return err
	}
	for _, fn := range fns {
		if !object.Callable(fn) {
			return object.NewError("Cannot compose non-function: %s", fn.Kind())
		}
	}
	return e.compose(fns)
}

func (e *Evaluator) compose(fns []object.Value) *object.Builtin {
	return &object.Builtin{
		Name:  "composed",
		Arity: 1,
		Fn: func(args []object.Value) object.Value {
			value := args[0]
			for _, fn := range fns {
				value = e.Call(fn, []object.Value{value})
				if object.IsError(value) {
					return value
				}
			}
			return value
		},
	}
}

// evalThread implements §4.3.8: x |> f |> g evaluates to g(f(x))
// immediately (unlike composition, the result is computed now, not
// returned as a new callable).
func (e *Evaluator) evalThread(node *parser.ThreadExpression, env *object.Environment) object.Value {
	value := e.evalExpression(node.Initial, env)
	if object.IsError(value) {
		return value
	}
	for _, fnExpr := range node.Functions {
		fn := e.evalExpression(fnExpr, env)
		if object.IsError(fn) {
			return fn
		}
		if !object.Callable(fn) {
			return object.NewError("Cannot thread into non-function: %s", fn.Kind())
		}
		value = e.Call(fn, []object.Value{value})
		if object.IsError(value) {
			return value
		}
	}
	return value
}
