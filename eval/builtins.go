package eval

import (
	"github.com/akashmaji946/elf-lang/object"
)

// registerBuiltins binds the fixed primitive set of spec.md §4.3.9
// into the evaluator's global environment, grounded on the teacher's
// std.Builtins registration list (name -> callback) and on
// original_source/evaluator.py's builtin_* functions for exact
// semantics and error-message wording.
func registerBuiltins(e *Evaluator) {
	for _, b := range []*object.Builtin{
		{Name: "puts", Arity: -1, Fn: e.builtinPuts},
		{Name: "push", Arity: 2, Fn: builtinPush},
		{Name: "assoc", Arity: 3, Fn: builtinAssoc},
		{Name: "first", Arity: 1, Fn: builtinFirst},
		{Name: "rest", Arity: 1, Fn: builtinRest},
		{Name: "size", Arity: 1, Fn: builtinSize},
		{Name: "map", Arity: 2, Fn: e.builtinMap},
		{Name: "filter", Arity: 2, Fn: e.builtinFilter},
		{Name: "fold", Arity: 3, Fn: e.builtinFold},
		{Name: "+", Arity: 2, Fn: operatorBuiltin("+")},
		{Name: "-", Arity: 2, Fn: operatorBuiltin("-")},
		{Name: "*", Arity: 2, Fn: operatorBuiltin("*")},
		{Name: "/", Arity: 2, Fn: operatorBuiltin("/")},
	} {
		e.Env.Define(b.Name, b, false)
	}
}

// operatorBuiltin exposes "+ - * /" as named callables (§4.3.9),
// delegating to the same ApplyOperator the Infix evaluator uses.
func operatorBuiltin(op string) object.BuiltinFn {
	return func(args []object.Value) object.Value {
		return ApplyOperator(op, args[0], args[1])
	}
}

// builtinPuts appends each argument's printed form followed by a
// space, then a newline, to the output buffer (§4.3.9, §6.3).
func (e *Evaluator) builtinPuts(args []object.Value) object.Value {
	for _, a := range args {
		e.Output.WriteString(a.String())
		e.Output.WriteByte(' ')
	}
	e.Output.WriteByte('\n')
	return object.NilValue
}

func builtinPush(args []object.Value) object.Value {
	item, collection := args[0], args[1]
	switch c := collection.(type) {
	case *object.List:
		out := append(append([]object.Value{}, c.Elements...), item)
		return &object.List{Elements: out}
	case *object.Set:
		return c.Add(item)
	default:
		return object.NewError("Cannot push to %s", collection.Kind())
	}
}

func builtinAssoc(args []object.Value) object.Value {
	key, value, collection := args[0], args[1], args[2]
	dict, ok := collection.(*object.Dictionary)
	if !ok {
		return object.NewError("Cannot assoc to %s", collection.Kind())
	}
	return dict.Assoc(key, value)
}

func builtinFirst(args []object.Value) object.Value {
	switch c := args[0].(type) {
	case *object.List:
		if len(c.Elements) == 0 {
			return object.NilValue
		}
		return c.Elements[0]
	case *object.String:
		runes := []rune(c.Value)
		if len(runes) == 0 {
			return object.NilValue
		}
		return &object.String{Value: string(runes[0])}
	case *object.Set:
		if len(c.Elements) == 0 {
			return object.NilValue
		}
		return c.Elements[0]
	case *object.Dictionary:
		if len(c.Pairs) == 0 {
			return object.NilValue
		}
		return c.Pairs[0].Key
	default:
		return object.NilValue
	}
}

// builtinRest returns collection minus its first element, preserving
// kind; empty collections yield the same empty kind (§9 Open
// Questions: "rest on an empty String is ... empty String, not Nil").
func builtinRest(args []object.Value) object.Value {
	switch c := args[0].(type) {
	case *object.List:
		if len(c.Elements) == 0 {
			return &object.List{}
		}
		return &object.List{Elements: append([]object.Value{}, c.Elements[1:]...)}
	case *object.String:
		runes := []rune(c.Value)
		if len(runes) == 0 {
			return &object.String{}
		}
		return &object.String{Value: string(runes[1:])}
	case *object.Set:
		if len(c.Elements) == 0 {
			return &object.Set{}
		}
		return &object.Set{Elements: append([]object.Value{}, c.Elements[1:]...)}
	case *object.Dictionary:
		if len(c.Pairs) == 0 {
			return &object.Dictionary{}
		}
		return &object.Dictionary{Pairs: append([]object.DictPair{}, c.Pairs[1:]...)}
	default:
		return object.NilValue
	}
}

func builtinSize(args []object.Value) object.Value {
	switch c := args[0].(type) {
	case *object.List:
		return &object.Integer{Value: int64(len(c.Elements))}
	case *object.Set:
		return &object.Integer{Value: int64(len(c.Elements))}
	case *object.Dictionary:
		return &object.Integer{Value: int64(len(c.Pairs))}
	case *object.String:
		return &object.Integer{Value: int64(len(c.Value))}
	default:
		return object.NilValue
	}
}

func (e *Evaluator) builtinMap(args []object.Value) object.Value {
	fn, list := args[0], args[1]
	l, ok := list.(*object.List)
	if !ok || !object.Callable(fn) {
		return object.NewError("Unexpected argument: map(%s, %s)", fn.Kind(), list.Kind())
	}
	out := make([]object.Value, 0, len(l.Elements))
	for _, elem := range l.Elements {
		v := e.Call(fn, []object.Value{elem})
		if object.IsError(v) {
			return v
		}
		out = append(out, v)
	}
	return &object.List{Elements: out}
}

func (e *Evaluator) builtinFilter(args []object.Value) object.Value {
	fn, list := args[0], args[1]
	l, ok := list.(*object.List)
	if !ok || !object.Callable(fn) {
		return object.NewError("Unexpected argument: filter(%s, %s)", fn.Kind(), list.Kind())
	}
	out := make([]object.Value, 0, len(l.Elements))
	for _, elem := range l.Elements {
		v := e.Call(fn, []object.Value{elem})
		if object.IsError(v) {
			return v
		}
		if object.IsTruthy(v) {
			out = append(out, elem)
		}
	}
	return &object.List{Elements: out}
}

func (e *Evaluator) builtinFold(args []object.Value) object.Value {
	initial, fn, list := args[0], args[1], args[2]
	l, ok := list.(*object.List)
	if !ok || !object.Callable(fn) {
		return object.NewError("Unexpected argument: fold(%s, %s, %s)", initial.Kind(), fn.Kind(), list.Kind())
	}
	acc := initial
	for _, elem := range l.Elements {
		acc = e.Call(fn, []object.Value{acc, elem})
		if object.IsError(acc) {
			return acc
		}
	}
	return acc
}
