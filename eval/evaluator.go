// Package eval implements the tree-walking evaluator of spec.md
// §4.3: it reduces a parser.Program to Values under an
// object.Environment chain, accumulating puts output.
//
// Structurally grounded on the teacher's eval.Evaluator (a struct
// holding scope + builtin registry + output sink, a type-switch
// dispatcher rather than the teacher's own visitor machinery) and on
// original_source/evaluator.py's Evaluator for the exact runtime
// semantics (arithmetic promotion, currying, composition/threading,
// the fixed builtin set and its error strings).
package eval

import (
	"strings"

	"github.com/akashmaji946/elf-lang/object"
	"github.com/akashmaji946/elf-lang/parser"
)

// Evaluator walks a Program under Env, appending to Output as puts is
// invoked. Grounded on the teacher's Evaluator{Scp, Writer}; elf
// accumulates into a strings.Builder rather than an io.Writer because
// spec.md §6.1 wants the whole output text handed back from a single
// pure function call, not streamed.
type Evaluator struct {
	Env    *object.Environment
	Output strings.Builder
}

// NewEvaluator builds an evaluator with the fixed primitive set of
// spec.md §4.3.9 registered in a fresh global environment.
func NewEvaluator() *Evaluator {
	e := &Evaluator{Env: object.NewEnvironment(nil)}
	registerBuiltins(e)
	return e
}

// Evaluate is the single pure entry point of spec.md §6.1: parse and
// evaluate source, returning the accumulated puts output followed by
// the program's final value, or "[Error] <message>" appended to
// whatever output was already buffered.
func Evaluate(source string) string {
	p := parser.NewParser(source)
	program := p.Parse()
	if p.HasErrors() {
		return "[Error] " + p.FirstError()
	}

	e := NewEvaluator()
	result := e.evalProgram(program)
	if errVal, ok := result.(*object.Error); ok {
		return e.Output.String() + "[Error] " + errVal.Message
	}
	return e.Output.String() + result.String()
}

func (e *Evaluator) evalProgram(program *parser.Program) object.Value {
	return e.evalStatements(program.Statements, e.Env)
}

// EvalREPLLine evaluates one already-parsed line of input against the
// evaluator's persistent environment, for interactive sessions
// (repl.Repl) that want bindings to survive across lines. It returns
// any puts output produced by this line separately from the line's
// result value, since the REPL displays the two differently
// (plain output, then a coloured result/error line).
func (e *Evaluator) EvalREPLLine(program *parser.Program) (string, object.Value) {
	before := e.Output.Len()
	result := e.evalProgram(program)
	produced := e.Output.String()[before:]
	return produced, result
}

// evalStatements evaluates an ordered Statement sequence, returning
// the last non-Comment statement's value (Nil if the block/program is
// empty of evaluable statements), short-circuiting on the first
// Error.
func (e *Evaluator) evalStatements(stmts []parser.Statement, env *object.Environment) object.Value {
	var result object.Value = object.NilValue
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *parser.CommentStatement:
			continue
		case *parser.ExpressionStatement:
			result = e.evalExpression(s.Expr, env)
			if object.IsError(result) {
				return result
			}
		}
	}
	return result
}

// evalBlock evaluates a Block's statements against env. Per §4.3.1,
// blocks do not introduce a new scope on their own — only a function
// invocation does, by passing a freshly created child Environment as
// env (see callFunction); if-expression branches reuse the enclosing
// env directly so a let/let-mut inside one rebinds there.
func (e *Evaluator) evalBlock(block *parser.BlockStatement, env *object.Environment) object.Value {
	return e.evalStatements(block.Statements, env)
}

func (e *Evaluator) evalExpression(expr parser.Expression, env *object.Environment) object.Value {
	switch node := expr.(type) {
	case *parser.IntegerLiteral:
		return evalIntegerLiteral(node)
	case *parser.DecimalLiteral:
		return evalDecimalLiteral(node)
	case *parser.StringLiteral:
		return &object.String{Value: node.Value}
	case *parser.BooleanLiteral:
		return object.NativeBool(node.Value)
	case *parser.NilLiteral:
		return object.NilValue
	case *parser.Identifier:
		return e.evalIdentifier(node, env)
	case *parser.LetExpression:
		return e.evalLetExpression(node, env)
	case *parser.AssignmentExpression:
		return e.evalAssignment(node, env)
	case *parser.PrefixExpression:
		return e.evalPrefixExpression(node, env)
	case *parser.InfixExpression:
		return e.evalInfixExpression(node, env)
	case *parser.ListLiteral:
		return e.evalListLiteral(node, env)
	case *parser.SetLiteral:
		return e.evalSetLiteral(node, env)
	case *parser.DictionaryLiteral:
		return e.evalDictionaryLiteral(node, env)
	case *parser.FunctionLiteral:
		return &object.Function{Params: node.Params, Body: node.Body, Env: env}
	case *parser.IfExpression:
		return e.evalIfExpression(node, env)
	case *parser.IndexExpression:
		return e.evalIndexExpression(node, env)
	case *parser.CallExpression:
		return e.evalCallExpression(node, env)
	case *parser.CompositionExpression:
		return e.evalComposition(node, env)
	case *parser.ThreadExpression:
		return e.evalThread(node, env)
	default:
		return object.NewError("Unsupported expression")
	}
}

func (e *Evaluator) evalIdentifier(node *parser.Identifier, env *object.Environment) object.Value {
	if v, ok := env.Get(node.Name); ok {
		return v
	}
	return object.NewError("Identifier can not be found: %s", node.Name)
}

func (e *Evaluator) evalLetExpression(node *parser.LetExpression, env *object.Environment) object.Value {
	value := e.evalExpression(node.Value, env)
	if object.IsError(value) {
		return value
	}
	env.Define(node.Name, value, node.Mutable)
	return value
}

func (e *Evaluator) evalAssignment(node *parser.AssignmentExpression, env *object.Environment) object.Value {
	value := e.evalExpression(node.Value, env)
	if object.IsError(value) {
		return value
	}
	if err := env.Assign(node.Name, value); err != nil {
		return err
	}
	return value
}

func (e *Evaluator) evalIfExpression(node *parser.IfExpression, env *object.Environment) object.Value {
	condition := e.evalExpression(node.Condition, env)
	if object.IsError(condition) {
		return condition
	}
	if object.IsTruthy(condition) {
		return e.evalBlock(node.Consequence, env)
	}
	if node.Alternative != nil {
		return e.evalBlock(node.Alternative, env)
	}
	return object.NilValue
}
