package eval

import (
	"strings"

	"github.com/akashmaji946/elf-lang/object"
	"github.com/akashmaji946/elf-lang/parser"
)

// evalPrefixExpression implements §4.3.3's prefix "-": negates
// Integer or Decimal, otherwise raises.
func (e *Evaluator) evalPrefixExpression(node *parser.PrefixExpression, env *object.Environment) object.Value {
	operand := e.evalExpression(node.Operand, env)
	if object.IsError(operand) {
		return operand
	}
	switch v := operand.(type) {
	case *object.Integer:
		return &object.Integer{Value: -v.Value}
	case *object.Decimal:
		return &object.Decimal{Value: -v.Value}
	default:
		return object.NewError("Unsupported operation: -%s", operand.Kind())
	}
}

func (e *Evaluator) evalInfixExpression(node *parser.InfixExpression, env *object.Environment) object.Value {
	left := e.evalExpression(node.Left, env)
	if object.IsError(left) {
		return left
	}
	right := e.evalExpression(node.Right, env)
	if object.IsError(right) {
		return right
	}
	return ApplyOperator(node.Operator, left, right)
}

// ApplyOperator implements the binary operator semantics of §4.3.3/
// §4.3.4, grounded on original_source/evaluator.py's add_values/
// subtract_values/multiply_values/divide_values/compare_values. It is
// exported so the "+ - * /" builtin identifiers of §4.3.9 can share
// the same implementation the Infix evaluator uses.
func ApplyOperator(operator string, left, right object.Value) object.Value {
	switch operator {
	case "+":
		return evalAdd(left, right)
	case "-":
		return evalSubtract(left, right)
	case "*":
		return evalMultiply(left, right)
	case "/":
		return evalDivide(left, right)
	case "==":
		return object.NativeBool(object.Equal(left, right))
	case "!=":
		return object.NativeBool(!object.Equal(left, right))
	case "&&":
		return object.NativeBool(object.IsTruthy(left) && object.IsTruthy(right))
	case "||":
		return object.NativeBool(object.IsTruthy(left) || object.IsTruthy(right))
	case ">", "<", ">=", "<=":
		return evalComparison(operator, left, right)
	default:
		return object.NewError("Unsupported operation: %s %s %s", left.Kind(), operator, right.Kind())
	}
}

func isNumeric(v object.Value) bool {
	switch v.(type) {
	case *object.Integer, *object.Decimal:
		return true
	default:
		return false
	}
}

func numericOf(v object.Value) float64 {
	switch t := v.(type) {
	case *object.Integer:
		return float64(t.Value)
	case *object.Decimal:
		return t.Value
	}
	return 0
}

func bothInteger(a, b object.Value) bool {
	_, aok := a.(*object.Integer)
	_, bok := b.(*object.Integer)
	return aok && bok
}

func evalAdd(left, right object.Value) object.Value {
	switch {
	case bothInteger(left, right):
		return &object.Integer{Value: left.(*object.Integer).Value + right.(*object.Integer).Value}
	case isNumeric(left) && isNumeric(right):
		return &object.Decimal{Value: numericOf(left) + numericOf(right)}
	case left.Kind() == object.StringKind && right.Kind() == object.StringKind:
		return &object.String{Value: left.(*object.String).Value + right.(*object.String).Value}
	case left.Kind() == object.StringKind:
		return &object.String{Value: left.(*object.String).Value + printForm(right)}
	case right.Kind() == object.StringKind:
		return &object.String{Value: printForm(left) + right.(*object.String).Value}
	case left.Kind() == object.ListKind && right.Kind() == object.ListKind:
		l, r := left.(*object.List), right.(*object.List)
		out := append(append([]object.Value{}, l.Elements...), r.Elements...)
		return &object.List{Elements: out}
	case left.Kind() == object.SetKind && right.Kind() == object.SetKind:
		l, r := left.(*object.Set), right.(*object.Set)
		out := l
		for _, v := range r.Elements {
			out = out.Add(v)
		}
		return out
	case left.Kind() == object.DictionaryKind && right.Kind() == object.DictionaryKind:
		l, r := left.(*object.Dictionary), right.(*object.Dictionary)
		out := l
		for _, p := range r.Pairs {
			out = out.Assoc(p.Key, p.Value)
		}
		return out
	default:
		return object.NewError("Unsupported operation: %s + %s", left.Kind(), right.Kind())
	}
}

// printForm renders a value the way "+" string concatenation shows a
// non-string operand (integer digits, decimal form, or that kind's
// own print form otherwise).
func printForm(v object.Value) string {
	if s, ok := v.(*object.String); ok {
		return s.Value
	}
	return v.String()
}

func evalSubtract(left, right object.Value) object.Value {
	if !isNumeric(left) || !isNumeric(right) {
		return object.NewError("Unsupported operation: %s - %s", left.Kind(), right.Kind())
	}
	if bothInteger(left, right) {
		return &object.Integer{Value: left.(*object.Integer).Value - right.(*object.Integer).Value}
	}
	return &object.Decimal{Value: numericOf(left) - numericOf(right)}
}

func evalMultiply(left, right object.Value) object.Value {
	if left.Kind() == object.StringKind && right.Kind() == object.IntegerKind {
		n := right.(*object.Integer).Value
		if n < 0 {
			return object.NewError("Unsupported operation: String * Integer (< 0)")
		}
		return &object.String{Value: strings.Repeat(left.(*object.String).Value, int(n))}
	}
	if left.Kind() == object.StringKind && right.Kind() == object.DecimalKind {
		return object.NewError("Unsupported operation: String * Decimal")
	}
	if !isNumeric(left) || !isNumeric(right) {
		return object.NewError("Unsupported operation: %s * %s", left.Kind(), right.Kind())
	}
	if bothInteger(left, right) {
		return &object.Integer{Value: left.(*object.Integer).Value * right.(*object.Integer).Value}
	}
	return &object.Decimal{Value: numericOf(left) * numericOf(right)}
}

func evalDivide(left, right object.Value) object.Value {
	if !isNumeric(left) || !isNumeric(right) {
		return object.NewError("Unsupported operation: %s / %s", left.Kind(), right.Kind())
	}
	if numericOf(right) == 0 {
		return object.NewError("Division by zero")
	}
	if bothInteger(left, right) {
		l, r := left.(*object.Integer).Value, right.(*object.Integer).Value
		return &object.Integer{Value: l / r} // Go / truncates toward zero for ints
	}
	return &object.Decimal{Value: numericOf(left) / numericOf(right)}
}

func evalComparison(operator string, left, right object.Value) object.Value {
	if isNumeric(left) && isNumeric(right) {
		l, r := numericOf(left), numericOf(right)
		return object.NativeBool(compareNumbers(operator, l, r))
	}
	if left.Kind() == object.StringKind && right.Kind() == object.StringKind {
		l, r := left.(*object.String).Value, right.(*object.String).Value
		return object.NativeBool(compareStrings(operator, l, r))
	}
	return object.NewError("Cannot compare %s with %s", left.Kind(), right.Kind())
}

func compareNumbers(operator string, l, r float64) bool {
	switch operator {
	case ">":
		return l > r
	case "<":
		return l < r
	case ">=":
		return l >= r
	case "<=":
		return l <= r
	}
	return false
}

func compareStrings(operator, l, r string) bool {
	switch operator {
	case ">":
		return l > r
	case "<":
		return l < r
	case ">=":
		return l >= r
	case "<=":
		return l <= r
	}
	return false
}
