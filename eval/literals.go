package eval

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/elf-lang/object"
	"github.com/akashmaji946/elf-lang/parser"
)

// stripUnderscores drops the digit-group separators spec.md §4.3.2
// says literals may carry.
func stripUnderscores(s string) string {
	return strings.ReplaceAll(s, "_", "")
}

func evalIntegerLiteral(node *parser.IntegerLiteral) object.Value {
	n, err := strconv.ParseInt(stripUnderscores(node.Literal), 10, 64)
	if err != nil {
		return object.NewError("Invalid integer literal: %s", node.Literal)
	}
	return &object.Integer{Value: n}
}

func evalDecimalLiteral(node *parser.DecimalLiteral) object.Value {
	f, err := strconv.ParseFloat(stripUnderscores(node.Literal), 64)
	if err != nil {
		return object.NewError("Invalid decimal literal: %s", node.Literal)
	}
	return &object.Decimal{Value: f}
}

func (e *Evaluator) evalListLiteral(node *parser.ListLiteral, env *object.Environment) object.Value {
	elements, err := e.evalExpressionList(node.Elements, env)
	if err != nil {
		return err
	}
	return &object.List{Elements: elements}
}

// evalSetLiteral evaluates elements left-to-right, rejecting any
// Dictionary element (§4.3.2) and deduplicating by structural
// equality.
func (e *Evaluator) evalSetLiteral(node *parser.SetLiteral, env *object.Environment) object.Value {
	set := &object.Set{}
	for _, elemExpr := range node.Elements {
		v := e.evalExpression(elemExpr, env)
		if object.IsError(v) {
			return v
		}
		if v.Kind() == object.DictionaryKind {
			return object.NewError("Unable to include a Dictionary within a Set")
		}
		set = set.Add(v)
	}
	return set
}

// evalDictionaryLiteral evaluates key then value per pair; duplicate
// keys keep the last write (§4.3.2).
func (e *Evaluator) evalDictionaryLiteral(node *parser.DictionaryLiteral, env *object.Environment) object.Value {
	dict := &object.Dictionary{}
	for _, pair := range node.Pairs {
		key := e.evalExpression(pair.Key, env)
		if object.IsError(key) {
			return key
		}
		if key.Kind() == object.DictionaryKind {
			return object.NewError("Unable to use a Dictionary as a Dictionary key")
		}
		value := e.evalExpression(pair.Value, env)
		if object.IsError(value) {
			return value
		}
		dict = dict.Assoc(key, value)
	}
	return dict
}

func (e *Evaluator) evalExpressionList(exprs []parser.Expression, env *object.Environment) ([]object.Value, *object.Error) {
	values := make([]object.Value, 0, len(exprs))
	for _, expr := range exprs {
		v := e.evalExpression(expr, env)
		if errVal, ok := v.(*object.Error); ok {
			return nil, errVal
		}
		values = append(values, v)
	}
	return values, nil
}
