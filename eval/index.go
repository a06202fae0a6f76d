package eval

import (
	"github.com/akashmaji946/elf-lang/object"
	"github.com/akashmaji946/elf-lang/parser"
)

func (e *Evaluator) evalIndexExpression(node *parser.IndexExpression, env *object.Environment) object.Value {
	target := e.evalExpression(node.Target, env)
	if object.IsError(target) {
		return target
	}
	index := e.evalExpression(node.Index, env)
	if object.IsError(index) {
		return index
	}
	return Index(target, index)
}

// Index implements §4.3.6's indexing rules.
func Index(target, index object.Value) object.Value {
	switch t := target.(type) {
	case *object.String:
		return indexString(t, index)
	case *object.List:
		return indexList(t, index)
	case *object.Dictionary:
		v, ok := t.Get(index)
		if !ok {
			return object.NilValue
		}
		return v
	default:
		return object.NewError("Cannot index into %s", target.Kind())
	}
}

func indexString(s *object.String, index object.Value) object.Value {
	idx, ok := index.(*object.Integer)
	if !ok {
		return object.NewError("Unable to perform index operation, found: String[%s]", index.Kind())
	}
	runes := []rune(s.Value)
	pos := int(idx.Value)
	if pos < 0 {
		pos += len(runes)
	}
	if pos < 0 || pos >= len(runes) {
		return object.NilValue
	}
	return &object.String{Value: string(runes[pos])}
}

func indexList(l *object.List, index object.Value) object.Value {
	idx, ok := index.(*object.Integer)
	if !ok {
		return object.NewError("Unable to perform index operation, found: List[%s]", index.Kind())
	}
	pos := int(idx.Value)
	if pos < 0 {
		pos += len(l.Elements)
	}
	if pos < 0 || pos >= len(l.Elements) {
		return object.NilValue
	}
	return l.Elements[pos]
}
