package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseProgram(t *testing.T, source string) *Program {
	t.Helper()
	p := NewParser(source)
	program := p.Parse()
	assert.Falsef(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())
	return program
}

func TestLetAndMutableLet(t *testing.T) {
	program := parseProgram(t, `let x = 1; let mut y = 2;`)
	assert.Len(t, program.Statements, 2)

	first := program.Statements[0].(*ExpressionStatement).Expr.(*LetExpression)
	assert.Equal(t, "x", first.Name)
	assert.False(t, first.Mutable)

	second := program.Statements[1].(*ExpressionStatement).Expr.(*LetExpression)
	assert.Equal(t, "y", second.Name)
	assert.True(t, second.Mutable)
}

func TestAssignmentStatement(t *testing.T) {
	program := parseProgram(t, `c = c + 1`)
	assign := program.Statements[0].(*ExpressionStatement).Expr.(*AssignmentExpression)
	assert.Equal(t, "c", assign.Name)
	_, ok := assign.Value.(*InfixExpression)
	assert.True(t, ok)
}

func TestThreadingIsLowerPrecedenceThanComposition(t *testing.T) {
	program := parseProgram(t, `a >> b |> c`)
	thread := program.Statements[0].(*ExpressionStatement).Expr.(*ThreadExpression)
	_, ok := thread.Initial.(*CompositionExpression)
	assert.True(t, ok, "expected (a >> b) to parse as the thread's initial composition")
	assert.Len(t, thread.Functions, 1)
}

func TestCompositionFlattensIntoOneNode(t *testing.T) {
	program := parseProgram(t, `f >> g >> h`)
	comp := program.Statements[0].(*ExpressionStatement).Expr.(*CompositionExpression)
	assert.Len(t, comp.Functions, 3)
}

func TestZeroArgFunctionLiteralVsLogicalOr(t *testing.T) {
	program := parseProgram(t, `let f = || 42;`)
	let := program.Statements[0].(*ExpressionStatement).Expr.(*LetExpression)
	fn := let.Value.(*FunctionLiteral)
	assert.Empty(t, fn.Params)

	program2 := parseProgram(t, `let g = a || b;`)
	let2 := program2.Statements[0].(*ExpressionStatement).Expr.(*LetExpression)
	infix, ok := let2.Value.(*InfixExpression)
	assert.True(t, ok)
	assert.Equal(t, "||", infix.Operator)
}

func TestBareOperatorAsIdentifier(t *testing.T) {
	program := parseProgram(t, `fold(0, +, xs)`)
	call := program.Statements[0].(*ExpressionStatement).Expr.(*CallExpression)
	assert.Len(t, call.Args, 3)
	ident, ok := call.Args[1].(*Identifier)
	assert.True(t, ok)
	assert.Equal(t, "+", ident.Name)
}

func TestStringEscapeSubstitution(t *testing.T) {
	program := parseProgram(t, `"a\"b\\c\nd\te"`)
	lit := program.Statements[0].(*ExpressionStatement).Expr.(*StringLiteral)
	assert.Equal(t, "a\"b\\c\nd\te", lit.Value)
}

func TestFunctionLiteralSingleExpressionBodyIsWrapped(t *testing.T) {
	program := parseProgram(t, `|a, b| a + b`)
	fn := program.Statements[0].(*ExpressionStatement).Expr.(*FunctionLiteral)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Len(t, fn.Body.Statements, 1)
}

func TestIfExpressionWithoutAlternative(t *testing.T) {
	program := parseProgram(t, `if x > 0 { 1 }`)
	ifExpr := program.Statements[0].(*ExpressionStatement).Expr.(*IfExpression)
	assert.Nil(t, ifExpr.Alternative)
}

func TestDictionaryLiteral(t *testing.T) {
	program := parseProgram(t, `#{ "b": 2, "a": 1 }`)
	dict := program.Statements[0].(*ExpressionStatement).Expr.(*DictionaryLiteral)
	assert.Len(t, dict.Pairs, 2)
}

func TestCommentStatement(t *testing.T) {
	program := parseProgram(t, "// a comment\n1")
	_, ok := program.Statements[0].(*CommentStatement)
	assert.True(t, ok)
}
