package parser

import (
	"fmt"

	"github.com/akashmaji946/elf-lang/lexer"
)

// Precedence levels, lowest to highest, per spec.md §4.2. Threading
// and composition are handled outside this ladder (see parseThread/
// parseComposition) because they fold into flat multi-function nodes
// rather than a left-nested binary tree.
const (
	_ int = iota
	LOWEST
	LOGICAL_OR
	LOGICAL_AND
	EQUALITY
	COMPARISON
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[lexer.Kind]int{
	lexer.OR:       LOGICAL_OR,
	lexer.AND:      LOGICAL_AND,
	lexer.EQ:       EQUALITY,
	lexer.NE:       EQUALITY,
	lexer.GT:       COMPARISON,
	lexer.LT:       COMPARISON,
	lexer.GE:       COMPARISON,
	lexer.LE:       COMPARISON,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.ASTERISK: PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: CALL,
}

type prefixParseFn func() Expression
type infixParseFn func(left Expression) Expression

// Parser Pratt-parses a token stream into a Program. Mechanics
// (prefix/infix function tables, two-token lookahead, advance,
// collected non-fatal-looking errors) are grounded on the teacher's
// parser.Parser (UnaryFuncs/BinaryFuncs, CurrToken/NextToken,
// advance/expectAdvance/addError) — but unlike the teacher's parser,
// this one never touches an Env or evaluates anything while parsing
// (spec.md §2: "the parser does not consult the evaluator").
type Parser struct {
	lex *lexer.Lexer

	curr lexer.Token
	next lexer.Token

	errors []string

	prefixParseFns map[lexer.Kind]prefixParseFn
	infixParseFns  map[lexer.Kind]infixParseFn
}

func NewParser(source string) *Parser {
	p := &Parser{lex: lexer.NewLexer(source)}

	p.prefixParseFns = map[lexer.Kind]prefixParseFn{
		lexer.INT:        p.parseIntegerLiteral,
		lexer.DEC:        p.parseDecimalLiteral,
		lexer.STR:        p.parseStringLiteral,
		lexer.TRUE:       p.parseBooleanLiteral,
		lexer.FALSE:      p.parseBooleanLiteral,
		lexer.NIL:        p.parseNilLiteral,
		lexer.IDENT:      p.parseIdentifier,
		lexer.PLUS:       p.parseOperatorIdentifier,
		lexer.ASTERISK:   p.parseOperatorIdentifier,
		lexer.SLASH:      p.parseOperatorIdentifier,
		lexer.MINUS:      p.parseMinusPrefix,
		lexer.LPAREN:     p.parseGroupedExpression,
		lexer.LBRACKET:   p.parseListLiteral,
		lexer.LBRACE:     p.parseSetLiteral,
		lexer.DICT_START: p.parseDictionaryLiteral,
		lexer.PIPE:       p.parseFunctionLiteral,
		lexer.OR:         p.parseZeroArgFunctionLiteral,
		lexer.LET:        p.parseLetExpression,
		lexer.IF:         p.parseIfExpression,
	}

	p.infixParseFns = map[lexer.Kind]infixParseFn{
		lexer.OR:       p.parseInfixExpression,
		lexer.AND:      p.parseInfixExpression,
		lexer.EQ:       p.parseInfixExpression,
		lexer.NE:       p.parseInfixExpression,
		lexer.GT:       p.parseInfixExpression,
		lexer.LT:       p.parseInfixExpression,
		lexer.GE:       p.parseInfixExpression,
		lexer.LE:       p.parseInfixExpression,
		lexer.PLUS:     p.parseInfixExpression,
		lexer.MINUS:    p.parseInfixExpression,
		lexer.ASTERISK: p.parseInfixExpression,
		lexer.SLASH:    p.parseInfixExpression,
		lexer.LPAREN:   p.parseCallExpression,
		lexer.LBRACKET: p.parseIndexExpression,
	}

	p.advance()
	p.advance()
	return p
}

func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.lex.NextToken()
}

func (p *Parser) addError(format string, a ...interface{}) {
	p.errors = append(p.errors, fmt.Sprintf(format, a...))
}

func (p *Parser) HasErrors() bool    { return len(p.errors) > 0 }
func (p *Parser) Errors() []string   { return p.errors }
func (p *Parser) FirstError() string { return p.errors[0] }

func (p *Parser) expectAdvance(kind lexer.Kind) bool {
	if p.next.Kind == kind {
		p.advance()
		return true
	}
	p.addError("unexpected token %s, expected %s", p.next.Kind, kind)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.next.Kind]; ok {
		return pr
	}
	return LOWEST
}

// Parse drives the whole token stream into a Program.
func (p *Parser) Parse() *Program {
	program := &Program{}
	for p.curr.Kind != lexer.EOF {
		if p.HasErrors() {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}
	return program
}

func (p *Parser) parseStatement() Statement {
	if p.curr.Kind == lexer.CMT {
		return &CommentStatement{Text: p.curr.Literal}
	}
	if p.curr.Kind == lexer.IDENT && p.next.Kind == lexer.ASSIGN {
		name := p.curr.Literal
		p.advance() // curr = ASSIGN
		p.advance() // curr = first token of value expression
		value := p.parseThread()
		if p.next.Kind == lexer.SEMI {
			p.advance()
		}
		return &ExpressionStatement{Expr: &AssignmentExpression{Name: name, Value: value}}
	}
	expr := p.parseThread()
	if p.next.Kind == lexer.SEMI {
		p.advance()
	}
	return &ExpressionStatement{Expr: expr}
}

// parseThread handles level 1 of §4.2: x |> f |> g.
func (p *Parser) parseThread() Expression {
	left := p.parseComposition()
	if p.next.Kind != lexer.PIPE_OP {
		return left
	}
	var functions []Expression
	for p.next.Kind == lexer.PIPE_OP {
		p.advance()
		p.advance()
		functions = append(functions, p.parseComposition())
	}
	return &ThreadExpression{Initial: left, Functions: functions}
}

// parseComposition handles level 2: fn[0] >> fn[1] >> ….
func (p *Parser) parseComposition() Expression {
	left := p.parseBinary(LOWEST)
	if p.next.Kind != lexer.COMPOSE {
		return left
	}
	functions := []Expression{left}
	for p.next.Kind == lexer.COMPOSE {
		p.advance()
		p.advance()
		functions = append(functions, p.parseBinary(LOWEST))
	}
	return &CompositionExpression{Functions: functions}
}

// parseBinary is the generic Pratt loop for levels 3-10 (logical
// through postfix index/call).
func (p *Parser) parseBinary(precedence int) Expression {
	prefix, ok := p.prefixParseFns[p.curr.Kind]
	if !ok {
		p.addError("no expression can start with token %q", p.curr.Literal)
		return nil
	}
	left := prefix()

	for p.next.Kind != lexer.SEMI && precedence < p.peekPrecedence() {
		infix, ok := p.infixParseFns[p.next.Kind]
		if !ok {
			return left
		}
		p.advance()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntegerLiteral() Expression {
	return &IntegerLiteral{Literal: p.curr.Literal}
}

func (p *Parser) parseDecimalLiteral() Expression {
	return &DecimalLiteral{Literal: p.curr.Literal}
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Value: unescapeString(p.curr.Literal)}
}

// unescapeString strips the surrounding quotes and applies the fixed
// escape substitutions of spec.md §4.2.
func unescapeString(raw string) string {
	if len(raw) >= 2 {
		raw = raw[1 : len(raw)-1]
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case '"':
				out = append(out, '"')
				i++
				continue
			case '\\':
				out = append(out, '\\')
				i++
				continue
			case 'n':
				out = append(out, '\n')
				i++
				continue
			case 't':
				out = append(out, '\t')
				i++
				continue
			}
		}
		out = append(out, raw[i])
	}
	return string(out)
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Value: p.curr.Kind == lexer.TRUE}
}

func (p *Parser) parseNilLiteral() Expression {
	return &NilLiteral{}
}

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Name: p.curr.Literal}
}

// parseOperatorIdentifier handles §4.2 point 11: bare + * / used as
// ordinary identifiers for higher-order use (fold(0, +, xs)).
func (p *Parser) parseOperatorIdentifier() Expression {
	return &Identifier{Name: p.curr.Literal}
}

// isOperandCloser reports whether kind cannot start an operand,
// meaning a preceding "-" must be the bare operator identifier rather
// than a unary negation.
func isOperandCloser(kind lexer.Kind) bool {
	switch kind {
	case lexer.COMMA, lexer.RPAREN, lexer.RBRACKET, lexer.RBRACE, lexer.SEMI, lexer.EOF, lexer.PIPE:
		return true
	default:
		return false
	}
}

func (p *Parser) parseMinusPrefix() Expression {
	if isOperandCloser(p.next.Kind) {
		return &Identifier{Name: "-"}
	}
	p.advance()
	operand := p.parseBinary(PREFIX)
	return &PrefixExpression{Operator: "-", Operand: operand}
}

func (p *Parser) parseInfixExpression(left Expression) Expression {
	operator := string(p.curr.Kind)
	precedence := precedences[p.curr.Kind]
	p.advance()
	right := p.parseBinary(precedence)
	return &InfixExpression{Operator: operator, Left: left, Right: right}
}

func (p *Parser) parseGroupedExpression() Expression {
	p.advance()
	expr := p.parseThread()
	if !p.expectAdvance(lexer.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseExpressionList(end lexer.Kind) []Expression {
	var list []Expression
	if p.next.Kind == end {
		p.advance()
		return list
	}
	p.advance()
	list = append(list, p.parseThread())
	for p.next.Kind == lexer.COMMA {
		p.advance()
		p.advance()
		list = append(list, p.parseThread())
	}
	p.expectAdvance(end)
	return list
}

func (p *Parser) parseListLiteral() Expression {
	return &ListLiteral{Elements: p.parseExpressionList(lexer.RBRACKET)}
}

func (p *Parser) parseSetLiteral() Expression {
	return &SetLiteral{Elements: p.parseExpressionList(lexer.RBRACE)}
}

func (p *Parser) parseDictionaryLiteral() Expression {
	dict := &DictionaryLiteral{}
	if p.next.Kind == lexer.RBRACE {
		p.advance()
		return dict
	}
	p.advance()
	for {
		key := p.parseThread()
		if !p.expectAdvance(lexer.COLON) {
			return dict
		}
		p.advance()
		value := p.parseThread()
		dict.Pairs = append(dict.Pairs, DictPair{Key: key, Value: value})
		if p.next.Kind != lexer.COMMA {
			break
		}
		p.advance()
		p.advance()
	}
	p.expectAdvance(lexer.RBRACE)
	return dict
}

func (p *Parser) parseFunctionLiteral() Expression {
	var params []string
	if p.next.Kind != lexer.PIPE {
		p.advance()
		params = append(params, p.curr.Literal)
		for p.next.Kind == lexer.COMMA {
			p.advance()
			p.advance()
			params = append(params, p.curr.Literal)
		}
	}
	if !p.expectAdvance(lexer.PIPE) {
		return nil
	}
	body := p.parseFunctionBody()
	return &FunctionLiteral{Params: params, Body: body}
}

func (p *Parser) parseZeroArgFunctionLiteral() Expression {
	body := p.parseFunctionBody()
	return &FunctionLiteral{Params: nil, Body: body}
}

// parseFunctionBody implements §4.2's "function literal body" rule:
// a following "{" is a Block, otherwise a single expression wrapped
// in a one-statement Block.
func (p *Parser) parseFunctionBody() *BlockStatement {
	if p.next.Kind == lexer.LBRACE {
		p.advance()
		return p.parseBlock()
	}
	p.advance()
	expr := p.parseThread()
	return &BlockStatement{Statements: []Statement{&ExpressionStatement{Expr: expr}}}
}

// parseBlock parses a brace-delimited Block; curr is "{" on entry.
func (p *Parser) parseBlock() *BlockStatement {
	block := &BlockStatement{}
	p.advance()
	for p.curr.Kind != lexer.RBRACE && p.curr.Kind != lexer.EOF {
		if p.HasErrors() {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.advance()
	}
	return block
}

func (p *Parser) parseLetExpression() Expression {
	mutable := false
	if p.next.Kind == lexer.MUT {
		mutable = true
		p.advance()
	}
	if !p.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := p.curr.Literal
	if !p.expectAdvance(lexer.ASSIGN) {
		return nil
	}
	p.advance()
	value := p.parseThread()
	return &LetExpression{Name: name, Value: value, Mutable: mutable}
}

func (p *Parser) parseIfExpression() Expression {
	p.advance()
	condition := p.parseThread()
	if !p.expectAdvance(lexer.LBRACE) {
		return nil
	}
	consequence := p.parseBlock()
	expr := &IfExpression{Condition: condition, Consequence: consequence}
	if p.next.Kind == lexer.ELSE {
		p.advance()
		if !p.expectAdvance(lexer.LBRACE) {
			return expr
		}
		expr.Alternative = p.parseBlock()
	}
	return expr
}

func (p *Parser) parseCallExpression(callee Expression) Expression {
	args := p.parseExpressionList(lexer.RPAREN)
	return &CallExpression{Callee: callee, Args: args}
}

func (p *Parser) parseIndexExpression(target Expression) Expression {
	p.advance()
	index := p.parseThread()
	if !p.expectAdvance(lexer.RBRACKET) {
		return nil
	}
	return &IndexExpression{Target: target, Index: index}
}
