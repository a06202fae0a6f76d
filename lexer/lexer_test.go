package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTokenMixedKeywordsAndOperators(t *testing.T) {
	source := `let mut x = 10_000; x == 3.14 && y != nil || z |> f >> g #{ "a": 1 }`
	l := NewLexer(source)

	expected := []struct {
		kind    Kind
		literal string
	}{
		{LET, "let"},
		{MUT, "mut"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{INT, "10_000"},
		{SEMI, ";"},
		{IDENT, "x"},
		{EQ, "=="},
		{DEC, "3.14"},
		{AND, "&&"},
		{IDENT, "y"},
		{NE, "!="},
		{NIL, "nil"},
		{OR, "||"},
		{IDENT, "z"},
		{PIPE_OP, "|>"},
		{IDENT, "f"},
		{COMPOSE, ">>"},
		{IDENT, "g"},
		{DICT_START, "#{"},
		{STR, `"a"`},
		{COLON, ":"},
		{INT, "1"},
		{RBRACE, "}"},
	}

	for i, want := range expected {
		tok := l.NextToken()
		assert.Equalf(t, want.kind, tok.Kind, "token %d kind", i)
		assert.Equalf(t, want.literal, tok.Literal, "token %d literal", i)
	}
	assert.Equal(t, EOF, l.NextToken().Kind)
}

func TestNumberStopsAtSecondDot(t *testing.T) {
	l := NewLexer("1.2.3")
	tok := l.NextToken()
	assert.Equal(t, DEC, tok.Kind)
	assert.Equal(t, "1.2", tok.Literal)
	// The stray second "." is an unknown character on its own and is
	// skipped silently (§4.1), leaving a fresh Integer token "3".
	next := l.NextToken()
	assert.Equal(t, INT, next.Kind)
	assert.Equal(t, "3", next.Literal)
}

func TestStringRetainsRawEscapes(t *testing.T) {
	l := NewLexer(`"line\nend"`)
	tok := l.NextToken()
	assert.Equal(t, STR, tok.Kind)
	assert.Equal(t, `"line\nend"`, tok.Literal)
}

func TestCommentCapturesWholeLine(t *testing.T) {
	l := NewLexer("// hello world\nlet")
	tok := l.NextToken()
	assert.Equal(t, CMT, tok.Kind)
	assert.Equal(t, "// hello world", tok.Literal)
	next := l.NextToken()
	assert.Equal(t, LET, next.Kind)
}

func TestUnknownCharactersAreSkipped(t *testing.T) {
	l := NewLexer("a ` b")
	first := l.NextToken()
	assert.Equal(t, IDENT, first.Kind)
	second := l.NextToken()
	assert.Equal(t, IDENT, second.Kind)
	assert.Equal(t, "b", second.Literal)
}
