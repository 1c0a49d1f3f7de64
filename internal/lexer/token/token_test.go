package token

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperatorsAreNotShadowed(t *testing.T) {
	for i, later := range OPERATORS {
		for _, earlier := range OPERATORS[:i] {
			assert.False(
				t,
				strings.HasPrefix(later.Text, earlier.Text),
				"%q can never match because %q comes first", later.Text, earlier.Text,
			)
		}
	}
}

func TestOperatorKindString(t *testing.T) {
	for _, op := range OPERATORS {
		t.Run(fmt.Sprintf("TestOperatorKindString(%q)", op.Text), func(t *testing.T) {
			assert.Equal(t, op.Text, op.Kind.String())
			assert.True(t, op.Kind.IsOperator())

			kind, ok := LookupOperator(op.Text)
			require.True(t, ok)
			assert.Equal(t, op.Kind, kind)
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "EOF"},
		{NEWLINE, "NEWLINE"},
		{SPACE, "SPACE"},
		{SEMICOLON, ";"},
		{FLOAT, "FLOAT"},
		{INT, "INT"},
		{LONG, "LONG"},
		{CHAR, "CHAR"},
		{STRING, "STRING"},
		{STRING_START, "STRING_START"},
		{STRING_END, "STRING_END"},
		{STRING_ARRAY_START, "STRING_ARRAY_START"},
		{STRING_ARRAY_END, "STRING_ARRAY_END"},
		{SYMBOL, "SYMBOL"},
		{INTERPOLATION_START, "INTERPOLATION_START"},
		{IDENT, "IDENT"},
		{CONST, "CONST"},
		{INSTANCE_VAR, "INSTANCE_VAR"},
		{Kind(-1), "Kind(-1)"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.kind.String())
		assert.False(t, test.kind.IsOperator())
	}
}

func TestLookupUnknownOperator(t *testing.T) {
	_, ok := LookupOperator("=>")
	assert.False(t, ok)
}

func TestKeywords(t *testing.T) {
	require.Len(t, KEYWORDS, 23)

	for _, entry := range KEYWORDS {
		assert.Equal(t, entry.Text, entry.Keyword.String())

		keyword, ok := LookupKeyword(entry.Text)
		require.True(t, ok)
		assert.Equal(t, entry.Keyword, keyword)
	}

	_, ok := LookupKeyword("define")
	assert.False(t, ok)
	assert.Equal(t, "", NO_KEYWORD.String())
}

func TestTokenString(t *testing.T) {
	pos := NewPosition("a.cr", 3, 2)

	tests := []struct {
		token *Token
		want  string
	}{
		{NewKeyword(KW_DEF, pos), "IDENT | :def | [a.cr:2:3]"},
		{New("define", IDENT, pos), `IDENT | "define" | [a.cr:2:3]`},
		{New("a\tb", STRING, pos), `STRING | "a\tb" | [a.cr:2:3]`},
		{NewChar('a', pos), "CHAR | 97 | [a.cr:2:3]"},
		{New("", OPEN_PAREN, pos), "( | [a.cr:2:3]"},
		{New("", EOF, pos), "EOF | [a.cr:2:3]"},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, test.token.String())
	}
}

func TestTokenName(t *testing.T) {
	pos := NewPosition("a.cr", 1, 1)

	assert.Equal(t, "Foo", New("Foo", CONST, pos).Name())
	assert.Equal(t, "@x", New("@x", INSTANCE_VAR, pos).Name())
	assert.Equal(t, "def", NewKeyword(KW_DEF, pos).Name())
	assert.Equal(t, "**=", New("", STAR_STAR_EQUAL, pos).Name())
}

func TestKeywordToken(t *testing.T) {
	pos := NewPosition("a.cr", 1, 1)

	def := NewKeyword(KW_DEF, pos)
	assert.True(t, def.IsKeyword())
	assert.True(t, def.Is(KW_DEF))
	assert.False(t, def.Is(KW_END))

	plain := New("def?", IDENT, pos)
	assert.False(t, plain.IsKeyword())
	assert.False(t, plain.Is(KW_DEF))
}

func TestPos(t *testing.T) {
	pos := NewPosition("a.cr", 1, 1)

	pos.Advance(4)
	assert.Equal(t, Pos{Filename: "a.cr", Line: 1, Column: 5}, pos)

	pos.Newline()
	assert.Equal(t, Pos{Filename: "a.cr", Line: 2, Column: 1}, pos)
	assert.Equal(t, "[a.cr:2:1]", pos.String())
}
