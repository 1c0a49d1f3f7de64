package lexer_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HicaroD/Crystal/internal/diagnostics"
	"github.com/HicaroD/Crystal/internal/lexer/token"
	"github.com/HicaroD/Crystal/internal/testutil"
)

type tokenizeTest struct {
	input  string
	kinds  []token.Kind
	values []string
}

func TestTokenize(t *testing.T) {
	tests := []tokenizeTest{
		{
			input: `"a#{b}c"`,
			kinds: []token.Kind{
				token.STRING_START, token.STRING, token.INTERPOLATION_START,
				token.IDENT, token.CLOSE_CURLY, token.STRING, token.STRING_END, token.EOF,
			},
			values: []string{"", "a", "", "b", "", "c", "", ""},
		},
		{
			input: `"#{ {1} }"`,
			kinds: []token.Kind{
				token.STRING_START, token.INTERPOLATION_START, token.SPACE,
				token.OPEN_CURLY, token.INT, token.CLOSE_CURLY, token.SPACE,
				token.CLOSE_CURLY, token.STRING_END, token.EOF,
			},
		},
		{
			input: `"a#{"b"}"`,
			kinds: []token.Kind{
				token.STRING_START, token.STRING, token.INTERPOLATION_START,
				token.STRING, token.CLOSE_CURLY, token.STRING_END, token.EOF,
			},
			values: []string{"", "a", "", "b", "", "", ""},
		},
		{
			input: `"x#{"y#{z}"}"`,
			kinds: []token.Kind{
				token.STRING_START, token.STRING, token.INTERPOLATION_START,
				token.STRING_START, token.STRING, token.INTERPOLATION_START,
				token.IDENT, token.CLOSE_CURLY, token.STRING_END,
				token.CLOSE_CURLY, token.STRING_END, token.EOF,
			},
		},
		{
			input: "x = %w(a b\n c)",
			kinds: []token.Kind{
				token.IDENT, token.SPACE, token.EQUAL, token.SPACE,
				token.STRING_ARRAY_START, token.STRING, token.STRING, token.STRING,
				token.STRING_ARRAY_END, token.EOF,
			},
			values: []string{"x", "", "", "", "", "a", "b", "c", "", ""},
		},
		{
			input: "{ a }",
			kinds: []token.Kind{
				token.OPEN_CURLY, token.SPACE, token.IDENT, token.SPACE, token.CLOSE_CURLY, token.EOF,
			},
		},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestTokenize(%q)", test.input), func(t *testing.T) {
			lex := testutil.NewLexer(test.input, "")
			tokens, err := lex.Tokenize()
			require.NoError(t, err)

			assert.Equal(t, test.kinds, testutil.Kinds(tokens))
			if test.values != nil {
				assert.Equal(t, test.values, testutil.Values(tokens))
			}
		})
	}
}

func TestTokenizeSkipping(t *testing.T) {
	lex := testutil.NewLexer("def foo(x)\n  x + 1L; # done\nend\n", "")
	tokens, err := lex.Tokenize(token.SPACE, token.NEWLINE, token.SEMICOLON)
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{
		token.IDENT, token.IDENT, token.OPEN_PAREN, token.IDENT, token.CLOSE_PAREN,
		token.IDENT, token.PLUS, token.LONG, token.IDENT, token.EOF,
	}, testutil.Kinds(tokens))
	assert.True(t, tokens[0].Is(token.KW_DEF))
	assert.True(t, tokens[8].Is(token.KW_END))
	assert.Equal(t, testutil.Pos(3, 1), tokens[8].Pos)
}

func TestTokenizeKeepsSpacesInsideStrings(t *testing.T) {
	lex := testutil.NewLexer(`"a b#{ c }"`, "")
	tokens, err := lex.Tokenize(token.SPACE)
	require.NoError(t, err)

	assert.Equal(t, []token.Kind{
		token.STRING_START, token.STRING, token.INTERPOLATION_START,
		token.IDENT, token.CLOSE_CURLY, token.STRING_END, token.EOF,
	}, testutil.Kinds(tokens))
	assert.Equal(t, "a b", tokens[1].Value)
}

type unterminatedTest struct {
	input   string
	message string
}

func TestTokenizeUnterminated(t *testing.T) {
	tests := []unterminatedTest{
		{`"abc`, "test.cr:1:1: unterminated string literal"},
		{"x = \"a#{b", "test.cr:1:5: unterminated string literal"},
		{`"a#{"b`, "test.cr:1:5: unterminated string literal"},
		{"%w(a b", "test.cr:1:1: unterminated string array literal"},
		{"\n  \"#{%w(a}", "test.cr:2:6: unterminated string array literal"},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestTokenizeUnterminated(%q)", test.input), func(t *testing.T) {
			lex, collector := testutil.NewLexerWithCollector(test.input, "")
			tokens, err := lex.Tokenize()
			require.Error(t, err)
			assert.Nil(t, tokens)

			assert.True(t, errors.Is(err, diagnostics.ErrUnterminated))
			assert.EqualError(t, err, test.message)
			assert.Equal(t, []diagnostics.Diag{{Message: test.message}}, collector.Diags)
		})
	}
}

func TestTokenizeUnknownToken(t *testing.T) {
	lex, collector := testutil.NewLexerWithCollector("puts \"#{$x}\"", "")
	_, err := lex.Tokenize()

	require.Error(t, err)
	assert.True(t, errors.Is(err, diagnostics.ErrUnknownToken))
	assert.EqualError(t, err, "test.cr:1:9: unknown token: $x}\"")
	assert.Equal(t, diagnostics.COMPILER_ERROR_FOUND, collector.Err())
}

func TestCollectDefaultMode(t *testing.T) {
	lex := testutil.NewLexer("a.b", "")
	tokens, err := testutil.Collect(lex.Next)
	require.NoError(t, err)
	assert.Equal(t, []token.Kind{token.IDENT, token.DOT, token.IDENT, token.EOF}, testutil.Kinds(tokens))
}
