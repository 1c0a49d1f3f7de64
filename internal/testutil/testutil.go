package testutil

import (
	"io"

	"github.com/HicaroD/Crystal/internal/diagnostics"
	"github.com/HicaroD/Crystal/internal/lexer"
	"github.com/HicaroD/Crystal/internal/lexer/token"
)

const DefaultFilename = "test.cr"

func NewLexer(src string, filename string) *lexer.Lexer {
	lex, _ := NewLexerWithCollector(src, filename)
	return lex
}

// NewLexerWithCollector returns a lexer whose collector keeps diagnostics
// without printing them.
func NewLexerWithCollector(src string, filename string) (*lexer.Lexer, *diagnostics.Collector) {
	if filename == "" {
		filename = DefaultFilename
	}
	collector := diagnostics.New()
	collector.Out = io.Discard
	return lexer.New(filename, []byte(src), collector), collector
}

func Pos(line, column int) token.Pos {
	return token.NewPosition(DefaultFilename, column, line)
}

func Kinds(tokens []*token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func Values(tokens []*token.Token) []string {
	values := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		values = append(values, tok.Value)
	}
	return values
}

// Collect calls next until it returns EOF or an error. The EOF token is
// included.
func Collect(next func() (*token.Token, error)) ([]*token.Token, error) {
	var tokens []*token.Token
	for {
		tok, err := next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}
