package lexer

import (
	"slices"

	"github.com/HicaroD/Crystal/internal/lexer/token"
)

var (
	SPACE_KINDS         = []token.Kind{token.SPACE}
	SPACE_NEWLINE_KINDS = []token.Kind{token.SPACE, token.NEWLINE}
	STATEMENT_END_KINDS = []token.Kind{token.SPACE, token.NEWLINE, token.SEMICOLON}
)

// NextSkipping scans default mode tokens until one whose kind is not in
// kinds comes up. EOF is never skipped.
func (lex *Lexer) NextSkipping(kinds ...token.Kind) (*token.Token, error) {
	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF || !slices.Contains(kinds, tok.Kind) {
			return tok, nil
		}
	}
}

// Skip returns tok itself when its kind is not in kinds, otherwise it keeps
// scanning like NextSkipping.
func (lex *Lexer) Skip(tok *token.Token, kinds ...token.Kind) (*token.Token, error) {
	if tok.Kind == token.EOF || !slices.Contains(kinds, tok.Kind) {
		return tok, nil
	}
	return lex.NextSkipping(kinds...)
}

func (lex *Lexer) SkipSpace(tok *token.Token) (*token.Token, error) {
	return lex.Skip(tok, SPACE_KINDS...)
}

func (lex *Lexer) SkipSpaceOrNewline(tok *token.Token) (*token.Token, error) {
	return lex.Skip(tok, SPACE_NEWLINE_KINDS...)
}

func (lex *Lexer) SkipStatementEnd(tok *token.Token) (*token.Token, error) {
	return lex.Skip(tok, STATEMENT_END_KINDS...)
}

func (lex *Lexer) NextSkipSpace() (*token.Token, error) {
	return lex.NextSkipping(SPACE_KINDS...)
}

func (lex *Lexer) NextSkipSpaceOrNewline() (*token.Token, error) {
	return lex.NextSkipping(SPACE_NEWLINE_KINDS...)
}

func (lex *Lexer) NextSkipStatementEnd() (*token.Token, error) {
	return lex.NextSkipping(STATEMENT_END_KINDS...)
}
