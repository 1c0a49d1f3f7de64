package token

import (
	"fmt"
	"strconv"
)

// Token is never reused by the lexer: each scan call builds a new one.
type Token struct {
	Kind Kind
	// Text of literals, names and string fragments. For a bare keyword it
	// holds the keyword spelling and Keyword is set.
	Value   string
	Char    rune
	Keyword Keyword
	Pos     Pos
}

func New(value string, kind Kind, position Pos) *Token {
	return &Token{Value: value, Kind: kind, Pos: position}
}

func NewKeyword(keyword Keyword, position Pos) *Token {
	return &Token{Value: keyword.String(), Kind: IDENT, Keyword: keyword, Pos: position}
}

func NewChar(char rune, position Pos) *Token {
	return &Token{Char: char, Kind: CHAR, Pos: position}
}

func (token *Token) IsKeyword() bool {
	return token.Kind == IDENT && token.Keyword != NO_KEYWORD
}

func (token *Token) Is(keyword Keyword) bool {
	return token.IsKeyword() && token.Keyword == keyword
}

func (token *Token) Name() string {
	switch token.Kind {
	case IDENT, CONST, INSTANCE_VAR, SYMBOL:
		return token.Value
	}
	return token.Kind.String()
}

func (token *Token) String() string {
	switch {
	case token.IsKeyword():
		return fmt.Sprintf("%s | :%s | %s", token.Kind, token.Keyword, token.Pos)
	case token.Kind == CHAR:
		return fmt.Sprintf("%s | %d | %s", token.Kind, token.Char, token.Pos)
	case token.Kind.HasValue():
		return fmt.Sprintf("%s | %s | %s", token.Kind, strconv.Quote(token.Value), token.Pos)
	}
	return fmt.Sprintf("%s | %s", token.Kind, token.Pos)
}
