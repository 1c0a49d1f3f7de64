package diagnostics

import (
	"errors"
	"fmt"

	"github.com/HicaroD/Crystal/internal/lexer/token"
)

var (
	ErrUnknownToken = errors.New("unknown token")
	ErrUnterminated = errors.New("unterminated literal")
)

type Diag struct {
	Message string
}

// LexError is returned when the lexer cannot produce a token. Pos is the
// position of the token being scanned when it failed.
type LexError struct {
	Message string
	Pos     token.Pos
	Err     error
}

func NewLexError(err error, pos token.Pos, format string, args ...any) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Pos: pos, Err: err}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *LexError) Unwrap() error { return e.Err }

func (e *LexError) Diag() Diag {
	return Diag{Message: e.Error()}
}
