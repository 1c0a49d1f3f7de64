package token

import "fmt"

type Pos struct {
	Filename     string
	Line, Column int
}

func NewPosition(filename string, column, line int) Pos {
	return Pos{Filename: filename, Line: line, Column: column}
}

// Advance moves the column by n characters. Newlines are not special here:
// callers that consumed one call Newline afterwards.
func (pos *Pos) Advance(n int) {
	pos.Column += n
}

func (pos *Pos) Newline() {
	pos.Line++
	pos.Column = 1
}

func (pos Pos) String() string {
	return fmt.Sprintf("[%s:%d:%d]", pos.Filename, pos.Line, pos.Column)
}
