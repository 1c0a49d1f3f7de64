package lexer

import (
	"unicode/utf8"

	"github.com/HicaroD/Crystal/internal/lexer/token"
)

// A matcher reports how many bytes at the start of src it accepts. Zero
// means no match.
type matcher func(src []byte) int

type cursor struct {
	src    []byte
	offset int
	pos    token.Pos
}

func newCursor(filename string, src []byte) *cursor {
	return &cursor{src: src, offset: 0, pos: token.NewPosition(filename, 1, 1)}
}

func (cur *cursor) eof() bool {
	return cur.offset >= len(cur.src)
}

func (cur *cursor) rest() []byte {
	return cur.src[cur.offset:]
}

// advance consumes n bytes and moves the column by the number of
// characters in them.
func (cur *cursor) advance(n int) string {
	text := string(cur.src[cur.offset : cur.offset+n])
	cur.offset += n
	cur.pos.Advance(utf8.RuneCountInString(text))
	return text
}

func (cur *cursor) newline() {
	cur.pos.Newline()
}
