package lexer

import (
	"bytes"
	"unicode/utf8"

	"github.com/HicaroD/Crystal/internal/lexer/token"
)

var (
	matchNewline            = literal("\n")
	matchSpace              = runOf(isSpace)
	matchSemicolons         = runOf(func(ch byte) bool { return ch == ';' })
	matchLongSuffix         = literal("L")
	matchQuote              = literal(`"`)
	matchStringArrayStart   = literal("%w(")
	matchHash               = literal("#")
	matchInterpolationStart = literal("#{")
	matchBackslash          = literal(`\`)
	matchCloseParen         = literal(")")
	matchStringRun          = runOf(func(ch byte) bool { return ch != '"' && ch != '\\' && ch != '#' && ch != '\n' })
	matchArrayWord          = runOf(func(ch byte) bool { return !isWhitespace(ch) && ch != ')' })
)

type charEscape struct {
	match matcher
	char  rune
}

var charLiteralEscapes = []charEscape{
	{literal(`'\n'`), '\n'},
	{literal(`'\t'`), '\t'},
	{literal(`'\0'`), 0},
}

type stringEscape struct {
	match matcher
	value string
}

var stringEscapes = []stringEscape{
	{literal(`\n`), "\n"},
	{literal(`\"`), `"`},
	{literal(`\t`), "\t"},
	{literal(`\\`), `\`},
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isUpper(ch byte) bool { return ch >= 'A' && ch <= 'Z' }

func isLetter(ch byte) bool { return isUpper(ch) || (ch >= 'a' && ch <= 'z') }

func isIdentStart(ch byte) bool { return isLetter(ch) || ch == '_' }

func isIdentChar(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f' || ch == '\v'
}

func isWhitespace(ch byte) bool { return isSpace(ch) || ch == '\n' }

func hasPrefix(src []byte, prefix string) bool {
	return len(src) >= len(prefix) && string(src[:len(prefix)]) == prefix
}

func literal(text string) matcher {
	return func(src []byte) int {
		if hasPrefix(src, text) {
			return len(text)
		}
		return 0
	}
}

func runOf(isValid func(byte) bool) matcher {
	return func(src []byte) int {
		n := 0
		for n < len(src) && isValid(src[n]) {
			n++
		}
		return n
	}
}

func digits(src []byte, start int) int {
	n := 0
	for start+n < len(src) && isDigit(src[start+n]) {
		n++
	}
	return n
}

func sign(src []byte) int {
	if len(src) > 0 && (src[0] == '+' || src[0] == '-') {
		return 1
	}
	return 0
}

// [+-]?\d+\.\d+
func matchFloat(src []byte) int {
	i := sign(src)
	n := digits(src, i)
	if n == 0 {
		return 0
	}
	i += n
	if i >= len(src) || src[i] != '.' {
		return 0
	}
	i++
	n = digits(src, i)
	if n == 0 {
		return 0
	}
	return i + n
}

// [+-]?\d+
func matchInt(src []byte) int {
	i := sign(src)
	n := digits(src, i)
	if n == 0 {
		return 0
	}
	return i + n
}

// 'x' for any single character except a newline
func matchCharLiteral(src []byte) int {
	if len(src) < 3 || src[0] != '\'' {
		return 0
	}
	char, size := utf8.DecodeRune(src[1:])
	if char == '\n' || (char == utf8.RuneError && size <= 1) {
		return 0
	}
	if 1+size >= len(src) || src[1+size] != '\'' {
		return 0
	}
	return size + 2
}

// A string without escapes, interpolation or newlines, closed by the first
// quote.
func matchSimpleString(src []byte) int {
	if len(src) == 0 || src[0] != '"' {
		return 0
	}
	for i := 1; i < len(src); i++ {
		switch src[i] {
		case '"':
			return i + 1
		case '\\', '#', '\n':
			return 0
		}
	}
	return 0
}

// [A-Za-z_][A-Za-z_0-9]*
func identLen(src []byte) int {
	if len(src) == 0 || !isIdentStart(src[0]) {
		return 0
	}
	n := 1
	for n < len(src) && isIdentChar(src[n]) {
		n++
	}
	return n
}

func prefixed(prefix byte, src []byte) int {
	if len(src) == 0 || src[0] != prefix {
		return 0
	}
	n := identLen(src[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func matchSymbol(src []byte) int { return prefixed(':', src) }

func matchInstanceVar(src []byte) int { return prefixed('@', src) }

func matchConst(src []byte) int {
	if len(src) == 0 || !isUpper(src[0]) {
		return 0
	}
	return identLen(src)
}

func matchIdent(src []byte) int {
	n := identLen(src)
	if n == 0 {
		return 0
	}
	if n < len(src) && (src[n] == '?' || src[n] == '!') {
		n++
	}
	return n
}

func matchOperator(src []byte) int {
	for _, op := range token.OPERATORS {
		if hasPrefix(src, op.Text) {
			return len(op.Text)
		}
	}
	return 0
}

// A keyword followed by '?' or '!' (kept in the match) or by a word
// boundary. Spellings are tried in KEYWORDS order.
func matchKeyword(src []byte) int {
	for _, entry := range token.KEYWORDS {
		n := len(entry.Text)
		if !hasPrefix(src, entry.Text) {
			continue
		}
		if n == len(src) {
			return n
		}
		if src[n] == '?' || src[n] == '!' {
			return n + 1
		}
		if !isIdentChar(src[n]) {
			return n
		}
	}
	return 0
}

// .*\n
func matchLine(src []byte) int {
	return bytes.IndexByte(src, '\n') + 1
}
