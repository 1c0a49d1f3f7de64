package lexer

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/HicaroD/Crystal/internal/diagnostics"
	"github.com/HicaroD/Crystal/internal/lexer/token"
)

// Lexer produces one token per call. It does not track which mode it is in:
// after STRING_START the caller switches to NextStringToken, after
// STRING_ARRAY_START to NextStringArrayToken, and back to Next when the
// matching end token (or INTERPOLATION_START) shows up.
//
// A Lexer is not safe for concurrent use.
type Lexer struct {
	Collector *diagnostics.Collector

	cur *cursor
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Collector = collector
	lexer.cur = newCursor(filename, src)

	return lexer
}

func (lex *Lexer) Filename() string { return lex.cur.pos.Filename }

// Pos returns the position the next token will start at.
func (lex *Lexer) Pos() token.Pos { return lex.cur.pos }

func (lex *Lexer) AtEOF() bool { return lex.cur.eof() }

// scan consumes the text accepted by m. The column moves before the caller
// applies any newline handling.
func (lex *Lexer) scan(m matcher) (string, bool) {
	n := m(lex.cur.rest())
	if n == 0 {
		return "", false
	}
	return lex.cur.advance(n), true
}

// Next scans one token in default mode.
func (lex *Lexer) Next() (*token.Token, error) {
	tok := &token.Token{Pos: lex.cur.pos}

	if lex.cur.eof() {
		tok.Kind = token.EOF
		return tok, nil
	}

	if _, ok := lex.scan(matchNewline); ok {
		tok.Kind = token.NEWLINE
		lex.cur.newline()
		return tok, nil
	}
	if _, ok := lex.scan(matchSpace); ok {
		tok.Kind = token.SPACE
		return tok, nil
	}
	if _, ok := lex.scan(matchSemicolons); ok {
		tok.Kind = token.SEMICOLON
		return tok, nil
	}

	if number, ok := lex.scan(matchFloat); ok {
		tok.Kind = token.FLOAT
		tok.Value = number
		return tok, nil
	}
	if number, ok := lex.scan(matchInt); ok {
		tok.Kind = token.INT
		if _, ok := lex.scan(matchLongSuffix); ok {
			tok.Kind = token.LONG
		}
		tok.Value = number
		return tok, nil
	}

	if lex.getCharLit(tok) {
		return tok, nil
	}

	if str, ok := lex.scan(matchSimpleString); ok {
		tok.Kind = token.STRING
		tok.Value = str[1 : len(str)-1]
		return tok, nil
	}
	if _, ok := lex.scan(matchQuote); ok {
		tok.Kind = token.STRING_START
		return tok, nil
	}

	if symbol, ok := lex.scan(matchSymbol); ok {
		tok.Kind = token.SYMBOL
		tok.Value = symbol[1:]
		return tok, nil
	}
	if _, ok := lex.scan(matchStringArrayStart); ok {
		tok.Kind = token.STRING_ARRAY_START
		return tok, nil
	}

	if op, ok := lex.scan(matchOperator); ok {
		tok.Kind, _ = token.LookupOperator(op)
		return tok, nil
	}

	if word, ok := lex.scan(matchKeyword); ok {
		tok.Kind = token.IDENT
		tok.Value = word
		if !strings.HasSuffix(word, "?") && !strings.HasSuffix(word, "!") {
			tok.Keyword, _ = token.LookupKeyword(word)
		}
		return tok, nil
	}
	if name, ok := lex.scan(matchConst); ok {
		tok.Kind = token.CONST
		tok.Value = name
		return tok, nil
	}
	if name, ok := lex.scan(matchIdent); ok {
		tok.Kind = token.IDENT
		tok.Value = name
		return tok, nil
	}
	if name, ok := lex.scan(matchInstanceVar); ok {
		tok.Kind = token.INSTANCE_VAR
		tok.Value = name
		return tok, nil
	}

	if _, ok := lex.scan(matchHash); ok {
		lex.skipComment(tok)
		return tok, nil
	}

	return nil, lex.unknownToken(tok.Pos)
}

func (lex *Lexer) getCharLit(tok *token.Token) bool {
	for _, escape := range charLiteralEscapes {
		if _, ok := lex.scan(escape.match); ok {
			tok.Kind = token.CHAR
			tok.Char = escape.char
			return true
		}
	}

	lit, ok := lex.scan(matchCharLiteral)
	if !ok {
		return false
	}
	tok.Kind = token.CHAR
	tok.Char, _ = utf8.DecodeRuneInString(lit[1 : len(lit)-1])
	return true
}

// A comment reads as the newline that ends it, or as EOF when the input
// ends first.
func (lex *Lexer) skipComment(tok *token.Token) {
	if _, ok := lex.scan(matchLine); ok {
		tok.Kind = token.NEWLINE
		lex.cur.newline()
		return
	}
	lex.cur.advance(len(lex.cur.rest()))
	tok.Kind = token.EOF
}

func (lex *Lexer) unknownToken(pos token.Pos) error {
	rest := lex.cur.rest()
	if end := bytes.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	err := diagnostics.NewLexError(diagnostics.ErrUnknownToken, pos, "unknown token: %s", rest)
	lex.report(err)
	return err
}

func (lex *Lexer) report(err *diagnostics.LexError) {
	if lex.Collector != nil {
		lex.Collector.ReportAndSave(err.Diag())
	}
}

// NextStringToken scans one token inside a double quoted string. On
// INTERPOLATION_START the caller lexes the embedded expression with Next
// and comes back here after its closing '}'.
func (lex *Lexer) NextStringToken() *token.Token {
	tok := &token.Token{Pos: lex.cur.pos}

	if lex.cur.eof() {
		tok.Kind = token.EOF
		return tok
	}

	if _, ok := lex.scan(matchQuote); ok {
		tok.Kind = token.STRING_END
		return tok
	}
	if _, ok := lex.scan(matchNewline); ok {
		tok.Kind = token.STRING
		tok.Value = "\n"
		lex.cur.newline()
		return tok
	}

	for _, escape := range stringEscapes {
		if _, ok := lex.scan(escape.match); ok {
			tok.Kind = token.STRING
			tok.Value = escape.value
			return tok
		}
	}
	if _, ok := lex.scan(matchBackslash); ok {
		tok.Kind = token.STRING
		tok.Value = `\`
		return tok
	}

	if _, ok := lex.scan(matchInterpolationStart); ok {
		tok.Kind = token.INTERPOLATION_START
		return tok
	}
	if _, ok := lex.scan(matchHash); ok {
		tok.Kind = token.STRING
		tok.Value = "#"
		return tok
	}

	// Every byte that is not '"', '\\', '#' or '\n' belongs to a run.
	str, _ := lex.scan(matchStringRun)
	tok.Kind = token.STRING
	tok.Value = str
	return tok
}

// NextStringArrayToken scans one word of a %w( ) literal, skipping the
// whitespace and newlines around it.
func (lex *Lexer) NextStringArrayToken() *token.Token {
	tok := &token.Token{Pos: lex.cur.pos}

	for {
		if lex.cur.eof() {
			tok.Kind = token.EOF
			return tok
		}

		if _, ok := lex.scan(matchNewline); ok {
			lex.cur.newline()
			continue
		}
		if _, ok := lex.scan(matchSpace); ok {
			continue
		}

		if _, ok := lex.scan(matchCloseParen); ok {
			tok.Kind = token.STRING_ARRAY_END
			return tok
		}

		word, _ := lex.scan(matchArrayWord)
		tok.Kind = token.STRING
		tok.Value = word
		return tok
	}
}
