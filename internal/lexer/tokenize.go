package lexer

import (
	"github.com/HicaroD/Crystal/internal/diagnostics"
	"github.com/HicaroD/Crystal/internal/lexer/token"
)

type mode int

const (
	MODE_DEFAULT mode = iota
	MODE_STRING
	MODE_STRING_ARRAY
)

type frame struct {
	mode mode
	// Where the enclosing literal started, for unterminated literal errors.
	start token.Pos
	// Open curly braces inside an interpolation, the closing one that
	// brings depth below zero ends it.
	depth         int
	interpolation bool
}

// Tokenize drains the lexer switching modes the way a parser does: string
// bodies after STRING_START, %w( ) bodies after STRING_ARRAY_START and
// default mode inside #{ }. Default mode tokens whose kind is in skip are
// dropped. The last token is always EOF.
func (lex *Lexer) Tokenize(skip ...token.Kind) ([]*token.Token, error) {
	var tokens []*token.Token
	stack := []*frame{{mode: MODE_DEFAULT}}

	for {
		top := stack[len(stack)-1]

		var tok *token.Token
		switch top.mode {
		case MODE_DEFAULT:
			var err error
			tok, err = lex.NextSkipping(skip...)
			if err != nil {
				return nil, err
			}
		case MODE_STRING:
			tok = lex.NextStringToken()
		case MODE_STRING_ARRAY:
			tok = lex.NextStringArrayToken()
		}

		if tok.Kind == token.EOF {
			if len(stack) > 1 {
				return nil, lex.unterminated(stack)
			}
			tokens = append(tokens, tok)
			return tokens, nil
		}
		tokens = append(tokens, tok)

		switch tok.Kind {
		case token.STRING_START:
			stack = append(stack, &frame{mode: MODE_STRING, start: tok.Pos})
		case token.STRING_ARRAY_START:
			stack = append(stack, &frame{mode: MODE_STRING_ARRAY, start: tok.Pos})
		case token.INTERPOLATION_START:
			stack = append(stack, &frame{mode: MODE_DEFAULT, start: top.start, interpolation: true})
		case token.STRING_END, token.STRING_ARRAY_END:
			stack = stack[:len(stack)-1]
		case token.OPEN_CURLY:
			if top.interpolation {
				top.depth++
			}
		case token.CLOSE_CURLY:
			if !top.interpolation {
				break
			}
			if top.depth == 0 {
				stack = stack[:len(stack)-1]
			} else {
				top.depth--
			}
		}
	}
}

func (lex *Lexer) unterminated(stack []*frame) error {
	// The innermost string or array is the one left open.
	for i := len(stack) - 1; i > 0; i-- {
		f := stack[i]
		var err *diagnostics.LexError
		switch {
		case f.mode == MODE_STRING:
			err = diagnostics.NewLexError(diagnostics.ErrUnterminated, f.start, "unterminated string literal")
		case f.mode == MODE_STRING_ARRAY:
			err = diagnostics.NewLexError(diagnostics.ErrUnterminated, f.start, "unterminated string array literal")
		default:
			continue
		}
		lex.report(err)
		return err
	}
	return nil
}
