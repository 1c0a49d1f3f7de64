package token

import "fmt"

type Kind int

const (
	// EOF
	EOF Kind = iota

	// Trivia
	NEWLINE
	SPACE
	// ;
	SEMICOLON

	// Literals
	FLOAT
	INT
	LONG
	CHAR
	STRING
	SYMBOL

	// String modes
	STRING_START
	STRING_END
	STRING_ARRAY_START
	STRING_ARRAY_END
	INTERPOLATION_START

	// Names
	IDENT
	CONST
	INSTANCE_VAR

	// !=
	BANG_EQUAL
	// !
	BANG
	// ==
	EQUAL_EQUAL
	// =
	EQUAL

	// <<=
	LESS_LESS_EQUAL
	// <<
	LESS_LESS
	// <=
	LESS_EQ
	// <
	LESS
	// >>=
	GREATER_GREATER_EQUAL
	// >>
	GREATER_GREATER
	// >=
	GREATER_EQ
	// >
	GREATER

	// +@
	PLUS_AT
	// +=
	PLUS_EQUAL
	// +
	PLUS
	// -@
	MINUS_AT
	// -=
	MINUS_EQUAL
	// -
	MINUS
	// *=
	STAR_EQUAL
	// **=
	STAR_STAR_EQUAL
	// **
	STAR_STAR
	// *
	STAR
	// /=
	SLASH_EQUAL
	// %=
	PERCENT_EQUAL
	// &=
	AMPERSAND_EQUAL
	// |=
	PIPE_EQUAL
	// ^=
	CARET_EQUAL
	// /
	SLASH

	// (
	OPEN_PAREN
	// )
	CLOSE_PAREN
	// ,
	COMMA

	// ...
	DOT_DOT_DOT
	// ..
	DOT_DOT
	// .
	DOT

	// &&
	AMPERSAND_AMPERSAND
	// &
	AMPERSAND
	// ||
	PIPE_PIPE
	// |
	PIPE

	// {
	OPEN_CURLY
	// }
	CLOSE_CURLY

	// ?
	QUESTION
	// ::
	COLON_COLON
	// :
	COLON
	// %
	PERCENT
	// ^
	CARET
	// ~@
	TILDE_AT
	// ~
	TILDE

	// []=
	BRACKETS_EQUAL
	// []
	BRACKETS
	// [
	OPEN_BRACKET
	// ]
	CLOSE_BRACKET
)

type Operator struct {
	Text string
	Kind Kind
}

// OPERATORS is tried top to bottom and the first entry that prefixes the
// input wins, so the order here must not change.
var OPERATORS []Operator = []Operator{
	{"!=", BANG_EQUAL},
	{"!", BANG},
	{"==", EQUAL_EQUAL},
	{"=", EQUAL},
	{"<<=", LESS_LESS_EQUAL},
	{"<<", LESS_LESS},
	{"<=", LESS_EQ},
	{"<", LESS},
	{">>=", GREATER_GREATER_EQUAL},
	{">>", GREATER_GREATER},
	{">=", GREATER_EQ},
	{">", GREATER},
	{"+@", PLUS_AT},
	{"+=", PLUS_EQUAL},
	{"+", PLUS},
	{"-@", MINUS_AT},
	{"-=", MINUS_EQUAL},
	{"-", MINUS},
	{"*=", STAR_EQUAL},
	{"**=", STAR_STAR_EQUAL},
	{"**", STAR_STAR},
	{"*", STAR},
	{"/=", SLASH_EQUAL},
	{"%=", PERCENT_EQUAL},
	{"&=", AMPERSAND_EQUAL},
	{"|=", PIPE_EQUAL},
	{"^=", CARET_EQUAL},
	{"/", SLASH},
	{"(", OPEN_PAREN},
	{")", CLOSE_PAREN},
	{",", COMMA},
	{"...", DOT_DOT_DOT},
	{"..", DOT_DOT},
	{".", DOT},
	{"&&", AMPERSAND_AMPERSAND},
	{"&", AMPERSAND},
	{"||", PIPE_PIPE},
	{"|", PIPE},
	{"{", OPEN_CURLY},
	{"}", CLOSE_CURLY},
	{"?", QUESTION},
	{"::", COLON_COLON},
	{":", COLON},
	{"%", PERCENT},
	{"^", CARET},
	{"~@", TILDE_AT},
	{"~", TILDE},
	{"[]=", BRACKETS_EQUAL},
	{"[]", BRACKETS},
	{"[", OPEN_BRACKET},
	{"]", CLOSE_BRACKET},
}

var operatorText map[Kind]string
var operatorKind map[string]Kind

func init() {
	operatorText = make(map[Kind]string, len(OPERATORS))
	operatorKind = make(map[string]Kind, len(OPERATORS))
	for _, op := range OPERATORS {
		operatorText[op.Kind] = op.Text
		operatorKind[op.Text] = op.Kind
	}
}

func LookupOperator(text string) (Kind, bool) {
	kind, ok := operatorKind[text]
	return kind, ok
}

func (kind Kind) IsOperator() bool {
	_, ok := operatorText[kind]
	return ok
}

// HasValue reports whether tokens of this kind carry a payload.
func (kind Kind) HasValue() bool {
	switch kind {
	case FLOAT, INT, LONG, CHAR, STRING, SYMBOL, IDENT, CONST, INSTANCE_VAR:
		return true
	}
	return false
}

func (kind Kind) String() string {
	switch kind {
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case SPACE:
		return "SPACE"
	case SEMICOLON:
		return ";"
	case FLOAT:
		return "FLOAT"
	case INT:
		return "INT"
	case LONG:
		return "LONG"
	case CHAR:
		return "CHAR"
	case STRING:
		return "STRING"
	case SYMBOL:
		return "SYMBOL"
	case STRING_START:
		return "STRING_START"
	case STRING_END:
		return "STRING_END"
	case STRING_ARRAY_START:
		return "STRING_ARRAY_START"
	case STRING_ARRAY_END:
		return "STRING_ARRAY_END"
	case INTERPOLATION_START:
		return "INTERPOLATION_START"
	case IDENT:
		return "IDENT"
	case CONST:
		return "CONST"
	case INSTANCE_VAR:
		return "INSTANCE_VAR"
	}
	if text, ok := operatorText[kind]; ok {
		return text
	}
	return fmt.Sprintf("Kind(%d)", int(kind))
}
