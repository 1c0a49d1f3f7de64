package token

type Keyword int

const (
	NO_KEYWORD Keyword = iota

	KW_DEF
	KW_DO
	KW_ELSIF
	KW_ELSE
	KW_END
	KW_IF
	KW_TRUE
	KW_FALSE
	KW_CLASS
	KW_MODULE
	KW_INCLUDE
	KW_WHILE
	KW_NIL
	KW_YIELD
	KW_RETURN
	KW_UNLESS
	KW_NEXT
	KW_BREAK
	KW_BEGIN
	KW_LIB
	KW_FUN
	KW_TYPE
	KW_STRUCT
)

type KeywordEntry struct {
	Text    string
	Keyword Keyword
}

// KEYWORDS keeps the order in which the lexer tries each spelling. "elsif"
// must come before "else".
var KEYWORDS []KeywordEntry = []KeywordEntry{
	{"def", KW_DEF},
	{"do", KW_DO},
	{"elsif", KW_ELSIF},
	{"else", KW_ELSE},
	{"end", KW_END},
	{"if", KW_IF},
	{"true", KW_TRUE},
	{"false", KW_FALSE},
	{"class", KW_CLASS},
	{"module", KW_MODULE},
	{"include", KW_INCLUDE},
	{"while", KW_WHILE},
	{"nil", KW_NIL},
	{"yield", KW_YIELD},
	{"return", KW_RETURN},
	{"unless", KW_UNLESS},
	{"next", KW_NEXT},
	{"break", KW_BREAK},
	{"begin", KW_BEGIN},
	{"lib", KW_LIB},
	{"fun", KW_FUN},
	{"type", KW_TYPE},
	{"struct", KW_STRUCT},
}

func LookupKeyword(text string) (Keyword, bool) {
	for _, entry := range KEYWORDS {
		if entry.Text == text {
			return entry.Keyword, true
		}
	}
	return NO_KEYWORD, false
}

func (keyword Keyword) String() string {
	if keyword <= NO_KEYWORD || int(keyword) > len(KEYWORDS) {
		return ""
	}
	return KEYWORDS[keyword-1].Text
}
