package config

import (
	"fmt"

	"github.com/HicaroD/Crystal/internal/lexer/token"
)

// SkipPolicy selects which trivia tokens the token dump leaves out.
type SkipPolicy int

const (
	SKIP_NONE SkipPolicy = iota
	SKIP_SPACE
	SKIP_NEWLINE
	SKIP_STATEMENT
)

func ParseSkipPolicy(value string) (SkipPolicy, error) {
	switch value {
	case "", "none":
		return SKIP_NONE, nil
	case "space":
		return SKIP_SPACE, nil
	case "newline":
		return SKIP_NEWLINE, nil
	case "statement":
		return SKIP_STATEMENT, nil
	}
	return SKIP_NONE, fmt.Errorf("unknown skip policy %q, expected none, space, newline or statement", value)
}

func (sp SkipPolicy) Kinds() []token.Kind {
	switch sp {
	case SKIP_SPACE:
		return []token.Kind{token.SPACE}
	case SKIP_NEWLINE:
		return []token.Kind{token.SPACE, token.NEWLINE}
	case SKIP_STATEMENT:
		return []token.Kind{token.SPACE, token.NEWLINE, token.SEMICOLON}
	}
	return nil
}

func (sp SkipPolicy) String() string {
	switch sp {
	case SKIP_NONE:
		return "none"
	case SKIP_SPACE:
		return "space"
	case SKIP_NEWLINE:
		return "newline"
	case SKIP_STATEMENT:
		return "statement"
	}
	return "unknown"
}
