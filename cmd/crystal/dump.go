package main

import (
	"fmt"
	"io"
	"log"

	"github.com/HicaroD/Crystal/internal/config"
	"github.com/HicaroD/Crystal/internal/lexer"
)

// dumpTokens prints one token per line. The lexer's collector has already
// printed the diagnostic when an error is returned.
func dumpTokens(w io.Writer, lex *lexer.Lexer, skip config.SkipPolicy, trace bool) error {
	tokens, err := lex.Tokenize(skip.Kinds()...)
	if err != nil {
		return err
	}

	if trace {
		log.Printf("[TRACE] %s: %d tokens", lex.Filename(), len(tokens))
	}
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
	return nil
}
