package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/HicaroD/Crystal/internal/config"
	"github.com/HicaroD/Crystal/internal/diagnostics"
	"github.com/HicaroD/Crystal/internal/lexer"
)

const (
	promptMain = "cr> "
	promptCont = "... "
)

func repl(envs *config.Envs) error {
	skip, err := envs.SkipPolicy()
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := envs.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		src, ok := readUntilTerminated(ln)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(src) == ":quit" {
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		lex := lexer.New("<repl>", []byte(src), diagnostics.New())
		_ = dumpTokens(os.Stdout, lex, skip, false)
	}
}

// readUntilTerminated keeps prompting while the input ends inside a string
// or a %w( ) literal.
func readUntilTerminated(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !isIncomplete(src) {
			return src, true
		}
	}
}

func isIncomplete(src string) bool {
	collector := diagnostics.New()
	collector.Out = io.Discard
	_, err := lexer.New("<repl>", []byte(src), collector).Tokenize()
	return errors.Is(err, diagnostics.ErrUnterminated)
}
