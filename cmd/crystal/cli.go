package main

import (
	"fmt"
	"strings"

	"github.com/HicaroD/Crystal/internal/config"
)

type Command int

const (
	COMMAND_TOKENS Command = iota
	COMMAND_REPL
	COMMAND_HELP
	COMMAND_ENV
)

type CliResult struct {
	Command Command
	Path    string // "-" reads the source from stdin
	Skip    config.SkipPolicy
	SkipSet bool
}

var HELP_COMMAND string = `crystal - lexer for a Ruby-like language.

Usage:
  crystal <command> [arguments]

Available Commands:
  tokens [path] [-skip=<policy>]   Prints the tokens of a source file
      [path]        Path to the source file, "-" for stdin (defaults to "-")
      -skip         none, space, newline or statement (defaults to CRYSTAL_SKIP)

  repl                             Reads lines and prints their tokens

  env                              Show environment information

  help                             Show this help message

Examples:
  crystal tokens main.cr                   Print every token of main.cr
  crystal tokens main.cr -skip=statement   Leave out spaces, newlines and ';'
  cat main.cr | crystal tokens             Read the source from stdin
`

func cli(args []string) (CliResult, error) {
	result := CliResult{}

	if len(args) == 0 {
		result.Command = COMMAND_HELP
		return result, nil
	}

	command := args[0]
	switch command {
	case "env":
		result.Command = COMMAND_ENV
	case "help", "-h", "--help":
		result.Command = COMMAND_HELP
	case "repl":
		result.Command = COMMAND_REPL
	case "tokens":
		result.Command = COMMAND_TOKENS
		result.Path = "-"

		for _, arg := range args[1:] {
			switch {
			case strings.HasPrefix(arg, "-skip="):
				skip, err := config.ParseSkipPolicy(strings.TrimPrefix(arg, "-skip="))
				if err != nil {
					return result, err
				}
				result.Skip = skip
				result.SkipSet = true
			case arg == "-":
				result.Path = arg
			case strings.HasPrefix(arg, "-"):
				return result, fmt.Errorf("unknown flag: %s", arg)
			default:
				result.Path = arg
			}
		}
	default:
		return result, fmt.Errorf("unknown command %q, run 'crystal help'", command)
	}
	return result, nil
}
