package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/HicaroD/Crystal/internal/config"
	"github.com/HicaroD/Crystal/internal/diagnostics"
	"github.com/HicaroD/Crystal/internal/lexer"
)

var DevMode string

func main() {
	config.SetDevMode(DevMode == "1" || os.Getenv("CRYSTAL_DEV") == "1")
	if config.DEV {
		fmt.Println("[DEV MODE] initialized")
	}

	args, err := cli(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	err = config.SetupConfigDir()
	if err != nil {
		log.Fatal(err)
	}
	err = config.SetupEnvFile()
	if err != nil {
		log.Fatal(err)
	}

	switch args.Command {
	case COMMAND_HELP:
		fmt.Print(HELP_COMMAND)
	case COMMAND_ENV:
		fmt.Printf("CRYSTAL_CONFIG_DIR='%s'\n", config.CRYSTAL_CONFIG_DIR)
		config.ENVS.ShowAll(os.Stdout)
	case COMMAND_REPL:
		err = repl(config.ENVS)
		if err != nil {
			log.Fatal(err)
		}
	case COMMAND_TOKENS:
		if !args.SkipSet {
			args.Skip, err = config.ENVS.SkipPolicy()
			if err != nil {
				log.Fatal(err)
			}
		}

		src, filename, err := readSource(args.Path)
		if err != nil {
			log.Fatal(err)
		}

		collector := diagnostics.New()
		lex := lexer.New(filename, src, collector)
		err = dumpTokens(os.Stdout, lex, args.Skip, config.DEV && config.ENVS.Trace())
		if err != nil {
			os.Exit(1)
		}
	}
}

func readSource(path string) ([]byte, string, error) {
	if path == "-" {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return src, "<stdin>", nil
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	return src, path, nil
}
