package main

import (
	"fmt"
)

type Command int

const (
	COMMAND_REPL Command = iota
	COMMAND_RUN
	COMMAND_TOKENS
	COMMAND_TREE
	COMMAND_ENV
	COMMAND_HELP
)

type CliResult struct {
	Command Command
	Paths   []string
}

var HELP_COMMAND string = `mangle - a small expression language with an interactive shell.

Usage:
  mangle <command> [arguments]

Available Commands:
  repl                  Start the interactive shell (default)
  run <file>...         Evaluate each file and print its value
  tokens <file>         Print the tokens of a file
  tree <file>           Print the syntax tree of a file
  env                   Show the configuration in use
  help                  Show this help message

REPL Commands:
  #toggleTree           Show or hide the syntax tree of each submission
  #toggleProgram        Show or hide the lowered program of each submission
  #cls                  Clear the screen
  #reset                Forget every declared variable
  #clearHistory         Clear the submission history
  #help                 Show the REPL commands
  #quit                 Leave the shell

Examples:
  mangle                        Start the shell
  mangle run a.mg b.mg          Evaluate a.mg and b.mg
  MANGLE_LOG=debug mangle       Start the shell with debug logging
`

func cli(args []string) (CliResult, error) {
	result := CliResult{}

	if len(args) == 0 {
		result.Command = COMMAND_REPL
		return result, nil
	}

	command := args[0]
	switch command {
	case "repl":
		result.Command = COMMAND_REPL
	case "env":
		result.Command = COMMAND_ENV
	case "help", "-h", "--help":
		result.Command = COMMAND_HELP
	case "run":
		result.Command = COMMAND_RUN
		if len(args) < 2 {
			return result, fmt.Errorf("run: expected at least one file")
		}
		result.Paths = args[1:]
	case "tokens", "tree":
		result.Command = COMMAND_TOKENS
		if command == "tree" {
			result.Command = COMMAND_TREE
		}
		if len(args) != 2 {
			return result, fmt.Errorf("%s: expected exactly one file", command)
		}
		result.Paths = args[1:]
	default:
		return result, fmt.Errorf("unknown command %q", command)
	}

	if result.Paths == nil && len(args) > 1 {
		return result, fmt.Errorf("%s: unexpected arguments %v", command, args[1:])
	}
	return result, nil
}
