package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/HicaroD/mangle/internal/config"
	"github.com/HicaroD/mangle/internal/diagnostics"
)

// DevMode is set with -ldflags "-X main.DevMode=1".
var DevMode string

func main() {
	config.SetDevMode(DevMode == "1")

	args, err := cli(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n\n", err)
		fmt.Fprint(os.Stderr, HELP_COMMAND)
		os.Exit(2)
	}

	if args.Command == COMMAND_HELP {
		fmt.Print(HELP_COMMAND)
		return
	}

	cfg, err := config.Setup()
	if err != nil {
		log.Fatal(err)
	}
	setupLogger(cfg)
	slog.Debug("initialized", slog.String("mode", config.CurrentMode().String()), slog.String("config", cfg.Dir))

	p := painter{enabled: cfg.Color}

	switch args.Command {
	case COMMAND_ENV:
		cfg.ShowAll(os.Stdout)
		return
	case COMMAND_REPL:
		err = runRepl(cfg)
	case COMMAND_RUN:
		err = runFiles(os.Stdout, args.Paths, p)
	case COMMAND_TOKENS:
		err = showTokens(os.Stdout, args.Paths[0], p)
	case COMMAND_TREE:
		err = showTree(os.Stdout, args.Paths[0], p)
	}

	if errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
