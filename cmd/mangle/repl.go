package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/HicaroD/mangle/internal/ast"
	"github.com/HicaroD/mangle/internal/compilation"
	"github.com/HicaroD/mangle/internal/config"
	"github.com/HicaroD/mangle/internal/eval"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/text"
)

const (
	PROMPT      = "» "
	CONT_PROMPT = "· "
)

var REPL_HELP string = `#toggleTree     show or hide the syntax tree of each submission
#toggleProgram  show or hide the lowered program of each submission
#cls            clear the screen
#reset          forget every declared variable
#clearHistory   clear the submission history
#help           show this message
#quit           leave the shell
`

type repl struct {
	out     io.Writer
	painter painter

	showTree    bool
	showProgram bool

	previous *compilation.Compilation
	vars     eval.Variables

	// clearHistory is nil when the shell runs without line editing.
	clearHistory func()
}

func newRepl(cfg *config.Config, out io.Writer) *repl {
	return &repl{
		out:         out,
		painter:     painter{enabled: cfg.Color},
		showTree:    cfg.ShowTree,
		showProgram: cfg.ShowProgram,
		vars:        eval.Variables{},
	}
}

func runRepl(cfg *config.Config) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if file, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = line.ReadHistory(file)
			_ = file.Close()
		}
		defer saveHistory(line, cfg.HistoryFile)
	}

	r := newRepl(cfg, os.Stdout)
	r.clearHistory = func() {
		line.ClearHistory()
		if cfg.HistoryFile != "" {
			_ = os.Remove(cfg.HistoryFile)
		}
	}

	for {
		src, ok := readSubmission(line)
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(strings.ReplaceAll(strings.TrimRight(src, "\n"), "\n", " "))

		if r.handle(src) {
			return nil
		}
	}
}

func saveHistory(line *liner.State, path string) {
	file, err := os.Create(path)
	if err != nil {
		slog.Warn("could not save history", slog.String("path", path), slog.Any("error", err))
		return
	}
	defer file.Close()

	if _, err := line.WriteHistory(file); err != nil {
		slog.Warn("could not save history", slog.String("path", path), slog.Any("error", err))
	}
}

// readSubmission prompts until the lines typed so far form a complete
// submission. It reports false once the input is closed.
func readSubmission(line *liner.State) (string, bool) {
	var lines []string

	for {
		prompt := PROMPT
		if len(lines) > 0 {
			prompt = CONT_PROMPT
		}

		input, err := line.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the submission being typed.
			lines = nil
			continue
		}
		if err != nil {
			return "", false
		}

		lines = append(lines, input)
		if isMetaCommand(lines) || isCompleteSubmission(lines) {
			return strings.Join(lines, "\n"), true
		}
	}
}

func isMetaCommand(lines []string) bool {
	return len(lines) == 1 && strings.HasPrefix(strings.TrimSpace(lines[0]), "#")
}

// isCompleteSubmission reports whether lines can be evaluated as they are.
// Two trailing blank lines force a submission even when it doesn't parse.
func isCompleteSubmission(lines []string) bool {
	src := strings.Join(lines, "\n")
	if strings.TrimSpace(src) == "" {
		return true
	}

	if len(lines) >= 3 && isBlank(lines[len(lines)-1]) && isBlank(lines[len(lines)-2]) {
		return true
	}

	tree := parser.Parse(src)
	last := ast.LastToken(tree.Root.Stmt)
	return last == nil || !last.Missing
}

func isBlank(line string) bool { return strings.TrimSpace(line) == "" }

// handle runs one submission and reports whether the shell should exit.
func (r *repl) handle(src string) bool {
	if command := strings.TrimSpace(src); strings.HasPrefix(command, "#") {
		return r.evaluateMetaCommand(command)
	}
	r.evaluateSubmission(src)
	return false
}

func (r *repl) evaluateMetaCommand(command string) bool {
	switch command {
	case "#toggleTree":
		r.showTree = !r.showTree
		fmt.Fprintln(r.out, onOff("syntax tree", r.showTree))
	case "#toggleProgram":
		r.showProgram = !r.showProgram
		fmt.Fprintln(r.out, onOff("lowered program", r.showProgram))
	case "#cls":
		fmt.Fprint(r.out, "\x1b[2J\x1b[H")
	case "#reset":
		r.previous = nil
		r.vars = eval.Variables{}
		fmt.Fprintln(r.out, "all variables were forgotten")
	case "#clearHistory":
		if r.clearHistory != nil {
			r.clearHistory()
		}
		fmt.Fprintln(r.out, "history cleared")
	case "#help":
		fmt.Fprint(r.out, REPL_HELP)
	case "#quit":
		return true
	default:
		fmt.Fprintln(r.out, r.painter.paint(RED, fmt.Sprintf("unknown command %s, try #help", command)))
	}
	return false
}

func onOff(what string, on bool) string {
	if on {
		return "showing " + what
	}
	return "not showing " + what
}

// evaluateSubmission compiles src on top of the submissions accepted so far.
// A submission only becomes part of the chain when it has no diagnostics.
func (r *repl) evaluateSubmission(src string) {
	if r.painter.enabled {
		fmt.Fprintln(r.out, r.painter.paint(GRAY, "│ ")+highlight(src, r.painter))
	}

	source := text.From(src)
	tree := parser.ParseText(source)

	var c *compilation.Compilation
	if r.previous == nil {
		c = compilation.New(tree)
	} else {
		c = r.previous.ContinueWith(tree)
	}

	if r.showTree {
		if err := ast.Fprint(r.out, tree.Root); err != nil {
			slog.Warn("could not print syntax tree", slog.Any("error", err))
		}
	}
	if r.showProgram {
		if err := c.EmitTree(r.out); err != nil {
			slog.Warn("could not print program", slog.Any("error", err))
		}
	}

	result := c.Evaluate(r.vars)
	if len(result.Diagnostics) > 0 {
		renderDiagnostics(r.out, source, result.Diagnostics, r.painter)
		return
	}

	if result.Value != nil {
		fmt.Fprintln(r.out, formatValue(result.Value, r.painter))
	}
	r.previous = c
}
