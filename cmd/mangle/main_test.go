package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/HicaroD/mangle/internal/config"
	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/text"
)

var plain = painter{enabled: false}

func TestCli(t *testing.T) {
	tests := []struct {
		args []string
		want CliResult
	}{
		{nil, CliResult{Command: COMMAND_REPL}},
		{[]string{"repl"}, CliResult{Command: COMMAND_REPL}},
		{[]string{"env"}, CliResult{Command: COMMAND_ENV}},
		{[]string{"help"}, CliResult{Command: COMMAND_HELP}},
		{[]string{"run", "a.mg", "b.mg"}, CliResult{Command: COMMAND_RUN, Paths: []string{"a.mg", "b.mg"}}},
		{[]string{"tokens", "a.mg"}, CliResult{Command: COMMAND_TOKENS, Paths: []string{"a.mg"}}},
		{[]string{"tree", "a.mg"}, CliResult{Command: COMMAND_TREE, Paths: []string{"a.mg"}}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestCli(%q)", test.args), func(t *testing.T) {
			got, err := cli(test.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCliErrors(t *testing.T) {
	tests := [][]string{
		{"build"},
		{"run"},
		{"tokens"},
		{"tree", "a.mg", "b.mg"},
		{"env", "extra"},
	}

	for _, args := range tests {
		t.Run(fmt.Sprintf("TestCliErrors(%q)", args), func(t *testing.T) {
			if _, err := cli(args); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

func TestIsCompleteSubmission(t *testing.T) {
	tests := []struct {
		lines []string
		want  bool
	}{
		{[]string{""}, true},
		{[]string{"1 + 2"}, true},
		{[]string{"var x = 10"}, true},
		{[]string{"1 +"}, false},
		{[]string{"{"}, false},
		{[]string{"{", "var x = 1"}, false},
		{[]string{"{", "var x = 1", "}"}, true},
		{[]string{"if true"}, false},
		{[]string{"1 + 2 )"}, true},
		{[]string{"{", "", ""}, true},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestIsCompleteSubmission(%q)", test.lines), func(t *testing.T) {
			if got := isCompleteSubmission(test.lines); got != test.want {
				t.Errorf("expected %t, but got %t", test.want, got)
			}
		})
	}
}

func TestRenderDiagnostics(t *testing.T) {
	source := text.From("var a = 1\nb * 10")
	tree := parser.ParseText(source)
	if len(tree.Diagnostics) > 0 {
		t.Fatalf("unexpected syntax diagnostics: %v", tree.Diagnostics)
	}

	diags := []diagnostics.Diag{{Span: text.NewSpan(10, 1), Message: "Variable 'b' doesn't exist."}}

	var out strings.Builder
	renderDiagnostics(&out, source, diags, plain)

	want := "\n(2,1): Variable 'b' doesn't exist.\n    b * 10\n\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	out.Reset()
	renderDiagnostics(&out, source, diags, painter{enabled: true})
	if !strings.Contains(out.String(), RED+"b"+RESET+" * 10") {
		t.Errorf("expected the span to be highlighted, but got %q", out.String())
	}
}

func TestHighlightKeepsText(t *testing.T) {
	src := `{ var x = 10 if x >= 3 "yes" else @ }`
	if got := highlight(src, plain); got != src {
		t.Errorf("expected %q, but got %q", src, got)
	}

	colored := highlight(src, painter{enabled: true})
	for _, want := range []string{BLUE + "var" + RESET, YELLOW + "x" + RESET, MAGENTA + "10" + RESET, CYAN + `"yes"` + RESET, RED + "@" + RESET} {
		if !strings.Contains(colored, want) {
			t.Errorf("expected %q in %q", want, colored)
		}
	}
}

func TestReplChainsCleanSubmissions(t *testing.T) {
	var out strings.Builder
	r := newRepl(&config.Config{}, &out)

	submissions := []string{
		"var x = 10",
		"x = x + undefined",
		"x * 2",
		"#reset",
		"x",
		"#quit",
	}

	var quit bool
	for _, src := range submissions {
		quit = r.handle(src)
	}
	if !quit {
		t.Errorf("expected #quit to end the shell")
	}

	want := strings.Join([]string{
		"10",
		"",
		"(1,9): Variable 'undefined' doesn't exist.",
		"    x = x + undefined",
		"",
		"20",
		"all variables were forgotten",
		"",
		"(1,1): Variable 'x' doesn't exist.",
		"    x",
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestReplMetaCommands(t *testing.T) {
	var out strings.Builder
	r := newRepl(&config.Config{}, &out)

	cleared := false
	r.clearHistory = func() { cleared = true }

	for _, command := range []string{"#toggleTree", "#toggleProgram", "#clearHistory", "#nope"} {
		if r.handle(command) {
			t.Fatalf("%s should not end the shell", command)
		}
	}

	if !r.showTree || !r.showProgram {
		t.Errorf("expected both trees to be shown")
	}
	if !cleared {
		t.Errorf("expected the history to be cleared")
	}
	if !strings.Contains(out.String(), "unknown command #nope") {
		t.Errorf("expected an unknown command message, but got %q", out.String())
	}

	out.Reset()
	r.handle("1 + 2")
	for _, want := range []string{"CompilationUnit", "BinaryExpr + int", "\n3\n"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in output:\n%s", want, out.String())
		}
	}
}

func TestRunFilesKeepsArgumentOrder(t *testing.T) {
	dir := t.TempDir()

	var paths []string
	for i := 1; i <= 8; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.mg", i))
		src := fmt.Sprintf("{ var n = %d var total = 0 while n > 0 { total = total + n n = n - 1 } total }", i)
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		paths = append(paths, path)
	}

	var out strings.Builder
	if err := runFiles(&out, paths, plain); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1\n3\n6\n10\n15\n21\n28\n36\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFilesReportsDiagnostics(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.mg")
	bad := filepath.Join(dir, "bad.mg")
	os.WriteFile(good, []byte(`"ok"`), 0o644)
	os.WriteFile(bad, []byte("1 / 0"), 0o644)

	var out strings.Builder
	err := runFiles(&out, []string{good, bad}, plain)
	if !errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
		t.Fatalf("expected COMPILER_ERROR_FOUND, but got %v", err)
	}

	want := fmt.Sprintf("\"ok\"\n\n%s:1:3: Division by zero.\n    1 / 0\n\n", bad)
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRunFilesMissingFile(t *testing.T) {
	err := runFiles(&strings.Builder{}, []string{filepath.Join(t.TempDir(), "missing.mg")}, plain)
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, but got %v", err)
	}
}
