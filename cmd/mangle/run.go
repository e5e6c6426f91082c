package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/HicaroD/mangle/internal/ast"
	"github.com/HicaroD/mangle/internal/compilation"
	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/eval"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/text"
)

func readSource(path string) (*text.Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return text.FromFile(path, string(content)), nil
}

// runFiles evaluates every file on its own, concurrently, and writes their
// output to w in the order the files were given. It returns
// COMPILER_ERROR_FOUND when any file has diagnostics.
func runFiles(w io.Writer, paths []string, p painter) error {
	outputs := make([]bytes.Buffer, len(paths))
	failed := make([]bool, len(paths))

	var group errgroup.Group
	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			source, err := readSource(path)
			if err != nil {
				return err
			}
			failed[i] = !runSource(&outputs[i], source, p)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(w); err != nil {
			return err
		}
	}
	for _, hasDiagnostics := range failed {
		if hasDiagnostics {
			return diagnostics.COMPILER_ERROR_FOUND
		}
	}
	return nil
}

// runSource evaluates source and writes its value or its diagnostics to w.
// It reports whether the evaluation produced no diagnostics.
func runSource(w io.Writer, source *text.Source, p painter) bool {
	tree := parser.ParseText(source)
	result := compilation.New(tree).Evaluate(eval.Variables{})

	if len(result.Diagnostics) > 0 {
		renderDiagnostics(w, source, result.Diagnostics, p)
		return false
	}
	if result.Value != nil {
		fmt.Fprintln(w, formatValue(result.Value, p))
	}
	return true
}

func showTokens(w io.Writer, path string, p painter) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}
	writeTokens(w, source, p)
	return nil
}

func showTree(w io.Writer, path string, p painter) error {
	source, err := readSource(path)
	if err != nil {
		return err
	}

	tree := parser.ParseText(source)
	if err := ast.Fprint(w, tree.Root); err != nil {
		return err
	}
	renderDiagnostics(w, source, tree.Diagnostics, p)
	if len(tree.Diagnostics) > 0 {
		return diagnostics.COMPILER_ERROR_FOUND
	}
	return nil
}
