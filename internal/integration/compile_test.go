package integration

import (
	"os"
	"strings"
	"testing"

	"github.com/HicaroD/mangle/internal/compilation"
	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/eval"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/text"
)

func runFile(t *testing.T, path string) (eval.Value, []diagnostics.Diag) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tree := parser.ParseText(text.FromFile(path, string(content)))
	result := compilation.New(tree).Evaluate(eval.Variables{})
	return result.Value, result.Diagnostics
}

func TestRunFibonacci(t *testing.T) {
	value, diags := runFile(t, "testdata/fib.mg")
	if len(diags) > 0 {
		t.Fatalf("unexpected errors: %v", diags)
	}
	if value != int64(55) {
		t.Errorf("expected 55, got %v", value)
	}
}

func TestRunPrimes(t *testing.T) {
	value, diags := runFile(t, "testdata/primes.mg")
	if len(diags) > 0 {
		t.Fatalf("unexpected errors: %v", diags)
	}
	if value != int64(15) {
		t.Errorf("expected 15, got %v", value)
	}
}

func TestRunCalculator(t *testing.T) {
	value, diags := runFile(t, "testdata/calculator.mg")
	if len(diags) > 0 {
		t.Fatalf("unexpected errors: %v", diags)
	}
	if value != "product ok" {
		t.Errorf("expected %q, got %v", "product ok", value)
	}
}

func expectDiagnostic(t *testing.T, path string, fragments ...string) {
	t.Helper()

	value, diags := runFile(t, path)
	if len(diags) == 0 {
		t.Fatalf("expected errors, got none")
	}
	if value != nil {
		t.Errorf("expected no value, got %v", value)
	}

	for _, diag := range diags {
		for _, fragment := range fragments {
			if strings.Contains(diag.Message, fragment) {
				return
			}
		}
	}
	t.Errorf("expected an error mentioning one of %q, got: %v", fragments, diags)
}

func TestUndefinedVariable(t *testing.T) {
	expectDiagnostic(t, "testdata/errors/undefined_var.mg", "'y'")
}

func TestTypeMismatch(t *testing.T) {
	expectDiagnostic(t, "testdata/errors/type_mismatch.mg", "'int' to 'string'")
}

func TestBadSyntax(t *testing.T) {
	expectDiagnostic(t, "testdata/errors/bad_syntax.mg", "Unexpected token")
}

func TestDivisionByZero(t *testing.T) {
	expectDiagnostic(t, "testdata/errors/division.mg", "Division by zero.")
}
