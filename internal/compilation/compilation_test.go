package compilation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/HicaroD/mangle/internal/eval"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/sema"
	"github.com/HicaroD/mangle/internal/testutil"
)

type evaluateCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Value  any    `yaml:"value"`
}

type diagnosticsCase struct {
	Name        string   `yaml:"name"`
	Source      string   `yaml:"source"`
	Diagnostics []string `yaml:"diagnostics"`
}

func loadFixture(t *testing.T, name string, out any) {
	t.Helper()

	file, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		t.Fatalf("decode fixture %s: %v", name, err)
	}
}

// normalize widens the integers yaml decodes as int.
func normalize(value any) any {
	if i, ok := value.(int); ok {
		return int64(i)
	}
	return value
}

func evaluate(src string) EvaluationResult {
	return New(parser.Parse(src)).Evaluate(eval.Variables{})
}

func TestEvaluateFixtures(t *testing.T) {
	var cases []evaluateCase
	loadFixture(t, "evaluate.yaml", &cases)

	for _, test := range cases {
		t.Run(fmt.Sprintf("TestEvaluateFixtures(%s)", test.Name), func(t *testing.T) {
			result := evaluate(test.Source)
			if len(result.Diagnostics) > 0 {
				t.Fatalf("unexpected diagnostics: %v", result.Diagnostics)
			}
			if diff := cmp.Diff(normalize(test.Value), result.Value); diff != "" {
				t.Errorf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiagnosticFixtures(t *testing.T) {
	var cases []diagnosticsCase
	loadFixture(t, "diagnostics.yaml", &cases)

	for _, test := range cases {
		t.Run(fmt.Sprintf("TestDiagnosticFixtures(%s)", test.Name), func(t *testing.T) {
			annotated := testutil.ParseAnnotated(test.Source)
			want := annotated.Diags(test.Diagnostics...)

			result := evaluate(annotated.Text)
			if result.Value != nil {
				t.Errorf("expected no value, but got %v", result.Value)
			}
			if diff := cmp.Diff(want, result.Diagnostics); diff != "" {
				t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContinueWithSharesVariables(t *testing.T) {
	vars := eval.Variables{}

	first := New(parser.Parse("var x = 10"))
	result := first.Evaluate(vars)
	if len(result.Diagnostics) > 0 || result.Value != int64(10) {
		t.Fatalf("unexpected result: %+v", result)
	}

	second := first.ContinueWith(parser.Parse("x = x * 2"))
	result = second.Evaluate(vars)
	if len(result.Diagnostics) > 0 || result.Value != int64(20) {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(second.GlobalScope().Variables) != 0 {
		t.Errorf("expected x not to be declared again")
	}

	third := second.ContinueWith(parser.Parse("{ var y = x + 1 y }"))
	result = third.Evaluate(vars)
	if len(result.Diagnostics) > 0 || result.Value != int64(21) {
		t.Fatalf("unexpected result: %+v", result)
	}

	x := first.GlobalScope().Variables[0]
	if vars[x] != int64(20) {
		t.Errorf("expected x to hold 20, but got %v", vars[x])
	}
}

func TestContinueWithMergesDiagnostics(t *testing.T) {
	first := New(parser.Parse("var x = y"))
	second := first.ContinueWith(parser.Parse("x + )"))

	firstDiags := first.Diagnostics()
	if len(firstDiags) != 1 {
		t.Fatalf("expected one diagnostic, but got %v", firstDiags)
	}

	got := second.Evaluate(eval.Variables{}).Diagnostics
	want := append(firstDiags, second.Syntax.Diagnostics...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	// x was declared with an error type, so using it reports nothing new.
	if len(second.GlobalScope().SubmissionDiagnostics()) != 0 {
		t.Errorf("unexpected binder diagnostics: %v", second.GlobalScope().SubmissionDiagnostics())
	}
}

func TestReadOnlyProducesNoValue(t *testing.T) {
	vars := eval.Variables{}

	first := New(parser.Parse("def x = 10"))
	first.Evaluate(vars)

	result := first.ContinueWith(parser.Parse("x = 5")).Evaluate(vars)
	if result.Value != nil {
		t.Errorf("expected no value, but got %v", result.Value)
	}
	if len(result.Diagnostics) != 1 || result.Diagnostics[0].Message != "Variable 'x' is read-only and cannot be reassigned." {
		t.Errorf("unexpected diagnostics: %v", result.Diagnostics)
	}
}

func TestGlobalScopeIsPublishedOnce(t *testing.T) {
	previous := New(parser.Parse("var x = 1"))
	c := previous.ContinueWith(parser.Parse("{ var y = x while y < 10 y = y + 1 }"))

	const callers = 16
	scopes := make([]*sema.GlobalScope, callers)

	var group errgroup.Group
	for i := 0; i < callers; i++ {
		i := i
		group.Go(func() error {
			scopes[i] = c.GlobalScope()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, global := range scopes {
		if global != scopes[0] {
			t.Fatalf("caller %d observed a different global scope", i)
		}
	}
	if scopes[0].Previous != previous.GlobalScope() {
		t.Errorf("expected the previous global scope to be shared as well")
	}
}

func TestEmitTree(t *testing.T) {
	c := New(parser.Parse("{ var a = 0 if a == 0 a = 10 }"))

	var out strings.Builder
	if err := c.EmitTree(&out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"└──BlockStmt",
		"   ├──VarDecl var a int",
		"   │  └──LiteralExpr 0 int",
		"   ├──CondGotoStmt Label1 if false",
		"   │  └──BinaryExpr == bool",
		"   │     ├──VariableExpr a int",
		"   │     └──LiteralExpr 0 int",
		"   ├──ExprStmt",
		"   │  └──AssignExpr a int",
		"   │     └──LiteralExpr 10 int",
		"   └──LabelStmt Label1",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
