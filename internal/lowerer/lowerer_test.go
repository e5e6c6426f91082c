package lowerer

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/HicaroD/mangle/internal/bound"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/sema"
)

func bindFrom(t *testing.T, src string) bound.Stmt {
	t.Helper()

	tree := parser.Parse(src)
	global := sema.BindGlobalScope(nil, tree.Root)
	if len(tree.Diagnostics) > 0 || len(global.Diagnostics) > 0 {
		t.Fatalf("unexpected diagnostics for %q: %v %v", src, tree.Diagnostics, global.Diagnostics)
	}
	return global.Statement
}

func kinds(block *bound.BlockStmt) []string {
	var out []string
	for _, stmt := range block.Statements {
		out = append(out, stmt.Kind().String())
	}
	return out
}

func TestLowerKeepsStraightLineCode(t *testing.T) {
	stmt := bindFrom(t, "{ var x = 1 var y = x + 2 y = y * x y }")
	block := stmt.(*bound.BlockStmt)

	lowered := Lower(stmt)
	if len(lowered.Statements) != len(block.Statements) {
		t.Fatalf("expected %d statements, but got %d", len(block.Statements), len(lowered.Statements))
	}
	for i := range block.Statements {
		if lowered.Statements[i] != block.Statements[i] {
			t.Errorf("statement %d was rebuilt: %s", i, lowered.Statements[i].Kind())
		}
	}
}

func TestLowerWrapsSingleStatement(t *testing.T) {
	stmt := bindFrom(t, "1 + 2")

	lowered := Lower(stmt)
	if len(lowered.Statements) != 1 || lowered.Statements[0] != stmt {
		t.Fatalf("expected the statement to be wrapped as is, but got %v", kinds(lowered))
	}
}

func TestLowerShapes(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"{ var a = 0 if a == 0 a = 10 }", []string{
			"VarDecl",
			"CondGotoStmt", "ExprStmt", "LabelStmt",
		}},
		{"{ var a = 0 if a == 0 a = 10 else a = 20 }", []string{
			"VarDecl",
			"CondGotoStmt", "ExprStmt", "GotoStmt", "LabelStmt", "ExprStmt", "LabelStmt",
		}},
		{"{ var a = 0 while a < 10 a = a + 1 }", []string{
			"VarDecl",
			"GotoStmt", "LabelStmt", "ExprStmt", "LabelStmt", "CondGotoStmt", "LabelStmt",
		}},
		{"{ var i = 1 for var x = 0 x < 4 x = x + 1 { i = i * 2 } }", []string{
			"VarDecl",
			"VarDecl",
			"GotoStmt", "LabelStmt", "ExprStmt", "ExprStmt", "LabelStmt", "CondGotoStmt", "LabelStmt",
		}},
	}

	for _, test := range tests {
		t.Run(fmt.Sprintf("TestLowerShapes(%q)", test.input), func(t *testing.T) {
			lowered := Lower(bindFrom(t, test.input))
			if diff := cmp.Diff(test.want, kinds(lowered)); diff != "" {
				t.Errorf("lowered statements mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLowerIfJumpsAroundBody(t *testing.T) {
	lowered := Lower(bindFrom(t, "{ var a = 0 if a == 0 a = 10 }"))

	gotoEnd := lowered.Statements[1].(*bound.CondGotoStmt)
	end := lowered.Statements[3].(*bound.LabelStmt)
	if gotoEnd.JumpIfTrue {
		t.Errorf("expected the jump to be taken when the condition is false")
	}
	if gotoEnd.Label != end.Label {
		t.Errorf("expected the jump to target the label after the body")
	}
}

func TestLowerWhileChecksAtTheBottom(t *testing.T) {
	lowered := Lower(bindFrom(t, "{ var a = 0 while a < 10 a = a + 1 }"))

	gotoCheck := lowered.Statements[1].(*bound.GotoStmt)
	body := lowered.Statements[2].(*bound.LabelStmt)
	check := lowered.Statements[4].(*bound.LabelStmt)
	backEdge := lowered.Statements[5].(*bound.CondGotoStmt)

	if gotoCheck.Label != check.Label {
		t.Errorf("expected the loop to start at the condition check")
	}
	if backEdge.Label != body.Label || !backEdge.JumpIfTrue {
		t.Errorf("expected the back edge to jump to the body while the condition holds")
	}
}

func TestLowerForIncrementIsDiscarded(t *testing.T) {
	lowered := Lower(bindFrom(t, "{ var i = 1 for var x = 0 x < 4 x = x + 1 { i = i * 2 } }"))

	body := lowered.Statements[4].(*bound.ExprStmt)
	increment := lowered.Statements[5].(*bound.ExprStmt)
	if body.Discard {
		t.Errorf("expected the loop body to produce a value")
	}
	if !increment.Discard {
		t.Errorf("expected the increment to be discarded")
	}
}

func TestLowerRemovesStructuredControlFlow(t *testing.T) {
	src := `
	{
		var total = 0
		for var i = 0 i < 10 i = i + 1 {
			if i % 2 == 0 {
				var j = 0
				while j < i {
					if j == 3 total = total + 1 else total = total + 2
					j = j + 1
				}
			} else
				total = total - 1
		}
		total
	}`

	lowered := Lower(bindFrom(t, src))

	labels := make(map[*bound.Label]bool)
	names := make(map[string]bool)
	var targets []*bound.Label

	for _, stmt := range lowered.Statements {
		switch node := stmt.(type) {
		case *bound.IfStmt, *bound.WhileStmt, *bound.ForStmt, *bound.BlockStmt:
			t.Fatalf("unexpected %s after lowering", stmt.Kind())
		case *bound.LabelStmt:
			if labels[node.Label] || names[node.Label.Name] {
				t.Errorf("label %s declared twice", node.Label)
			}
			labels[node.Label] = true
			names[node.Label.Name] = true
		case *bound.GotoStmt:
			targets = append(targets, node.Label)
		case *bound.CondGotoStmt:
			targets = append(targets, node.Label)
		}
	}

	for _, target := range targets {
		if !labels[target] {
			t.Errorf("jump to undeclared label %s", target)
		}
	}
}
