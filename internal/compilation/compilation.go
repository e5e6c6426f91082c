// Package compilation drives one submission through binding, lowering and
// evaluation, chaining it to the submissions before it.
package compilation

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/HicaroD/mangle/internal/bound"
	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/eval"
	"github.com/HicaroD/mangle/internal/lowerer"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/sema"
)

type Compilation struct {
	Previous *Compilation
	Syntax   *parser.SyntaxTree

	globalScope atomic.Pointer[sema.GlobalScope]
}

type EvaluationResult struct {
	Diagnostics []diagnostics.Diag
	Value       eval.Value
}

func New(tree *parser.SyntaxTree) *Compilation {
	return &Compilation{Syntax: tree}
}

// ContinueWith returns a compilation of tree that sees every variable
// declared by c and the compilations before it.
func (c *Compilation) ContinueWith(tree *parser.SyntaxTree) *Compilation {
	return &Compilation{Previous: c, Syntax: tree}
}

// GlobalScope binds the submission on first use. Concurrent first calls may
// each bind it, but only one result is ever published.
func (c *Compilation) GlobalScope() *sema.GlobalScope {
	if global := c.globalScope.Load(); global != nil {
		return global
	}

	var previous *sema.GlobalScope
	if c.Previous != nil {
		previous = c.Previous.GlobalScope()
	}

	start := time.Now()
	computed := sema.BindGlobalScope(previous, c.Syntax.Root)
	if c.globalScope.CompareAndSwap(nil, computed) {
		slog.Debug("bound submission", slog.Duration("elapsed", time.Since(start)))
	}

	return c.globalScope.Load()
}

// Diagnostics lists the diagnostics of the previous compilations first, then
// the syntax and the binder diagnostics of this one.
func (c *Compilation) Diagnostics() []diagnostics.Diag {
	var diags []diagnostics.Diag
	if c.Previous != nil {
		diags = append(diags, c.Previous.Diagnostics()...)
	}
	diags = append(diags, c.Syntax.Diagnostics...)
	diags = append(diags, c.GlobalScope().SubmissionDiagnostics()...)
	return diags
}

// Program returns the lowered form of this submission.
func (c *Compilation) Program() *bound.BlockStmt {
	return lowerer.Lower(c.GlobalScope().Statement)
}

// Evaluate runs the submission against vars unless any compilation in the
// chain has diagnostics. A runtime fault is reported as a diagnostic.
func (c *Compilation) Evaluate(vars eval.Variables) EvaluationResult {
	diags := c.Diagnostics()
	if len(diags) > 0 {
		return EvaluationResult{Diagnostics: diags}
	}

	start := time.Now()
	value, err := eval.Evaluate(c.Program(), vars)
	slog.Debug("evaluated submission", slog.Duration("elapsed", time.Since(start)))

	if err != nil {
		collector := diagnostics.New()
		reportRuntimeError(collector, err)
		return EvaluationResult{Diagnostics: collector.Diags}
	}

	return EvaluationResult{Value: value}
}

func reportRuntimeError(collector *diagnostics.Collector, err error) {
	var runtimeErr *eval.RuntimeError
	if !errors.As(err, &runtimeErr) {
		collector.ReportAndSave(diagnostics.Diag{Message: err.Error()})
		return
	}

	switch {
	case errors.Is(err, eval.ErrDivisionByZero):
		collector.ReportDivisionByZero(runtimeErr.Span)
	case errors.Is(err, eval.ErrNegativeExponent):
		collector.ReportNegativeExponent(runtimeErr.Span)
	default:
		collector.ReportAndSave(diagnostics.Diag{Span: runtimeErr.Span, Message: err.Error()})
	}
}

// EmitTree writes the lowered program to w.
func (c *Compilation) EmitTree(w io.Writer) error {
	return bound.Fprint(w, c.Program())
}
