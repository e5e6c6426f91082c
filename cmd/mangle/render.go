package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/eval"
	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/parser"
	"github.com/HicaroD/mangle/internal/text"
)

const (
	RESET   = "\x1b[0m"
	RED     = "\x1b[31m"
	YELLOW  = "\x1b[33m"
	BLUE    = "\x1b[94m"
	MAGENTA = "\x1b[35m"
	CYAN    = "\x1b[36m"
	GRAY    = "\x1b[90m"
)

type painter struct {
	enabled bool
}

func (p painter) paint(color, s string) string {
	if !p.enabled || s == "" {
		return s
	}
	return color + s + RESET
}

// renderDiagnostics writes each diagnostic as its position and message,
// followed by the offending line with the span highlighted.
func renderDiagnostics(w io.Writer, source *text.Source, diags []diagnostics.Diag, p painter) {
	for _, diag := range diags {
		line := source.Lines[source.LineIndex(diag.Span.Start)]

		start := min(diag.Span.Start, line.End())
		end := min(diag.Span.End(), line.End())

		prefix := source.ToString(text.SpanFromBounds(line.Start, start))
		errorText := source.ToString(text.SpanFromBounds(start, end))
		suffix := source.ToString(text.SpanFromBounds(end, line.End()))

		fmt.Fprintln(w)
		fmt.Fprintln(w, p.paint(RED, source.Pos(diag.Span.Start)+": "+diag.Message))
		fmt.Fprintf(w, "    %s%s%s\n", prefix, p.paint(RED, errorText), suffix)
	}
	if len(diags) > 0 {
		fmt.Fprintln(w)
	}
}

// highlight colors src token by token.
func highlight(src string, p painter) string {
	var builder strings.Builder
	for _, tok := range parser.ParseTokens(src) {
		builder.WriteString(p.paint(tokenColor(tok.Kind), tok.Lexeme))
	}
	return builder.String()
}

func tokenColor(kind token.Kind) string {
	switch {
	case kind.IsKeyword():
		return BLUE
	case kind == token.ID:
		return YELLOW
	case kind == token.NUMBER:
		return MAGENTA
	case kind == token.STRING:
		return CYAN
	case kind == token.INVALID:
		return RED
	}
	return ""
}

func formatValue(value eval.Value, p painter) string {
	switch v := value.(type) {
	case string:
		return p.paint(CYAN, strconv.Quote(v))
	case int64:
		return p.paint(MAGENTA, strconv.FormatInt(v, 10))
	case bool:
		return p.paint(BLUE, strconv.FormatBool(v))
	}
	return fmt.Sprint(value)
}

// writeTokens lists every token of source but whitespace, one per line.
func writeTokens(w io.Writer, source *text.Source, p painter) {
	for _, tok := range parser.ParseTokens(source.String()) {
		if tok.Kind == token.WHITESPACE {
			continue
		}

		line := fmt.Sprintf("%-10s %-20s %q", source.Pos(tok.Pos), tok.Kind, tok.Lexeme)
		if tok.Value != nil {
			line += fmt.Sprintf(" %v", tok.Value)
		}
		fmt.Fprintln(w, p.paint(tokenColor(tok.Kind), line))
	}
}
