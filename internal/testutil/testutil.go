// Package testutil holds helpers shared by the compiler tests.
package testutil

import (
	"fmt"
	"strings"

	"github.com/HicaroD/mangle/internal/diagnostics"
	"github.com/HicaroD/mangle/internal/text"
)

// AnnotatedText is source text whose interesting spans were marked with
// square brackets. Text has the brackets removed.
type AnnotatedText struct {
	Text  string
	Spans []text.Span
}

// ParseAnnotated unindents src and strips its [ ] markers. Spans are listed in
// the order their closing bracket appears.
func ParseAnnotated(src string) AnnotatedText {
	unindented := Unindent(src)

	var (
		builder strings.Builder
		starts  []int
		spans   []text.Span
	)

	for i := 0; i < len(unindented); i++ {
		switch c := unindented[i]; c {
		case '[':
			starts = append(starts, builder.Len())
		case ']':
			if len(starts) == 0 {
				panic(fmt.Sprintf("testutil: too many ']' in %q", src))
			}
			start := starts[len(starts)-1]
			starts = starts[:len(starts)-1]
			spans = append(spans, text.SpanFromBounds(start, builder.Len()))
		default:
			builder.WriteByte(c)
		}
	}

	if len(starts) != 0 {
		panic(fmt.Sprintf("testutil: missing ']' in %q", src))
	}

	return AnnotatedText{Text: builder.String(), Spans: spans}
}

// Diags pairs the annotated spans with messages, in order.
func (annotated AnnotatedText) Diags(messages ...string) []diagnostics.Diag {
	if len(messages) != len(annotated.Spans) {
		panic(fmt.Sprintf("testutil: %d messages for %d marked spans", len(messages), len(annotated.Spans)))
	}

	diags := make([]diagnostics.Diag, 0, len(messages))
	for i, message := range messages {
		diags = append(diags, diagnostics.Diag{Span: annotated.Spans[i], Message: message})
	}
	return diags
}

func Unindent(src string) string {
	return strings.Join(UnindentLines(src), "\n")
}

// UnindentLines splits src into lines, removes the indentation common to all
// non-blank lines and drops leading and trailing blank lines.
func UnindentLines(src string) []string {
	lines := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = line[minIndent:]
	}

	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
