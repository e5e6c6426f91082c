package text

import "fmt"

// Span is a half-open byte range [Start, Start+Length) into a source.
type Span struct {
	Start  int
	Length int
}

func NewSpan(start, length int) Span {
	return Span{Start: start, Length: length}
}

func SpanFromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

func (span Span) End() int { return span.Start + span.Length }

func (span Span) String() string {
	return fmt.Sprintf("%d..%d", span.Start, span.End())
}
