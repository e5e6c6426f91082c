// Package text holds the immutable source buffer shared by every compiler
// stage. Offsets are byte offsets into the UTF-8 source.
package text

import "fmt"

type Line struct {
	Start               int
	Length              int
	LengthWithLineBreak int
}

func (line Line) End() int { return line.Start + line.Length }

func (line Line) Span() Span { return NewSpan(line.Start, line.Length) }

func (line Line) SpanWithLineBreak() Span { return NewSpan(line.Start, line.LengthWithLineBreak) }

type Source struct {
	Filename string
	Lines    []Line

	text string
}

func From(src string) *Source {
	return FromFile("", src)
}

func FromFile(filename, src string) *Source {
	source := &Source{Filename: filename, text: src}
	source.Lines = parseLines(src)
	return source
}

func (source *Source) At(offset int) byte { return source.text[offset] }

func (source *Source) Len() int { return len(source.text) }

func (source *Source) String() string { return source.text }

func (source *Source) ToString(span Span) string {
	return source.text[span.Start:span.End()]
}

// LineIndex returns the index of the line containing offset. Offsets past the
// end of the text belong to the last line.
func (source *Source) LineIndex(offset int) int {
	lower := 0
	upper := len(source.Lines) - 1

	for lower <= upper {
		index := lower + (upper-lower)/2
		start := source.Lines[index].Start

		if offset == start {
			return index
		}
		if offset > start {
			lower = index + 1
		} else {
			upper = index - 1
		}
	}

	return lower - 1
}

// Location returns 1-based line and column numbers for offset.
func (source *Source) Location(offset int) (line, column int) {
	index := source.LineIndex(offset)
	return index + 1, offset - source.Lines[index].Start + 1
}

func (source *Source) Pos(offset int) string {
	line, column := source.Location(offset)
	if source.Filename == "" {
		return fmt.Sprintf("(%d,%d)", line, column)
	}
	return fmt.Sprintf("%s:%d:%d", source.Filename, line, column)
}

func parseLines(src string) []Line {
	var lines []Line
	lineStart := 0
	position := 0

	for position < len(src) {
		width := lineBreakWidth(src, position)
		if width == 0 {
			position++
			continue
		}
		lines = append(lines, newLine(lineStart, position, width))
		position += width
		lineStart = position
	}

	if position >= lineStart {
		lines = append(lines, newLine(lineStart, position, 0))
	}

	return lines
}

func newLine(start, position, lineBreakWidth int) Line {
	length := position - start
	return Line{Start: start, Length: length, LengthWithLineBreak: length + lineBreakWidth}
}

func lineBreakWidth(src string, position int) int {
	c := src[position]
	var l byte
	if position+1 < len(src) {
		l = src[position+1]
	}

	if c == '\r' && l == '\n' {
		return 2
	}
	if c == '\r' || c == '\n' {
		return 1
	}
	return 0
}
