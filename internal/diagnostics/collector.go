package diagnostics

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/HicaroD/mangle/internal/lexer/token"
	"github.com/HicaroD/mangle/internal/symbols"
	"github.com/HicaroD/mangle/internal/text"
)

var COMPILER_ERROR_FOUND = errors.New("compiler error found")

type Diag struct {
	Span    text.Span
	Message string
}

func (diag Diag) String() string { return diag.Message }

// Collector accumulates diagnostics in report order. The zero value is
// ready to use.
type Collector struct {
	Diags []Diag
}

func New() *Collector {
	return &Collector{
		Diags: nil,
	}
}

func (collector *Collector) HasErrors() bool { return len(collector.Diags) > 0 }

func (collector *Collector) Err() error {
	if collector.HasErrors() {
		return COMPILER_ERROR_FOUND
	}
	return nil
}

func (collector *Collector) ReportAndSave(diag Diag) {
	slog.Debug("diagnostic reported", slog.String("span", diag.Span.String()), slog.String("message", diag.Message))
	collector.Diags = append(collector.Diags, diag)
}

func (collector *Collector) AddAll(diags []Diag) {
	collector.Diags = append(collector.Diags, diags...)
}

func (collector *Collector) report(span text.Span, format string, args ...any) {
	collector.ReportAndSave(Diag{Span: span, Message: fmt.Sprintf(format, args...)})
}

func (collector *Collector) ReportInvalidNumber(span text.Span, lexeme string, typ *symbols.TypeSymbol) {
	collector.report(span, "The number %s isn't valid %s.", lexeme, typ)
}

func (collector *Collector) ReportBadCharacter(span text.Span, character rune) {
	collector.report(span, "Bad character input: '%c'.", character)
}

func (collector *Collector) ReportUnterminatedString(span text.Span) {
	collector.report(span, "Unterminated string literal.")
}

func (collector *Collector) ReportInvalidEscape(span text.Span, escape byte) {
	collector.report(span, "Invalid escape sequence '\\%c'.", escape)
}

func (collector *Collector) ReportUnexpectedToken(span text.Span, actual, expected token.Kind) {
	collector.report(span, "Unexpected token <%s>, expected <%s>.", actual, expected)
}

func (collector *Collector) ReportUndefinedUnaryOperator(span text.Span, op string, operand *symbols.TypeSymbol) {
	collector.report(span, "Unary operator '%s' is not defined for type '%s'.", op, operand)
}

func (collector *Collector) ReportUndefinedBinaryOperator(span text.Span, op string, left, right *symbols.TypeSymbol) {
	collector.report(span, "Binary operator '%s' is not defined for types '%s' and '%s'.", op, left, right)
}

func (collector *Collector) ReportUndefinedName(span text.Span, name string) {
	collector.report(span, "Variable '%s' doesn't exist.", name)
}

func (collector *Collector) ReportCannotConvert(span text.Span, from, to *symbols.TypeSymbol) {
	collector.report(span, "Cannot convert type '%s' to '%s'.", from, to)
}

func (collector *Collector) ReportVariableAlreadyDeclared(span text.Span, name string) {
	collector.report(span, "Variable '%s' is already declared.", name)
}

func (collector *Collector) ReportCannotAssign(span text.Span, name string) {
	collector.report(span, "Variable '%s' is read-only and cannot be reassigned.", name)
}

func (collector *Collector) ReportDivisionByZero(span text.Span) {
	collector.report(span, "Division by zero.")
}

func (collector *Collector) ReportNegativeExponent(span text.Span) {
	collector.report(span, "Negative exponent.")
}
