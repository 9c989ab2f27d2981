// Package diagnostic renders parse errors for a human reader: the
// offending source line, a caret under the failing span, and an
// "expected A, B, or C" clause built from the names of whatever the
// parser was looking for. This sits outside the span/parser error
// taxonomy on purpose — spec'd control flow carries only what a
// program needs to decide whether to backtrack; how to show a person
// the failure is a separate, caller-side concern.
//
// Grounded on tunascript/syntax/ast.go's use of
// github.com/dekarrin/rosed for wrapped diagnostic text, and the
// deleted internal/tunascript/parser.go's rosed-built expected-token
// tables.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/parsec/internal/textlist"
	"github.com/dekarrin/parsec/span"
)

// Report is a human-facing rendering of a single parse failure.
type Report struct {
	Message  string
	Line     int
	Column   int
	Source   string
	Expected []string
}

// lineCol converts a byte offset in source into a 1-based (line,
// column) pair.
func lineCol(source string, offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// sourceLine returns the full line of source containing offset.
func sourceLine(source string, offset int) string {
	lines := strings.Split(source, "\n")
	line, _ := lineCol(source, offset)
	if line-1 < len(lines) {
		return lines[line-1]
	}
	return ""
}

// New builds a Report for err against the original source text. If err
// implements an `Expected() []string` method, those names populate the
// report's Expected list (the example grammars' error types do this);
// otherwise Expected is empty.
func New(source string, err span.ParseError) Report {
	sp := err.ToSpan()
	offset := spanStart(sp)

	line, col := lineCol(source, offset)
	r := Report{
		Message: err.Error(),
		Line:    line,
		Column:  col,
		Source:  sourceLine(source, offset),
	}

	if ex, ok := err.(interface{ Expected() []string }); ok {
		r.Expected = ex.Expected()
	}

	return r
}

func spanStart(sp span.Span) int {
	switch {
	case sp.K == span.KindRange || sp.K == span.KindRangeFrom:
		return sp.Start
	default:
		return 0
	}
}

// String renders the report as a wrapped, columnar block: the message,
// the source line, and a caret under the failing column, followed by
// an "expected A, B, or C" clause when Expected is non-empty.
func (r Report) String() string {
	ed := rosed.Edit(fmt.Sprintf("%s (line %d, column %d)", r.Message, r.Line, r.Column)).
		Wrap(80)

	out := ed.String()

	if r.Source != "" {
		caret := strings.Repeat(" ", max(0, r.Column-1)) + "^"
		out += "\n" + r.Source + "\n" + caret
	}

	if len(r.Expected) > 0 {
		out += "\n" + rosed.Edit("expected "+textlist.Or(r.Expected)).Wrap(80).String()
	}

	return out
}
