package diagnostic

import (
	"strings"
	"testing"

	"github.com/dekarrin/parsec/span"
)

type expectedErr struct {
	span.Kind
	names []string
}

func (e expectedErr) Expected() []string { return e.names }

func TestNewComputesLineAndColumn(t *testing.T) {
	source := "first\nsecond line\nthird"
	// offset 6 is the start of "second line"
	err := span.NewNamedKind(span.Syntax, "Stmt", span.Recoverable, span.Range(6, 9))

	r := New(source, err)
	if r.Line != 2 || r.Column != 1 {
		t.Fatalf("Line,Column = %d,%d, want 2,1", r.Line, r.Column)
	}
	if r.Source != "second line" {
		t.Fatalf("Source = %q, want %q", r.Source, "second line")
	}
}

func TestNewMidLineColumn(t *testing.T) {
	source := "first\nsecond line\nthird"
	err := span.NewNamedKind(span.Syntax, "Stmt", span.Recoverable, span.Range(13, 17))

	r := New(source, err)
	if r.Line != 2 {
		t.Fatalf("Line = %d, want 2", r.Line)
	}
	if r.Column != 8 {
		t.Fatalf("Column = %d, want 8", r.Column)
	}
}

func TestNewPopulatesExpected(t *testing.T) {
	err := expectedErr{
		Kind:  span.NewKind(span.Token, span.Recoverable, span.Range(0, 1)),
		names: []string{"identifier", "number"},
	}

	r := New("abc", err)
	if len(r.Expected) != 2 || r.Expected[0] != "identifier" || r.Expected[1] != "number" {
		t.Fatalf("Expected = %v, want [identifier number]", r.Expected)
	}
}

func TestReportStringIncludesCaretAndExpected(t *testing.T) {
	source := "x + "
	err := expectedErr{
		Kind:  span.NewNamedKind(span.Syntax, "Expr", span.Recoverable, span.Range(4, 4)),
		names: []string{"identifier", "number"},
	}

	out := New(source, err).String()
	if !strings.Contains(out, "^") {
		t.Fatal("String() output missing caret")
	}
	if !strings.Contains(out, "expected identifier or number") {
		t.Fatalf("String() output missing expected clause: %q", out)
	}
}

func TestReportStringWithNoExpectedOmitsClause(t *testing.T) {
	source := "x"
	err := span.NewNamedKind(span.Syntax, "Expr", span.Recoverable, span.Range(0, 1))

	out := New(source, err).String()
	if strings.Contains(out, "expected ") {
		t.Fatalf("String() output has expected clause with none set: %q", out)
	}
}
