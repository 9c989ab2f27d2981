package meta

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

type greetingCursor = *input.Runes

type greeting struct {
	Kw   greetingCursor `parse:"keyword=hello"`
	Name greetingCursor `parse:"take_while=isLetterForMeta"`
}

func isLetterForMeta(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func TestDeriveKeywordAndTakeWhile(t *testing.T) {
	RegisterPredicate("isLetterForMeta", isLetterForMeta)

	p := Derive[greetingCursor, greeting]()
	cur := input.NewRunes("helloWorld rest")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kw.AsStr() != "hello" {
		t.Fatalf("Kw = %q, want %q", out.Kw.AsStr(), "hello")
	}
	if out.Name.AsStr() != "World" {
		t.Fatalf("Name = %q, want %q", out.Name.AsStr(), "World")
	}
	if cur.AsStr() != " rest" {
		t.Fatalf("cursor after Derive = %q, want %q", cur.AsStr(), " rest")
	}
}

func TestDeriveFailsOnMissingKeyword(t *testing.T) {
	p := Derive[greetingCursor, greeting]()
	cur := input.NewRunes("goodbyeWorld")
	if _, err := p(cur); err == nil {
		t.Fatal("expected error on missing keyword, got nil")
	}
}

type digitValue int

func parseDigitValue(cur greetingCursor) (digitValue, error) {
	m, err := parser.NextIf[greetingCursor, rune](func(r rune) bool { return r >= '0' && r <= '9' })(cur)
	if err != nil {
		return 0, err
	}
	for c := range m.Iter() {
		return digitValue(c - '0'), nil
	}
	return 0, span.NewKind(span.Next, span.Fatal, m.ToSpan())
}

type digitPair struct {
	First  digitValue `parse:"parser=digit"`
	Second digitValue
}

func init() {
	RegisterFieldParser[greetingCursor, digitValue](parseDigitValue)
}

func TestDeriveResolvesFieldTypeViaRegisteredParser(t *testing.T) {
	p := Derive[greetingCursor, digitPair]()
	cur := input.NewRunes("37")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.First != 3 || out.Second != 7 {
		t.Fatalf("digitPair = %+v, want {First:3 Second:7}", out)
	}
}

func TestDeriveEnumCommitsFirstMatch(t *testing.T) {
	var bCalls int
	ctorA := func(cur *input.Bytes) (string, error) {
		m, err := parser.Next[*input.Bytes, byte]('a')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}
	ctorB := func(cur *input.Bytes) (string, error) {
		bCalls++
		m, err := parser.Next[*input.Bytes, byte]('b')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}

	p := DeriveEnum[*input.Bytes, string]("Letter", nil, ctorA, ctorB)
	cur := input.NewBytes("abc")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a" {
		t.Fatalf("DeriveEnum result = %q, want %q", out, "a")
	}
	if cur.AsStr() != "bc" {
		t.Fatalf("cursor after DeriveEnum = %q, want %q", cur.AsStr(), "bc")
	}
	if bCalls != 0 {
		t.Fatalf("ctorB called %d times, want 0 (ctorA matched first)", bCalls)
	}
}

func TestDeriveEnumFallsThroughToNextVariant(t *testing.T) {
	ctorA := func(cur *input.Bytes) (string, error) {
		m, err := parser.Next[*input.Bytes, byte]('a')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}
	ctorB := func(cur *input.Bytes) (string, error) {
		m, err := parser.Next[*input.Bytes, byte]('b')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}

	p := DeriveEnum[*input.Bytes, string]("Letter", nil, ctorA, ctorB)
	cur := input.NewBytes("bcd")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "b" || cur.AsStr() != "cd" {
		t.Fatalf("DeriveEnum result = (%q, cursor %q), want (\"b\", \"cd\")", out, cur.AsStr())
	}
}

func TestDeriveEnumAbortsOnFatal(t *testing.T) {
	var bCalls int
	ctorA := func(cur *input.Bytes) (string, error) {
		m, err := parser.Fatal(parser.Next[*input.Bytes, byte]('a'))(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}
	ctorB := func(cur *input.Bytes) (string, error) {
		bCalls++
		return "never", nil
	}

	p := DeriveEnum[*input.Bytes, string]("Letter", nil, ctorA, ctorB)
	cur := input.NewBytes("zzz")
	_, err := p(cur)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	pe, ok := err.(span.ParseError)
	if !ok || pe.ControlFlowOf() != span.Fatal {
		t.Fatalf("error = %v, want a Fatal span.ParseError", err)
	}
	if bCalls != 0 {
		t.Fatalf("ctorB called %d times, want 0 (Fatal aborts alternation)", bCalls)
	}
}

func TestDeriveEnumReportsNamedSyntaxErrorWhenAllRecoverableFail(t *testing.T) {
	ctorA := func(cur *input.Bytes) (string, error) {
		m, err := parser.Next[*input.Bytes, byte]('a')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}
	ctorB := func(cur *input.Bytes) (string, error) {
		m, err := parser.Next[*input.Bytes, byte]('b')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}

	p := DeriveEnum[*input.Bytes, string]("Letter", nil, ctorA, ctorB)
	cur := input.NewBytes("zzz")
	_, err := p(cur)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	pe, ok := err.(span.ParseError)
	if !ok {
		t.Fatalf("error = %v, want a span.ParseError", err)
	}
	if pe.ControlFlowOf() != span.Recoverable {
		t.Fatalf("ControlFlowOf() = %v, want Recoverable", pe.ControlFlowOf())
	}
	if k, ok := err.(span.Kind); !ok || k.Name != "Letter" {
		t.Fatalf("error Kind.Name = %+v, want Name = %q", err, "Letter")
	}
}

func TestGuardLeftRecursionDetectsReentry(t *testing.T) {
	var rec parser.Parser[*input.Bytes, int]
	rec = GuardLeftRecursion[*input.Bytes, int]("Expr", func(cur *input.Bytes) (int, error) {
		return rec(cur)
	})

	cur := input.NewBytes("abc")
	_, err := rec(cur)
	if err == nil {
		t.Fatal("expected left-recursion error, got nil")
	}
	pe, ok := err.(span.ParseError)
	if !ok || pe.ControlFlowOf() != span.Fatal {
		t.Fatalf("error = %v, want Fatal span.ParseError", err)
	}
}

func TestDeriveWithKeywordWholeProduct(t *testing.T) {
	p := Derive[greetingCursor, greetingCursor](WithKeyword("hello"))
	cur := input.NewRunes("helloWorld")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AsStr() != "hello" {
		t.Fatalf("out = %q, want %q", out.AsStr(), "hello")
	}
	if cur.AsStr() != "World" {
		t.Fatalf("cursor after Derive = %q, want %q", cur.AsStr(), "World")
	}
}

func TestDeriveWithTakeWhileWholeProduct(t *testing.T) {
	RegisterPredicate("isLetterForMeta", isLetterForMeta)

	p := Derive[greetingCursor, greetingCursor](WithTakeWhile("isLetterForMeta"))
	cur := input.NewRunes("World rest")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AsStr() != "World" {
		t.Fatalf("out = %q, want %q", out.AsStr(), "World")
	}
	if cur.AsStr() != " rest" {
		t.Fatalf("cursor after Derive = %q, want %q", cur.AsStr(), " rest")
	}
}

func TestDeriveWithCharWholeProduct(t *testing.T) {
	p := Derive[greetingCursor, greetingCursor](WithChar('x'))
	cur := input.NewRunes("xyz")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AsStr() != "x" {
		t.Fatalf("out = %q, want %q", out.AsStr(), "x")
	}
}

type orderedDigits struct {
	First  digitValue `parse:"parser=digit"`
	Second digitValue
}

func ascendingSemantic(o orderedDigits) (orderedDigits, error) {
	if o.First >= o.Second {
		return o, fmt.Errorf("meta: First (%d) must be less than Second (%d)", o.First, o.Second)
	}
	return o, nil
}

func init() {
	RegisterSemantic[orderedDigits]("ascending", ascendingSemantic)
}

func TestDeriveWithSemanticRefinesValue(t *testing.T) {
	p := Derive[greetingCursor, orderedDigits](WithSemantic("ascending"))
	cur := input.NewRunes("37")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.First != 3 || out.Second != 7 {
		t.Fatalf("orderedDigits = %+v, want {First:3 Second:7}", out)
	}
}

func TestDeriveWithSemanticRejectsValue(t *testing.T) {
	p := Derive[greetingCursor, orderedDigits](WithSemantic("ascending"))
	cur := input.NewRunes("73")
	if _, err := p(cur); err == nil {
		t.Fatal("expected error from semantic refinement, got nil")
	}
}

func TestDeriveEnumWithEnumSemanticRefinesWinner(t *testing.T) {
	ctorA := func(cur *input.Bytes) (string, error) {
		m, err := parser.Next[*input.Bytes, byte]('a')(cur)
		if err != nil {
			return "", err
		}
		return m.AsStr(), nil
	}
	RegisterSemantic[string]("upper", func(s string) (string, error) {
		return strings.ToUpper(s), nil
	})

	p := DeriveEnum[*input.Bytes, string]("Letter", []EnumOption{WithEnumSemantic("upper")}, ctorA)
	cur := input.NewBytes("abc")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A" {
		t.Fatalf("DeriveEnum result = %q, want %q", out, "A")
	}
}

// letStmt gives the `crucial` commit flag a field it applies to (Kw)
// and a later field (Name) whose failure, once Kw has matched, must be
// promoted to Fatal per spec.md §4.5's scenario of a `let` statement
// committing once its keyword is seen.
type letStmt struct {
	Kw   greetingCursor `parse:"keyword=let,crucial"`
	Name greetingCursor `parse:"take_while=isLetterForMeta"`
}

func TestDeriveCrucialPromotesLaterFieldFailureToFatal(t *testing.T) {
	RegisterPredicate("isLetterForMeta", isLetterForMeta)

	p := Derive[greetingCursor, letStmt]()
	cur := input.NewRunes("let123")
	_, err := p(cur)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	pe, ok := err.(span.ParseError)
	if !ok || pe.ControlFlowOf() != span.Fatal {
		t.Fatalf("error = %v, want a Fatal span.ParseError", err)
	}
}

func TestDeriveCrucialDoesNotAffectFieldsBeforeCommit(t *testing.T) {
	p := Derive[greetingCursor, letStmt]()
	cur := input.NewRunes("123")
	_, err := p(cur)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	pe, ok := err.(span.ParseError)
	if !ok || pe.ControlFlowOf() != span.Recoverable {
		t.Fatalf("error = %v, want a Recoverable span.ParseError (Kw never matched, so never committed)", err)
	}
}

func TestGuardLeftRecursionAllowsNonRecursiveCalls(t *testing.T) {
	p := GuardLeftRecursion[*input.Bytes, *input.Bytes]("Tok", parser.Next[*input.Bytes, byte]('a'))
	cur := input.NewBytes("abc")
	out, err := p(cur)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AsStr() != "a" {
		t.Fatalf("result = %q, want %q", out.AsStr(), "a")
	}

	// a second, independent top-level call must not be treated as reentrant
	cur2 := input.NewBytes("abc")
	if _, err := p(cur2); err != nil {
		t.Fatalf("unexpected error on second independent call: %v", err)
	}
}
