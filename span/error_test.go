package span

import "testing"

func TestIntoFatalPreservesKind(t *testing.T) {
	k := NewNamedKind(Syntax, "Expr", Recoverable, Range(3, 7))

	fatal := k.IntoFatal()

	if fatal.ControlFlowOf() != Fatal {
		t.Fatalf("IntoFatal().ControlFlowOf() = %v, want Fatal", fatal.ControlFlowOf())
	}

	fk, ok := fatal.(Kind)
	if !ok {
		t.Fatalf("IntoFatal() dynamic type = %T, want Kind", fatal)
	}
	if fk.Tag != Syntax {
		t.Fatalf("IntoFatal() Tag = %v, want Syntax (unchanged)", fk.Tag)
	}
	if fk.Name != "Expr" {
		t.Fatalf("IntoFatal() Name = %q, want %q (unchanged)", fk.Name, "Expr")
	}
	if fk.ToSpan() != Range(3, 7) {
		t.Fatalf("IntoFatal() Span = %v, want Range(3,7) (unchanged)", fk.ToSpan())
	}

	if k.ControlFlowOf() != Recoverable {
		t.Fatal("IntoFatal() mutated the receiver's control flow")
	}
}

func TestIsFatal(t *testing.T) {
	if NewKind(Next, Recoverable, None()).IsFatal() {
		t.Fatal("Recoverable Kind reports IsFatal() = true")
	}
	if !NewKind(Next, Fatal, None()).IsFatal() {
		t.Fatal("Fatal Kind reports IsFatal() = false")
	}
}

func TestKindErrorMessages(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{NewNamedKind(Syntax, "Expr", Recoverable, None()), "error parsing syntax `Expr`"},
		{NewNamedKind(Token, "Semi", Recoverable, None()), "error parsing token `Semi`"},
		{NewKind(LeftRecursion, Fatal, None()), "detected left recursion"},
		{NewKind(Delimiter, Fatal, None()), "unclosed delimiter"},
	}
	for _, c := range cases {
		if got := c.k.Error(); got != c.want {
			t.Errorf("Kind{Tag: %v}.Error() = %q, want %q", c.k.Tag, got, c.want)
		}
	}
}
