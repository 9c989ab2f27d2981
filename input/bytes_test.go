package input

import (
	"testing"

	"github.com/dekarrin/parsec/span"
)

func TestBytesSplitToAdvances(t *testing.T) {
	b := NewBytes("hello world")

	head := b.SplitTo(5)

	if head.AsStr() != "hello" {
		t.Fatalf("head.AsStr() = %q, want %q", head.AsStr(), "hello")
	}
	if b.AsStr() != " world" {
		t.Fatalf("b.AsStr() = %q, want %q", b.AsStr(), " world")
	}
	if b.Start() != 5 {
		t.Fatalf("b.Start() = %d, want 5", b.Start())
	}
}

func TestBytesCloneRestore(t *testing.T) {
	b := NewBytes("abcdef")
	snap := b.Clone()

	b.SplitTo(3)
	if b.AsStr() != "def" {
		t.Fatalf("after SplitTo, b.AsStr() = %q, want %q", b.AsStr(), "def")
	}

	b.Restore(snap)
	if b.AsStr() != "abcdef" {
		t.Fatalf("after Restore, b.AsStr() = %q, want %q", b.AsStr(), "abcdef")
	}
}

func TestBytesIterIndices(t *testing.T) {
	b := NewBytes("ab")
	var got []int
	for i, v := range b.IterIndices() {
		got = append(got, i, int(v))
	}
	want := []int{0, 'a', 1, 'b'}
	if len(got) != len(want) {
		t.Fatalf("IterIndices yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IterIndices yielded %v, want %v", got, want)
		}
	}
}

func TestBytesStartsWithFindIndex(t *testing.T) {
	b := NewBytes("foobar")
	if n, ok := b.StartsWith("foo"); !ok || n != 3 {
		t.Fatalf("StartsWith(\"foo\") = (%d, %v), want (3, true)", n, ok)
	}
	if at, ok := b.FindIndex("bar"); !ok || at != 3 {
		t.Fatalf("FindIndex(\"bar\") = (%d, %v), want (3, true)", at, ok)
	}
	if _, ok := b.FindIndex("zzz"); ok {
		t.Fatal("FindIndex(\"zzz\") ok = true, want false")
	}
}

func TestBytesToSpanAtClampsToEnd(t *testing.T) {
	b := NewBytesAt(10, "abc")
	if got := b.ToSpanAt(100); got != span.Range(10, 13) {
		t.Fatalf("ToSpanAt(100) = %v, want Range(10,13) (clamped)", got)
	}
	if got := b.ToSpanAt(1); got != span.Range(10, 11) {
		t.Fatalf("ToSpanAt(1) = %v, want Range(10,11)", got)
	}
}
