package span

import "testing"

func TestUnion(t *testing.T) {
	cases := []struct {
		name string
		a, b Span
		want Span
	}{
		{"none absorbed by range", None(), Range(2, 5), Range(2, 5)},
		{"range absorbs none", Range(2, 5), None(), Range(2, 5)},
		{"overlapping ranges", Range(0, 3), Range(2, 6), Range(0, 6)},
		{"disjoint ranges", Range(0, 1), Range(5, 6), Range(0, 6)},
		{"none absorbed by rangeFrom", None(), RangeFrom(2), RangeFrom(2)},
		{"two rangeFroms keep lower start", RangeFrom(5), RangeFrom(2), RangeFrom(2)},
		{"two rangeTos keep higher end", RangeTo(4), RangeTo(9), RangeTo(9)},
		{"rangeTo and range resolve to range", RangeTo(4), Range(1, 2), Range(1, 4)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Union(c.b); got != c.want {
				t.Fatalf("Union(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func TestIsNone(t *testing.T) {
	if !None().IsNone() {
		t.Fatal("None().IsNone() = false")
	}
	if Range(0, 1).IsNone() {
		t.Fatal("Range(0,1).IsNone() = true")
	}
}

func TestLen(t *testing.T) {
	if n, ok := Range(2, 7).Len(); !ok || n != 5 {
		t.Fatalf("Range(2,7).Len() = (%d, %v), want (5, true)", n, ok)
	}
	if n, ok := None().Len(); !ok || n != 0 {
		t.Fatalf("None().Len() = (%d, %v), want (0, true)", n, ok)
	}
	if _, ok := RangeFrom(3).Len(); ok {
		t.Fatal("RangeFrom(3).Len() ok = true, want false")
	}
	if n, ok := RangeTo(9).Len(); !ok || n != 9 {
		t.Fatalf("RangeTo(9).Len() = (%d, %v), want (9, true)", n, ok)
	}
}

func TestBefore(t *testing.T) {
	if got := Range(4, 8).Before(); got != Range(3, 3) {
		t.Fatalf("Range(4,8).Before() = %v, want Range(3,3)", got)
	}
	if got := Range(0, 2).Before(); got != Range(0, 0) {
		t.Fatalf("Range(0,2).Before() = %v, want Range(0,0) (saturating at 0)", got)
	}
}
