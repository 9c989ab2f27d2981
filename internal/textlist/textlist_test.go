package textlist

import "testing"

func TestOr(t *testing.T) {
	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A or B"},
		{[]string{"A", "B", "C"}, "A, B, or C"},
	}
	for _, c := range cases {
		if got := Or(c.items); got != c.want {
			t.Errorf("Or(%v) = %q, want %q", c.items, got, c.want)
		}
	}
}

func TestAnd(t *testing.T) {
	cases := []struct {
		items []string
		want  string
	}{
		{nil, ""},
		{[]string{"A"}, "A"},
		{[]string{"A", "B"}, "A and B"},
		{[]string{"A", "B", "C"}, "A, B, and C"},
	}
	for _, c := range cases {
		if got := And(c.items); got != c.want {
			t.Errorf("And(%v) = %q, want %q", c.items, got, c.want)
		}
	}
}
