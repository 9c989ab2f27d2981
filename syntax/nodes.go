package syntax

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

// Char matches a single specific rune, keeping the consumed cursor
// slice so ToSpan reports exactly where it matched.
type Char[I input.Input[I]] struct {
	Matched I
}

func (c Char[I]) ToSpan() span.Span { return c.Matched.ToSpan() }

// CharOf builds a Syntax recognizing the rune c.
func CharOf[I input.Itemized[I, rune]](c rune) Syntax[I, Char[I]] {
	next := parser.Next[I, rune](c)
	return func(cur I) (Char[I], error) {
		m, err := next(cur)
		if err != nil {
			var zero Char[I]
			return zero, err
		}
		return Char[I]{Matched: m}, nil
	}
}

// Byte matches a single specific byte.
type Byte[I input.Input[I]] struct {
	Matched I
}

func (b Byte[I]) ToSpan() span.Span { return b.Matched.ToSpan() }

// ByteOf builds a Syntax recognizing the byte c.
func ByteOf[I input.Itemized[I, byte]](c byte) Syntax[I, Byte[I]] {
	next := parser.Next[I, byte](c)
	return func(cur I) (Byte[I], error) {
		m, err := next(cur)
		if err != nil {
			var zero Byte[I]
			return zero, err
		}
		return Byte[I]{Matched: m}, nil
	}
}

// Delimiter groups a body between a start and end token, e.g. `(...)`
// or `{...}`.
type Delimiter[Start, End, Body Spanner] struct {
	Start Start
	End   End
	Body  Body
}

func (d Delimiter[Start, End, Body]) ToSpan() span.Span {
	return unionAll(d.Start, d.End)
}

// DelimiterOf builds a Syntax that parses start, then body, then end,
// failing fast at whichever position fails first.
func DelimiterOf[I input.Input[I], Start, End, Body Spanner](
	pStart Syntax[I, Start], pBody Syntax[I, Body], pEnd Syntax[I, End],
) Syntax[I, Delimiter[Start, End, Body]] {
	return func(cur I) (Delimiter[Start, End, Body], error) {
		var zero Delimiter[Start, End, Body]
		start, err := pStart(cur)
		if err != nil {
			return zero, err
		}
		body, err := pBody(cur)
		if err != nil {
			return zero, err
		}
		end, err := pEnd(cur)
		if err != nil {
			return zero, err
		}
		return Delimiter[Start, End, Body]{Start: start, End: end, Body: body}, nil
	}
}

func spanLen(sp span.Span, tag span.KindTag) (int, error) {
	n, ok := sp.Len()
	if !ok {
		return 0, span.NewKind(tag, span.Recoverable, sp)
	}
	return n, nil
}

// LimitsTo wraps a child whose span must cover no more than n items.
type LimitsTo[T Spanner] struct {
	Value T
}

func (l LimitsTo[T]) ToSpan() span.Span { return l.Value.ToSpan() }

// LimitsToOf builds a Syntax requiring inner's resulting span length be
// at most n.
func LimitsToOf[I input.Input[I], T Spanner](n int, inner Syntax[I, T]) Syntax[I, LimitsTo[T]] {
	return func(cur I) (LimitsTo[T], error) {
		start := cur.ToSpan()
		v, err := inner(cur)
		if err != nil {
			var zero LimitsTo[T]
			return zero, err
		}
		n2, lenErr := spanLen(v.ToSpan(), span.LimitsTo)
		if lenErr != nil {
			return LimitsTo[T]{}, lenErr
		}
		if n2 > n {
			return LimitsTo[T]{}, span.NewKind(span.LimitsTo, span.Recoverable, start)
		}
		return LimitsTo[T]{Value: v}, nil
	}
}

// Limits wraps a child whose span length must fall in [lo, hi).
type Limits[T Spanner] struct {
	Value T
}

func (l Limits[T]) ToSpan() span.Span { return l.Value.ToSpan() }

// LimitsOf builds a Syntax requiring lo <= len(inner) < hi.
func LimitsOf[I input.Input[I], T Spanner](lo, hi int, inner Syntax[I, T]) Syntax[I, Limits[T]] {
	return func(cur I) (Limits[T], error) {
		start := cur.ToSpan()
		v, err := inner(cur)
		if err != nil {
			var zero Limits[T]
			return zero, err
		}
		n, lenErr := spanLen(v.ToSpan(), span.Limits)
		if lenErr != nil {
			return Limits[T]{}, lenErr
		}
		if n < lo || !(n < hi) {
			return Limits[T]{}, span.NewKind(span.Limits, span.Recoverable, start)
		}
		return Limits[T]{Value: v}, nil
	}
}

// LimitsFrom wraps a child whose span length must be at least lo.
type LimitsFrom[T Spanner] struct {
	Value T
}

func (l LimitsFrom[T]) ToSpan() span.Span { return l.Value.ToSpan() }

// LimitsFromOf builds a Syntax requiring len(inner) >= lo.
func LimitsFromOf[I input.Input[I], T Spanner](lo int, inner Syntax[I, T]) Syntax[I, LimitsFrom[T]] {
	return func(cur I) (LimitsFrom[T], error) {
		start := cur.ToSpan()
		v, err := inner(cur)
		if err != nil {
			var zero LimitsFrom[T]
			return zero, err
		}
		n, lenErr := spanLen(v.ToSpan(), span.LimitsFrom)
		if lenErr != nil {
			return LimitsFrom[T]{}, lenErr
		}
		if n < lo {
			return LimitsFrom[T]{}, span.NewKind(span.LimitsFrom, span.Recoverable, start)
		}
		return LimitsFrom[T]{Value: v}, nil
	}
}
