package syntax

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/span"
)

// unionAll unions the spans of every element in order.
func unionAll(elems ...Spanner) span.Span {
	out := span.None()
	for _, e := range elems {
		out = out.Union(e.ToSpan())
	}
	return out
}

// Tuple2 through Tuple16 sequence fixed-arity children, each failing
// fast (propagating the first failing position's error unmodified).
// The original crate generates all 16 arities via a macro
// (parserc_derive::derive_tuple_syntax!(16)); Go has no macros, so the
// types below are written out by hand following the identical
// mechanical pattern documented once here: TupleN[T1..TN] holds one
// field per position, ToSpan unions every field in order, and TupleNOf
// runs each child parser in sequence, stopping at the first error. The
// arities past 6 were produced from this one pattern by a throwaway
// text-templating pass rather than typed out individually — the same
// "macro/template loop" the design note asks for in a language without
// variadic generics, just run once at authoring time instead of at
// build time.

type Tuple2[A, B Spanner] struct {
	First  A
	Second B
}

func (t Tuple2[A, B]) ToSpan() span.Span { return unionAll(t.First, t.Second) }

func Tuple2Of[I input.Input[I], A, B Spanner](pa Syntax[I, A], pb Syntax[I, B]) Syntax[I, Tuple2[A, B]] {
	return func(cur I) (Tuple2[A, B], error) {
		var zero Tuple2[A, B]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		return Tuple2[A, B]{First: a, Second: b}, nil
	}
}

type Tuple3[A, B, C Spanner] struct {
	First  A
	Second B
	Third  C
}

func (t Tuple3[A, B, C]) ToSpan() span.Span { return unionAll(t.First, t.Second, t.Third) }

func Tuple3Of[I input.Input[I], A, B, C Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C]) Syntax[I, Tuple3[A, B, C]] {
	return func(cur I) (Tuple3[A, B, C], error) {
		var zero Tuple3[A, B, C]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		return Tuple3[A, B, C]{First: a, Second: b, Third: c}, nil
	}
}

type Tuple4[A, B, C, D Spanner] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

func (t Tuple4[A, B, C, D]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth)
}

func Tuple4Of[I input.Input[I], A, B, C, D Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D]) Syntax[I, Tuple4[A, B, C, D]] {
	return func(cur I) (Tuple4[A, B, C, D], error) {
		var zero Tuple4[A, B, C, D]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		return Tuple4[A, B, C, D]{First: a, Second: b, Third: c, Fourth: d}, nil
	}
}

type Tuple5[A, B, C, D, E Spanner] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

func (t Tuple5[A, B, C, D, E]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth)
}

func Tuple5Of[I input.Input[I], A, B, C, D, E Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E]) Syntax[I, Tuple5[A, B, C, D, E]] {
	return func(cur I) (Tuple5[A, B, C, D, E], error) {
		var zero Tuple5[A, B, C, D, E]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		return Tuple5[A, B, C, D, E]{First: a, Second: b, Third: c, Fourth: d, Fifth: e}, nil
	}
}

type Tuple6[A, B, C, D, E, F Spanner] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

func (t Tuple6[A, B, C, D, E, F]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth)
}

func Tuple6Of[I input.Input[I], A, B, C, D, E, F Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F]) Syntax[I, Tuple6[A, B, C, D, E, F]] {
	return func(cur I) (Tuple6[A, B, C, D, E, F], error) {
		var zero Tuple6[A, B, C, D, E, F]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		return Tuple6[A, B, C, D, E, F]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f}, nil
	}
}

type Tuple7[A, B, C, D, E, F, G Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
}

func (t Tuple7[A, B, C, D, E, F, G]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh)
}

func Tuple7Of[I input.Input[I], A, B, C, D, E, F, G Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G]) Syntax[I, Tuple7[A, B, C, D, E, F, G]] {
	return func(cur I) (Tuple7[A, B, C, D, E, F, G], error) {
		var zero Tuple7[A, B, C, D, E, F, G]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		return Tuple7[A, B, C, D, E, F, G]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g}, nil
	}
}

type Tuple8[A, B, C, D, E, F, G, H Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
}

func (t Tuple8[A, B, C, D, E, F, G, H]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth)
}

func Tuple8Of[I input.Input[I], A, B, C, D, E, F, G, H Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H]) Syntax[I, Tuple8[A, B, C, D, E, F, G, H]] {
	return func(cur I) (Tuple8[A, B, C, D, E, F, G, H], error) {
		var zero Tuple8[A, B, C, D, E, F, G, H]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		return Tuple8[A, B, C, D, E, F, G, H]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h}, nil
	}
}

type Tuple9[A, B, C, D, E, F, G, H, X Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
}

func (t Tuple9[A, B, C, D, E, F, G, H, X]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth)
}

func Tuple9Of[I input.Input[I], A, B, C, D, E, F, G, H, X Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X]) Syntax[I, Tuple9[A, B, C, D, E, F, G, H, X]] {
	return func(cur I) (Tuple9[A, B, C, D, E, F, G, H, X], error) {
		var zero Tuple9[A, B, C, D, E, F, G, H, X]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		return Tuple9[A, B, C, D, E, F, G, H, X]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i}, nil
	}
}

type Tuple10[A, B, C, D, E, F, G, H, X, J Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
}

func (t Tuple10[A, B, C, D, E, F, G, H, X, J]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth)
}

func Tuple10Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J]) Syntax[I, Tuple10[A, B, C, D, E, F, G, H, X, J]] {
	return func(cur I) (Tuple10[A, B, C, D, E, F, G, H, X, J], error) {
		var zero Tuple10[A, B, C, D, E, F, G, H, X, J]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		return Tuple10[A, B, C, D, E, F, G, H, X, J]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j}, nil
	}
}

type Tuple11[A, B, C, D, E, F, G, H, X, J, K Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
	Eleventh K
}

func (t Tuple11[A, B, C, D, E, F, G, H, X, J, K]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth, t.Eleventh)
}

func Tuple11Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J, K Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J], pk Syntax[I, K]) Syntax[I, Tuple11[A, B, C, D, E, F, G, H, X, J, K]] {
	return func(cur I) (Tuple11[A, B, C, D, E, F, G, H, X, J, K], error) {
		var zero Tuple11[A, B, C, D, E, F, G, H, X, J, K]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		k, err := pk(cur)
		if err != nil {
			return zero, err
		}
		return Tuple11[A, B, C, D, E, F, G, H, X, J, K]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j, Eleventh: k}, nil
	}
}

type Tuple12[A, B, C, D, E, F, G, H, X, J, K, L Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
	Eleventh K
	Twelfth L
}

func (t Tuple12[A, B, C, D, E, F, G, H, X, J, K, L]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth, t.Eleventh, t.Twelfth)
}

func Tuple12Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J, K, L Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J], pk Syntax[I, K], pl Syntax[I, L]) Syntax[I, Tuple12[A, B, C, D, E, F, G, H, X, J, K, L]] {
	return func(cur I) (Tuple12[A, B, C, D, E, F, G, H, X, J, K, L], error) {
		var zero Tuple12[A, B, C, D, E, F, G, H, X, J, K, L]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		k, err := pk(cur)
		if err != nil {
			return zero, err
		}
		l, err := pl(cur)
		if err != nil {
			return zero, err
		}
		return Tuple12[A, B, C, D, E, F, G, H, X, J, K, L]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j, Eleventh: k, Twelfth: l}, nil
	}
}

type Tuple13[A, B, C, D, E, F, G, H, X, J, K, L, M Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
	Eleventh K
	Twelfth L
	Thirteenth M
}

func (t Tuple13[A, B, C, D, E, F, G, H, X, J, K, L, M]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth, t.Eleventh, t.Twelfth, t.Thirteenth)
}

func Tuple13Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J, K, L, M Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J], pk Syntax[I, K], pl Syntax[I, L], pm Syntax[I, M]) Syntax[I, Tuple13[A, B, C, D, E, F, G, H, X, J, K, L, M]] {
	return func(cur I) (Tuple13[A, B, C, D, E, F, G, H, X, J, K, L, M], error) {
		var zero Tuple13[A, B, C, D, E, F, G, H, X, J, K, L, M]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		k, err := pk(cur)
		if err != nil {
			return zero, err
		}
		l, err := pl(cur)
		if err != nil {
			return zero, err
		}
		m, err := pm(cur)
		if err != nil {
			return zero, err
		}
		return Tuple13[A, B, C, D, E, F, G, H, X, J, K, L, M]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j, Eleventh: k, Twelfth: l, Thirteenth: m}, nil
	}
}

type Tuple14[A, B, C, D, E, F, G, H, X, J, K, L, M, N Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
	Eleventh K
	Twelfth L
	Thirteenth M
	Fourteenth N
}

func (t Tuple14[A, B, C, D, E, F, G, H, X, J, K, L, M, N]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth, t.Eleventh, t.Twelfth, t.Thirteenth, t.Fourteenth)
}

func Tuple14Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J, K, L, M, N Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J], pk Syntax[I, K], pl Syntax[I, L], pm Syntax[I, M], pn Syntax[I, N]) Syntax[I, Tuple14[A, B, C, D, E, F, G, H, X, J, K, L, M, N]] {
	return func(cur I) (Tuple14[A, B, C, D, E, F, G, H, X, J, K, L, M, N], error) {
		var zero Tuple14[A, B, C, D, E, F, G, H, X, J, K, L, M, N]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		k, err := pk(cur)
		if err != nil {
			return zero, err
		}
		l, err := pl(cur)
		if err != nil {
			return zero, err
		}
		m, err := pm(cur)
		if err != nil {
			return zero, err
		}
		n, err := pn(cur)
		if err != nil {
			return zero, err
		}
		return Tuple14[A, B, C, D, E, F, G, H, X, J, K, L, M, N]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j, Eleventh: k, Twelfth: l, Thirteenth: m, Fourteenth: n}, nil
	}
}

type Tuple15[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
	Eleventh K
	Twelfth L
	Thirteenth M
	Fourteenth N
	Fifteenth O
}

func (t Tuple15[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth, t.Eleventh, t.Twelfth, t.Thirteenth, t.Fourteenth, t.Fifteenth)
}

func Tuple15Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J, K, L, M, N, O Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J], pk Syntax[I, K], pl Syntax[I, L], pm Syntax[I, M], pn Syntax[I, N], po Syntax[I, O]) Syntax[I, Tuple15[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O]] {
	return func(cur I) (Tuple15[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O], error) {
		var zero Tuple15[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		k, err := pk(cur)
		if err != nil {
			return zero, err
		}
		l, err := pl(cur)
		if err != nil {
			return zero, err
		}
		m, err := pm(cur)
		if err != nil {
			return zero, err
		}
		n, err := pn(cur)
		if err != nil {
			return zero, err
		}
		o, err := po(cur)
		if err != nil {
			return zero, err
		}
		return Tuple15[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j, Eleventh: k, Twelfth: l, Thirteenth: m, Fourteenth: n, Fifteenth: o}, nil
	}
}

type Tuple16[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P Spanner] struct {
	First A
	Second B
	Third C
	Fourth D
	Fifth E
	Sixth F
	Seventh G
	Eighth H
	Ninth X
	Tenth J
	Eleventh K
	Twelfth L
	Thirteenth M
	Fourteenth N
	Fifteenth O
	Sixteenth P
}

func (t Tuple16[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P]) ToSpan() span.Span {
	return unionAll(t.First, t.Second, t.Third, t.Fourth, t.Fifth, t.Sixth, t.Seventh, t.Eighth, t.Ninth, t.Tenth, t.Eleventh, t.Twelfth, t.Thirteenth, t.Fourteenth, t.Fifteenth, t.Sixteenth)
}

func Tuple16Of[I input.Input[I], A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P Spanner](pa Syntax[I, A], pb Syntax[I, B], pc Syntax[I, C], pd Syntax[I, D], pe Syntax[I, E], pf Syntax[I, F], pg Syntax[I, G], ph Syntax[I, H], pi Syntax[I, X], pj Syntax[I, J], pk Syntax[I, K], pl Syntax[I, L], pm Syntax[I, M], pn Syntax[I, N], po Syntax[I, O], pp Syntax[I, P]) Syntax[I, Tuple16[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P]] {
	return func(cur I) (Tuple16[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P], error) {
		var zero Tuple16[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P]
		a, err := pa(cur)
		if err != nil {
			return zero, err
		}
		b, err := pb(cur)
		if err != nil {
			return zero, err
		}
		c, err := pc(cur)
		if err != nil {
			return zero, err
		}
		d, err := pd(cur)
		if err != nil {
			return zero, err
		}
		e, err := pe(cur)
		if err != nil {
			return zero, err
		}
		f, err := pf(cur)
		if err != nil {
			return zero, err
		}
		g, err := pg(cur)
		if err != nil {
			return zero, err
		}
		h, err := ph(cur)
		if err != nil {
			return zero, err
		}
		i, err := pi(cur)
		if err != nil {
			return zero, err
		}
		j, err := pj(cur)
		if err != nil {
			return zero, err
		}
		k, err := pk(cur)
		if err != nil {
			return zero, err
		}
		l, err := pl(cur)
		if err != nil {
			return zero, err
		}
		m, err := pm(cur)
		if err != nil {
			return zero, err
		}
		n, err := pn(cur)
		if err != nil {
			return zero, err
		}
		o, err := po(cur)
		if err != nil {
			return zero, err
		}
		p, err := pp(cur)
		if err != nil {
			return zero, err
		}
		return Tuple16[A, B, C, D, E, F, G, H, X, J, K, L, M, N, O, P]{First: a, Second: b, Third: c, Fourth: d, Fifth: e, Sixth: f, Seventh: g, Eighth: h, Ninth: i, Tenth: j, Eleventh: k, Twelfth: l, Thirteenth: m, Fourteenth: n, Fifteenth: o, Sixteenth: p}, nil
	}
}
