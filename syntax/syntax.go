// Package syntax implements the Syntax contract and the generic node
// types a grammar is built from: optional/boxed/repeated children,
// tuples, delimited groups, punctuated lists, two-way alternation, and
// length-limited repetition. Grounded on
// _examples/original_source/crates/parserc/src/syntax.rs.
package syntax

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

// Spanner is anything that can report the source span it covers. Every
// syntax node type implements it; it stands in for the Rust source's
// `Syntax::to_span` being a trait method on the node itself.
type Spanner interface {
	ToSpan() span.Span
}

// Syntax is a Parser whose product knows its own span — the Go
// rendering of the original's `Syntax<I>` trait, which paired a static
// `parse` constructor with a `to_span` instance method. Composing
// grammars as values (per the library's own design goal) reads more
// naturally as "a parser with an extra capability" than as a trait
// every node type must separately implement parse/to_span for, so node
// constructors below are ordinary functions building a Syntax value,
// not methods required on T.
type Syntax[I input.Input[I], T Spanner] parser.Parser[I, T]

// AsParser recovers the underlying parser.Parser value, for composing
// a Syntax with the plain combinators in package parser.
func AsParser[I input.Input[I], T Spanner](s Syntax[I, T]) parser.Parser[I, T] {
	return parser.Parser[I, T](s)
}

// Optional wraps a child that may be absent.
type Optional[T Spanner] struct {
	Value *T
}

func (o Optional[T]) ToSpan() span.Span {
	if o.Value == nil {
		return span.None()
	}
	return (*o.Value).ToSpan()
}

// OptionalOf builds a Syntax that tries inner once; on any non-fatal
// failure the result is an absent Optional rather than an error.
func OptionalOf[I input.Input[I], T Spanner](inner Syntax[I, T]) Syntax[I, Optional[T]] {
	opt := parser.Ok[I, T](AsParser(inner))
	return func(cur I) (Optional[T], error) {
		v, err := opt(cur)
		if err != nil {
			return Optional[T]{}, err
		}
		return Optional[T]{Value: v}, nil
	}
}

// Boxed is an indirection point for recursive grammars: the child is
// always present, just heap-allocated so the node type can reference
// itself.
type Boxed[T Spanner] struct {
	Value *T
}

func (b Boxed[T]) ToSpan() span.Span { return (*b.Value).ToSpan() }

// BoxedOf builds a Syntax that always runs inner and stores its result
// behind a pointer.
func BoxedOf[I input.Input[I], T Spanner](inner Syntax[I, T]) Syntax[I, Boxed[T]] {
	return func(cur I) (Boxed[T], error) {
		v, err := inner(cur)
		if err != nil {
			return Boxed[T]{}, err
		}
		return Boxed[T]{Value: &v}, nil
	}
}

// Slice is zero or more repetitions of a child syntax, the Go stand-in
// for the original's `Vec<T>` impl.
type Slice[T Spanner] []T

func (s Slice[T]) ToSpan() span.Span {
	if len(s) == 0 {
		return span.None()
	}
	return s[0].ToSpan().Union(s[len(s)-1].ToSpan())
}

// SliceOf builds a Syntax that repeats inner until it fails
// non-fatally, collecting every success. An empty Slice is a valid
// result; SliceOf fails only when inner fails Fatally.
func SliceOf[I input.Input[I], T Spanner](inner Syntax[I, T]) Syntax[I, Slice[T]] {
	opt := parser.Ok[I, T](AsParser(inner))
	return func(cur I) (Slice[T], error) {
		var out Slice[T]
		for {
			v, err := opt(cur)
			if err != nil {
				return out, err
			}
			if v == nil {
				return out, nil
			}
			out = append(out, *v)
		}
	}
}
