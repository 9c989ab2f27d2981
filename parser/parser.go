// Package parser implements the generic Parser type, its combinator
// adapters, and the primitive recognizers that terminate a grammar
// down at the cursor level. Grounded on
// _examples/original_source/crates/parserc/src/parser.rs and c.rs.
package parser

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/span"
)

// Parser parses a product of type O out of a cursor of type I,
// mutating the cursor in place on success and leaving it untouched (by
// convention — see Ok and Or) on recoverable failure.
//
// I is always a pointer cursor type (*input.Bytes, *input.Runes, or a
// caller's own cursor) satisfying input.Input[I], so mutating through
// the interface requires no extra indirection: a Parser receives the
// cursor value directly and calls its SplitTo/SplitOff methods.
type Parser[I input.Input[I], O any] func(cur I) (O, error)

// Map converts a successful parse's output with f.
func Map[I input.Input[I], A, B any](p Parser[I, A], f func(A) B) Parser[I, B] {
	return func(cur I) (B, error) {
		a, err := p(cur)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	}
}

// MapErr converts a failed parse's error with f.
func MapErr[I input.Input[I], O any](p Parser[I, O], f func(error) error) Parser[I, O] {
	return func(cur I) (O, error) {
		o, err := p(cur)
		if err != nil {
			return o, f(err)
		}
		return o, nil
	}
}

// Ok converts a non-fatal failure into a nil result instead of
// propagating the error, restoring the cursor to where it stood before
// p ran. A Fatal error still propagates.
func Ok[I input.Input[I], O any](p Parser[I, O]) Parser[I, *O] {
	return func(cur I) (*O, error) {
		snapshot := cur.Clone()
		out, err := p(cur)
		if err == nil {
			return &out, nil
		}
		if pe, ok := err.(span.ParseError); ok && pe.ControlFlowOf() == span.Fatal {
			return nil, err
		}
		cur.Restore(snapshot)
		return nil, nil
	}
}

// Fatal promotes every error p produces to ControlFlow Fatal via
// ParseError.IntoFatal, aborting any enclosing Or/Ok instead of letting
// it backtrack.
func Fatal[I input.Input[I], O any](p Parser[I, O]) Parser[I, O] {
	return func(cur I) (O, error) {
		out, err := p(cur)
		if err == nil {
			return out, nil
		}
		if pe, ok := err.(span.ParseError); ok {
			return out, pe.IntoFatal()
		}
		return out, err
	}
}

// Boxed is Map(p, func(v O) *O { return &v }), giving recursive syntax
// definitions an indirection point the way the spec's node graph needs
// one to close a cycle.
func Boxed[I input.Input[I], O any](p Parser[I, O]) Parser[I, *O] {
	return Map(p, func(v O) *O { return &v })
}

// Or tries a on a snapshot; on success the snapshot is committed back
// to the live cursor. On any non-fatal failure of a, b runs against the
// original, untouched cursor and its result (success or failure) is
// what Or returns. A Fatal failure from a aborts immediately without
// trying b.
func Or[I input.Input[I], O any](a, b Parser[I, O]) Parser[I, O] {
	return func(cur I) (O, error) {
		try := cur.Clone()
		out, err := a(try)
		if err == nil {
			cur.Restore(try)
			return out, nil
		}
		if pe, ok := err.(span.ParseError); ok && pe.ControlFlowOf() == span.Fatal {
			var zero O
			return zero, err
		}
		return b(cur)
	}
}
