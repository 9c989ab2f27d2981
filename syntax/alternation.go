package syntax

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

// Alternation tries a First syntax and falls back to a Second, the Go
// rendering of the original's `Or<F, S>` two-variant enum (renamed to
// avoid colliding with parser.Or, the combinator it's built from).
type Alternation[F, S Spanner] struct {
	First  *F
	Second *S
}

func (a Alternation[F, S]) ToSpan() span.Span {
	if a.First != nil {
		return (*a.First).ToSpan()
	}
	if a.Second != nil {
		return (*a.Second).ToSpan()
	}
	return span.None()
}

// AlternationOf builds a Syntax that tries pFirst; on any non-fatal
// failure it tries pSecond against the original, unconsumed cursor,
// and that attempt's result (success or failure) is final.
func AlternationOf[I input.Input[I], F, S Spanner](pFirst Syntax[I, F], pSecond Syntax[I, S]) Syntax[I, Alternation[F, S]] {
	firstOk := parser.Ok[I, F](AsParser(pFirst))
	return func(cur I) (Alternation[F, S], error) {
		first, err := firstOk(cur)
		if err != nil {
			return Alternation[F, S]{}, err
		}
		if first != nil {
			return Alternation[F, S]{First: first}, nil
		}
		second, err := pSecond(cur)
		if err != nil {
			return Alternation[F, S]{}, err
		}
		return Alternation[F, S]{Second: &second}, nil
	}
}
