package syntax

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

// PunctuatedPair is one (item, separator) pair inside a Punctuated
// sequence.
type PunctuatedPair[T, P any] struct {
	Item T
	Punc P
}

// Punctuated is a sequence of T separated by P. Tail holds a final T
// that no separator followed; when the input ends with a separator and
// no T after it, that separator is consumed as the last pair's Punc and
// Tail is nil.
type Punctuated[T, P Spanner] struct {
	Pairs []PunctuatedPair[T, P]
	Tail  *T
}

func (p Punctuated[T, P]) ToSpan() span.Span {
	out := span.None()
	for _, pair := range p.Pairs {
		out = out.Union(pair.Item.ToSpan()).Union(pair.Punc.ToSpan())
	}
	if p.Tail != nil {
		out = out.Union((*p.Tail).ToSpan())
	}
	return out
}

// Len returns the number of T items captured, pairs and tail combined.
func (p Punctuated[T, P]) Len() int {
	n := len(p.Pairs)
	if p.Tail != nil {
		n++
	}
	return n
}

// PunctuatedOf builds a Syntax alternating pItem/pPunc until either
// fails to match, matching the original's loop exactly: pPunc is only
// tried right after a successful pItem, so a failed pPunc attempt
// leaves the just-parsed item as Tail, while a separator that no item
// follows stays in the last pair.
func PunctuatedOf[I input.Input[I], T, P Spanner](pItem Syntax[I, T], pPunc Syntax[I, P]) Syntax[I, Punctuated[T, P]] {
	itemOk := parser.Ok[I, T](AsParser(pItem))
	puncOk := parser.Ok[I, P](AsParser(pPunc))
	return func(cur I) (Punctuated[T, P], error) {
		var pairs []PunctuatedPair[T, P]
		for {
			t, err := itemOk(cur)
			if err != nil {
				return Punctuated[T, P]{}, err
			}
			if t == nil {
				return Punctuated[T, P]{Pairs: pairs}, nil
			}
			p, err := puncOk(cur)
			if err != nil {
				return Punctuated[T, P]{}, err
			}
			if p == nil {
				return Punctuated[T, P]{Pairs: pairs, Tail: t}, nil
			}
			pairs = append(pairs, PunctuatedPair[T, P]{Item: *t, Punc: *p})
		}
	}
}
