// Package input defines the cursor contract parsec's combinators are
// generic over, and the two concrete cursors built on it: a byte
// cursor and a rune (character) cursor. Both are a thin, immutable
// (offset, string) pair so cloning — the sole backtracking primitive
// the rest of the module relies on — is O(1).
//
// Naming and the snapshot/restore shape are grounded on
// internal/ictiobus/lex/reader.go's regexReader, which offered the
// same "mark a position, rewind to it" contract over a buffered
// reader; this package trades that buffering for a plain string slice
// so Clone is a value copy instead of a buffer replay.
package input

import (
	"iter"

	"github.com/dekarrin/parsec/span"
)

// Input is the contract every cursor type satisfies. Self is the
// concrete cursor type itself (Go's stand-in for the corpus's
// associated-type pattern): SplitTo, SplitOff and Clone all return
// that same concrete type, never an interface value, so callers never
// need a type assertion to get back to concrete cursor methods like
// iteration.
type Input[Self any] interface {
	// Len returns the number of bytes remaining (for a rune cursor too,
	// so that End() - Start() == Len()).
	Len() int
	// IsEmpty reports whether Len() == 0.
	IsEmpty() bool
	// Start returns this cursor's offset into the original source.
	Start() int
	// End returns Start() + the byte length of the remaining input.
	End() int
	// ToSpan returns the span covering the whole remaining input.
	ToSpan() span.Span
	// ToSpanAt returns the span from Start() to at bytes further on,
	// clamped to End().
	ToSpanAt(at int) span.Span
	// SplitTo splits at the given byte offset, returning the prefix
	// [0, at) and advancing the receiver to [at, len).
	SplitTo(at int) Self
	// SplitOff splits at the given byte offset, returning the suffix
	// [at, len) and truncating the receiver to [0, at).
	SplitOff(at int) Self
	// Clone returns an independent copy sharing the same underlying
	// bytes; O(1).
	Clone() Self
	// Restore overwrites the receiver's state with snapshot's,
	// in place. Used by Ok/Or to rewind a cursor after a failed
	// speculative parse, since Self is a pointer type and a plain
	// local reassignment inside a generic function would not be
	// visible to the caller.
	Restore(snapshot Self)
}

// Itemized extends Input with item-level iteration. Item is byte for
// Bytes, rune for Runes.
type Itemized[Self any, Item any] interface {
	Input[Self]
	// Iter ranges over items in order.
	Iter() iter.Seq[Item]
	// IterIndices ranges over (byte offset, item) pairs, the byte
	// offset always being relative to this cursor's own start.
	IterIndices() iter.Seq2[int, Item]
	// ItemLen returns the encoded byte length of a single item (1 for
	// a byte cursor, the UTF-8 encoded width for a rune cursor).
	ItemLen(Item) int
}

// AsBytes exposes a cursor's remaining input as a byte slice.
type AsBytes interface {
	AsBytes() []byte
}

// AsStr exposes a cursor's remaining input as a string.
type AsStr interface {
	AsStr() string
}

// StartWith reports whether a cursor's remaining input begins with
// needle, and if so the matched byte length.
type StartWith[Needle any] interface {
	StartsWith(needle Needle) (n int, ok bool)
}

// Find reports the byte offset of the first occurrence of needle in a
// cursor's remaining input.
type Find[Needle any] interface {
	FindIndex(needle Needle) (at int, ok bool)
}

func clampedSpan(start, at, end int) span.Span {
	return span.Range(start, start+min(at, end-start))
}
