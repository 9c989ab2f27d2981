package parser

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/span"
)

// Next succeeds if the next item equals item, consuming it.
func Next[I input.Itemized[I, Item], Item comparable](item Item) Parser[I, I] {
	return func(cur I) (I, error) {
		for next := range cur.Iter() {
			if next == item {
				return cur.SplitTo(cur.ItemLen(next)), nil
			}
			var zero I
			return zero, span.NewKind(span.Next, span.Recoverable, cur.ToSpanAt(1))
		}
		var zero I
		return zero, span.NewKind(span.Next, span.Incomplete, cur.ToSpan())
	}
}

// NextIf succeeds if the next item satisfies pred, consuming it.
func NextIf[I input.Itemized[I, Item], Item any](pred func(Item) bool) Parser[I, I] {
	return func(cur I) (I, error) {
		for next := range cur.Iter() {
			if pred(next) {
				return cur.SplitTo(cur.ItemLen(next)), nil
			}
			var zero I
			return zero, span.NewKind(span.NextIf, span.Recoverable, cur.ToSpanAt(1))
		}
		var zero I
		return zero, span.NewKind(span.NextIf, span.Incomplete, cur.ToSpanAt(1))
	}
}

// Keyword succeeds if the cursor starts with kw, consuming it.
func Keyword[I interface {
	input.Input[I]
	input.StartWith[string]
}](kw string) Parser[I, I] {
	return func(cur I) (I, error) {
		if n, ok := cur.StartsWith(kw); ok {
			return cur.SplitTo(n), nil
		}
		var zero I
		return zero, span.NewKind(span.Keyword, span.Recoverable, cur.ToSpanAt(len(kw)))
	}
}

// TakeUntil returns the input up to (not including) the first
// occurrence of kw. If kw never occurs, fails Recoverable.
func TakeUntil[I interface {
	input.Input[I]
	input.Find[string]
}](kw string) Parser[I, I] {
	return func(cur I) (I, error) {
		if at, ok := cur.FindIndex(kw); ok {
			return cur.SplitTo(at), nil
		}
		var zero I
		return zero, span.NewKind(span.TakeUntil, span.Recoverable, span.Range(cur.Start(), cur.Start()))
	}
}

// TakeWhile returns the longest prefix (possibly empty) for which pred
// holds for every item. Never fails.
func TakeWhile[I input.Itemized[I, Item], Item any](pred func(Item) bool) Parser[I, I] {
	return func(cur I) (I, error) {
		offset := 0
		for _, next := range cur.IterIndices() {
			if !pred(next) {
				break
			}
			offset = advanceOffset(cur, offset, next)
		}
		return cur.SplitTo(offset), nil
	}
}

// advanceOffset advances offset by item's encoded length.
func advanceOffset[I input.Itemized[I, Item], Item any](cur I, offset int, item Item) int {
	return offset + cur.ItemLen(item)
}

// TakeTill is TakeWhile with the predicate negated.
func TakeTill[I input.Itemized[I, Item], Item any](pred func(Item) bool) Parser[I, I] {
	return TakeWhile[I](func(v Item) bool { return !pred(v) })
}

// TakeWhileRangeTo returns the longest prefix, capped at n items, for
// which pred holds. Never fails. Caps at exactly n items — the
// original parserc source stops one item short (an off-by-one in its
// `items + 1 == n` break condition); this implements the corrected
// cap.
func TakeWhileRangeTo[I input.Itemized[I, Item], Item any](n int, pred func(Item) bool) Parser[I, I] {
	return func(cur I) (I, error) {
		offset := 0
		items := 0
		for _, next := range cur.IterIndices() {
			if !pred(next) {
				break
			}
			offset = advanceOffset(cur, offset, next)
			items++
			if items == n {
				break
			}
		}
		return cur.SplitTo(offset), nil
	}
}

// TakeWhileRangeFrom requires at least n items satisfying pred,
// otherwise fails Recoverable; returns every matching item (unbounded
// above).
func TakeWhileRangeFrom[I input.Itemized[I, Item], Item any](n int, pred func(Item) bool) Parser[I, I] {
	return func(cur I) (I, error) {
		offset := 0
		items := 0
		for _, next := range cur.IterIndices() {
			if !pred(next) {
				break
			}
			offset = advanceOffset(cur, offset, next)
			items++
		}
		if items < n {
			var zero I
			return zero, span.NewKind(span.TakeWhileFrom, span.Recoverable, span.Range(cur.Start(), cur.Start()+offset))
		}
		return cur.SplitTo(offset), nil
	}
}

// TakeWhileRange requires at least lo items and takes at most hi-1 items
// (half-open [lo, hi)) satisfying pred; fails Recoverable if fewer than
// lo match.
func TakeWhileRange[I input.Itemized[I, Item], Item any](lo, hi int, pred func(Item) bool) Parser[I, I] {
	return func(cur I) (I, error) {
		offset := 0
		items := 0
		for _, next := range cur.IterIndices() {
			if !pred(next) {
				break
			}
			offset = advanceOffset(cur, offset, next)
			items++
			if items+1 == hi {
				break
			}
		}
		if items < lo {
			var zero I
			return zero, span.NewKind(span.TakeWhileRange, span.Recoverable, cur.ToSpanAt(offset))
		}
		return cur.SplitTo(offset), nil
	}
}
