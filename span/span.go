// Package span implements the location and error-taxonomy types shared
// by every layer of parsec: the Span value parsers attach to tokens and
// syntax nodes, the ControlFlow tag that distinguishes a backtrackable
// failure from a committed one, and the closed Kind enum of primitive
// parse errors.
package span

import "fmt"

// SpanKind is the kind of a Span. A Span is one of four shapes, matching
// what a cursor can describe about its position in the source: nothing
// at all, a bounded range, an open-ended range, or a range with an
// implicit start.
type SpanKind int

const (
	// KindNone carries no position information at all.
	KindNone SpanKind = iota
	// KindRange is a bounded [Start, End) range.
	KindRange
	// KindRangeFrom is an open-ended [Start, ...) range.
	KindRangeFrom
	// KindRangeTo is a range with an implicit (zero) start, [0, End).
	KindRangeTo
)

// Span locates a token or syntax node in its source. The zero value is
// Span{K: KindNone} and carries no information.
type Span struct {
	K     SpanKind
	Start int
	End   int
}

// None returns the empty span.
func None() Span { return Span{K: KindNone} }

// Range returns a bounded span over [start, end).
func Range(start, end int) Span { return Span{K: KindRange, Start: start, End: end} }

// RangeFrom returns an open-ended span starting at start.
func RangeFrom(start int) Span { return Span{K: KindRangeFrom, Start: start} }

// RangeTo returns a span with implicit start 0, ending at end.
func RangeTo(end int) Span { return Span{K: KindRangeTo, End: end} }

// IsNone reports whether s carries no position information.
func (s Span) IsNone() bool { return s.K == KindNone }

func (s Span) String() string {
	switch s.K {
	case KindRange:
		return fmt.Sprintf("%d..%d", s.Start, s.End)
	case KindRangeFrom:
		return fmt.Sprintf("%d..", s.Start)
	case KindRangeTo:
		return fmt.Sprintf("..%d", s.End)
	default:
		return "<none>"
	}
}

// Union returns the smallest span covering both s and other. A None
// operand is absorbed: the other operand's span wins outright. Mixing
// a RangeFrom/RangeTo with anything that supplies the missing bound
// resolves to a Range.
func (s Span) Union(other Span) Span {
	if s.IsNone() {
		return other
	}
	if other.IsNone() {
		return s
	}

	start, haveStart := s.lowerBound()
	oStart, oHaveStart := other.lowerBound()
	end, haveEnd := s.upperBound()
	oEnd, oHaveEnd := other.upperBound()

	switch {
	case haveStart && oHaveStart:
		if oStart < start {
			start = oStart
		}
	case oHaveStart:
		start = oStart
		haveStart = true
	}

	switch {
	case haveEnd && oHaveEnd:
		if oEnd > end {
			end = oEnd
		}
	case oHaveEnd:
		end = oEnd
		haveEnd = true
	}

	switch {
	case haveStart && haveEnd:
		return Range(start, end)
	case haveStart:
		return RangeFrom(start)
	case haveEnd:
		return RangeTo(end)
	default:
		return None()
	}
}

func (s Span) lowerBound() (int, bool) {
	switch s.K {
	case KindRange, KindRangeFrom:
		return s.Start, true
	default:
		return 0, false
	}
}

func (s Span) upperBound() (int, bool) {
	switch s.K {
	case KindRange, KindRangeTo:
		return s.End, true
	default:
		return 0, false
	}
}

// Len returns the number of items s covers and whether that count is
// determinable. KindNone has length 0; KindRange and KindRangeTo both
// have a defined length; KindRangeFrom does not (its end is unbounded)
// and reports false.
func (s Span) Len() (int, bool) {
	switch s.K {
	case KindNone:
		return 0, true
	case KindRange:
		return s.End - s.Start, true
	case KindRangeTo:
		return s.End, true
	default:
		return 0, false
	}
}

// Before returns a zero-length span immediately preceding s: one byte
// before s's start, saturating at 0. Spans with no defined start
// (KindNone, KindRangeTo) are returned unchanged, matching the
// original parserc behavior.
func (s Span) Before() Span {
	switch s.K {
	case KindRange, KindRangeFrom:
		if s.Start > 0 {
			return Range(s.Start-1, s.Start-1)
		}
		return Range(s.Start, s.Start)
	default:
		return s
	}
}
