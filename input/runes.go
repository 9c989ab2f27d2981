package input

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/dekarrin/parsec/span"
)

// Runes is a character-addressable cursor over a string. Iteration
// yields runes, but SplitTo/SplitOff still take a byte offset —
// str.split_at in the original is byte-indexed even for the char
// cursor, and this port preserves that: callers sum encoded rune
// lengths from Iter/IterIndices to find a valid split point, never
// split mid-codepoint.
type Runes struct {
	offset int
	value  string
}

// NewRunes wraps s as a cursor starting at offset 0.
func NewRunes(s string) *Runes {
	return &Runes{value: s}
}

// NewRunesAt wraps s as a cursor starting at the given offset.
func NewRunesAt(offset int, s string) *Runes {
	return &Runes{offset: offset, value: s}
}

func (r *Runes) Len() int     { return len(r.value) }
func (r *Runes) IsEmpty() bool { return len(r.value) == 0 }
func (r *Runes) Start() int   { return r.offset }
func (r *Runes) End() int     { return r.offset + len(r.value) }

func (r *Runes) ToSpan() span.Span { return span.Range(r.Start(), r.End()) }

func (r *Runes) ToSpanAt(at int) span.Span {
	return clampedSpan(r.Start(), at, r.End())
}

// SplitTo splits at the given byte offset.
func (r *Runes) SplitTo(at int) *Runes {
	first, last := r.value[:at], r.value[at:]
	taken := &Runes{offset: r.offset, value: first}
	r.offset += at
	r.value = last
	return taken
}

// SplitOff splits at the given byte offset.
func (r *Runes) SplitOff(at int) *Runes {
	first, last := r.value[:at], r.value[at:]
	tail := &Runes{offset: r.offset + at, value: last}
	r.value = first
	return tail
}

// Clone returns an independent copy; O(1).
func (r *Runes) Clone() *Runes {
	cp := *r
	return &cp
}

// Restore overwrites r's state with snapshot's, in place.
func (r *Runes) Restore(snapshot *Runes) {
	*r = *snapshot
}

// Iter ranges over the remaining runes in order.
func (r *Runes) Iter() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, c := range r.value {
			if !yield(c) {
				return
			}
		}
	}
}

// IterIndices ranges over (relative byte offset, rune) pairs, the
// offset being the byte index each rune starts at within this cursor.
func (r *Runes) IterIndices() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		i := 0
		for i < len(r.value) {
			c, size := utf8.DecodeRuneInString(r.value[i:])
			if !yield(i, c) {
				return
			}
			i += size
		}
	}
}

// ItemLen returns the UTF-8 encoded width of c.
func (r *Runes) ItemLen(c rune) int { return utf8.RuneLen(c) }

func (r *Runes) AsBytes() []byte { return []byte(r.value) }
func (r *Runes) AsStr() string   { return r.value }

func (r *Runes) StartsWith(needle string) (int, bool) {
	if strings.HasPrefix(r.value, needle) {
		return len(needle), true
	}
	return 0, false
}

func (r *Runes) FindIndex(needle string) (int, bool) {
	at := strings.Index(r.value, needle)
	if at < 0 {
		return 0, false
	}
	return at, true
}

func (r *Runes) String() string {
	return fmt.Sprintf("Runes(%d, %q)", r.offset, r.value)
}

var (
	_ Input[*Runes]          = (*Runes)(nil)
	_ Itemized[*Runes, rune] = (*Runes)(nil)
	_ AsBytes                = (*Runes)(nil)
	_ AsStr                  = (*Runes)(nil)
	_ StartWith[string]      = (*Runes)(nil)
	_ Find[string]           = (*Runes)(nil)
)
