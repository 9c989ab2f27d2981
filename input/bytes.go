package input

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/dekarrin/parsec/span"
)

// Bytes is a byte-addressable cursor over a string. The zero value is
// not usable; build one with NewBytes.
type Bytes struct {
	offset int
	value  string
}

// NewBytes wraps s as a cursor starting at offset 0.
func NewBytes(s string) *Bytes {
	return &Bytes{value: s}
}

// NewBytesAt wraps s as a cursor starting at the given offset, for
// building a sub-cursor of an already-offset source.
func NewBytesAt(offset int, s string) *Bytes {
	return &Bytes{offset: offset, value: s}
}

func (b *Bytes) Len() int     { return len(b.value) }
func (b *Bytes) IsEmpty() bool { return len(b.value) == 0 }
func (b *Bytes) Start() int   { return b.offset }
func (b *Bytes) End() int     { return b.offset + len(b.value) }

func (b *Bytes) ToSpan() span.Span { return span.Range(b.Start(), b.End()) }

func (b *Bytes) ToSpanAt(at int) span.Span {
	return clampedSpan(b.Start(), at, b.End())
}

// SplitTo splits at the given byte offset. Panics if at is out of
// [0, Len()] — callers derive at from this cursor's own iterator, per
// the well-formedness rule primitives rely on.
func (b *Bytes) SplitTo(at int) *Bytes {
	first, last := b.value[:at], b.value[at:]
	taken := &Bytes{offset: b.offset, value: first}
	b.offset += at
	b.value = last
	return taken
}

// SplitOff splits at the given byte offset, returning the tail and
// truncating the receiver to the head.
func (b *Bytes) SplitOff(at int) *Bytes {
	first, last := b.value[:at], b.value[at:]
	tail := &Bytes{offset: b.offset + at, value: last}
	b.value = first
	return tail
}

// Clone returns an independent copy; O(1), shares the backing string.
func (b *Bytes) Clone() *Bytes {
	cp := *b
	return &cp
}

// Restore overwrites b's state with snapshot's, in place.
func (b *Bytes) Restore(snapshot *Bytes) {
	*b = *snapshot
}

// Iter ranges over the remaining bytes in order.
func (b *Bytes) Iter() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for i := 0; i < len(b.value); i++ {
			if !yield(b.value[i]) {
				return
			}
		}
	}
}

// IterIndices ranges over (relative byte offset, byte) pairs.
func (b *Bytes) IterIndices() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < len(b.value); i++ {
			if !yield(i, b.value[i]) {
				return
			}
		}
	}
}

// ItemLen returns 1 for any byte.
func (b *Bytes) ItemLen(byte) int { return 1 }

func (b *Bytes) AsBytes() []byte { return []byte(b.value) }
func (b *Bytes) AsStr() string   { return b.value }

func (b *Bytes) StartsWith(needle string) (int, bool) {
	if len(b.value) >= len(needle) && b.value[:len(needle)] == needle {
		return len(needle), true
	}
	return 0, false
}

func (b *Bytes) StartsWithBytes(needle []byte) (int, bool) {
	return b.StartsWith(string(needle))
}

func (b *Bytes) FindIndex(needle string) (int, bool) {
	at := bytes.Index([]byte(b.value), []byte(needle))
	if at < 0 {
		return 0, false
	}
	return at, true
}

func (b *Bytes) FindIndexBytes(needle []byte) (int, bool) {
	at := bytes.Index([]byte(b.value), needle)
	if at < 0 {
		return 0, false
	}
	return at, true
}

func (b *Bytes) String() string {
	return fmt.Sprintf("Bytes(%d, %q)", b.offset, b.value)
}

var (
	_ Input[*Bytes]             = (*Bytes)(nil)
	_ Itemized[*Bytes, byte]    = (*Bytes)(nil)
	_ AsBytes                   = (*Bytes)(nil)
	_ AsStr                     = (*Bytes)(nil)
	_ StartWith[string]         = (*Bytes)(nil)
	_ Find[string]              = (*Bytes)(nil)
)
