package meta

import (
	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

// enumOptions is DeriveEnum's item-level configuration. Sum types only
// support `semantic`, per spec.md §4.5 — keyword/take_while/char are
// rejected there since a sum type's whole-type match is "which variant
// matched", not a single primitive.
type enumOptions struct {
	semantic string
}

// EnumOption configures a DeriveEnum call.
type EnumOption func(*enumOptions)

// WithEnumSemantic registers a refinement applied to whichever variant
// constructor wins, after its snapshot is committed. A refinement
// failure is returned as-is; the committed consumption is not undone.
func WithEnumSemantic(name string) EnumOption {
	return func(o *enumOptions) { o.semantic = name }
}

// DeriveEnum builds a sum-type parser from a set of variant
// constructors, tried in order against a snapshot of the cursor. The
// first to succeed wins and its snapshot is committed; a Fatal failure
// from any variant aborts the whole alternation immediately (no later
// variant is tried); if every variant fails non-fatally, DeriveEnum
// reports a Kind.Syntax failure named after typeName. opts may be nil;
// WithEnumSemantic wraps the winning variant's value before it's
// returned.
//
// Grounded on _examples/original_source/crates/parserc/src/syntax.rs's
// `Or<F, S>` two-variant enum, generalized to N variants — the
// original's derive macro synthesizes exactly this try-in-order dance
// for a Rust enum's variants; DeriveEnum is its N-ary, non-macro
// equivalent.
func DeriveEnum[I input.Input[I], T any](typeName string, opts []EnumOption, ctors ...func(cur I) (T, error)) parser.Parser[I, T] {
	var cfg enumOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(cur I) (T, error) {
		for _, ctor := range ctors {
			try := cur.Clone()
			out, err := ctor(try)
			if err == nil {
				cur.Restore(try)
				if cfg.semantic != "" {
					sem, lookErr := lookupSemantic[T](cfg.semantic)
					if lookErr != nil {
						return out, lookErr
					}
					return sem(out)
				}
				return out, nil
			}
			if pe, ok := err.(span.ParseError); ok && pe.ControlFlowOf() == span.Fatal {
				var zero T
				return zero, err
			}
		}
		var zero T
		return zero, span.NewNamedKind(span.Syntax, typeName, span.Recoverable, cur.ToSpan())
	}
}

// leftRecursionKey identifies a (type name, cursor start offset) pair
// currently being parsed, so GuardLeftRecursion can detect reentrancy
// without any position advance. The check applies only to parsers
// wrapped explicitly with GuardLeftRecursion; the `parse:"..."` field
// tag has no option that applies it.
type leftRecursionKey struct {
	typeName string
	pos      int
}

var leftRecursionDepth = map[leftRecursionKey]int{}

// GuardLeftRecursion wraps p so that re-entering it at the same cursor
// position (no progress made between entries) raises
// Kind.LeftRecursion(Fatal, ...) instead of looping forever. Not
// applied automatically — spec.md explicitly treats automatic
// left-recursion resolution as out of scope; this only detects it.
func GuardLeftRecursion[I input.Input[I], O any](typeName string, p parser.Parser[I, O]) parser.Parser[I, O] {
	return func(cur I) (O, error) {
		key := leftRecursionKey{typeName: typeName, pos: cur.Start()}
		leftRecursionDepth[key]++
		defer func() { leftRecursionDepth[key]-- }()

		if leftRecursionDepth[key] > 1 {
			var zero O
			return zero, span.NewKind(span.LeftRecursion, span.Fatal, cur.ToSpan())
		}

		return p(cur)
	}
}
