package meta

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/dekarrin/parsec/input"
	"github.com/dekarrin/parsec/parser"
	"github.com/dekarrin/parsec/span"
)

// fieldOptions is the parsed form of one field's `parse:"..."` tag.
// Grounded on _examples/original_source/crates/derive/src/syntax.rs's
// ItemConfig, field-scoped rather than item-scoped: `crucial`,
// `map_err`, `keyword`, `take_while` and `parser` are all mutually
// meaningful the same way the original's item-level options are, just
// applied per struct field instead of to the whole product.
type fieldOptions struct {
	Crucial   bool
	MapErr    string
	Keyword   string
	TakeWhile string
	ParserRef string
}

func parseFieldTag(tag string) fieldOptions {
	var opt fieldOptions
	if tag == "" {
		return opt
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, val, hasVal := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "crucial":
			opt.Crucial = true
		case "map_err":
			if hasVal {
				opt.MapErr = val
			}
		case "keyword":
			if hasVal {
				opt.Keyword = val
			}
		case "take_while":
			if hasVal {
				opt.TakeWhile = val
			}
		case "parser":
			if hasVal {
				opt.ParserRef = val
			}
		}
	}
	return opt
}

// fieldParser is a type-erased parser.Parser[I, any] bound to one
// struct field, built once per (cursor type, struct type) pair and
// cached.
type fieldParser[I input.Input[I]] struct {
	name    string
	index   int
	options fieldOptions
	parse   func(cur I) (reflect.Value, error)
}

var derivedCache sync.Map // key: fieldParserKey{cursor, struct type} -> *derivedStruct[I]

type derivedStruct[I input.Input[I]] struct {
	typ    reflect.Type
	fields []fieldParser[I]
}

// fieldTypeParsers resolves a struct field's own declared type to a
// parser via reflection: the field type must itself be registered
// (via RegisterFieldParser) or be the cursor type I, in which case
// it's parsed with the field's keyword/take_while option instead.
var fieldTypeParsers sync.Map // key: fieldParserKey -> func(I) (reflect.Value, error)

// RegisterFieldParser teaches meta.Derive how to parse a named Go type
// when it appears undecorated as a struct field (no keyword/take_while
// /parser tag option). T is typically another meta.Derive'd type, or a
// hand-written syntax.Syntax wrapped to return (T, error).
func RegisterFieldParser[I input.Input[I], T any](fn func(cur I) (T, error)) {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil {
		t = reflect.TypeOf(&zero).Elem()
	}
	key := fieldParserKey{cursor: reflect.TypeOf((*I)(nil)).Elem(), field: t}
	fieldTypeParsers.Store(key, func(cur I) (reflect.Value, error) {
		v, err := fn(cur)
		return reflect.ValueOf(v), err
	})
}

type fieldParserKey struct {
	cursor reflect.Type
	field  reflect.Type
}

// itemOptions is the parsed form of Derive's whole-type options, the
// item-scoped counterpart to fieldOptions. Struct tags have no slot for
// "the whole type" (a tag only attaches to a field), so these arrive as
// functional options passed to Derive itself instead.
type itemOptions struct {
	mapErr    ErrMapper
	keyword   string
	takeWhile string
	char      rune
	hasChar   bool
	semantic  string
}

// ItemOption configures the whole product type a Derive call builds,
// mirroring _examples/original_source/crates/derive/src/syntax.rs's
// ItemConfig applied at the type level instead of per field.
type ItemOption func(*itemOptions)

// WithMapErr wraps the entire Derive'd parse in a registered-at-call-
// site error transform.
func WithMapErr(f ErrMapper) ItemOption {
	return func(o *itemOptions) { o.mapErr = f }
}

// WithKeyword makes the whole product type parse exactly keyword(lit);
// its value is the consumed cursor slice, so T must be the cursor type
// I. Mutually exclusive with WithTakeWhile/WithChar/WithSemantic.
func WithKeyword(lit string) ItemOption {
	return func(o *itemOptions) { o.keyword = lit }
}

// WithTakeWhile makes the whole product type parse
// take_while_range_from(1, pred), pred resolved by name through
// RegisterPredicate. Mutually exclusive with WithKeyword/WithChar/
// WithSemantic.
func WithTakeWhile(name string) ItemOption {
	return func(o *itemOptions) { o.takeWhile = name }
}

// WithChar makes the whole product type parse next(c). Mutually
// exclusive with WithKeyword/WithTakeWhile/WithSemantic.
func WithChar(c rune) ItemOption {
	return func(o *itemOptions) { o.char = c; o.hasChar = true }
}

// WithSemantic applies a registered refinement function to the fully
// field-parsed value before Derive returns it. Mutually exclusive with
// WithKeyword/WithTakeWhile/WithChar, which skip field-by-field parsing
// entirely.
func WithSemantic(name string) ItemOption {
	return func(o *itemOptions) { o.semantic = name }
}

func (o itemOptions) wholeProductMode() bool {
	return o.keyword != "" || o.takeWhile != "" || o.hasChar
}

// Derive builds (and memoizes) a parser.Parser[I, T] for struct type T
// by walking its fields via reflection and reading each `parse:"..."`
// tag. T must be a struct type; every field either carries a
// `keyword`/`take_while` option (and is then of the cursor type I), a
// `parser=name` option, or has a type itself previously taught to meta
// via RegisterFieldParser. A `parser=name` field is parsed with the
// parser RegisterFieldParser registered for the field's own type; the
// name itself is not looked up.
//
// opts configures the whole product type rather than a single field:
// WithKeyword/WithTakeWhile/WithChar replace field-by-field derivation
// entirely with a single primitive match (T must then be the cursor
// type I), WithSemantic refines the field-parsed value, and WithMapErr
// wraps whatever error the parse produces.
func Derive[I interface {
	input.Itemized[I, rune]
	input.StartWith[string]
}, T any](opts ...ItemOption) parser.Parser[I, T] {
	var cfg itemOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.wholeProductMode() {
		return deriveWholeProduct[I, T](cfg)
	}

	var zero T
	t := reflect.TypeOf(zero)

	ds := buildDerivedStruct[I, T](t)

	return func(cur I) (T, error) {
		var out T
		v := reflect.ValueOf(&out).Elem()

		committed := false
		for _, fp := range ds.fields {
			fv, err := fp.parse(cur)
			if err != nil {
				if committed {
					if pe, ok := err.(span.ParseError); ok {
						err = pe.IntoFatal()
					}
				}
				if fp.options.MapErr != "" {
					if m, lookErr := lookupErrMapper(fp.options.MapErr); lookErr == nil {
						err = m(err)
					}
				}
				if cfg.mapErr != nil {
					err = cfg.mapErr(err)
				}
				return out, err
			}
			v.Field(fp.index).Set(fv)
			if fp.options.Crucial {
				committed = true
			}
		}

		if cfg.semantic != "" {
			sem, lookErr := lookupSemantic[T](cfg.semantic)
			if lookErr != nil {
				return out, lookErr
			}
			refined, semErr := sem(out)
			if semErr != nil {
				if cfg.mapErr != nil {
					semErr = cfg.mapErr(semErr)
				}
				return refined, semErr
			}
			out = refined
		}

		return out, nil
	}
}

// deriveWholeProduct implements Derive's item-level keyword/take_while
// /char modes: the whole product is one primitive match against the
// cursor rather than a field walk, so T must itself be the cursor type
// I — the same constraint a field-level keyword/take_while tag imposes
// on its own field.
func deriveWholeProduct[I interface {
	input.Itemized[I, rune]
	input.StartWith[string]
}, T any](cfg itemOptions) parser.Parser[I, T] {
	var match func(cur I) (I, error)
	switch {
	case cfg.keyword != "":
		match = parser.Keyword[I](cfg.keyword)
	case cfg.takeWhile != "":
		match = func(cur I) (I, error) {
			pred, err := lookupPredicate(cfg.takeWhile)
			if err != nil {
				var zero I
				return zero, err
			}
			return parser.TakeWhileRangeFrom[I, rune](1, pred)(cur)
		}
	case cfg.hasChar:
		match = parser.Next[I, rune](cfg.char)
	}

	return func(cur I) (T, error) {
		var zero T

		m, err := match(cur)
		if err != nil {
			if cfg.mapErr != nil {
				err = cfg.mapErr(err)
			}
			return zero, err
		}

		out, ok := any(m).(T)
		if !ok {
			panic(fmt.Sprintf("meta: Derive item-level keyword/take_while/char option requires T to be the cursor type %s", reflect.TypeOf((*I)(nil)).Elem()))
		}

		return out, nil
	}
}

func buildDerivedStruct[I interface {
	input.Itemized[I, rune]
	input.StartWith[string]
}, T any](t reflect.Type) *derivedStruct[I] {
	cursorType := reflect.TypeOf((*I)(nil)).Elem()
	cacheKey := fieldParserKey{cursor: cursorType, field: t}

	if cached, ok := derivedCache.Load(cacheKey); ok {
		return cached.(*derivedStruct[I])
	}

	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("meta: Derive requires a struct type, got %s", t.Kind()))
	}

	ds := &derivedStruct[I]{typ: t}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		opt := parseFieldTag(sf.Tag.Get("parse"))

		fp := fieldParser[I]{name: sf.Name, index: i, options: opt}

		if (opt.Keyword != "" || opt.TakeWhile != "") && sf.Type != cursorType {
			panic(fmt.Sprintf("meta: field %q has a keyword/take_while option but type %s, not the cursor type %s", sf.Name, sf.Type, cursorType))
		}

		switch {
		case opt.Keyword != "":
			fp.parse = func(cur I) (reflect.Value, error) {
				m, err := parser.Keyword[I](opt.Keyword)(cur)
				return reflect.ValueOf(m), err
			}
		case opt.TakeWhile != "":
			predName := opt.TakeWhile
			fp.parse = func(cur I) (reflect.Value, error) {
				pred, lookErr := lookupPredicate(predName)
				if lookErr != nil {
					return reflect.Value{}, lookErr
				}
				m, err := parser.TakeWhileRangeFrom[I, rune](1, pred)(cur)
				return reflect.ValueOf(m), err
			}
		case opt.ParserRef != "":
			key := fieldParserKey{cursor: cursorType, field: sf.Type}
			raw, ok := fieldTypeParsers.Load(key)
			if !ok {
				panic(fmt.Sprintf("meta: no parser registered for field %q referencing %q", sf.Name, opt.ParserRef))
			}
			fp.parse = raw.(func(I) (reflect.Value, error))
		default:
			if sf.Type == cursorType {
				fp.parse = func(cur I) (reflect.Value, error) {
					return reflect.ValueOf(cur), nil
				}
				break
			}
			key := fieldParserKey{cursor: cursorType, field: sf.Type}
			raw, ok := fieldTypeParsers.Load(key)
			if !ok {
				panic(fmt.Sprintf("meta: field %q has type %s with no registered parser; add a parse tag or call RegisterFieldParser", sf.Name, sf.Type))
			}
			fp.parse = raw.(func(I) (reflect.Value, error))
		}

		ds.fields = append(ds.fields, fp)
	}

	derivedCache.Store(cacheKey, ds)
	return ds
}
