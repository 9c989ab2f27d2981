// Package meta implements the derive/attribute layer: a reflection-
// driven synthesizer that builds a syntax.Syntax value for a struct or
// interface type from `parse:"..."` struct tags, standing in for the
// procedural macros the original Rust crate (parserc_derive) used. Go
// has no macros; reflection plus named registries — resolved once per
// type and memoized — is this module's idiomatic equivalent, the same
// mechanism encoding/json's struct tags and this pack's own
// toml-tagged save types rely on.
//
// The named-registry idea (resolving a field option by a short string
// key instead of an inline expression, since struct tags can't embed
// closures) is grounded on internal/ictiobus/lex/action.go's
// LexAs/SwapState/LexAndSwapState named actions.
package meta

import (
	"fmt"
	"sync"
)

// Predicate is a registered `func(rune) bool`-shaped item test, looked
// up by name from a `take_while=name` tag.
type Predicate func(rune) bool

// ErrMapper is a registered error transform, looked up by name from a
// `map_err=name` tag.
type ErrMapper func(error) error

// Semantic is a registered post-parse refinement, looked up by name
// from a `semantic=name` item option. It receives the freshly parsed
// value and may reject or rewrite it.
type Semantic[T any] func(T) (T, error)

var (
	predicates = map[string]Predicate{}
	errMappers = map[string]ErrMapper{}
	mu         sync.RWMutex
)

// RegisterPredicate makes pred available to `take_while=name` tags
// under the given name. Re-registering the same name overwrites the
// previous definition.
func RegisterPredicate(name string, pred Predicate) {
	mu.Lock()
	defer mu.Unlock()
	predicates[name] = pred
}

// RegisterErrMapper makes f available to `map_err=name` tags.
func RegisterErrMapper(name string, f ErrMapper) {
	mu.Lock()
	defer mu.Unlock()
	errMappers[name] = f
}

func lookupPredicate(name string) (Predicate, error) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := predicates[name]
	if !ok {
		return nil, fmt.Errorf("meta: no predicate registered under name %q", name)
	}
	return p, nil
}

func lookupErrMapper(name string) (ErrMapper, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := errMappers[name]
	if !ok {
		return nil, fmt.Errorf("meta: no error mapper registered under name %q", name)
	}
	return f, nil
}

// semanticRegistry is keyed by a caller-chosen name AND the concrete
// type it refines, since Go generics can't store a heterogeneous
// Semantic[T] map without erasing T; registration and lookup both go
// through RegisterSemantic/lookupSemantic so the type parameter lines
// up at both ends.
var semanticRegistry = map[string]any{}

// RegisterSemantic makes f available to `semantic=name` options for
// type T specifically. Deriving a different type under the same name
// is an error surfaced at first use, not at registration time, since
// registration has no T to check against yet.
func RegisterSemantic[T any](name string, f Semantic[T]) {
	mu.Lock()
	defer mu.Unlock()
	semanticRegistry[name] = f
}

func lookupSemantic[T any](name string) (Semantic[T], error) {
	mu.RLock()
	defer mu.RUnlock()
	raw, ok := semanticRegistry[name]
	if !ok {
		return nil, fmt.Errorf("meta: no semantic function registered under name %q", name)
	}
	f, ok := raw.(Semantic[T])
	if !ok {
		return nil, fmt.Errorf("meta: semantic function %q was not registered for this type", name)
	}
	return f, nil
}
