// Package classify provides unicode-aware item predicates for use
// with parser.TakeWhile and meta.RegisterPredicate — the "external
// classifier" collaborator the core itself stays agnostic about. It is
// the first direct consumer of golang.org/x/text in this module; the
// teacher carried x/text only as a transitive dependency.
package classify

import (
	"unicode"

	"golang.org/x/text/runes"
)

// identifierStart accepts any unicode letter.
var identifierStart = runes.In(unicode.L).Contains

// identifierContinue accepts any unicode decimal digit.
var identifierContinue = runes.In(unicode.Nd).Contains

// IsIdentStart reports whether r may begin an identifier: any unicode
// letter, or underscore.
func IsIdentStart(r rune) bool {
	return r == '_' || identifierStart(r)
}

// IsIdentContinue reports whether r may continue an identifier already
// begun: any unicode letter or digit, or underscore.
func IsIdentContinue(r rune) bool {
	return r == '_' || identifierStart(r) || identifierContinue(r)
}

// IsSpace reports whether r is unicode whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsDigit reports whether r is a unicode decimal digit.
func IsDigit(r rune) bool {
	return unicode.IsDigit(r)
}
