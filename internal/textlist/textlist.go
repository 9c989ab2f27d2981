// Package textlist formats short lists of names into an English
// oxford-comma phrase, for diagnostic messages like "expected A, B, or
// C". Adapted from internal/util.MakeTextList, generalized to any
// display name slice and given a conjunction choice.
package textlist

import "strings"

// And joins items with "and", e.g. "A, B, and C".
func And(items []string) string {
	return join(items, "and")
}

// Or joins items with "or", e.g. "A, B, or C".
func Or(items []string) string {
	return join(items, "or")
}

func join(items []string, conj string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conj + " " + items[1]
	default:
		out := make([]string, len(items))
		copy(out, items)
		out[len(out)-1] = conj + " " + out[len(out)-1]
		return strings.Join(out, ", ")
	}
}
