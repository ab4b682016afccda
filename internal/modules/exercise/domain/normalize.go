package domain

import "strings"

const strippedPunctuation = ".,/#!$%^&*;:{}=-_`~()"

// Normalize lower-cases s, drops the ignored punctuation and collapses every
// whitespace run into a single space.
func Normalize(s string) string {
	lowered := strings.ToLower(s)
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedPunctuation, r) {
			return -1
		}
		return r
	}, lowered)
	return strings.Join(strings.Fields(stripped), " ")
}

// Equal reports whether candidate matches reference once both are normalized.
func Equal(reference, candidate string) bool {
	return Normalize(reference) == Normalize(candidate)
}
