package domain

import "strings"

// WordKey returns the comparison key for a headword or cross-reference:
// surrounding whitespace dropped, inner whitespace runs folded to one space,
// lower-cased. Diacritics and punctuation are kept, so "re-sign" and
// "resign" stay distinct.
func WordKey(word string) string {
	return strings.ToLower(strings.Join(strings.Fields(word), " "))
}

