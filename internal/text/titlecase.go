// Package text holds the string normalization helpers shared by the
// providers and the presentation layers.
package text

import (
	"strings"
	"unicode"
)

// Title capitalizes the first letter of each whitespace-separated word and
// lower-cases the rest. Multi-word names are cased as a whole string, and
// the function is idempotent.
func Title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// StatName converts an upstream stat identifier such as "special-attack"
// into its display form "Special Attack".
func StatName(s string) string {
	return Title(strings.ReplaceAll(s, "-", " "))
}
