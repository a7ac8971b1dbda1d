// Package classes provides utilities over whitespace-joined class-name
// strings. Class names are opaque tokens; nothing here interprets them.
package classes

import "strings"

// Join concatenates fragments with single spaces. Empty fragments are treated
// as absent rather than as empty tokens, so the result never carries leading,
// trailing, or doubled spaces.
func Join(fragments ...string) string {
	var b strings.Builder
	for _, fragment := range fragments {
		for _, token := range strings.Fields(fragment) {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(token)
		}
	}
	return b.String()
}

// Prefix prepends "<prefix>:" to every token in the class string.
func Prefix(prefix, s string) string {
	tokens := strings.Fields(s)
	for i, token := range tokens {
		tokens[i] = prefix + ":" + token
	}
	return strings.Join(tokens, " ")
}

// Merge joins class lists, dropping exact duplicate tokens while keeping
// first-seen order. It performs no semantic conflict resolution between
// distinct tokens.
func Merge(inputs ...string) string {
	var merged []string
	seen := make(map[string]bool)

	for _, input := range inputs {
		for _, token := range strings.Fields(input) {
			if !seen[token] {
				merged = append(merged, token)
				seen[token] = true
			}
		}
	}
	return strings.Join(merged, " ")
}
