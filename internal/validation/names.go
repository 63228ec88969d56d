// Package validation provides input validation utilities
package validation

import (
	"strings"
	"unicode"
)

// Default submission limits. Both can be overridden by site settings.
const (
	DefaultMaxNamesPerSubmission = 50
	DefaultMaxNameLength         = 100
)

// lowercaseConnectives are Portuguese particles that stay lowercase inside a
// formatted name ("Maria de Souza", never "Maria De Souza").
var lowercaseConnectives = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {},
	"e": {}, "em": {},
	"na": {}, "no": {}, "nas": {}, "nos": {},
	"a": {}, "o": {}, "as": {}, "os": {},
}

// FormatName canonicalizes a free-text guest name: lowercases everything,
// capitalizes the first letter of each word except connectives, collapses
// whitespace, and trims. The first word is always capitalized. Empty input
// yields "". Idempotent: FormatName(FormatName(x)) == FormatName(x).
func FormatName(name string) string {
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		if i > 0 {
			if _, ok := lowercaseConnectives[w]; ok {
				continue
			}
		}
		words[i] = capitalizeFirst(w)
	}
	return strings.Join(words, " ")
}

func capitalizeFirst(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ParseNames splits a raw multi-line text block into trimmed, non-empty
// candidate names. Blank lines are dropped; order is preserved.
func ParseNames(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
