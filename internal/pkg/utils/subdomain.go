package utils

import (
	"strings"
	"unicode"
)

// BuildSubdomain derives the base profile handle from a professional's name:
// lower-cased, alphanumeric only. Names that strip down to nothing fall back
// to "professional" so the handle is never empty.
func BuildSubdomain(firstName, lastName string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(firstName + lastName) {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "professional"
	}
	return b.String()
}
