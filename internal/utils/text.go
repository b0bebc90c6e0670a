package utils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Truncate returns a truncated string with "..." if it exceeds maxLen.
// Unicode-safe: counts runes, not bytes.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// ToTitle title-cases a string ("spades" -> "Spades").
func ToTitle(s string) string {
	return titleCaser.String(s)
}
