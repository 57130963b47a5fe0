package service

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeLabel trims s and upper-cases the first letter of every word,
// leaving the remaining letters as they were. Applying it twice is a no-op.
func NormalizeLabel(s string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.Und, cases.NoLower).String(strings.TrimSpace(s))
}
