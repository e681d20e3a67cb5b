// Package match maps free-text labels and codes from imported data onto
// accounts in the chart, with a ranked confidence per result.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics and collapses whitespace so
// "  Depreciación   Acumulada " and "depreciacion acumulada" compare equal.
func Normalize(s string) string {
	lower := strings.ToLower(s)
	stripped, _, err := transform.String(stripMarks, lower)
	if err != nil {
		stripped = lower
	}
	return strings.Join(strings.Fields(stripped), " ")
}
