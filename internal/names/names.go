// Package names canonicalizes player display names for comparison.
// Display names arrive as typed by users: accents, stray whitespace and
// inconsistent first/last ordering are all expected.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes to NFD, drops combining marks and recomposes,
// turning e.g. "Álvaro" into "Alvaro".
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes diacritical marks from s without tokenizing or
// case-folding. It is pure and total; any input yields a deterministic result.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; malformed input
		// falls back to the original string untouched.
		return s
	}
	return out
}

// FirstToken returns the comparable form of the first name: surrounding
// whitespace trimmed, first whitespace-delimited token, diacritics stripped,
// lower-cased. An empty or all-whitespace name yields "".
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(StripDiacritics(fields[0]))
}
