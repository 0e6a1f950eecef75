// Package normalize provides the deterministic text normalization used for
// alias keys and patient identity. Keys must be stable across languages:
// Cyrillic and Latin fold alike, and compatibility forms (ligatures,
// full-width digits) collapse to their canonical spellings.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var folder = cases.Fold()

// Key applies NFKC, full Unicode case folding, strips leading and trailing
// punctuation, and collapses internal whitespace runs to single spaces.
// Internal punctuation is preserved ("25-oh vitamin d" keeps its hyphen).
func Key(s string) string {
	folded := folder.String(norm.NFKC.String(s))
	folded = strings.TrimFunc(folded, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
	return strings.Join(strings.Fields(folded), " ")
}
