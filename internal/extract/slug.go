package extract

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks folds diacritics to their ASCII base letter (NFD decomposition
// with combining marks removed), so transliterated Sanskrit names like
// "Śavāsana" slug cleanly.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a URL-friendly identifier from a display name: lowercase,
// alphanumerics plus '-' and '_' only, whitespace runs collapsed to a single
// '-', leading and trailing separators trimmed. Slugs are deterministic per
// name; uniqueness is not enforced.
func Slug(name string) string {
	if folded, _, err := transform.String(stripMarks, name); err == nil {
		name = folded
	}
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsSpace(r):
			if b.Len() > 0 {
				pendingSep = true
			}
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			if pendingSep {
				b.WriteByte('-')
				pendingSep = false
			}
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-_")
}
