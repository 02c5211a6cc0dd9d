package slots

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var wsRun = regexp.MustCompile(`\s+`)

// Normalize folds an utterance into the canonical form every extractor and the
// classifier operate on: lowercase, diacritics stripped (å/ä/ö/é fold to their
// base letters), whitespace collapsed and trimmed. Idempotent.
func Normalize(s string) string {
	lower := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range norm.NFD.String(lower) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}

	return strings.TrimSpace(wsRun.ReplaceAllString(b.String(), " "))
}
