package slots

import "regexp"

var (
	swedishStem = regexp.MustCompile(`\bsvensk`)
	englishStem = regexp.MustCompile(`\bengelsk`)
)

// Language spots an explicit language request, or nothing.
func Language(text string) string {
	t := Normalize(text)
	if swedishStem.MatchString(t) {
		return "svenska"
	}
	if englishStem.MatchString(t) {
		return "engelska"
	}
	return ""
}
