package slots

import (
	"regexp"
	"strings"
)

type roomAlias struct {
	alias     string
	canonical string
}

// Fixed room lexicon. Declaration order is the scan order for bare mentions,
// so keep new variants after the ones that should win.
var roomAliases = []roomAlias{
	{"vardagsrummet", "vardagsrummet"},
	{"vardagsrum", "vardagsrummet"},
	{"v-rum", "vardagsrummet"},
	{"köket", "köket"},
	{"koket", "köket"},
	{"kök", "köket"},
	{"sovrummet", "sovrummet"},
	{"sovrum", "sovrummet"},
	{"kontoret", "kontoret"},
	{"office", "kontoret"},
}

var roomPrep = regexp.MustCompile(`\b(?:i|pa|på|till)\s+([a-zåäö\-]+)\b`)

func lookupRoom(token string) string {
	t := Normalize(token)
	for _, r := range roomAliases {
		if r.alias == t {
			return r.canonical
		}
	}
	return ""
}

// Room resolves "i köket", "till sovrummet", "på kontoret" style phrases, then
// falls back to scanning the whole text for any known room alias.
func Room(text string) string {
	t := Normalize(text)
	if m := roomPrep.FindStringSubmatch(t); m != nil {
		if room := lookupRoom(m[1]); room != "" {
			return room
		}
	}
	for _, r := range roomAliases {
		if strings.Contains(t, r.alias) {
			return r.canonical
		}
	}
	return ""
}
