package slots

import (
	"regexp"
	"strings"

	"jarvis/internal/lexicon"
)

var (
	deviceSplit = regexp.MustCompile(`[^a-z0-9åäö]+`)
	deviceTrail = regexp.MustCompile(`\b(?:pa|på|till)\s+([a-zåäö0-9\-\s]{2,})$`)
)

// Device returns the canonical name of the first token with an entry in the
// device lexicon. When no single token hits, the trailing phrase after
// på/till ("spela på X", "casta till X") gets one more try.
func Device(text string, devices *lexicon.Devices) string {
	if devices == nil {
		return ""
	}
	t := Normalize(text)

	for _, tok := range deviceSplit.Split(t, -1) {
		if tok == "" {
			continue
		}
		if dev, ok := devices.Resolve(Normalize(tok)); ok {
			return dev
		}
	}

	if m := deviceTrail.FindStringSubmatch(t); m != nil {
		if dev, ok := devices.Resolve(Normalize(strings.TrimSpace(m[1]))); ok {
			return dev
		}
	}
	return ""
}
