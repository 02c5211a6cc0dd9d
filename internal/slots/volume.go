package slots

import (
	"regexp"
	"strconv"
)

// VolumeSlots carries either an absolute level or a signed delta, never both.
// Level is clamped to [0,100].
type VolumeSlots struct {
	Level *int
	Delta *int
}

var (
	levelSet  = regexp.MustCompile(`(?:satt|stall)\s*volym(?:en)?\s*(?:till|pa)\s*(\d{1,3})\s*%?`)
	levelBare = regexp.MustCompile(`\bvolym(?:en)?\s*(\d{1,3})\b`)
	levelTo   = regexp.MustCompile(`\b(h[öo]j|s[äa]nk)\s*(?:volym(?:en)?)?\s*(?:till|pa)\s*(\d{1,3})\s*%?`)
	deltaUp   = regexp.MustCompile(`\b(h[öo]j|ok[aå]|oka|skruva upp)\s*(\d{1,3})?\s*%?`)
	deltaDown = regexp.MustCompile(`\b(s[äa]nk|skruva ner|minska|d[äa]mpa)\s*(\d{1,3})?\s*%?`)
	maxIdiom  = regexp.MustCompile(`(\bmax(imum|imalt)?\b|\bhogsta\b|\b100\s*%\b|\bhundra\s*procent\b|\bfull\s*volym\b|\bmax\s*volym\b|sa\s*hogt(\s*som\s*mojligt)?|sa\s*hogt\s*det\s*gar|pa\s*(hogsta|max)\b)`)
	minIdiom  = regexp.MustCompile(`(\bmin(imum|imalt)?\b|\btyst\b|\b0\s*%\b|\bnoll\s*procent\b)`)
)

// Volume runs the branch ladder in strict order: explicit level, höj/sänk to a
// level, max idioms, min idioms, and finally a signed delta with default
// magnitude 10. The level branches return immediately, which is what keeps
// level and delta from ever co-occurring.
func Volume(text string) VolumeSlots {
	t := Normalize(text)
	var out VolumeSlots

	m := levelSet.FindStringSubmatch(t)
	if m == nil {
		m = levelBare.FindStringSubmatch(t)
	}
	if m != nil {
		v := clamp(atoi(m[1]), 0, 100)
		out.Level = &v
		return out
	}
	if m := levelTo.FindStringSubmatch(t); m != nil {
		v := clamp(atoi(m[2]), 0, 100)
		out.Level = &v
		return out
	}

	// max/min without a number
	if maxIdiom.MatchString(t) {
		v := 100
		out.Level = &v
		return out
	}
	if minIdiom.MatchString(t) {
		v := 0
		out.Level = &v
		return out
	}

	if m := deltaUp.FindStringSubmatch(t); m != nil {
		d := 10
		if m[2] != "" {
			d = atoi(m[2])
		}
		out.Delta = &d
	}
	if m := deltaDown.FindStringSubmatch(t); m != nil {
		d := 10
		if m[2] != "" {
			d = atoi(m[2])
		}
		d = -d
		out.Delta = &d
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
