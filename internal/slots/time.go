package slots

import (
	"regexp"
	"strconv"
	"strings"
)

// Named seek endpoints. START and END collapse to normalized positions in the
// tool mapper, the rest pass through symbolically.
const (
	EndpointStart = "START"
	EndpointEnd   = "END"
	EndpointIntro = "INTRO"
	EndpointRecap = "RECAP"
	EndpointAds   = "ADS"
)

// TimeSlots is what the time extractor found. Nil Seconds means no duration.
type TimeSlots struct {
	Seconds  *int
	To       string
	Endpoint string
}

// Swedish number words, with and without diacritics since some sources hand us
// text that was already folded.
var numberWords = map[string]int{
	"noll": 0, "en": 1, "ett": 1, "två": 2, "tva": 2, "tre": 3, "fyra": 4, "fem": 5,
	"sex": 6, "sju": 7, "åtta": 8, "atta": 8, "nio": 9, "tio": 10, "elva": 11, "tolv": 12,
	"tretton": 13, "fjorton": 14, "femton": 15, "sexton": 16, "sjutton": 17, "arton": 18,
	"nitton": 19, "tjugo": 20, "trettio": 30, "fyrtio": 40, "femtio": 50, "sextio": 60,
	"sjuttio": 70, "åttio": 80, "nittio": 90, "hundra": 100,
}

var (
	secRel    = regexp.MustCompile(`(\d{1,3})\s*(sek|sekunder|s)\b`)
	minRel    = regexp.MustCompile(`(\d{1,3})\s*(min|minuter|m)\b`)
	minWord   = regexp.MustCompile(`\b(min|minuter|minute?n)\b`)
	secWord   = regexp.MustCompile(`\b(sek|sekunder|sekund)\b`)
	halfMin   = regexp.MustCompile(`\ben halv minut\b`)
	clockTo   = regexp.MustCompile(`\b(?:till|vid|pa)\s*((?:\d{1,2}:)?\d{1,2}:\d{2})\b`)
	digitsTok = regexp.MustCompile(`^\d+$`)

	startJump = regexp.MustCompile(`(ga|hoppa)\s*till\s*borjan|\bborja\s*om\b`)
	startFrom = regexp.MustCompile(`\bfr[aå]n\s*(borjan|start(en)?)\b`)
	endJump   = regexp.MustCompile(`(ga|hoppa)\s*till\s*slutet|eftertexter\b`)
	introWord = regexp.MustCompile(`\bintro\b`)
	recapWord = regexp.MustCompile(`\brecap\b`)
	adsWord   = regexp.MustCompile(`\breklam\b`)

	pairIdiom  = regexp.MustCompile(`\bett par\b`)
	halfIdiom  = regexp.MustCompile(`\benh[aä]lv\b`)
	whileIdiom = regexp.MustCompile(`\ben stund\b`)
)

// wordsToNumber sums every number word (or bare digit group) in the token
// list. It deliberately sums all of them, not just the one next to a unit.
func wordsToNumber(tokens []string) (int, bool) {
	total, matched := 0, false
	for _, tok := range tokens {
		if n, ok := numberWords[tok]; ok {
			total += n
			matched = true
		} else if digitsTok.MatchString(tok) {
			n, _ := strconv.Atoi(tok)
			total += n
			matched = true
		}
	}
	return total, matched
}

func vagueSeconds(t string) int {
	switch {
	case pairIdiom.MatchString(t):
		return 120
	case halfIdiom.MatchString(t):
		return 30
	case whileIdiom.MatchString(t):
		return 45
	}
	return 0
}

// Time extracts durations, absolute clock targets and named endpoints.
// Duration sources are tried in priority order: explicit number+unit, summed
// number words with a unit keyword, vague quantity idioms, and finally the
// literal "en halv minut". The endpoint checks each overwrite the previous
// one, so the last matching check wins.
func Time(text string) TimeSlots {
	t := Normalize(text)
	var out TimeSlots

	if m := secRel.FindStringSubmatch(t); m != nil {
		n, _ := strconv.Atoi(m[1])
		out.Seconds = &n
	}
	if m := minRel.FindStringSubmatch(t); m != nil {
		n, _ := strconv.Atoi(m[1])
		total := n * 60
		if out.Seconds != nil {
			total += *out.Seconds
		}
		out.Seconds = &total
	}

	if noSeconds(out.Seconds) {
		if n, ok := wordsToNumber(strings.Fields(t)); ok && n > 0 {
			if minWord.MatchString(t) {
				v := n * 60
				out.Seconds = &v
			} else if secWord.MatchString(t) {
				out.Seconds = &n
			}
		}
	}
	if noSeconds(out.Seconds) {
		if v := vagueSeconds(t); v > 0 {
			out.Seconds = &v
		}
	}
	// "halv" is not a number word, so this phrase needs its own check
	if noSeconds(out.Seconds) && halfMin.MatchString(t) {
		v := 30
		out.Seconds = &v
	}

	if m := clockTo.FindStringSubmatch(t); m != nil {
		out.To = m[1]
	}

	if startJump.MatchString(t) {
		out.Endpoint = EndpointStart
	}
	if startFrom.MatchString(t) {
		out.Endpoint = EndpointStart
	}
	if endJump.MatchString(t) {
		out.Endpoint = EndpointEnd
	}
	if introWord.MatchString(t) {
		out.Endpoint = EndpointIntro
	}
	if recapWord.MatchString(t) {
		out.Endpoint = EndpointRecap
	}
	if adsWord.MatchString(t) {
		out.Endpoint = EndpointAds
	}

	return out
}

func noSeconds(p *int) bool {
	return p == nil || *p == 0
}
