package router

import (
	"math"
	"strings"

	"jarvis/internal/slots"
)

// The closed intent set. TOOL names on the wire differ for the seek and
// volume intents, see mapper.go.
const (
	IntentPlay         = "PLAY"
	IntentPause        = "PAUSE"
	IntentStop         = "STOP"
	IntentNext         = "NEXT"
	IntentPrev         = "PREV"
	IntentSeekFwd      = "SEEK_FWD"
	IntentSeekBack     = "SEEK_BACK"
	IntentSeekTo       = "SEEK_TO"
	IntentVolUp        = "VOL_UP"
	IntentVolDown      = "VOL_DOWN"
	IntentSetVol       = "SET_VOL"
	IntentMute         = "MUTE"
	IntentUnmute       = "UNMUTE"
	IntentTransfer     = "TRANSFER"
	IntentVolUpShort   = "VOL_UP_SHORT"
	IntentVolDownShort = "VOL_DOWN_SHORT"
	IntentSetVolMax    = "SET_VOL_MAX"
	IntentSetVolMin    = "SET_VOL_MIN"
)

// Match is the classifier verdict for one utterance.
type Match struct {
	Intent string  `json:"intent"`
	Score  float64 `json:"score"`
	Phrase string  `json:"phrase"`
}

// Classifier is the capability shared by the rule lexicon and any statistical
// or model-backed replacement, so strategies can be swapped without touching
// the routing chain.
type Classifier interface {
	Classify(text string) (Match, bool)
}

type entry struct {
	intent  string
	phrases []string
}

// The synonym table. Declaration order doubles as the tie-break order: on
// equal scores the earlier pair wins, so reordering entries changes routing.
var table = []entry{
	{IntentPlay, []string{"spela", "spela upp", "starta", "fortsätt"}},
	{IntentPause, []string{"pausa", "lägg på paus"}},
	{IntentStop, []string{"stop", "stopp", "stoppa", "avsluta"}},
	{IntentNext, []string{"nästa", "hoppa över"}},
	{IntentPrev, []string{"föregående", "gå tillbaka"}},
	{IntentSeekFwd, []string{"spola fram", "hoppa fram"}},
	{IntentSeekBack, []string{"spola tillbaka", "hoppa tillbaka"}},
	{IntentSeekTo, []string{"hoppa till", "gå till", "spela från"}},
	{IntentVolUp, []string{"höj volymen", "höj volym", "ök[aå] volym", "starkare", "högre", "skruva upp"}},
	{IntentVolDown, []string{"sänk volymen", "sänk volym", "minska volym", "lägre", "tystare", "skruva ner", "dämpa"}},
	{IntentSetVol, []string{"volym", "sätt volymen till", "ställ volymen på", "volym procent"}},
	{IntentMute, []string{"mute", "stäng av ljudet", "tysta", "ljud av"}},
	{IntentUnmute, []string{"avmuta", "slå på ljud", "ljud på", "avdämpa"}},
	{IntentTransfer, []string{"casta", "casta till", "byt till", "flytta till", "skicka till"}},
	// short forms without "volym" for phrases like "höj 20%" / "sänk 15%"
	{IntentVolUpShort, []string{"höj"}},
	{IntentVolDownShort, []string{"sänk"}},
	{IntentSetVolMax, []string{"max", "maximalt", "högsta"}},
	{IntentSetVolMin, []string{"min", "minimalt", "tyst"}},
}

const acceptScore = 0.6

func scoreMatch(input, phrase string) float64 {
	a := slots.Normalize(input)
	b := slots.Normalize(phrase)
	if a == b {
		return 1.0
	}
	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}

	aSet := tokenSet(a)
	bSet := tokenSet(b)
	shared := 0
	for tok := range aSet {
		if bSet[tok] {
			shared++
		}
	}
	overlap := float64(shared) / float64(max(len(aSet), len(bSet)))
	return math.Min(0.85, overlap)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Split(s, " ") {
		set[tok] = true
	}
	return set
}

// Classify scores the utterance against every (intent, phrase) pair and
// returns the best match at or above the accept threshold. The comparison is
// strictly-greater, which is what makes the declaration-order tie-break hold.
func Classify(text string) (Match, bool) {
	var best Match
	found := false
	for _, e := range table {
		for _, p := range e.phrases {
			if s := scoreMatch(text, p); !found || s > best.Score {
				best = Match{Intent: e.intent, Score: s, Phrase: p}
				found = true
			}
		}
	}
	if !found || best.Score < acceptScore {
		return Match{}, false
	}
	return best, true
}

// Lexicon adapts the rule table to the Classifier capability.
type Lexicon struct{}

func (Lexicon) Classify(text string) (Match, bool) {
	return Classify(text)
}

var _ Classifier = Lexicon{}
