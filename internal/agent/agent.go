package agent

import (
	"regexp"

	log "log/slog"

	"jarvis/internal/lexicon"
	"jarvis/internal/router"
	"jarvis/internal/slots"
	"jarvis/internal/state"
)

// Outcome is the routing verdict handed to the serving layer. A non-empty
// Fallback means the rule chain gave up and the caller should consult the
// external interpreter.
type Outcome struct {
	Plan              *state.Plan
	Confidence        float64
	NeedsConfirmation bool
	Fallback          string
}

// Agent chains classifier → extractors → mapper and owns the only side
// effects in the system: the persisted history and preference table.
type Agent struct {
	Store      state.Store
	Devices    *lexicon.Devices
	Classifier router.Classifier
}

func New(store state.Store, devices *lexicon.Devices) *Agent {
	return &Agent{
		Store:      store,
		Devices:    devices,
		Classifier: router.Lexicon{},
	}
}

// Narrow keyword nets for utterances the classifier misses. Same word sets as
// the extractors use, minus the numeric branches.
var (
	raiseWord   = regexp.MustCompile(`\bh[oö]j\b`)
	lowerWord   = regexp.MustCompile(`\bs[äa]nk\b`)
	maxDirect   = regexp.MustCompile(`\bmax(imum|imalt)?\b|\bhogsta\b|\bfull\s*volym\b|\bmax\s*volym\b|sa\s*hogt(\s*som\s*mojligt)?|sa\s*hogt\s*det\s*gar|pa\s*(hogsta|max)\b`)
	minDirect   = regexp.MustCompile(`\bmin(imum|imalt)?\b|\btyst\b`)
	muteWords   = regexp.MustCompile(`\b(mute|stang av ljudet|tysta|ljud av)\b`)
	unmuteWords = regexp.MustCompile(`\b(avmuta|slag? pa ljud|ljud pa|avdampa)\b`)
)

// Route runs the fallback chain, each step short-circuiting on success.
// Every accepted decision lands in the short-term history; a deferral does
// not.
func (a *Agent) Route(text string) Outcome {
	// 1) rule-first: classifier + tool mapper
	if m, ok := a.Classifier.Classify(text); ok {
		if call := router.MapToTool(text, m.Intent, a.Devices); call != nil {
			log.Debug("Rule match", "intent", m.Intent, "score", m.Score, "phrase", m.Phrase)

			if call.Name == "TRANSFER" {
				if dev, ok := call.Args["device"].(string); ok {
					// user aliases win over the static lexicon; keep what was
					// actually said alongside the resolved name
					call.Args["device"] = a.Store.ResolveAlias(dev)
					call.Args["alias"] = dev
				}
			}

			plan := &state.Plan{Tool: call.Name, Params: call.Args}
			a.Store.Push(text, plan)
			return Outcome{Plan: plan, Confidence: 0.9, NeedsConfirmation: true}
		}
	}

	t := slots.Normalize(text)

	// 2) volume short-forms the classifier missed, with direction guards
	vs := slots.Volume(text)
	if vs.Level != nil {
		return a.accept(text, &state.Plan{Tool: "SET_VOLUME", Params: map[string]any{"level": *vs.Level}}, 0.85)
	}
	if vs.Delta != nil {
		if raiseWord.MatchString(t) && *vs.Delta > 0 {
			return a.accept(text, &state.Plan{Tool: "SET_VOLUME", Params: map[string]any{"delta": *vs.Delta}}, 0.8)
		}
		if lowerWord.MatchString(t) && *vs.Delta < 0 {
			return a.accept(text, &state.Plan{Tool: "SET_VOLUME", Params: map[string]any{"delta": *vs.Delta}}, 0.8)
		}
	}

	// 3) unconditional idioms
	if maxDirect.MatchString(t) {
		return a.accept(text, &state.Plan{Tool: "SET_VOLUME", Params: map[string]any{"level": 100}}, 0.85)
	}
	if minDirect.MatchString(t) {
		return a.accept(text, &state.Plan{Tool: "SET_VOLUME", Params: map[string]any{"level": 0}}, 0.85)
	}
	if muteWords.MatchString(t) {
		return a.accept(text, &state.Plan{Tool: "MUTE", Params: map[string]any{}}, 0.8)
	}
	if unmuteWords.MatchString(t) {
		return a.accept(text, &state.Plan{Tool: "UNMUTE", Params: map[string]any{}}, 0.8)
	}

	// 4) nothing held, hand the utterance to the external interpreter
	log.Debug("Deferring", "text", text)
	return Outcome{Fallback: "llm"}
}

func (a *Agent) accept(text string, plan *state.Plan, confidence float64) Outcome {
	a.Store.Push(text, plan)
	return Outcome{Plan: plan, Confidence: confidence}
}
