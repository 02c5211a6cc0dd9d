package router

import (
	"regexp"
	"strings"

	"jarvis/internal/lexicon"
	"jarvis/internal/slots"
)

// Call is a resolved tool invocation. A nil Call tells the orchestrator to
// continue down its fallback chain, it is not an error.
type Call struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

var transferTrail = regexp.MustCompile(`\b(?:pa|på|till)\s+([a-zåäö0-9\-\s]{2,})$`)

// MapToTool turns an accepted intent into a tool invocation, pulling whatever
// slots the intent needs out of the utterance.
func MapToTool(text, intent string, devices *lexicon.Devices) *Call {
	t := slots.Normalize(text)

	switch intent {
	case IntentPlay, IntentPause, IntentStop, IntentNext, IntentPrev:
		return &Call{Name: intent, Args: map[string]any{}}

	case IntentSeekFwd:
		return &Call{Name: "SEEK", Args: map[string]any{"direction": "FWD", "seconds": seekSeconds(t)}}
	case IntentSeekBack:
		return &Call{Name: "SEEK", Args: map[string]any{"direction": "BACK", "seconds": seekSeconds(t)}}

	case IntentSeekTo:
		ts := slots.Time(t)
		switch {
		case ts.Endpoint == slots.EndpointStart:
			return &Call{Name: "SEEK", Args: map[string]any{"position": 0}}
		case ts.Endpoint == slots.EndpointEnd:
			return &Call{Name: "SEEK", Args: map[string]any{"position": 1}}
		case ts.Endpoint != "":
			return &Call{Name: "SEEK", Args: map[string]any{"endpoint": ts.Endpoint}}
		case ts.To != "":
			return &Call{Name: "SEEK", Args: map[string]any{"to": ts.To}}
		}
		return nil

	case IntentVolUp, IntentVolUpShort:
		vs := slots.Volume(t)
		if vs.Level != nil {
			return &Call{Name: "SET_VOLUME", Args: map[string]any{"level": *vs.Level}}
		}
		delta := 10
		if vs.Delta != nil {
			delta = abs(*vs.Delta)
		}
		return &Call{Name: "SET_VOLUME", Args: map[string]any{"delta": delta}}

	case IntentVolDown, IntentVolDownShort:
		vs := slots.Volume(t)
		if vs.Level != nil {
			return &Call{Name: "SET_VOLUME", Args: map[string]any{"level": *vs.Level}}
		}
		delta := -10
		if vs.Delta != nil {
			delta = -abs(*vs.Delta)
		}
		return &Call{Name: "SET_VOLUME", Args: map[string]any{"delta": delta}}

	case IntentSetVol:
		vs := slots.Volume(t)
		if vs.Level == nil {
			return nil
		}
		return &Call{Name: "SET_VOLUME", Args: map[string]any{"level": *vs.Level}}

	case IntentSetVolMax:
		return &Call{Name: "SET_VOLUME", Args: map[string]any{"level": 100}}
	case IntentSetVolMin:
		return &Call{Name: "SET_VOLUME", Args: map[string]any{"level": 0}}

	case IntentMute, IntentUnmute:
		return &Call{Name: intent, Args: map[string]any{}}

	case IntentTransfer:
		if dev := slots.Device(t, devices); dev != "" {
			return &Call{Name: "TRANSFER", Args: map[string]any{"device": dev}}
		}
		if room := slots.Room(t); room != "" {
			return &Call{Name: "TRANSFER", Args: map[string]any{"room": room}}
		}
		// unknown target: keep the raw trailing phrase so user aliases can
		// still resolve it downstream
		if m := transferTrail.FindStringSubmatch(t); m != nil {
			return &Call{Name: "TRANSFER", Args: map[string]any{"device": strings.TrimSpace(m[1])}}
		}
		return nil
	}
	return nil
}

// Route is the pure classifier→mapper pass with no side effects.
func Route(text string, devices *lexicon.Devices) *Call {
	m, ok := Classify(text)
	if !ok {
		return nil
	}
	return MapToTool(text, m.Intent, devices)
}

func seekSeconds(t string) int {
	if ts := slots.Time(t); ts.Seconds != nil {
		return *ts.Seconds
	}
	return 10
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
