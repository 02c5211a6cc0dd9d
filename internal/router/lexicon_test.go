package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyExact(t *testing.T) {
	cases := []struct {
		in     string
		intent string
	}{
		{"pausa", IntentPause},
		{"spela upp", IntentPlay},
		{"stoppa", IntentStop},
		{"nästa", IntentNext},
		{"casta", IntentTransfer},
		{"MAX", IntentSetVolMax},
	}
	for _, tc := range cases {
		m, ok := Classify(tc.in)
		require.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.intent, m.Intent, "input %q", tc.in)
		assert.Equal(t, 1.0, m.Score, "input %q", tc.in)
	}
}

func TestClassifySubstring(t *testing.T) {
	cases := []struct {
		in     string
		intent string
	}{
		{"kan du pausa musiken", IntentPause},
		{"hoppa fram 30 sek", IntentSeekFwd},
		{"gå till slutet", IntentSeekTo},
		{"casta till tv", IntentTransfer},
		{"byt till stereo", IntentTransfer},
	}
	for _, tc := range cases {
		m, ok := Classify(tc.in)
		require.True(t, ok, "input %q", tc.in)
		assert.Equal(t, tc.intent, m.Intent, "input %q", tc.in)
		assert.Equal(t, 0.9, m.Score, "input %q", tc.in)
	}
}

func TestClassifyTokenOverlap(t *testing.T) {
	// no phrase is a substring here, the token overlap carries it
	m, ok := Classify("spola genast tillbaka")
	require.True(t, ok)
	assert.Equal(t, IntentSeekBack, m.Intent)
	assert.InDelta(t, 2.0/3.0, m.Score, 1e-9)
}

func TestClassifyRejects(t *testing.T) {
	for _, in := range []string{"vad är klockan", "hur är vädret idag", "berätta en saga"} {
		_, ok := Classify(in)
		assert.False(t, ok, "input %q", in)
	}
}

// Equal scores resolve to the entry declared first. "hoppa" alone appears in
// phrases of four intents and must land on NEXT.
func TestClassifyTieBreak(t *testing.T) {
	m, ok := Classify("hoppa")
	require.True(t, ok)
	assert.Equal(t, IntentNext, m.Intent)
}

// Every phrase in the table must classify back to its own intent, otherwise a
// reordering or a new synonym has shadowed an existing one.
func TestTableSelfConsistent(t *testing.T) {
	for _, e := range table {
		for _, p := range e.phrases {
			m, ok := Classify(p)
			require.True(t, ok, "phrase %q", p)
			assert.Equal(t, e.intent, m.Intent, "phrase %q", p)
			assert.GreaterOrEqual(t, m.Score, acceptScore, "phrase %q", p)
		}
	}
}
