package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis/internal/lexicon"
)

func testDevices() *lexicon.Devices {
	return &lexicon.Devices{
		Canonical: []string{"tv", "soundbar"},
		Aliases:   map[string]string{"teven": "tv"},
	}
}

func TestMapNoArgIntents(t *testing.T) {
	for _, intent := range []string{IntentPlay, IntentPause, IntentStop, IntentNext, IntentPrev, IntentMute, IntentUnmute} {
		call := MapToTool("whatever", intent, nil)
		require.NotNil(t, call, "intent %s", intent)
		assert.Equal(t, intent, call.Name, "intent %s", intent)
		assert.Empty(t, call.Args, "intent %s", intent)
	}
}

func TestMapSeekRelative(t *testing.T) {
	call := MapToTool("hoppa fram 30 sek", IntentSeekFwd, nil)
	require.NotNil(t, call)
	assert.Equal(t, "SEEK", call.Name)
	assert.Equal(t, map[string]any{"direction": "FWD", "seconds": 30}, call.Args)

	call = MapToTool("spola tillbaka", IntentSeekBack, nil)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"direction": "BACK", "seconds": 10}, call.Args)
}

func TestMapSeekTo(t *testing.T) {
	cases := []struct {
		in   string
		args map[string]any
	}{
		{"gå till början", map[string]any{"position": 0}},
		{"gå till slutet", map[string]any{"position": 1}},
		{"hoppa till intro", map[string]any{"endpoint": "INTRO"}},
		{"till 1:23", map[string]any{"to": "1:23"}},
	}
	for _, tc := range cases {
		call := MapToTool(tc.in, IntentSeekTo, nil)
		require.NotNil(t, call, "input %q", tc.in)
		assert.Equal(t, "SEEK", call.Name, "input %q", tc.in)
		assert.Equal(t, tc.args, call.Args, "input %q", tc.in)
	}

	// no destination at all
	assert.Nil(t, MapToTool("hoppa till", IntentSeekTo, nil))
}

func TestMapVolume(t *testing.T) {
	call := MapToTool("höj 20%", IntentVolUpShort, nil)
	require.NotNil(t, call)
	assert.Equal(t, "SET_VOLUME", call.Name)
	assert.Equal(t, map[string]any{"delta": 20}, call.Args)

	call = MapToTool("sänk 15%", IntentVolDownShort, nil)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"delta": -15}, call.Args)

	call = MapToTool("höj volymen till 80", IntentVolUp, nil)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"level": 80}, call.Args)

	// the intent fixes the sign regardless of what the extractor saw
	call = MapToTool("dämpa 15", IntentVolUp, nil)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"delta": 15}, call.Args)

	call = MapToTool("volym 70", IntentSetVol, nil)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"level": 70}, call.Args)

	// SET_VOL without an explicit level has nothing to do
	assert.Nil(t, MapToTool("volym", IntentSetVol, nil))

	assert.Equal(t, map[string]any{"level": 100}, MapToTool("max", IntentSetVolMax, nil).Args)
	assert.Equal(t, map[string]any{"level": 0}, MapToTool("tyst", IntentSetVolMin, nil).Args)
}

func TestMapTransfer(t *testing.T) {
	devices := testDevices()

	call := MapToTool("casta till teven", IntentTransfer, devices)
	require.NotNil(t, call)
	assert.Equal(t, "TRANSFER", call.Name)
	assert.Equal(t, map[string]any{"device": "tv"}, call.Args)

	call = MapToTool("spela i köket", IntentTransfer, devices)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"room": "köket"}, call.Args)

	// unknown target stays as the raw trailing phrase
	call = MapToTool("byt till stereo", IntentTransfer, devices)
	require.NotNil(t, call)
	assert.Equal(t, map[string]any{"device": "stereo"}, call.Args)

	assert.Nil(t, MapToTool("casta", IntentTransfer, devices))
}

func TestRoute(t *testing.T) {
	call := Route("hoppa fram 30 sek", nil)
	require.NotNil(t, call)
	assert.Equal(t, "SEEK", call.Name)
	assert.Equal(t, 30, call.Args["seconds"])

	assert.Nil(t, Route("vad är klockan", nil))
}
