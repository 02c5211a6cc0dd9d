package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jarvis/internal/lexicon"
)

func testDevices() *lexicon.Devices {
	return &lexicon.Devices{
		Canonical: []string{"tv", "soundbar"},
		Aliases: map[string]string{
			"teven":      "tv",
			"chromecast": "tv",
			"vita ladan": "soundbar",
		},
	}
}

func TestDevice(t *testing.T) {
	devices := testDevices()
	cases := []struct {
		in   string
		want string
	}{
		{"spela på tv", "tv"},
		{"casta till teven", "tv"},
		{"skicka till chromecast", "tv"},
		{"byt till soundbar", "soundbar"},
		{"casta till vita lådan", "soundbar"}, // multi-word alias only hits via the trailing phrase
		{"byt till stereo", ""},
		{"spela upp", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Device(tc.in, devices), "input %q", tc.in)
	}
}

func TestDeviceNilLexicon(t *testing.T) {
	assert.Equal(t, "", Device("spela på tv", nil))
}
