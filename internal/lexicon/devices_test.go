package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLexicon(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDevices(t *testing.T) {
	path := writeLexicon(t, `{
		"canonical": ["tv", "soundbar"],
		"aliases": {"teven": "tv"}
	}`)

	d, err := LoadDevices(path)
	require.NoError(t, err)
	assert.Len(t, d.Canonical, 2)

	dev, ok := d.Resolve("teven")
	assert.True(t, ok)
	assert.Equal(t, "tv", dev)

	dev, ok = d.Resolve("soundbar")
	assert.True(t, ok)
	assert.Equal(t, "soundbar", dev)

	_, ok = d.Resolve("stereo")
	assert.False(t, ok)
}

func TestLoadDevicesNoAliases(t *testing.T) {
	d, err := LoadDevices(writeLexicon(t, `{"canonical": ["tv"]}`))
	require.NoError(t, err)
	assert.NotNil(t, d.Aliases)
}

func TestLoadDevicesErrors(t *testing.T) {
	_, err := LoadDevices(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)

	_, err = LoadDevices(writeLexicon(t, `{broken`))
	assert.Error(t, err)

	_, err = LoadDevices(writeLexicon(t, `{}`))
	assert.Error(t, err)
}
