package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage(t *testing.T) {
	assert.Equal(t, "svenska", Language("byt till svenska"))
	assert.Equal(t, "svenska", Language("svenskt tal"))
	assert.Equal(t, "engelska", Language("spela på engelska"))
	assert.Equal(t, "", Language("spela upp"))
}

func TestExtract(t *testing.T) {
	bag := Extract("hoppa fram 30 sek")
	if assert.NotNil(t, bag.Seconds) {
		assert.Equal(t, 30, *bag.Seconds)
	}
	assert.False(t, bag.Empty())

	bag = Extract("sätt volymen till 50%")
	if assert.NotNil(t, bag.Level) {
		assert.Equal(t, 50, *bag.Level)
	}

	assert.True(t, Extract("hej där").Empty())
}
