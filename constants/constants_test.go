package constants

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	t.Setenv("GCT_ADDR", "")
	t.Setenv("GCT_MAX_CHORD_SIZE", "")
	t.Setenv("GCT_WATCH_INTERVAL", "")

	assert := assert.New(t)
	assert.Equal(":8080", GetAddr())
	assert.Equal(DefaultMaxChordSize, GetMaxChordSize())
	assert.Equal(5*time.Second, GetWatchInterval())
}

func TestOverrides(t *testing.T) {
	t.Setenv("GCT_ADDR", ":9000")
	t.Setenv("GCT_MAX_CHORD_SIZE", "6")
	t.Setenv("GCT_DEBOUNCE", "250ms")

	assert := assert.New(t)
	assert.Equal(":9000", GetAddr())
	assert.Equal(6, GetMaxChordSize())
	assert.Equal(250*time.Millisecond, GetDebounce())
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("GCT_MAX_CHORD_SIZE", "-2")
	t.Setenv("GCT_DEBOUNCE", "soon")

	assert.Equal(t, DefaultMaxChordSize, GetMaxChordSize())
	assert.Equal(t, time.Second, GetDebounce())
}
