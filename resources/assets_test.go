package resources

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestIconsEmbedded(t *testing.T) {
	for _, name := range []string{AppIcon, LockedIcon, UnlockedIcon} {
		resource, err := Icon(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, resource.Name())
		assert.True(t, bytes.HasPrefix(resource.Content(), pngMagic), name)
	}
}

func TestIconCached(t *testing.T) {
	first := MustIcon(LockedIcon)
	second := MustIcon(LockedIcon)
	assert.Same(t, first, second)
}

func TestIconMissing(t *testing.T) {
	_, err := Icon("missing.png")
	assert.Error(t, err)
	assert.Panics(t, func() { MustIcon("missing.png") })
}
