package tile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Tiletown/internal/tile"
)

func TestCompatible_Symmetric(t *testing.T) {
	for a := tile.Kind(0); a < tile.KindCount; a++ {
		for b := tile.Kind(0); b < tile.KindCount; b++ {
			assert.Equal(t, tile.Compatible(a, b), tile.Compatible(b, a), "%s/%s", a, b)
		}
	}
}

func TestCompatible_Pairs(t *testing.T) {
	assert.True(t, tile.Compatible(tile.Road, tile.Road))
	assert.True(t, tile.Compatible(tile.Road, tile.Path))
	assert.True(t, tile.Compatible(tile.Track, tile.Track))
	assert.False(t, tile.Compatible(tile.Road, tile.Track))
	assert.False(t, tile.Compatible(tile.Water, tile.Road))
	assert.False(t, tile.Compatible(tile.Empty, tile.Empty))
	assert.False(t, tile.Compatible(tile.KindCount, tile.Road))
}

func TestKind_Tables(t *testing.T) {
	w, h := tile.Road.Footprint()
	assert.Equal(t, 2, w)
	assert.Equal(t, 2, h)
	w, h = tile.Track.Footprint()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	assert.True(t, tile.Road.Connects())
	assert.False(t, tile.Path.Connects())
	assert.False(t, tile.Grass.Connects())
	assert.True(t, tile.Path.Traversable())
	assert.False(t, tile.Road.Traversable())
}

func TestParseKind(t *testing.T) {
	k, ok := tile.ParseKind("3")
	assert.True(t, ok)
	assert.Equal(t, tile.Road, k)

	k, ok = tile.ParseKind("track")
	assert.True(t, ok)
	assert.Equal(t, tile.Track, k)

	_, ok = tile.ParseKind("99")
	assert.False(t, ok)
	_, ok = tile.ParseKind("lava")
	assert.False(t, ok)
}
