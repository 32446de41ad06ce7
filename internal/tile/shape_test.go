package tile_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tiletown/internal/tile"
)

func TestShapeOf_AllMasks(t *testing.T) {
	cases := []struct {
		mask  tile.Mask
		shape tile.Shape
		rot   int
	}{
		{tile.MaskNone, tile.Straight, 0},
		{tile.MaskUp, tile.DeadEnd, 180},
		{tile.MaskRight, tile.DeadEnd, 270},
		{tile.MaskDown, tile.DeadEnd, 0},
		{tile.MaskLeft, tile.DeadEnd, 90},
		{tile.MaskUp | tile.MaskDown, tile.Straight, 90},
		{tile.MaskLeft | tile.MaskRight, tile.Straight, 0},
		{tile.MaskRight | tile.MaskDown, tile.Corner, 0},
		{tile.MaskDown | tile.MaskLeft, tile.Corner, 90},
		{tile.MaskLeft | tile.MaskUp, tile.Corner, 180},
		{tile.MaskUp | tile.MaskRight, tile.Corner, 270},
		{tile.MaskRight | tile.MaskDown | tile.MaskLeft, tile.TJunction, 0},
		{tile.MaskUp | tile.MaskRight | tile.MaskDown, tile.TJunction, 90},
		{tile.MaskUp | tile.MaskRight | tile.MaskLeft, tile.TJunction, 180},
		{tile.MaskUp | tile.MaskDown | tile.MaskLeft, tile.TJunction, 270},
		{tile.MaskAll, tile.Cross, 0},
	}
	require.Len(t, cases, 16, "every mask value must be covered")

	seen := make(map[tile.Mask]bool)
	for _, tc := range cases {
		t.Run(fmt.Sprintf("mask=%04b", tc.mask), func(t *testing.T) {
			assert.Equal(t, tc.shape, tile.ShapeOf(tc.mask))
			assert.Equal(t, tc.rot, tile.RotationOf(tc.mask))
		})
		seen[tc.mask] = true
	}
	assert.Len(t, seen, 16)
}

func TestShapeOf_OppositePairsNeverCorner(t *testing.T) {
	for _, m := range []tile.Mask{tile.MaskUp | tile.MaskDown, tile.MaskLeft | tile.MaskRight} {
		assert.Equal(t, tile.Straight, tile.ShapeOf(m))
	}
}

// Corners must each get their own rotation so one texture covers all four.
func TestRotationOf_CornersDistinct(t *testing.T) {
	rots := make(map[int]tile.Mask)
	for m := tile.Mask(0); m <= tile.MaskAll; m++ {
		if tile.ShapeOf(m) != tile.Corner {
			continue
		}
		r := tile.RotationOf(m)
		_, dup := rots[r]
		require.False(t, dup, "rotation %d reused by mask %04b", r, m)
		rots[r] = m
	}
	assert.Len(t, rots, 4)
}

func TestRotationOf_Deterministic(t *testing.T) {
	for m := tile.Mask(0); m <= tile.MaskAll; m++ {
		r := tile.RotationOf(m)
		assert.Contains(t, []int{0, 90, 180, 270}, r)
		assert.Equal(t, r, tile.RotationOf(m))
		assert.Equal(t, tile.ShapeOf(m), tile.ShapeOf(m))
	}
}

func TestRotationOf_TJunctionByMissingSide(t *testing.T) {
	assert.Equal(t, 0, tile.RotationOf(tile.MaskAll&^tile.MaskUp))
	assert.Equal(t, 90, tile.RotationOf(tile.MaskAll&^tile.MaskLeft))
	assert.Equal(t, 180, tile.RotationOf(tile.MaskAll&^tile.MaskDown))
	assert.Equal(t, 270, tile.RotationOf(tile.MaskAll&^tile.MaskRight))
}

func TestTextureAngle(t *testing.T) {
	assert.Equal(t, 270, tile.TextureAngle(tile.TJunction, 90))
	assert.Equal(t, 90, tile.TextureAngle(tile.TJunction, 270))
	assert.Equal(t, 180, tile.TextureAngle(tile.TJunction, 180))
	assert.Equal(t, 0, tile.TextureAngle(tile.TJunction, 0))
	assert.Equal(t, 90, tile.TextureAngle(tile.Corner, 90))
}

func ExampleShapeOf() {
	m := tile.MaskNone.Set(tile.Up).Set(tile.Right)
	fmt.Println(tile.ShapeOf(m), tile.RotationOf(m))
	// Output: Corner 270
}
