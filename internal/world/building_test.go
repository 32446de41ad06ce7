package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

func TestNewBuilding_Footprint(t *testing.T) {
	b := world.NewBuilding(world.RedHouse, 3, 4)
	assert.Equal(t, 2, b.W)
	assert.Equal(t, 2, b.H)
	assert.Equal(t, -8, b.RenderX)
	assert.Equal(t, -26, b.RenderY)
	assert.NotEmpty(t, b.ID)

	h := world.NewBuilding(world.House, 0, 0)
	assert.Equal(t, 1, h.W)
	assert.NotEqual(t, b.ID, h.ID)
}

func TestBuilding_Overlaps(t *testing.T) {
	a := world.NewBuilding(world.RedHouse, 2, 2)
	cases := []struct {
		name string
		x, y int
		want bool
	}{
		{"Same", 2, 2, true},
		{"Inside", 3, 3, true},
		{"CornerOverlap", 1, 1, true},
		{"TouchRight", 4, 2, false},
		{"TouchBelow", 2, 4, false},
		{"TouchLeft", 0, 2, false},
		{"TouchDiagonal", 4, 4, false},
		{"Far", 8, 8, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := world.NewBuilding(world.RedHouse, tc.x, tc.y)
			assert.Equal(t, tc.want, a.Overlaps(b))
			assert.Equal(t, tc.want, b.Overlaps(a))
		})
	}
}

func TestPlaceBuilding_RejectsOverlap(t *testing.T) {
	w := world.New(10, 10)
	require.True(t, w.PlaceBuilding(world.RedHouse, 2, 2))
	assert.False(t, w.PlaceBuilding(world.RedHouse, 3, 3))
	assert.False(t, w.PlaceBuilding(world.House, 3, 2))
	assert.Len(t, w.Buildings(), 1)
}

func TestPlaceBuilding_EdgeSharingAllowed(t *testing.T) {
	w := world.New(10, 10)
	require.True(t, w.PlaceBuilding(world.RedHouse, 2, 2))
	assert.True(t, w.PlaceBuilding(world.RedHouse, 4, 2))
	assert.True(t, w.PlaceBuilding(world.RedHouse, 2, 4))
	assert.True(t, w.PlaceBuilding(world.House, 1, 2))
	assert.Len(t, w.Buildings(), 4)
}

func TestPlaceBuilding_Bounds(t *testing.T) {
	w := world.New(5, 5)
	assert.False(t, w.PlaceBuilding(world.RedHouse, 4, 0))
	assert.False(t, w.PlaceBuilding(world.RedHouse, 0, 4))
	assert.False(t, w.PlaceBuilding(world.House, -1, 0))
	assert.False(t, w.PlaceBuilding(world.NoBuilding, 0, 0))
	assert.True(t, w.PlaceBuilding(world.RedHouse, 3, 3))
}

// Buildings live on their own layer: tiles underneath neither block them
// nor see them.
func TestPlaceBuilding_IgnoresTiles(t *testing.T) {
	w := world.New(5, 5)
	require.True(t, w.Place(0, 0, tile.Track))
	require.True(t, w.Place(1, 0, tile.Track))
	require.True(t, w.PlaceBuilding(world.RedHouse, 0, 0))
	assert.Equal(t, tile.MaskRight, w.Cell(0, 0).Connections)
}

func TestRemoveBuilding(t *testing.T) {
	w := world.New(6, 6)
	require.True(t, w.PlaceBuilding(world.RedHouse, 1, 1))
	require.True(t, w.PlaceBuilding(world.PizzaShop, 4, 4))

	b, ok := w.BuildingAt(2, 2)
	require.True(t, ok)
	assert.Equal(t, world.RedHouse, b.Kind)
	_, ok = w.BuildingAt(0, 0)
	assert.False(t, ok)

	assert.False(t, w.RemoveBuilding(0, 0))
	assert.True(t, w.RemoveBuilding(2, 1))
	_, ok = w.BuildingAt(1, 1)
	assert.False(t, ok)
	assert.Len(t, w.Buildings(), 1)
	assert.True(t, w.PlaceBuilding(world.House, 1, 1))
}

func TestRestoreBuilding_SkipsValidation(t *testing.T) {
	w := world.New(6, 6)
	w.RestoreBuilding(world.RedHouse, 1, 1, "")
	w.RestoreBuilding(world.RedHouse, 2, 2, "kept-id")
	w.RestoreBuilding(world.NoBuilding, 0, 0, "")
	bs := w.Buildings()
	require.Len(t, bs, 2)
	assert.NotEmpty(t, bs[0].ID)
	assert.Equal(t, "kept-id", bs[1].ID)
}

func TestAddBuilding_KeepsID(t *testing.T) {
	w := world.New(6, 6)
	b := world.NewBuilding(world.House, 2, 2)
	b.ID = "from-server"
	require.True(t, w.AddBuilding(b))
	assert.False(t, w.AddBuilding(world.NewBuilding(world.House, 2, 2)))

	got, ok := w.BuildingAt(2, 2)
	require.True(t, ok)
	assert.Equal(t, "from-server", got.ID)

	assert.False(t, w.RemoveBuildingByID("missing"))
	assert.True(t, w.RemoveBuildingByID("from-server"))
	assert.Empty(t, w.Buildings())
}

func TestBuildings_ReturnsCopy(t *testing.T) {
	w := world.New(6, 6)
	require.True(t, w.PlaceBuilding(world.House, 0, 0))
	require.True(t, w.PlaceBuilding(world.PizzaShop, 3, 3))
	kept := w.Buildings()

	require.True(t, w.RemoveBuilding(0, 0))
	w.Reset()
	require.Len(t, kept, 2)
	assert.Equal(t, world.House, kept[0].Kind)
	assert.Equal(t, world.PizzaShop, kept[1].Kind)

	kept[0].Kind = world.RedHouse
	assert.Empty(t, w.Buildings())
}

func TestBuildingKind_Footprint(t *testing.T) {
	w, h := world.RedHouse.Footprint()
	assert.Equal(t, [2]int{2, 2}, [2]int{w, h})
	w, h = world.BuildingKind(99).Footprint()
	assert.Equal(t, [2]int{1, 1}, [2]int{w, h})
}
