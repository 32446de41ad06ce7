package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tiletown/internal/pathgraph"
	"Tiletown/internal/savefile"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

func TestMaskFor_InvertsResolver(t *testing.T) {
	for m := tile.Mask(1); m <= tile.MaskAll; m++ {
		got := maskFor(tile.ShapeOf(m), tile.RotationOf(m))
		assert.Equal(t, m, got, "mask %04b", m)
	}
}

// sample is a 3x4 world: a track line on row 1 ending in grass, and a
// three-cell path on row 0.
func sample(t *testing.T) (*world.World, *pathgraph.Graph) {
	t.Helper()
	w := world.New(3, 4)
	for x := 0; x < 3; x++ {
		require.True(t, w.Place(x, 0, tile.Path))
		require.True(t, w.Place(x, 1, tile.Track))
	}
	require.True(t, w.Place(3, 1, tile.Grass))
	g := pathgraph.New()
	g.Build(w)
	return w, g
}

func TestDump(t *testing.T) {
	w, g := sample(t)

	var out bytes.Buffer
	require.NoError(t, Dump(&out, w, g, false))
	assert.Equal(t, "░░░ \n╶─╴\"\n    \n", out.String())

	out.Reset()
	require.NoError(t, Dump(&out, w, g, true))
	assert.Equal(t, "o░o \n╶─╴\"\n    \n", out.String())
}

func TestGlyphFor_RoadFootprintRepeatsAnchor(t *testing.T) {
	w := world.New(4, 4)
	require.True(t, w.Place(0, 0, tile.Road))
	require.True(t, w.Place(2, 0, tile.Road))

	anchor, _ := glyphFor(w, 0, 0)
	assert.Equal(t, '╺', anchor)
	covered, _ := glyphFor(w, 1, 1)
	assert.Equal(t, anchor, covered)

	right, _ := glyphFor(w, 3, 1)
	assert.Equal(t, '╸', right)
}

func TestGlyphFor_IsolatedConnector(t *testing.T) {
	w := world.New(2, 2)
	require.True(t, w.Place(0, 0, tile.Water))
	r, _ := glyphFor(w, 0, 0)
	assert.Equal(t, '#', r)
}

func TestViewer_DrawAndKeys(t *testing.T) {
	w, g := sample(t)
	require.True(t, w.PlaceBuilding(world.House, 0, 2))

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(10, 5)

	v := NewViewer(screen, w, g)
	v.Draw()
	r, _, _, _ := screen.GetContent(1, 1)
	assert.Equal(t, '─', r)
	r, _, _, _ = screen.GetContent(0, 2)
	assert.Equal(t, 'H', r)

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)))
	v.Draw()
	r, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, 'o', r)

	assert.True(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	v.Draw()
	r, _, _, _ = screen.GetContent(0, 1)
	assert.Equal(t, '─', r)

	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestLoadWorld_UsesRecordedSize(t *testing.T) {
	w, _ := sample(t)
	path := filepath.Join(t.TempDir(), "world.json")
	require.NoError(t, savefile.Save(w, path))

	loaded, g, err := loadWorld(path)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Rows())
	assert.Equal(t, 4, loaded.Cols())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, tile.Track, loaded.Kind(1, 1))

	_, _, err = loadWorld(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadWorld_ClampsRecordedSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.json")
	doc := `{"rows":100000000,"cols":-3,"tiles":[],"buildings":[]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	w, _, err := loadWorld(path)
	require.NoError(t, err)
	assert.Equal(t, maxSide, w.Rows())
	assert.Equal(t, 0, w.Cols())
}
