// Package sandbox is a single-player game session: the world lives in this
// process and every edit applies immediately.
package sandbox

import (
	"fmt"

	"Tiletown/internal/lobby"
	"Tiletown/internal/pathgraph"
	"Tiletown/internal/savefile"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

type Session struct {
	world  *world.World
	graph  *pathgraph.Graph
	status string
}

func New(rows, cols int) *Session {
	s := &Session{world: world.New(rows, cols), graph: pathgraph.New()}
	s.graph.Build(s.world)
	return s
}

// PlaceTile, PlaceBuilding and RemoveBuilding report a rejected edit in
// Status; an accepted edit clears it.
func (s *Session) PlaceTile(x, y int, kind tile.Kind) {
	if !s.world.Place(x, y, kind) {
		s.status = fmt.Sprintf("%s does not fit here!", kind)
		return
	}
	s.status = ""
	s.graph.Build(s.world)
}

func (s *Session) PlaceBuilding(x, y int, kind world.BuildingKind) {
	if !s.world.PlaceBuilding(kind, x, y) {
		s.status = fmt.Sprintf("%s does not fit here!", kind)
		return
	}
	s.status = ""
}

func (s *Session) RemoveBuilding(x, y int) {
	if !s.world.RemoveBuilding(x, y) {
		s.status = "No building here."
		return
	}
	s.status = ""
}

func (s *Session) Cursor(float32, float32) {}

func (s *Session) Save(path string) error {
	if err := savefile.Save(s.world, path); err != nil {
		return err
	}
	s.status = "Saved to " + path
	return nil
}

func (s *Session) Load(path string) error {
	if err := savefile.Load(s.world, path); err != nil {
		return err
	}
	s.graph.Build(s.world)
	s.status = "Loaded " + path
	return nil
}

// View has no other players, so cursors is always nil.
func (s *Session) View(fn func(w *world.World, g *pathgraph.Graph, cursors map[string]lobby.PlayerCursor)) {
	fn(s.world, s.graph, nil)
}

func (s *Session) Status() string { return s.status }
func (s *Session) Alive() bool    { return true }
func (s *Session) Close()         {}
