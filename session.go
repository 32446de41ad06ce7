package main

import (
	"log"

	"Tiletown/internal/lobby"
	"Tiletown/internal/pathgraph"
	"Tiletown/internal/savefile"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

// Session is where the in-game screen sends edits and reads the world from.
// *sandbox.Session and *lobbySession implement it.
type Session interface {
	PlaceTile(x, y int, kind tile.Kind)
	PlaceBuilding(x, y int, kind world.BuildingKind)
	RemoveBuilding(x, y int)
	Cursor(x, y float32)
	Save(path string) error
	Load(path string) error
	View(fn func(w *world.World, g *pathgraph.Graph, cursors map[string]lobby.PlayerCursor))
	Status() string
	Alive() bool
	Close()
}

// lobbySession forwards edits to a server and draws the client's replica.
// When this process also hosts, saves and loads go straight to the server's
// world.
type lobbySession struct {
	client *lobby.Client
	host   *lobby.Server
	status string
}

func (s *lobbySession) report(err error) {
	if err != nil {
		log.Printf("[Main] Send failed: %v", err)
	}
}

func (s *lobbySession) PlaceTile(x, y int, kind tile.Kind) {
	s.report(s.client.SendTile(x, y, kind))
}

func (s *lobbySession) PlaceBuilding(x, y int, kind world.BuildingKind) {
	s.report(s.client.SendBuilding(x, y, kind))
}

func (s *lobbySession) RemoveBuilding(x, y int) {
	s.report(s.client.SendDelete(x, y))
}

func (s *lobbySession) Cursor(x, y float32) {
	s.client.SendCursor(x, y)
}

func (s *lobbySession) Save(path string) error {
	var err error
	if s.host != nil {
		s.host.View(func(w *world.World) { err = savefile.Save(w, path) })
	} else {
		s.client.View(func(w *world.World, _ *pathgraph.Graph, _ map[string]lobby.PlayerCursor) {
			err = savefile.Save(w, path)
		})
	}
	if err == nil {
		s.status = "Saved to " + path
	}
	return err
}

func (s *lobbySession) Load(path string) error {
	if s.host == nil {
		return errOnlyHostLoads
	}
	err := s.host.Replace(func(w *world.World) error {
		return savefile.Load(w, path)
	})
	if err == nil {
		s.status = "Loaded " + path
	}
	return err
}

func (s *lobbySession) View(fn func(w *world.World, g *pathgraph.Graph, cursors map[string]lobby.PlayerCursor)) {
	s.client.View(fn)
}

// Status prefers the server's last message over local save/load results.
func (s *lobbySession) Status() string {
	if st := s.client.Status(); st != "" {
		return st
	}
	return s.status
}

func (s *lobbySession) Alive() bool {
	return s.client.Connected()
}

func (s *lobbySession) Close() {
	s.client.Disconnect()
	if s.host != nil {
		s.host.Stop()
	}
}
