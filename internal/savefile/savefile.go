// Package savefile stores a world as JSON: one record per placed tile
// anchor and one per building.
package savefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

var ErrNoWorld = errors.New("savefile: nil world")

type TileRecord struct {
	X        int       `json:"x"`
	Y        int       `json:"y"`
	Type     tile.Kind `json:"type"`
	Rotation int       `json:"rotation"`
}

type BuildingRecord struct {
	X    int                `json:"x"`
	Y    int                `json:"y"`
	Type world.BuildingKind `json:"type"`
	ID   string             `json:"id,omitempty"`
}

type Document struct {
	Rows      int              `json:"rows"`
	Cols      int              `json:"cols"`
	Tiles     []TileRecord     `json:"tiles"`
	Buildings []BuildingRecord `json:"buildings"`
}

// Snapshot captures w as a Document.
func Snapshot(w *world.World) Document {
	doc := Document{
		Rows:      w.Rows(),
		Cols:      w.Cols(),
		Tiles:     []TileRecord{},
		Buildings: []BuildingRecord{},
	}
	w.Anchors(func(x, y int, c tile.Cell) {
		doc.Tiles = append(doc.Tiles, TileRecord{X: x, Y: y, Type: c.Kind, Rotation: c.Rotation})
	})
	for _, b := range w.Buildings() {
		if b.Kind == world.NoBuilding {
			continue
		}
		doc.Buildings = append(doc.Buildings, BuildingRecord{X: b.X, Y: b.Y, Type: b.Kind, ID: b.ID})
	}
	return doc
}

// Apply resets w and replays doc into it through the raw load path, then
// recomputes connectivity once. Tiles outside w are skipped.
func Apply(w *world.World, doc Document) {
	w.Reset()
	for _, t := range doc.Tiles {
		if !w.InBounds(t.X, t.Y) {
			continue
		}
		w.SetRaw(t.X, t.Y, t.Type, t.Rotation)
	}
	for _, b := range doc.Buildings {
		w.RestoreBuilding(b.Type, b.X, b.Y, b.ID)
	}
	w.RecomputeAll()
}

func Encode(out io.Writer, w *world.World) error {
	if w == nil {
		return ErrNoWorld
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot(w)); err != nil {
		return fmt.Errorf("savefile: encode: %w", err)
	}
	return nil
}

func Decode(in io.Reader, w *world.World) error {
	if w == nil {
		return ErrNoWorld
	}
	var doc Document
	if err := json.NewDecoder(in).Decode(&doc); err != nil {
		return fmt.Errorf("savefile: decode: %w", err)
	}
	Apply(w, doc)
	return nil
}

// Save writes w to path, creating parent directories as needed.
func Save(w *world.World, path string) error {
	if w == nil {
		return ErrNoWorld
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("savefile: create %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("savefile: create %s: %w", path, err)
	}
	if err := Encode(f, w); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadDocument parses the save at path without applying it, so a caller
// can size a world from the recorded dimensions first.
func ReadDocument(path string) (Document, error) {
	var doc Document
	f, err := os.Open(path)
	if err != nil {
		return doc, fmt.Errorf("savefile: open %s: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return doc, fmt.Errorf("savefile: decode %s: %w", path, err)
	}
	return doc, nil
}

// Load replaces the contents of w with the save at path. The world keeps its
// own dimensions.
func Load(w *world.World, path string) error {
	if w == nil {
		return ErrNoWorld
	}
	doc, err := ReadDocument(path)
	if err != nil {
		return err
	}
	Apply(w, doc)
	return nil
}
