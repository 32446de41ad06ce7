package world

import (
	"slices"

	"github.com/google/uuid"
)

type BuildingKind uint8

const (
	NoBuilding BuildingKind = iota
	RedHouse
	House
	PizzaShop

	BuildingKindCount
)

type buildingSpec struct {
	name    string
	w, h    int
	renderX int // overhang in pixels, before zoom
	renderY int
}

var buildingSpecs = [BuildingKindCount]buildingSpec{
	NoBuilding: {name: "None", w: 1, h: 1},
	// 48x58 texture on a 32x32 footprint: centred, roof sticks up.
	RedHouse:  {name: "Red House", w: 2, h: 2, renderX: -8, renderY: -26},
	House:     {name: "House", w: 1, h: 1},
	PizzaShop: {name: "Pizza Shop", w: 1, h: 1},
}

func (k BuildingKind) Valid() bool {
	return k < BuildingKindCount
}

func (k BuildingKind) String() string {
	if !k.Valid() {
		return "Unknown"
	}
	return buildingSpecs[k].name
}

// Footprint returns the cells a building of kind k covers.
func (k BuildingKind) Footprint() (w, h int) {
	if !k.Valid() {
		return 1, 1
	}
	return buildingSpecs[k].w, buildingSpecs[k].h
}

// Building is a decorative structure on its own layer above the tiles.
type Building struct {
	ID      string
	Kind    BuildingKind
	X, Y    int
	W, H    int
	RenderX int
	RenderY int
}

// NewBuilding returns a building of kind k with its footprint and overhang
// filled in.
func NewBuilding(k BuildingKind, x, y int) Building {
	spec := buildingSpecs[NoBuilding]
	if k.Valid() {
		spec = buildingSpecs[k]
	}
	return Building{
		ID:      uuid.NewString(),
		Kind:    k,
		X:       x,
		Y:       y,
		W:       spec.w,
		H:       spec.h,
		RenderX: spec.renderX,
		RenderY: spec.renderY,
	}
}

// Contains reports whether cell (x,y) lies under b.
func (b Building) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Overlaps reports whether the footprints of a and b share any cell.
// Footprints that only touch along an edge do not overlap.
func (b Building) Overlaps(o Building) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W &&
		b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// CanPlaceBuilding checks b against the grid bounds and every building
// already placed. Tiles underneath are not considered.
func (w *World) CanPlaceBuilding(b Building) bool {
	if b.Kind == NoBuilding || !b.Kind.Valid() {
		return false
	}
	if !w.InBounds(b.X, b.Y) || !w.InBounds(b.X+b.W-1, b.Y+b.H-1) {
		return false
	}
	for _, other := range w.buildings {
		if b.Overlaps(other) {
			return false
		}
	}
	return true
}

func (w *World) PlaceBuilding(k BuildingKind, x, y int) bool {
	return w.AddBuilding(NewBuilding(k, x, y))
}

// AddBuilding appends b, keeping its ID, when CanPlaceBuilding allows it.
func (w *World) AddBuilding(b Building) bool {
	if !w.CanPlaceBuilding(b) {
		return false
	}
	w.buildings = append(w.buildings, b)
	return true
}

// RestoreBuilding appends a building as-is. It is the load path and skips
// overlap validation. An empty id gets a fresh one.
func (w *World) RestoreBuilding(k BuildingKind, x, y int, id string) {
	if k == NoBuilding || !k.Valid() {
		return
	}
	b := NewBuilding(k, x, y)
	if id != "" {
		b.ID = id
	}
	w.buildings = append(w.buildings, b)
}

// RemoveBuilding removes the building covering (x,y), if any.
func (w *World) RemoveBuilding(x, y int) bool {
	for i, b := range w.buildings {
		if b.Contains(x, y) {
			w.buildings = slices.Delete(w.buildings, i, i+1)
			return true
		}
	}
	return false
}

func (w *World) RemoveBuildingByID(id string) bool {
	for i, b := range w.buildings {
		if b.ID == id {
			w.buildings = slices.Delete(w.buildings, i, i+1)
			return true
		}
	}
	return false
}

// BuildingAt returns a copy of the building covering (x,y).
func (w *World) BuildingAt(x, y int) (Building, bool) {
	for _, b := range w.buildings {
		if b.Contains(x, y) {
			return b, true
		}
	}
	return Building{}, false
}

// Buildings returns a copy of the buildings in placement order.
func (w *World) Buildings() []Building {
	return slices.Clone(w.buildings)
}
