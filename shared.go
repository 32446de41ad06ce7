package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

const (
	TILE_SIZE     = 16
	UI_HEIGHT     = 120
	GRID_ROWS     = 40
	GRID_COLS     = 60
	PAN_SPEED     = 600.0
	MIN_ZOOM      = 0.25
	MAX_ZOOM      = 3.0
	SAVE_FILE     = "saves/world.json"
	RESOURCES_DIR = "resources"
)

type BuildMode int

const (
	TileMode BuildMode = iota
	BuildingMode
)

// Palette entries in the order the buttons are drawn. Empty is the eraser.
var tilePalette = []tile.Kind{tile.Grass, tile.Path, tile.Road, tile.Water, tile.Track, tile.Empty}

var buildingPalette = []world.BuildingKind{world.RedHouse, world.House, world.PizzaShop, world.NoBuilding}

var tileColors = [tile.KindCount]rl.Color{
	tile.Grass: rl.Lime,
	tile.Path:  rl.LightGray,
	tile.Road:  rl.DarkGray,
	tile.Water: rl.SkyBlue,
	tile.Track: rl.Brown,
}

var buildingColors = [world.BuildingKindCount]rl.Color{
	world.RedHouse:  rl.Red,
	world.House:     rl.Beige,
	world.PizzaShop: rl.Orange,
}

func getTileColor(kind tile.Kind) rl.Color {
	if !kind.Valid() {
		return rl.Blank
	}
	return tileColors[kind]
}

func getTileName(kind tile.Kind) string {
	if kind == tile.Empty {
		return "Erase"
	}
	return kind.String()
}

func getBuildingColor(kind world.BuildingKind) rl.Color {
	if !kind.Valid() {
		return rl.Gray
	}
	return buildingColors[kind]
}

func getBuildingName(kind world.BuildingKind) string {
	if kind == world.NoBuilding {
		return "Remove"
	}
	return kind.String()
}
