package main

import (
	"log"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

// TileTextures holds one base texture per kind and shape. Kinds that do not
// connect only use the Straight slot.
type TileTextures struct {
	textures [tile.KindCount][tile.ShapeCount]rl.Texture2D
	has      [tile.KindCount][tile.ShapeCount]bool
}

// Files are named <kind>_<shape>.png, e.g. road_corner.png.
func (t *TileTextures) Load(dir string) {
	for k := tile.Grass; k < tile.KindCount; k++ {
		for s := tile.Straight; s < tile.ShapeCount; s++ {
			if !k.Connects() && s != tile.Straight {
				continue
			}
			name := strings.ToLower(k.String()) + "_" + strings.ToLower(s.String()) + ".png"
			path := filepath.Join(dir, name)
			if !rl.FileExists(path) {
				continue
			}
			t.textures[k][s] = rl.LoadTexture(path)
			t.has[k][s] = true
		}
	}
	log.Printf("[Main] Tile textures loaded from %s", dir)
}

func (t *TileTextures) Unload() {
	for k := range t.textures {
		for s := range t.textures[k] {
			if t.has[k][s] {
				rl.UnloadTexture(t.textures[k][s])
			}
			t.has[k][s] = false
		}
	}
}

func (t *TileTextures) Get(kind tile.Kind, shape tile.Shape) (rl.Texture2D, bool) {
	if !kind.Valid() || shape >= tile.ShapeCount {
		return rl.Texture2D{}, false
	}
	return t.textures[kind][shape], t.has[kind][shape]
}

type BuildingTextures struct {
	textures [world.BuildingKindCount]rl.Texture2D
	has      [world.BuildingKindCount]bool
}

var buildingFiles = [world.BuildingKindCount]string{
	world.RedHouse:  "redHouse.png",
	world.House:     "house.png",
	world.PizzaShop: "pizzaShop.png",
}

func (t *BuildingTextures) Load(dir string) {
	for k, name := range buildingFiles {
		if name == "" {
			continue
		}
		path := filepath.Join(dir, name)
		if !rl.FileExists(path) {
			continue
		}
		t.textures[k] = rl.LoadTexture(path)
		t.has[k] = true
	}
}

func (t *BuildingTextures) Unload() {
	for k := range t.textures {
		if t.has[k] {
			rl.UnloadTexture(t.textures[k])
		}
		t.has[k] = false
	}
}

func (t *BuildingTextures) Get(kind world.BuildingKind) (rl.Texture2D, bool) {
	if !kind.Valid() {
		return rl.Texture2D{}, false
	}
	return t.textures[kind], t.has[kind]
}
