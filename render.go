package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"Tiletown/internal/lobby"
	"Tiletown/internal/pathgraph"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

func drawGrid(cam *GameCamera, w *world.World) {
	if !showGrid {
		return
	}
	gridColor := rl.NewColor(200, 200, 200, 100)
	top := cam.gridToScreen(0, 0)
	bottom := cam.gridToScreen(w.Cols(), w.Rows())

	for x := 0; x <= w.Cols(); x++ {
		sx := cam.gridToScreen(x, 0).X
		rl.DrawLineV(rl.NewVector2(sx, top.Y), rl.NewVector2(sx, bottom.Y), gridColor)
	}
	for y := 0; y <= w.Rows(); y++ {
		sy := cam.gridToScreen(0, y).Y
		rl.DrawLineV(rl.NewVector2(top.X, sy), rl.NewVector2(bottom.X, sy), gridColor)
	}
}

// drawTiles draws every anchor once across its whole footprint.
func drawTiles(cam *GameCamera, w *world.World, textures *TileTextures) {
	for y := 0; y < w.Rows(); y++ {
		for x := 0; x < w.Cols(); x++ {
			view := w.View(x, y)
			if !view.Anchor {
				continue
			}
			pos := cam.gridToScreen(x, y)
			width := float32(view.Width*TILE_SIZE) * cam.Zoom
			height := float32(view.Height*TILE_SIZE) * cam.Zoom

			tex, ok := textures.Get(view.Kind, view.Shape)
			if !ok {
				rl.DrawRectangleV(pos, rl.NewVector2(width, height), getTileColor(view.Kind))
				continue
			}
			// Rotate about the footprint centre.
			source := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
			dest := rl.NewRectangle(pos.X+width/2, pos.Y+height/2, width, height)
			origin := rl.NewVector2(width/2, height/2)
			rl.DrawTexturePro(tex, source, dest, origin, float32(tile.TextureAngle(view.Shape, view.Rotation)), rl.White)
		}
	}
}

func drawBuildings(cam *GameCamera, w *world.World, textures *BuildingTextures) {
	for _, b := range w.Buildings() {
		pos := cam.gridToScreen(b.X, b.Y)
		tex, ok := textures.Get(b.Kind)
		if !ok {
			size := rl.NewVector2(float32(b.W*TILE_SIZE)*cam.Zoom, float32(b.H*TILE_SIZE)*cam.Zoom)
			rect := rl.NewRectangle(pos.X, pos.Y, size.X, size.Y)
			rl.DrawRectangleRec(rect, getBuildingColor(b.Kind))
			rl.DrawRectangleLinesEx(rect, 2, rl.Black)
			continue
		}
		source := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		dest := rl.NewRectangle(
			pos.X+float32(b.RenderX)*cam.Zoom,
			pos.Y+float32(b.RenderY)*cam.Zoom,
			float32(tex.Width)*cam.Zoom,
			float32(tex.Height)*cam.Zoom,
		)
		rl.DrawTexturePro(tex, source, dest, rl.NewVector2(0, 0), 0, rl.White)
	}
}

// drawPathGraph overlays corridors in yellow and nodes in green.
func drawPathGraph(cam *GameCamera, g *pathgraph.Graph) {
	if !showPathGraph {
		return
	}
	halfTile := TILE_SIZE * cam.Zoom * 0.5
	center := func(n pathgraph.Node) rl.Vector2 {
		p := cam.gridToScreen(n.X, n.Y)
		return rl.NewVector2(p.X+halfTile, p.Y+halfTile)
	}

	nodes := g.Nodes()
	for _, seg := range g.Segments() {
		rl.DrawLineEx(center(nodes[seg.From]), center(nodes[seg.To]), 2.0, rl.Yellow)
	}
	for _, n := range nodes {
		rl.DrawCircleV(center(n), 4*cam.Zoom, rl.Green)
	}
}

func drawHover(cam *GameCamera, w *world.World) {
	mousePos := rl.GetMousePosition()
	if mousePos.Y <= UI_HEIGHT {
		return
	}
	x, y := cam.cellAt(mousePos)
	if !w.InBounds(x, y) {
		return
	}
	fw, fh := 1, 1
	if currentBuildMode == TileMode {
		fw, fh = currentTileKind.Footprint()
	} else if currentBuildingKind != world.NoBuilding {
		fw, fh = currentBuildingKind.Footprint()
	}
	pos := cam.gridToScreen(x, y)
	rect := rl.NewRectangle(pos.X, pos.Y, float32(fw*TILE_SIZE)*cam.Zoom, float32(fh*TILE_SIZE)*cam.Zoom)
	rl.DrawRectangleLinesEx(rect, 2, rl.NewColor(255, 255, 255, 180))
}

func drawCursors(cam *GameCamera, cursors map[string]lobby.PlayerCursor) {
	for _, cursor := range cursors {
		p := rl.NewVector2(cursor.X*TILE_SIZE*cam.Zoom+cam.Offset.X, cursor.Y*TILE_SIZE*cam.Zoom+cam.Offset.Y)
		rl.DrawCircleV(p, 6*cam.Zoom, rl.Red)
		rl.DrawText(cursor.Name, int32(p.X)-20, int32(p.Y)-22, 16, rl.Black)
	}
}
