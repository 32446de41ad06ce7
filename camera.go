package main

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type GameCamera struct {
	Offset rl.Vector2
	Zoom   float32
}

func NewGameCamera(x, y float32) GameCamera {
	return GameCamera{Offset: rl.NewVector2(x, y), Zoom: 1.0}
}

// gridToScreen returns the screen position of the top-left corner of cell
// (gridX, gridY).
func (c *GameCamera) gridToScreen(gridX, gridY int) rl.Vector2 {
	return rl.NewVector2(
		float32(gridX*TILE_SIZE)*c.Zoom+c.Offset.X,
		float32(gridY*TILE_SIZE)*c.Zoom+c.Offset.Y,
	)
}

// screenToGrid returns the cell under a screen position, in fractional
// cells.
func (c *GameCamera) screenToGrid(screenPos rl.Vector2) rl.Vector2 {
	return rl.NewVector2(
		(screenPos.X-c.Offset.X)/(TILE_SIZE*c.Zoom),
		(screenPos.Y-c.Offset.Y)/(TILE_SIZE*c.Zoom),
	)
}

func (c *GameCamera) cellAt(screenPos rl.Vector2) (int, int) {
	g := c.screenToGrid(screenPos)
	return int(math.Floor(float64(g.X))), int(math.Floor(float64(g.Y)))
}

func (c *GameCamera) Update(delta float32) {
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		c.Offset.X += PAN_SPEED * delta
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		c.Offset.X -= PAN_SPEED * delta
	}
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		c.Offset.Y += PAN_SPEED * delta
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		c.Offset.Y -= PAN_SPEED * delta
	}

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		c.Offset = rl.Vector2Add(c.Offset, rl.GetMouseDelta())
	}

	// Zoom keeps the point under the mouse fixed.
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		mousePos := rl.GetMousePosition()
		before := c.screenToGrid(mousePos)

		c.Zoom = rl.Clamp(c.Zoom+wheel*0.1, MIN_ZOOM, MAX_ZOOM)

		after := rl.NewVector2(
			before.X*TILE_SIZE*c.Zoom+c.Offset.X,
			before.Y*TILE_SIZE*c.Zoom+c.Offset.Y,
		)
		c.Offset = rl.Vector2Add(c.Offset, rl.Vector2Subtract(mousePos, after))
	}
}
