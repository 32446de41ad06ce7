package world

import (
	"Tiletown/internal/tile"
)

// RecomputeAll refreshes the connection mask of every non-empty anchor.
func (w *World) RecomputeAll() {
	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			c := &w.cells[y][x]
			if c.Anchor && !c.IsEmpty() {
				w.recompute(x, y)
			}
		}
	}
}

// RecomputeOne refreshes the mask of the anchor at (x,y). Anything that is
// not an anchor is left alone.
func (w *World) RecomputeOne(x, y int) {
	if !w.InBounds(x, y) || !w.cells[y][x].Anchor {
		return
	}
	w.recompute(x, y)
}

func (w *World) recompute(x, y int) {
	c := &w.cells[y][x]
	if !c.Kind.Connects() {
		c.Connections = tile.MaskNone
		return
	}
	c.Connections = w.connections(x, y, c.Kind)
	c.Rotation = tile.RotationOf(c.Connections)
}

// connections scans the four edges of the footprint anchored at (x,y). An
// edge connects when any cell along it holds a compatible kind.
func (w *World) connections(x, y int, k tile.Kind) tile.Mask {
	fw, fh := k.Footprint()
	var m tile.Mask
	if w.spanCompatible(k, x, y-1, 1, 0, fw) {
		m = m.Set(tile.Up)
	}
	if w.spanCompatible(k, x+fw, y, 0, 1, fh) {
		m = m.Set(tile.Right)
	}
	if w.spanCompatible(k, x, y+fh, 1, 0, fw) {
		m = m.Set(tile.Down)
	}
	if w.spanCompatible(k, x-1, y, 0, 1, fh) {
		m = m.Set(tile.Left)
	}
	return m
}

func (w *World) spanCompatible(k tile.Kind, x, y, dx, dy, n int) bool {
	for i := 0; i < n; i++ {
		if tile.Compatible(k, w.Kind(x+i*dx, y+i*dy)) {
			return true
		}
	}
	return false
}
