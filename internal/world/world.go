// Package world owns the tile grid and the buildings placed on it. It keeps
// multi-cell footprints consistent and caches each anchor's connection mask.
//
// Every operation is total: reads outside the grid see an empty cell and
// writes outside the grid are rejected without touching anything. Nothing
// here locks; callers that share a World across goroutines serialise access
// themselves.
package world

import (
	"Tiletown/internal/tile"
)

type World struct {
	rows, cols int
	cells      [][]tile.Cell
	buildings  []Building
}

// CellView is what the renderer needs to draw one anchor.
type CellView struct {
	Kind     tile.Kind
	Shape    tile.Shape
	Rotation int
	Width    int
	Height   int
	Anchor   bool
}

func New(rows, cols int) *World {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	w := &World{rows: rows, cols: cols}
	w.cells = make([][]tile.Cell, rows)
	for y := range w.cells {
		w.cells[y] = make([]tile.Cell, cols)
	}
	return w
}

func (w *World) Rows() int { return w.rows }
func (w *World) Cols() int { return w.cols }

func (w *World) InBounds(x, y int) bool {
	return x >= 0 && x < w.cols && y >= 0 && y < w.rows
}

// Cell returns the cell at (x,y), or an empty cell outside the grid.
func (w *World) Cell(x, y int) tile.Cell {
	if !w.InBounds(x, y) {
		return tile.Cell{}
	}
	return w.cells[y][x]
}

// Kind returns the kind at (x,y); Empty outside the grid.
func (w *World) Kind(x, y int) tile.Kind {
	return w.Cell(x, y).Kind
}

// AnchorOf follows the stored offset from (x,y) to the anchor of the
// placement covering it.
func (w *World) AnchorOf(x, y int) (ax, ay int, ok bool) {
	c := w.Cell(x, y)
	if c.IsEmpty() {
		return 0, 0, false
	}
	if c.Anchor {
		return x, y, true
	}
	ax, ay = x+c.OffsetX, y+c.OffsetY
	if !w.InBounds(ax, ay) || !w.cells[ay][ax].Anchor {
		return 0, 0, false
	}
	return ax, ay, true
}

// View describes the cell at (x,y) for rendering. Only anchors carry a
// shape and rotation; non-connecting kinds always render straight at 0°.
func (w *World) View(x, y int) CellView {
	c := w.Cell(x, y)
	fw, fh := c.Kind.Footprint()
	v := CellView{Kind: c.Kind, Width: fw, Height: fh, Anchor: c.Anchor}
	if !c.Anchor || !c.Kind.Connects() {
		return v
	}
	v.Shape = tile.ShapeOf(c.Connections)
	v.Rotation = tile.RotationOf(c.Connections)
	return v
}

// Anchors calls fn for every non-empty anchor in row-major order.
func (w *World) Anchors(fn func(x, y int, c tile.Cell)) {
	for y := 0; y < w.rows; y++ {
		for x := 0; x < w.cols; x++ {
			c := w.cells[y][x]
			if c.Anchor && !c.IsEmpty() {
				fn(x, y, c)
			}
		}
	}
}

// Reset empties every cell and drops all buildings.
func (w *World) Reset() {
	for y := range w.cells {
		for x := range w.cells[y] {
			w.cells[y][x] = tile.Cell{}
		}
	}
	w.buildings = nil
}
