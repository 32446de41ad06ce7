package world

import (
	"Tiletown/internal/tile"
)

// Fits reports whether a placement of k anchored at (x,y) lies inside the
// grid.
func (w *World) Fits(x, y int, k tile.Kind) bool {
	fw, fh := k.Footprint()
	return w.InBounds(x, y) && w.InBounds(x+fw-1, y+fh-1)
}

// Place writes a placement of k anchored at (x,y), clearing every occupant
// it overlaps first, then recomputes connectivity. Placing Empty clears.
// Returns false, without changing anything, when the footprint does not fit.
func (w *World) Place(x, y int, k tile.Kind) bool {
	if k == tile.Empty {
		return w.Clear(x, y)
	}
	if !k.Valid() || !w.Fits(x, y, k) {
		return false
	}
	fw, fh := k.Footprint()
	for dy := 0; dy < fh; dy++ {
		for dx := 0; dx < fw; dx++ {
			w.clearOccupant(x+dx, y+dy)
		}
	}
	w.write(x, y, k, 0)
	w.RecomputeAll()
	return true
}

// Clear removes the whole placement covering (x,y), wherever its anchor
// is, then recomputes connectivity. Returns false when (x,y) is outside the
// grid.
func (w *World) Clear(x, y int) bool {
	if !w.InBounds(x, y) {
		return false
	}
	w.clearOccupant(x, y)
	w.RecomputeAll()
	return true
}

// SetRaw writes kind, rotation and footprint bookkeeping for a placement
// anchored at (x,y) without clearing overlapped occupants or recomputing
// connectivity. Loaders call RecomputeAll once when done. A footprint that
// runs off the grid is clipped.
func (w *World) SetRaw(x, y int, k tile.Kind, rotation int) bool {
	if !w.InBounds(x, y) || !k.Valid() {
		return false
	}
	if k == tile.Empty {
		w.cells[y][x] = tile.Cell{}
		return true
	}
	w.write(x, y, k, rotation)
	return true
}

func (w *World) write(x, y int, k tile.Kind, rotation int) {
	fw, fh := k.Footprint()
	for dy := 0; dy < fh; dy++ {
		for dx := 0; dx < fw; dx++ {
			if !w.InBounds(x+dx, y+dy) {
				continue
			}
			if dx == 0 && dy == 0 {
				w.cells[y][x] = tile.AnchorCell(k, rotation)
				continue
			}
			w.cells[y+dy][x+dx] = tile.CoveredCell(k, dx, dy)
		}
	}
}

// clearOccupant zeroes every cell of the placement covering (x,y). A cell
// whose anchor cannot be found is zeroed on its own.
func (w *World) clearOccupant(x, y int) {
	c := w.Cell(x, y)
	if c.IsEmpty() {
		return
	}
	ax, ay, ok := w.AnchorOf(x, y)
	if !ok {
		w.cells[y][x] = tile.Cell{}
		return
	}
	k := w.cells[ay][ax].Kind
	fw, fh := k.Footprint()
	for dy := 0; dy < fh; dy++ {
		for dx := 0; dx < fw; dx++ {
			cx, cy := ax+dx, ay+dy
			if !w.InBounds(cx, cy) {
				continue
			}
			cc := w.cells[cy][cx]
			// Only cells that still point back to this anchor belong to it.
			if cc.IsEmpty() || cx+cc.OffsetX != ax || cy+cc.OffsetY != ay {
				continue
			}
			w.cells[cy][cx] = tile.Cell{}
		}
	}
}
