package tile

// Cell is one grid square. The top-left cell of a placement is its anchor
// and owns Connections and Rotation; every other covered cell stores a
// negative offset back to the anchor and carries the same Kind.
type Cell struct {
	Kind        Kind
	Connections Mask
	Rotation    int
	Anchor      bool
	OffsetX     int
	OffsetY     int
}

// IsEmpty reports whether nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// AnchorCell returns the anchor cell of a placement of kind k.
func AnchorCell(k Kind, rotation int) Cell {
	return Cell{Kind: k, Rotation: rotation, Anchor: true}
}

// CoveredCell returns a non-anchor cell of a placement of kind k whose
// anchor sits dx, dy cells up and left of it.
func CoveredCell(k Kind, dx, dy int) Cell {
	return Cell{Kind: k, OffsetX: -dx, OffsetY: -dy}
}
