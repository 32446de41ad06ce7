package tile

// Shape is the silhouette a connection mask renders as. Each shape has one
// base texture; Rotation turns it to match the mask.
type Shape uint8

const (
	Straight Shape = iota
	DeadEnd
	Corner
	TJunction
	Cross

	ShapeCount
)

var shapeNames = [ShapeCount]string{
	Straight:  "Straight",
	DeadEnd:   "DeadEnd",
	Corner:    "Corner",
	TJunction: "TJunction",
	Cross:     "Cross",
}

func (s Shape) String() string {
	if s >= ShapeCount {
		return "Unknown"
	}
	return shapeNames[s]
}

// ShapeOf classifies a connection mask. No connections renders as a plain
// straight piece.
func ShapeOf(m Mask) Shape {
	switch m.Count() {
	case 1:
		return DeadEnd
	case 2:
		if m&MaskAll == MaskUp|MaskDown || m&MaskAll == MaskLeft|MaskRight {
			return Straight
		}
		return Corner
	case 3:
		return TJunction
	case 4:
		return Cross
	default:
		return Straight
	}
}

// RotationOf returns the rotation in degrees for the base texture of
// ShapeOf(m). Dead-ends, corners and straights step clockwise; T-junctions
// step through their missing side up, left, down, right, so a renderer
// turns them the other way (see TextureAngle).
//
// Base textures: straight is horizontal, dead-end opens down, corner joins
// right and down, T-junction is missing up.
func RotationOf(m Mask) int {
	m &= MaskAll
	switch ShapeOf(m) {
	case Straight:
		if m.Has(Up) {
			return 90
		}
		return 0
	case DeadEnd:
		switch {
		case m.Has(Left):
			return 90
		case m.Has(Up):
			return 180
		case m.Has(Right):
			return 270
		}
		return 0
	case Corner:
		switch m {
		case MaskDown | MaskLeft:
			return 90
		case MaskLeft | MaskUp:
			return 180
		case MaskUp | MaskRight:
			return 270
		}
		return 0
	case TJunction:
		// Stepped by the missing direction: up, left, down, right.
		switch MaskAll &^ m {
		case MaskLeft:
			return 90
		case MaskDown:
			return 180
		case MaskRight:
			return 270
		}
		return 0
	}
	return 0
}

// TextureAngle converts a resolved rotation into the clockwise angle that
// turns the shape's base texture onto the mask.
func TextureAngle(s Shape, rotation int) int {
	if s == TJunction {
		return (360 - rotation) % 360
	}
	return rotation
}
