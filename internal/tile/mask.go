package tile

import "math/bits"

type Dir uint8

const (
	Up Dir = iota
	Right
	Down
	Left
)

// DX and DY are the grid steps for Up, Right, Down, Left.
var (
	DX = [4]int{0, 1, 0, -1}
	DY = [4]int{-1, 0, 1, 0}
)

func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

func (d Dir) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Mask holds one bit per cardinal edge.
type Mask uint8

const (
	MaskUp Mask = 1 << iota
	MaskRight
	MaskDown
	MaskLeft

	MaskNone Mask = 0
	MaskAll       = MaskUp | MaskRight | MaskDown | MaskLeft
)

func (d Dir) Bit() Mask {
	return 1 << d
}

func (m Mask) Has(d Dir) bool {
	return m&d.Bit() != 0
}

func (m Mask) Set(d Dir) Mask {
	return m | d.Bit()
}

func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m & MaskAll))
}
