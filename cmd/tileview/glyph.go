package main

import (
	"github.com/gdamore/tcell/v2"

	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

// Box-drawing runes indexed by connection mask (Up=1 Right=2 Down=4 Left=8).
var (
	lightBox  = [16]rune{'·', '╵', '╶', '└', '╷', '│', '┌', '├', '╴', '┘', '─', '┴', '┐', '┤', '┬', '┼'}
	heavyBox  = [16]rune{'#', '╹', '╺', '┗', '╻', '┃', '┏', '┣', '╸', '┛', '━', '┻', '┓', '┫', '┳', '╋'}
	doubleBox = [16]rune{'~', '║', '═', '╚', '║', '║', '╔', '╠', '═', '╝', '═', '╩', '╗', '╣', '╦', '╬'}
)

var baseMasks = [tile.ShapeCount]tile.Mask{
	tile.Straight:  tile.MaskLeft | tile.MaskRight,
	tile.DeadEnd:   tile.MaskDown,
	tile.Corner:    tile.MaskRight | tile.MaskDown,
	tile.TJunction: tile.MaskRight | tile.MaskDown | tile.MaskLeft,
	tile.Cross:     tile.MaskAll,
}

// maskFor turns a shape's base mask onto the mask its rotation describes.
func maskFor(shape tile.Shape, rotation int) tile.Mask {
	if shape >= tile.ShapeCount {
		return tile.MaskNone
	}
	m := baseMasks[shape]
	for turns := (tile.TextureAngle(shape, rotation) / 90) % 4; turns > 0; turns-- {
		m = (m<<1 | m>>3) & tile.MaskAll
	}
	return m
}

var kindStyles = [tile.KindCount]tcell.Style{
	tile.Empty: tcell.StyleDefault,
	tile.Grass: tcell.StyleDefault.Foreground(tcell.ColorGreen),
	tile.Path:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
	tile.Road:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
	tile.Water: tcell.StyleDefault.Foreground(tcell.ColorBlue),
	tile.Track: tcell.StyleDefault.Foreground(tcell.ColorOlive),
}

var (
	nodeStyle     = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	buildingStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// glyphFor picks the rune for cell (x,y). Covered cells of a larger
// footprint repeat their anchor's glyph.
func glyphFor(w *world.World, x, y int) (rune, tcell.Style) {
	if ax, ay, ok := w.AnchorOf(x, y); ok {
		x, y = ax, ay
	}
	view := w.View(x, y)
	if !view.Kind.Valid() {
		return '?', tcell.StyleDefault
	}
	style := kindStyles[view.Kind]

	switch view.Kind {
	case tile.Empty:
		return ' ', style
	case tile.Grass:
		return '"', style
	case tile.Path:
		return '░', style
	}

	// An isolated connecting tile has no shape to show.
	if w.Cell(x, y).Connections == tile.MaskNone {
		return heavyBox[0], style
	}
	m := maskFor(view.Shape, view.Rotation)
	switch view.Kind {
	case tile.Road:
		return heavyBox[m], style
	case tile.Water:
		return doubleBox[m], style
	default:
		return lightBox[m], style
	}
}

// buildingRune marks the top-left cell of a building with its initial and
// the rest of its footprint with a shade.
func buildingRune(b world.Building, x, y int) rune {
	if x == b.X && y == b.Y {
		return []rune(b.Kind.String())[0]
	}
	return '▒'
}
