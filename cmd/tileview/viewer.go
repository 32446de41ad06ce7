package main

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"

	"Tiletown/internal/pathgraph"
	"Tiletown/internal/world"
)

// Viewer draws a world onto a tcell screen. It owns no state beyond the
// scroll position and overlay toggles.
type Viewer struct {
	screen    tcell.Screen
	world     *world.World
	graph     *pathgraph.Graph
	showNodes bool
	scrollX   int
	scrollY   int
}

func NewViewer(screen tcell.Screen, w *world.World, g *pathgraph.Graph) *Viewer {
	return &Viewer{screen: screen, world: w, graph: g}
}

// cellRune resolves what to show at grid cell (x,y): nodes over buildings
// over tiles.
func (v *Viewer) cellRune(x, y int) (rune, tcell.Style) {
	if v.showNodes {
		if _, ok := v.graph.FindNode(x, y); ok {
			return 'o', nodeStyle
		}
	}
	if b, ok := v.world.BuildingAt(x, y); ok {
		return buildingRune(b, x, y), buildingStyle
	}
	return glyphFor(v.world, x, y)
}

func (v *Viewer) Draw() {
	v.screen.Clear()
	width, height := v.screen.Size()
	for sy := 0; sy < height-1; sy++ {
		for sx := 0; sx < width; sx++ {
			x, y := sx+v.scrollX, sy+v.scrollY
			if !v.world.InBounds(x, y) {
				continue
			}
			r, style := v.cellRune(x, y)
			v.screen.SetContent(sx, sy, r, nil, style)
		}
	}
	v.drawStatus(height - 1)
	v.screen.Show()
}

func (v *Viewer) drawStatus(row int) {
	text := "arrows: scroll  n: nodes  q: quit"
	style := tcell.StyleDefault.Reverse(true)
	for i, r := range []rune(text) {
		v.screen.SetContent(i, row, r, nil, style)
	}
}

// HandleEvent applies one input event and reports whether the viewer
// should keep running.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.scroll(-1, 0)
		case tcell.KeyRight:
			v.scroll(1, 0)
		case tcell.KeyUp:
			v.scroll(0, -1)
		case tcell.KeyDown:
			v.scroll(0, 1)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'n':
				v.showNodes = !v.showNodes
			}
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) scroll(dx, dy int) {
	v.scrollX = clamp(v.scrollX+dx, 0, max(v.world.Cols()-1, 0))
	v.scrollY = clamp(v.scrollY+dy, 0, max(v.world.Rows()-1, 0))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// Run draws and handles events until the user quits.
func (v *Viewer) Run() {
	v.Draw()
	for {
		ev := v.screen.PollEvent()
		if ev == nil || !v.HandleEvent(ev) {
			return
		}
		v.Draw()
	}
}

// Dump writes the glyph grid as plain text, one row per line.
func Dump(out io.Writer, w *world.World, g *pathgraph.Graph, showNodes bool) error {
	v := &Viewer{world: w, graph: g, showNodes: showNodes}
	bw := bufio.NewWriter(out)
	for y := 0; y < w.Rows(); y++ {
		for x := 0; x < w.Cols(); x++ {
			r, _ := v.cellRune(x, y)
			bw.WriteRune(r)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
