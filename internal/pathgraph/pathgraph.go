// Package pathgraph extracts a routing graph from the walkable cells of a
// tile grid.
//
// What:
//
//   - A node sits on every walkable cell that is a dead end, a corner or a
//     junction (3 or 4 walkable neighbours).
//   - An edge is a corridor of straight pass-through cells between two
//     nodes. Its cost counts every cell of the corridor, both endpoints
//     included, so two adjacent nodes are joined at cost 2.
//
// Build always starts from scratch; node indices are only meaningful until
// the next Build.
//
// Complexity: O(rows×cols) time and memory.
package pathgraph

import (
	"Tiletown/internal/tile"
)

// Grid is the read side of a tile grid.
type Grid interface {
	Rows() int
	Cols() int
	Kind(x, y int) tile.Kind
}

// Edge is a directed record of a corridor leaving a node.
type Edge struct {
	To   int
	Cost int
}

type Node struct {
	X, Y  int
	Edges []Edge
}

// Segment is one corridor listed once, From < To.
type Segment struct {
	From, To int
	Cost     int
}

type Graph struct {
	nodes []Node
	index map[int]int
	cols  int
}

func New() *Graph {
	return &Graph{index: make(map[int]int)}
}

func (g *Graph) key(x, y int) int {
	return y*g.cols + x
}

func walkable(grid Grid, x, y int) bool {
	if x < 0 || y < 0 || x >= grid.Cols() || y >= grid.Rows() {
		return false
	}
	return grid.Kind(x, y).Traversable()
}

// neighbours returns which of the four directions hold a walkable cell.
func neighbours(grid Grid, x, y int) tile.Mask {
	var m tile.Mask
	for d := tile.Up; d <= tile.Left; d++ {
		if walkable(grid, x+tile.DX[d], y+tile.DY[d]) {
			m = m.Set(d)
		}
	}
	return m
}

func isNode(grid Grid, x, y int) bool {
	if !walkable(grid, x, y) {
		return false
	}
	m := neighbours(grid, x, y)
	if m.Count() != 2 {
		return true
	}
	return tile.ShapeOf(m) == tile.Corner
}

// Build replaces the graph with the one found in grid.
func (g *Graph) Build(grid Grid) {
	rows, cols := grid.Rows(), grid.Cols()
	g.nodes = nil
	g.index = make(map[int]int)
	g.cols = cols

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if isNode(grid, x, y) {
				g.index[g.key(x, y)] = len(g.nodes)
				g.nodes = append(g.nodes, Node{X: x, Y: y})
			}
		}
	}

	limit := rows * cols
	for i := range g.nodes {
		for d := tile.Up; d <= tile.Left; d++ {
			if to, cost, ok := g.walk(grid, g.nodes[i].X, g.nodes[i].Y, d, limit); ok {
				g.nodes[i].Edges = append(g.nodes[i].Edges, Edge{To: to, Cost: cost})
			}
		}
	}
}

// walk follows the corridor leaving (x,y) in direction d until it reaches a
// node. It gives up on a dead corridor or after limit steps.
func (g *Graph) walk(grid Grid, x, y int, d tile.Dir, limit int) (to, cost int, ok bool) {
	px, py := x, y
	cx, cy := x+tile.DX[d], y+tile.DY[d]
	if !walkable(grid, cx, cy) {
		return 0, 0, false
	}
	for steps := 1; steps <= limit; steps++ {
		if idx, found := g.index[g.key(cx, cy)]; found {
			return idx, steps + 1, true
		}
		next := false
		for nd := tile.Up; nd <= tile.Left; nd++ {
			nx, ny := cx+tile.DX[nd], cy+tile.DY[nd]
			if nx == px && ny == py {
				continue
			}
			if walkable(grid, nx, ny) {
				px, py = cx, cy
				cx, cy = nx, ny
				next = true
				break
			}
		}
		if !next {
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// FindNode returns the index of the node at (x,y).
func (g *Graph) FindNode(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.cols {
		return 0, false
	}
	idx, ok := g.index[g.key(x, y)]
	return idx, ok
}

func (g *Graph) Nodes() []Node {
	return g.nodes
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// Segments lists each corridor once, keeping the record whose target index
// is above its source.
func (g *Graph) Segments() []Segment {
	var out []Segment
	for i, n := range g.nodes {
		for _, e := range n.Edges {
			if e.To <= i {
				continue
			}
			out = append(out, Segment{From: i, To: e.To, Cost: e.Cost})
		}
	}
	return out
}
