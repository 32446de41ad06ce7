package pathgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"Tiletown/internal/pathgraph"
	"Tiletown/internal/tile"
	"Tiletown/internal/world"
)

// asciiGrid reads '#' as a path cell and anything else as empty.
type asciiGrid []string

func (a asciiGrid) Rows() int { return len(a) }
func (a asciiGrid) Cols() int { return len(a[0]) }
func (a asciiGrid) Kind(x, y int) tile.Kind {
	if a[y][x] == '#' {
		return tile.Path
	}
	return tile.Empty
}

type PathGraphSuite struct {
	suite.Suite
	g *pathgraph.Graph
}

func (s *PathGraphSuite) SetupTest() {
	s.g = pathgraph.New()
}

func (s *PathGraphSuite) node(x, y int) pathgraph.Node {
	idx, ok := s.g.FindNode(x, y)
	s.Require().True(ok, "no node at (%d,%d)", x, y)
	return s.g.Nodes()[idx]
}

func (s *PathGraphSuite) edgeTo(from pathgraph.Node, x, y int) pathgraph.Edge {
	idx, ok := s.g.FindNode(x, y)
	s.Require().True(ok)
	for _, e := range from.Edges {
		if e.To == idx {
			return e
		}
	}
	s.FailNow("missing edge", "(%d,%d) -> (%d,%d)", from.X, from.Y, x, y)
	return pathgraph.Edge{}
}

// TestHorizontalStrip checks a 5x1 strip on an otherwise empty 5x5 grid.
func (s *PathGraphSuite) TestHorizontalStrip() {
	s.g.Build(asciiGrid{
		".....",
		".....",
		"#####",
		".....",
		".....",
	})
	s.Require().Equal(2, s.g.Len())
	left, right := s.node(0, 2), s.node(4, 2)
	s.Equal(5, s.edgeTo(left, 4, 2).Cost)
	s.Equal(5, s.edgeTo(right, 0, 2).Cost)
	s.Len(left.Edges, 1)
	s.Len(right.Edges, 1)
	s.Equal([]pathgraph.Segment{{From: 0, To: 1, Cost: 5}}, s.g.Segments())
}

func (s *PathGraphSuite) TestCorridorLengths() {
	for n := 2; n <= 9; n++ {
		row := make([]byte, n)
		for i := range row {
			row[i] = '#'
		}
		s.g.Build(asciiGrid{string(row)})
		s.Require().Equal(2, s.g.Len(), "length %d", n)
		segs := s.g.Segments()
		s.Require().Len(segs, 1)
		s.Equal(n, segs[0].Cost)
	}
}

func (s *PathGraphSuite) TestVerticalCorridor() {
	s.g.Build(asciiGrid{
		".#.",
		".#.",
		".#.",
		".#.",
	})
	s.Require().Equal(2, s.g.Len())
	s.Equal(4, s.edgeTo(s.node(1, 0), 1, 3).Cost)
}

func (s *PathGraphSuite) TestPlus() {
	s.g.Build(asciiGrid{
		".#.",
		"###",
		".#.",
	})
	s.Require().Equal(5, s.g.Len())
	center := s.node(1, 1)
	s.Len(center.Edges, 4)
	for _, xy := range [][2]int{{1, 0}, {2, 1}, {1, 2}, {0, 1}} {
		s.Equal(2, s.edgeTo(center, xy[0], xy[1]).Cost)
		arm := s.node(xy[0], xy[1])
		s.Len(arm.Edges, 1)
		s.Equal(2, s.edgeTo(arm, 1, 1).Cost)
	}
	s.Len(s.g.Segments(), 4)
}

func (s *PathGraphSuite) TestCornerIsNode() {
	s.g.Build(asciiGrid{
		"###",
		"..#",
		"..#",
	})
	s.Require().Equal(3, s.g.Len())
	corner := s.node(2, 0)
	s.Equal(3, s.edgeTo(corner, 0, 0).Cost)
	s.Equal(3, s.edgeTo(corner, 2, 2).Cost)
	_, ok := s.g.FindNode(1, 0)
	s.False(ok, "straight pass-through is not a node")
}

func (s *PathGraphSuite) TestLoop() {
	s.g.Build(asciiGrid{
		"####",
		"#..#",
		"####",
	})
	// Only the four corners are nodes.
	s.Require().Equal(4, s.g.Len())
	tl := s.node(0, 0)
	s.Equal(4, s.edgeTo(tl, 3, 0).Cost)
	s.Equal(3, s.edgeTo(tl, 0, 2).Cost)
	s.Len(s.g.Segments(), 4)
}

func (s *PathGraphSuite) TestSingleCellAndEmpty() {
	s.g.Build(asciiGrid{
		"...",
		".#.",
		"...",
	})
	s.Require().Equal(1, s.g.Len())
	s.Empty(s.node(1, 1).Edges)

	s.g.Build(asciiGrid{"...", "..."})
	s.Zero(s.g.Len())
	s.Empty(s.g.Segments())
	_, ok := s.g.FindNode(1, 1)
	s.False(ok)
}

// A rebuild forgets everything from the previous grid.
func (s *PathGraphSuite) TestRebuildReplaces() {
	s.g.Build(asciiGrid{"###"})
	s.Require().Equal(2, s.g.Len())
	s.g.Build(asciiGrid{"#.#", "#.#"})
	s.Equal(4, s.g.Len())
	_, ok := s.g.FindNode(2, 0)
	s.True(ok)
	for _, n := range s.g.Nodes() {
		s.Len(n.Edges, 1)
	}
}

func (s *PathGraphSuite) TestFindNodeOutOfBounds() {
	s.g.Build(asciiGrid{"###"})
	_, ok := s.g.FindNode(-1, 0)
	s.False(ok)
	_, ok = s.g.FindNode(3, 0)
	s.False(ok)
	_, ok = s.g.FindNode(0, 5)
	s.False(ok)
}

func TestPathGraphSuite(t *testing.T) {
	suite.Run(t, new(PathGraphSuite))
}

// Roads and other kinds are not walkable; only Path cells form the graph.
func TestBuild_FromWorld(t *testing.T) {
	w := world.New(5, 5)
	for x := 0; x < 5; x++ {
		require.True(t, w.Place(x, 0, tile.Path))
	}
	require.True(t, w.Place(0, 2, tile.Road))
	require.True(t, w.Place(2, 1, tile.Path))

	g := pathgraph.New()
	g.Build(w)

	require.Equal(t, 4, g.Len())
	mid, ok := g.FindNode(2, 0)
	require.True(t, ok)
	require.Len(t, g.Nodes()[mid].Edges, 3)
	for _, e := range g.Nodes()[mid].Edges {
		require.Contains(t, []int{2, 3}, e.Cost)
	}
}
