package maze

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// zeroSource always picks the first option.
type zeroSource struct{}

func (zeroSource) Intn(int) int     { return 0 }
func (zeroSource) Float64() float64 { return 0 }

// scriptedSource replays fixed draws, then falls back to zero.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func newTestGrid(t *testing.T, length, width int) *Grid {
	t.Helper()
	g, err := NewGrid(length, width)
	require.NoError(t, err)
	return g
}

// gridFromRows builds a grid from rows drawn top (highest z) first:
// '.' is a path cell, anything else is rock.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g := newTestGrid(t, len(rows[0]), len(rows))
	for i, row := range rows {
		z := len(rows) - 1 - i
		for x, ch := range row {
			if ch == '.' {
				g.open(g.CellAt(x, z))
			}
		}
	}
	return g
}

func pathSet(g *Grid) map[Position]bool {
	out := make(map[Position]bool)
	g.Each(func(c *Cell) {
		if c.IsPath() {
			out[c.Position()] = true
		}
	})
	return out
}

// reachable flood-fills from start through path cells whose shared walls are
// open on both sides.
func reachable(g *Grid, start Position) map[Position]bool {
	seen := map[Position]bool{start: true}
	queue := []Position{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		c := g.cellAtPos(p)
		for _, s := range Sides {
			n := g.Neighbor(c, s)
			if n == nil || !n.IsPath() || seen[n.Position()] {
				continue
			}
			if c.Wall(s) || n.Wall(s.Opposite()) {
				continue
			}
			seen[n.Position()] = true
			queue = append(queue, n.Position())
		}
	}
	return seen
}

// pathEdges counts orthogonally adjacent pairs of path cells.
func pathEdges(g *Grid) int {
	n := 0
	g.Each(func(c *Cell) {
		if !c.IsPath() {
			return
		}
		for _, s := range [2]Side{Right, Top} {
			if nb := g.Neighbor(c, s); nb != nil && nb.IsPath() {
				n++
			}
		}
	})
	return n
}
