package maze

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarveZeroSourceThreeByThree(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	res := Carve(g, zeroSource{})

	want := map[Position]bool{
		{0, 0}: true, {0, 1}: true,
		{1, 0}: true, {2, 0}: true,
		{2, 1}: true, {2, 2}: true,
		{1, 2}: true,
	}
	assert.Equal(t, Position{0, 0}, res.Start)
	assert.Equal(t, want, pathSet(g))
	assert.Equal(t, 7, res.Paths)
	assert.Equal(t, 6, res.Openings)

	// The centre ends up touching four paths and the top-left corner two, so
	// the one-neighbor rule keeps both as rock.
	centre := g.CellAt(1, 1)
	assert.False(t, centre.IsPath())
	assert.Zero(t, centre.OpenWalls())
	assert.False(t, g.CellAt(0, 2).IsPath())

	assert.Len(t, reachable(g, res.Start), res.Paths)
	assert.Equal(t, res.Paths-1, pathEdges(g))
}

func TestCarveOneByOne(t *testing.T) {
	g := newTestGrid(t, 1, 1)
	res := Carve(g, NewRand(7))

	assert.Equal(t, CarveResult{Start: Position{0, 0}, Paths: 1}, res)
	c := g.CellAt(0, 0)
	assert.True(t, c.IsPath())
	assert.Zero(t, c.OpenWalls(), "every side of a lone cell is perimeter")
}

func TestCarveProperties(t *testing.T) {
	sizes := [][2]int{{1, 6}, {2, 2}, {5, 7}, {12, 4}, {20, 20}}

	for _, size := range sizes {
		for seed := uint64(1); seed <= 25; seed++ {
			name := fmt.Sprintf("%dx%d/seed%d", size[0], size[1], seed)
			t.Run(name, func(t *testing.T) {
				g := newTestGrid(t, size[0], size[1])
				res := Carve(g, NewRand(seed))

				require.True(t, g.InBounds(res.Start.X, res.Start.Z))
				assert.True(t, g.CellAt(res.Start.X, res.Start.Z).IsPath())
				assert.Equal(t, g.Paths(), res.Paths)
				assert.Equal(t, res.Paths-1, res.Openings)

				// Connected and acyclic: a spanning tree of the path cells.
				assert.Len(t, reachable(g, res.Start), res.Paths)
				assert.Equal(t, res.Paths-1, pathEdges(g))

				assertNoOpenSquare(t, g)
				assertPerimeterWalled(t, g)
			})
		}
	}
}

func TestCarveIsDeterministic(t *testing.T) {
	a := newTestGrid(t, 15, 9)
	b := newTestGrid(t, 15, 9)
	ra := Carve(a, NewRand(42))
	rb := Carve(b, NewRand(42))

	assert.Equal(t, ra, rb)
	assert.True(t, a.Equal(b))
}

func assertNoOpenSquare(t *testing.T, g *Grid) {
	t.Helper()
	for z := 0; z+1 < g.Width(); z++ {
		for x := 0; x+1 < g.Length(); x++ {
			if g.CellAt(x, z).IsPath() && g.CellAt(x+1, z).IsPath() &&
				g.CellAt(x, z+1).IsPath() && g.CellAt(x+1, z+1).IsPath() {
				t.Errorf("2x2 block of paths at (%d, %d)", x, z)
			}
		}
	}
}

func assertPerimeterWalled(t *testing.T, g *Grid) {
	t.Helper()
	g.Each(func(c *Cell) {
		for _, s := range Sides {
			if g.onPerimeter(c.X, c.Z, s) {
				assert.True(t, c.Wall(s), "cell %v side %v", c.Position(), s)
			}
		}
	})
}
