package maze

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	t.Run("rejects empty dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 4}, {4, 0}, {0, 0}, {-1, 3}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.True(t, errors.Is(err, ErrInvalidDimensions), "dims %v", dims)
		}
	})

	t.Run("cells start walled and uncarved", func(t *testing.T) {
		g := newTestGrid(t, 4, 3)
		assert.Equal(t, 4, g.Length())
		assert.Equal(t, 3, g.Width())

		count := 0
		g.Each(func(c *Cell) {
			count++
			assert.False(t, c.IsPath())
			assert.False(t, c.IsLit())
			assert.Zero(t, c.OpenWalls())
		})
		assert.Equal(t, 12, count)
	})

	t.Run("cells keep their coordinates", func(t *testing.T) {
		g := newTestGrid(t, 5, 2)
		for z := 0; z < 2; z++ {
			for x := 0; x < 5; x++ {
				c := g.CellAt(x, z)
				require.NotNil(t, c)
				assert.Equal(t, Position{X: x, Z: z}, c.Position())
			}
		}
	})
}

func TestCellAtOutOfRange(t *testing.T) {
	g := newTestGrid(t, 3, 2)
	for _, p := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 2}, {10, 10}} {
		assert.Nil(t, g.CellAt(p.X, p.Z), "%v", p)
		assert.True(t, g.IsSolid(p.X, p.Z), "%v", p)
	}
}

func TestSides(t *testing.T) {
	tests := []struct {
		side     Side
		opposite Side
		dx, dz   int
	}{
		{Left, Right, -1, 0},
		{Top, Bottom, 0, 1},
		{Right, Left, 1, 0},
		{Bottom, Top, 0, -1},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			assert.Equal(t, tt.opposite, tt.side.Opposite())
			dx, dz := tt.side.Offset()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dz, dz)
		})
	}
}

func TestOpenKeepsPerimeterWalls(t *testing.T) {
	g := newTestGrid(t, 3, 3)

	corner := g.CellAt(0, 0)
	g.open(corner)
	assert.True(t, corner.IsPath())
	assert.True(t, corner.Wall(Left))
	assert.True(t, corner.Wall(Bottom))
	assert.False(t, corner.Wall(Top))
	assert.False(t, corner.Wall(Right))

	centre := g.CellAt(1, 1)
	g.open(centre)
	assert.Equal(t, 4, centre.OpenWalls())

	far := g.CellAt(2, 2)
	g.open(far)
	assert.True(t, far.Wall(Right))
	assert.True(t, far.Wall(Top))
}

func TestClearWallUpdatesBothSides(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	c := g.CellAt(1, 1)
	g.clearWall(c, Top)

	assert.False(t, c.Wall(Top))
	assert.False(t, g.CellAt(1, 2).Wall(Bottom))
	assert.True(t, c.Wall(Left))
}

func TestCloneAndEqual(t *testing.T) {
	g := gridFromRows(t,
		"#.#",
		"...",
		"#.#",
	)
	cp := g.Clone()
	assert.True(t, g.Equal(cp))

	g.markLit(g.CellAt(0, 0))
	assert.False(t, g.Equal(cp))
	assert.False(t, cp.CellAt(0, 0).IsLit())
}

func TestWorldLayout(t *testing.T) {
	g := newTestGrid(t, 4, 2)
	assert.Equal(t, mgl32.Vec3{-2, 0, -1}, g.Origin())

	b := g.CellBounds(1, 1)
	assert.Equal(t, Rect{X0: -1, Z0: 0, X1: 0, Z1: 1}, b)
	assert.Equal(t, mgl32.Vec3{-0.5, 1, 0.5}, g.CellCenter(1, 1, 1))

	tests := []struct {
		p    mgl32.Vec3
		want Position
	}{
		{mgl32.Vec3{-1.9, 0, -0.9}, Position{0, 0}},
		{mgl32.Vec3{-0.5, 0, 0.5}, Position{1, 1}},
		{mgl32.Vec3{1.99, 0, 0.99}, Position{3, 1}},
		{mgl32.Vec3{-2.5, 0, 0}, Position{-1, 1}},
		{mgl32.Vec3{0, 0, 1.5}, Position{2, 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.WorldToCell(tt.p), "%v", tt.p)
	}
}

func TestGridString(t *testing.T) {
	g := gridFromRows(t,
		"##.",
		"...",
	)
	g.markLit(g.CellAt(0, 1))
	assert.Equal(t, "*# \n   \n", g.String())
}
