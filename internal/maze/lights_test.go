package maze

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-5

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

// pillar is a single rock cell surrounded by corridor.
func pillar(t *testing.T) *Grid {
	t.Helper()
	return gridFromRows(t,
		"...",
		".#.",
		"...",
	)
}

func TestPlaceLightsRuleOrder(t *testing.T) {
	tests := []struct {
		name string
		ints []int
		pos  mgl32.Vec3
		foot mgl32.Vec3
	}{
		{
			name: "left passes first",
			ints: []int{0},
			pos:  mgl32.Vec3{-0.65, 1.7, 0},
			foot: mgl32.Vec3{-0.55, 1.3, 0},
		},
		{
			name: "top after left fails",
			ints: []int{1, 0},
			pos:  mgl32.Vec3{0, 1.7, 0.65},
			foot: mgl32.Vec3{0, 1.3, 0.55},
		},
		{
			name: "right after left and top fail",
			ints: []int{1, 1, 0},
			pos:  mgl32.Vec3{0.65, 1.7, 0},
			foot: mgl32.Vec3{0.55, 1.3, 0},
		},
		{
			name: "bottom always passes",
			ints: []int{1, 1, 1},
			pos:  mgl32.Vec3{0, 1.7, -0.65},
			foot: mgl32.Vec3{0, 1.3, -0.55},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := pillar(t)
			lights := PlaceLights(g, &scriptedSource{ints: tt.ints}, 1)

			require.Len(t, lights, 1)
			assertVec3(t, tt.pos, lights[0].Position)
			assertVec3(t, tt.foot, lights[0].Anchor)
			assert.True(t, g.CellAt(1, 1).IsLit())
		})
	}
}

func TestPlaceLightsSkipsMissingWalls(t *testing.T) {
	g := pillar(t)
	g.clearWall(g.CellAt(1, 1), Left)

	lights := PlaceLights(g, zeroSource{}, 1)

	require.Len(t, lights, 1)
	assertVec3(t, mgl32.Vec3{0, 1.7, 0.65}, lights[0].Position)
}

func TestPlaceLightsColor(t *testing.T) {
	t.Run("base color at zero", func(t *testing.T) {
		lights := PlaceLights(pillar(t), zeroSource{}, 1)
		require.Len(t, lights, 1)
		assert.InDeltaSlice(t, []float32{0.85, 0.55, 0.25, 1}, lights[0].Color[:], eps)
	})

	t.Run("halfway towards white", func(t *testing.T) {
		rng := &scriptedSource{floats: []float64{0, 0.5, 0.5, 0.5}}
		lights := PlaceLights(pillar(t), rng, 1)
		require.Len(t, lights, 1)
		assert.InDeltaSlice(t, []float32{0.925, 0.775, 0.625, 1}, lights[0].Color[:], eps)
	})
}

func TestPlaceLightsMarksCellsWithoutWalls(t *testing.T) {
	g := newTestGrid(t, 3, 3)
	Prune(g)

	lights := PlaceLights(g, zeroSource{}, 1)

	assert.Empty(t, lights)
	assert.True(t, g.CellAt(1, 1).IsLit())
}

func TestPlaceLightsSkips(t *testing.T) {
	t.Run("zero chance", func(t *testing.T) {
		g := pillar(t)
		assert.Empty(t, PlaceLights(g, NewRand(1), 0))
		assert.False(t, g.CellAt(1, 1).IsLit())
	})

	t.Run("path cells", func(t *testing.T) {
		g := gridFromRows(t, "...", "...", "...")
		assert.Empty(t, PlaceLights(g, zeroSource{}, 1))
		assert.False(t, g.CellAt(1, 1).IsLit())
	})

	t.Run("lit cells", func(t *testing.T) {
		g := pillar(t)
		assert.Len(t, PlaceLights(g, zeroSource{}, 1), 1)
		assert.Empty(t, PlaceLights(g, zeroSource{}, 1))
	})

	t.Run("perimeter cells", func(t *testing.T) {
		g := newTestGrid(t, 2, 5)
		assert.Empty(t, PlaceLights(g, zeroSource{}, 1))
		g.Each(func(c *Cell) { assert.False(t, c.IsLit()) })
	})
}

func TestPlaceLightsFaceCorridors(t *testing.T) {
	for seed := uint64(1); seed <= 15; seed++ {
		g := newTestGrid(t, 16, 16)
		rng := NewRand(seed)
		Carve(g, rng)
		Prune(g)
		lights := PlaceLights(g, rng, 1)

		lit := 0
		g.Each(func(c *Cell) {
			if c.IsLit() {
				lit++
				assert.False(t, c.IsPath())
				assert.False(t, g.IsPerimeter(c.X, c.Z))
			}
		})
		assert.LessOrEqual(t, len(lights), lit)

		for _, l := range lights {
			at := g.WorldToCell(l.Position)
			assert.False(t, g.IsSolid(at.X, at.Z), "light at %v hangs in rock", l.Position)
			assert.InDelta(t, lightHeight, l.Position.Y(), eps)
			assert.Less(t, l.Anchor.Y(), l.Position.Y())
			for i, base := range lightColorBase {
				assert.GreaterOrEqual(t, l.Color[i], base)
				assert.LessOrEqual(t, l.Color[i], float32(1))
			}
			assert.Equal(t, float32(1), l.Color[3])
		}
	}
}
