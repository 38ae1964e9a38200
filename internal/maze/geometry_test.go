package maze

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSurfaces = Surfaces{
	Ceiling: TextureTiling{U: 1, V: 1, Layer: 0},
	Floor:   TextureTiling{U: 1, V: 1, Layer: 1},
	Wall:    TextureTiling{U: 1, V: 1, Layer: 2},
	Glow:    3,
}

func TestStripJoins(t *testing.T) {
	var m Mesh
	a, b, c, d := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 0}, mgl32.Vec3{1, 0, 0}
	m.addQuad(a, b, c, d, 1, 1, 0)
	m.addQuad(a, b, c, d, 1, 1, 0)

	assert.Equal(t, []uint32{0, 1, 2, 3, 3, 4, 4, 5, 6, 7}, m.Indices)
	assert.Len(t, m.Vertices, 8)
	assert.Equal(t, 4, m.TriangleCount())

	// a, b, d, c: the strip zig-zags across the quad.
	assert.Equal(t, [3]float32{1, 0, 0}, m.Vertices[2].Position)
	assert.Equal(t, [3]float32{1, 1, 0}, m.Vertices[2].TexCoord)
}

func TestBuildMeshPillar(t *testing.T) {
	g := pillar(t)
	m := BuildMesh(g, nil, testSurfaces)

	// Two planes of 12x12 subdivisions, four outer walls, four pillar faces.
	const planes = 2 * 12 * 12 * 2
	assert.Equal(t, planes+8+8, m.TriangleCount())
	assert.Len(t, m.Vertices, 2*12*26+8*4)
	assert.Len(t, m.Indices, len(m.Vertices)+2*(24+8-1))

	lights := PlaceLights(g, zeroSource{}, 1)
	require.Len(t, lights, 1)
	lit := BuildMesh(g, lights, testSurfaces)
	assert.Equal(t, planes+8+8+2, lit.TriangleCount())

	glow := lit.Vertices[len(lit.Vertices)-4:]
	for _, v := range glow {
		assert.Equal(t, float32(3), v.TexCoord[2])
		// Hung on the pillar's left face, spread along z.
		assert.InDelta(t, -0.6, v.Position[0], 0.05+eps)
		assert.InDelta(t, glowHalfWidth, abs32(v.Position[2]), eps)
	}
}

func TestBuildMeshMaze(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		m, err := New(Options{Length: 9, Width: 7, LightChance: 0.7}, NewRand(seed))
		require.NoError(t, err)
		g := m.Grid()
		mesh := m.Mesh(testSurfaces)

		faces := 0
		g.Each(func(c *Cell) {
			for _, s := range Sides {
				if c.Wall(s) && !g.onPerimeter(c.X, c.Z, s) {
					faces++
				}
			}
		})
		du, dv := 9*FloorQuality, 7*FloorQuality
		want := 2*(2*du*dv) + 8 + 2*faces + 2*len(m.Lights())
		assert.Equal(t, want, mesh.TriangleCount(), "seed %d", seed)

		layers := map[float32]bool{0: true, 1: true, 2: true, 3: true}
		for _, v := range mesh.Vertices {
			assert.True(t, layers[v.TexCoord[2]], "unexpected layer %v", v.TexCoord[2])
			assert.GreaterOrEqual(t, v.Position[0], float32(-4.5)-eps)
			assert.LessOrEqual(t, v.Position[0], float32(4.5)+eps)
			assert.GreaterOrEqual(t, v.Position[2], float32(-3.5)-eps)
			assert.LessOrEqual(t, v.Position[2], float32(3.5)+eps)
			assert.GreaterOrEqual(t, v.Position[1], float32(0))
			assert.LessOrEqual(t, v.Position[1], float32(WallHeight))
		}
		for _, i := range mesh.Indices {
			assert.Less(t, int(i), len(mesh.Vertices))
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
