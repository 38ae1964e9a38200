package maze

import "github.com/go-gl/mathgl/mgl32"

// TextureTiling describes how a surface samples the texture array: U and V
// repeats per world unit of the surface, and the array layer.
type TextureTiling struct {
	U, V  float32
	Layer float32
}

// Surfaces maps each kind of surface to its texture.
type Surfaces struct {
	Ceiling TextureTiling
	Floor   TextureTiling
	Wall    TextureTiling
	Glow    float32 // layer of the torch glow
}

// Vertex layout shared with the renderer: position then (u, v, layer).
type Vertex struct {
	Position [3]float32
	TexCoord [3]float32
}

// Mesh is a single triangle strip. Separate pieces are stitched together with
// degenerate triangles so the whole maze draws in one call.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// appendStrip adds verts as a new strip piece.
func (m *Mesh) appendStrip(verts ...Vertex) {
	base := uint32(len(m.Vertices))
	if n := len(m.Indices); n > 0 {
		m.Indices = append(m.Indices, m.Indices[n-1], base)
	}
	m.Vertices = append(m.Vertices, verts...)
	for i := range verts {
		m.Indices = append(m.Indices, base+uint32(i))
	}
}

// addQuad adds a quad from four corners given in winding order; a→b is the
// quad's V direction and a→d its U direction.
func (m *Mesh) addQuad(a, b, c, d mgl32.Vec3, uMax, vMax, layer float32) {
	m.appendStrip(
		vertex(a, 0, 0, layer),
		vertex(b, 0, vMax, layer),
		vertex(d, uMax, 0, layer),
		vertex(c, uMax, vMax, layer),
	)
}

// addPlane adds a subdivided plane spanning origin→alongU and origin→alongV,
// divided into du × dv cells. Texture repeats uMax × vMax times over the plane.
func (m *Mesh) addPlane(du, dv int, origin, alongU, alongV mgl32.Vec3, uMax, vMax, layer float32) {
	stepU := alongU.Sub(origin).Mul(1 / float32(du))
	stepV := alongV.Sub(origin).Mul(1 / float32(dv))

	row := make([]Vertex, 0, 2*(du+1))
	for j := 0; j < dv; j++ {
		row = row[:0]
		for i := 0; i <= du; i++ {
			u := uMax * float32(i) / float32(du)
			p0 := origin.Add(stepU.Mul(float32(i))).Add(stepV.Mul(float32(j)))
			p1 := p0.Add(stepV)
			row = append(row,
				vertex(p0, u, vMax*float32(j)/float32(dv), layer),
				vertex(p1, u, vMax*float32(j+1)/float32(dv), layer),
			)
		}
		m.appendStrip(row...)
	}
}

func vertex(p mgl32.Vec3, u, v, layer float32) Vertex {
	return Vertex{Position: p, TexCoord: [3]float32{u, v, layer}}
}

// TriangleCount counts the strip's non-degenerate triangles.
func (m *Mesh) TriangleCount() int {
	n := 0
	for i := 2; i < len(m.Indices); i++ {
		a, b, c := m.Indices[i-2], m.Indices[i-1], m.Indices[i]
		if a != b && b != c && a != c {
			n++
		}
	}
	return n
}

// BuildMesh emits the floor, ceiling, outer walls, every interior wall face
// still flagged on the grid, and one glow quad per light.
func BuildMesh(g *Grid, lights []Light, s Surfaces) Mesh {
	var m Mesh

	o := g.Origin()
	lx := float32(g.length) * CellSize
	lz := float32(g.width) * CellSize
	up := mgl32.Vec3{0, WallHeight, 0}

	corner := func(dx, dz float32) mgl32.Vec3 {
		return o.Add(mgl32.Vec3{dx, 0, dz})
	}
	c00, c10, c01, c11 := corner(0, 0), corner(lx, 0), corner(0, lz), corner(lx, lz)

	// Floor and ceiling.
	du, dv := g.length*FloorQuality, g.width*FloorQuality
	m.addPlane(du, dv, c00, c10, c01,
		s.Floor.U*float32(g.length), s.Floor.V*float32(g.width), s.Floor.Layer)
	m.addPlane(du, dv, c00.Add(up), c10.Add(up), c01.Add(up),
		s.Ceiling.U*float32(g.length), s.Ceiling.V*float32(g.width), s.Ceiling.Layer)

	// Outer walls.
	wl := s.Wall
	m.addQuad(c00, c00.Add(up), c01.Add(up), c01, wl.U*float32(g.width), wl.V, wl.Layer)
	m.addQuad(c10, c10.Add(up), c11.Add(up), c11, wl.U*float32(g.width), wl.V, wl.Layer)
	m.addQuad(c00, c00.Add(up), c10.Add(up), c10, wl.U*float32(g.length), wl.V, wl.Layer)
	m.addQuad(c01, c01.Add(up), c11.Add(up), c11, wl.U*float32(g.length), wl.V, wl.Layer)

	// Interior faces.
	g.Each(func(c *Cell) {
		for _, side := range Sides {
			if !c.walls[side] || g.onPerimeter(c.X, c.Z, side) {
				continue
			}
			a, d := faceEdge(g.CellBounds(c.X, c.Z), side)
			m.addQuad(a, a.Add(up), d.Add(up), d, wl.U, wl.V, wl.Layer)
		}
	})

	for _, l := range lights {
		addGlow(&m, l, s.Glow)
	}
	return m
}

// faceEdge returns the floor-level endpoints of side s of a cell footprint.
func faceEdge(b Rect, s Side) (mgl32.Vec3, mgl32.Vec3) {
	switch s {
	case Left:
		return mgl32.Vec3{b.X0, 0, b.Z0}, mgl32.Vec3{b.X0, 0, b.Z1}
	case Right:
		return mgl32.Vec3{b.X1, 0, b.Z0}, mgl32.Vec3{b.X1, 0, b.Z1}
	case Top:
		return mgl32.Vec3{b.X0, 0, b.Z1}, mgl32.Vec3{b.X1, 0, b.Z1}
	default:
		return mgl32.Vec3{b.X0, 0, b.Z0}, mgl32.Vec3{b.X1, 0, b.Z0}
	}
}

// addGlow adds a small quad from the torch foot up to the flame, lying flat
// against the wall the torch hangs on.
func addGlow(m *Mesh, l Light, layer float32) {
	out := l.Position.Sub(l.Anchor)
	out[1] = 0
	tangent := mgl32.Vec3{1, 0, 0}
	if out.LenSqr() > 0 {
		out = out.Normalize()
		tangent = mgl32.Vec3{-out.Z(), 0, out.X()}
	}
	t := tangent.Mul(glowHalfWidth)
	m.addQuad(l.Anchor.Sub(t), l.Position.Sub(t), l.Position.Add(t), l.Anchor.Add(t), 1, 1, layer)
}
