package maze

import "github.com/go-gl/mathgl/mgl32"

// Light is a torch mounted on a rock face. Anchor is the torch foot; it only
// matters for drawing.
type Light struct {
	Position mgl32.Vec3
	Anchor   mgl32.Vec3
	Color    mgl32.Vec4
}

// mountRule mounts a torch on side when that wall exists and a 1-in-odds roll passes.
type mountRule struct {
	side Side
	odds int
}

// Evaluated in order, first match wins. Bottom always passes so any walled
// cell that reaches it gets a torch.
var mountRules = [...]mountRule{
	{side: Left, odds: 4},
	{side: Top, odds: 3},
	{side: Right, odds: 2},
	{side: Bottom, odds: 1},
}

// PlaceLights scatters torches over interior rock cells. Each cell gets a
// chance roll; a cell that passes is marked lit whether or not a torch ends
// up on it, so no cell is ever tried twice.
func PlaceLights(g *Grid, rng Source, chance float64) []Light {
	var lights []Light
	for z := 1; z < g.width-1; z++ {
		for x := 1; x < g.length-1; x++ {
			if rng.Float64() >= chance {
				continue
			}
			c := &g.cells[z][x]
			if c.path || c.lit {
				continue
			}
			g.markLit(c)

			for _, rule := range mountRules {
				if !c.walls[rule.side] || rng.Intn(rule.odds) != 0 {
					continue
				}
				lights = append(lights, mountLight(g, c, rule.side, rng))
				break
			}
		}
	}
	return lights
}

// mountLight builds a torch on side s of c, sticking out into whatever the
// face looks onto.
func mountLight(g *Grid, c *Cell, s Side, rng Source) Light {
	dx, dz := s.Offset()
	out := mgl32.Vec3{float32(dx), 0, float32(dz)}
	face := g.CellCenter(c.X, c.Z, 0).Add(out.Mul(CellSize / 2))

	pos := face.Add(out.Mul(lightWallOffset))
	pos[1] = lightHeight
	anchor := face.Add(out.Mul(anchorWallOffset))
	anchor[1] = lightHeight - anchorDrop

	var col mgl32.Vec4
	for i, base := range lightColorBase {
		col[i] = base + float32(rng.Float64())*(1-base)
	}
	col[3] = 1

	return Light{Position: pos, Anchor: anchor, Color: col}
}
