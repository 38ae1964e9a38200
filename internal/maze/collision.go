package maze

import "github.com/go-gl/mathgl/mgl32"

// Resolve pushes pos out of every rock cell around it. Each rock cell in the
// 3x3 block around the observer's cell (cells outside the grid count as rock)
// is grown by CollisionMargin; when pos lies inside such a box it moves to the
// nearest edge along the axis with the shallower penetration, X on ties.
// Boxes are handled one after another, so near a corner pos can be corrected
// more than once. Reports whether pos moved.
func Resolve(g *Grid, pos *mgl32.Vec3) bool {
	centre := g.WorldToCell(*pos)
	moved := false

	for dz := -1; dz <= 1; dz++ {
		for dx := -1; dx <= 1; dx++ {
			x, z := centre.X+dx, centre.Z+dz
			if !g.IsSolid(x, z) {
				continue
			}
			if pushOut(pos, g.CellBounds(x, z).Expand(CollisionMargin)) {
				moved = true
			}
		}
	}
	return moved
}

func pushOut(pos *mgl32.Vec3, box Rect) bool {
	px, pz := pos.X(), pos.Z()
	if !box.ContainsPoint(px, pz) {
		return false
	}

	toX0, toX1 := px-box.X0, box.X1-px
	toZ0, toZ1 := pz-box.Z0, box.Z1-pz

	if minF(toX0, toX1) <= minF(toZ0, toZ1) {
		if toX0 < toX1 {
			pos[0] = box.X0
		} else {
			pos[0] = box.X1
		}
	} else {
		if toZ0 < toZ1 {
			pos[2] = box.Z0
		} else {
			pos[2] = box.Z1
		}
	}
	// Resting on an edge counts as contact, not as a correction.
	return pos[0] != px || pos[2] != pz
}
