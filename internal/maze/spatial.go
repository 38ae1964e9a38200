package maze

import "math"

// Rect is an axis-aligned rectangle on the world XZ plane.
type Rect struct {
	X0, Z0 float32
	X1, Z1 float32
}

// Expand grows the rectangle by m on every side.
func (r Rect) Expand(m float32) Rect {
	return Rect{X0: r.X0 - m, Z0: r.Z0 - m, X1: r.X1 + m, Z1: r.Z1 + m}
}

// ContainsPoint is inclusive on every edge.
func (r Rect) ContainsPoint(x, z float32) bool {
	return x >= r.X0 && x <= r.X1 && z >= r.Z0 && z <= r.Z1
}

// ContainsPointStrict excludes the edges.
func (r Rect) ContainsPointStrict(x, z float32) bool {
	return x > r.X0 && x < r.X1 && z > r.Z0 && z < r.Z1
}

// floorDiv returns floor(v/step) as an int.
func floorDiv(v, step float32) int {
	return int(math.Floor(float64(v / step)))
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
