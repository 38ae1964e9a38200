package maze

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LightSlot is one entry of the array handed to the renderer.
type LightSlot struct {
	Position mgl32.Vec4 // homogeneous, w = 1
	Color    mgl32.Vec4
}

var (
	observerGlowColor = mgl32.Vec4{0.10, 0.30, 0.35, 1}
	unusedSlot        = LightSlot{
		Position: mgl32.Vec4{farAway, farAway, farAway, 1},
		Color:    mgl32.Vec4{1, 1, 1, 1},
	}
)

type slot struct {
	dist  float32
	index int
}

// SelectNearest returns the indices of up to NearbyLightCount-1 lights closest
// to p, in slot order (not sorted by distance).
func SelectNearest(lights []Light, p mgl32.Vec3) []int {
	var slots [NearbyLightCount - 1]slot
	for i := range slots {
		slots[i] = slot{dist: math.MaxFloat32, index: -1}
	}

	for j := range lights {
		worst := 0
		for i := 1; i < len(slots); i++ {
			if slots[i].dist > slots[worst].dist {
				worst = i
			}
		}
		d := lights[j].Position.Sub(p).LenSqr()
		if d <= slots[worst].dist {
			slots[worst] = slot{dist: d, index: j}
		}
	}

	out := make([]int, 0, len(slots))
	for _, s := range slots {
		if s.index >= 0 {
			out = append(out, s.index)
		}
	}
	return out
}

// NearbyLights fills the fixed renderer array: the nearest placed lights,
// padded with far white sentinels, and the observer glow in the last slot.
func NearbyLights(lights []Light, p mgl32.Vec3) [NearbyLightCount]LightSlot {
	var out [NearbyLightCount]LightSlot
	for i := range out {
		out[i] = unusedSlot
	}
	for i, j := range SelectNearest(lights, p) {
		out[i] = LightSlot{Position: lights[j].Position.Vec4(1), Color: lights[j].Color}
	}
	out[NearbyLightCount-1] = LightSlot{Position: p.Vec4(1), Color: observerGlowColor}
	return out
}
