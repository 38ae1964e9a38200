package observer

import "github.com/go-gl/mathgl/mgl32"

// Stride is the horizontal distance between two footsteps.
const Stride = 0.8

// Pedometer counts strides from successive observer positions. Vertical
// movement is ignored.
type Pedometer struct {
	last   mgl32.Vec3
	walked float32
	primed bool
}

// Advance records the new position and reports whether a stride was completed
// since the last footstep. Jumps longer than a few strides (respawn) reset it.
func (p *Pedometer) Advance(pos mgl32.Vec3) bool {
	if !p.primed {
		p.Reset(pos)
		return false
	}
	d := mgl32.Vec2{pos.X() - p.last.X(), pos.Z() - p.last.Z()}.Len()
	p.last = pos
	if d > 4*Stride {
		p.walked = 0
		return false
	}
	p.walked += d
	if p.walked < Stride {
		return false
	}
	p.walked -= Stride
	if p.walked > Stride {
		p.walked = 0
	}
	return true
}

// Reset starts counting afresh from pos.
func (p *Pedometer) Reset(pos mgl32.Vec3) {
	p.last = pos
	p.walked = 0
	p.primed = true
}
