package observer

import (
	"github.com/go-gl/mathgl/mgl32"

	"labyrinth/internal/maze"
)

// Shake jitters the eye after an impact. The zero value is at rest.
type Shake struct {
	Seed      uint64
	timer     float32 // remaining shake time
	intensity float32 // max offset magnitude
	offset    mgl32.Vec3
}

// Add triggers a shake; a stronger or longer one overrides a weaker one.
func (s *Shake) Add(intensity, duration float32) {
	if intensity > s.intensity {
		s.intensity = intensity
	}
	if duration > s.timer {
		s.timer = duration
	}
}

// Update decays the shake and picks a new offset.
func (s *Shake) Update(dt float32) {
	if s.timer <= 0 {
		s.offset = mgl32.Vec3{}
		s.intensity = 0
		return
	}
	s.timer = max(s.timer-dt, 0)

	t := s.timer
	rng := maze.NewRand(s.Seed ^ uint64(t*10000))
	mag := s.intensity * (t / (t + 0.08))
	s.offset = mgl32.Vec3{
		mag * float32(2*rng.Float64()-1),
		mag * float32(2*rng.Float64()-1),
		mag * float32(2*rng.Float64()-1),
	}
}

func (s *Shake) Active() bool       { return s.timer > 0 }
func (s *Shake) Offset() mgl32.Vec3 { return s.offset }

// Apply moves the eye of view by the current offset.
func (s *Shake) Apply(view mgl32.Mat4) mgl32.Mat4 {
	o := s.offset
	return view.Mul4(mgl32.Translate3D(-o.X(), -o.Y(), -o.Z()))
}
