// Package observer is the first-person viewpoint walking the maze: a position,
// a yaw/pitch orientation and a smoothed velocity driven by per-frame intent.
package observer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Intent is what the player asked for this frame. Movement axes are in
// [-1, 1]; look deltas are radians.
type Intent struct {
	Right   float32 // +right / -left
	Up      float32 // +up / -down
	Forward float32 // +forward / -back
	LookX   float32 // +turn right
	LookY   float32 // +look up
}

type Observer struct {
	Position mgl32.Vec3

	yaw, pitch float32

	direction mgl32.Vec3
	right     mgl32.Vec3
	up        mgl32.Vec3

	velocity mgl32.Vec3
}

// New places an observer at pos looking along yaw (0 faces +z) with a level gaze.
func New(pos mgl32.Vec3, yaw float32) *Observer {
	o := &Observer{Position: pos}
	o.setAngles(yaw, 0)
	return o
}

func (o *Observer) Yaw() float32   { return o.yaw }
func (o *Observer) Pitch() float32 { return o.pitch }

func (o *Observer) Direction() mgl32.Vec3 { return o.direction }
func (o *Observer) Right() mgl32.Vec3     { return o.right }
func (o *Observer) Up() mgl32.Vec3        { return o.up }
func (o *Observer) Velocity() mgl32.Vec3  { return o.velocity }

// Look turns the view. Positive dx turns right, positive dy looks up.
func (o *Observer) Look(dx, dy float32) {
	o.setAngles(o.yaw-dx, o.pitch+dy)
}

func (o *Observer) setAngles(yaw, pitch float32) {
	o.yaw = wrapAngle(yaw)
	o.pitch = mgl32.Clamp(pitch, -PitchLimit, PitchLimit)

	sy, cy := sincos(o.yaw)
	sp, cp := sincos(o.pitch)
	o.direction = mgl32.Vec3{sy * cp, sp, cy * cp}
	o.right = o.direction.Cross(worldUp).Normalize()
	o.up = o.right.Cross(o.direction).Normalize()
}

// View is the camera matrix for the current pose.
func (o *Observer) View() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position, o.Position.Add(o.direction), o.up)
}

// Update applies one frame of intent. Walking stays on the horizontal plane
// whatever the pitch; velocity eases toward the requested speed instead of
// snapping to it. Height is clamped to [MinHeight, MaxHeight].
func (o *Observer) Update(in Intent, dt float32) {
	if in.LookX != 0 || in.LookY != 0 {
		o.Look(in.LookX, in.LookY)
	}

	sy, cy := sincos(o.yaw)
	forward := mgl32.Vec3{sy, 0, cy}
	right := mgl32.Vec3{-cy, 0, sy}

	wish := forward.Mul(in.Forward).Add(right.Mul(in.Right))
	if l := wish.Len(); l > 1 {
		wish = wish.Mul(1 / l)
	}
	target := wish.Mul(WalkSpeed)
	target[1] = mgl32.Clamp(in.Up, -1, 1) * ClimbSpeed

	for i := range o.velocity {
		rate := float32(Accel)
		if target[i] == 0 {
			rate = Decel
		}
		o.velocity[i] = approach(o.velocity[i], target[i], rate*dt)
	}

	o.Position = o.Position.Add(o.velocity.Mul(dt))
	if o.Position[1] < MinHeight || o.Position[1] > MaxHeight {
		o.Position[1] = mgl32.Clamp(o.Position[1], MinHeight, MaxHeight)
		o.velocity[1] = 0
	}
}

// Walking reports whether the observer is moving across the floor.
func (o *Observer) Walking() bool {
	return mgl32.Vec2{o.velocity[0], o.velocity[2]}.Len() > restSpeed
}

// Stop zeroes the velocity, e.g. after a teleport.
func (o *Observer) Stop() {
	o.velocity = mgl32.Vec3{}
}

// StabilizeDelta drops sub-pixel mouse jitter so the view does not creep.
func StabilizeDelta(d float64) float32 {
	if d >= -mouseDeadzone && d <= mouseDeadzone {
		return 0
	}
	return float32(d)
}

func approach(cur, target, maxDelta float32) float32 {
	if cur < target {
		cur += maxDelta
		if cur > target {
			cur = target
		}
		return cur
	}
	if cur > target {
		cur -= maxDelta
		if cur < target {
			cur = target
		}
	}
	return cur
}

// wrapAngle maps a into [-pi, pi].
func wrapAngle(a float32) float32 {
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
