package observer

import "math"

// Movement (world units, seconds).
const (
	WalkSpeed  = 2.4 // horizontal top speed
	ClimbSpeed = 1.2 // vertical top speed (Space / Shift)
	Accel      = 14.0
	Decel      = 18.0
)

// Height band the observer may float in. The ceiling sits at 2.0.
const (
	EyeHeight = 1.0
	MinHeight = 0.3
	MaxHeight = 1.7
)

// Pitch is clamped to +-PitchLimit so the view never flips.
const PitchLimit = 0.35 * math.Pi

// Mouse deltas at or below this many pixels are treated as jitter.
const mouseDeadzone = 0.5

// Below this horizontal speed the observer counts as standing still.
const restSpeed = 0.05
