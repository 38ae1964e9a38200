package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Labyrinth"
)

// Perspective camera.
const (
	FieldOfView = 70.0 // vertical, degrees
	NearPlane   = 0.05
	FarPlane    = 80.0
)

// Lighting (world units).
const (
	LightRange   = 5.0 // a torch lights nothing past this distance
	AmbientLight = 0.04
)

// Background colour behind the outer walls.
var ClearColor = [4]float32{0.01, 0.01, 0.015, 1}

// Frames longer than this are clamped so a stall never tunnels the observer
// through a wall.
const MaxFrameTime = 0.1

// Eye jolt when walking into a wall.
const (
	bumpShake     = 0.03
	bumpShakeTime = 0.18
)

// Audio mix.
const (
	stepGain     = 0.45
	bumpGain     = 0.8
	chimeGain    = 0.5
	crackleGain  = 0.6
	bumpCooldown = 0.25 // seconds between wall thuds
)
