package maze

// World layout (world units).
const (
	CellSize   = 1.0
	WallHeight = 2.0
)

// Floor/ceiling subdivisions per cell.
const FloorQuality = 4

// Collision.
const CollisionMargin = 0.2 * CellSize

// Lights.
const (
	DefaultLightChance = 0.5
	NearbyLightCount   = 8 // includes the observer glow slot

	lightHeight      = 0.85 * WallHeight
	anchorDrop       = 0.20 * WallHeight
	lightWallOffset  = 0.15 * CellSize
	anchorWallOffset = 0.05 * CellSize
	glowHalfWidth    = 0.08 * CellSize
)

// Warm base color per channel; each channel gets base + rand*(1-base).
var lightColorBase = [3]float32{0.85, 0.55, 0.25}

// Sentinel for unused light slots: far enough that attenuation zeroes it.
const farAway = 1e6
