package parameter

import "math"

// Spawn Geometry
const (
	// SpawnHalfExtent places edge spawns on the square [-2, 2]²
	SpawnHalfExtent = 2.0

	SpawnRadialRadius = 2.5

	SpawnSpiralStartRadius = 2.5
	SpawnSpiralEndRadius   = 2.0
	SpawnSpiralIncrement   = 0.1
)

// Spawn Jitter
const (
	SpawnPositionNoise    = 0.02
	SpawnEdgeAngleNoise   = 0.01
	SpawnRadialAngleNoise = 0.02
	SpawnSpeedNoiseMin    = 0.95
	SpawnSpeedNoiseMax    = 1.05
	SpawnRadiusNoiseMin   = 0.95
	SpawnRadiusNoiseMax   = 1.05
)

// Edge headings, radians
const (
	HeadingRight = 0.0
	HeadingLeft  = math.Pi
	HeadingDown  = -math.Pi / 2
	HeadingUp    = math.Pi / 2
)
