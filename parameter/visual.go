package parameter

// Density Field
const (
	FieldGridSize      = 100
	FieldWorldSize     = 4.0
	FieldDecayRate     = 0.985
	FieldMaxBrightness = 5.0
	FieldCutoff        = 0.001
	FieldRayIntensity  = 0.05
)

// Scene Drawing
const (
	// ViewHalfHeight is the world half-height mapped onto the terminal rows
	ViewHalfHeight = 2.2

	// CellAspect is terminal cell height over width
	CellAspect = 2.0

	HorizonRingSegments = 128
)
