package parameter

// Population
const (
	// PopulationCapacity is the maximum number of concurrent rays
	PopulationCapacity = 80

	// PopulationBatchSize bounds a single spawn request
	PopulationBatchSize = 20

	// PopulationSpawnInterval is seconds between spawn ticks under the cull policy
	PopulationSpawnInterval = 0.5

	// PopulationWorkersDefault of 0 or 1 updates rays on the calling goroutine
	PopulationWorkersDefault = 1

	// PopulationParallelMinRays is the ray count below which the pool is bypassed
	PopulationParallelMinRays = 256
)
