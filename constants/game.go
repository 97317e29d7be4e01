package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CollisionPollInterval is how often a falling item checks for basket overlap
	CollisionPollInterval = 16 * time.Millisecond

	// DropInterval is the base fall time scale and the spawn delay jitter window
	DropInterval = 2000 * time.Millisecond

	// SpawnBaseDelay is the fixed part of the delay between spawn ticks
	SpawnBaseDelay = 500 * time.Millisecond
)

// Spawn batch sizing
const (
	SpawnBatchMin    = 5
	SpawnBatchSpread = 3 // batch size is SpawnBatchMin + [0, SpawnBatchSpread)
)

// Fall speed jitter, applied as baseSpeed * [SpeedJitterMin, SpeedJitterMin+SpeedJitterSpan)
const (
	SpeedJitterMin  = 0.8
	SpeedJitterSpan = 0.4
)
