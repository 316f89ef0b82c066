package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	TicksPerSecond = 60
	// TickDelta is the fixed physics step in seconds.
	TickDelta = 1.0 / TicksPerSecond

	// Gravity is in pixels per second squared, screen-down positive.
	Gravity = 1800.0

	TileSize = 32.0
)
