package loop

import "time"

// Terminal host tuning.

// Frame timing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Each terminal cell stands for a CellWidth×CellHeight patch of the logical
// viewport, so a typical 80x24 terminal plays on an 800x480 field.
const (
	CellWidth  = 10.0
	CellHeight = 20.0
)

// Inactivity
const (
	InactivityWarn       = 90 * time.Second
	InactivityDisconnect = 120 * time.Second
)
