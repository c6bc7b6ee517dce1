package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the fixed driver cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and main loop
	EventChannelSize = 256
)

// Input Latch
// Terminals report key presses only, a held key is inferred from auto-repeat
const (
	// InputInitialHold covers the terminal auto-repeat delay after the first press
	InputInitialHold = 550 * time.Millisecond

	// InputRepeatHold is the release timeout once repeats are arriving
	InputRepeatHold = 180 * time.Millisecond
)
