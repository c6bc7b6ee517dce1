package engine

// GameClock converts absolute millisecond timestamps into per-frame deltas
type GameClock struct {
	last    int64
	started bool

	// MaxDelta caps one frame's dt in seconds, 0 disables the cap
	MaxDelta float64
}

// NewGameClock creates a clock, maxDelta 0 passes every delta through
func NewGameClock(maxDelta float64) *GameClock {
	return &GameClock{MaxDelta: maxDelta}
}

// Start rebases the clock so the next Tick measures from now
func (c *GameClock) Start(nowMillis int64) {
	c.last = nowMillis
	c.started = true
}

// Tick returns seconds since the previous tick and stores now
// The first tick of an unstarted clock returns 0
// A timestamp behind the previous one yields a negative delta
func (c *GameClock) Tick(nowMillis int64) float64 {
	if !c.started {
		c.Start(nowMillis)
		return 0
	}

	dt := float64(nowMillis-c.last) / 1000.0
	c.last = nowMillis

	if c.MaxDelta > 0 && dt > c.MaxDelta {
		dt = c.MaxDelta
	}
	return dt
}

// Last returns the timestamp of the previous tick
func (c *GameClock) Last() int64 {
	return c.last
}
