package input

import (
	"time"

	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/game"
)

const movementFlags = int(ActionDescend-ActionForward) + 1

// Latch infers held movement keys from press events
// A press holds its flag for the initial window, auto-repeats extend it by the repeat window
// The flag drops once its window passes without another press
type Latch struct {
	initial time.Duration
	repeat  time.Duration
	until   [movementFlags]int64
}

// NewLatch creates a latch with the given hold windows
func NewLatch(initial, repeat time.Duration) *Latch {
	return &Latch{initial: initial, repeat: repeat}
}

// Press records a movement key at nowMillis, non-movement actions are ignored
func (l *Latch) Press(a Action, nowMillis int64) {
	if !a.IsMovement() {
		return
	}
	i := int(a - ActionForward)

	hold := l.initial
	if l.until[i] > nowMillis {
		hold = l.repeat
	}
	deadline := nowMillis + hold.Milliseconds()
	if deadline > l.until[i] {
		l.until[i] = deadline
	}
}

// Held reports whether the movement action is active at nowMillis
func (l *Latch) Held(a Action, nowMillis int64) bool {
	if !a.IsMovement() {
		return false
	}
	return l.until[int(a-ActionForward)] > nowMillis
}

// Intent builds the step intent at nowMillis
func (l *Latch) Intent(nowMillis int64) game.InputIntent {
	return game.InputIntent{
		Forward:  l.Held(ActionForward, nowMillis),
		Backward: l.Held(ActionBackward, nowMillis),
		Left:     l.Held(ActionLeft, nowMillis),
		Right:    l.Held(ActionRight, nowMillis),
		Ascend:   l.Held(ActionAscend, nowMillis),
		Descend:  l.Held(ActionDescend, nowMillis),
	}
}

// Clear releases every flag
func (l *Latch) Clear() {
	l.until = [movementFlags]int64{}
}
