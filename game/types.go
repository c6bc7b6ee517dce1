package game

import (
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/scene"
	"github.com/CodeNKoffee/abyssal-rift-operation-tidebreak/vmath"
)

// Outcome classifies the session, Won and Lost are terminal until Reset
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Player is the diver avatar
type Player struct {
	Position vmath.Vec3F

	// Velocity is reserved, movement is displacement-only and leaves it zero
	Velocity vmath.Vec3F

	// Yaw follows the last non-zero planar input, degrees
	Yaw float64

	// Tilt is TiltAirborne while off the floor, degrees
	Tilt float64

	// Airborne is derived from Position.Y every step, never set by input
	Airborne bool
}

// Goal is a collectible marker
// Collected flips false to true once per session
type Goal struct {
	Position  vmath.Vec3F
	Collected bool
}

// PropAnimator accumulates a cosmetic phase while active
type PropAnimator struct {
	Active bool

	// Phase in radians, frozen while inactive
	Phase float64

	// Speed in radians per second, fixed at construction
	Speed float64
}

// InputIntent holds the six held-movement flags consumed by one step
type InputIntent struct {
	Forward  bool // -Z
	Backward bool // +Z
	Left     bool // -X
	Right    bool // +X
	Ascend   bool
	Descend  bool
}

// PropView joins an animator with its placement for presentation
type PropView struct {
	Kind     scene.PropKind
	Position vmath.Vec3F
	PropAnimator
}

// Snapshot is a detached copy of the session for renderers and HUDs
// Mutating it never affects the session
type Snapshot struct {
	Player         Player
	Goals          []Goal
	Props          []PropView
	Remaining      float64
	Outcome        Outcome
	GoalsRemaining int
	Intent         InputIntent

	// GoalSpin is the goal marker rotation in degrees
	GoalSpin float64

	// WallPhase drives the wall color cycle in radians
	WallPhase float64

	Tick int64
}
