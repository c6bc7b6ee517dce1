package parameter

// Session Timing
const (
	// TimeLimit is the countdown length of one session in seconds
	TimeLimit = 120.0

	// LowTimeThreshold is the remaining seconds at which the one-shot warning fires
	LowTimeThreshold = 10.0
)

// Play Field
// The room is a square of side 2*FieldHalf centered at the origin, floor at GroundY
const (
	FieldHalf = 1.0
	GroundY   = 0.0

	// MaxHeight is the ceiling for the player center
	MaxHeight = 0.85

	// WallMargin keeps the player clear of the wall panel thickness
	WallMargin = 0.03
)

// Goals
const (
	// GoalRadius is the pickup distance between player center and goal center
	GoalRadius = 0.12
)

// Cosmetic Phase Rates
const (
	// GoalSpinRate is the goal marker spin in degrees per second
	GoalSpinRate = 50.0

	// WallColorRate is the wall color cycle in radians per second
	WallColorRate = 0.7
)

// PropCount is the number of decorative animated props in the reference room
const PropCount = 5
